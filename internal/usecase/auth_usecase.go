package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobnetwork-backend/internal/domain"
	"go-jobnetwork-backend/pkg/apperror"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

// EnsureUserExists provisions a local row for an authenticated identity on
// first sight. Account type is fixed at creation and never updated here.
func (uc *authUsecase) EnsureUserExists(ctx context.Context, user *domain.User) error {
	existing, err := uc.userRepo.GetByID(ctx, user.ID)
	if err == nil && existing != nil {
		return nil
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}

	if user.AccountType != domain.AccountTypeCandidate && user.AccountType != domain.AccountTypeCompany {
		user.AccountType = domain.AccountTypeCandidate
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Concurrent first requests may race on the insert
		if errors.Is(err, domain.ErrDuplicate) {
			return nil
		}
		return apperror.Internal(err)
	}
	return nil
}

func (uc *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
