package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobnetwork-backend/internal/domain"
	"go-jobnetwork-backend/pkg/apperror"
)

type followUsecase struct {
	followRepo domain.FollowRepository
	userRepo   domain.UserRepository
}

func NewFollowUsecase(followRepo domain.FollowRepository, userRepo domain.UserRepository) domain.FollowUsecase {
	return &followUsecase{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates the directed edge follower → target. Duplicate edges are
// rejected by the unique index on (follower_id, following_id), so two
// concurrent follows cannot both succeed.
func (uc *followUsecase) Follow(ctx context.Context, followerID, targetID string) error {
	if followerID == targetID {
		return apperror.BadRequest("You cannot follow yourself")
	}

	if _, err := uc.userRepo.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}

	follow := &domain.Follow{
		FollowerID:  followerID,
		FollowingID: targetID,
		CreatedAt:   time.Now(),
	}
	if err := uc.followRepo.Create(ctx, follow); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return apperror.Conflict("You are already following this user")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (uc *followUsecase) Unfollow(ctx context.Context, followerID, targetID string) error {
	if err := uc.followRepo.Delete(ctx, followerID, targetID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("You are not following this user")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (uc *followUsecase) Followers(ctx context.Context, userID string) ([]domain.FollowUser, error) {
	followers, err := uc.followRepo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return followers, nil
}

func (uc *followUsecase) Following(ctx context.Context, userID string) ([]domain.FollowUser, error) {
	following, err := uc.followRepo.ListFollowing(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return following, nil
}

func (uc *followUsecase) Counts(ctx context.Context, userID string) (*domain.FollowCounts, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	counts, err := uc.followRepo.Counts(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return counts, nil
}
