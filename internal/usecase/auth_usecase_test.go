package usecase_test

import (
	"context"
	"testing"

	"go-jobnetwork-backend/internal/domain"
	"go-jobnetwork-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEnsureUserExists(t *testing.T) {
	ctx := context.Background()

	t.Run("Known users are not re-created", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "user1").Return(&domain.User{ID: "user1"}, nil)
		uc := usecase.NewAuthUsecase(userRepo)

		err := uc.EnsureUserExists(ctx, &domain.User{ID: "user1"})
		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "Create", ctx, mock.Anything)
	})

	t.Run("Unknown account types default to candidate", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "user1").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)
		uc := usecase.NewAuthUsecase(userRepo)

		user := &domain.User{ID: "user1", Email: "u@example.com", AccountType: "superuser"}
		err := uc.EnsureUserExists(ctx, user)
		assert.NoError(t, err)
		assert.Equal(t, domain.AccountTypeCandidate, user.AccountType)
	})

	t.Run("Losing the provisioning race is not an error", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "user1").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(domain.ErrDuplicate)
		uc := usecase.NewAuthUsecase(userRepo)

		err := uc.EnsureUserExists(ctx, &domain.User{ID: "user1", AccountType: domain.AccountTypeCompany})
		assert.NoError(t, err)
	})
}
