package usecase_test

import (
	"context"
	"testing"

	"go-jobnetwork-backend/internal/domain"
	"go-jobnetwork-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFollow(t *testing.T) {
	ctx := context.Background()
	target := &domain.User{ID: "user2", AccountType: domain.AccountTypeCompany}

	t.Run("Should reject following yourself", func(t *testing.T) {
		uc := usecase.NewFollowUsecase(new(MockFollowRepo), new(MockUserRepo))
		err := uc.Follow(ctx, "user1", "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot follow yourself")
	})

	t.Run("Should reject following a missing user", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)
		uc := usecase.NewFollowUsecase(new(MockFollowRepo), userRepo)

		err := uc.Follow(ctx, "user1", "ghost")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not found")
	})

	t.Run("Should reject a duplicate edge", func(t *testing.T) {
		followRepo := new(MockFollowRepo)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "user2").Return(target, nil)
		followRepo.On("Create", ctx, mock.AnythingOfType("*domain.Follow")).Return(domain.ErrDuplicate)
		uc := usecase.NewFollowUsecase(followRepo, userRepo)

		err := uc.Follow(ctx, "user1", "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already following")
	})

	t.Run("Should create the directed edge", func(t *testing.T) {
		followRepo := new(MockFollowRepo)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "user2").Return(target, nil)
		followRepo.On("Create", ctx, mock.AnythingOfType("*domain.Follow")).Return(nil).Run(func(args mock.Arguments) {
			f := args.Get(1).(*domain.Follow)
			assert.Equal(t, "user1", f.FollowerID)
			assert.Equal(t, "user2", f.FollowingID)
		})
		uc := usecase.NewFollowUsecase(followRepo, userRepo)

		assert.NoError(t, uc.Follow(ctx, "user1", "user2"))
	})
}

func TestUnfollow(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail when no edge exists", func(t *testing.T) {
		followRepo := new(MockFollowRepo)
		followRepo.On("Delete", ctx, "user1", "user2").Return(domain.ErrNotFound)
		uc := usecase.NewFollowUsecase(followRepo, new(MockUserRepo))

		err := uc.Unfollow(ctx, "user1", "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not following")
	})

	t.Run("Should remove an existing edge", func(t *testing.T) {
		followRepo := new(MockFollowRepo)
		followRepo.On("Delete", ctx, "user1", "user2").Return(nil)
		uc := usecase.NewFollowUsecase(followRepo, new(MockUserRepo))

		assert.NoError(t, uc.Unfollow(ctx, "user1", "user2"))
	})
}

func TestFollowCounts(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail for a missing user", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrNotFound)
		uc := usecase.NewFollowUsecase(new(MockFollowRepo), userRepo)

		_, err := uc.Counts(ctx, "ghost")
		assert.Error(t, err)
	})

	t.Run("Should return both directions", func(t *testing.T) {
		followRepo := new(MockFollowRepo)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "user1").Return(&domain.User{ID: "user1"}, nil)
		followRepo.On("Counts", ctx, "user1").Return(&domain.FollowCounts{Followers: 3, Following: 7}, nil)
		uc := usecase.NewFollowUsecase(followRepo, userRepo)

		counts, err := uc.Counts(ctx, "user1")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), counts.Followers)
		assert.Equal(t, int64(7), counts.Following)
	})
}
