package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-jobnetwork-backend/internal/domain"
	"go-jobnetwork-backend/internal/usecase"
	"go-jobnetwork-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestCreatePostRules(t *testing.T) {
	ctx := context.Background()
	candidate := &domain.User{ID: "cand1", AccountType: domain.AccountTypeCandidate}
	company := &domain.User{ID: "comp1", AccountType: domain.AccountTypeCompany}
	cvID := int64(7)

	t.Run("Candidate publishes find_job with a usable CV", func(t *testing.T) {
		postRepo := new(MockPostRepo)
		userRepo := new(MockUserRepo)
		cvRepo := new(MockCVRepo)
		userRepo.On("GetByID", ctx, "cand1").Return(candidate, nil)
		cvRepo.On("IsUsable", ctx, cvID, "cand1").Return(true, nil)
		postRepo.On("Create", ctx, mock.AnythingOfType("*domain.Post")).Return(nil)
		uc := usecase.NewPostUsecase(postRepo, new(MockFollowRepo), userRepo, cvRepo, fixedClock(testNow))

		post := &domain.Post{Type: domain.PostTypeFindJob, Title: "Go developer", CvID: &cvID}
		err := uc.CreatePost(ctx, "cand1", post)
		assert.NoError(t, err)
		assert.Equal(t, "cand1", post.UserID)
		assert.Equal(t, testNow, post.CreatedAt)
	})

	t.Run("Candidate cannot publish find_candidate", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "cand1").Return(candidate, nil)
		uc := usecase.NewPostUsecase(new(MockPostRepo), new(MockFollowRepo), userRepo, new(MockCVRepo), fixedClock(testNow))

		err := uc.CreatePost(ctx, "cand1", &domain.Post{Type: domain.PostTypeFindCandidate})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only companies")
	})

	t.Run("Company publishes find_candidate without a CV", func(t *testing.T) {
		postRepo := new(MockPostRepo)
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "comp1").Return(company, nil)
		postRepo.On("Create", ctx, mock.AnythingOfType("*domain.Post")).Return(nil)
		uc := usecase.NewPostUsecase(postRepo, new(MockFollowRepo), userRepo, new(MockCVRepo), fixedClock(testNow))

		err := uc.CreatePost(ctx, "comp1", &domain.Post{Type: domain.PostTypeFindCandidate, Title: "Hiring"})
		assert.NoError(t, err)
	})

	t.Run("Company cannot publish find_job", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "comp1").Return(company, nil)
		uc := usecase.NewPostUsecase(new(MockPostRepo), new(MockFollowRepo), userRepo, new(MockCVRepo), fixedClock(testNow))

		err := uc.CreatePost(ctx, "comp1", &domain.Post{Type: domain.PostTypeFindJob, CvID: &cvID})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only candidates")
	})

	t.Run("find_job requires a CV", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "cand1").Return(candidate, nil)
		uc := usecase.NewPostUsecase(new(MockPostRepo), new(MockFollowRepo), userRepo, new(MockCVRepo), fixedClock(testNow))

		err := uc.CreatePost(ctx, "cand1", &domain.Post{Type: domain.PostTypeFindJob})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "require a CV")
	})

	t.Run("find_candidate rejects a CV", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "comp1").Return(company, nil)
		uc := usecase.NewPostUsecase(new(MockPostRepo), new(MockFollowRepo), userRepo, new(MockCVRepo), fixedClock(testNow))

		err := uc.CreatePost(ctx, "comp1", &domain.Post{Type: domain.PostTypeFindCandidate, CvID: &cvID})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot carry a CV")
	})

	t.Run("Inactive or foreign CV is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		cvRepo := new(MockCVRepo)
		userRepo.On("GetByID", ctx, "cand1").Return(candidate, nil)
		cvRepo.On("IsUsable", ctx, cvID, "cand1").Return(false, nil)
		uc := usecase.NewPostUsecase(new(MockPostRepo), new(MockFollowRepo), userRepo, cvRepo, fixedClock(testNow))

		err := uc.CreatePost(ctx, "cand1", &domain.Post{Type: domain.PostTypeFindJob, CvID: &cvID})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "inactive or does not belong")
	})
}

func TestUpdatePostOwnership(t *testing.T) {
	ctx := context.Background()
	stored := &domain.Post{ID: 9, UserID: "owner", Type: domain.PostTypeFindCandidate, Title: "Old"}

	t.Run("Non-owner gets 404, not 403", func(t *testing.T) {
		postRepo := new(MockPostRepo)
		postRepo.On("GetByID", ctx, int64(9)).Return(stored, nil)
		uc := usecase.NewPostUsecase(postRepo, new(MockFollowRepo), new(MockUserRepo), new(MockCVRepo), fixedClock(testNow))

		err := uc.UpdatePost(ctx, "intruder", &domain.Post{ID: 9, Title: "New"})
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})

	t.Run("Owner update keeps the stored type", func(t *testing.T) {
		postRepo := new(MockPostRepo)
		cp := *stored
		postRepo.On("GetByID", ctx, int64(9)).Return(&cp, nil)
		postRepo.On("Update", ctx, mock.AnythingOfType("*domain.Post")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Post)
			assert.Equal(t, domain.PostTypeFindCandidate, p.Type)
			assert.Equal(t, "New", p.Title)
		})
		uc := usecase.NewPostUsecase(postRepo, new(MockFollowRepo), new(MockUserRepo), new(MockCVRepo), fixedClock(testNow))

		err := uc.UpdatePost(ctx, "owner", &domain.Post{ID: 9, Type: domain.PostTypeFindJob, Title: "New"})
		assert.NoError(t, err)
	})
}

func TestDeletePostBlockedByApplications(t *testing.T) {
	ctx := context.Background()
	stored := &domain.Post{ID: 4, UserID: "owner", Type: domain.PostTypeFindCandidate}

	t.Run("Delete is blocked while applications reference the post", func(t *testing.T) {
		postRepo := new(MockPostRepo)
		postRepo.On("GetByID", ctx, int64(4)).Return(stored, nil)
		postRepo.On("HasApplications", ctx, int64(4)).Return(true, nil)
		uc := usecase.NewPostUsecase(postRepo, new(MockFollowRepo), new(MockUserRepo), new(MockCVRepo), fixedClock(testNow))

		err := uc.DeletePost(ctx, "owner", 4)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be deleted")
		postRepo.AssertNotCalled(t, "Delete", ctx, int64(4))
	})

	t.Run("Delete succeeds once no applications remain", func(t *testing.T) {
		postRepo := new(MockPostRepo)
		postRepo.On("GetByID", ctx, int64(4)).Return(stored, nil)
		postRepo.On("HasApplications", ctx, int64(4)).Return(false, nil)
		postRepo.On("Delete", ctx, int64(4)).Return(nil)
		uc := usecase.NewPostUsecase(postRepo, new(MockFollowRepo), new(MockUserRepo), new(MockCVRepo), fixedClock(testNow))

		assert.NoError(t, uc.DeletePost(ctx, "owner", 4))
	})
}
