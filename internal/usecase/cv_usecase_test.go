package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"go-jobnetwork-backend/internal/domain"
	"go-jobnetwork-backend/internal/usecase"
	"go-jobnetwork-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCVUpload(t *testing.T) {
	ctx := context.Background()
	body := strings.NewReader("%PDF-1.7")

	t.Run("Should reject unsupported file types", func(t *testing.T) {
		uc := usecase.NewCVUsecase(new(MockCVRepo), new(MockFileStore))
		_, err := uc.Upload(ctx, "user1", "My CV", "resume.exe", "application/octet-stream", body, 100)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), ".pdf, .doc, or .docx")
	})

	t.Run("Should reject oversized files", func(t *testing.T) {
		uc := usecase.NewCVUsecase(new(MockCVRepo), new(MockFileStore))
		_, err := uc.Upload(ctx, "user1", "My CV", "resume.pdf", "application/pdf", body, 11<<20)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "10 MB")
	})

	t.Run("Should store the document under the owner's prefix", func(t *testing.T) {
		cvRepo := new(MockCVRepo)
		store := new(MockFileStore)
		store.On("Upload", ctx, mock.AnythingOfType("string"), "application/pdf", body, int64(8)).
			Return("https://cdn.example.com/cv.pdf", nil)
		cvRepo.On("Create", ctx, mock.AnythingOfType("*domain.CV")).Return(nil)
		uc := usecase.NewCVUsecase(cvRepo, store)

		cv, err := uc.Upload(ctx, "user1", "My CV", "resume.pdf", "application/pdf", body, 8)
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(cv.FileKey, "cvs/user1/"))
		assert.True(t, strings.HasSuffix(cv.FileKey, ".pdf"))
		assert.Equal(t, "https://cdn.example.com/cv.pdf", cv.FileURL)
		assert.True(t, cv.IsActive)
	})

	t.Run("Should default the name to the filename", func(t *testing.T) {
		cvRepo := new(MockCVRepo)
		store := new(MockFileStore)
		store.On("Upload", ctx, mock.AnythingOfType("string"), "application/pdf", body, int64(8)).
			Return("https://cdn.example.com/cv.pdf", nil)
		cvRepo.On("Create", ctx, mock.AnythingOfType("*domain.CV")).Return(nil)
		uc := usecase.NewCVUsecase(cvRepo, store)

		cv, err := uc.Upload(ctx, "user1", "", "senior-resume.pdf", "application/pdf", body, 8)
		assert.NoError(t, err)
		assert.Equal(t, "senior-resume", cv.Name)
	})

	t.Run("Should remove the object when the row insert fails", func(t *testing.T) {
		cvRepo := new(MockCVRepo)
		store := new(MockFileStore)
		store.On("Upload", ctx, mock.AnythingOfType("string"), "application/pdf", body, int64(8)).
			Return("https://cdn.example.com/cv.pdf", nil)
		cvRepo.On("Create", ctx, mock.AnythingOfType("*domain.CV")).Return(errors.New("insert failed"))
		store.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil)
		uc := usecase.NewCVUsecase(cvRepo, store)

		_, err := uc.Upload(ctx, "user1", "My CV", "resume.pdf", "application/pdf", body, 8)
		assert.Error(t, err)
		store.AssertCalled(t, "Delete", ctx, mock.AnythingOfType("string"))
	})
}

func TestCVOwnership(t *testing.T) {
	ctx := context.Background()
	stored := &domain.CV{ID: 3, UserID: "owner", Name: "CV", FileKey: "cvs/owner/abc.pdf", IsActive: true}

	t.Run("Another user's CV reads as missing", func(t *testing.T) {
		cvRepo := new(MockCVRepo)
		cvRepo.On("GetByID", ctx, int64(3)).Return(stored, nil)
		uc := usecase.NewCVUsecase(cvRepo, new(MockFileStore))

		_, err := uc.Update(ctx, "intruder", 3, nil, nil)
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})

	t.Run("Owner can deactivate", func(t *testing.T) {
		cvRepo := new(MockCVRepo)
		cp := *stored
		cvRepo.On("GetByID", ctx, int64(3)).Return(&cp, nil)
		cvRepo.On("Update", ctx, mock.AnythingOfType("*domain.CV")).Return(nil)
		uc := usecase.NewCVUsecase(cvRepo, new(MockFileStore))

		inactive := false
		cv, err := uc.Update(ctx, "owner", 3, nil, &inactive)
		assert.NoError(t, err)
		assert.False(t, cv.IsActive)
	})
}

func TestCVDelete(t *testing.T) {
	ctx := context.Background()
	stored := &domain.CV{ID: 3, UserID: "owner", FileKey: "cvs/owner/abc.pdf"}

	t.Run("Blocked while applications reference the CV", func(t *testing.T) {
		cvRepo := new(MockCVRepo)
		cvRepo.On("GetByID", ctx, int64(3)).Return(stored, nil)
		cvRepo.On("HasApplications", ctx, int64(3)).Return(true, nil)
		uc := usecase.NewCVUsecase(cvRepo, new(MockFileStore))

		err := uc.Delete(ctx, "owner", 3)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "deactivate it instead")
		cvRepo.AssertNotCalled(t, "Delete", ctx, int64(3))
	})

	t.Run("Removes the row and then the object", func(t *testing.T) {
		cvRepo := new(MockCVRepo)
		store := new(MockFileStore)
		cvRepo.On("GetByID", ctx, int64(3)).Return(stored, nil)
		cvRepo.On("HasApplications", ctx, int64(3)).Return(false, nil)
		cvRepo.On("Delete", ctx, int64(3)).Return(nil)
		store.On("Delete", ctx, "cvs/owner/abc.pdf").Return(nil)
		uc := usecase.NewCVUsecase(cvRepo, store)

		assert.NoError(t, uc.Delete(ctx, "owner", 3))
		store.AssertCalled(t, "Delete", ctx, "cvs/owner/abc.pdf")
	})
}
