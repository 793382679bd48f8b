package usecase

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"go-jobnetwork-backend/internal/domain"
	"go-jobnetwork-backend/pkg/apperror"

	"github.com/google/uuid"
)

// maxCVSize caps CV uploads at 10 MB.
const maxCVSize = 10 << 20

var allowedCVExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

type cvUsecase struct {
	cvRepo domain.CVRepository
	store  domain.FileStore
}

func NewCVUsecase(cvRepo domain.CVRepository, store domain.FileStore) domain.CVUsecase {
	return &cvUsecase{
		cvRepo: cvRepo,
		store:  store,
	}
}

// Upload stores the document and registers it as an active CV.
func (uc *cvUsecase) Upload(ctx context.Context, ownerID, name, filename, contentType string, file io.Reader, size int64) (*domain.CV, error) {
	if size <= 0 || size > maxCVSize {
		return nil, apperror.BadRequest("CV file must be between 1 byte and 10 MB")
	}
	ext := strings.ToLower(path.Ext(filename))
	if !allowedCVExtensions[ext] {
		return nil, apperror.BadRequest("CV must be a .pdf, .doc, or .docx file")
	}
	if name == "" {
		name = strings.TrimSuffix(path.Base(filename), ext)
	}

	key := "cvs/" + ownerID + "/" + uuid.NewString() + ext
	url, err := uc.store.Upload(ctx, key, contentType, file, size)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	cv := &domain.CV{
		UserID:    ownerID,
		Name:      name,
		FileKey:   key,
		FileURL:   url,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.cvRepo.Create(ctx, cv); err != nil {
		// Roll back the orphaned object; best-effort
		_ = uc.store.Delete(ctx, key)
		return nil, apperror.Internal(err)
	}
	return cv, nil
}

func (uc *cvUsecase) List(ctx context.Context, ownerID string) ([]domain.CV, error) {
	cvs, err := uc.cvRepo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return cvs, nil
}

// Update renames and/or toggles a CV. Deactivation never retracts
// applications that already reference the CV.
func (uc *cvUsecase) Update(ctx context.Context, ownerID string, id int64, name *string, isActive *bool) (*domain.CV, error) {
	cv, err := uc.getOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		if *name == "" {
			return nil, apperror.BadRequest("CV name cannot be empty")
		}
		cv.Name = *name
	}
	if isActive != nil {
		cv.IsActive = *isActive
	}
	cv.UpdatedAt = time.Now()

	if err := uc.cvRepo.Update(ctx, cv); err != nil {
		return nil, apperror.Internal(err)
	}
	return cv, nil
}

// Delete removes a CV and its stored document. Blocked while applications
// reference the CV; deactivating is the soft alternative.
func (uc *cvUsecase) Delete(ctx context.Context, ownerID string, id int64) error {
	cv, err := uc.getOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}

	hasApps, err := uc.cvRepo.HasApplications(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if hasApps {
		return apperror.Conflict("CV is referenced by applications; deactivate it instead")
	}

	if err := uc.cvRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	// Object removal is best-effort once the row is gone
	_ = uc.store.Delete(ctx, cv.FileKey)
	return nil
}

func (uc *cvUsecase) getOwned(ctx context.Context, ownerID string, id int64) (*domain.CV, error) {
	cv, err := uc.cvRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFoundOrUnauthorized("CV not found")
		}
		return nil, apperror.Internal(err)
	}
	if cv.UserID != ownerID {
		return nil, apperror.NotFoundOrUnauthorized("CV not found")
	}
	return cv, nil
}
