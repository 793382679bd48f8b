package domain

import (
	"context"
	"io"
	"time"
)

// CV is an uploaded document owned by exactly one candidate. Only active
// CVs are eligible for new applications; deactivating a CV does not
// retract applications that already reference it.
type CV struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	FileKey   string    `json:"-"` // object key in the document store
	FileURL   string    `json:"file_url"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CVRepository interface {
	Create(ctx context.Context, cv *CV) error
	GetByID(ctx context.Context, id int64) (*CV, error)
	ListByUser(ctx context.Context, userID string) ([]CV, error)
	Update(ctx context.Context, cv *CV) error
	Delete(ctx context.Context, id int64) error
	// IsUsable reports whether the CV is active AND owned by ownerID.
	IsUsable(ctx context.Context, id int64, ownerID string) (bool, error)
	HasApplications(ctx context.Context, id int64) (bool, error)
}

type CVUsecase interface {
	Upload(ctx context.Context, ownerID, name, filename, contentType string, file io.Reader, size int64) (*CV, error)
	List(ctx context.Context, ownerID string) ([]CV, error)
	Update(ctx context.Context, ownerID string, id int64, name *string, isActive *bool) (*CV, error)
	Delete(ctx context.Context, ownerID string, id int64) error
}

// FileStore abstracts binary document storage (S3-compatible in production).
type FileStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
}
