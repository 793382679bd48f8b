package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors. Repositories translate storage-level failures
// (missing rows, unique-constraint violations) into these sentinels.
var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")
)

// Post types. find_job posts are authored by candidates and carry a CV;
// find_candidate posts are authored by companies and never carry one.
const (
	PostTypeFindJob       = "find_job"
	PostTypeFindCandidate = "find_candidate"
)

// PostLifetime is how long a find_candidate post accepts applications.
// find_job posts never expire.
const PostLifetime = 10 * 24 * time.Hour

type Post struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CvID        *int64    `json:"cv_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined author data for list responses
	AuthorName *string `json:"author_name,omitempty"`
	AuthorType *string `json:"author_type,omitempty"`
}

// Expired reports whether the post no longer accepts applications at the
// given instant. Derived on every read, never stored.
func (p *Post) Expired(now time.Time) bool {
	return p.Type == PostTypeFindCandidate && now.Sub(p.CreatedAt) >= PostLifetime
}

// FeedPost is a post annotated for a specific viewer.
type FeedPost struct {
	Post
	IsExpired         bool `json:"is_expired"`
	IsFollowingAuthor bool `json:"is_following_author"`
}

type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id int64) error
	// FetchForFeed returns the candidate set for ranking, optionally
	// filtered by post type ("" = all). Ordering is applied by the usecase.
	FetchForFeed(ctx context.Context, postType string) ([]Post, error)
	FetchByUser(ctx context.Context, userID, postType string) ([]Post, error)
	HasApplications(ctx context.Context, postID int64) (bool, error)
}

type PostUsecase interface {
	CreatePost(ctx context.Context, authorID string, post *Post) error
	GetPost(ctx context.Context, viewerID string, id int64) (*FeedPost, error)
	UpdatePost(ctx context.Context, actorID string, post *Post) error
	DeletePost(ctx context.Context, actorID string, id int64) error
	Feed(ctx context.Context, viewerID, postType string, page, limit int) ([]FeedPost, int64, error)
	ListByUser(ctx context.Context, userID, postType string, page, limit int) ([]FeedPost, int64, error)
}
