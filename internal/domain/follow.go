package domain

import (
	"context"
	"time"
)

// Follow is a directed edge in the relationship graph: follower → following.
// Unique per (follower_id, following_id); self-edges are rejected.
type Follow struct {
	FollowerID  string    `json:"follower_id"`
	FollowingID string    `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// FollowUser is the projection used for follower/following listings.
type FollowUser struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	AccountType string    `json:"account_type"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	FollowedAt  time.Time `json:"followed_at"`
}

type FollowCounts struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

type FollowRepository interface {
	Create(ctx context.Context, follow *Follow) error
	Delete(ctx context.Context, followerID, followingID string) error
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
	// ListFollowers / ListFollowing are ordered by edge creation time, newest first.
	ListFollowers(ctx context.Context, userID string) ([]FollowUser, error)
	ListFollowing(ctx context.Context, userID string) ([]FollowUser, error)
	// FollowingIDs returns the ids of every user followed by followerID.
	// Resolved once per feed request so pagination stays consistent.
	FollowingIDs(ctx context.Context, followerID string) ([]string, error)
	Counts(ctx context.Context, userID string) (*FollowCounts, error)
}

type FollowUsecase interface {
	Follow(ctx context.Context, followerID, targetID string) error
	Unfollow(ctx context.Context, followerID, targetID string) error
	Followers(ctx context.Context, userID string) ([]FollowUser, error)
	Following(ctx context.Context, userID string) ([]FollowUser, error)
	Counts(ctx context.Context, userID string) (*FollowCounts, error)
}
