package domain

import (
	"context"
	"time"
)

// Account types. Immutable after creation; they gate which post types
// and actions a user may perform.
const (
	AccountTypeCandidate = "candidate"
	AccountTypeCompany   = "company"
)

type User struct {
	ID          string    `json:"id"` // UUID issued by the auth provider
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	AccountType string    `json:"account_type"`
	Bio         *string   `json:"bio,omitempty"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	EnsureUserExists(ctx context.Context, user *User) error
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
