package domain

import (
	"context"
	"time"
)

// Application statuses. pending is the only initial state; accepted and
// rejected are terminal.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusReviewed = "reviewed"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// statusTransitions encodes the allowed state machine:
// pending → reviewed/accepted/rejected, reviewed → accepted/rejected.
// Re-entering the current status is not allowed.
var statusTransitions = map[string][]string{
	ApplicationStatusPending:  {ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected},
	ApplicationStatusReviewed: {ApplicationStatusAccepted, ApplicationStatusRejected},
}

// CanTransition reports whether an application in status from may move to to.
func CanTransition(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if to == allowed {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether no further transition is permitted.
func IsTerminalStatus(status string) bool {
	return status == ApplicationStatusAccepted || status == ApplicationStatusRejected
}

// Application links one find_candidate post, one candidate (the applicant)
// and one CV owned by that applicant. Unique per (post_id, applicant_id).
type Application struct {
	ID          int64     `json:"id"`
	PostID      int64     `json:"post_id"`
	ApplicantID string    `json:"applicant_id"`
	CvID        int64     `json:"cv_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined data for list responses
	PostTitle      *string `json:"post_title,omitempty"`
	ApplicantName  *string `json:"applicant_name,omitempty"`
	ApplicantEmail *string `json:"applicant_email,omitempty"`
	CvName         *string `json:"cv_name,omitempty"`
	CvURL          *string `json:"cv_url,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]Application, error)
	ListByPostOwner(ctx context.Context, ownerID string) ([]Application, error)
	ListByPost(ctx context.Context, postID int64) ([]Application, error)
	// UpdateStatusFrom applies the transition as a single conditional
	// update; returns ErrNotFound when the row is no longer in from.
	UpdateStatusFrom(ctx context.Context, id int64, from, to string) error
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, applicantID string, postID, cvID int64) (*Application, error)
	ListMine(ctx context.Context, applicantID string) ([]Application, error)
	ListReceived(ctx context.Context, companyID string) ([]Application, error)
	ListForPost(ctx context.Context, actorID string, postID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, actorID string, id int64, status string) error
}
