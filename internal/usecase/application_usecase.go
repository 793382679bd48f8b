package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobnetwork-backend/internal/domain"
	"go-jobnetwork-backend/pkg/apperror"
	"go-jobnetwork-backend/pkg/email"
)

// StatusNotifier lets the workflow notify applicants about terminal status
// changes without binding the usecase to SMTP.
type StatusNotifier interface {
	IsConfigured() bool
	SendStatusUpdate(to string, data email.StatusEmailData) error
}

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	postRepo        domain.PostRepository
	cvRepo          domain.CVRepository
	userRepo        domain.UserRepository
	notifier        StatusNotifier
	now             func() time.Time
}

// NewApplicationUsecase creates the application workflow usecase. notifier
// may be nil when notifications are disabled.
func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	postRepo domain.PostRepository,
	cvRepo domain.CVRepository,
	userRepo domain.UserRepository,
	notifier StatusNotifier,
	now func() time.Time,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		postRepo:        postRepo,
		cvRepo:          cvRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		now:             now,
	}
}

// Apply submits a candidate's application to a find_candidate post.
// The (post_id, applicant_id) unique index makes the duplicate check
// atomic: of two concurrent applies, exactly one insert commits.
func (uc *applicationUsecase) Apply(ctx context.Context, applicantID string, postID, cvID int64) (*domain.Application, error) {
	applicant, err := uc.userRepo.GetByID(ctx, applicantID)
	if err != nil || applicant == nil {
		return nil, apperror.Forbidden("Only candidates can apply to posts")
	}
	if applicant.AccountType != domain.AccountTypeCandidate {
		return nil, apperror.Forbidden("Only candidates can apply to posts")
	}

	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Post not found")
		}
		return nil, apperror.Internal(err)
	}
	if post.Type != domain.PostTypeFindCandidate {
		return nil, apperror.BadRequest("Applications are only accepted on find_candidate posts")
	}
	if post.Expired(uc.now()) {
		return nil, apperror.BadRequest("This post has expired and no longer accepts applications")
	}

	usable, err := uc.cvRepo.IsUsable(ctx, cvID, applicantID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !usable {
		return nil, apperror.BadRequest("CV is inactive or does not belong to you")
	}

	now := uc.now()
	app := &domain.Application{
		PostID:      postID,
		ApplicantID: applicantID,
		CvID:        cvID,
		Status:      domain.ApplicationStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("You have already applied to this post")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

func (uc *applicationUsecase) ListMine(ctx context.Context, applicantID string) ([]domain.Application, error) {
	apps, err := uc.applicationRepo.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (uc *applicationUsecase) ListReceived(ctx context.Context, companyID string) ([]domain.Application, error) {
	apps, err := uc.applicationRepo.ListByPostOwner(ctx, companyID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// ListForPost returns a post's applications to its owner only. Non-owners
// get 404, never 403, so post ownership is not probeable.
func (uc *applicationUsecase) ListForPost(ctx context.Context, actorID string, postID int64) ([]domain.Application, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFoundOrUnauthorized("Post not found")
		}
		return nil, apperror.Internal(err)
	}
	if post.UserID != actorID {
		return nil, apperror.NotFoundOrUnauthorized("Post not found")
	}

	apps, err := uc.applicationRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// UpdateStatus moves an application along the state machine:
// pending → reviewed/accepted/rejected, reviewed → accepted/rejected.
// accepted and rejected are terminal, and re-entering the current status
// is rejected rather than treated as a no-op. The transition is applied as
// a conditional update on the previously observed status so two racing
// requests cannot both win.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, actorID string, id int64, status string) error {
	if status != domain.ApplicationStatusPending &&
		status != domain.ApplicationStatusReviewed &&
		status != domain.ApplicationStatusAccepted &&
		status != domain.ApplicationStatusRejected {
		return apperror.BadRequest("Invalid status. Must be: reviewed, accepted, or rejected")
	}

	app, err := uc.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFoundOrUnauthorized("Application not found")
		}
		return apperror.Internal(err)
	}

	post, err := uc.postRepo.GetByID(ctx, app.PostID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFoundOrUnauthorized("Application not found")
		}
		return apperror.Internal(err)
	}
	if post.UserID != actorID {
		return apperror.NotFoundOrUnauthorized("Application not found")
	}

	if !domain.CanTransition(app.Status, status) {
		if domain.IsTerminalStatus(app.Status) {
			return apperror.BadRequest("Application is already " + app.Status + " and cannot change")
		}
		return apperror.BadRequest("Cannot move application from " + app.Status + " to " + status)
	}

	if err := uc.applicationRepo.UpdateStatusFrom(ctx, id, app.Status, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Lost the race against a concurrent transition
			return apperror.Conflict("Application status changed concurrently, reload and retry")
		}
		return apperror.Internal(err)
	}

	if domain.IsTerminalStatus(status) && uc.notifier != nil && uc.notifier.IsConfigured() &&
		app.ApplicantEmail != nil && app.PostTitle != nil {
		name := ""
		if app.ApplicantName != nil {
			name = *app.ApplicantName
		}
		// Best-effort; a failed notification must not fail the transition
		_ = uc.notifier.SendStatusUpdate(*app.ApplicantEmail, email.StatusEmailData{
			ApplicantName: name,
			PostTitle:     *app.PostTitle,
			Status:        status,
		})
	}
	return nil
}
