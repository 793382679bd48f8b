package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobnetwork-backend/internal/domain"
	"go-jobnetwork-backend/pkg/apperror"
)

type postUsecase struct {
	postRepo   domain.PostRepository
	followRepo domain.FollowRepository
	userRepo   domain.UserRepository
	cvRepo     domain.CVRepository
	now        func() time.Time
}

// NewPostUsecase creates the post catalog + feed usecase. The clock is
// injected so expiration stays deterministic in tests.
func NewPostUsecase(
	postRepo domain.PostRepository,
	followRepo domain.FollowRepository,
	userRepo domain.UserRepository,
	cvRepo domain.CVRepository,
	now func() time.Time,
) domain.PostUsecase {
	return &postUsecase{
		postRepo:   postRepo,
		followRepo: followRepo,
		userRepo:   userRepo,
		cvRepo:     cvRepo,
		now:        now,
	}
}

// CreatePost validates the account-type/post-type pairing and the CV rule:
// find_job posts are candidate-authored and carry a CV, find_candidate
// posts are company-authored and never do.
func (uc *postUsecase) CreatePost(ctx context.Context, authorID string, post *domain.Post) error {
	author, err := uc.userRepo.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}

	switch post.Type {
	case domain.PostTypeFindJob:
		if author.AccountType != domain.AccountTypeCandidate {
			return apperror.BadRequest("Only candidates can publish find_job posts")
		}
		if err := uc.validateCV(ctx, post.CvID, authorID); err != nil {
			return err
		}
	case domain.PostTypeFindCandidate:
		if author.AccountType != domain.AccountTypeCompany {
			return apperror.BadRequest("Only companies can publish find_candidate posts")
		}
		if post.CvID != nil {
			return apperror.BadRequest("find_candidate posts cannot carry a CV")
		}
	default:
		return apperror.BadRequest("Invalid post type. Must be find_job or find_candidate")
	}

	post.UserID = authorID
	now := uc.now()
	post.CreatedAt = now
	post.UpdatedAt = now

	if err := uc.postRepo.Create(ctx, post); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (uc *postUsecase) GetPost(ctx context.Context, viewerID string, id int64) (*domain.FeedPost, error) {
	post, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Post not found")
		}
		return nil, apperror.Internal(err)
	}

	isFollowing := false
	if viewerID != "" && viewerID != post.UserID {
		isFollowing, err = uc.followRepo.Exists(ctx, viewerID, post.UserID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
	}

	return &domain.FeedPost{
		Post:              *post,
		IsExpired:         post.Expired(uc.now()),
		IsFollowingAuthor: isFollowing,
	}, nil
}

// UpdatePost applies title/description/CV changes. Post type is immutable.
// Ownership failures are reported as 404 so existence is not disclosed.
func (uc *postUsecase) UpdatePost(ctx context.Context, actorID string, post *domain.Post) error {
	existing, err := uc.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFoundOrUnauthorized("Post not found")
		}
		return apperror.Internal(err)
	}
	if existing.UserID != actorID {
		return apperror.NotFoundOrUnauthorized("Post not found")
	}

	// Re-validate the CV rule against the stored type
	switch existing.Type {
	case domain.PostTypeFindJob:
		if err := uc.validateCV(ctx, post.CvID, actorID); err != nil {
			return err
		}
	case domain.PostTypeFindCandidate:
		if post.CvID != nil {
			return apperror.BadRequest("find_candidate posts cannot carry a CV")
		}
	}

	existing.Title = post.Title
	existing.Description = post.Description
	existing.CvID = post.CvID
	existing.UpdatedAt = uc.now()

	if err := uc.postRepo.Update(ctx, existing); err != nil {
		return apperror.Internal(err)
	}
	*post = *existing
	return nil
}

// DeletePost is blocked while applications reference the post, so deleting
// never silently orphans an application.
func (uc *postUsecase) DeletePost(ctx context.Context, actorID string, id int64) error {
	existing, err := uc.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFoundOrUnauthorized("Post not found")
		}
		return apperror.Internal(err)
	}
	if existing.UserID != actorID {
		return apperror.NotFoundOrUnauthorized("Post not found")
	}

	hasApps, err := uc.postRepo.HasApplications(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if hasApps {
		return apperror.Conflict("Post has received applications and cannot be deleted")
	}

	if err := uc.postRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// Feed returns one page of the ranked feed for a viewer. The candidate set
// is ranked in full before pagination so a post never straddles or skips a
// page boundary.
func (uc *postUsecase) Feed(ctx context.Context, viewerID, postType string, page, limit int) ([]domain.FeedPost, int64, error) {
	if postType != "" && postType != domain.PostTypeFindJob && postType != domain.PostTypeFindCandidate {
		return nil, 0, apperror.BadRequest("Invalid post type filter")
	}
	page, limit = normalizePage(page, limit)

	posts, err := uc.postRepo.FetchForFeed(ctx, postType)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}

	following := map[string]bool{}
	if viewerID != "" {
		ids, err := uc.followRepo.FollowingIDs(ctx, viewerID)
		if err != nil {
			return nil, 0, apperror.Internal(err)
		}
		for _, id := range ids {
			following[id] = true
		}
	}

	feed := annotateFeed(posts, following, uc.now())
	rankFeed(feed)

	return pageSlice(feed, page, limit), int64(len(feed)), nil
}

// ListByUser returns a single author's posts, expiration bucket first then
// newest first. The follow bucket does not apply here.
func (uc *postUsecase) ListByUser(ctx context.Context, userID, postType string, page, limit int) ([]domain.FeedPost, int64, error) {
	if postType != "" && postType != domain.PostTypeFindJob && postType != domain.PostTypeFindCandidate {
		return nil, 0, apperror.BadRequest("Invalid post type filter")
	}
	page, limit = normalizePage(page, limit)

	posts, err := uc.postRepo.FetchByUser(ctx, userID, postType)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}

	feed := annotateFeed(posts, nil, uc.now())
	rankOwn(feed)

	return pageSlice(feed, page, limit), int64(len(feed)), nil
}

func (uc *postUsecase) validateCV(ctx context.Context, cvID *int64, ownerID string) error {
	if cvID == nil {
		return apperror.BadRequest("find_job posts require a CV")
	}
	usable, err := uc.cvRepo.IsUsable(ctx, *cvID, ownerID)
	if err != nil {
		return apperror.Internal(err)
	}
	if !usable {
		return apperror.BadRequest("CV is inactive or does not belong to you")
	}
	return nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
