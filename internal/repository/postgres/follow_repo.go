package postgres

import (
	"context"

	"go-jobnetwork-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type followRepo struct {
	db *pgxpool.Pool
}

func NewFollowRepository(db *pgxpool.Pool) domain.FollowRepository {
	return &followRepo{db: db}
}

// Create relies on the unique index on (follower_id, following_id):
// concurrent duplicate follows surface as domain.ErrDuplicate.
func (r *followRepo) Create(ctx context.Context, follow *domain.Follow) error {
	query := `INSERT INTO follows (follower_id, following_id, created_at) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, follow.FollowerID, follow.FollowingID, follow.CreatedAt)
	return translateError(err)
}

func (r *followRepo) Delete(ctx context.Context, followerID, followingID string) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`
	result, err := r.db.Exec(ctx, query, followerID, followingID)
	if err != nil {
		return translateError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *followRepo) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, followerID, followingID).Scan(&exists)
	return exists, translateError(err)
}

// ListFollowers returns the users following userID, newest edge first.
func (r *followRepo) ListFollowers(ctx context.Context, userID string) ([]domain.FollowUser, error) {
	query := `
		SELECT u.id, u.name, u.email, u.account_type, u.avatar_url, f.created_at
		FROM follows f
		JOIN users u ON f.follower_id = u.id
		WHERE f.following_id = $1
		ORDER BY f.created_at DESC`
	return r.queryFollowUsers(ctx, query, userID)
}

// ListFollowing returns the users userID follows, newest edge first.
func (r *followRepo) ListFollowing(ctx context.Context, userID string) ([]domain.FollowUser, error) {
	query := `
		SELECT u.id, u.name, u.email, u.account_type, u.avatar_url, f.created_at
		FROM follows f
		JOIN users u ON f.following_id = u.id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC`
	return r.queryFollowUsers(ctx, query, userID)
}

func (r *followRepo) queryFollowUsers(ctx context.Context, query, userID string) ([]domain.FollowUser, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var users []domain.FollowUser
	for rows.Next() {
		var u domain.FollowUser
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.AccountType, &u.AvatarURL, &u.FollowedAt); err != nil {
			return nil, translateError(err)
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *followRepo) FollowingIDs(ctx context.Context, followerID string) ([]string, error) {
	query := `SELECT following_id FROM follows WHERE follower_id = $1`
	rows, err := r.db.Query(ctx, query, followerID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, translateError(err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *followRepo) Counts(ctx context.Context, userID string) (*domain.FollowCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM follows WHERE following_id = $1),
			(SELECT COUNT(*) FROM follows WHERE follower_id = $1)`
	var counts domain.FollowCounts
	err := r.db.QueryRow(ctx, query, userID).Scan(&counts.Followers, &counts.Following)
	if err != nil {
		return nil, translateError(err)
	}
	return &counts, nil
}
