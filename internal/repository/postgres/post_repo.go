package postgres

import (
	"context"

	"go-jobnetwork-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postRepo struct {
	db *pgxpool.Pool
}

func NewPostRepository(db *pgxpool.Pool) domain.PostRepository {
	return &postRepo{db: db}
}

func (r *postRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (user_id, type, title, description, cv_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.db.QueryRow(ctx, query,
		post.UserID, post.Type, post.Title, post.Description, post.CvID,
		post.CreatedAt, post.UpdatedAt,
	).Scan(&post.ID)
	return translateError(err)
}

func (r *postRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	query := `
		SELECT p.id, p.user_id, p.type, p.title, p.description, p.cv_id, p.created_at, p.updated_at,
		       u.name, u.account_type
		FROM posts p
		LEFT JOIN users u ON p.user_id = u.id
		WHERE p.id = $1`
	var post domain.Post
	err := r.db.QueryRow(ctx, query, id).Scan(
		&post.ID, &post.UserID, &post.Type, &post.Title, &post.Description, &post.CvID,
		&post.CreatedAt, &post.UpdatedAt,
		&post.AuthorName, &post.AuthorType,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

// FetchForFeed returns the candidate set for ranking, optionally filtered
// by type. No ORDER BY here: the feed ranker computes the bucket keys in
// application code so the tie-break stays deterministic.
func (r *postRepo) FetchForFeed(ctx context.Context, postType string) ([]domain.Post, error) {
	query := `
		SELECT p.id, p.user_id, p.type, p.title, p.description, p.cv_id, p.created_at, p.updated_at,
		       u.name, u.account_type
		FROM posts p
		LEFT JOIN users u ON p.user_id = u.id
		WHERE ($1 = '' OR p.type = $1)`
	rows, err := r.db.Query(ctx, query, postType)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *postRepo) FetchByUser(ctx context.Context, userID, postType string) ([]domain.Post, error) {
	query := `
		SELECT p.id, p.user_id, p.type, p.title, p.description, p.cv_id, p.created_at, p.updated_at,
		       u.name, u.account_type
		FROM posts p
		LEFT JOIN users u ON p.user_id = u.id
		WHERE p.user_id = $1 AND ($2 = '' OR p.type = $2)`
	rows, err := r.db.Query(ctx, query, userID, postType)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *postRepo) Update(ctx context.Context, post *domain.Post) error {
	query := `UPDATE posts SET title = $2, description = $3, cv_id = $4, updated_at = $5 WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		post.ID, post.Title, post.Description, post.CvID, post.UpdatedAt,
	)
	if err != nil {
		return translateError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM posts WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return translateError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postRepo) HasApplications(ctx context.Context, postID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE post_id = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, postID).Scan(&exists)
	return exists, translateError(err)
}

func scanPosts(rows pgx.Rows) ([]domain.Post, error) {
	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID, &post.UserID, &post.Type, &post.Title, &post.Description, &post.CvID,
			&post.CreatedAt, &post.UpdatedAt,
			&post.AuthorName, &post.AuthorType,
		); err != nil {
			return nil, translateError(err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}
