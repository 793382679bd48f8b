package postgres

import (
	"context"

	"go-jobnetwork-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type cvRepo struct {
	db *pgxpool.Pool
}

func NewCVRepository(db *pgxpool.Pool) domain.CVRepository {
	return &cvRepo{db: db}
}

func (r *cvRepo) Create(ctx context.Context, cv *domain.CV) error {
	query := `
		INSERT INTO cvs (user_id, name, file_key, file_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.db.QueryRow(ctx, query,
		cv.UserID, cv.Name, cv.FileKey, cv.FileURL, cv.IsActive, cv.CreatedAt, cv.UpdatedAt,
	).Scan(&cv.ID)
	return translateError(err)
}

func (r *cvRepo) GetByID(ctx context.Context, id int64) (*domain.CV, error) {
	query := `SELECT id, user_id, name, file_key, file_url, is_active, created_at, updated_at FROM cvs WHERE id = $1`
	var cv domain.CV
	err := r.db.QueryRow(ctx, query, id).Scan(
		&cv.ID, &cv.UserID, &cv.Name, &cv.FileKey, &cv.FileURL, &cv.IsActive, &cv.CreatedAt, &cv.UpdatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &cv, nil
}

func (r *cvRepo) ListByUser(ctx context.Context, userID string) ([]domain.CV, error) {
	query := `SELECT id, user_id, name, file_key, file_url, is_active, created_at, updated_at
	          FROM cvs WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var cvs []domain.CV
	for rows.Next() {
		var cv domain.CV
		if err := rows.Scan(&cv.ID, &cv.UserID, &cv.Name, &cv.FileKey, &cv.FileURL, &cv.IsActive, &cv.CreatedAt, &cv.UpdatedAt); err != nil {
			return nil, translateError(err)
		}
		cvs = append(cvs, cv)
	}
	return cvs, nil
}

func (r *cvRepo) Update(ctx context.Context, cv *domain.CV) error {
	query := `UPDATE cvs SET name = $2, is_active = $3, updated_at = $4 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, cv.ID, cv.Name, cv.IsActive, cv.UpdatedAt)
	if err != nil {
		return translateError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *cvRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM cvs WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return translateError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IsUsable is the single read the application workflow depends on:
// the CV must be active and owned by ownerID.
func (r *cvRepo) IsUsable(ctx context.Context, id int64, ownerID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM cvs WHERE id = $1 AND user_id = $2 AND is_active = TRUE)`
	var usable bool
	err := r.db.QueryRow(ctx, query, id, ownerID).Scan(&usable)
	return usable, translateError(err)
}

func (r *cvRepo) HasApplications(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE cv_id = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, id).Scan(&exists)
	return exists, translateError(err)
}
