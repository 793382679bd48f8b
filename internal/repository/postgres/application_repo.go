package postgres

import (
	"context"
	"time"

	"go-jobnetwork-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The unique index on
// (post_id, applicant_id) enforces at most one application per candidate
// per post; violations surface as domain.ErrDuplicate.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (post_id, applicant_id, cv_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRow(ctx, query,
		app.PostID, app.ApplicantID, app.CvID, app.Status, app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)
	return translateError(err)
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT
			a.id, a.post_id, a.applicant_id, a.cv_id, a.status, a.created_at, a.updated_at,
			p.title AS post_title,
			u.name AS applicant_name,
			u.email AS applicant_email,
			c.name AS cv_name,
			c.file_url AS cv_url
		FROM applications a
		LEFT JOIN posts p ON a.post_id = p.id
		LEFT JOIN users u ON a.applicant_id = u.id
		LEFT JOIN cvs c ON a.cv_id = c.id
		WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.PostID, &app.ApplicantID, &app.CvID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
		&app.PostTitle, &app.ApplicantName, &app.ApplicantEmail, &app.CvName, &app.CvURL,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &app, nil
}

// ListByApplicant returns a candidate's applications, newest first.
func (r *applicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.post_id, a.applicant_id, a.cv_id, a.status, a.created_at, a.updated_at,
			p.title AS post_title,
			u.name AS applicant_name,
			u.email AS applicant_email,
			c.name AS cv_name,
			c.file_url AS cv_url
		FROM applications a
		LEFT JOIN posts p ON a.post_id = p.id
		LEFT JOIN users u ON a.applicant_id = u.id
		LEFT JOIN cvs c ON a.cv_id = c.id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC`
	return r.queryApplications(ctx, query, applicantID)
}

// ListByPostOwner returns every application received across a company's posts.
func (r *applicationRepo) ListByPostOwner(ctx context.Context, ownerID string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.post_id, a.applicant_id, a.cv_id, a.status, a.created_at, a.updated_at,
			p.title AS post_title,
			u.name AS applicant_name,
			u.email AS applicant_email,
			c.name AS cv_name,
			c.file_url AS cv_url
		FROM applications a
		JOIN posts p ON a.post_id = p.id
		LEFT JOIN users u ON a.applicant_id = u.id
		LEFT JOIN cvs c ON a.cv_id = c.id
		WHERE p.user_id = $1
		ORDER BY a.created_at DESC`
	return r.queryApplications(ctx, query, ownerID)
}

func (r *applicationRepo) ListByPost(ctx context.Context, postID int64) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.post_id, a.applicant_id, a.cv_id, a.status, a.created_at, a.updated_at,
			p.title AS post_title,
			u.name AS applicant_name,
			u.email AS applicant_email,
			c.name AS cv_name,
			c.file_url AS cv_url
		FROM applications a
		LEFT JOIN posts p ON a.post_id = p.id
		LEFT JOIN users u ON a.applicant_id = u.id
		LEFT JOIN cvs c ON a.cv_id = c.id
		WHERE a.post_id = $1
		ORDER BY a.created_at DESC`
	return r.queryApplications(ctx, query, postID)
}

func (r *applicationRepo) queryApplications(ctx context.Context, query string, arg any) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.PostID, &app.ApplicantID, &app.CvID, &app.Status, &app.CreatedAt, &app.UpdatedAt,
			&app.PostTitle, &app.ApplicantName, &app.ApplicantEmail, &app.CvName, &app.CvURL,
		); err != nil {
			return nil, translateError(err)
		}
		apps = append(apps, app)
	}
	return apps, nil
}

// UpdateStatusFrom is a single conditional read-modify-write: the row only
// changes if it is still in the observed status, so racing transitions
// cannot both succeed.
func (r *applicationRepo) UpdateStatusFrom(ctx context.Context, id int64, from, to string) error {
	query := `UPDATE applications SET status = $3, updated_at = $4 WHERE id = $1 AND status = $2`
	result, err := r.db.Exec(ctx, query, id, from, to, time.Now())
	if err != nil {
		return translateError(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
