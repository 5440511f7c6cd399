package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sportnest/sportscomplex-backend/internal/model"
)

// EnrollmentRepository handles enrollment data access.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

const enrollmentColumns = `id, user_id, class_id, created_at, updated_at`

func scanEnrollment(row interface{ Scan(...any) error }) (*model.Enrollment, error) {
	e := &model.Enrollment{}
	err := row.Scan(&e.ID, &e.UserID, &e.ClassID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Admit counts existing enrollments for the (user, class) pair and for the
// class, asks decide whether the admission rules allow the insert, and inserts
// the enrollment when they do, all inside one transaction holding a per-class
// advisory lock. The lock serializes concurrent admissions for a class, so the
// counts decide sees cannot go stale before the insert commits.
func (r *EnrollmentRepository) Admit(
	ctx context.Context,
	e *model.Enrollment,
	decide func(pairCount, classCount int) bool,
) (inserted bool, pairCount, classCount int, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, 0, 0, err
	}
	defer tx.Rollback(ctx)

	// Released automatically at commit/rollback.
	if _, err := tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtext($1::text))`, e.ClassID); err != nil {
		return false, 0, 0, err
	}

	if err := tx.QueryRow(ctx,
		`SELECT count(*) FROM enrollments WHERE user_id = $1 AND class_id = $2`,
		e.UserID, e.ClassID,
	).Scan(&pairCount); err != nil {
		return false, 0, 0, err
	}

	if err := tx.QueryRow(ctx,
		`SELECT count(*) FROM enrollments WHERE class_id = $1`, e.ClassID,
	).Scan(&classCount); err != nil {
		return false, 0, 0, err
	}

	if !decide(pairCount, classCount) {
		return false, pairCount, classCount, tx.Commit(ctx)
	}

	if err := tx.QueryRow(ctx,
		`INSERT INTO enrollments (user_id, class_id) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		e.UserID, e.ClassID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return false, pairCount, classCount, err
	}

	return true, pairCount, classCount, tx.Commit(ctx)
}

// GetByID retrieves an enrollment by its ID.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Enrollment, error) {
	return scanEnrollment(r.pool.QueryRow(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollments WHERE id = $1`, id))
}

// List retrieves all enrollments.
func (r *EnrollmentRepository) List(ctx context.Context) ([]model.Enrollment, error) {
	return r.listWhere(ctx, ``)
}

// ListByUser retrieves all enrollments for a user.
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Enrollment, error) {
	return r.listWhere(ctx, `WHERE user_id = $1`, userID)
}

// ListByClass retrieves all enrollments for a class.
func (r *EnrollmentRepository) ListByClass(ctx context.Context, classID uuid.UUID) ([]model.Enrollment, error) {
	return r.listWhere(ctx, `WHERE class_id = $1`, classID)
}

func (r *EnrollmentRepository) listWhere(ctx context.Context, where string, args ...any) ([]model.Enrollment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollments `+where+` ORDER BY created_at`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []model.Enrollment
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, err
		}
		enrollments = append(enrollments, *e)
	}
	return enrollments, rows.Err()
}

// GetByPair retrieves the first enrollment for a (user, class) pair.
func (r *EnrollmentRepository) GetByPair(ctx context.Context, userID, classID uuid.UUID) (*model.Enrollment, error) {
	return scanEnrollment(r.pool.QueryRow(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollments
		 WHERE user_id = $1 AND class_id = $2
		 ORDER BY created_at LIMIT 1`, userID, classID))
}

// CountByPair counts enrollments for a (user, class) pair.
func (r *EnrollmentRepository) CountByPair(ctx context.Context, userID, classID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM enrollments WHERE user_id = $1 AND class_id = $2`,
		userID, classID).Scan(&n)
	return n, err
}

// CountByClass counts enrollments for a class.
func (r *EnrollmentRepository) CountByClass(ctx context.Context, classID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM enrollments WHERE class_id = $1`, classID).Scan(&n)
	return n, err
}

// Update moves an enrollment to a different user/class pair.
func (r *EnrollmentRepository) Update(ctx context.Context, e *model.Enrollment) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE enrollments SET user_id = $1, class_id = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		e.UserID, e.ClassID, e.ID,
	)
	return err
}

// Delete removes an enrollment by its ID. Returns the number of deleted rows.
func (r *EnrollmentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
