package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sportnest/sportscomplex-backend/internal/model"
)

// RatingRepository handles rating data access.
type RatingRepository struct {
	pool *pgxpool.Pool
}

// NewRatingRepository creates a new RatingRepository.
func NewRatingRepository(pool *pgxpool.Pool) *RatingRepository {
	return &RatingRepository{pool: pool}
}

const ratingColumns = `id, text, rating, user_id, class_id, created_at, updated_at`

func scanRating(row interface{ Scan(...any) error }) (*model.Rating, error) {
	rt := &model.Rating{}
	err := row.Scan(&rt.ID, &rt.Text, &rt.Rating, &rt.UserID, &rt.ClassID,
		&rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

// GetByID retrieves a rating by its ID.
func (r *RatingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Rating, error) {
	return scanRating(r.pool.QueryRow(ctx,
		`SELECT `+ratingColumns+` FROM ratings WHERE id = $1`, id))
}

// List retrieves all ratings.
func (r *RatingRepository) List(ctx context.Context) ([]model.Rating, error) {
	return r.listWhere(ctx, ``)
}

// ListByClass retrieves all ratings for a class.
func (r *RatingRepository) ListByClass(ctx context.Context, classID uuid.UUID) ([]model.Rating, error) {
	return r.listWhere(ctx, `WHERE class_id = $1`, classID)
}

// ListByUser retrieves all ratings submitted by a user.
func (r *RatingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Rating, error) {
	return r.listWhere(ctx, `WHERE user_id = $1`, userID)
}

func (r *RatingRepository) listWhere(ctx context.Context, where string, args ...any) ([]model.Rating, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+ratingColumns+` FROM ratings `+where+` ORDER BY created_at`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []model.Rating
	for rows.Next() {
		rt, err := scanRating(rows)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, *rt)
	}
	return ratings, rows.Err()
}

// AverageByClass computes the arithmetic mean of the rating values for a
// class. Returns nil when the class has no ratings.
func (r *RatingRepository) AverageByClass(ctx context.Context, classID uuid.UUID) (*float64, error) {
	var avg *float64
	err := r.pool.QueryRow(ctx,
		`SELECT AVG(rating) FROM ratings WHERE class_id = $1`, classID).Scan(&avg)
	if err != nil {
		return nil, err
	}
	return avg, nil
}

// Create inserts a new rating.
func (r *RatingRepository) Create(ctx context.Context, rt *model.Rating) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO ratings (text, rating, user_id, class_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		rt.Text, rt.Rating, rt.UserID, rt.ClassID,
	).Scan(&rt.ID, &rt.CreatedAt, &rt.UpdatedAt)
}

// Update modifies a rating's text and value.
func (r *RatingRepository) Update(ctx context.Context, rt *model.Rating) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE ratings SET text = $1, rating = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		rt.Text, rt.Rating, rt.ID,
	)
	return err
}

// Delete removes a rating by its ID. Returns the number of deleted rows.
func (r *RatingRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
