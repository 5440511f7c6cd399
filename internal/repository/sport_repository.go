package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sportnest/sportscomplex-backend/internal/model"
)

// SportRepository handles sport data access.
type SportRepository struct {
	pool *pgxpool.Pool
}

// NewSportRepository creates a new SportRepository.
func NewSportRepository(pool *pgxpool.Pool) *SportRepository {
	return &SportRepository{pool: pool}
}

// GetByID retrieves a sport by its ID.
func (r *SportRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Sport, error) {
	s := &model.Sport{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM sports WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByName retrieves a sport by its name. Classes reference sports by name.
func (r *SportRepository) GetByName(ctx context.Context, name string) (*model.Sport, error) {
	s := &model.Sport{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM sports WHERE name = $1`, name,
	).Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves all sports.
func (r *SportRepository) List(ctx context.Context) ([]model.Sport, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM sports ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sports []model.Sport
	for rows.Next() {
		var s model.Sport
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sports = append(sports, s)
	}
	return sports, rows.Err()
}

// Create inserts a new sport.
func (r *SportRepository) Create(ctx context.Context, s *model.Sport) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO sports (name) VALUES ($1)
		 RETURNING id, created_at, updated_at`,
		s.Name,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Delete removes a sport by its ID. Returns the number of deleted rows.
func (r *SportRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sports WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
