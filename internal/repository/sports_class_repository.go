package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sportnest/sportscomplex-backend/internal/model"
)

// SportsClassRepository handles sports class data access.
type SportsClassRepository struct {
	pool *pgxpool.Pool
}

// NewSportsClassRepository creates a new SportsClassRepository.
func NewSportsClassRepository(pool *pgxpool.Pool) *SportsClassRepository {
	return &SportsClassRepository{pool: pool}
}

const classColumns = `id, title, description, sport, age_level, week_schedule,
	class_start, class_duration, created_by, created_at, updated_at`

func scanClass(row interface{ Scan(...any) error }) (*model.SportsClass, error) {
	sc := &model.SportsClass{}
	err := row.Scan(&sc.ID, &sc.Title, &sc.Description, &sc.Sport, &sc.AgeLevel,
		&sc.WeekSchedule, &sc.ClassStart, &sc.ClassDuration, &sc.CreatedBy,
		&sc.CreatedAt, &sc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// GetByID retrieves a class by its ID.
func (r *SportsClassRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.SportsClass, error) {
	return scanClass(r.pool.QueryRow(ctx,
		`SELECT `+classColumns+` FROM sports_classes WHERE id = $1`, id))
}

// List retrieves all classes ordered by start date.
func (r *SportsClassRepository) List(ctx context.Context) ([]model.SportsClass, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+classColumns+` FROM sports_classes ORDER BY class_start`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []model.SportsClass
	for rows.Next() {
		sc, err := scanClass(rows)
		if err != nil {
			return nil, err
		}
		classes = append(classes, *sc)
	}
	return classes, rows.Err()
}

// Create inserts a new class.
func (r *SportsClassRepository) Create(ctx context.Context, sc *model.SportsClass) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO sports_classes
		   (title, description, sport, age_level, week_schedule, class_start, class_duration, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		sc.Title, sc.Description, sc.Sport, sc.AgeLevel, sc.WeekSchedule,
		sc.ClassStart, sc.ClassDuration, sc.CreatedBy,
	).Scan(&sc.ID, &sc.CreatedAt, &sc.UpdatedAt)
}

// Update modifies an existing class.
func (r *SportsClassRepository) Update(ctx context.Context, sc *model.SportsClass) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE sports_classes
		 SET title = $1, description = $2, sport = $3, age_level = $4,
		     week_schedule = $5, class_start = $6, class_duration = $7,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = $8`,
		sc.Title, sc.Description, sc.Sport, sc.AgeLevel, sc.WeekSchedule,
		sc.ClassStart, sc.ClassDuration, sc.ID,
	)
	return err
}

// Delete removes a class by its ID. Returns the number of deleted rows.
func (r *SportsClassRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sports_classes WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
