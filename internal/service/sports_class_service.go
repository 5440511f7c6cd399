package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sportnest/sportscomplex-backend/internal/model"
	"github.com/sportnest/sportscomplex-backend/internal/repository"
)

// Schedule consistency errors.
var (
	ErrSportUnknown     = errors.New("no sport with this name")
	ErrDurationTooShort = errors.New("class duration shorter than schedule span")
	ErrStartAfterFirst  = errors.New("class start after first scheduled session")
)

const hoursPerDay = 24

// ValidateDateRange reports whether the span in days between the first and
// last schedule entries fits within the class duration. A single-entry
// schedule spans zero days and always fits.
func ValidateDateRange(schedule []time.Time, durationDays int) bool {
	if len(schedule) == 0 {
		return false
	}
	first := schedule[0]
	last := schedule[len(schedule)-1]
	span := last.Sub(first).Hours() / hoursPerDay
	return span <= float64(durationDays)
}

// ValidateStartDate reports whether the class start is no later than the
// first scheduled session.
func ValidateStartDate(start time.Time, schedule []time.Time) bool {
	if len(schedule) == 0 {
		return false
	}
	return !start.After(schedule[0])
}

// SportsClassService handles class business logic, including the schedule
// consistency rules.
type SportsClassService struct {
	classRepo *repository.SportsClassRepository
	sportRepo *repository.SportRepository
}

// NewSportsClassService creates a new SportsClassService.
func NewSportsClassService(classRepo *repository.SportsClassRepository, sportRepo *repository.SportRepository) *SportsClassService {
	return &SportsClassService{classRepo: classRepo, sportRepo: sportRepo}
}

// validateSchedule runs the cross-field checks shared by Create and Update:
// the referenced sport must exist, the schedule span must fit the duration,
// and the class start must precede the first session.
func (s *SportsClassService) validateSchedule(ctx context.Context, sc *model.SportsClass) error {
	if _, err := s.sportRepo.GetByName(ctx, sc.Sport); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSportUnknown
		}
		return err
	}

	if !ValidateDateRange(sc.WeekSchedule, sc.ClassDuration) {
		return ErrDurationTooShort
	}

	if !ValidateStartDate(sc.ClassStart, sc.WeekSchedule) {
		return ErrStartAfterFirst
	}

	return nil
}

// Create validates the schedule rules and inserts the class.
func (s *SportsClassService) Create(ctx context.Context, sc *model.SportsClass) error {
	if err := s.validateSchedule(ctx, sc); err != nil {
		return err
	}
	return s.classRepo.Create(ctx, sc)
}

// Update re-validates the schedule rules and modifies the class.
func (s *SportsClassService) Update(ctx context.Context, sc *model.SportsClass) error {
	if err := s.validateSchedule(ctx, sc); err != nil {
		return err
	}
	return s.classRepo.Update(ctx, sc)
}

// GetByID retrieves a class by its ID.
func (s *SportsClassService) GetByID(ctx context.Context, id uuid.UUID) (*model.SportsClass, error) {
	return s.classRepo.GetByID(ctx, id)
}

// List retrieves all classes.
func (s *SportsClassService) List(ctx context.Context) ([]model.SportsClass, error) {
	return s.classRepo.List(ctx)
}

// Delete removes a class. Enrollments and ratings referencing it are left
// untouched (no cascade).
func (s *SportsClassService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.classRepo.Delete(ctx, id)
}
