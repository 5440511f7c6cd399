package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sportnest/sportscomplex-backend/internal/model"
	"github.com/sportnest/sportscomplex-backend/internal/repository"
)

// SportService handles sport business logic.
type SportService struct {
	sportRepo *repository.SportRepository
}

// NewSportService creates a new SportService.
func NewSportService(sportRepo *repository.SportRepository) *SportService {
	return &SportService{sportRepo: sportRepo}
}

// GetByID retrieves a sport by its ID.
func (s *SportService) GetByID(ctx context.Context, id uuid.UUID) (*model.Sport, error) {
	return s.sportRepo.GetByID(ctx, id)
}

// GetByName retrieves a sport by its name.
func (s *SportService) GetByName(ctx context.Context, name string) (*model.Sport, error) {
	return s.sportRepo.GetByName(ctx, name)
}

// List retrieves all sports.
func (s *SportService) List(ctx context.Context) ([]model.Sport, error) {
	return s.sportRepo.List(ctx)
}

// Create creates a new sport. The unique index on name rejects duplicates.
func (s *SportService) Create(ctx context.Context, sport *model.Sport) error {
	return s.sportRepo.Create(ctx, sport)
}

// Delete removes a sport. Classes referencing it by name are left untouched.
func (s *SportService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.sportRepo.Delete(ctx, id)
}
