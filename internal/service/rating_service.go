package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sportnest/sportscomplex-backend/internal/config"
	"github.com/sportnest/sportscomplex-backend/internal/model"
)

// averageCacheTTL bounds staleness if an invalidation is ever missed.
const averageCacheTTL = 5 * time.Minute

// RatingStore is the data access the service needs. Implemented by
// repository.RatingRepository.
type RatingStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Rating, error)
	List(ctx context.Context) ([]model.Rating, error)
	ListByClass(ctx context.Context, classID uuid.UUID) ([]model.Rating, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Rating, error)
	AverageByClass(ctx context.Context, classID uuid.UUID) (*float64, error)
	Create(ctx context.Context, rt *model.Rating) error
	Update(ctx context.Context, rt *model.Rating) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// RatingService handles rating CRUD and the per-class average aggregate,
// cached in Redis and invalidated on every write for the class.
type RatingService struct {
	store RatingStore
	rdb   *redis.Client
	log   zerolog.Logger
}

// NewRatingService creates a new RatingService.
func NewRatingService(store RatingStore, rdb *redis.Client, log zerolog.Logger) *RatingService {
	return &RatingService{
		store: store,
		rdb:   rdb,
		log:   log.With().Str("component", "rating_service").Logger(),
	}
}

// Create inserts a rating and invalidates the class's cached average.
func (s *RatingService) Create(ctx context.Context, rt *model.Rating) error {
	if err := s.store.Create(ctx, rt); err != nil {
		return err
	}
	s.invalidateAverage(ctx, rt.ClassID)
	return nil
}

// Update modifies a rating and invalidates the class's cached average.
func (s *RatingService) Update(ctx context.Context, rt *model.Rating) error {
	if err := s.store.Update(ctx, rt); err != nil {
		return err
	}
	s.invalidateAverage(ctx, rt.ClassID)
	return nil
}

// Delete removes a rating and invalidates the class's cached average.
// Returns the number of deleted rows.
func (s *RatingService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	rt, err := s.store.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}

	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.invalidateAverage(ctx, rt.ClassID)
	}
	return n, nil
}

// GetByID retrieves a rating by its ID.
func (s *RatingService) GetByID(ctx context.Context, id uuid.UUID) (*model.Rating, error) {
	return s.store.GetByID(ctx, id)
}

// List retrieves all ratings.
func (s *RatingService) List(ctx context.Context) ([]model.Rating, error) {
	return s.store.List(ctx)
}

// ListByClass retrieves a class's ratings.
func (s *RatingService) ListByClass(ctx context.Context, classID uuid.UUID) ([]model.Rating, error) {
	return s.store.ListByClass(ctx, classID)
}

// ListByUser retrieves a user's ratings.
func (s *RatingService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Rating, error) {
	return s.store.ListByUser(ctx, userID)
}

// AverageForClass returns the arithmetic mean of a class's ratings, or nil
// when the class has none. The value is served from Redis when cached.
func (s *RatingService) AverageForClass(ctx context.Context, classID uuid.UUID) (*float64, error) {
	key := config.CacheKey.ClassAverageRatingKey(classID.String())

	cached, err := s.rdb.Get(ctx, key).Result()
	if err == nil {
		avg, parseErr := strconv.ParseFloat(cached, 64)
		if parseErr == nil {
			return &avg, nil
		}
		// Unparseable entry, fall through to the database.
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("average cache read failed")
	}

	avg, err := s.store.AverageByClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	if avg != nil {
		if err := s.rdb.Set(ctx, key, strconv.FormatFloat(*avg, 'f', -1, 64), averageCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("average cache write failed")
		}
	}
	return avg, nil
}

func (s *RatingService) invalidateAverage(ctx context.Context, classID uuid.UUID) {
	key := config.CacheKey.ClassAverageRatingKey(classID.String())
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.log.Warn().Err(err).Str("class_id", classID.String()).Msg("average cache invalidation failed")
	}
}
