package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sportnest/sportscomplex-backend/internal/model"
)

// Enrollment capacity caps.
const (
	// MaxEnrollmentsPerPair caps repeat enrollments of the same user in the
	// same class. It does not limit a user's total across classes.
	MaxEnrollmentsPerPair = 2
	// MaxUsersPerClass caps a class's roster size.
	MaxUsersPerClass = 10
)

// EnrollOutcome is the tagged result of an admission attempt.
type EnrollOutcome int

const (
	EnrollCreated EnrollOutcome = iota
	EnrollDuplicatePair
	EnrollPairCapExceeded
	EnrollRosterCapExceeded
)

// EnrollmentStore is the data access the service needs. Implemented by
// repository.EnrollmentRepository.
type EnrollmentStore interface {
	Admit(ctx context.Context, e *model.Enrollment, decide func(pairCount, classCount int) bool) (inserted bool, pairCount, classCount int, err error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Enrollment, error)
	List(ctx context.Context) ([]model.Enrollment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Enrollment, error)
	ListByClass(ctx context.Context, classID uuid.UUID) ([]model.Enrollment, error)
	GetByPair(ctx context.Context, userID, classID uuid.UUID) (*model.Enrollment, error)
	CountByPair(ctx context.Context, userID, classID uuid.UUID) (int, error)
	CountByClass(ctx context.Context, classID uuid.UUID) (int, error)
	Update(ctx context.Context, e *model.Enrollment) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// EnrollmentService owns the admission-control rules for enrolling users
// into classes. The rules are enforced here and nowhere else.
type EnrollmentService struct {
	store EnrollmentStore
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(store EnrollmentStore) *EnrollmentService {
	return &EnrollmentService{store: store}
}

// admissible is the single admission predicate: no existing enrollment for
// the pair, pair count under its cap, class roster under its cap.
func admissible(pairCount, classCount int) bool {
	return pairCount == 0 &&
		pairCount < MaxEnrollmentsPerPair &&
		classCount < MaxUsersPerClass
}

// outcomeFor maps counts to the rejection reasons in check order:
// duplicate pair, then pair cap, then roster cap. The pair cap can only
// trip on rows predating the duplicate rule.
func outcomeFor(pairCount, classCount int) EnrollOutcome {
	switch {
	case pairCount >= MaxEnrollmentsPerPair:
		return EnrollPairCapExceeded
	case pairCount > 0:
		return EnrollDuplicatePair
	case classCount >= MaxUsersPerClass:
		return EnrollRosterCapExceeded
	default:
		return EnrollCreated
	}
}

// TryEnroll attempts an admission. The store runs the counts, the predicate,
// and the insert under one per-class serialization point, so concurrent
// requests cannot overshoot either cap.
func (s *EnrollmentService) TryEnroll(ctx context.Context, userID, classID uuid.UUID) (EnrollOutcome, *model.Enrollment, error) {
	e := &model.Enrollment{UserID: userID, ClassID: classID}

	inserted, pairCount, classCount, err := s.store.Admit(ctx, e, admissible)
	if err != nil {
		return 0, nil, err
	}
	if !inserted {
		return outcomeFor(pairCount, classCount), nil, nil
	}
	return EnrollCreated, e, nil
}

// HasMaxEnrollments reports whether the (user, class) pair has reached its cap.
func (s *EnrollmentService) HasMaxEnrollments(ctx context.Context, userID, classID uuid.UUID) (bool, error) {
	n, err := s.store.CountByPair(ctx, userID, classID)
	if err != nil {
		return false, err
	}
	return n >= MaxEnrollmentsPerPair, nil
}

// HasMaxUsers reports whether the class roster has reached its cap.
func (s *EnrollmentService) HasMaxUsers(ctx context.Context, classID uuid.UUID) (bool, error) {
	n, err := s.store.CountByClass(ctx, classID)
	if err != nil {
		return false, err
	}
	return n >= MaxUsersPerClass, nil
}

// UserEnrolledInClass reports whether any enrollment exists for the pair.
func (s *EnrollmentService) UserEnrolledInClass(ctx context.Context, userID, classID uuid.UUID) (bool, error) {
	n, err := s.store.CountByPair(ctx, userID, classID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetByID retrieves an enrollment by its ID.
func (s *EnrollmentService) GetByID(ctx context.Context, id uuid.UUID) (*model.Enrollment, error) {
	return s.store.GetByID(ctx, id)
}

// List retrieves all enrollments.
func (s *EnrollmentService) List(ctx context.Context) ([]model.Enrollment, error) {
	return s.store.List(ctx)
}

// ListByUser retrieves a user's enrollments.
func (s *EnrollmentService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Enrollment, error) {
	return s.store.ListByUser(ctx, userID)
}

// ListByClass retrieves a class's enrollments.
func (s *EnrollmentService) ListByClass(ctx context.Context, classID uuid.UUID) ([]model.Enrollment, error) {
	return s.store.ListByClass(ctx, classID)
}

// GetByPair retrieves the (user, class) pair's enrollment record.
func (s *EnrollmentService) GetByPair(ctx context.Context, userID, classID uuid.UUID) (*model.Enrollment, error) {
	return s.store.GetByPair(ctx, userID, classID)
}

// Update moves an enrollment to a different user/class pair by id.
func (s *EnrollmentService) Update(ctx context.Context, e *model.Enrollment) error {
	return s.store.Update(ctx, e)
}

// Delete removes an enrollment. Returns the number of deleted rows.
func (s *EnrollmentService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.store.Delete(ctx, id)
}
