package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sportnest/sportscomplex-backend/internal/model"
)

// fakeEnrollmentStore keeps enrollments in memory and mirrors the
// count-decide-insert shape of the real store.
type fakeEnrollmentStore struct {
	rows map[uuid.UUID]*model.Enrollment
}

func newFakeEnrollmentStore() *fakeEnrollmentStore {
	return &fakeEnrollmentStore{rows: make(map[uuid.UUID]*model.Enrollment)}
}

func (f *fakeEnrollmentStore) counts(userID, classID uuid.UUID) (pairCount, classCount int) {
	for _, e := range f.rows {
		if e.ClassID == classID {
			classCount++
			if e.UserID == userID {
				pairCount++
			}
		}
	}
	return pairCount, classCount
}

// seed inserts a row without going through admission.
func (f *fakeEnrollmentStore) seed(userID, classID uuid.UUID) {
	id := uuid.New()
	f.rows[id] = &model.Enrollment{ID: id, UserID: userID, ClassID: classID}
}

func (f *fakeEnrollmentStore) Admit(_ context.Context, e *model.Enrollment, decide func(pairCount, classCount int) bool) (bool, int, int, error) {
	pairCount, classCount := f.counts(e.UserID, e.ClassID)
	if !decide(pairCount, classCount) {
		return false, pairCount, classCount, nil
	}
	e.ID = uuid.New()
	f.rows[e.ID] = e
	return true, pairCount, classCount, nil
}

func (f *fakeEnrollmentStore) GetByID(_ context.Context, id uuid.UUID) (*model.Enrollment, error) {
	return f.rows[id], nil
}

func (f *fakeEnrollmentStore) List(_ context.Context) ([]model.Enrollment, error) {
	var out []model.Enrollment
	for _, e := range f.rows {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEnrollmentStore) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Enrollment, error) {
	var out []model.Enrollment
	for _, e := range f.rows {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) ListByClass(_ context.Context, classID uuid.UUID) ([]model.Enrollment, error) {
	var out []model.Enrollment
	for _, e := range f.rows {
		if e.ClassID == classID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) GetByPair(_ context.Context, userID, classID uuid.UUID) (*model.Enrollment, error) {
	for _, e := range f.rows {
		if e.UserID == userID && e.ClassID == classID {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEnrollmentStore) CountByPair(_ context.Context, userID, classID uuid.UUID) (int, error) {
	pairCount, _ := f.counts(userID, classID)
	return pairCount, nil
}

func (f *fakeEnrollmentStore) CountByClass(_ context.Context, classID uuid.UUID) (int, error) {
	_, classCount := f.counts(uuid.Nil, classID)
	return classCount, nil
}

func (f *fakeEnrollmentStore) Update(_ context.Context, e *model.Enrollment) error {
	f.rows[e.ID] = e
	return nil
}

func (f *fakeEnrollmentStore) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func TestTryEnroll_Created(t *testing.T) {
	store := newFakeEnrollmentStore()
	svc := NewEnrollmentService(store)

	userID, classID := uuid.New(), uuid.New()

	outcome, e, err := svc.TryEnroll(context.Background(), userID, classID)
	if err != nil {
		t.Fatalf("TryEnroll: %v", err)
	}
	if outcome != EnrollCreated {
		t.Fatalf("expected EnrollCreated, got %d", outcome)
	}
	if e == nil || e.ID == uuid.Nil {
		t.Fatalf("expected persisted enrollment with id, got %+v", e)
	}
}

func TestTryEnroll_DuplicatePair(t *testing.T) {
	store := newFakeEnrollmentStore()
	svc := NewEnrollmentService(store)

	userID, classID := uuid.New(), uuid.New()
	store.seed(userID, classID)

	outcome, e, err := svc.TryEnroll(context.Background(), userID, classID)
	if err != nil {
		t.Fatalf("TryEnroll: %v", err)
	}
	if outcome != EnrollDuplicatePair {
		t.Fatalf("expected EnrollDuplicatePair, got %d", outcome)
	}
	if e != nil {
		t.Fatalf("expected no enrollment on rejection, got %+v", e)
	}
	if n, _ := store.CountByPair(context.Background(), userID, classID); n != 1 {
		t.Fatalf("expected pair count unchanged at 1, got %d", n)
	}
}

func TestTryEnroll_PairCapBeatsDuplicate(t *testing.T) {
	store := newFakeEnrollmentStore()
	svc := NewEnrollmentService(store)

	userID, classID := uuid.New(), uuid.New()
	// Two rows for the same pair predate the duplicate rule.
	store.seed(userID, classID)
	store.seed(userID, classID)

	outcome, _, err := svc.TryEnroll(context.Background(), userID, classID)
	if err != nil {
		t.Fatalf("TryEnroll: %v", err)
	}
	if outcome != EnrollPairCapExceeded {
		t.Fatalf("expected EnrollPairCapExceeded, got %d", outcome)
	}
}

func TestTryEnroll_RosterCap(t *testing.T) {
	store := newFakeEnrollmentStore()
	svc := NewEnrollmentService(store)

	classID := uuid.New()
	for i := 0; i < MaxUsersPerClass; i++ {
		store.seed(uuid.New(), classID)
	}

	outcome, _, err := svc.TryEnroll(context.Background(), uuid.New(), classID)
	if err != nil {
		t.Fatalf("TryEnroll: %v", err)
	}
	if outcome != EnrollRosterCapExceeded {
		t.Fatalf("expected EnrollRosterCapExceeded, got %d", outcome)
	}
	if n, _ := store.CountByClass(context.Background(), classID); n != MaxUsersPerClass {
		t.Fatalf("expected roster unchanged at %d, got %d", MaxUsersPerClass, n)
	}
}

func TestTryEnroll_LastSeatAdmits(t *testing.T) {
	store := newFakeEnrollmentStore()
	svc := NewEnrollmentService(store)

	classID := uuid.New()
	for i := 0; i < MaxUsersPerClass-1; i++ {
		store.seed(uuid.New(), classID)
	}

	outcome, _, err := svc.TryEnroll(context.Background(), uuid.New(), classID)
	if err != nil {
		t.Fatalf("TryEnroll: %v", err)
	}
	if outcome != EnrollCreated {
		t.Fatalf("expected EnrollCreated for last seat, got %d", outcome)
	}
	if n, _ := store.CountByClass(context.Background(), classID); n != MaxUsersPerClass {
		t.Fatalf("expected roster full at %d, got %d", MaxUsersPerClass, n)
	}
}

func TestTryEnroll_DifferentClassesIndependent(t *testing.T) {
	store := newFakeEnrollmentStore()
	svc := NewEnrollmentService(store)

	userID := uuid.New()
	for i := 0; i < 3; i++ {
		outcome, _, err := svc.TryEnroll(context.Background(), userID, uuid.New())
		if err != nil {
			t.Fatalf("TryEnroll: %v", err)
		}
		if outcome != EnrollCreated {
			t.Fatalf("enrollment %d: expected EnrollCreated, got %d", i, outcome)
		}
	}
}

func TestHasMaxEnrollments(t *testing.T) {
	store := newFakeEnrollmentStore()
	svc := NewEnrollmentService(store)

	userID, classID := uuid.New(), uuid.New()

	full, err := svc.HasMaxEnrollments(context.Background(), userID, classID)
	if err != nil || full {
		t.Fatalf("expected pair under cap, got full=%t err=%v", full, err)
	}

	store.seed(userID, classID)
	store.seed(userID, classID)

	full, err = svc.HasMaxEnrollments(context.Background(), userID, classID)
	if err != nil || !full {
		t.Fatalf("expected pair at cap, got full=%t err=%v", full, err)
	}
}

func TestUserEnrolledInClass(t *testing.T) {
	store := newFakeEnrollmentStore()
	svc := NewEnrollmentService(store)

	userID, classID := uuid.New(), uuid.New()

	enrolled, err := svc.UserEnrolledInClass(context.Background(), userID, classID)
	if err != nil || enrolled {
		t.Fatalf("expected not enrolled, got enrolled=%t err=%v", enrolled, err)
	}

	store.seed(userID, classID)

	enrolled, err = svc.UserEnrolledInClass(context.Background(), userID, classID)
	if err != nil || !enrolled {
		t.Fatalf("expected enrolled, got enrolled=%t err=%v", enrolled, err)
	}
}
