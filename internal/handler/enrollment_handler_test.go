package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sportnest/sportscomplex-backend/internal/model"
	"github.com/sportnest/sportscomplex-backend/internal/response"
	"github.com/sportnest/sportscomplex-backend/internal/service"
	"github.com/sportnest/sportscomplex-backend/internal/validator"
)

type fakeEnrollmentStore struct {
	rows map[uuid.UUID]*model.Enrollment
}

func newFakeEnrollmentStore() *fakeEnrollmentStore {
	return &fakeEnrollmentStore{rows: make(map[uuid.UUID]*model.Enrollment)}
}

func (f *fakeEnrollmentStore) seed(userID, classID uuid.UUID) uuid.UUID {
	id := uuid.New()
	f.rows[id] = &model.Enrollment{ID: id, UserID: userID, ClassID: classID}
	return id
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

func (f *fakeEnrollmentStore) List(_ context.Context) ([]model.Enrollment, error) { return nil, nil }

func (f *fakeEnrollmentStore) ListByUser(_ context.Context, _ uuid.UUID) ([]model.Enrollment, error) {
	return nil, nil
}

func (f *fakeEnrollmentStore) ListByClass(_ context.Context, _ uuid.UUID) ([]model.Enrollment, error) {
	return nil, nil
}

func (f *fakeEnrollmentStore) GetByPair(_ context.Context, _, _ uuid.UUID) (*model.Enrollment, error) {
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

func newEnrollmentRouter(t *testing.T, store service.EnrollmentStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.Setup()

	h := NewEnrollmentHandler(service.NewEnrollmentService(store))
	r := gin.New()
	r.POST("/enrollments", h.CreateEnrollment)
	r.DELETE("/enrollments/:id", h.DeleteEnrollment)
	return r
}

func postEnrollment(t *testing.T, r *gin.Engine, userID, classID uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(model.CreateEnrollmentRequest{
		UserID:  userID.String(),
		ClassID: classID.String(),
	})
	req := httptest.NewRequest(http.MethodPost, "/enrollments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	errBody, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error body, got %v", body)
	}
	code, _ := errBody["code"].(string)
	return code
}

func TestCreateEnrollment_Created(t *testing.T) {
	store := newFakeEnrollmentStore()
	r := newEnrollmentRouter(t, store)

	w := postEnrollment(t, r, uuid.New(), uuid.New())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateEnrollment_DuplicatePairConflict(t *testing.T) {
	store := newFakeEnrollmentStore()
	userID, classID := uuid.New(), uuid.New()
	store.seed(userID, classID)
	r := newEnrollmentRouter(t, store)

	w := postEnrollment(t, r, userID, classID)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if code := errorCode(t, w); code != string(response.ErrDuplicateEnrollment) {
		t.Fatalf("expected %s, got %s", response.ErrDuplicateEnrollment, code)
	}
}

func TestCreateEnrollment_PairCapConflict(t *testing.T) {
	store := newFakeEnrollmentStore()
	userID, classID := uuid.New(), uuid.New()
	store.seed(userID, classID)
	store.seed(userID, classID)
	r := newEnrollmentRouter(t, store)

	w := postEnrollment(t, r, userID, classID)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if code := errorCode(t, w); code != string(response.ErrPairCapExceeded) {
		t.Fatalf("expected %s, got %s", response.ErrPairCapExceeded, code)
	}
}

func TestCreateEnrollment_RosterFullConflict(t *testing.T) {
	store := newFakeEnrollmentStore()
	classID := uuid.New()
	for i := 0; i < service.MaxUsersPerClass; i++ {
		store.seed(uuid.New(), classID)
	}
	r := newEnrollmentRouter(t, store)

	w := postEnrollment(t, r, uuid.New(), classID)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if code := errorCode(t, w); code != string(response.ErrRosterCapExceeded) {
		t.Fatalf("expected %s, got %s", response.ErrRosterCapExceeded, code)
	}
}

func TestDeleteEnrollment_Missing(t *testing.T) {
	store := newFakeEnrollmentStore()
	r := newEnrollmentRouter(t, store)

	target := fmt.Sprintf("/enrollments/%s", uuid.New())
	req := httptest.NewRequest(http.MethodDelete, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing id, got %d", w.Code)
	}
}

func TestDeleteEnrollment_Existing(t *testing.T) {
	store := newFakeEnrollmentStore()
	id := store.seed(uuid.New(), uuid.New())
	r := newEnrollmentRouter(t, store)

	req := httptest.NewRequest(http.MethodDelete, "/enrollments/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if len(store.rows) != 0 {
		t.Fatalf("expected row removed, %d left", len(store.rows))
	}
}

func TestDeleteEnrollment_MalformedID(t *testing.T) {
	store := newFakeEnrollmentStore()
	r := newEnrollmentRouter(t, store)

	req := httptest.NewRequest(http.MethodDelete, "/enrollments/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for malformed id, got %d", w.Code)
	}
	if code := errorCode(t, w); code != string(response.ErrInvalidID) {
		t.Fatalf("expected %s, got %s", response.ErrInvalidID, code)
	}
}
