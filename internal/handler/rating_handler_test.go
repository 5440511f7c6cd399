package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sportnest/sportscomplex-backend/internal/model"
	"github.com/sportnest/sportscomplex-backend/internal/service"
)

type fakeRatingStore struct {
	rows map[uuid.UUID]*model.Rating
}

func newFakeRatingStore() *fakeRatingStore {
	return &fakeRatingStore{rows: make(map[uuid.UUID]*model.Rating)}
}

func (f *fakeRatingStore) seed(classID uuid.UUID, value int) uuid.UUID {
	id := uuid.New()
	f.rows[id] = &model.Rating{ID: id, Text: "ok", Rating: value, UserID: uuid.New(), ClassID: classID}
	return id
}

func (f *fakeRatingStore) GetByID(_ context.Context, id uuid.UUID) (*model.Rating, error) {
	return f.rows[id], nil
}

func (f *fakeRatingStore) List(_ context.Context) ([]model.Rating, error) { return nil, nil }

func (f *fakeRatingStore) ListByClass(_ context.Context, _ uuid.UUID) ([]model.Rating, error) {
	return nil, nil
}

func (f *fakeRatingStore) ListByUser(_ context.Context, _ uuid.UUID) ([]model.Rating, error) {
	return nil, nil
}

func (f *fakeRatingStore) AverageByClass(_ context.Context, _ uuid.UUID) (*float64, error) {
	return nil, nil
}

func (f *fakeRatingStore) Create(_ context.Context, rt *model.Rating) error {
	rt.ID = uuid.New()
	f.rows[rt.ID] = rt
	return nil
}

func (f *fakeRatingStore) Update(_ context.Context, rt *model.Rating) error {
	f.rows[rt.ID] = rt
	return nil
}

func (f *fakeRatingStore) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func newRatingRouter(t *testing.T, store service.RatingStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	h := NewRatingHandler(service.NewRatingService(store, rdb, zerolog.Nop()))

	r := gin.New()
	r.DELETE("/ratings/:id", h.DeleteRating)
	return r
}

func TestDeleteRating_Missing(t *testing.T) {
	r := newRatingRouter(t, newFakeRatingStore())

	req := httptest.NewRequest(http.MethodDelete, "/ratings/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing id, got %d", w.Code)
	}
}

func TestDeleteRating_Existing(t *testing.T) {
	store := newFakeRatingStore()
	id := store.seed(uuid.New(), 4)
	r := newRatingRouter(t, store)

	req := httptest.NewRequest(http.MethodDelete, "/ratings/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
