package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/sportnest/sportscomplex-backend/internal/config"
	"github.com/sportnest/sportscomplex-backend/internal/mailer"
	"github.com/sportnest/sportscomplex-backend/internal/model"
	"github.com/sportnest/sportscomplex-backend/internal/service"
	"github.com/sportnest/sportscomplex-backend/internal/validator"
)

type fakeUserStore struct {
	rows map[uuid.UUID]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{rows: make(map[uuid.UUID]*model.User)}
}

func (f *fakeUserStore) seed(u model.User) uuid.UUID {
	u.ID = uuid.New()
	f.rows[u.ID] = &u
	return u.ID
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := f.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.rows {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserStore) List(_ context.Context) ([]model.User, error) { return nil, nil }

func (f *fakeUserStore) Create(_ context.Context, u *model.User) error {
	u.ID = uuid.New()
	f.rows[u.ID] = u
	return nil
}

func (f *fakeUserStore) Update(_ context.Context, u *model.User) error {
	f.rows[u.ID] = u
	return nil
}

func (f *fakeUserStore) SetVerified(_ context.Context, id uuid.UUID) error {
	u, ok := f.rows[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.Verified = true
	return nil
}

func (f *fakeUserStore) SetPasswordResetCode(_ context.Context, id uuid.UUID, code string) error {
	u, ok := f.rows[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.PasswordResetCode = code
	return nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := f.rows[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := f.rows[id]; !ok {
		return 0, nil
	}
	delete(f.rows, id)
	return 1, nil
}

func newUserRouter(t *testing.T, store service.UserStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.Setup()

	cfg := &config.Config{JWTSecret: "handler-test", JWTExpiry: time.Hour, BcryptCost: 4}
	userService := service.NewUserService(
		store,
		service.NewAuthService(cfg),
		mailer.New(cfg, zerolog.Nop()),
		zerolog.Nop(),
	)
	h := NewUserHandler(userService)

	r := gin.New()
	r.POST("/users/forgotpassword", h.ForgotPassword)
	r.DELETE("/users/:id", h.DeleteUser)
	return r
}

func TestDeleteUser_Missing(t *testing.T) {
	r := newUserRouter(t, newFakeUserStore())

	req := httptest.NewRequest(http.MethodDelete, "/users/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing id, got %d", w.Code)
	}
}

func TestDeleteUser_Existing(t *testing.T) {
	store := newFakeUserStore()
	id := store.seed(model.User{Email: "gone@example.com"})
	r := newUserRouter(t, store)

	req := httptest.NewRequest(http.MethodDelete, "/users/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if len(store.rows) != 0 {
		t.Fatalf("expected row removed, %d left", len(store.rows))
	}
}

// The forgot-password endpoint must answer identically for unknown,
// unverified and verified emails so it never reveals whether an address is
// registered.
func TestForgotPassword_ResponseUniform(t *testing.T) {
	store := newFakeUserStore()
	store.seed(model.User{Email: "unverified@example.com", Verified: false})
	store.seed(model.User{Email: "member@example.com", Verified: true})
	r := newUserRouter(t, store)

	post := func(email string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(model.ForgotPasswordRequest{Email: email})
		req := httptest.NewRequest(http.MethodPost, "/users/forgotpassword", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	dataOf := func(w *httptest.ResponseRecorder) string {
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		raw, _ := json.Marshal(body["data"])
		return string(raw)
	}

	var first string
	for _, email := range []string{"nobody@example.com", "unverified@example.com", "member@example.com"} {
		w := post(email)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", email, w.Code, w.Body.String())
		}
		if first == "" {
			first = dataOf(w)
		} else if got := dataOf(w); got != first {
			t.Fatalf("%s: response differs: %s vs %s", email, got, first)
		}
	}
}
