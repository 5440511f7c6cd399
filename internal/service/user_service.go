package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/sportnest/sportscomplex-backend/internal/mailer"
	"github.com/sportnest/sportscomplex-backend/internal/model"
)

// User lifecycle errors.
var (
	ErrAccountExists      = errors.New("account already exists")
	ErrVerificationFailed = errors.New("couldn't verify user")
)

// UserStore is the data access the service needs. Implemented by
// repository.UserRepository.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	SetVerified(ctx context.Context, id uuid.UUID) error
	SetPasswordResetCode(ctx context.Context, id uuid.UUID, code string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// UserService handles registration, verification, credentials and admin CRUD.
type UserService struct {
	store UserStore
	auth  *AuthService
	mail  *mailer.Mailer
	log   zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore, auth *AuthService, mail *mailer.Mailer, log zerolog.Logger) *UserService {
	return &UserService{
		store: store,
		auth:  auth,
		mail:  mail,
		log:   log.With().Str("component", "user_service").Logger(),
	}
}

// Register creates an account with the given role and dispatches the
// verification mail. The role is fixed here and never changes afterwards.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest, role model.Role) (*model.User, error) {
	existing, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAccountExists
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:             req.Name,
		Email:            req.Email,
		PasswordHash:     hash,
		Role:             role,
		Verified:         false,
		VerificationCode: uuid.New().String(),
	}
	if err := s.store.Create(ctx, user); err != nil {
		return nil, err
	}

	s.mail.SendVerification(user.Email, user.ID.String(), user.VerificationCode)

	return user, nil
}

// Login verifies credentials and returns a signed token with the user.
// Unverified accounts cannot log in.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.Verified {
		return "", nil, ErrUserNotVerified
	}

	if err := s.auth.CheckPassword(user.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Verify marks an account as verified when the code matches. Verifying an
// already-verified account is a no-op success.
func (s *UserService) Verify(ctx context.Context, id uuid.UUID, code string) error {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Verified {
		return nil
	}

	if user.VerificationCode == "" || user.VerificationCode != code {
		return ErrVerificationFailed
	}

	return s.store.SetVerified(ctx, id)
}

// ForgotPassword stores a fresh reset code and mails it. The caller responds
// identically whether the account exists, is unverified, or got its code, so
// the endpoint never reveals whether an email is registered.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.log.Debug().Str("email", email).Msg("password reset for unknown email")
			return nil
		}
		return err
	}

	if !user.Verified {
		s.log.Debug().Str("email", email).Msg("password reset for unverified account")
		return nil
	}

	code := uuid.New().String()
	if err := s.store.SetPasswordResetCode(ctx, user.ID, code); err != nil {
		return err
	}

	s.mail.SendPasswordReset(user.Email, user.ID.String(), code)

	return nil
}

// ResetPassword replaces the password when the reset code matches, and
// invalidates the code.
func (s *UserService) ResetPassword(ctx context.Context, id uuid.UUID, code, password string) error {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if user.PasswordResetCode == "" || user.PasswordResetCode != code {
		return ErrVerificationFailed
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return err
	}

	return s.store.UpdatePassword(ctx, id, hash)
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.store.GetByID(ctx, id)
}

// List retrieves all users.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.store.List(ctx)
}

// Update modifies a user's name and email and returns the stored row.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateUserRequest) (*model.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Email = req.Email
	if err := s.store.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.store.GetByID(ctx, id)
}

// Delete removes a user. Returns the number of deleted rows.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	return s.store.Delete(ctx, id)
}
