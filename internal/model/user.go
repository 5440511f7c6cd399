package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is a user's authorization level, fixed at registration.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered account. The password hash and the one-time
// codes never leave the API.
type User struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	Role              Role      `json:"role"`
	Verified          bool      `json:"verified"`
	VerificationCode  string    `json:"-"`
	PasswordResetCode string    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RegisterRequest is the payload for account registration (user and admin).
type RegisterRequest struct {
	Name            string `json:"name" binding:"required,min=2,max=30"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6,max=128"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ForgotPasswordRequest asks for a password-reset mail.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest carries the replacement password.
type ResetPasswordRequest struct {
	Password        string `json:"password" binding:"required,min=6,max=128"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

// UpdateUserRequest is the admin payload for updating an account.
// The role is fixed at registration and cannot be changed here.
type UpdateUserRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=30"`
	Email string `json:"email" binding:"required,email"`
}
