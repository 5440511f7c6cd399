package model

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment links a user to a sports class.
type Enrollment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ClassID   uuid.UUID `json:"class_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateEnrollmentRequest is the payload for enrolling a user into a class.
type CreateEnrollmentRequest struct {
	UserID  string `json:"user_id" binding:"required,uuid4"`
	ClassID string `json:"class_id" binding:"required,uuid4"`
}
