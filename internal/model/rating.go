package model

import (
	"time"

	"github.com/google/uuid"
)

// Rating is a user's review of a class.
type Rating struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	UserID    uuid.UUID `json:"user_id"`
	ClassID   uuid.UUID `json:"class_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateRatingRequest is the payload for submitting a rating.
type CreateRatingRequest struct {
	Text    string `json:"text" binding:"required,min=2,max=255"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	UserID  string `json:"user_id" binding:"required,uuid4"`
	ClassID string `json:"class_id" binding:"required,uuid4"`
}
