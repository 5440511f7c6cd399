package model

import (
	"time"

	"github.com/google/uuid"
)

// Sport represents an offered sport. Classes reference sports by name.
type Sport struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSportRequest is the payload for adding a sport.
type CreateSportRequest struct {
	Name string `json:"name" binding:"required,min=2,max=30"`
}
