package model

import (
	"time"

	"github.com/google/uuid"
)

// AgeLevel is the audience a class is aimed at.
type AgeLevel string

const (
	AgeLevelChildren AgeLevel = "Children"
	AgeLevelYouth    AgeLevel = "Youth"
	AgeLevelAdults   AgeLevel = "Adults"
	AgeLevelSeniors  AgeLevel = "Seniors"
)

// SportsClass represents a scheduled class for a sport. WeekSchedule is the
// ordered sequence of session timestamps; ClassDuration is the class length
// in days.
type SportsClass struct {
	ID            uuid.UUID   `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Sport         string      `json:"sport"`
	AgeLevel      AgeLevel    `json:"age_level"`
	WeekSchedule  []time.Time `json:"week_schedule"`
	ClassStart    time.Time   `json:"class_start"`
	ClassDuration int         `json:"class_duration"`
	CreatedBy     uuid.UUID   `json:"created_by"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// CreateSportsClassRequest is the payload for creating or updating a class.
// The sport is referenced by name, the creator by id.
type CreateSportsClassRequest struct {
	Title         string      `json:"title" binding:"required,min=2,max=100"`
	Description   string      `json:"description" binding:"required,min=2,max=255"`
	Sport         string      `json:"sport" binding:"required,max=30"`
	AgeLevel      AgeLevel    `json:"age_level" binding:"required,oneof=Children Youth Adults Seniors"`
	WeekSchedule  []time.Time `json:"week_schedule" binding:"required,min=1"`
	ClassStart    time.Time   `json:"class_start" binding:"required"`
	ClassDuration int         `json:"class_duration" binding:"required,min=1"`
	CreatedBy     string      `json:"created_by" binding:"required,uuid4"`
}
