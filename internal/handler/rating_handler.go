package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sportnest/sportscomplex-backend/internal/model"
	"github.com/sportnest/sportscomplex-backend/internal/response"
	"github.com/sportnest/sportscomplex-backend/internal/service"
	"github.com/sportnest/sportscomplex-backend/internal/validator"
)

// RatingHandler handles rating endpoints.
type RatingHandler struct {
	ratingService *service.RatingService
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(ratingService *service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// CreateRating godoc
// POST /api/v1/ratings
func (h *RatingHandler) CreateRating(c *gin.Context) {
	var req model.CreateRatingRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrInvalidID)
		return
	}
	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrInvalidID)
		return
	}

	rating := &model.Rating{
		Text:    req.Text,
		Rating:  req.Rating,
		UserID:  userID,
		ClassID: classID,
	}
	if err := h.ratingService.Create(c.Request.Context(), rating); err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"rating": rating})
}

// ListRatings godoc
// GET /api/v1/ratings
func (h *RatingHandler) ListRatings(c *gin.Context) {
	ratings, err := h.ratingService.List(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ratings": ratings})
}

// GetRating godoc
// GET /api/v1/ratings/:id
func (h *RatingHandler) GetRating(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rating, err := h.ratingService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rating": rating})
}

// RatingsByClass godoc
// GET /api/v1/ratings/class/:classId
func (h *RatingHandler) RatingsByClass(c *gin.Context) {
	classID, ok := parseIDParam(c, "classId")
	if !ok {
		return
	}

	ratings, err := h.ratingService.ListByClass(c.Request.Context(), classID)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ratings": ratings})
}

// RatingsByUser godoc
// GET /api/v1/ratings/user/:userId
func (h *RatingHandler) RatingsByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	ratings, err := h.ratingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ratings": ratings})
}

// AverageRatingForClass godoc
// GET /api/v1/ratings/average/:classId
// Returns the mean rating for a class, or null when the class has no ratings.
func (h *RatingHandler) AverageRatingForClass(c *gin.Context) {
	classID, ok := parseIDParam(c, "classId")
	if !ok {
		return
	}

	avg, err := h.ratingService.AverageForClass(c.Request.Context(), classID)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"class_id": classID, "average": avg})
}

// DeleteRating godoc
// DELETE /api/v1/ratings/:id
func (h *RatingHandler) DeleteRating(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.ratingService.Delete(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}
	if deleted == 0 {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	c.Status(http.StatusNoContent)
}
