package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sportnest/sportscomplex-backend/internal/model"
	"github.com/sportnest/sportscomplex-backend/internal/response"
	"github.com/sportnest/sportscomplex-backend/internal/service"
	"github.com/sportnest/sportscomplex-backend/internal/validator"
)

// SportsClassHandler handles class management.
type SportsClassHandler struct {
	classService *service.SportsClassService
}

// NewSportsClassHandler creates a new SportsClassHandler.
func NewSportsClassHandler(classService *service.SportsClassService) *SportsClassHandler {
	return &SportsClassHandler{classService: classService}
}

// ListSportsClasses godoc
// GET /api/v1/classes
func (h *SportsClassHandler) ListSportsClasses(c *gin.Context) {
	classes, err := h.classService.List(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}

// GetSportsClass godoc
// GET /api/v1/classes/:id
func (h *SportsClassHandler) GetSportsClass(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	class, err := h.classService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"class": class})
}

// CreateSportsClass godoc
// POST /api/v1/classes
// Creates a class after the schedule consistency checks pass.
func (h *SportsClassHandler) CreateSportsClass(c *gin.Context) {
	class, ok := h.bindClass(c)
	if !ok {
		return
	}

	if err := h.classService.Create(c.Request.Context(), class); err != nil {
		h.failFromClassError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"class": class})
}

// UpdateSportsClass godoc
// PATCH /api/v1/classes/:id
// Replaces a class's fields after re-running the schedule checks.
func (h *SportsClassHandler) UpdateSportsClass(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	class, ok := h.bindClass(c)
	if !ok {
		return
	}
	class.ID = id

	if _, err := h.classService.GetByID(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}

	if err := h.classService.Update(c.Request.Context(), class); err != nil {
		h.failFromClassError(c, err)
		return
	}

	updated, err := h.classService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"class": updated})
}

// DeleteSportsClass godoc
// DELETE /api/v1/classes/:id
func (h *SportsClassHandler) DeleteSportsClass(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.classService.Delete(c.Request.Context(), id)
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

func (h *SportsClassHandler) bindClass(c *gin.Context) (*model.SportsClass, bool) {
	var req model.CreateSportsClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return nil, false
	}

	createdBy, err := uuid.Parse(req.CreatedBy)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrInvalidID)
		return nil, false
	}

	return &model.SportsClass{
		Title:         req.Title,
		Description:   req.Description,
		Sport:         req.Sport,
		AgeLevel:      req.AgeLevel,
		WeekSchedule:  req.WeekSchedule,
		ClassStart:    req.ClassStart,
		ClassDuration: req.ClassDuration,
		CreatedBy:     createdBy,
	}, true
}

func (h *SportsClassHandler) failFromClassError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSportUnknown):
		response.Fail(c, http.StatusNotFound, response.ErrSportUnknown)
	case errors.Is(err, service.ErrDurationTooShort):
		response.Fail(c, http.StatusConflict, response.ErrDurationTooShort)
	case errors.Is(err, service.ErrStartAfterFirst):
		response.Fail(c, http.StatusConflict, response.ErrStartAfterFirst)
	default:
		failFromError(c, err)
	}
}
