package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sportnest/sportscomplex-backend/internal/model"
	"github.com/sportnest/sportscomplex-backend/internal/response"
	"github.com/sportnest/sportscomplex-backend/internal/service"
	"github.com/sportnest/sportscomplex-backend/internal/validator"
)

// SportHandler handles sport management.
type SportHandler struct {
	sportService *service.SportService
}

// NewSportHandler creates a new SportHandler.
func NewSportHandler(sportService *service.SportService) *SportHandler {
	return &SportHandler{sportService: sportService}
}

// ListSports godoc
// GET /api/v1/sports
func (h *SportHandler) ListSports(c *gin.Context) {
	sports, err := h.sportService.List(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sports": sports})
}

// GetSport godoc
// GET /api/v1/sports/:id
func (h *SportHandler) GetSport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sport, err := h.sportService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sport": sport})
}

// CreateSport godoc
// POST /api/v1/sports
func (h *SportHandler) CreateSport(c *gin.Context) {
	var req model.CreateSportRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sport := &model.Sport{Name: req.Name}
	if err := h.sportService.Create(c.Request.Context(), sport); err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"sport": sport})
}

// DeleteSport godoc
// DELETE /api/v1/sports/:id
func (h *SportHandler) DeleteSport(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.sportService.Delete(c.Request.Context(), id)
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
