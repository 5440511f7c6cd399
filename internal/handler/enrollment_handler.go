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

// EnrollmentHandler handles enrollment endpoints. The admission rules live in
// the service; this layer only translates outcomes to status codes.
type EnrollmentHandler struct {
	enrollmentService *service.EnrollmentService
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollmentService *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// CreateEnrollment godoc
// POST /api/v1/enrollments
// Attempts an admission; capacity and duplicate violations map to 409.
func (h *EnrollmentHandler) CreateEnrollment(c *gin.Context) {
	req, ok := h.bindEnrollment(c)
	if !ok {
		return
	}

	outcome, enrollment, err := h.enrollmentService.TryEnroll(c.Request.Context(), req.UserID, req.ClassID)
	if err != nil {
		failFromError(c, err)
		return
	}

	switch outcome {
	case service.EnrollDuplicatePair:
		response.Fail(c, http.StatusConflict, response.ErrDuplicateEnrollment)
	case service.EnrollPairCapExceeded:
		response.Fail(c, http.StatusConflict, response.ErrPairCapExceeded)
	case service.EnrollRosterCapExceeded:
		response.Fail(c, http.StatusConflict, response.ErrRosterCapExceeded)
	default:
		response.Success(c, http.StatusCreated, gin.H{"enrollment": enrollment})
	}
}

// ListEnrollments godoc
// GET /api/v1/enrollments
func (h *EnrollmentHandler) ListEnrollments(c *gin.Context) {
	enrollments, err := h.enrollmentService.List(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"enrollments": enrollments})
}

// GetEnrollment godoc
// GET /api/v1/enrollments/:id
func (h *EnrollmentHandler) GetEnrollment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	enrollment, err := h.enrollmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"enrollment": enrollment})
}

// EnrollmentsByUser godoc
// GET /api/v1/enrollments/user/:userId
func (h *EnrollmentHandler) EnrollmentsByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	enrollments, err := h.enrollmentService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"enrollments": enrollments})
}

// EnrollmentsByClass godoc
// GET /api/v1/enrollments/class/:classId
func (h *EnrollmentHandler) EnrollmentsByClass(c *gin.Context) {
	classID, ok := parseIDParam(c, "classId")
	if !ok {
		return
	}

	enrollments, err := h.enrollmentService.ListByClass(c.Request.Context(), classID)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"enrollments": enrollments})
}

// EnrollmentByPair godoc
// GET /api/v1/enrollments/user/:userId/class/:classId
func (h *EnrollmentHandler) EnrollmentByPair(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	classID, ok := parseIDParam(c, "classId")
	if !ok {
		return
	}

	enrollment, err := h.enrollmentService.GetByPair(c.Request.Context(), userID, classID)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"enrollment": enrollment})
}

// UpdateEnrollment godoc
// PATCH /api/v1/enrollments/:id
func (h *EnrollmentHandler) UpdateEnrollment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	req, ok := h.bindEnrollment(c)
	if !ok {
		return
	}

	if _, err := h.enrollmentService.GetByID(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}

	enrollment := &model.Enrollment{ID: id, UserID: req.UserID, ClassID: req.ClassID}
	if err := h.enrollmentService.Update(c.Request.Context(), enrollment); err != nil {
		failFromError(c, err)
		return
	}

	updated, err := h.enrollmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"enrollment": updated})
}

// DeleteEnrollment godoc
// DELETE /api/v1/enrollments/:id
// Unenrolls; available to any authenticated account.
func (h *EnrollmentHandler) DeleteEnrollment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.enrollmentService.Delete(c.Request.Context(), id)
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

type enrollmentIDs struct {
	UserID  uuid.UUID
	ClassID uuid.UUID
}

func (h *EnrollmentHandler) bindEnrollment(c *gin.Context) (*enrollmentIDs, bool) {
	var req model.CreateEnrollmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return nil, false
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrInvalidID)
		return nil, false
	}
	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrInvalidID)
		return nil, false
	}

	return &enrollmentIDs{UserID: userID, ClassID: classID}, true
}
