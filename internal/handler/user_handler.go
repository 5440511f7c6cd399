package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sportnest/sportscomplex-backend/internal/model"
	"github.com/sportnest/sportscomplex-backend/internal/response"
	"github.com/sportnest/sportscomplex-backend/internal/service"
	"github.com/sportnest/sportscomplex-backend/internal/validator"
)

// UserHandler handles registration, authentication and user management.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUser godoc
// POST /api/v1/users/user/register
// Registers an account with the user role and mails a verification code.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	h.register(c, model.RoleUser)
}

// RegisterAdmin godoc
// POST /api/v1/users/admin/register
// Registers an account with the admin role and mails a verification code.
func (h *UserHandler) RegisterAdmin(c *gin.Context) {
	h.register(c, model.RoleAdmin)
}

func (h *UserHandler) register(c *gin.Context, role model.Role) {
	var req model.RegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), &req, role)
	if err != nil {
		if errors.Is(err, service.ErrAccountExists) {
			response.Fail(c, http.StatusConflict, response.ErrAccountExists)
			return
		}
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

// Login godoc
// POST /api/v1/users/login
// Exchanges credentials for a bearer token. Unverified accounts are rejected.
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		case errors.Is(err, service.ErrUserNotVerified):
			response.Fail(c, http.StatusBadRequest, response.ErrNotVerified)
		default:
			failFromError(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, model.LoginResponse{Token: token, User: *user})
}

// Verify godoc
// GET /api/v1/users/verify/:id/:code
// Confirms an account with the mailed verification code.
func (h *UserHandler) Verify(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.userService.Verify(c.Request.Context(), id, c.Param("code"))
	if err != nil {
		if errors.Is(err, service.ErrVerificationFailed) {
			response.Fail(c, http.StatusBadRequest, response.ErrVerificationFailed)
			return
		}
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "user successfully verified"})
}

// ForgotPassword godoc
// POST /api/v1/users/forgotpassword
// Mails a password-reset code. The response is identical whether or not the
// email is registered.
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req model.ForgotPasswordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	err := h.userService.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "if an account with this email is registered, a password reset mail has been sent",
	})
}

// ResetPassword godoc
// POST /api/v1/users/resetpassword/:id/:code
// Replaces the password when the mailed reset code matches.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req model.ResetPasswordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	err := h.userService.ResetPassword(c.Request.Context(), id, c.Param("code"), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrVerificationFailed) {
			response.Fail(c, http.StatusBadRequest, response.ErrVerificationFailed)
			return
		}
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "password successfully updated"})
}

// ListUsers godoc
// GET /api/v1/users
// Lists all users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// GetUser godoc
// GET /api/v1/users/:id
// Fetches a single user.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// UpdateUser godoc
// PATCH /api/v1/users/:id
// Updates a user's name and email.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdateUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, &req)
	if err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// DeleteUser godoc
// DELETE /api/v1/users/:id
// Hard-deletes a user. Enrollments and ratings are not cascaded.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.userService.Delete(c.Request.Context(), id)
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
