package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sportnest/sportscomplex-backend/internal/model"
	"github.com/sportnest/sportscomplex-backend/internal/response"
	"github.com/sportnest/sportscomplex-backend/internal/service"
)

// ContextKeyUser is the Gin context key for the authenticated user.
const ContextKeyUser = "auth_user"

// AccessLevel is the role requirement a route declares.
type AccessLevel int

const (
	// AccessUser admits accounts with the user role only.
	AccessUser AccessLevel = iota
	// AccessAdmin admits accounts with the admin role only.
	AccessAdmin
	// AccessAny admits any authenticated account.
	AccessAny
)

// RequireAuth validates the bearer token, resolves it to a stored user and
// enforces the access level. Every failure (missing header, bad signature,
// unknown user, wrong role) aborts with the same 401 body.
func RequireAuth(authService *service.AuthService, userService *service.UserService, level AccessLevel) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c, authService, userService)
		if !ok {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthorised)
			return
		}

		switch level {
		case AccessUser:
			if user.Role != model.RoleUser {
				response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthorised)
				return
			}
		case AccessAdmin:
			if user.Role != model.RoleAdmin {
				response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthorised)
				return
			}
		case AccessAny:
			// Any authenticated role passes.
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// GetUser retrieves the authenticated user from the Gin context.
func GetUser(c *gin.Context) *model.User {
	val, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	user, ok := val.(*model.User)
	if !ok {
		return nil
	}
	return user
}

func resolveUser(c *gin.Context, authService *service.AuthService, userService *service.UserService) (*model.User, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, false
	}

	claims, err := authService.ValidateToken(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, false
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, false
	}

	user, err := userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return nil, false
	}

	return user, true
}
