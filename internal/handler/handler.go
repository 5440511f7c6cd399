package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sportnest/sportscomplex-backend/internal/response"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// parseIDParam parses a UUID path parameter. A malformed id is reported as
// 404, matching the not-found contract for unknown ids.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// failFromError maps persistence errors to HTTP responses: missing rows to
// 404, unique violations to 409, everything else to 500.
func failFromError(c *gin.Context, err error) {
	if errors.Is(err, pgx.ErrNoRows) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		response.Fail(c, http.StatusConflict, response.ErrConflict)
		return
	}

	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}
