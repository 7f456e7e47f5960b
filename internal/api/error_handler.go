package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/turmab/helpdesk/internal/core/domain"
)

// errorResponse is the canonical error envelope for CRUD errors. Security
// failures (401/403/429) use the richer httputil.SecurityError envelope and
// never reach this handler.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrPersonNotFound):
		return http.StatusNotFound, "person not found"
	case errors.Is(err, domain.ErrTicketNotFound):
		return http.StatusNotFound, "ticket not found"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "e-mail already registered"
	case errors.Is(err, domain.ErrCPFTaken):
		return http.StatusConflict, "cpf already registered"
	case errors.Is(err, domain.ErrPersonHasTickets):
		return http.StatusConflict, "person has tickets and cannot be deleted"
	case errors.Is(err, domain.ErrInvalidRoleCode),
		errors.Is(err, domain.ErrInvalidStatusCode),
		errors.Is(err, domain.ErrInvalidPriorityCode):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
