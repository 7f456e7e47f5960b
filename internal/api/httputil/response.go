// Package httputil holds the JSON envelope used for security-related
// responses (401/403/429). CRUD errors use the error handler's simpler
// {"error": ...} envelope instead.
package httputil

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// SecurityError is the envelope returned on authentication and authorization
// failures: {timestamp, status, error, message, path}.
type SecurityError struct {
	Timestamp int64  `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

func write(c echo.Context, status int, title, message string) error {
	return c.JSON(status, SecurityError{
		Timestamp: time.Now().UnixMilli(),
		Status:    status,
		Error:     title,
		Message:   message,
		Path:      c.Request().URL.Path,
	})
}

// Unauthorized writes a 401 envelope.
func Unauthorized(c echo.Context, message string) error {
	return write(c, http.StatusUnauthorized, "Unauthorized", message)
}

// Forbidden writes a 403 envelope.
func Forbidden(c echo.Context, message string) error {
	return write(c, http.StatusForbidden, "Forbidden", message)
}

// TooManyRequests writes a 429 envelope.
func TooManyRequests(c echo.Context, message string) error {
	return write(c, http.StatusTooManyRequests, "Too Many Requests", message)
}
