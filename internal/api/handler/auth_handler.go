package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/turmab/helpdesk/internal/api/httputil"
	"github.com/turmab/helpdesk/internal/api/metrics"
	"github.com/turmab/helpdesk/internal/core/domain"
	"github.com/turmab/helpdesk/internal/core/ports"
)

// AuthHandler handles POST /login. On success the token travels in the
// Authorization response header, not the body, and the header is exposed to
// cross-origin callers.
type AuthHandler struct {
	authService ports.AuthService
	throttle    ports.LoginThrottle
}

// NewAuthHandler returns an AuthHandler. throttle may be nil to disable
// login throttling.
func NewAuthHandler(authService ports.AuthService, throttle ports.LoginThrottle) *AuthHandler {
	return &AuthHandler{authService: authService, throttle: throttle}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates a user and returns a token in the Authorization header.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Login credentials"
// @Success      200   "Token in the Authorization response header"
// @Failure      401   {object}  httputil.SecurityError
// @Failure      429   {object}  httputil.SecurityError
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return httputil.Unauthorized(c, "invalid credentials")
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return httputil.Unauthorized(c, "invalid credentials")
	}

	ctx := c.Request().Context()

	// The throttle degrades open: a Redis outage must not lock everyone out.
	if h.throttle != nil {
		if blocked, err := h.throttle.Blocked(ctx, req.Email); err == nil && blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return httputil.TooManyRequests(c, "too many failed login attempts")
		}
	}

	signed, err := h.authService.Login(ctx, req.Email, req.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		if h.throttle != nil {
			_ = h.throttle.RecordFailure(ctx, req.Email)
		}
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return httputil.Unauthorized(c, "invalid credentials")
	}
	if err != nil {
		return err
	}

	if h.throttle != nil {
		_ = h.throttle.Reset(ctx, req.Email)
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.Response().Header().Set(echo.HeaderAuthorization, "Bearer "+signed)
	c.Response().Header().Set(echo.HeaderAccessControlExposeHeaders, echo.HeaderAuthorization)
	return c.NoContent(http.StatusOK)
}
