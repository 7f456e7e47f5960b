package middleware

import (
	"github.com/turmab/helpdesk/internal/api/httputil"
	"github.com/turmab/helpdesk/internal/api/metrics"
	"github.com/turmab/helpdesk/internal/core/domain"

	"github.com/labstack/echo/v4"
)

// RequireAuth rejects requests that carry no authenticated principal.
// Missing, expired, and malformed tokens all end up here with the same 401
// outcome, since Auth ignores anything it cannot validate.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if PrincipalFrom(c) == nil {
				metrics.AuthDeniedTotal.WithLabelValues("unauthenticated").Inc()
				return httputil.Unauthorized(c, "authentication required")
			}
			return next(c)
		}
	}
}

// RequireRoles rejects authenticated requests whose principal carries none
// of the given roles. Must run after RequireAuth.
func RequireRoles(roles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := PrincipalFrom(c)
			if principal == nil {
				metrics.AuthDeniedTotal.WithLabelValues("unauthenticated").Inc()
				return httputil.Unauthorized(c, "authentication required")
			}
			if !principal.HasAnyRole(roles...) {
				metrics.AuthDeniedTotal.WithLabelValues("forbidden").Inc()
				return httputil.Forbidden(c, "insufficient role")
			}
			return next(c)
		}
	}
}
