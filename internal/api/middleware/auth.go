package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/turmab/helpdesk/internal/core/domain"
	"github.com/turmab/helpdesk/internal/core/ports"
	"github.com/turmab/helpdesk/internal/core/token"
)

// PrincipalKey is the echo context key under which Auth installs the
// authenticated principal.
const PrincipalKey = "principal"

// Auth runs on every request, before any handler. It extracts a bearer token,
// validates it, and reloads the principal from the person store so role
// changes since token issuance take effect immediately.
//
// A missing header, a wrong prefix, a token that fails validation, or a
// subject that no longer exists all let the request continue unauthenticated:
// public routes must still work, and the per-route RequireAuth/RequireRoles
// middleware makes the final access decision. Only unexpected store failures
// abort the request.
func Auth(codec *token.Codec, persons ports.PersonRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			subject, err := codec.Validate(parts[1])
			if err != nil {
				return next(c)
			}

			person, err := persons.FindByEmail(c.Request().Context(), subject)
			if errors.Is(err, domain.ErrPersonNotFound) {
				return next(c)
			}
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
			}

			c.Set(PrincipalKey, &domain.Principal{
				ID:    person.ID,
				Email: person.Email,
				Roles: person.Roles,
			})
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal installed by Auth, or nil when the
// request is unauthenticated.
func PrincipalFrom(c echo.Context) *domain.Principal {
	p, _ := c.Get(PrincipalKey).(*domain.Principal)
	return p
}
