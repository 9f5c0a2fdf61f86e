package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/hpc-toolchain/license-manager/pkg/identity"
)

// identityContextKey is the echo context key holding the validated payload.
const identityContextKey = "identity"

// requireAuth returns middleware that validates the bearer token and stores
// the identity payload on the request context.
func (s *Server) requireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "malformed authorization header")
			}

			payload, err := s.validator.Validate(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token")
			}

			c.Set(identityContextKey, payload)
			return next(c)
		}
	}
}

// requireScope returns middleware that rejects requests whose identity does
// not carry the given permission scope. Must run after requireAuth.
func (s *Server) requireScope(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			payload := currentIdentity(c)
			if payload == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			if !payload.HasScope(scope) {
				return echo.NewHTTPError(http.StatusForbidden, "missing required scope: "+scope)
			}
			return next(c)
		}
	}
}

// currentIdentity returns the validated identity payload for the request,
// or nil when the request did not pass requireAuth.
func currentIdentity(c *echo.Context) *identity.Payload {
	payload, _ := c.Get(identityContextKey).(*identity.Payload)
	return payload
}
