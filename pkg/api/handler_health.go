package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/hpc-toolchain/license-manager/pkg/database"
)

// healthHandler handles GET /health. Unauthenticated liveness probe:
// 204 when the database answers, 503 otherwise.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := database.Health(reqCtx, s.dbClient.DB()); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "database unreachable")
	}

	return c.NoContent(http.StatusNoContent)
}
