package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hpc-toolchain/license-manager/pkg/models"
)

// reconcileHandler handles PATCH /api/v1/reconcile.
// Applies a usage report from the caller's cluster agent in one transaction.
func (s *Server) reconcileHandler(c *echo.Context) error {
	payload := currentIdentity(c)
	if payload.ClientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "token does not carry a client id")
	}

	var report []models.ReportItem
	if err := c.Bind(&report); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := s.reconcileService.Apply(c.Request().Context(), payload.ClientID, report)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &models.ReconcileResponse{Updated: updated})
}
