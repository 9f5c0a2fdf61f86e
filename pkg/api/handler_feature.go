package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hpc-toolchain/license-manager/ent/feature"
	"github.com/hpc-toolchain/license-manager/pkg/services"
)

// createFeatureHandler handles POST /api/v1/features.
// The feature's inventory row is created alongside with zero counts.
func (s *Server) createFeatureHandler(c *echo.Context) error {
	var req CreateFeatureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := s.featureService.Create(c.Request().Context(), services.CreateFeatureInput{
		Name:      req.Name,
		ProductID: req.ProductID,
		ConfigID:  req.ConfigID,
		Reserved:  req.Reserved,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, created)
}

// listFeaturesHandler handles GET /api/v1/features.
func (s *Server) listFeaturesHandler(c *echo.Context) error {
	params, err := parseListParams(c, feature.FieldID, feature.FieldName, feature.FieldReserved)
	if err != nil {
		return err
	}

	rows, err := s.featureService.List(c.Request().Context(), params)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// getFeatureHandler handles GET /api/v1/features/:id.
func (s *Server) getFeatureHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	row, err := s.featureService.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, row)
}

// updateFeatureHandler handles PUT /api/v1/features/:id.
func (s *Server) updateFeatureHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	var req UpdateFeatureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := s.featureService.Update(c.Request().Context(), id, services.UpdateFeatureInput{
		Name:      req.Name,
		ProductID: req.ProductID,
		ConfigID:  req.ConfigID,
		Reserved:  req.Reserved,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, updated)
}

// updateInventoryHandler handles PUT /api/v1/features/:id/update_inventory.
// Direct operator override of the feature's token counts.
func (s *Server) updateInventoryHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	var req UpdateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := s.featureService.UpdateInventory(c.Request().Context(), id, services.UpdateInventoryInput{
		Total: req.Total,
		Used:  req.Used,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, updated)
}

// deleteFeatureHandler handles DELETE /api/v1/features/:id.
func (s *Server) deleteFeatureHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	if err := s.featureService.Delete(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &MessageResponse{Message: "deleted"})
}
