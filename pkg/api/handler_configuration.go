package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hpc-toolchain/license-manager/ent"
	"github.com/hpc-toolchain/license-manager/ent/configuration"
	"github.com/hpc-toolchain/license-manager/pkg/services"
)

// createConfigurationHandler handles POST /api/v1/configurations.
func (s *Server) createConfigurationHandler(c *echo.Context) error {
	var req CreateConfigurationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := s.configurationService.Create(c.Request().Context(), services.CreateConfigurationInput{
		Name:      req.Name,
		ClusterID: req.ClusterID,
		GraceTime: req.GraceTime,
		Type:      req.Type,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, created)
}

// listConfigurationsHandler handles GET /api/v1/configurations.
func (s *Server) listConfigurationsHandler(c *echo.Context) error {
	params, err := parseListParams(c,
		configuration.FieldID, configuration.FieldName, configuration.FieldGraceTime, configuration.FieldType)
	if err != nil {
		return err
	}

	rows, err := s.configurationService.List(c.Request().Context(), params)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// listConfigurationsByClientIDHandler handles GET /api/v1/configurations/by_client_id.
// Returns the configurations of the cluster bound to the caller's token;
// an unknown client id yields an empty list.
func (s *Server) listConfigurationsByClientIDHandler(c *echo.Context) error {
	payload := currentIdentity(c)
	if payload.ClientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "token does not carry a client id")
	}

	rows, err := s.configurationService.ListByClientID(c.Request().Context(), payload.ClientID)
	if err != nil {
		return mapServiceError(err)
	}
	if rows == nil {
		rows = []*ent.Configuration{}
	}

	return c.JSON(http.StatusOK, rows)
}

// getConfigurationHandler handles GET /api/v1/configurations/:id.
func (s *Server) getConfigurationHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	row, err := s.configurationService.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, row)
}

// updateConfigurationHandler handles PUT /api/v1/configurations/:id.
func (s *Server) updateConfigurationHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	var req UpdateConfigurationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := s.configurationService.Update(c.Request().Context(), id, services.UpdateConfigurationInput{
		Name:      req.Name,
		ClusterID: req.ClusterID,
		GraceTime: req.GraceTime,
		Type:      req.Type,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, updated)
}

// deleteConfigurationHandler handles DELETE /api/v1/configurations/:id.
func (s *Server) deleteConfigurationHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	if err := s.configurationService.Delete(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &MessageResponse{Message: "deleted"})
}
