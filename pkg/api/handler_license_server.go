package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hpc-toolchain/license-manager/ent/licenseserver"
	"github.com/hpc-toolchain/license-manager/pkg/services"
)

// createLicenseServerHandler handles POST /api/v1/license_servers.
func (s *Server) createLicenseServerHandler(c *echo.Context) error {
	var req CreateLicenseServerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := s.licenseServerService.Create(c.Request().Context(), services.CreateLicenseServerInput{
		ConfigID: req.ConfigID,
		Host:     req.Host,
		Port:     req.Port,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, created)
}

// listLicenseServersHandler handles GET /api/v1/license_servers.
func (s *Server) listLicenseServersHandler(c *echo.Context) error {
	params, err := parseListParams(c,
		licenseserver.FieldID, licenseserver.FieldHost, licenseserver.FieldPort)
	if err != nil {
		return err
	}

	rows, err := s.licenseServerService.List(c.Request().Context(), params)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// getLicenseServerHandler handles GET /api/v1/license_servers/:id.
func (s *Server) getLicenseServerHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	row, err := s.licenseServerService.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, row)
}

// updateLicenseServerHandler handles PUT /api/v1/license_servers/:id.
func (s *Server) updateLicenseServerHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	var req UpdateLicenseServerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := s.licenseServerService.Update(c.Request().Context(), id, services.UpdateLicenseServerInput{
		ConfigID: req.ConfigID,
		Host:     req.Host,
		Port:     req.Port,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, updated)
}

// deleteLicenseServerHandler handles DELETE /api/v1/license_servers/:id.
func (s *Server) deleteLicenseServerHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	if err := s.licenseServerService.Delete(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &MessageResponse{Message: "deleted"})
}
