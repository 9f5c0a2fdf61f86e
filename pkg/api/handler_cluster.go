package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hpc-toolchain/license-manager/ent/cluster"
	"github.com/hpc-toolchain/license-manager/pkg/services"
)

// createClusterHandler handles POST /api/v1/clusters.
func (s *Server) createClusterHandler(c *echo.Context) error {
	var req CreateClusterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := s.clusterService.Create(c.Request().Context(), services.CreateClusterInput{
		Name:     req.Name,
		ClientID: req.ClientID,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, created)
}

// listClustersHandler handles GET /api/v1/clusters.
func (s *Server) listClustersHandler(c *echo.Context) error {
	params, err := parseListParams(c, cluster.FieldID, cluster.FieldName, cluster.FieldClientID)
	if err != nil {
		return err
	}

	rows, err := s.clusterService.List(c.Request().Context(), params)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// getClusterHandler handles GET /api/v1/clusters/:id.
func (s *Server) getClusterHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	row, err := s.clusterService.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, row)
}

// getClusterByClientIDHandler handles GET /api/v1/clusters/by_client_id.
// The cluster is resolved from the caller's token, not a query parameter.
func (s *Server) getClusterByClientIDHandler(c *echo.Context) error {
	payload := currentIdentity(c)
	if payload.ClientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "token does not carry a client id")
	}

	row, err := s.clusterService.GetByClientID(c.Request().Context(), payload.ClientID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, row)
}

// updateClusterHandler handles PUT /api/v1/clusters/:id.
func (s *Server) updateClusterHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	var req UpdateClusterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := s.clusterService.Update(c.Request().Context(), id, services.UpdateClusterInput{
		Name:     req.Name,
		ClientID: req.ClientID,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, updated)
}

// deleteClusterHandler handles DELETE /api/v1/clusters/:id.
func (s *Server) deleteClusterHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	if err := s.clusterService.Delete(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &MessageResponse{Message: "deleted"})
}
