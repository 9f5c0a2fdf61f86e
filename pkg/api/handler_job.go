package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hpc-toolchain/license-manager/ent/job"
	"github.com/hpc-toolchain/license-manager/pkg/services"
)

// createJobHandler handles POST /api/v1/jobs.
func (s *Server) createJobHandler(c *echo.Context) error {
	var req CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := s.jobService.Create(c.Request().Context(), services.CreateJobInput{
		SlurmJobID: req.SlurmJobID,
		ClusterID:  req.ClusterID,
		Username:   req.Username,
		LeadHost:   req.LeadHost,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, created)
}

// listJobsHandler handles GET /api/v1/jobs.
func (s *Server) listJobsHandler(c *echo.Context) error {
	params, err := parseListParams(c,
		job.FieldID, job.FieldSlurmJobID, job.FieldUsername, job.FieldLeadHost)
	if err != nil {
		return err
	}

	rows, err := s.jobService.List(c.Request().Context(), params)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// getJobHandler handles GET /api/v1/jobs/:id.
func (s *Server) getJobHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	row, err := s.jobService.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, row)
}

// updateJobHandler handles PUT /api/v1/jobs/:id.
func (s *Server) updateJobHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	var req UpdateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := s.jobService.Update(c.Request().Context(), id, services.UpdateJobInput{
		Username: req.Username,
		LeadHost: req.LeadHost,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, updated)
}

// deleteJobHandler handles DELETE /api/v1/jobs/:id.
func (s *Server) deleteJobHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	if err := s.jobService.Delete(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &MessageResponse{Message: "deleted"})
}
