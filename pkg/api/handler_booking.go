package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/hpc-toolchain/license-manager/ent/booking"
	"github.com/hpc-toolchain/license-manager/pkg/models"
)

// createBookingsHandler handles POST /api/v1/bookings.
// Admits a job's feature bookings on the caller's cluster. A shortfall on
// any feature rejects the whole request with 409.
func (s *Server) createBookingsHandler(c *echo.Context) error {
	payload := currentIdentity(c)
	if payload.ClientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "token does not carry a client id")
	}

	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := s.bookingService.CreateForJob(c.Request().Context(), payload.ClientID, req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, created)
}

// listBookingsHandler handles GET /api/v1/bookings.
func (s *Server) listBookingsHandler(c *echo.Context) error {
	params, err := parseListParams(c, booking.FieldID, booking.FieldQuantity)
	if err != nil {
		return err
	}

	rows, err := s.bookingService.List(c.Request().Context(), params)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// getBookingHandler handles GET /api/v1/bookings/:id.
func (s *Server) getBookingHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	row, err := s.bookingService.Get(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, row)
}

// listBookingsByJobHandler handles GET /api/v1/bookings/by_job/:slurm_job_id.
func (s *Server) listBookingsByJobHandler(c *echo.Context) error {
	payload := currentIdentity(c)
	if payload.ClientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "token does not carry a client id")
	}

	slurmJobID, err := parseSlurmJobID(c)
	if err != nil {
		return err
	}

	rows, err := s.bookingService.ListForJob(c.Request().Context(), payload.ClientID, slurmJobID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, rows)
}

// deleteBookingsByJobHandler handles DELETE /api/v1/bookings/by_job/:slurm_job_id.
// Releases every booking the job holds on the caller's cluster.
func (s *Server) deleteBookingsByJobHandler(c *echo.Context) error {
	payload := currentIdentity(c)
	if payload.ClientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "token does not carry a client id")
	}

	slurmJobID, err := parseSlurmJobID(c)
	if err != nil {
		return err
	}

	n, err := s.bookingService.DeleteByJob(c.Request().Context(), payload.ClientID, slurmJobID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &DeletedByJobResponse{Deleted: n})
}

// deleteBookingHandler handles DELETE /api/v1/bookings/:id.
func (s *Server) deleteBookingHandler(c *echo.Context) error {
	id, err := parsePathID(c)
	if err != nil {
		return err
	}

	if err := s.bookingService.Delete(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &MessageResponse{Message: "deleted"})
}

func parseSlurmJobID(c *echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("slurm_job_id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "slurm_job_id must be a positive integer")
	}
	return id, nil
}
