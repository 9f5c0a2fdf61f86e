package api

// MessageResponse is returned by the entity DELETE endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// DeletedByJobResponse is returned by DELETE /api/v1/bookings/by_job/:slurm_job_id.
type DeletedByJobResponse struct {
	Deleted int `json:"deleted"`
}
