package models

// LicenseBooking is one pre-reservation of a feature inside a booking request.
type LicenseBooking struct {
	ProductFeature string `json:"product_feature"`
	Quantity       int    `json:"quantity"`
}

// BookingRequest is the admission payload: a job and the features it books.
type BookingRequest struct {
	SlurmJobID int              `json:"slurm_job_id"`
	UserName   string           `json:"user_name"`
	LeadHost   string           `json:"lead_host"`
	Bookings   []LicenseBooking `json:"bookings"`
}
