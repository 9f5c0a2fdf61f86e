package services

import (
	"context"
	"fmt"

	"github.com/hpc-toolchain/license-manager/ent"
	"github.com/hpc-toolchain/license-manager/ent/booking"
	"github.com/hpc-toolchain/license-manager/ent/cluster"
	"github.com/hpc-toolchain/license-manager/ent/configuration"
	"github.com/hpc-toolchain/license-manager/ent/feature"
	"github.com/hpc-toolchain/license-manager/ent/job"
	"github.com/hpc-toolchain/license-manager/ent/product"
	"github.com/hpc-toolchain/license-manager/pkg/models"
)

// BookingService manages bookings. Admission serializes on the feature row
// so that the invariant
//
//	inventory.used + Σ bookings.quantity + feature.reserved ≤ inventory.total
//
// never breaks under concurrent requests.
type BookingService struct {
	client *ent.Client
}

// NewBookingService creates a new BookingService.
func NewBookingService(client *ent.Client) *BookingService {
	return &BookingService{client: client}
}

// CreateForJob admits a job's bookings on the cluster bound to clientID.
// The job row is created on first admission. Each feature is checked and
// booked under a row-level lock; any shortfall fails the whole request
// with ErrBookingConflict.
func (s *BookingService) CreateForJob(ctx context.Context, clientID string, req models.BookingRequest) ([]*ent.Booking, error) {
	if req.SlurmJobID <= 0 {
		return nil, NewValidationError("slurm_job_id", "required")
	}
	if req.UserName == "" {
		return nil, NewValidationError("user_name", "required")
	}
	if req.LeadHost == "" {
		return nil, NewValidationError("lead_host", "required")
	}
	if len(req.Bookings) == 0 {
		return nil, NewValidationError("bookings", "at least one booking is required")
	}
	for _, b := range req.Bookings {
		if b.Quantity <= 0 {
			return nil, NewValidationError("quantity", "must be positive")
		}
		if _, _, err := models.ParseProductFeature(b.ProductFeature); err != nil {
			return nil, NewValidationError("product_feature", err.Error())
		}
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	clusterRow, err := tx.Cluster.Query().
		Where(cluster.ClientID(clientID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve cluster: %w", err)
	}

	jobRow, err := tx.Job.Query().
		Where(job.SlurmJobID(req.SlurmJobID), job.ClusterID(clusterRow.ID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		jobRow, err = tx.Job.Create().
			SetSlurmJobID(req.SlurmJobID).
			SetClusterID(clusterRow.ID).
			SetUsername(req.UserName).
			SetLeadHost(req.LeadHost).
			Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve job: %w", err)
	}

	created := make([]*ent.Booking, 0, len(req.Bookings))
	for _, b := range req.Bookings {
		row, err := s.bookOne(ctx, tx, clusterRow.ID, jobRow.ID, b)
		if err != nil {
			return nil, err
		}
		created = append(created, row)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return created, nil
}

// bookOne locks the feature row, re-checks the availability invariant and
// inserts the booking.
func (s *BookingService) bookOne(ctx context.Context, tx *ent.Tx, clusterID, jobID int, b models.LicenseBooking) (*ent.Booking, error) {
	productName, featureName, err := models.ParseProductFeature(b.ProductFeature)
	if err != nil {
		return nil, NewValidationError("product_feature", err.Error())
	}

	// The FOR UPDATE lock serializes concurrent admissions per feature.
	featRow, err := tx.Feature.Query().
		Where(
			feature.Name(featureName),
			feature.HasProductWith(product.Name(productName)),
			feature.HasConfigurationWith(configuration.ClusterID(clusterID)),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock feature %s: %w", b.ProductFeature, err)
	}

	inv, err := featRow.QueryInventory().Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory for %s: %w", b.ProductFeature, err)
	}

	quantities, err := tx.Booking.Query().
		Where(booking.FeatureID(featRow.ID)).
		Select(booking.FieldQuantity).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum bookings for %s: %w", b.ProductFeature, err)
	}
	booked := 0
	for _, q := range quantities {
		booked += q
	}

	if inv.Used+booked+featRow.Reserved+b.Quantity > inv.Total {
		return nil, ErrBookingConflict
	}

	row, err := tx.Booking.Create().
		SetJobID(jobID).
		SetFeatureID(featRow.ID).
		SetQuantity(b.Quantity).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return row, nil
}

// List returns all bookings.
func (s *BookingService) List(ctx context.Context, params ListParams) ([]*ent.Booking, error) {
	q := s.client.Booking.Query().WithJob().WithFeature()

	if params.SortField != "" {
		if params.SortAscending {
			q = q.Order(ent.Asc(params.SortField))
		} else {
			q = q.Order(ent.Desc(params.SortField))
		}
	} else {
		q = q.Order(ent.Asc(booking.FieldID))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return rows, nil
}

// Get returns one booking with its job and feature.
func (s *BookingService) Get(ctx context.Context, id int) (*ent.Booking, error) {
	row, err := s.client.Booking.Query().
		Where(booking.ID(id)).
		WithJob().
		WithFeature().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return row, nil
}

// ListForJob returns the bookings held by a scheduler job on the cluster
// bound to clientID. An unknown job yields an empty list.
func (s *BookingService) ListForJob(ctx context.Context, clientID string, slurmJobID int) ([]*ent.Booking, error) {
	rows, err := s.client.Booking.Query().
		Where(booking.HasJobWith(
			job.SlurmJobID(slurmJobID),
			job.HasClusterWith(cluster.ClientID(clientID)),
		)).
		WithFeature(func(q *ent.FeatureQuery) {
			q.WithConfiguration()
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for job %d: %w", slurmJobID, err)
	}
	return rows, nil
}

// DeleteByJob removes every booking held by a scheduler job on the cluster
// bound to clientID. Returns the number of bookings removed;
// ErrNotFound when the job is unknown.
func (s *BookingService) DeleteByJob(ctx context.Context, clientID string, slurmJobID int) (int, error) {
	jobRow, err := s.client.Job.Query().
		Where(
			job.SlurmJobID(slurmJobID),
			job.HasClusterWith(cluster.ClientID(clientID)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to resolve job %d: %w", slurmJobID, err)
	}

	n, err := s.client.Booking.Delete().
		Where(booking.JobID(jobRow.ID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete bookings for job %d: %w", slurmJobID, err)
	}
	return n, nil
}

// Delete removes one booking by id.
func (s *BookingService) Delete(ctx context.Context, id int) error {
	err := s.client.Booking.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}
