package services

import (
	"context"
	"fmt"

	"github.com/hpc-toolchain/license-manager/ent"
	"github.com/hpc-toolchain/license-manager/ent/job"
)

// JobService manages job rows: the workload-scheduler jobs that hold
// bookings, scoped per cluster by their scheduler id.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService.
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// CreateJobInput is the input for Create.
type CreateJobInput struct {
	SlurmJobID int
	ClusterID  int
	Username   string
	LeadHost   string
}

// UpdateJobInput is the partial-update input for Update.
type UpdateJobInput struct {
	Username *string
	LeadHost *string
}

// Create inserts a new job.
func (s *JobService) Create(ctx context.Context, input CreateJobInput) (*ent.Job, error) {
	if input.SlurmJobID <= 0 {
		return nil, NewValidationError("slurm_job_id", "required")
	}
	if input.ClusterID <= 0 {
		return nil, NewValidationError("cluster_id", "required")
	}
	if input.Username == "" {
		return nil, NewValidationError("username", "required")
	}
	if input.LeadHost == "" {
		return nil, NewValidationError("lead_host", "required")
	}

	created, err := s.client.Job.Create().
		SetSlurmJobID(input.SlurmJobID).
		SetClusterID(input.ClusterID).
		SetUsername(input.Username).
		SetLeadHost(input.LeadHost).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

// List returns all jobs with their bookings.
func (s *JobService) List(ctx context.Context, params ListParams) ([]*ent.Job, error) {
	q := s.client.Job.Query().WithBookings()

	if params.Search != "" {
		q = q.Where(job.Or(
			job.UsernameContainsFold(params.Search),
			job.LeadHostContainsFold(params.Search),
		))
	}
	if params.SortField != "" {
		if params.SortAscending {
			q = q.Order(ent.Asc(params.SortField))
		} else {
			q = q.Order(ent.Desc(params.SortField))
		}
	} else {
		q = q.Order(ent.Asc(job.FieldID))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return rows, nil
}

// Get returns one job with its bookings.
func (s *JobService) Get(ctx context.Context, id int) (*ent.Job, error) {
	row, err := s.client.Job.Query().
		Where(job.ID(id)).
		WithBookings().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return row, nil
}

// Update applies a partial update to a job.
func (s *JobService) Update(ctx context.Context, id int, input UpdateJobInput) (*ent.Job, error) {
	if input.Username == nil && input.LeadHost == nil {
		return nil, NewValidationError("body", "no fields to update")
	}

	updated, err := s.client.Job.UpdateOneID(id).
		SetNillableUsername(input.Username).
		SetNillableLeadHost(input.LeadHost).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return updated, nil
}

// Delete removes a job. Its bookings cascade.
func (s *JobService) Delete(ctx context.Context, id int) error {
	err := s.client.Job.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}
