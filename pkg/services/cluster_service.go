package services

import (
	"context"
	"fmt"

	"github.com/hpc-toolchain/license-manager/ent"
	"github.com/hpc-toolchain/license-manager/ent/cluster"
)

// ClusterService manages cluster rows: one per workload cluster whose agent
// authenticates with the cluster's client id.
type ClusterService struct {
	client *ent.Client
}

// NewClusterService creates a new ClusterService.
func NewClusterService(client *ent.Client) *ClusterService {
	return &ClusterService{client: client}
}

// CreateClusterInput is the input for Create.
type CreateClusterInput struct {
	Name     string
	ClientID string
}

// UpdateClusterInput is the partial-update input for Update.
type UpdateClusterInput struct {
	Name     *string
	ClientID *string
}

// Create inserts a new cluster.
func (s *ClusterService) Create(ctx context.Context, input CreateClusterInput) (*ent.Cluster, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if input.ClientID == "" {
		return nil, NewValidationError("client_id", "required")
	}

	created, err := s.client.Cluster.Create().
		SetName(input.Name).
		SetClientID(input.ClientID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create cluster: %w", err)
	}
	return created, nil
}

// List returns all clusters with their configurations and jobs.
func (s *ClusterService) List(ctx context.Context, params ListParams) ([]*ent.Cluster, error) {
	q := s.client.Cluster.Query().
		WithConfigurations().
		WithJobs()

	if params.Search != "" {
		q = q.Where(cluster.Or(
			cluster.NameContainsFold(params.Search),
			cluster.ClientIDContainsFold(params.Search),
		))
	}
	if params.SortField != "" {
		if params.SortAscending {
			q = q.Order(ent.Asc(params.SortField))
		} else {
			q = q.Order(ent.Desc(params.SortField))
		}
	} else {
		q = q.Order(ent.Asc(cluster.FieldID))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clusters: %w", err)
	}
	return rows, nil
}

// Get returns one cluster with its configurations and jobs.
func (s *ClusterService) Get(ctx context.Context, id int) (*ent.Cluster, error) {
	row, err := s.client.Cluster.Query().
		Where(cluster.ID(id)).
		WithConfigurations(func(q *ent.ConfigurationQuery) {
			q.WithLicenseServers()
		}).
		WithJobs().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cluster: %w", err)
	}
	return row, nil
}

// GetByClientID returns the cluster bound to the given auth client id,
// with its configurations and jobs, or ErrNotFound when no cluster matches.
func (s *ClusterService) GetByClientID(ctx context.Context, clientID string) (*ent.Cluster, error) {
	row, err := s.client.Cluster.Query().
		Where(cluster.ClientID(clientID)).
		WithConfigurations().
		WithJobs().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cluster by client_id: %w", err)
	}
	return row, nil
}

// Update applies a partial update to a cluster.
func (s *ClusterService) Update(ctx context.Context, id int, input UpdateClusterInput) (*ent.Cluster, error) {
	if input.Name == nil && input.ClientID == nil {
		return nil, NewValidationError("body", "no fields to update")
	}

	updated, err := s.client.Cluster.UpdateOneID(id).
		SetNillableName(input.Name).
		SetNillableClientID(input.ClientID).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update cluster: %w", err)
	}
	return updated, nil
}

// Delete removes a cluster. Configurations and jobs cascade.
func (s *ClusterService) Delete(ctx context.Context, id int) error {
	err := s.client.Cluster.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete cluster: %w", err)
	}
	return nil
}
