package services

import (
	"context"
	"fmt"

	"github.com/hpc-toolchain/license-manager/ent"
	"github.com/hpc-toolchain/license-manager/ent/cluster"
	"github.com/hpc-toolchain/license-manager/ent/configuration"
)

// ConfigurationService manages license configurations: a set of license
// servers of one vendor type, its features, and the grace time applied to
// bookings against those features.
type ConfigurationService struct {
	client *ent.Client
}

// NewConfigurationService creates a new ConfigurationService.
func NewConfigurationService(client *ent.Client) *ConfigurationService {
	return &ConfigurationService{client: client}
}

// CreateConfigurationInput is the input for Create.
type CreateConfigurationInput struct {
	Name      string
	ClusterID int
	GraceTime int
	Type      string
}

// UpdateConfigurationInput is the partial-update input for Update.
type UpdateConfigurationInput struct {
	Name      *string
	ClusterID *int
	GraceTime *int
	Type      *string
}

// Create inserts a new configuration.
func (s *ConfigurationService) Create(ctx context.Context, input CreateConfigurationInput) (*ent.Configuration, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if input.ClusterID <= 0 {
		return nil, NewValidationError("cluster_id", "required")
	}
	if input.GraceTime < 0 {
		return nil, NewValidationError("grace_time", "must not be negative")
	}
	if err := configuration.TypeValidator(configuration.Type(input.Type)); err != nil {
		return nil, NewValidationError("type", "must be one of flexlm, rlm, lsdyna, lmx, olicense")
	}

	created, err := s.client.Configuration.Create().
		SetName(input.Name).
		SetClusterID(input.ClusterID).
		SetGraceTime(input.GraceTime).
		SetType(configuration.Type(input.Type)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create configuration: %w", err)
	}
	return created, nil
}

// List returns all configurations with license servers and features.
func (s *ConfigurationService) List(ctx context.Context, params ListParams) ([]*ent.Configuration, error) {
	q := s.eagerQuery()

	if params.Search != "" {
		q = q.Where(configuration.NameContainsFold(params.Search))
	}
	if params.SortField != "" {
		if params.SortAscending {
			q = q.Order(ent.Asc(params.SortField))
		} else {
			q = q.Order(ent.Desc(params.SortField))
		}
	} else {
		q = q.Order(ent.Asc(configuration.FieldID))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list configurations: %w", err)
	}
	return rows, nil
}

// ListByClientID returns the configurations owned by the cluster bound to
// the given auth client id. An unknown client id yields an empty list.
func (s *ConfigurationService) ListByClientID(ctx context.Context, clientID string) ([]*ent.Configuration, error) {
	rows, err := s.eagerQuery().
		Where(configuration.HasClusterWith(cluster.ClientID(clientID))).
		Order(ent.Asc(configuration.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list configurations by client_id: %w", err)
	}
	return rows, nil
}

// Get returns one configuration with license servers and features.
func (s *ConfigurationService) Get(ctx context.Context, id int) (*ent.Configuration, error) {
	row, err := s.eagerQuery().
		Where(configuration.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get configuration: %w", err)
	}
	return row, nil
}

// Update applies a partial update to a configuration.
func (s *ConfigurationService) Update(ctx context.Context, id int, input UpdateConfigurationInput) (*ent.Configuration, error) {
	if input.Name == nil && input.ClusterID == nil && input.GraceTime == nil && input.Type == nil {
		return nil, NewValidationError("body", "no fields to update")
	}
	if input.GraceTime != nil && *input.GraceTime < 0 {
		return nil, NewValidationError("grace_time", "must not be negative")
	}

	builder := s.client.Configuration.UpdateOneID(id).
		SetNillableName(input.Name).
		SetNillableClusterID(input.ClusterID).
		SetNillableGraceTime(input.GraceTime)
	if input.Type != nil {
		if err := configuration.TypeValidator(configuration.Type(*input.Type)); err != nil {
			return nil, NewValidationError("type", "must be one of flexlm, rlm, lsdyna, lmx, olicense")
		}
		builder = builder.SetType(configuration.Type(*input.Type))
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update configuration: %w", err)
	}
	return s.Get(ctx, updated.ID)
}

// Delete removes a configuration. License servers and features cascade.
func (s *ConfigurationService) Delete(ctx context.Context, id int) error {
	err := s.client.Configuration.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete configuration: %w", err)
	}
	return nil
}

func (s *ConfigurationService) eagerQuery() *ent.ConfigurationQuery {
	return s.client.Configuration.Query().
		WithLicenseServers().
		WithFeatures(func(q *ent.FeatureQuery) {
			q.WithProduct().WithInventory()
		})
}
