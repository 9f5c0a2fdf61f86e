package services

import (
	"context"
	"fmt"

	"github.com/hpc-toolchain/license-manager/ent"
	"github.com/hpc-toolchain/license-manager/ent/licenseserver"
)

// LicenseServerService manages license-server endpoints (host:port rows
// under a configuration).
type LicenseServerService struct {
	client *ent.Client
}

// NewLicenseServerService creates a new LicenseServerService.
func NewLicenseServerService(client *ent.Client) *LicenseServerService {
	return &LicenseServerService{client: client}
}

// CreateLicenseServerInput is the input for Create.
type CreateLicenseServerInput struct {
	ConfigID int
	Host     string
	Port     int
}

// UpdateLicenseServerInput is the partial-update input for Update.
type UpdateLicenseServerInput struct {
	ConfigID *int
	Host     *string
	Port     *int
}

func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return NewValidationError("port", "must be between 1 and 65535")
	}
	return nil
}

// Create inserts a new license server.
func (s *LicenseServerService) Create(ctx context.Context, input CreateLicenseServerInput) (*ent.LicenseServer, error) {
	if input.ConfigID <= 0 {
		return nil, NewValidationError("config_id", "required")
	}
	if input.Host == "" {
		return nil, NewValidationError("host", "required")
	}
	if err := validatePort(input.Port); err != nil {
		return nil, err
	}

	created, err := s.client.LicenseServer.Create().
		SetConfigID(input.ConfigID).
		SetHost(input.Host).
		SetPort(input.Port).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create license server: %w", err)
	}
	return created, nil
}

// List returns all license servers.
func (s *LicenseServerService) List(ctx context.Context, params ListParams) ([]*ent.LicenseServer, error) {
	q := s.client.LicenseServer.Query()

	if params.Search != "" {
		q = q.Where(licenseserver.HostContainsFold(params.Search))
	}
	if params.SortField != "" {
		if params.SortAscending {
			q = q.Order(ent.Asc(params.SortField))
		} else {
			q = q.Order(ent.Desc(params.SortField))
		}
	} else {
		q = q.Order(ent.Asc(licenseserver.FieldID))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list license servers: %w", err)
	}
	return rows, nil
}

// Get returns one license server.
func (s *LicenseServerService) Get(ctx context.Context, id int) (*ent.LicenseServer, error) {
	row, err := s.client.LicenseServer.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get license server: %w", err)
	}
	return row, nil
}

// Update applies a partial update to a license server.
func (s *LicenseServerService) Update(ctx context.Context, id int, input UpdateLicenseServerInput) (*ent.LicenseServer, error) {
	if input.ConfigID == nil && input.Host == nil && input.Port == nil {
		return nil, NewValidationError("body", "no fields to update")
	}
	if input.Port != nil {
		if err := validatePort(*input.Port); err != nil {
			return nil, err
		}
	}

	updated, err := s.client.LicenseServer.UpdateOneID(id).
		SetNillableConfigID(input.ConfigID).
		SetNillableHost(input.Host).
		SetNillablePort(input.Port).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update license server: %w", err)
	}
	return updated, nil
}

// Delete removes a license server.
func (s *LicenseServerService) Delete(ctx context.Context, id int) error {
	err := s.client.LicenseServer.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete license server: %w", err)
	}
	return nil
}
