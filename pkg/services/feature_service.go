package services

import (
	"context"
	"fmt"

	"github.com/hpc-toolchain/license-manager/ent"
	"github.com/hpc-toolchain/license-manager/ent/feature"
)

// FeatureService manages features and their inventories. A feature is
// always created together with an empty inventory row; the pair lives and
// dies together.
type FeatureService struct {
	client *ent.Client
}

// NewFeatureService creates a new FeatureService.
func NewFeatureService(client *ent.Client) *FeatureService {
	return &FeatureService{client: client}
}

// CreateFeatureInput is the input for Create.
type CreateFeatureInput struct {
	Name      string
	ProductID int
	ConfigID  int
	Reserved  int
}

// UpdateFeatureInput is the partial-update input for Update.
type UpdateFeatureInput struct {
	Name      *string
	ProductID *int
	ConfigID  *int
	Reserved  *int
}

// UpdateInventoryInput is the operator-facing direct inventory override.
type UpdateInventoryInput struct {
	Total *int
	Used  *int
}

// Create inserts a new feature and its inventory ({total: 0, used: 0})
// in one transaction.
func (s *FeatureService) Create(ctx context.Context, input CreateFeatureInput) (*ent.Feature, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if input.ProductID <= 0 {
		return nil, NewValidationError("product_id", "required")
	}
	if input.ConfigID <= 0 {
		return nil, NewValidationError("config_id", "required")
	}
	if input.Reserved < 0 {
		return nil, NewValidationError("reserved", "must not be negative")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	created, err := tx.Feature.Create().
		SetName(input.Name).
		SetProductID(input.ProductID).
		SetConfigID(input.ConfigID).
		SetReserved(input.Reserved).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create feature: %w", err)
	}

	_, err = tx.Inventory.Create().
		SetFeatureID(created.ID).
		SetTotal(0).
		SetUsed(0).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.Get(ctx, created.ID)
}

// List returns all features with product, inventory and bookings.
func (s *FeatureService) List(ctx context.Context, params ListParams) ([]*ent.Feature, error) {
	q := s.eagerQuery()

	if params.Search != "" {
		q = q.Where(feature.NameContainsFold(params.Search))
	}
	if params.SortField != "" {
		if params.SortAscending {
			q = q.Order(ent.Asc(params.SortField))
		} else {
			q = q.Order(ent.Desc(params.SortField))
		}
	} else {
		q = q.Order(ent.Asc(feature.FieldID))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list features: %w", err)
	}
	return rows, nil
}

// Get returns one feature with product, inventory and bookings.
func (s *FeatureService) Get(ctx context.Context, id int) (*ent.Feature, error) {
	row, err := s.eagerQuery().
		Where(feature.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get feature: %w", err)
	}
	return row, nil
}

// Update applies a partial update to a feature.
func (s *FeatureService) Update(ctx context.Context, id int, input UpdateFeatureInput) (*ent.Feature, error) {
	if input.Name == nil && input.ProductID == nil && input.ConfigID == nil && input.Reserved == nil {
		return nil, NewValidationError("body", "no fields to update")
	}
	if input.Reserved != nil && *input.Reserved < 0 {
		return nil, NewValidationError("reserved", "must not be negative")
	}

	_, err := s.client.Feature.UpdateOneID(id).
		SetNillableName(input.Name).
		SetNillableProductID(input.ProductID).
		SetNillableConfigID(input.ConfigID).
		SetNillableReserved(input.Reserved).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update feature: %w", err)
	}
	return s.Get(ctx, id)
}

// UpdateInventory overrides the feature's inventory counts directly.
func (s *FeatureService) UpdateInventory(ctx context.Context, featureID int, input UpdateInventoryInput) (*ent.Feature, error) {
	if input.Total == nil && input.Used == nil {
		return nil, NewValidationError("body", "no fields to update")
	}
	if input.Total != nil && *input.Total < 0 {
		return nil, NewValidationError("total", "must not be negative")
	}
	if input.Used != nil && *input.Used < 0 {
		return nil, NewValidationError("used", "must not be negative")
	}

	feat, err := s.Get(ctx, featureID)
	if err != nil {
		return nil, err
	}
	inv := feat.Edges.Inventory
	if inv == nil {
		return nil, ErrNotFound
	}

	_, err = s.client.Inventory.UpdateOneID(inv.ID).
		SetNillableTotal(input.Total).
		SetNillableUsed(input.Used).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}
	return s.Get(ctx, featureID)
}

// Delete removes a feature. Its inventory and bookings cascade.
func (s *FeatureService) Delete(ctx context.Context, id int) error {
	err := s.client.Feature.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete feature: %w", err)
	}
	return nil
}

func (s *FeatureService) eagerQuery() *ent.FeatureQuery {
	return s.client.Feature.Query().
		WithProduct().
		WithInventory().
		WithBookings()
}
