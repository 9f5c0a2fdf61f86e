package services

import (
	"context"
	"fmt"

	"github.com/hpc-toolchain/license-manager/ent"
	"github.com/hpc-toolchain/license-manager/ent/product"
)

// ProductService manages products: the vendor namespaces features live under.
type ProductService struct {
	client *ent.Client
}

// NewProductService creates a new ProductService.
func NewProductService(client *ent.Client) *ProductService {
	return &ProductService{client: client}
}

// CreateProductInput is the input for Create.
type CreateProductInput struct {
	Name string
}

// UpdateProductInput is the partial-update input for Update.
type UpdateProductInput struct {
	Name *string
}

// Create inserts a new product.
func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*ent.Product, error) {
	if input.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	created, err := s.client.Product.Create().
		SetName(input.Name).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return created, nil
}

// List returns all products with their features.
func (s *ProductService) List(ctx context.Context, params ListParams) ([]*ent.Product, error) {
	q := s.client.Product.Query().WithFeatures()

	if params.Search != "" {
		q = q.Where(product.NameContainsFold(params.Search))
	}
	if params.SortField != "" {
		if params.SortAscending {
			q = q.Order(ent.Asc(params.SortField))
		} else {
			q = q.Order(ent.Desc(params.SortField))
		}
	} else {
		q = q.Order(ent.Asc(product.FieldID))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return rows, nil
}

// Get returns one product with its features.
func (s *ProductService) Get(ctx context.Context, id int) (*ent.Product, error) {
	row, err := s.client.Product.Query().
		Where(product.ID(id)).
		WithFeatures().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return row, nil
}

// Update applies a partial update to a product.
func (s *ProductService) Update(ctx context.Context, id int, input UpdateProductInput) (*ent.Product, error) {
	if input.Name == nil {
		return nil, NewValidationError("body", "no fields to update")
	}

	updated, err := s.client.Product.UpdateOneID(id).
		SetNillableName(input.Name).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return updated, nil
}

// Delete removes a product. Its features cascade.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	err := s.client.Product.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
