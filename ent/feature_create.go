// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hpc-toolchain/license-manager/ent/booking"
	"github.com/hpc-toolchain/license-manager/ent/configuration"
	"github.com/hpc-toolchain/license-manager/ent/feature"
	"github.com/hpc-toolchain/license-manager/ent/inventory"
	"github.com/hpc-toolchain/license-manager/ent/product"
)

// FeatureCreate is the builder for creating a Feature entity.
type FeatureCreate struct {
	config
	mutation *FeatureMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *FeatureCreate) SetName(v string) *FeatureCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetProductID sets the "product_id" field.
func (_c *FeatureCreate) SetProductID(v int) *FeatureCreate {
	_c.mutation.SetProductID(v)
	return _c
}

// SetConfigID sets the "config_id" field.
func (_c *FeatureCreate) SetConfigID(v int) *FeatureCreate {
	_c.mutation.SetConfigID(v)
	return _c
}

// SetReserved sets the "reserved" field.
func (_c *FeatureCreate) SetReserved(v int) *FeatureCreate {
	_c.mutation.SetReserved(v)
	return _c
}

// SetNillableReserved sets the "reserved" field if the given value is not nil.
func (_c *FeatureCreate) SetNillableReserved(v *int) *FeatureCreate {
	if v != nil {
		_c.SetReserved(*v)
	}
	return _c
}

// SetProduct sets the "product" edge to the Product entity.
func (_c *FeatureCreate) SetProduct(v *Product) *FeatureCreate {
	return _c.SetProductID(v.ID)
}

// SetConfigurationID sets the "configuration" edge to the Configuration entity by ID.
func (_c *FeatureCreate) SetConfigurationID(id int) *FeatureCreate {
	_c.mutation.SetConfigurationID(id)
	return _c
}

// SetConfiguration sets the "configuration" edge to the Configuration entity.
func (_c *FeatureCreate) SetConfiguration(v *Configuration) *FeatureCreate {
	return _c.SetConfigurationID(v.ID)
}

// SetInventoryID sets the "inventory" edge to the Inventory entity by ID.
func (_c *FeatureCreate) SetInventoryID(id int) *FeatureCreate {
	_c.mutation.SetInventoryID(id)
	return _c
}

// SetNillableInventoryID sets the "inventory" edge to the Inventory entity by ID if the given value is not nil.
func (_c *FeatureCreate) SetNillableInventoryID(id *int) *FeatureCreate {
	if id != nil {
		_c = _c.SetInventoryID(*id)
	}
	return _c
}

// SetInventory sets the "inventory" edge to the Inventory entity.
func (_c *FeatureCreate) SetInventory(v *Inventory) *FeatureCreate {
	return _c.SetInventoryID(v.ID)
}

// AddBookingIDs adds the "bookings" edge to the Booking entity by IDs.
func (_c *FeatureCreate) AddBookingIDs(ids ...int) *FeatureCreate {
	_c.mutation.AddBookingIDs(ids...)
	return _c
}

// AddBookings adds the "bookings" edges to the Booking entity.
func (_c *FeatureCreate) AddBookings(v ...*Booking) *FeatureCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBookingIDs(ids...)
}

// Mutation returns the FeatureMutation object of the builder.
func (_c *FeatureCreate) Mutation() *FeatureMutation {
	return _c.mutation
}

// Save creates the Feature in the database.
func (_c *FeatureCreate) Save(ctx context.Context) (*Feature, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeatureCreate) SaveX(ctx context.Context) *Feature {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeatureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeatureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeatureCreate) defaults() {
	if _, ok := _c.mutation.Reserved(); !ok {
		v := feature.DefaultReserved
		_c.mutation.SetReserved(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeatureCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Feature.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := feature.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Feature.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProductID(); !ok {
		return &ValidationError{Name: "product_id", err: errors.New(`ent: missing required field "Feature.product_id"`)}
	}
	if _, ok := _c.mutation.ConfigID(); !ok {
		return &ValidationError{Name: "config_id", err: errors.New(`ent: missing required field "Feature.config_id"`)}
	}
	if _, ok := _c.mutation.Reserved(); !ok {
		return &ValidationError{Name: "reserved", err: errors.New(`ent: missing required field "Feature.reserved"`)}
	}
	if v, ok := _c.mutation.Reserved(); ok {
		if err := feature.ReservedValidator(v); err != nil {
			return &ValidationError{Name: "reserved", err: fmt.Errorf(`ent: validator failed for field "Feature.reserved": %w`, err)}
		}
	}
	if len(_c.mutation.ProductIDs()) == 0 {
		return &ValidationError{Name: "product", err: errors.New(`ent: missing required edge "Feature.product"`)}
	}
	if len(_c.mutation.ConfigurationIDs()) == 0 {
		return &ValidationError{Name: "configuration", err: errors.New(`ent: missing required edge "Feature.configuration"`)}
	}
	return nil
}

func (_c *FeatureCreate) sqlSave(ctx context.Context) (*Feature, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FeatureCreate) createSpec() (*Feature, *sqlgraph.CreateSpec) {
	var (
		_node = &Feature{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feature.Table, sqlgraph.NewFieldSpec(feature.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(feature.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Reserved(); ok {
		_spec.SetField(feature.FieldReserved, field.TypeInt, value)
		_node.Reserved = value
	}
	if nodes := _c.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feature.ProductTable,
			Columns: []string{feature.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProductID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConfigurationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   feature.ConfigurationTable,
			Columns: []string{feature.ConfigurationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(configuration.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConfigID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InventoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   feature.InventoryTable,
			Columns: []string{feature.InventoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inventory.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BookingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   feature.BookingsTable,
			Columns: []string{feature.BookingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(booking.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FeatureCreateBulk is the builder for creating many Feature entities in bulk.
type FeatureCreateBulk struct {
	config
	err      error
	builders []*FeatureCreate
}

// Save creates the Feature entities in the database.
func (_c *FeatureCreateBulk) Save(ctx context.Context) ([]*Feature, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Feature, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeatureMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FeatureCreateBulk) SaveX(ctx context.Context) []*Feature {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeatureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeatureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
