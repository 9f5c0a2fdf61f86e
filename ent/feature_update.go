// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hpc-toolchain/license-manager/ent/booking"
	"github.com/hpc-toolchain/license-manager/ent/configuration"
	"github.com/hpc-toolchain/license-manager/ent/feature"
	"github.com/hpc-toolchain/license-manager/ent/inventory"
	"github.com/hpc-toolchain/license-manager/ent/predicate"
	"github.com/hpc-toolchain/license-manager/ent/product"
)

// FeatureUpdate is the builder for updating Feature entities.
type FeatureUpdate struct {
	config
	hooks    []Hook
	mutation *FeatureMutation
}

// Where appends a list predicates to the FeatureUpdate builder.
func (_u *FeatureUpdate) Where(ps ...predicate.Feature) *FeatureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *FeatureUpdate) SetName(v string) *FeatureUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableName(v *string) *FeatureUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *FeatureUpdate) SetProductID(v int) *FeatureUpdate {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableProductID(v *int) *FeatureUpdate {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetConfigID sets the "config_id" field.
func (_u *FeatureUpdate) SetConfigID(v int) *FeatureUpdate {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableConfigID(v *int) *FeatureUpdate {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetReserved sets the "reserved" field.
func (_u *FeatureUpdate) SetReserved(v int) *FeatureUpdate {
	_u.mutation.ResetReserved()
	_u.mutation.SetReserved(v)
	return _u
}

// SetNillableReserved sets the "reserved" field if the given value is not nil.
func (_u *FeatureUpdate) SetNillableReserved(v *int) *FeatureUpdate {
	if v != nil {
		_u.SetReserved(*v)
	}
	return _u
}

// AddReserved adds value to the "reserved" field.
func (_u *FeatureUpdate) AddReserved(v int) *FeatureUpdate {
	_u.mutation.AddReserved(v)
	return _u
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *FeatureUpdate) SetProduct(v *Product) *FeatureUpdate {
	return _u.SetProductID(v.ID)
}

// SetConfigurationID sets the "configuration" edge to the Configuration entity by ID.
func (_u *FeatureUpdate) SetConfigurationID(id int) *FeatureUpdate {
	_u.mutation.SetConfigurationID(id)
	return _u
}

// SetConfiguration sets the "configuration" edge to the Configuration entity.
func (_u *FeatureUpdate) SetConfiguration(v *Configuration) *FeatureUpdate {
	return _u.SetConfigurationID(v.ID)
}

// SetInventoryID sets the "inventory" edge to the Inventory entity by ID.
func (_u *FeatureUpdate) SetInventoryID(id int) *FeatureUpdate {
	_u.mutation.SetInventoryID(id)
	return _u
}

// SetNillableInventoryID sets the "inventory" edge to the Inventory entity by ID if the given value is not nil.
func (_u *FeatureUpdate) SetNillableInventoryID(id *int) *FeatureUpdate {
	if id != nil {
		_u = _u.SetInventoryID(*id)
	}
	return _u
}

// SetInventory sets the "inventory" edge to the Inventory entity.
func (_u *FeatureUpdate) SetInventory(v *Inventory) *FeatureUpdate {
	return _u.SetInventoryID(v.ID)
}

// AddBookingIDs adds the "bookings" edge to the Booking entity by IDs.
func (_u *FeatureUpdate) AddBookingIDs(ids ...int) *FeatureUpdate {
	_u.mutation.AddBookingIDs(ids...)
	return _u
}

// AddBookings adds the "bookings" edges to the Booking entity.
func (_u *FeatureUpdate) AddBookings(v ...*Booking) *FeatureUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBookingIDs(ids...)
}

// Mutation returns the FeatureMutation object of the builder.
func (_u *FeatureUpdate) Mutation() *FeatureMutation {
	return _u.mutation
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *FeatureUpdate) ClearProduct() *FeatureUpdate {
	_u.mutation.ClearProduct()
	return _u
}

// ClearConfiguration clears the "configuration" edge to the Configuration entity.
func (_u *FeatureUpdate) ClearConfiguration() *FeatureUpdate {
	_u.mutation.ClearConfiguration()
	return _u
}

// ClearInventory clears the "inventory" edge to the Inventory entity.
func (_u *FeatureUpdate) ClearInventory() *FeatureUpdate {
	_u.mutation.ClearInventory()
	return _u
}

// ClearBookings clears all "bookings" edges to the Booking entity.
func (_u *FeatureUpdate) ClearBookings() *FeatureUpdate {
	_u.mutation.ClearBookings()
	return _u
}

// RemoveBookingIDs removes the "bookings" edge to Booking entities by IDs.
func (_u *FeatureUpdate) RemoveBookingIDs(ids ...int) *FeatureUpdate {
	_u.mutation.RemoveBookingIDs(ids...)
	return _u
}

// RemoveBookings removes "bookings" edges to Booking entities.
func (_u *FeatureUpdate) RemoveBookings(v ...*Booking) *FeatureUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBookingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeatureUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeatureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeatureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeatureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeatureUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := feature.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Feature.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reserved(); ok {
		if err := feature.ReservedValidator(v); err != nil {
			return &ValidationError{Name: "reserved", err: fmt.Errorf(`ent: validator failed for field "Feature.reserved": %w`, err)}
		}
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Feature.product"`)
	}
	if _u.mutation.ConfigurationCleared() && len(_u.mutation.ConfigurationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Feature.configuration"`)
	}
	return nil
}

func (_u *FeatureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feature.Table, feature.Columns, sqlgraph.NewFieldSpec(feature.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(feature.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reserved(); ok {
		_spec.SetField(feature.FieldReserved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReserved(); ok {
		_spec.AddField(feature.FieldReserved, field.TypeInt, value)
	}
	if _u.mutation.ProductCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConfigurationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConfigurationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InventoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InventoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BookingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBookingsIDs(); len(nodes) > 0 && !_u.mutation.BookingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BookingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feature.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeatureUpdateOne is the builder for updating a single Feature entity.
type FeatureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeatureMutation
}

// SetName sets the "name" field.
func (_u *FeatureUpdateOne) SetName(v string) *FeatureUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableName(v *string) *FeatureUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *FeatureUpdateOne) SetProductID(v int) *FeatureUpdateOne {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableProductID(v *int) *FeatureUpdateOne {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetConfigID sets the "config_id" field.
func (_u *FeatureUpdateOne) SetConfigID(v int) *FeatureUpdateOne {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableConfigID(v *int) *FeatureUpdateOne {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetReserved sets the "reserved" field.
func (_u *FeatureUpdateOne) SetReserved(v int) *FeatureUpdateOne {
	_u.mutation.ResetReserved()
	_u.mutation.SetReserved(v)
	return _u
}

// SetNillableReserved sets the "reserved" field if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableReserved(v *int) *FeatureUpdateOne {
	if v != nil {
		_u.SetReserved(*v)
	}
	return _u
}

// AddReserved adds value to the "reserved" field.
func (_u *FeatureUpdateOne) AddReserved(v int) *FeatureUpdateOne {
	_u.mutation.AddReserved(v)
	return _u
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *FeatureUpdateOne) SetProduct(v *Product) *FeatureUpdateOne {
	return _u.SetProductID(v.ID)
}

// SetConfigurationID sets the "configuration" edge to the Configuration entity by ID.
func (_u *FeatureUpdateOne) SetConfigurationID(id int) *FeatureUpdateOne {
	_u.mutation.SetConfigurationID(id)
	return _u
}

// SetConfiguration sets the "configuration" edge to the Configuration entity.
func (_u *FeatureUpdateOne) SetConfiguration(v *Configuration) *FeatureUpdateOne {
	return _u.SetConfigurationID(v.ID)
}

// SetInventoryID sets the "inventory" edge to the Inventory entity by ID.
func (_u *FeatureUpdateOne) SetInventoryID(id int) *FeatureUpdateOne {
	_u.mutation.SetInventoryID(id)
	return _u
}

// SetNillableInventoryID sets the "inventory" edge to the Inventory entity by ID if the given value is not nil.
func (_u *FeatureUpdateOne) SetNillableInventoryID(id *int) *FeatureUpdateOne {
	if id != nil {
		_u = _u.SetInventoryID(*id)
	}
	return _u
}

// SetInventory sets the "inventory" edge to the Inventory entity.
func (_u *FeatureUpdateOne) SetInventory(v *Inventory) *FeatureUpdateOne {
	return _u.SetInventoryID(v.ID)
}

// AddBookingIDs adds the "bookings" edge to the Booking entity by IDs.
func (_u *FeatureUpdateOne) AddBookingIDs(ids ...int) *FeatureUpdateOne {
	_u.mutation.AddBookingIDs(ids...)
	return _u
}

// AddBookings adds the "bookings" edges to the Booking entity.
func (_u *FeatureUpdateOne) AddBookings(v ...*Booking) *FeatureUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBookingIDs(ids...)
}

// Mutation returns the FeatureMutation object of the builder.
func (_u *FeatureUpdateOne) Mutation() *FeatureMutation {
	return _u.mutation
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *FeatureUpdateOne) ClearProduct() *FeatureUpdateOne {
	_u.mutation.ClearProduct()
	return _u
}

// ClearConfiguration clears the "configuration" edge to the Configuration entity.
func (_u *FeatureUpdateOne) ClearConfiguration() *FeatureUpdateOne {
	_u.mutation.ClearConfiguration()
	return _u
}

// ClearInventory clears the "inventory" edge to the Inventory entity.
func (_u *FeatureUpdateOne) ClearInventory() *FeatureUpdateOne {
	_u.mutation.ClearInventory()
	return _u
}

// ClearBookings clears all "bookings" edges to the Booking entity.
func (_u *FeatureUpdateOne) ClearBookings() *FeatureUpdateOne {
	_u.mutation.ClearBookings()
	return _u
}

// RemoveBookingIDs removes the "bookings" edge to Booking entities by IDs.
func (_u *FeatureUpdateOne) RemoveBookingIDs(ids ...int) *FeatureUpdateOne {
	_u.mutation.RemoveBookingIDs(ids...)
	return _u
}

// RemoveBookings removes "bookings" edges to Booking entities.
func (_u *FeatureUpdateOne) RemoveBookings(v ...*Booking) *FeatureUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBookingIDs(ids...)
}

// Where appends a list predicates to the FeatureUpdate builder.
func (_u *FeatureUpdateOne) Where(ps ...predicate.Feature) *FeatureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeatureUpdateOne) Select(field string, fields ...string) *FeatureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Feature entity.
func (_u *FeatureUpdateOne) Save(ctx context.Context) (*Feature, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeatureUpdateOne) SaveX(ctx context.Context) *Feature {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeatureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeatureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeatureUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := feature.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Feature.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reserved(); ok {
		if err := feature.ReservedValidator(v); err != nil {
			return &ValidationError{Name: "reserved", err: fmt.Errorf(`ent: validator failed for field "Feature.reserved": %w`, err)}
		}
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Feature.product"`)
	}
	if _u.mutation.ConfigurationCleared() && len(_u.mutation.ConfigurationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Feature.configuration"`)
	}
	return nil
}

func (_u *FeatureUpdateOne) sqlSave(ctx context.Context) (_node *Feature, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feature.Table, feature.Columns, sqlgraph.NewFieldSpec(feature.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Feature.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feature.FieldID)
		for _, f := range fields {
			if !feature.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feature.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(feature.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reserved(); ok {
		_spec.SetField(feature.FieldReserved, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReserved(); ok {
		_spec.AddField(feature.FieldReserved, field.TypeInt, value)
	}
	if _u.mutation.ProductCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConfigurationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConfigurationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InventoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InventoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BookingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBookingsIDs(); len(nodes) > 0 && !_u.mutation.BookingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BookingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Feature{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feature.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
