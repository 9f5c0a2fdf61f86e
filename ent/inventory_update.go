// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hpc-toolchain/license-manager/ent/feature"
	"github.com/hpc-toolchain/license-manager/ent/inventory"
	"github.com/hpc-toolchain/license-manager/ent/predicate"
)

// InventoryUpdate is the builder for updating Inventory entities.
type InventoryUpdate struct {
	config
	hooks    []Hook
	mutation *InventoryMutation
}

// Where appends a list predicates to the InventoryUpdate builder.
func (_u *InventoryUpdate) Where(ps ...predicate.Inventory) *InventoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFeatureID sets the "feature_id" field.
func (_u *InventoryUpdate) SetFeatureID(v int) *InventoryUpdate {
	_u.mutation.SetFeatureID(v)
	return _u
}

// SetNillableFeatureID sets the "feature_id" field if the given value is not nil.
func (_u *InventoryUpdate) SetNillableFeatureID(v *int) *InventoryUpdate {
	if v != nil {
		_u.SetFeatureID(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *InventoryUpdate) SetTotal(v int) *InventoryUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *InventoryUpdate) SetNillableTotal(v *int) *InventoryUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *InventoryUpdate) AddTotal(v int) *InventoryUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetUsed sets the "used" field.
func (_u *InventoryUpdate) SetUsed(v int) *InventoryUpdate {
	_u.mutation.ResetUsed()
	_u.mutation.SetUsed(v)
	return _u
}

// SetNillableUsed sets the "used" field if the given value is not nil.
func (_u *InventoryUpdate) SetNillableUsed(v *int) *InventoryUpdate {
	if v != nil {
		_u.SetUsed(*v)
	}
	return _u
}

// AddUsed adds value to the "used" field.
func (_u *InventoryUpdate) AddUsed(v int) *InventoryUpdate {
	_u.mutation.AddUsed(v)
	return _u
}

// SetFeature sets the "feature" edge to the Feature entity.
func (_u *InventoryUpdate) SetFeature(v *Feature) *InventoryUpdate {
	return _u.SetFeatureID(v.ID)
}

// Mutation returns the InventoryMutation object of the builder.
func (_u *InventoryUpdate) Mutation() *InventoryMutation {
	return _u.mutation
}

// ClearFeature clears the "feature" edge to the Feature entity.
func (_u *InventoryUpdate) ClearFeature() *InventoryUpdate {
	_u.mutation.ClearFeature()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InventoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InventoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InventoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InventoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InventoryUpdate) check() error {
	if v, ok := _u.mutation.Total(); ok {
		if err := inventory.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "Inventory.total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Used(); ok {
		if err := inventory.UsedValidator(v); err != nil {
			return &ValidationError{Name: "used", err: fmt.Errorf(`ent: validator failed for field "Inventory.used": %w`, err)}
		}
	}
	if _u.mutation.FeatureCleared() && len(_u.mutation.FeatureIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Inventory.feature"`)
	}
	return nil
}

func (_u *InventoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inventory.Table, inventory.Columns, sqlgraph.NewFieldSpec(inventory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(inventory.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(inventory.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Used(); ok {
		_spec.SetField(inventory.FieldUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsed(); ok {
		_spec.AddField(inventory.FieldUsed, field.TypeInt, value)
	}
	if _u.mutation.FeatureCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   inventory.FeatureTable,
			Columns: []string{inventory.FeatureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feature.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeatureIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   inventory.FeatureTable,
			Columns: []string{inventory.FeatureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feature.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inventory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InventoryUpdateOne is the builder for updating a single Inventory entity.
type InventoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InventoryMutation
}

// SetFeatureID sets the "feature_id" field.
func (_u *InventoryUpdateOne) SetFeatureID(v int) *InventoryUpdateOne {
	_u.mutation.SetFeatureID(v)
	return _u
}

// SetNillableFeatureID sets the "feature_id" field if the given value is not nil.
func (_u *InventoryUpdateOne) SetNillableFeatureID(v *int) *InventoryUpdateOne {
	if v != nil {
		_u.SetFeatureID(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *InventoryUpdateOne) SetTotal(v int) *InventoryUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *InventoryUpdateOne) SetNillableTotal(v *int) *InventoryUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *InventoryUpdateOne) AddTotal(v int) *InventoryUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetUsed sets the "used" field.
func (_u *InventoryUpdateOne) SetUsed(v int) *InventoryUpdateOne {
	_u.mutation.ResetUsed()
	_u.mutation.SetUsed(v)
	return _u
}

// SetNillableUsed sets the "used" field if the given value is not nil.
func (_u *InventoryUpdateOne) SetNillableUsed(v *int) *InventoryUpdateOne {
	if v != nil {
		_u.SetUsed(*v)
	}
	return _u
}

// AddUsed adds value to the "used" field.
func (_u *InventoryUpdateOne) AddUsed(v int) *InventoryUpdateOne {
	_u.mutation.AddUsed(v)
	return _u
}

// SetFeature sets the "feature" edge to the Feature entity.
func (_u *InventoryUpdateOne) SetFeature(v *Feature) *InventoryUpdateOne {
	return _u.SetFeatureID(v.ID)
}

// Mutation returns the InventoryMutation object of the builder.
func (_u *InventoryUpdateOne) Mutation() *InventoryMutation {
	return _u.mutation
}

// ClearFeature clears the "feature" edge to the Feature entity.
func (_u *InventoryUpdateOne) ClearFeature() *InventoryUpdateOne {
	_u.mutation.ClearFeature()
	return _u
}

// Where appends a list predicates to the InventoryUpdate builder.
func (_u *InventoryUpdateOne) Where(ps ...predicate.Inventory) *InventoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InventoryUpdateOne) Select(field string, fields ...string) *InventoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Inventory entity.
func (_u *InventoryUpdateOne) Save(ctx context.Context) (*Inventory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InventoryUpdateOne) SaveX(ctx context.Context) *Inventory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InventoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InventoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InventoryUpdateOne) check() error {
	if v, ok := _u.mutation.Total(); ok {
		if err := inventory.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "Inventory.total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Used(); ok {
		if err := inventory.UsedValidator(v); err != nil {
			return &ValidationError{Name: "used", err: fmt.Errorf(`ent: validator failed for field "Inventory.used": %w`, err)}
		}
	}
	if _u.mutation.FeatureCleared() && len(_u.mutation.FeatureIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Inventory.feature"`)
	}
	return nil
}

func (_u *InventoryUpdateOne) sqlSave(ctx context.Context) (_node *Inventory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inventory.Table, inventory.Columns, sqlgraph.NewFieldSpec(inventory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Inventory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inventory.FieldID)
		for _, f := range fields {
			if !inventory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != inventory.FieldID {
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
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(inventory.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(inventory.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Used(); ok {
		_spec.SetField(inventory.FieldUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsed(); ok {
		_spec.AddField(inventory.FieldUsed, field.TypeInt, value)
	}
	if _u.mutation.FeatureCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   inventory.FeatureTable,
			Columns: []string{inventory.FeatureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feature.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeatureIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   inventory.FeatureTable,
			Columns: []string{inventory.FeatureColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feature.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Inventory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inventory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
