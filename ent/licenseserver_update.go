// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hpc-toolchain/license-manager/ent/configuration"
	"github.com/hpc-toolchain/license-manager/ent/licenseserver"
	"github.com/hpc-toolchain/license-manager/ent/predicate"
)

// LicenseServerUpdate is the builder for updating LicenseServer entities.
type LicenseServerUpdate struct {
	config
	hooks    []Hook
	mutation *LicenseServerMutation
}

// Where appends a list predicates to the LicenseServerUpdate builder.
func (_u *LicenseServerUpdate) Where(ps ...predicate.LicenseServer) *LicenseServerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConfigID sets the "config_id" field.
func (_u *LicenseServerUpdate) SetConfigID(v int) *LicenseServerUpdate {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *LicenseServerUpdate) SetNillableConfigID(v *int) *LicenseServerUpdate {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetHost sets the "host" field.
func (_u *LicenseServerUpdate) SetHost(v string) *LicenseServerUpdate {
	_u.mutation.SetHost(v)
	return _u
}

// SetNillableHost sets the "host" field if the given value is not nil.
func (_u *LicenseServerUpdate) SetNillableHost(v *string) *LicenseServerUpdate {
	if v != nil {
		_u.SetHost(*v)
	}
	return _u
}

// SetPort sets the "port" field.
func (_u *LicenseServerUpdate) SetPort(v int) *LicenseServerUpdate {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *LicenseServerUpdate) SetNillablePort(v *int) *LicenseServerUpdate {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *LicenseServerUpdate) AddPort(v int) *LicenseServerUpdate {
	_u.mutation.AddPort(v)
	return _u
}

// SetConfigurationID sets the "configuration" edge to the Configuration entity by ID.
func (_u *LicenseServerUpdate) SetConfigurationID(id int) *LicenseServerUpdate {
	_u.mutation.SetConfigurationID(id)
	return _u
}

// SetConfiguration sets the "configuration" edge to the Configuration entity.
func (_u *LicenseServerUpdate) SetConfiguration(v *Configuration) *LicenseServerUpdate {
	return _u.SetConfigurationID(v.ID)
}

// Mutation returns the LicenseServerMutation object of the builder.
func (_u *LicenseServerUpdate) Mutation() *LicenseServerMutation {
	return _u.mutation
}

// ClearConfiguration clears the "configuration" edge to the Configuration entity.
func (_u *LicenseServerUpdate) ClearConfiguration() *LicenseServerUpdate {
	_u.mutation.ClearConfiguration()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LicenseServerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LicenseServerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LicenseServerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LicenseServerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LicenseServerUpdate) check() error {
	if v, ok := _u.mutation.Host(); ok {
		if err := licenseserver.HostValidator(v); err != nil {
			return &ValidationError{Name: "host", err: fmt.Errorf(`ent: validator failed for field "LicenseServer.host": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Port(); ok {
		if err := licenseserver.PortValidator(v); err != nil {
			return &ValidationError{Name: "port", err: fmt.Errorf(`ent: validator failed for field "LicenseServer.port": %w`, err)}
		}
	}
	if _u.mutation.ConfigurationCleared() && len(_u.mutation.ConfigurationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LicenseServer.configuration"`)
	}
	return nil
}

func (_u *LicenseServerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(licenseserver.Table, licenseserver.Columns, sqlgraph.NewFieldSpec(licenseserver.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Host(); ok {
		_spec.SetField(licenseserver.FieldHost, field.TypeString, value)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(licenseserver.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(licenseserver.FieldPort, field.TypeInt, value)
	}
	if _u.mutation.ConfigurationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   licenseserver.ConfigurationTable,
			Columns: []string{licenseserver.ConfigurationColumn},
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
			Table:   licenseserver.ConfigurationTable,
			Columns: []string{licenseserver.ConfigurationColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{licenseserver.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LicenseServerUpdateOne is the builder for updating a single LicenseServer entity.
type LicenseServerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LicenseServerMutation
}

// SetConfigID sets the "config_id" field.
func (_u *LicenseServerUpdateOne) SetConfigID(v int) *LicenseServerUpdateOne {
	_u.mutation.SetConfigID(v)
	return _u
}

// SetNillableConfigID sets the "config_id" field if the given value is not nil.
func (_u *LicenseServerUpdateOne) SetNillableConfigID(v *int) *LicenseServerUpdateOne {
	if v != nil {
		_u.SetConfigID(*v)
	}
	return _u
}

// SetHost sets the "host" field.
func (_u *LicenseServerUpdateOne) SetHost(v string) *LicenseServerUpdateOne {
	_u.mutation.SetHost(v)
	return _u
}

// SetNillableHost sets the "host" field if the given value is not nil.
func (_u *LicenseServerUpdateOne) SetNillableHost(v *string) *LicenseServerUpdateOne {
	if v != nil {
		_u.SetHost(*v)
	}
	return _u
}

// SetPort sets the "port" field.
func (_u *LicenseServerUpdateOne) SetPort(v int) *LicenseServerUpdateOne {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *LicenseServerUpdateOne) SetNillablePort(v *int) *LicenseServerUpdateOne {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *LicenseServerUpdateOne) AddPort(v int) *LicenseServerUpdateOne {
	_u.mutation.AddPort(v)
	return _u
}

// SetConfigurationID sets the "configuration" edge to the Configuration entity by ID.
func (_u *LicenseServerUpdateOne) SetConfigurationID(id int) *LicenseServerUpdateOne {
	_u.mutation.SetConfigurationID(id)
	return _u
}

// SetConfiguration sets the "configuration" edge to the Configuration entity.
func (_u *LicenseServerUpdateOne) SetConfiguration(v *Configuration) *LicenseServerUpdateOne {
	return _u.SetConfigurationID(v.ID)
}

// Mutation returns the LicenseServerMutation object of the builder.
func (_u *LicenseServerUpdateOne) Mutation() *LicenseServerMutation {
	return _u.mutation
}

// ClearConfiguration clears the "configuration" edge to the Configuration entity.
func (_u *LicenseServerUpdateOne) ClearConfiguration() *LicenseServerUpdateOne {
	_u.mutation.ClearConfiguration()
	return _u
}

// Where appends a list predicates to the LicenseServerUpdate builder.
func (_u *LicenseServerUpdateOne) Where(ps ...predicate.LicenseServer) *LicenseServerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LicenseServerUpdateOne) Select(field string, fields ...string) *LicenseServerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LicenseServer entity.
func (_u *LicenseServerUpdateOne) Save(ctx context.Context) (*LicenseServer, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LicenseServerUpdateOne) SaveX(ctx context.Context) *LicenseServer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LicenseServerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LicenseServerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LicenseServerUpdateOne) check() error {
	if v, ok := _u.mutation.Host(); ok {
		if err := licenseserver.HostValidator(v); err != nil {
			return &ValidationError{Name: "host", err: fmt.Errorf(`ent: validator failed for field "LicenseServer.host": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Port(); ok {
		if err := licenseserver.PortValidator(v); err != nil {
			return &ValidationError{Name: "port", err: fmt.Errorf(`ent: validator failed for field "LicenseServer.port": %w`, err)}
		}
	}
	if _u.mutation.ConfigurationCleared() && len(_u.mutation.ConfigurationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LicenseServer.configuration"`)
	}
	return nil
}

func (_u *LicenseServerUpdateOne) sqlSave(ctx context.Context) (_node *LicenseServer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(licenseserver.Table, licenseserver.Columns, sqlgraph.NewFieldSpec(licenseserver.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LicenseServer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, licenseserver.FieldID)
		for _, f := range fields {
			if !licenseserver.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != licenseserver.FieldID {
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
	if value, ok := _u.mutation.Host(); ok {
		_spec.SetField(licenseserver.FieldHost, field.TypeString, value)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(licenseserver.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(licenseserver.FieldPort, field.TypeInt, value)
	}
	if _u.mutation.ConfigurationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   licenseserver.ConfigurationTable,
			Columns: []string{licenseserver.ConfigurationColumn},
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
			Table:   licenseserver.ConfigurationTable,
			Columns: []string{licenseserver.ConfigurationColumn},
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
	_node = &LicenseServer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{licenseserver.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
