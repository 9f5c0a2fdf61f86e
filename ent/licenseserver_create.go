// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hpc-toolchain/license-manager/ent/configuration"
	"github.com/hpc-toolchain/license-manager/ent/licenseserver"
)

// LicenseServerCreate is the builder for creating a LicenseServer entity.
type LicenseServerCreate struct {
	config
	mutation *LicenseServerMutation
	hooks    []Hook
}

// SetConfigID sets the "config_id" field.
func (_c *LicenseServerCreate) SetConfigID(v int) *LicenseServerCreate {
	_c.mutation.SetConfigID(v)
	return _c
}

// SetHost sets the "host" field.
func (_c *LicenseServerCreate) SetHost(v string) *LicenseServerCreate {
	_c.mutation.SetHost(v)
	return _c
}

// SetPort sets the "port" field.
func (_c *LicenseServerCreate) SetPort(v int) *LicenseServerCreate {
	_c.mutation.SetPort(v)
	return _c
}

// SetConfigurationID sets the "configuration" edge to the Configuration entity by ID.
func (_c *LicenseServerCreate) SetConfigurationID(id int) *LicenseServerCreate {
	_c.mutation.SetConfigurationID(id)
	return _c
}

// SetConfiguration sets the "configuration" edge to the Configuration entity.
func (_c *LicenseServerCreate) SetConfiguration(v *Configuration) *LicenseServerCreate {
	return _c.SetConfigurationID(v.ID)
}

// Mutation returns the LicenseServerMutation object of the builder.
func (_c *LicenseServerCreate) Mutation() *LicenseServerMutation {
	return _c.mutation
}

// Save creates the LicenseServer in the database.
func (_c *LicenseServerCreate) Save(ctx context.Context) (*LicenseServer, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LicenseServerCreate) SaveX(ctx context.Context) *LicenseServer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LicenseServerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LicenseServerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LicenseServerCreate) check() error {
	if _, ok := _c.mutation.ConfigID(); !ok {
		return &ValidationError{Name: "config_id", err: errors.New(`ent: missing required field "LicenseServer.config_id"`)}
	}
	if _, ok := _c.mutation.Host(); !ok {
		return &ValidationError{Name: "host", err: errors.New(`ent: missing required field "LicenseServer.host"`)}
	}
	if v, ok := _c.mutation.Host(); ok {
		if err := licenseserver.HostValidator(v); err != nil {
			return &ValidationError{Name: "host", err: fmt.Errorf(`ent: validator failed for field "LicenseServer.host": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Port(); !ok {
		return &ValidationError{Name: "port", err: errors.New(`ent: missing required field "LicenseServer.port"`)}
	}
	if v, ok := _c.mutation.Port(); ok {
		if err := licenseserver.PortValidator(v); err != nil {
			return &ValidationError{Name: "port", err: fmt.Errorf(`ent: validator failed for field "LicenseServer.port": %w`, err)}
		}
	}
	if len(_c.mutation.ConfigurationIDs()) == 0 {
		return &ValidationError{Name: "configuration", err: errors.New(`ent: missing required edge "LicenseServer.configuration"`)}
	}
	return nil
}

func (_c *LicenseServerCreate) sqlSave(ctx context.Context) (*LicenseServer, error) {
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

func (_c *LicenseServerCreate) createSpec() (*LicenseServer, *sqlgraph.CreateSpec) {
	var (
		_node = &LicenseServer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(licenseserver.Table, sqlgraph.NewFieldSpec(licenseserver.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Host(); ok {
		_spec.SetField(licenseserver.FieldHost, field.TypeString, value)
		_node.Host = value
	}
	if value, ok := _c.mutation.Port(); ok {
		_spec.SetField(licenseserver.FieldPort, field.TypeInt, value)
		_node.Port = value
	}
	if nodes := _c.mutation.ConfigurationIDs(); len(nodes) > 0 {
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
		_node.ConfigID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LicenseServerCreateBulk is the builder for creating many LicenseServer entities in bulk.
type LicenseServerCreateBulk struct {
	config
	err      error
	builders []*LicenseServerCreate
}

// Save creates the LicenseServer entities in the database.
func (_c *LicenseServerCreateBulk) Save(ctx context.Context) ([]*LicenseServer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LicenseServer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LicenseServerMutation)
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
func (_c *LicenseServerCreateBulk) SaveX(ctx context.Context) []*LicenseServer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LicenseServerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LicenseServerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
