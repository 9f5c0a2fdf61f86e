// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hpc-toolchain/license-manager/ent/cluster"
	"github.com/hpc-toolchain/license-manager/ent/configuration"
	"github.com/hpc-toolchain/license-manager/ent/feature"
	"github.com/hpc-toolchain/license-manager/ent/licenseserver"
)

// ConfigurationCreate is the builder for creating a Configuration entity.
type ConfigurationCreate struct {
	config
	mutation *ConfigurationMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ConfigurationCreate) SetName(v string) *ConfigurationCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetClusterID sets the "cluster_id" field.
func (_c *ConfigurationCreate) SetClusterID(v int) *ConfigurationCreate {
	_c.mutation.SetClusterID(v)
	return _c
}

// SetGraceTime sets the "grace_time" field.
func (_c *ConfigurationCreate) SetGraceTime(v int) *ConfigurationCreate {
	_c.mutation.SetGraceTime(v)
	return _c
}

// SetType sets the "type" field.
func (_c *ConfigurationCreate) SetType(v configuration.Type) *ConfigurationCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetCluster sets the "cluster" edge to the Cluster entity.
func (_c *ConfigurationCreate) SetCluster(v *Cluster) *ConfigurationCreate {
	return _c.SetClusterID(v.ID)
}

// AddLicenseServerIDs adds the "license_servers" edge to the LicenseServer entity by IDs.
func (_c *ConfigurationCreate) AddLicenseServerIDs(ids ...int) *ConfigurationCreate {
	_c.mutation.AddLicenseServerIDs(ids...)
	return _c
}

// AddLicenseServers adds the "license_servers" edges to the LicenseServer entity.
func (_c *ConfigurationCreate) AddLicenseServers(v ...*LicenseServer) *ConfigurationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLicenseServerIDs(ids...)
}

// AddFeatureIDs adds the "features" edge to the Feature entity by IDs.
func (_c *ConfigurationCreate) AddFeatureIDs(ids ...int) *ConfigurationCreate {
	_c.mutation.AddFeatureIDs(ids...)
	return _c
}

// AddFeatures adds the "features" edges to the Feature entity.
func (_c *ConfigurationCreate) AddFeatures(v ...*Feature) *ConfigurationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFeatureIDs(ids...)
}

// Mutation returns the ConfigurationMutation object of the builder.
func (_c *ConfigurationCreate) Mutation() *ConfigurationMutation {
	return _c.mutation
}

// Save creates the Configuration in the database.
func (_c *ConfigurationCreate) Save(ctx context.Context) (*Configuration, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConfigurationCreate) SaveX(ctx context.Context) *Configuration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConfigurationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConfigurationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConfigurationCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Configuration.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := configuration.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Configuration.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClusterID(); !ok {
		return &ValidationError{Name: "cluster_id", err: errors.New(`ent: missing required field "Configuration.cluster_id"`)}
	}
	if _, ok := _c.mutation.GraceTime(); !ok {
		return &ValidationError{Name: "grace_time", err: errors.New(`ent: missing required field "Configuration.grace_time"`)}
	}
	if v, ok := _c.mutation.GraceTime(); ok {
		if err := configuration.GraceTimeValidator(v); err != nil {
			return &ValidationError{Name: "grace_time", err: fmt.Errorf(`ent: validator failed for field "Configuration.grace_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Configuration.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := configuration.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Configuration.type": %w`, err)}
		}
	}
	if len(_c.mutation.ClusterIDs()) == 0 {
		return &ValidationError{Name: "cluster", err: errors.New(`ent: missing required edge "Configuration.cluster"`)}
	}
	return nil
}

func (_c *ConfigurationCreate) sqlSave(ctx context.Context) (*Configuration, error) {
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

func (_c *ConfigurationCreate) createSpec() (*Configuration, *sqlgraph.CreateSpec) {
	var (
		_node = &Configuration{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(configuration.Table, sqlgraph.NewFieldSpec(configuration.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(configuration.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.GraceTime(); ok {
		_spec.SetField(configuration.FieldGraceTime, field.TypeInt, value)
		_node.GraceTime = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(configuration.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if nodes := _c.mutation.ClusterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   configuration.ClusterTable,
			Columns: []string{configuration.ClusterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(cluster.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClusterID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LicenseServersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configuration.LicenseServersTable,
			Columns: []string{configuration.LicenseServersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(licenseserver.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FeaturesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   configuration.FeaturesTable,
			Columns: []string{configuration.FeaturesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feature.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConfigurationCreateBulk is the builder for creating many Configuration entities in bulk.
type ConfigurationCreateBulk struct {
	config
	err      error
	builders []*ConfigurationCreate
}

// Save creates the Configuration entities in the database.
func (_c *ConfigurationCreateBulk) Save(ctx context.Context) ([]*Configuration, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Configuration, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConfigurationMutation)
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
func (_c *ConfigurationCreateBulk) SaveX(ctx context.Context) []*Configuration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConfigurationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConfigurationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
