// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hpc-toolchain/license-manager/ent/cluster"
	"github.com/hpc-toolchain/license-manager/ent/configuration"
	"github.com/hpc-toolchain/license-manager/ent/feature"
	"github.com/hpc-toolchain/license-manager/ent/licenseserver"
	"github.com/hpc-toolchain/license-manager/ent/predicate"
)

// ConfigurationUpdate is the builder for updating Configuration entities.
type ConfigurationUpdate struct {
	config
	hooks    []Hook
	mutation *ConfigurationMutation
}

// Where appends a list predicates to the ConfigurationUpdate builder.
func (_u *ConfigurationUpdate) Where(ps ...predicate.Configuration) *ConfigurationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ConfigurationUpdate) SetName(v string) *ConfigurationUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConfigurationUpdate) SetNillableName(v *string) *ConfigurationUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetClusterID sets the "cluster_id" field.
func (_u *ConfigurationUpdate) SetClusterID(v int) *ConfigurationUpdate {
	_u.mutation.SetClusterID(v)
	return _u
}

// SetNillableClusterID sets the "cluster_id" field if the given value is not nil.
func (_u *ConfigurationUpdate) SetNillableClusterID(v *int) *ConfigurationUpdate {
	if v != nil {
		_u.SetClusterID(*v)
	}
	return _u
}

// SetGraceTime sets the "grace_time" field.
func (_u *ConfigurationUpdate) SetGraceTime(v int) *ConfigurationUpdate {
	_u.mutation.ResetGraceTime()
	_u.mutation.SetGraceTime(v)
	return _u
}

// SetNillableGraceTime sets the "grace_time" field if the given value is not nil.
func (_u *ConfigurationUpdate) SetNillableGraceTime(v *int) *ConfigurationUpdate {
	if v != nil {
		_u.SetGraceTime(*v)
	}
	return _u
}

// AddGraceTime adds value to the "grace_time" field.
func (_u *ConfigurationUpdate) AddGraceTime(v int) *ConfigurationUpdate {
	_u.mutation.AddGraceTime(v)
	return _u
}

// SetType sets the "type" field.
func (_u *ConfigurationUpdate) SetType(v configuration.Type) *ConfigurationUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ConfigurationUpdate) SetNillableType(v *configuration.Type) *ConfigurationUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetCluster sets the "cluster" edge to the Cluster entity.
func (_u *ConfigurationUpdate) SetCluster(v *Cluster) *ConfigurationUpdate {
	return _u.SetClusterID(v.ID)
}

// AddLicenseServerIDs adds the "license_servers" edge to the LicenseServer entity by IDs.
func (_u *ConfigurationUpdate) AddLicenseServerIDs(ids ...int) *ConfigurationUpdate {
	_u.mutation.AddLicenseServerIDs(ids...)
	return _u
}

// AddLicenseServers adds the "license_servers" edges to the LicenseServer entity.
func (_u *ConfigurationUpdate) AddLicenseServers(v ...*LicenseServer) *ConfigurationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLicenseServerIDs(ids...)
}

// AddFeatureIDs adds the "features" edge to the Feature entity by IDs.
func (_u *ConfigurationUpdate) AddFeatureIDs(ids ...int) *ConfigurationUpdate {
	_u.mutation.AddFeatureIDs(ids...)
	return _u
}

// AddFeatures adds the "features" edges to the Feature entity.
func (_u *ConfigurationUpdate) AddFeatures(v ...*Feature) *ConfigurationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeatureIDs(ids...)
}

// Mutation returns the ConfigurationMutation object of the builder.
func (_u *ConfigurationUpdate) Mutation() *ConfigurationMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the Cluster entity.
func (_u *ConfigurationUpdate) ClearCluster() *ConfigurationUpdate {
	_u.mutation.ClearCluster()
	return _u
}

// ClearLicenseServers clears all "license_servers" edges to the LicenseServer entity.
func (_u *ConfigurationUpdate) ClearLicenseServers() *ConfigurationUpdate {
	_u.mutation.ClearLicenseServers()
	return _u
}

// RemoveLicenseServerIDs removes the "license_servers" edge to LicenseServer entities by IDs.
func (_u *ConfigurationUpdate) RemoveLicenseServerIDs(ids ...int) *ConfigurationUpdate {
	_u.mutation.RemoveLicenseServerIDs(ids...)
	return _u
}

// RemoveLicenseServers removes "license_servers" edges to LicenseServer entities.
func (_u *ConfigurationUpdate) RemoveLicenseServers(v ...*LicenseServer) *ConfigurationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLicenseServerIDs(ids...)
}

// ClearFeatures clears all "features" edges to the Feature entity.
func (_u *ConfigurationUpdate) ClearFeatures() *ConfigurationUpdate {
	_u.mutation.ClearFeatures()
	return _u
}

// RemoveFeatureIDs removes the "features" edge to Feature entities by IDs.
func (_u *ConfigurationUpdate) RemoveFeatureIDs(ids ...int) *ConfigurationUpdate {
	_u.mutation.RemoveFeatureIDs(ids...)
	return _u
}

// RemoveFeatures removes "features" edges to Feature entities.
func (_u *ConfigurationUpdate) RemoveFeatures(v ...*Feature) *ConfigurationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeatureIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConfigurationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfigurationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConfigurationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfigurationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfigurationUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := configuration.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Configuration.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GraceTime(); ok {
		if err := configuration.GraceTimeValidator(v); err != nil {
			return &ValidationError{Name: "grace_time", err: fmt.Errorf(`ent: validator failed for field "Configuration.grace_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := configuration.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Configuration.type": %w`, err)}
		}
	}
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Configuration.cluster"`)
	}
	return nil
}

func (_u *ConfigurationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(configuration.Table, configuration.Columns, sqlgraph.NewFieldSpec(configuration.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(configuration.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GraceTime(); ok {
		_spec.SetField(configuration.FieldGraceTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGraceTime(); ok {
		_spec.AddField(configuration.FieldGraceTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(configuration.FieldType, field.TypeEnum, value)
	}
	if _u.mutation.ClusterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClusterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LicenseServersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLicenseServersIDs(); len(nodes) > 0 && !_u.mutation.LicenseServersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LicenseServersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeaturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeaturesIDs(); len(nodes) > 0 && !_u.mutation.FeaturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeaturesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{configuration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConfigurationUpdateOne is the builder for updating a single Configuration entity.
type ConfigurationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConfigurationMutation
}

// SetName sets the "name" field.
func (_u *ConfigurationUpdateOne) SetName(v string) *ConfigurationUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConfigurationUpdateOne) SetNillableName(v *string) *ConfigurationUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetClusterID sets the "cluster_id" field.
func (_u *ConfigurationUpdateOne) SetClusterID(v int) *ConfigurationUpdateOne {
	_u.mutation.SetClusterID(v)
	return _u
}

// SetNillableClusterID sets the "cluster_id" field if the given value is not nil.
func (_u *ConfigurationUpdateOne) SetNillableClusterID(v *int) *ConfigurationUpdateOne {
	if v != nil {
		_u.SetClusterID(*v)
	}
	return _u
}

// SetGraceTime sets the "grace_time" field.
func (_u *ConfigurationUpdateOne) SetGraceTime(v int) *ConfigurationUpdateOne {
	_u.mutation.ResetGraceTime()
	_u.mutation.SetGraceTime(v)
	return _u
}

// SetNillableGraceTime sets the "grace_time" field if the given value is not nil.
func (_u *ConfigurationUpdateOne) SetNillableGraceTime(v *int) *ConfigurationUpdateOne {
	if v != nil {
		_u.SetGraceTime(*v)
	}
	return _u
}

// AddGraceTime adds value to the "grace_time" field.
func (_u *ConfigurationUpdateOne) AddGraceTime(v int) *ConfigurationUpdateOne {
	_u.mutation.AddGraceTime(v)
	return _u
}

// SetType sets the "type" field.
func (_u *ConfigurationUpdateOne) SetType(v configuration.Type) *ConfigurationUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ConfigurationUpdateOne) SetNillableType(v *configuration.Type) *ConfigurationUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetCluster sets the "cluster" edge to the Cluster entity.
func (_u *ConfigurationUpdateOne) SetCluster(v *Cluster) *ConfigurationUpdateOne {
	return _u.SetClusterID(v.ID)
}

// AddLicenseServerIDs adds the "license_servers" edge to the LicenseServer entity by IDs.
func (_u *ConfigurationUpdateOne) AddLicenseServerIDs(ids ...int) *ConfigurationUpdateOne {
	_u.mutation.AddLicenseServerIDs(ids...)
	return _u
}

// AddLicenseServers adds the "license_servers" edges to the LicenseServer entity.
func (_u *ConfigurationUpdateOne) AddLicenseServers(v ...*LicenseServer) *ConfigurationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLicenseServerIDs(ids...)
}

// AddFeatureIDs adds the "features" edge to the Feature entity by IDs.
func (_u *ConfigurationUpdateOne) AddFeatureIDs(ids ...int) *ConfigurationUpdateOne {
	_u.mutation.AddFeatureIDs(ids...)
	return _u
}

// AddFeatures adds the "features" edges to the Feature entity.
func (_u *ConfigurationUpdateOne) AddFeatures(v ...*Feature) *ConfigurationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeatureIDs(ids...)
}

// Mutation returns the ConfigurationMutation object of the builder.
func (_u *ConfigurationUpdateOne) Mutation() *ConfigurationMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the Cluster entity.
func (_u *ConfigurationUpdateOne) ClearCluster() *ConfigurationUpdateOne {
	_u.mutation.ClearCluster()
	return _u
}

// ClearLicenseServers clears all "license_servers" edges to the LicenseServer entity.
func (_u *ConfigurationUpdateOne) ClearLicenseServers() *ConfigurationUpdateOne {
	_u.mutation.ClearLicenseServers()
	return _u
}

// RemoveLicenseServerIDs removes the "license_servers" edge to LicenseServer entities by IDs.
func (_u *ConfigurationUpdateOne) RemoveLicenseServerIDs(ids ...int) *ConfigurationUpdateOne {
	_u.mutation.RemoveLicenseServerIDs(ids...)
	return _u
}

// RemoveLicenseServers removes "license_servers" edges to LicenseServer entities.
func (_u *ConfigurationUpdateOne) RemoveLicenseServers(v ...*LicenseServer) *ConfigurationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLicenseServerIDs(ids...)
}

// ClearFeatures clears all "features" edges to the Feature entity.
func (_u *ConfigurationUpdateOne) ClearFeatures() *ConfigurationUpdateOne {
	_u.mutation.ClearFeatures()
	return _u
}

// RemoveFeatureIDs removes the "features" edge to Feature entities by IDs.
func (_u *ConfigurationUpdateOne) RemoveFeatureIDs(ids ...int) *ConfigurationUpdateOne {
	_u.mutation.RemoveFeatureIDs(ids...)
	return _u
}

// RemoveFeatures removes "features" edges to Feature entities.
func (_u *ConfigurationUpdateOne) RemoveFeatures(v ...*Feature) *ConfigurationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeatureIDs(ids...)
}

// Where appends a list predicates to the ConfigurationUpdate builder.
func (_u *ConfigurationUpdateOne) Where(ps ...predicate.Configuration) *ConfigurationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConfigurationUpdateOne) Select(field string, fields ...string) *ConfigurationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Configuration entity.
func (_u *ConfigurationUpdateOne) Save(ctx context.Context) (*Configuration, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConfigurationUpdateOne) SaveX(ctx context.Context) *Configuration {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConfigurationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConfigurationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConfigurationUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := configuration.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Configuration.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GraceTime(); ok {
		if err := configuration.GraceTimeValidator(v); err != nil {
			return &ValidationError{Name: "grace_time", err: fmt.Errorf(`ent: validator failed for field "Configuration.grace_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := configuration.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Configuration.type": %w`, err)}
		}
	}
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Configuration.cluster"`)
	}
	return nil
}

func (_u *ConfigurationUpdateOne) sqlSave(ctx context.Context) (_node *Configuration, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(configuration.Table, configuration.Columns, sqlgraph.NewFieldSpec(configuration.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Configuration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, configuration.FieldID)
		for _, f := range fields {
			if !configuration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != configuration.FieldID {
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
		_spec.SetField(configuration.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GraceTime(); ok {
		_spec.SetField(configuration.FieldGraceTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGraceTime(); ok {
		_spec.AddField(configuration.FieldGraceTime, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(configuration.FieldType, field.TypeEnum, value)
	}
	if _u.mutation.ClusterCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClusterIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LicenseServersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLicenseServersIDs(); len(nodes) > 0 && !_u.mutation.LicenseServersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LicenseServersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeaturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeaturesIDs(); len(nodes) > 0 && !_u.mutation.FeaturesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeaturesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Configuration{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{configuration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
