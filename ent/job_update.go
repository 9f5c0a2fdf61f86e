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
	"github.com/hpc-toolchain/license-manager/ent/cluster"
	"github.com/hpc-toolchain/license-manager/ent/job"
	"github.com/hpc-toolchain/license-manager/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlurmJobID sets the "slurm_job_id" field.
func (_u *JobUpdate) SetSlurmJobID(v int) *JobUpdate {
	_u.mutation.ResetSlurmJobID()
	_u.mutation.SetSlurmJobID(v)
	return _u
}

// SetNillableSlurmJobID sets the "slurm_job_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSlurmJobID(v *int) *JobUpdate {
	if v != nil {
		_u.SetSlurmJobID(*v)
	}
	return _u
}

// AddSlurmJobID adds value to the "slurm_job_id" field.
func (_u *JobUpdate) AddSlurmJobID(v int) *JobUpdate {
	_u.mutation.AddSlurmJobID(v)
	return _u
}

// SetClusterID sets the "cluster_id" field.
func (_u *JobUpdate) SetClusterID(v int) *JobUpdate {
	_u.mutation.SetClusterID(v)
	return _u
}

// SetNillableClusterID sets the "cluster_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableClusterID(v *int) *JobUpdate {
	if v != nil {
		_u.SetClusterID(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *JobUpdate) SetUsername(v string) *JobUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *JobUpdate) SetNillableUsername(v *string) *JobUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetLeadHost sets the "lead_host" field.
func (_u *JobUpdate) SetLeadHost(v string) *JobUpdate {
	_u.mutation.SetLeadHost(v)
	return _u
}

// SetNillableLeadHost sets the "lead_host" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLeadHost(v *string) *JobUpdate {
	if v != nil {
		_u.SetLeadHost(*v)
	}
	return _u
}

// SetCluster sets the "cluster" edge to the Cluster entity.
func (_u *JobUpdate) SetCluster(v *Cluster) *JobUpdate {
	return _u.SetClusterID(v.ID)
}

// AddBookingIDs adds the "bookings" edge to the Booking entity by IDs.
func (_u *JobUpdate) AddBookingIDs(ids ...int) *JobUpdate {
	_u.mutation.AddBookingIDs(ids...)
	return _u
}

// AddBookings adds the "bookings" edges to the Booking entity.
func (_u *JobUpdate) AddBookings(v ...*Booking) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBookingIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the Cluster entity.
func (_u *JobUpdate) ClearCluster() *JobUpdate {
	_u.mutation.ClearCluster()
	return _u
}

// ClearBookings clears all "bookings" edges to the Booking entity.
func (_u *JobUpdate) ClearBookings() *JobUpdate {
	_u.mutation.ClearBookings()
	return _u
}

// RemoveBookingIDs removes the "bookings" edge to Booking entities by IDs.
func (_u *JobUpdate) RemoveBookingIDs(ids ...int) *JobUpdate {
	_u.mutation.RemoveBookingIDs(ids...)
	return _u
}

// RemoveBookings removes "bookings" edges to Booking entities.
func (_u *JobUpdate) RemoveBookings(v ...*Booking) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBookingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.SlurmJobID(); ok {
		if err := job.SlurmJobIDValidator(v); err != nil {
			return &ValidationError{Name: "slurm_job_id", err: fmt.Errorf(`ent: validator failed for field "Job.slurm_job_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Username(); ok {
		if err := job.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "Job.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LeadHost(); ok {
		if err := job.LeadHostValidator(v); err != nil {
			return &ValidationError{Name: "lead_host", err: fmt.Errorf(`ent: validator failed for field "Job.lead_host": %w`, err)}
		}
	}
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.cluster"`)
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SlurmJobID(); ok {
		_spec.SetField(job.FieldSlurmJobID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlurmJobID(); ok {
		_spec.AddField(job.FieldSlurmJobID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(job.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.LeadHost(); ok {
		_spec.SetField(job.FieldLeadHost, field.TypeString, value)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.ClusterTable,
			Columns: []string{job.ClusterColumn},
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
			Table:   job.ClusterTable,
			Columns: []string{job.ClusterColumn},
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
	if _u.mutation.BookingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.BookingsTable,
			Columns: []string{job.BookingsColumn},
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
			Table:   job.BookingsTable,
			Columns: []string{job.BookingsColumn},
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
			Table:   job.BookingsTable,
			Columns: []string{job.BookingsColumn},
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
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetSlurmJobID sets the "slurm_job_id" field.
func (_u *JobUpdateOne) SetSlurmJobID(v int) *JobUpdateOne {
	_u.mutation.ResetSlurmJobID()
	_u.mutation.SetSlurmJobID(v)
	return _u
}

// SetNillableSlurmJobID sets the "slurm_job_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSlurmJobID(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetSlurmJobID(*v)
	}
	return _u
}

// AddSlurmJobID adds value to the "slurm_job_id" field.
func (_u *JobUpdateOne) AddSlurmJobID(v int) *JobUpdateOne {
	_u.mutation.AddSlurmJobID(v)
	return _u
}

// SetClusterID sets the "cluster_id" field.
func (_u *JobUpdateOne) SetClusterID(v int) *JobUpdateOne {
	_u.mutation.SetClusterID(v)
	return _u
}

// SetNillableClusterID sets the "cluster_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableClusterID(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetClusterID(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *JobUpdateOne) SetUsername(v string) *JobUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableUsername(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetLeadHost sets the "lead_host" field.
func (_u *JobUpdateOne) SetLeadHost(v string) *JobUpdateOne {
	_u.mutation.SetLeadHost(v)
	return _u
}

// SetNillableLeadHost sets the "lead_host" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLeadHost(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLeadHost(*v)
	}
	return _u
}

// SetCluster sets the "cluster" edge to the Cluster entity.
func (_u *JobUpdateOne) SetCluster(v *Cluster) *JobUpdateOne {
	return _u.SetClusterID(v.ID)
}

// AddBookingIDs adds the "bookings" edge to the Booking entity by IDs.
func (_u *JobUpdateOne) AddBookingIDs(ids ...int) *JobUpdateOne {
	_u.mutation.AddBookingIDs(ids...)
	return _u
}

// AddBookings adds the "bookings" edges to the Booking entity.
func (_u *JobUpdateOne) AddBookings(v ...*Booking) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBookingIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearCluster clears the "cluster" edge to the Cluster entity.
func (_u *JobUpdateOne) ClearCluster() *JobUpdateOne {
	_u.mutation.ClearCluster()
	return _u
}

// ClearBookings clears all "bookings" edges to the Booking entity.
func (_u *JobUpdateOne) ClearBookings() *JobUpdateOne {
	_u.mutation.ClearBookings()
	return _u
}

// RemoveBookingIDs removes the "bookings" edge to Booking entities by IDs.
func (_u *JobUpdateOne) RemoveBookingIDs(ids ...int) *JobUpdateOne {
	_u.mutation.RemoveBookingIDs(ids...)
	return _u
}

// RemoveBookings removes "bookings" edges to Booking entities.
func (_u *JobUpdateOne) RemoveBookings(v ...*Booking) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBookingIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.SlurmJobID(); ok {
		if err := job.SlurmJobIDValidator(v); err != nil {
			return &ValidationError{Name: "slurm_job_id", err: fmt.Errorf(`ent: validator failed for field "Job.slurm_job_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Username(); ok {
		if err := job.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "Job.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LeadHost(); ok {
		if err := job.LeadHostValidator(v); err != nil {
			return &ValidationError{Name: "lead_host", err: fmt.Errorf(`ent: validator failed for field "Job.lead_host": %w`, err)}
		}
	}
	if _u.mutation.ClusterCleared() && len(_u.mutation.ClusterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.cluster"`)
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
	if value, ok := _u.mutation.SlurmJobID(); ok {
		_spec.SetField(job.FieldSlurmJobID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSlurmJobID(); ok {
		_spec.AddField(job.FieldSlurmJobID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(job.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.LeadHost(); ok {
		_spec.SetField(job.FieldLeadHost, field.TypeString, value)
	}
	if _u.mutation.ClusterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.ClusterTable,
			Columns: []string{job.ClusterColumn},
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
			Table:   job.ClusterTable,
			Columns: []string{job.ClusterColumn},
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
	if _u.mutation.BookingsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.BookingsTable,
			Columns: []string{job.BookingsColumn},
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
			Table:   job.BookingsTable,
			Columns: []string{job.BookingsColumn},
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
			Table:   job.BookingsTable,
			Columns: []string{job.BookingsColumn},
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
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
