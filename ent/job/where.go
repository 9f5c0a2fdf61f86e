// Code generated by ent, DO NOT EDIT.

package job

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hpc-toolchain/license-manager/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// SlurmJobID applies equality check predicate on the "slurm_job_id" field. It's identical to SlurmJobIDEQ.
func SlurmJobID(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSlurmJobID, v))
}

// ClusterID applies equality check predicate on the "cluster_id" field. It's identical to ClusterIDEQ.
func ClusterID(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldClusterID, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUsername, v))
}

// LeadHost applies equality check predicate on the "lead_host" field. It's identical to LeadHostEQ.
func LeadHost(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLeadHost, v))
}

// SlurmJobIDEQ applies the EQ predicate on the "slurm_job_id" field.
func SlurmJobIDEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldSlurmJobID, v))
}

// SlurmJobIDNEQ applies the NEQ predicate on the "slurm_job_id" field.
func SlurmJobIDNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldSlurmJobID, v))
}

// SlurmJobIDIn applies the In predicate on the "slurm_job_id" field.
func SlurmJobIDIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldSlurmJobID, vs...))
}

// SlurmJobIDNotIn applies the NotIn predicate on the "slurm_job_id" field.
func SlurmJobIDNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldSlurmJobID, vs...))
}

// SlurmJobIDGT applies the GT predicate on the "slurm_job_id" field.
func SlurmJobIDGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldSlurmJobID, v))
}

// SlurmJobIDGTE applies the GTE predicate on the "slurm_job_id" field.
func SlurmJobIDGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldSlurmJobID, v))
}

// SlurmJobIDLT applies the LT predicate on the "slurm_job_id" field.
func SlurmJobIDLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldSlurmJobID, v))
}

// SlurmJobIDLTE applies the LTE predicate on the "slurm_job_id" field.
func SlurmJobIDLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldSlurmJobID, v))
}

// ClusterIDEQ applies the EQ predicate on the "cluster_id" field.
func ClusterIDEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldClusterID, v))
}

// ClusterIDNEQ applies the NEQ predicate on the "cluster_id" field.
func ClusterIDNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldClusterID, v))
}

// ClusterIDIn applies the In predicate on the "cluster_id" field.
func ClusterIDIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldClusterID, vs...))
}

// ClusterIDNotIn applies the NotIn predicate on the "cluster_id" field.
func ClusterIDNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldClusterID, vs...))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldUsername, v))
}

// LeadHostEQ applies the EQ predicate on the "lead_host" field.
func LeadHostEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLeadHost, v))
}

// LeadHostNEQ applies the NEQ predicate on the "lead_host" field.
func LeadHostNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLeadHost, v))
}

// LeadHostIn applies the In predicate on the "lead_host" field.
func LeadHostIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLeadHost, vs...))
}

// LeadHostNotIn applies the NotIn predicate on the "lead_host" field.
func LeadHostNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLeadHost, vs...))
}

// LeadHostGT applies the GT predicate on the "lead_host" field.
func LeadHostGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLeadHost, v))
}

// LeadHostGTE applies the GTE predicate on the "lead_host" field.
func LeadHostGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLeadHost, v))
}

// LeadHostLT applies the LT predicate on the "lead_host" field.
func LeadHostLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLeadHost, v))
}

// LeadHostLTE applies the LTE predicate on the "lead_host" field.
func LeadHostLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLeadHost, v))
}

// LeadHostContains applies the Contains predicate on the "lead_host" field.
func LeadHostContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldLeadHost, v))
}

// LeadHostHasPrefix applies the HasPrefix predicate on the "lead_host" field.
func LeadHostHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldLeadHost, v))
}

// LeadHostHasSuffix applies the HasSuffix predicate on the "lead_host" field.
func LeadHostHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldLeadHost, v))
}

// LeadHostEqualFold applies the EqualFold predicate on the "lead_host" field.
func LeadHostEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldLeadHost, v))
}

// LeadHostContainsFold applies the ContainsFold predicate on the "lead_host" field.
func LeadHostContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldLeadHost, v))
}

// HasCluster applies the HasEdge predicate on the "cluster" edge.
func HasCluster() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClusterTable, ClusterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClusterWith applies the HasEdge predicate on the "cluster" edge with a given conditions (other predicates).
func HasClusterWith(preds ...predicate.Cluster) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newClusterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBookings applies the HasEdge predicate on the "bookings" edge.
func HasBookings() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BookingsTable, BookingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBookingsWith applies the HasEdge predicate on the "bookings" edge with a given conditions (other predicates).
func HasBookingsWith(preds ...predicate.Booking) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newBookingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
