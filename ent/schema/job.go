package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity.
// A workload-scheduler job that booked licenses. Identified to the outside
// world by its scheduler id, scoped per cluster.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.Int("slurm_job_id").
			Positive(),
		field.Int("cluster_id"),
		field.String("username").
			NotEmpty(),
		field.String("lead_host").
			NotEmpty(),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cluster", Cluster.Type).
			Ref("jobs").
			Field("cluster_id").
			Unique().
			Required(),
		edge.To("bookings", Booking.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("slurm_job_id", "cluster_id").
			Unique(),
	}
}
