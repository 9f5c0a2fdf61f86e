package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Cluster holds the schema definition for the Cluster entity.
// One row per workload cluster running an agent.
type Cluster struct {
	ent.Schema
}

// Fields of the Cluster.
func (Cluster) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.String("client_id").
			Unique().
			NotEmpty().
			Comment("OIDC client id presented by the cluster's agent (azp claim)"),
	}
}

// Edges of the Cluster.
func (Cluster) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("configurations", Configuration.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("jobs", Job.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
