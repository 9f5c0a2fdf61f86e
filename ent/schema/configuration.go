package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Configuration holds the schema definition for the Configuration entity.
// A configuration groups the license servers of one vendor deployment and
// the features they expose, owned by exactly one cluster.
type Configuration struct {
	ent.Schema
}

// Fields of the Configuration.
func (Configuration) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.Int("cluster_id"),
		field.Int("grace_time").
			NonNegative().
			Comment("Seconds a booking is retained after job start"),
		field.Enum("type").
			Values("flexlm", "rlm", "lsdyna", "lmx", "olicense"),
	}
}

// Edges of the Configuration.
func (Configuration) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("cluster", Cluster.Type).
			Ref("configurations").
			Field("cluster_id").
			Unique().
			Required(),
		edge.To("license_servers", LicenseServer.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("features", Feature.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
