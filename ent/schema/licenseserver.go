package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// LicenseServer holds the schema definition for the LicenseServer entity.
// A network endpoint (host:port) of an upstream vendor license daemon.
type LicenseServer struct {
	ent.Schema
}

// Fields of the LicenseServer.
func (LicenseServer) Fields() []ent.Field {
	return []ent.Field{
		field.Int("config_id"),
		field.String("host").
			NotEmpty(),
		field.Int("port").
			Min(1).
			Max(65535),
	}
}

// Edges of the LicenseServer.
func (LicenseServer) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("configuration", Configuration.Type).
			Ref("license_servers").
			Field("config_id").
			Unique().
			Required(),
	}
}
