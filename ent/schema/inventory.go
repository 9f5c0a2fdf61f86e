package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Inventory holds the schema definition for the Inventory entity.
// The live (total, used) pair for a feature, sourced from the vendor
// by the reconciliation agent. Exactly one row per feature.
type Inventory struct {
	ent.Schema
}

// Fields of the Inventory.
func (Inventory) Fields() []ent.Field {
	return []ent.Field{
		field.Int("feature_id").
			Unique(),
		field.Int("total").
			NonNegative().
			Default(0),
		field.Int("used").
			NonNegative().
			Default(0),
	}
}

// Edges of the Inventory.
func (Inventory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("feature", Feature.Type).
			Ref("inventory").
			Field("feature_id").
			Unique().
			Required(),
	}
}
