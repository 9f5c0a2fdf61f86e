package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Feature holds the schema definition for the Feature entity.
// A named license seat under a product, exposed to clients as
// "product.feature".
type Feature struct {
	ent.Schema
}

// Fields of the Feature.
func (Feature) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.Int("product_id"),
		field.Int("config_id"),
		field.Int("reserved").
			NonNegative().
			Default(0).
			Comment("Operator-set minimum held back from cluster use"),
	}
}

// Edges of the Feature.
func (Feature) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("product", Product.Type).
			Ref("features").
			Field("product_id").
			Unique().
			Required(),
		edge.From("configuration", Configuration.Type).
			Ref("features").
			Field("config_id").
			Unique().
			Required(),
		edge.To("inventory", Inventory.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("bookings", Booking.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Feature.
func (Feature) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("product_id", "config_id", "name").
			Unique(),
	}
}
