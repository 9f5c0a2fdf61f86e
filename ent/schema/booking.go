package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Booking holds the schema definition for the Booking entity.
// A pre-reservation of license tokens by a job, held until the vendor's
// own count is guaranteed to include the checkout.
type Booking struct {
	ent.Schema
}

// Fields of the Booking.
func (Booking) Fields() []ent.Field {
	return []ent.Field{
		field.Int("job_id"),
		field.Int("feature_id"),
		field.Int("quantity").
			Positive(),
	}
}

// Edges of the Booking.
func (Booking) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("bookings").
			Field("job_id").
			Unique().
			Required(),
		edge.From("feature", Feature.Type).
			Ref("bookings").
			Field("feature_id").
			Unique().
			Required(),
	}
}

// Indexes of the Booking.
func (Booking) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "feature_id").
			Unique(),
	}
}
