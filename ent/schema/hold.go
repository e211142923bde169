package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Hold holds the schema definition for the Hold entity.
// A short-lived slot reservation: created by hold_slot, deleted by
// confirm or expiry. client_hold_id is the caller's idempotency key —
// repeating hold_slot with the same key returns the same row.
type Hold struct {
	ent.Schema
}

// Fields of the Hold.
func (Hold) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("hold_id").
			Unique().
			Immutable(),
		field.String("client_hold_id").
			Unique().
			Immutable(),
		field.String("clinic_id").
			Immutable(),
		field.String("patient_id").
			Immutable(),
		field.String("doctor_id").
			Immutable(),
		field.String("room_id").
			Immutable(),
		field.String("service_id").
			Immutable(),
		field.Time("start_time").
			Immutable(),
		field.Time("end_time").
			Immutable(),
		field.Float("score").
			Optional().
			Comment("Suggestion score at hold time, for escalation context"),
		field.Time("expires_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Hold.
func (Hold) Indexes() []ent.Index {
	return []ent.Index{
		// Room-availability overlap scan
		index.Fields("room_id", "start_time"),
		index.Fields("expires_at"),
		index.Fields("patient_id"),
	}
}
