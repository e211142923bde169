package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Appointment holds the schema definition for the Appointment entity.
// Rows are created only by hold confirmation. The policy_* columns pin
// the compiled policy in force at confirm time and are never updated.
//
// A (room_id, tstzrange(start_time, end_time)) exclusion constraint is
// added by migration 000002 — Ent cannot express it. It is the last
// line of defense against double-booking under race.
type Appointment struct {
	ent.Schema
}

// Fields of the Appointment.
func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("appointment_id").
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
		field.Enum("status").
			Values("scheduled", "cancelled", "completed", "no_show").
			Default("scheduled"),
		field.String("policy_snapshot_id").
			Optional().
			Immutable(),
		field.Int("policy_version").
			Optional().
			Immutable(),
		field.String("policy_bundle_sha256").
			Optional().
			Immutable(),
		field.String("calendar_event_id").
			Optional().
			Nillable().
			Comment("External calendar sync result; empty until sync succeeds"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Appointment.
func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "start_time"),
		index.Fields("doctor_id", "start_time"),
		index.Fields("room_id", "start_time"),
		index.Fields("patient_id", "status"),
	}
}
