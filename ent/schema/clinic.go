package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Clinic holds the schema definition for the Clinic entity.
// The profile column is a read-mostly snapshot (doctors, rooms,
// services, aliases, hours, scheduling settings) authored by clinic
// admin tooling. Request paths read it through the short-TTL cache in
// pkg/clinic, never directly.
type Clinic struct {
	ent.Schema
}

// Fields of the Clinic.
func (Clinic) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("clinic_id").
			Unique().
			Immutable(),
		field.String("name"),
		field.String("timezone").
			Default("UTC").
			Comment("IANA zone name, e.g. America/Bogota"),
		field.String("instance_name").
			Optional().
			Comment("Messaging transport instance bound to this clinic"),
		field.String("default_language").
			Default("en"),
		field.JSON("profile", map[string]interface{}{}).
			Comment("Doctors, rooms, services, aliases, hours, scheduling settings"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Clinic.
func (Clinic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("instance_name"),
	}
}
