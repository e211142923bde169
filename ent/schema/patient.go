package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Patient holds the schema definition for the Patient entity.
// Cross-session identity: the hard_* fields survive session resets and
// are the only episode data restored on a HARD boundary.
type Patient struct {
	ent.Schema
}

// Fields of the Patient.
func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("patient_id").
			Unique().
			Immutable(),
		field.String("clinic_id").
			Immutable(),
		field.String("phone"),
		field.String("first_name").
			Optional(),
		field.String("last_name").
			Optional(),
		field.String("preferred_language").
			Optional(),
		field.JSON("hard_doctor_bans", []string{}).
			Optional().
			Comment("Doctors this patient must never be offered"),
		field.JSON("hard_service_bans", []string{}).
			Optional(),
		field.JSON("allergies", []string{}).
			Optional(),
		field.JSON("preferences", map[string]interface{}{}).
			Optional().
			Comment("Soft preferences (preferred doctor, time of day)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Patient.
func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "phone").
			Unique(),
	}
}
