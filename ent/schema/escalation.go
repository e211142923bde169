package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Escalation holds the schema definition for the Escalation entity.
// Created when the scheduling engine cannot satisfy a request (zero
// slots, or an ESCALATE policy rule fired) and resolved by clinic
// staff picking a relaxation suggestion or a manual slot.
type Escalation struct {
	ent.Schema
}

// Fields of the Escalation.
func (Escalation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("escalation_id").
			Unique().
			Immutable(),
		field.String("clinic_id").
			Immutable(),
		field.String("patient_id").
			Immutable(),
		field.String("service_id").
			Optional().
			Immutable(),
		field.Enum("status").
			Values("open", "assigned", "resolved", "declined").
			Default("open"),
		field.String("reason").
			Comment("no_slots_available or escalate_rule:<rule_id>"),
		field.JSON("request", map[string]interface{}{}).
			Comment("The original scheduling request payload"),
		field.JSON("suggestions", []map[string]interface{}{}).
			Optional().
			Comment("Auto-generated relaxation suggestions, ordered"),
		field.Time("sla_deadline"),
		field.String("assigned_to").
			Optional().
			Nillable(),
		field.JSON("resolution", map[string]interface{}{}).
			Optional().
			Comment("Chosen suggestion index or manual slot, decline reason"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Escalation.
func (Escalation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "status"),
		// Duplicate suppression window lookup
		index.Fields("patient_id", "service_id", "created_at"),
		index.Fields("status", "sla_deadline"),
	}
}
