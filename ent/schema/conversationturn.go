package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConversationTurn holds the schema definition for the ConversationTurn
// entity. One row per processed inbound message: the user text, the
// assistant reply, and the per-turn tool audit (what was called, what
// was blocked). This is the history the hydrator reads back under a
// token budget.
type ConversationTurn struct {
	ent.Schema
}

// Fields of the ConversationTurn.
func (ConversationTurn) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("turn_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("clinic_id").
			Immutable(),
		field.Int("sequence_number").
			Comment("Session-scoped order"),
		field.Text("user_message"),
		field.Text("assistant_message").
			Optional(),
		field.String("lane").
			Optional().
			Comment("Router lane: faq, price, service_info, scheduling, complex"),
		field.Bool("fast_path").
			Default(false),
		field.Int("latency_ms").
			Optional(),
		field.JSON("tools_called", []map[string]interface{}{}).
			Optional().
			Comment("Audit: name, normalized arguments, ok/failed"),
		field.Bool("hallucination_blocked").
			Default(false).
			Comment("State gate refused at least one call this turn"),
		field.Bool("response_flagged").
			Default(false).
			Comment("Final text mentioned times/prices without a backing tool call"),
		field.JSON("constraints_delta", map[string]interface{}{}).
			Optional().
			Comment("Constraint changes extracted this turn (for the state echo)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ConversationTurn.
func (ConversationTurn) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("turns").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ConversationTurn.
func (ConversationTurn) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "sequence_number"),
		index.Fields("clinic_id", "created_at"),
	}
}
