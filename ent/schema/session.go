package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity.
// A session anchors one conversation episode between a patient phone
// number and a clinic. At most one session per (phone, clinic) is
// active at any time; boundary detection archives the old session and
// opens a new one.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("phone").
			Immutable().
			Comment("Normalized patient phone (no transport suffix)"),
		field.String("clinic_id").
			Immutable(),
		field.Enum("status").
			Values("active", "dormant", "closed").
			Default("active"),
		field.String("language").
			Optional().
			Comment("Detected patient language (BCP-47 primary subtag)"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_activity_at").
			Default(time.Now),
		field.String("prev_session_id").
			Optional().
			Nillable().
			Comment("Session this one replaced at a boundary"),
		field.Enum("reset_kind").
			Values("none", "soft", "hard").
			Default("none").
			Comment("How this session was opened"),
		field.Text("summary").
			Optional().
			Nillable().
			Comment("Compressed record of the archived conversation"),
		field.Enum("summary_status").
			Values("pending", "ready", "failed").
			Default("pending"),
		field.JSON("episode", map[string]interface{}{}).
			Optional().
			Comment("Per-episode conversation state (episode_type, desired_service, time_window)"),
		field.String("pending_action").
			Optional().
			Comment("Fast-path continuation hint, e.g. offer_booking"),
		field.String("last_service_mentioned").
			Optional(),
		field.Time("closed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("turns", ConversationTurn.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("phone", "clinic_id", "status"),
		index.Fields("clinic_id", "status"),
		index.Fields("status", "last_activity_at"),
		// Deferred summarization scan
		index.Fields("status", "summary_status"),
	}
}
