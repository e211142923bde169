package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PolicySnapshot holds the schema definition for the PolicySnapshot
// entity. Each row is one immutable version of a clinic's rule bundle;
// at most one row per clinic is active. The sha256 column is computed
// over the canonical JSON encoding of the bundle and is what confirmed
// appointments are stamped with.
type PolicySnapshot struct {
	ent.Schema
}

// Fields of the PolicySnapshot.
func (PolicySnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("snapshot_id").
			Unique().
			Immutable(),
		field.String("clinic_id").
			Immutable(),
		field.String("bundle_id").
			Immutable(),
		field.Int("version").
			Immutable(),
		field.Enum("status").
			Values("draft", "staged", "active").
			Default("draft"),
		field.String("sha256").
			Immutable(),
		field.JSON("bundle", map[string]interface{}{}).
			Immutable().
			Comment("The raw rule bundle as authored"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.String("actor").
			Optional().
			Comment("Who uploaded this version"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the PolicySnapshot.
func (PolicySnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "status"),
		index.Fields("clinic_id", "version"),
		index.Fields("sha256"),
	}
}
