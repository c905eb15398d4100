package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ActivityLog is an append-only security audit trail entry.
type ActivityLog struct {
	ent.Schema
}

func (ActivityLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (ActivityLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id (account the event belongs to)"),

		field.String("type").
			NotEmpty().
			Comment("Event category, e.g. login, session_revoked"),

		field.String("action").
			NotEmpty(),

		field.String("actor").
			Default(""),

		field.String("ip_address").
			Optional().
			Nillable(),

		field.String("user_agent").
			Optional().
			Nillable(),
	}
}

func (ActivityLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
