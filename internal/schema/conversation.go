package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Conversation is a messaging thread between two users. Threads are
// auto-created when a doctor is assigned to a patient.
type Conversation struct {
	ent.Schema
}

func (Conversation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("participant_a", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("participant_b", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("participant_a_name").
			Default(""),

		field.String("participant_b_name").
			Default(""),

		field.String("participant_a_role").
			Default(""),

		field.String("participant_b_role").
			Default(""),

		field.Text("last_message").
			Default(""),

		field.Time("last_message_at").
			Optional().
			Nillable(),

		field.Bool("auto_generated").
			Default(false).
			Comment("Seeded by doctor assignment"),
	}
}

func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("participant_a"),
		index.Fields("participant_b"),
	}
}
