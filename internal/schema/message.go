package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Message is one entry in a conversation thread.
type Message struct {
	ent.Schema
}

func (Message) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("conversation_id", uuid.UUID{}).
			Comment("FK → conversations.id"),

		field.UUID("sender_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Null for system messages"),

		field.String("sender_name").
			Default(""),

		field.Enum("sender_role").
			Values("patient", "doctor", "system").
			Default("system"),

		field.Text("content").
			NotEmpty(),

		field.Bool("read").
			Default(false),
	}
}

func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "created_at"),
	}
}
