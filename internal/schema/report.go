package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Report is an uploaded medical document and the analysis produced
// from it.
type Report struct {
	ent.Schema
}

func (Report) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id (uploading patient)"),

		field.String("file_name").
			NotEmpty(),

		field.String("file_path").
			NotEmpty().
			Comment("Object storage key"),

		field.String("content_type").
			Default("application/octet-stream"),

		field.Enum("status").
			Values("pending", "processing", "completed", "error").
			Default("pending"),

		field.Text("content").
			Optional().
			Nillable().
			Comment("Extracted document text"),

		field.Enum("risk_level").
			Values("low", "medium", "high").
			Optional().
			Nillable(),

		field.Int("health_score").
			Optional().
			Nillable(),

		field.Text("summary").
			Optional().
			Nillable(),

		field.Text("error_detail").
			Optional().
			Nillable(),

		field.Time("processed_at").
			Optional().
			Nillable(),
	}
}

func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("user_id", "status"),
	}
}
