package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Prescription is a doctor-issued medication record for a patient.
type Prescription struct {
	ent.Schema
}

func (Prescription) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Prescription) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("doctor_name").
			Default(""),

		field.String("title").
			NotEmpty(),

		field.Text("medicine_summary").
			Default(""),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Time("prescribed_at").
			Optional().
			Nillable(),
	}
}

func (Prescription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "created_at"),
		index.Fields("doctor_id"),
	}
}
