package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Consultation is the clinical session record behind an appointment.
// It carries the video room and links back to the recommendation and
// report that triggered it.
type Consultation struct {
	ent.Schema
}

func (Consultation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Consultation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("appointment_id", uuid.UUID{}).
			Comment("FK → appointments.id"),

		field.UUID("patient_id", uuid.UUID{}),

		field.UUID("doctor_id", uuid.UUID{}),

		field.UUID("report_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("recommendation_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.String("patient_name").
			Default(""),

		field.String("doctor_name").
			Default(""),

		field.String("date").
			NotEmpty(),

		field.String("time").
			NotEmpty(),

		field.Text("reason").
			Default(""),

		field.String("room_name").
			NotEmpty(),

		field.String("room_url").
			NotEmpty(),

		field.Enum("status").
			Values("scheduled", "in_progress", "completed", "cancelled").
			Default("scheduled"),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (Consultation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("appointment_id"),
		index.Fields("patient_id", "status"),
		index.Fields("doctor_id", "status"),
	}
}
