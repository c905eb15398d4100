package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is the calendar-facing view of a booked session.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("patient_name").
			Default(""),

		field.String("doctor_name").
			Default(""),

		field.String("date").
			NotEmpty().
			Comment("YYYY-MM-DD"),

		field.String("time").
			NotEmpty().
			Comment("HH:MM"),

		field.Enum("type").
			Values("video", "in_person").
			Default("video"),

		field.Text("reason").
			Default(""),

		field.Enum("status").
			Values("upcoming", "completed", "cancelled").
			Default("upcoming"),

		field.UUID("consultation_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.UUID("report_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.String("room_name").
			Optional().
			Nillable(),

		field.String("room_url").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "status"),
		index.Fields("doctor_id", "status"),
		index.Fields("doctor_id", "date"),
	}
}
