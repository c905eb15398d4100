package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Recommendation is a suggested consultation between a patient and
// their assigned doctor.
type Recommendation struct {
	ent.Schema
}

func (Recommendation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Recommendation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("report_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Source report when reason is report-driven"),

		field.Enum("reason_type").
			Values("post_report", "follow_up", "prescription", "ai_escalation", "second_opinion"),

		field.Enum("risk_level").
			Values("low", "medium", "high").
			Optional().
			Nillable(),

		field.Enum("urgency").
			Values("urgent", "normal", "follow_up").
			Default("normal"),

		field.Text("summary").
			Default(""),

		field.String("doctor_name").
			Default(""),

		field.String("patient_name").
			Default(""),

		field.Enum("status").
			Values("active", "dismissed", "booked").
			Default("active"),

		field.UUID("consultation_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Set when the recommendation is booked"),

		field.Time("dismissed_at").
			Optional().
			Nillable(),
	}
}

func (Recommendation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "status"),
		index.Fields("doctor_id", "status"),
		index.Fields("report_id"),
	}
}
