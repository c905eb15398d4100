package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Relationship is the doctor-patient care link created by assignment.
// One active row per (doctor, patient) pair.
type Relationship struct {
	ent.Schema
}

func (Relationship) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Relationship) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("doctor_name").
			Default(""),

		field.String("patient_name").
			Default(""),

		field.Enum("status").
			Values("active", "ended").
			Default("active"),
	}
}

func (Relationship) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "patient_id").
			Unique(),
		index.Fields("doctor_id", "status"),
		index.Fields("patient_id"),
	}
}
