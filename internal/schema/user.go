package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// User is a platform account. Accounts start roleless and choose
// patient or doctor on first login.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty(),

		field.String("full_name").
			Default(""),

		field.Enum("role").
			Values("patient", "doctor").
			Optional().
			Nillable(),

		field.String("phone").
			Optional().
			Nillable().
			Comment("E.164 normalized"),

		field.String("date_of_birth").
			Optional().
			Nillable(),

		field.String("specialty").
			Optional().
			Nillable().
			Comment("Doctors only"),

		field.Bool("profile_complete").
			Default(false),

		field.UUID("assigned_doctor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Patients only: snapshot of the active care relationship"),

		field.String("assigned_doctor_name").
			Optional().
			Nillable(),

		field.Time("assigned_at").
			Optional().
			Nillable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("role"),
		index.Fields("assigned_doctor_id"),
	}
}
