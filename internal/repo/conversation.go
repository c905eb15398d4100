// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medimind/backend/internal/repo/conversation"
)

// Conversation is the model entity for the Conversation schema.
type Conversation struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	ParticipantA uuid.UUID `json:"participant_a,omitempty"`
	// FK → users.id
	ParticipantB uuid.UUID `json:"participant_b,omitempty"`
	// ParticipantAName holds the value of the "participant_a_name" field.
	ParticipantAName string `json:"participant_a_name,omitempty"`
	// ParticipantBName holds the value of the "participant_b_name" field.
	ParticipantBName string `json:"participant_b_name,omitempty"`
	// ParticipantARole holds the value of the "participant_a_role" field.
	ParticipantARole string `json:"participant_a_role,omitempty"`
	// ParticipantBRole holds the value of the "participant_b_role" field.
	ParticipantBRole string `json:"participant_b_role,omitempty"`
	// LastMessage holds the value of the "last_message" field.
	LastMessage string `json:"last_message,omitempty"`
	// LastMessageAt holds the value of the "last_message_at" field.
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	// Seeded by doctor assignment
	AutoGenerated bool `json:"auto_generated,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Conversation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conversation.FieldAutoGenerated:
			values[i] = new(sql.NullBool)
		case conversation.FieldParticipantAName, conversation.FieldParticipantBName, conversation.FieldParticipantARole, conversation.FieldParticipantBRole, conversation.FieldLastMessage:
			values[i] = new(sql.NullString)
		case conversation.FieldCreatedAt, conversation.FieldUpdatedAt, conversation.FieldLastMessageAt:
			values[i] = new(sql.NullTime)
		case conversation.FieldID, conversation.FieldParticipantA, conversation.FieldParticipantB:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Conversation fields.
func (_m *Conversation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conversation.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case conversation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case conversation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case conversation.FieldParticipantA:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field participant_a", values[i])
			} else if value != nil {
				_m.ParticipantA = *value
			}
		case conversation.FieldParticipantB:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field participant_b", values[i])
			} else if value != nil {
				_m.ParticipantB = *value
			}
		case conversation.FieldParticipantAName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_a_name", values[i])
			} else if value.Valid {
				_m.ParticipantAName = value.String
			}
		case conversation.FieldParticipantBName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_b_name", values[i])
			} else if value.Valid {
				_m.ParticipantBName = value.String
			}
		case conversation.FieldParticipantARole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_a_role", values[i])
			} else if value.Valid {
				_m.ParticipantARole = value.String
			}
		case conversation.FieldParticipantBRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_b_role", values[i])
			} else if value.Valid {
				_m.ParticipantBRole = value.String
			}
		case conversation.FieldLastMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_message", values[i])
			} else if value.Valid {
				_m.LastMessage = value.String
			}
		case conversation.FieldLastMessageAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_message_at", values[i])
			} else if value.Valid {
				_m.LastMessageAt = new(time.Time)
				*_m.LastMessageAt = value.Time
			}
		case conversation.FieldAutoGenerated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_generated", values[i])
			} else if value.Valid {
				_m.AutoGenerated = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Conversation.
// This includes values selected through modifiers, order, etc.
func (_m *Conversation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Conversation.
// Note that you need to call Conversation.Unwrap() before calling this method if this Conversation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Conversation) Update() *ConversationUpdateOne {
	return NewConversationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Conversation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Conversation) Unwrap() *Conversation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Conversation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Conversation) String() string {
	var builder strings.Builder
	builder.WriteString("Conversation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("participant_a=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParticipantA))
	builder.WriteString(", ")
	builder.WriteString("participant_b=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParticipantB))
	builder.WriteString(", ")
	builder.WriteString("participant_a_name=")
	builder.WriteString(_m.ParticipantAName)
	builder.WriteString(", ")
	builder.WriteString("participant_b_name=")
	builder.WriteString(_m.ParticipantBName)
	builder.WriteString(", ")
	builder.WriteString("participant_a_role=")
	builder.WriteString(_m.ParticipantARole)
	builder.WriteString(", ")
	builder.WriteString("participant_b_role=")
	builder.WriteString(_m.ParticipantBRole)
	builder.WriteString(", ")
	builder.WriteString("last_message=")
	builder.WriteString(_m.LastMessage)
	builder.WriteString(", ")
	if v := _m.LastMessageAt; v != nil {
		builder.WriteString("last_message_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("auto_generated=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoGenerated))
	builder.WriteByte(')')
	return builder.String()
}

// Conversations is a parsable slice of Conversation.
type Conversations []*Conversation
