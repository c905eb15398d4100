// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the conversation type in the database.
	Label = "conversation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldParticipantA holds the string denoting the participant_a field in the database.
	FieldParticipantA = "participant_a"
	// FieldParticipantB holds the string denoting the participant_b field in the database.
	FieldParticipantB = "participant_b"
	// FieldParticipantAName holds the string denoting the participant_a_name field in the database.
	FieldParticipantAName = "participant_a_name"
	// FieldParticipantBName holds the string denoting the participant_b_name field in the database.
	FieldParticipantBName = "participant_b_name"
	// FieldParticipantARole holds the string denoting the participant_a_role field in the database.
	FieldParticipantARole = "participant_a_role"
	// FieldParticipantBRole holds the string denoting the participant_b_role field in the database.
	FieldParticipantBRole = "participant_b_role"
	// FieldLastMessage holds the string denoting the last_message field in the database.
	FieldLastMessage = "last_message"
	// FieldLastMessageAt holds the string denoting the last_message_at field in the database.
	FieldLastMessageAt = "last_message_at"
	// FieldAutoGenerated holds the string denoting the auto_generated field in the database.
	FieldAutoGenerated = "auto_generated"
	// Table holds the table name of the conversation in the database.
	Table = "conversations"
)

// Columns holds all SQL columns for conversation fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldParticipantA,
	FieldParticipantB,
	FieldParticipantAName,
	FieldParticipantBName,
	FieldParticipantARole,
	FieldParticipantBRole,
	FieldLastMessage,
	FieldLastMessageAt,
	FieldAutoGenerated,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultParticipantAName holds the default value on creation for the "participant_a_name" field.
	DefaultParticipantAName string
	// DefaultParticipantBName holds the default value on creation for the "participant_b_name" field.
	DefaultParticipantBName string
	// DefaultParticipantARole holds the default value on creation for the "participant_a_role" field.
	DefaultParticipantARole string
	// DefaultParticipantBRole holds the default value on creation for the "participant_b_role" field.
	DefaultParticipantBRole string
	// DefaultLastMessage holds the default value on creation for the "last_message" field.
	DefaultLastMessage string
	// DefaultAutoGenerated holds the default value on creation for the "auto_generated" field.
	DefaultAutoGenerated bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Conversation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByParticipantA orders the results by the participant_a field.
func ByParticipantA(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantA, opts...).ToFunc()
}

// ByParticipantB orders the results by the participant_b field.
func ByParticipantB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantB, opts...).ToFunc()
}

// ByParticipantAName orders the results by the participant_a_name field.
func ByParticipantAName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantAName, opts...).ToFunc()
}

// ByParticipantBName orders the results by the participant_b_name field.
func ByParticipantBName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantBName, opts...).ToFunc()
}

// ByParticipantARole orders the results by the participant_a_role field.
func ByParticipantARole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantARole, opts...).ToFunc()
}

// ByParticipantBRole orders the results by the participant_b_role field.
func ByParticipantBRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantBRole, opts...).ToFunc()
}

// ByLastMessage orders the results by the last_message field.
func ByLastMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastMessage, opts...).ToFunc()
}

// ByLastMessageAt orders the results by the last_message_at field.
func ByLastMessageAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastMessageAt, opts...).ToFunc()
}

// ByAutoGenerated orders the results by the auto_generated field.
func ByAutoGenerated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoGenerated, opts...).ToFunc()
}
