// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActivityLog is the predicate function for activitylog builders.
type ActivityLog func(*sql.Selector)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// Consultation is the predicate function for consultation builders.
type Consultation func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Prescription is the predicate function for prescription builders.
type Prescription func(*sql.Selector)

// Recommendation is the predicate function for recommendation builders.
type Recommendation func(*sql.Selector)

// Relationship is the predicate function for relationship builders.
type Relationship func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
