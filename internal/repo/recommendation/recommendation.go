// Code generated by ent, DO NOT EDIT.

package recommendation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the recommendation type in the database.
	Label = "recommendation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldDoctorID holds the string denoting the doctor_id field in the database.
	FieldDoctorID = "doctor_id"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldReasonType holds the string denoting the reason_type field in the database.
	FieldReasonType = "reason_type"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldUrgency holds the string denoting the urgency field in the database.
	FieldUrgency = "urgency"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldDoctorName holds the string denoting the doctor_name field in the database.
	FieldDoctorName = "doctor_name"
	// FieldPatientName holds the string denoting the patient_name field in the database.
	FieldPatientName = "patient_name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldConsultationID holds the string denoting the consultation_id field in the database.
	FieldConsultationID = "consultation_id"
	// FieldDismissedAt holds the string denoting the dismissed_at field in the database.
	FieldDismissedAt = "dismissed_at"
	// Table holds the table name of the recommendation in the database.
	Table = "recommendations"
)

// Columns holds all SQL columns for recommendation fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPatientID,
	FieldDoctorID,
	FieldReportID,
	FieldReasonType,
	FieldRiskLevel,
	FieldUrgency,
	FieldSummary,
	FieldDoctorName,
	FieldPatientName,
	FieldStatus,
	FieldConsultationID,
	FieldDismissedAt,
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
	// DefaultSummary holds the default value on creation for the "summary" field.
	DefaultSummary string
	// DefaultDoctorName holds the default value on creation for the "doctor_name" field.
	DefaultDoctorName string
	// DefaultPatientName holds the default value on creation for the "patient_name" field.
	DefaultPatientName string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// ReasonType defines the type for the "reason_type" enum field.
type ReasonType string

// ReasonType values.
const (
	ReasonTypePostReport    ReasonType = "post_report"
	ReasonTypeFollowUp      ReasonType = "follow_up"
	ReasonTypePrescription  ReasonType = "prescription"
	ReasonTypeAiEscalation  ReasonType = "ai_escalation"
	ReasonTypeSecondOpinion ReasonType = "second_opinion"
)

func (rt ReasonType) String() string {
	return string(rt)
}

// ReasonTypeValidator is a validator for the "reason_type" field enum values. It is called by the builders before save.
func ReasonTypeValidator(rt ReasonType) error {
	switch rt {
	case ReasonTypePostReport, ReasonTypeFollowUp, ReasonTypePrescription, ReasonTypeAiEscalation, ReasonTypeSecondOpinion:
		return nil
	default:
		return fmt.Errorf("recommendation: invalid enum value for reason_type field: %q", rt)
	}
}

// RiskLevel defines the type for the "risk_level" enum field.
type RiskLevel string

// RiskLevel values.
const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

func (rl RiskLevel) String() string {
	return string(rl)
}

// RiskLevelValidator is a validator for the "risk_level" field enum values. It is called by the builders before save.
func RiskLevelValidator(rl RiskLevel) error {
	switch rl {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return nil
	default:
		return fmt.Errorf("recommendation: invalid enum value for risk_level field: %q", rl)
	}
}

// Urgency defines the type for the "urgency" enum field.
type Urgency string

// UrgencyNormal is the default value of the Urgency enum.
const DefaultUrgency = UrgencyNormal

// Urgency values.
const (
	UrgencyUrgent   Urgency = "urgent"
	UrgencyNormal   Urgency = "normal"
	UrgencyFollowUp Urgency = "follow_up"
)

func (u Urgency) String() string {
	return string(u)
}

// UrgencyValidator is a validator for the "urgency" field enum values. It is called by the builders before save.
func UrgencyValidator(u Urgency) error {
	switch u {
	case UrgencyUrgent, UrgencyNormal, UrgencyFollowUp:
		return nil
	default:
		return fmt.Errorf("recommendation: invalid enum value for urgency field: %q", u)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusDismissed Status = "dismissed"
	StatusBooked    Status = "booked"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusDismissed, StatusBooked:
		return nil
	default:
		return fmt.Errorf("recommendation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Recommendation queries.
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

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByDoctorID orders the results by the doctor_id field.
func ByDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorID, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// ByReasonType orders the results by the reason_type field.
func ByReasonType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasonType, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByUrgency orders the results by the urgency field.
func ByUrgency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUrgency, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByDoctorName orders the results by the doctor_name field.
func ByDoctorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoctorName, opts...).ToFunc()
}

// ByPatientName orders the results by the patient_name field.
func ByPatientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByConsultationID orders the results by the consultation_id field.
func ByConsultationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsultationID, opts...).ToFunc()
}

// ByDismissedAt orders the results by the dismissed_at field.
func ByDismissedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDismissedAt, opts...).ToFunc()
}
