// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medimind/backend/internal/repo/recommendation"
)

// Recommendation is the model entity for the Recommendation schema.
type Recommendation struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// FK → users.id
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// Source report when reason is report-driven
	ReportID *uuid.UUID `json:"report_id,omitempty"`
	// ReasonType holds the value of the "reason_type" field.
	ReasonType recommendation.ReasonType `json:"reason_type,omitempty"`
	// RiskLevel holds the value of the "risk_level" field.
	RiskLevel *recommendation.RiskLevel `json:"risk_level,omitempty"`
	// Urgency holds the value of the "urgency" field.
	Urgency recommendation.Urgency `json:"urgency,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// DoctorName holds the value of the "doctor_name" field.
	DoctorName string `json:"doctor_name,omitempty"`
	// PatientName holds the value of the "patient_name" field.
	PatientName string `json:"patient_name,omitempty"`
	// Status holds the value of the "status" field.
	Status recommendation.Status `json:"status,omitempty"`
	// Set when the recommendation is booked
	ConsultationID *uuid.UUID `json:"consultation_id,omitempty"`
	// DismissedAt holds the value of the "dismissed_at" field.
	DismissedAt  *time.Time `json:"dismissed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Recommendation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recommendation.FieldReportID, recommendation.FieldConsultationID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case recommendation.FieldReasonType, recommendation.FieldRiskLevel, recommendation.FieldUrgency, recommendation.FieldSummary, recommendation.FieldDoctorName, recommendation.FieldPatientName, recommendation.FieldStatus:
			values[i] = new(sql.NullString)
		case recommendation.FieldCreatedAt, recommendation.FieldUpdatedAt, recommendation.FieldDismissedAt:
			values[i] = new(sql.NullTime)
		case recommendation.FieldID, recommendation.FieldPatientID, recommendation.FieldDoctorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Recommendation fields.
func (_m *Recommendation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recommendation.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case recommendation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case recommendation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case recommendation.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case recommendation.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case recommendation.FieldReportID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				_m.ReportID = new(uuid.UUID)
				*_m.ReportID = *value.S.(*uuid.UUID)
			}
		case recommendation.FieldReasonType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason_type", values[i])
			} else if value.Valid {
				_m.ReasonType = recommendation.ReasonType(value.String)
			}
		case recommendation.FieldRiskLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field risk_level", values[i])
			} else if value.Valid {
				_m.RiskLevel = new(recommendation.RiskLevel)
				*_m.RiskLevel = recommendation.RiskLevel(value.String)
			}
		case recommendation.FieldUrgency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field urgency", values[i])
			} else if value.Valid {
				_m.Urgency = recommendation.Urgency(value.String)
			}
		case recommendation.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case recommendation.FieldDoctorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_name", values[i])
			} else if value.Valid {
				_m.DoctorName = value.String
			}
		case recommendation.FieldPatientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field patient_name", values[i])
			} else if value.Valid {
				_m.PatientName = value.String
			}
		case recommendation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = recommendation.Status(value.String)
			}
		case recommendation.FieldConsultationID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field consultation_id", values[i])
			} else if value.Valid {
				_m.ConsultationID = new(uuid.UUID)
				*_m.ConsultationID = *value.S.(*uuid.UUID)
			}
		case recommendation.FieldDismissedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field dismissed_at", values[i])
			} else if value.Valid {
				_m.DismissedAt = new(time.Time)
				*_m.DismissedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Recommendation.
// This includes values selected through modifiers, order, etc.
func (_m *Recommendation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Recommendation.
// Note that you need to call Recommendation.Unwrap() before calling this method if this Recommendation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Recommendation) Update() *RecommendationUpdateOne {
	return NewRecommendationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Recommendation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Recommendation) Unwrap() *Recommendation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Recommendation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Recommendation) String() string {
	var builder strings.Builder
	builder.WriteString("Recommendation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	if v := _m.ReportID; v != nil {
		builder.WriteString("report_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("reason_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReasonType))
	builder.WriteString(", ")
	if v := _m.RiskLevel; v != nil {
		builder.WriteString("risk_level=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("urgency=")
	builder.WriteString(fmt.Sprintf("%v", _m.Urgency))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("doctor_name=")
	builder.WriteString(_m.DoctorName)
	builder.WriteString(", ")
	builder.WriteString("patient_name=")
	builder.WriteString(_m.PatientName)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ConsultationID; v != nil {
		builder.WriteString("consultation_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DismissedAt; v != nil {
		builder.WriteString("dismissed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Recommendations is a parsable slice of Recommendation.
type Recommendations []*Recommendation
