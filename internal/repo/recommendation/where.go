// Code generated by ent, DO NOT EDIT.

package recommendation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medimind/backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldPatientID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldDoctorID, v))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldReportID, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldSummary, v))
}

// DoctorName applies equality check predicate on the "doctor_name" field. It's identical to DoctorNameEQ.
func DoctorName(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldDoctorName, v))
}

// PatientName applies equality check predicate on the "patient_name" field. It's identical to PatientNameEQ.
func PatientName(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldPatientName, v))
}

// ConsultationID applies equality check predicate on the "consultation_id" field. It's identical to ConsultationIDEQ.
func ConsultationID(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldConsultationID, v))
}

// DismissedAt applies equality check predicate on the "dismissed_at" field. It's identical to DismissedAtEQ.
func DismissedAt(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldDismissedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldPatientID, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldDoctorID, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldReportID, v))
}

// ReportIDIsNil applies the IsNil predicate on the "report_id" field.
func ReportIDIsNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIsNull(FieldReportID))
}

// ReportIDNotNil applies the NotNil predicate on the "report_id" field.
func ReportIDNotNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotNull(FieldReportID))
}

// ReasonTypeEQ applies the EQ predicate on the "reason_type" field.
func ReasonTypeEQ(v ReasonType) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldReasonType, v))
}

// ReasonTypeNEQ applies the NEQ predicate on the "reason_type" field.
func ReasonTypeNEQ(v ReasonType) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldReasonType, v))
}

// ReasonTypeIn applies the In predicate on the "reason_type" field.
func ReasonTypeIn(vs ...ReasonType) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldReasonType, vs...))
}

// ReasonTypeNotIn applies the NotIn predicate on the "reason_type" field.
func ReasonTypeNotIn(vs ...ReasonType) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldReasonType, vs...))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v RiskLevel) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v RiskLevel) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...RiskLevel) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...RiskLevel) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelIsNil applies the IsNil predicate on the "risk_level" field.
func RiskLevelIsNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIsNull(FieldRiskLevel))
}

// RiskLevelNotNil applies the NotNil predicate on the "risk_level" field.
func RiskLevelNotNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotNull(FieldRiskLevel))
}

// UrgencyEQ applies the EQ predicate on the "urgency" field.
func UrgencyEQ(v Urgency) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldUrgency, v))
}

// UrgencyNEQ applies the NEQ predicate on the "urgency" field.
func UrgencyNEQ(v Urgency) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldUrgency, v))
}

// UrgencyIn applies the In predicate on the "urgency" field.
func UrgencyIn(vs ...Urgency) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldUrgency, vs...))
}

// UrgencyNotIn applies the NotIn predicate on the "urgency" field.
func UrgencyNotIn(vs ...Urgency) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldUrgency, vs...))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldSummary, v))
}

// DoctorNameEQ applies the EQ predicate on the "doctor_name" field.
func DoctorNameEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldDoctorName, v))
}

// DoctorNameNEQ applies the NEQ predicate on the "doctor_name" field.
func DoctorNameNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldDoctorName, v))
}

// DoctorNameIn applies the In predicate on the "doctor_name" field.
func DoctorNameIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldDoctorName, vs...))
}

// DoctorNameNotIn applies the NotIn predicate on the "doctor_name" field.
func DoctorNameNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldDoctorName, vs...))
}

// DoctorNameGT applies the GT predicate on the "doctor_name" field.
func DoctorNameGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldDoctorName, v))
}

// DoctorNameGTE applies the GTE predicate on the "doctor_name" field.
func DoctorNameGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldDoctorName, v))
}

// DoctorNameLT applies the LT predicate on the "doctor_name" field.
func DoctorNameLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldDoctorName, v))
}

// DoctorNameLTE applies the LTE predicate on the "doctor_name" field.
func DoctorNameLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldDoctorName, v))
}

// DoctorNameContains applies the Contains predicate on the "doctor_name" field.
func DoctorNameContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldDoctorName, v))
}

// DoctorNameHasPrefix applies the HasPrefix predicate on the "doctor_name" field.
func DoctorNameHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldDoctorName, v))
}

// DoctorNameHasSuffix applies the HasSuffix predicate on the "doctor_name" field.
func DoctorNameHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldDoctorName, v))
}

// DoctorNameEqualFold applies the EqualFold predicate on the "doctor_name" field.
func DoctorNameEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldDoctorName, v))
}

// DoctorNameContainsFold applies the ContainsFold predicate on the "doctor_name" field.
func DoctorNameContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldDoctorName, v))
}

// PatientNameEQ applies the EQ predicate on the "patient_name" field.
func PatientNameEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldPatientName, v))
}

// PatientNameNEQ applies the NEQ predicate on the "patient_name" field.
func PatientNameNEQ(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldPatientName, v))
}

// PatientNameIn applies the In predicate on the "patient_name" field.
func PatientNameIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldPatientName, vs...))
}

// PatientNameNotIn applies the NotIn predicate on the "patient_name" field.
func PatientNameNotIn(vs ...string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldPatientName, vs...))
}

// PatientNameGT applies the GT predicate on the "patient_name" field.
func PatientNameGT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldPatientName, v))
}

// PatientNameGTE applies the GTE predicate on the "patient_name" field.
func PatientNameGTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldPatientName, v))
}

// PatientNameLT applies the LT predicate on the "patient_name" field.
func PatientNameLT(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldPatientName, v))
}

// PatientNameLTE applies the LTE predicate on the "patient_name" field.
func PatientNameLTE(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldPatientName, v))
}

// PatientNameContains applies the Contains predicate on the "patient_name" field.
func PatientNameContains(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContains(FieldPatientName, v))
}

// PatientNameHasPrefix applies the HasPrefix predicate on the "patient_name" field.
func PatientNameHasPrefix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasPrefix(FieldPatientName, v))
}

// PatientNameHasSuffix applies the HasSuffix predicate on the "patient_name" field.
func PatientNameHasSuffix(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldHasSuffix(FieldPatientName, v))
}

// PatientNameEqualFold applies the EqualFold predicate on the "patient_name" field.
func PatientNameEqualFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEqualFold(FieldPatientName, v))
}

// PatientNameContainsFold applies the ContainsFold predicate on the "patient_name" field.
func PatientNameContainsFold(v string) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldContainsFold(FieldPatientName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldStatus, vs...))
}

// ConsultationIDEQ applies the EQ predicate on the "consultation_id" field.
func ConsultationIDEQ(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldConsultationID, v))
}

// ConsultationIDNEQ applies the NEQ predicate on the "consultation_id" field.
func ConsultationIDNEQ(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldConsultationID, v))
}

// ConsultationIDIn applies the In predicate on the "consultation_id" field.
func ConsultationIDIn(vs ...uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldConsultationID, vs...))
}

// ConsultationIDNotIn applies the NotIn predicate on the "consultation_id" field.
func ConsultationIDNotIn(vs ...uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldConsultationID, vs...))
}

// ConsultationIDGT applies the GT predicate on the "consultation_id" field.
func ConsultationIDGT(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldConsultationID, v))
}

// ConsultationIDGTE applies the GTE predicate on the "consultation_id" field.
func ConsultationIDGTE(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldConsultationID, v))
}

// ConsultationIDLT applies the LT predicate on the "consultation_id" field.
func ConsultationIDLT(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldConsultationID, v))
}

// ConsultationIDLTE applies the LTE predicate on the "consultation_id" field.
func ConsultationIDLTE(v uuid.UUID) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldConsultationID, v))
}

// ConsultationIDIsNil applies the IsNil predicate on the "consultation_id" field.
func ConsultationIDIsNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIsNull(FieldConsultationID))
}

// ConsultationIDNotNil applies the NotNil predicate on the "consultation_id" field.
func ConsultationIDNotNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotNull(FieldConsultationID))
}

// DismissedAtEQ applies the EQ predicate on the "dismissed_at" field.
func DismissedAtEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldEQ(FieldDismissedAt, v))
}

// DismissedAtNEQ applies the NEQ predicate on the "dismissed_at" field.
func DismissedAtNEQ(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNEQ(FieldDismissedAt, v))
}

// DismissedAtIn applies the In predicate on the "dismissed_at" field.
func DismissedAtIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIn(FieldDismissedAt, vs...))
}

// DismissedAtNotIn applies the NotIn predicate on the "dismissed_at" field.
func DismissedAtNotIn(vs ...time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotIn(FieldDismissedAt, vs...))
}

// DismissedAtGT applies the GT predicate on the "dismissed_at" field.
func DismissedAtGT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGT(FieldDismissedAt, v))
}

// DismissedAtGTE applies the GTE predicate on the "dismissed_at" field.
func DismissedAtGTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldGTE(FieldDismissedAt, v))
}

// DismissedAtLT applies the LT predicate on the "dismissed_at" field.
func DismissedAtLT(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLT(FieldDismissedAt, v))
}

// DismissedAtLTE applies the LTE predicate on the "dismissed_at" field.
func DismissedAtLTE(v time.Time) predicate.Recommendation {
	return predicate.Recommendation(sql.FieldLTE(FieldDismissedAt, v))
}

// DismissedAtIsNil applies the IsNil predicate on the "dismissed_at" field.
func DismissedAtIsNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldIsNull(FieldDismissedAt))
}

// DismissedAtNotNil applies the NotNil predicate on the "dismissed_at" field.
func DismissedAtNotNil() predicate.Recommendation {
	return predicate.Recommendation(sql.FieldNotNull(FieldDismissedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Recommendation) predicate.Recommendation {
	return predicate.Recommendation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Recommendation) predicate.Recommendation {
	return predicate.Recommendation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Recommendation) predicate.Recommendation {
	return predicate.Recommendation(sql.NotPredicates(p))
}
