// Code generated by ent, DO NOT EDIT.

package consultation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medimind/backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldUpdatedAt, v))
}

// AppointmentID applies equality check predicate on the "appointment_id" field. It's identical to AppointmentIDEQ.
func AppointmentID(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldAppointmentID, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldPatientID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldDoctorID, v))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldReportID, v))
}

// RecommendationID applies equality check predicate on the "recommendation_id" field. It's identical to RecommendationIDEQ.
func RecommendationID(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldRecommendationID, v))
}

// PatientName applies equality check predicate on the "patient_name" field. It's identical to PatientNameEQ.
func PatientName(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldPatientName, v))
}

// DoctorName applies equality check predicate on the "doctor_name" field. It's identical to DoctorNameEQ.
func DoctorName(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldDoctorName, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldDate, v))
}

// Time applies equality check predicate on the "time" field. It's identical to TimeEQ.
func Time(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldTime, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldReason, v))
}

// RoomName applies equality check predicate on the "room_name" field. It's identical to RoomNameEQ.
func RoomName(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldRoomName, v))
}

// RoomURL applies equality check predicate on the "room_url" field. It's identical to RoomURLEQ.
func RoomURL(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldRoomURL, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Consultation {
	return predicate.Consultation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Consultation {
	return predicate.Consultation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Consultation {
	return predicate.Consultation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Consultation {
	return predicate.Consultation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Consultation {
	return predicate.Consultation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Consultation {
	return predicate.Consultation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Consultation {
	return predicate.Consultation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Consultation {
	return predicate.Consultation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Consultation {
	return predicate.Consultation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Consultation {
	return predicate.Consultation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Consultation {
	return predicate.Consultation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Consultation {
	return predicate.Consultation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Consultation {
	return predicate.Consultation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Consultation {
	return predicate.Consultation(sql.FieldLTE(FieldUpdatedAt, v))
}

// AppointmentIDEQ applies the EQ predicate on the "appointment_id" field.
func AppointmentIDEQ(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldAppointmentID, v))
}

// AppointmentIDNEQ applies the NEQ predicate on the "appointment_id" field.
func AppointmentIDNEQ(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldNEQ(FieldAppointmentID, v))
}

// AppointmentIDIn applies the In predicate on the "appointment_id" field.
func AppointmentIDIn(vs ...uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldIn(FieldAppointmentID, vs...))
}

// AppointmentIDNotIn applies the NotIn predicate on the "appointment_id" field.
func AppointmentIDNotIn(vs ...uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldNotIn(FieldAppointmentID, vs...))
}

// AppointmentIDGT applies the GT predicate on the "appointment_id" field.
func AppointmentIDGT(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldGT(FieldAppointmentID, v))
}

// AppointmentIDGTE applies the GTE predicate on the "appointment_id" field.
func AppointmentIDGTE(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldGTE(FieldAppointmentID, v))
}

// AppointmentIDLT applies the LT predicate on the "appointment_id" field.
func AppointmentIDLT(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldLT(FieldAppointmentID, v))
}

// AppointmentIDLTE applies the LTE predicate on the "appointment_id" field.
func AppointmentIDLTE(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldLTE(FieldAppointmentID, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldNotIn(FieldPatientID, vs...))
}

// PatientIDGT applies the GT predicate on the "patient_id" field.
func PatientIDGT(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldGT(FieldPatientID, v))
}

// PatientIDGTE applies the GTE predicate on the "patient_id" field.
func PatientIDGTE(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldGTE(FieldPatientID, v))
}

// PatientIDLT applies the LT predicate on the "patient_id" field.
func PatientIDLT(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldLT(FieldPatientID, v))
}

// PatientIDLTE applies the LTE predicate on the "patient_id" field.
func PatientIDLTE(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldLTE(FieldPatientID, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldLTE(FieldDoctorID, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldLTE(FieldReportID, v))
}

// ReportIDIsNil applies the IsNil predicate on the "report_id" field.
func ReportIDIsNil() predicate.Consultation {
	return predicate.Consultation(sql.FieldIsNull(FieldReportID))
}

// ReportIDNotNil applies the NotNil predicate on the "report_id" field.
func ReportIDNotNil() predicate.Consultation {
	return predicate.Consultation(sql.FieldNotNull(FieldReportID))
}

// RecommendationIDEQ applies the EQ predicate on the "recommendation_id" field.
func RecommendationIDEQ(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldRecommendationID, v))
}

// RecommendationIDNEQ applies the NEQ predicate on the "recommendation_id" field.
func RecommendationIDNEQ(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldNEQ(FieldRecommendationID, v))
}

// RecommendationIDIn applies the In predicate on the "recommendation_id" field.
func RecommendationIDIn(vs ...uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldIn(FieldRecommendationID, vs...))
}

// RecommendationIDNotIn applies the NotIn predicate on the "recommendation_id" field.
func RecommendationIDNotIn(vs ...uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldNotIn(FieldRecommendationID, vs...))
}

// RecommendationIDGT applies the GT predicate on the "recommendation_id" field.
func RecommendationIDGT(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldGT(FieldRecommendationID, v))
}

// RecommendationIDGTE applies the GTE predicate on the "recommendation_id" field.
func RecommendationIDGTE(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldGTE(FieldRecommendationID, v))
}

// RecommendationIDLT applies the LT predicate on the "recommendation_id" field.
func RecommendationIDLT(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldLT(FieldRecommendationID, v))
}

// RecommendationIDLTE applies the LTE predicate on the "recommendation_id" field.
func RecommendationIDLTE(v uuid.UUID) predicate.Consultation {
	return predicate.Consultation(sql.FieldLTE(FieldRecommendationID, v))
}

// RecommendationIDIsNil applies the IsNil predicate on the "recommendation_id" field.
func RecommendationIDIsNil() predicate.Consultation {
	return predicate.Consultation(sql.FieldIsNull(FieldRecommendationID))
}

// RecommendationIDNotNil applies the NotNil predicate on the "recommendation_id" field.
func RecommendationIDNotNil() predicate.Consultation {
	return predicate.Consultation(sql.FieldNotNull(FieldRecommendationID))
}

// PatientNameEQ applies the EQ predicate on the "patient_name" field.
func PatientNameEQ(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldPatientName, v))
}

// PatientNameNEQ applies the NEQ predicate on the "patient_name" field.
func PatientNameNEQ(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldNEQ(FieldPatientName, v))
}

// PatientNameIn applies the In predicate on the "patient_name" field.
func PatientNameIn(vs ...string) predicate.Consultation {
	return predicate.Consultation(sql.FieldIn(FieldPatientName, vs...))
}

// PatientNameNotIn applies the NotIn predicate on the "patient_name" field.
func PatientNameNotIn(vs ...string) predicate.Consultation {
	return predicate.Consultation(sql.FieldNotIn(FieldPatientName, vs...))
}

// PatientNameGT applies the GT predicate on the "patient_name" field.
func PatientNameGT(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldGT(FieldPatientName, v))
}

// PatientNameGTE applies the GTE predicate on the "patient_name" field.
func PatientNameGTE(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldGTE(FieldPatientName, v))
}

// PatientNameLT applies the LT predicate on the "patient_name" field.
func PatientNameLT(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldLT(FieldPatientName, v))
}

// PatientNameLTE applies the LTE predicate on the "patient_name" field.
func PatientNameLTE(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldLTE(FieldPatientName, v))
}

// PatientNameContains applies the Contains predicate on the "patient_name" field.
func PatientNameContains(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldContains(FieldPatientName, v))
}

// PatientNameHasPrefix applies the HasPrefix predicate on the "patient_name" field.
func PatientNameHasPrefix(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldHasPrefix(FieldPatientName, v))
}

// PatientNameHasSuffix applies the HasSuffix predicate on the "patient_name" field.
func PatientNameHasSuffix(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldHasSuffix(FieldPatientName, v))
}

// PatientNameEqualFold applies the EqualFold predicate on the "patient_name" field.
func PatientNameEqualFold(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEqualFold(FieldPatientName, v))
}

// PatientNameContainsFold applies the ContainsFold predicate on the "patient_name" field.
func PatientNameContainsFold(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldContainsFold(FieldPatientName, v))
}

// DoctorNameEQ applies the EQ predicate on the "doctor_name" field.
func DoctorNameEQ(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldDoctorName, v))
}

// DoctorNameNEQ applies the NEQ predicate on the "doctor_name" field.
func DoctorNameNEQ(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldNEQ(FieldDoctorName, v))
}

// DoctorNameIn applies the In predicate on the "doctor_name" field.
func DoctorNameIn(vs ...string) predicate.Consultation {
	return predicate.Consultation(sql.FieldIn(FieldDoctorName, vs...))
}

// DoctorNameNotIn applies the NotIn predicate on the "doctor_name" field.
func DoctorNameNotIn(vs ...string) predicate.Consultation {
	return predicate.Consultation(sql.FieldNotIn(FieldDoctorName, vs...))
}

// DoctorNameGT applies the GT predicate on the "doctor_name" field.
func DoctorNameGT(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldGT(FieldDoctorName, v))
}

// DoctorNameGTE applies the GTE predicate on the "doctor_name" field.
func DoctorNameGTE(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldGTE(FieldDoctorName, v))
}

// DoctorNameLT applies the LT predicate on the "doctor_name" field.
func DoctorNameLT(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldLT(FieldDoctorName, v))
}

// DoctorNameLTE applies the LTE predicate on the "doctor_name" field.
func DoctorNameLTE(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldLTE(FieldDoctorName, v))
}

// DoctorNameContains applies the Contains predicate on the "doctor_name" field.
func DoctorNameContains(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldContains(FieldDoctorName, v))
}

// DoctorNameHasPrefix applies the HasPrefix predicate on the "doctor_name" field.
func DoctorNameHasPrefix(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldHasPrefix(FieldDoctorName, v))
}

// DoctorNameHasSuffix applies the HasSuffix predicate on the "doctor_name" field.
func DoctorNameHasSuffix(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldHasSuffix(FieldDoctorName, v))
}

// DoctorNameEqualFold applies the EqualFold predicate on the "doctor_name" field.
func DoctorNameEqualFold(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEqualFold(FieldDoctorName, v))
}

// DoctorNameContainsFold applies the ContainsFold predicate on the "doctor_name" field.
func DoctorNameContainsFold(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldContainsFold(FieldDoctorName, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.Consultation {
	return predicate.Consultation(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.Consultation {
	return predicate.Consultation(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldContainsFold(FieldDate, v))
}

// TimeEQ applies the EQ predicate on the "time" field.
func TimeEQ(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldTime, v))
}

// TimeNEQ applies the NEQ predicate on the "time" field.
func TimeNEQ(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldNEQ(FieldTime, v))
}

// TimeIn applies the In predicate on the "time" field.
func TimeIn(vs ...string) predicate.Consultation {
	return predicate.Consultation(sql.FieldIn(FieldTime, vs...))
}

// TimeNotIn applies the NotIn predicate on the "time" field.
func TimeNotIn(vs ...string) predicate.Consultation {
	return predicate.Consultation(sql.FieldNotIn(FieldTime, vs...))
}

// TimeGT applies the GT predicate on the "time" field.
func TimeGT(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldGT(FieldTime, v))
}

// TimeGTE applies the GTE predicate on the "time" field.
func TimeGTE(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldGTE(FieldTime, v))
}

// TimeLT applies the LT predicate on the "time" field.
func TimeLT(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldLT(FieldTime, v))
}

// TimeLTE applies the LTE predicate on the "time" field.
func TimeLTE(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldLTE(FieldTime, v))
}

// TimeContains applies the Contains predicate on the "time" field.
func TimeContains(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldContains(FieldTime, v))
}

// TimeHasPrefix applies the HasPrefix predicate on the "time" field.
func TimeHasPrefix(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldHasPrefix(FieldTime, v))
}

// TimeHasSuffix applies the HasSuffix predicate on the "time" field.
func TimeHasSuffix(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldHasSuffix(FieldTime, v))
}

// TimeEqualFold applies the EqualFold predicate on the "time" field.
func TimeEqualFold(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEqualFold(FieldTime, v))
}

// TimeContainsFold applies the ContainsFold predicate on the "time" field.
func TimeContainsFold(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldContainsFold(FieldTime, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.Consultation {
	return predicate.Consultation(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.Consultation {
	return predicate.Consultation(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldContainsFold(FieldReason, v))
}

// RoomNameEQ applies the EQ predicate on the "room_name" field.
func RoomNameEQ(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldRoomName, v))
}

// RoomNameNEQ applies the NEQ predicate on the "room_name" field.
func RoomNameNEQ(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldNEQ(FieldRoomName, v))
}

// RoomNameIn applies the In predicate on the "room_name" field.
func RoomNameIn(vs ...string) predicate.Consultation {
	return predicate.Consultation(sql.FieldIn(FieldRoomName, vs...))
}

// RoomNameNotIn applies the NotIn predicate on the "room_name" field.
func RoomNameNotIn(vs ...string) predicate.Consultation {
	return predicate.Consultation(sql.FieldNotIn(FieldRoomName, vs...))
}

// RoomNameGT applies the GT predicate on the "room_name" field.
func RoomNameGT(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldGT(FieldRoomName, v))
}

// RoomNameGTE applies the GTE predicate on the "room_name" field.
func RoomNameGTE(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldGTE(FieldRoomName, v))
}

// RoomNameLT applies the LT predicate on the "room_name" field.
func RoomNameLT(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldLT(FieldRoomName, v))
}

// RoomNameLTE applies the LTE predicate on the "room_name" field.
func RoomNameLTE(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldLTE(FieldRoomName, v))
}

// RoomNameContains applies the Contains predicate on the "room_name" field.
func RoomNameContains(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldContains(FieldRoomName, v))
}

// RoomNameHasPrefix applies the HasPrefix predicate on the "room_name" field.
func RoomNameHasPrefix(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldHasPrefix(FieldRoomName, v))
}

// RoomNameHasSuffix applies the HasSuffix predicate on the "room_name" field.
func RoomNameHasSuffix(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldHasSuffix(FieldRoomName, v))
}

// RoomNameEqualFold applies the EqualFold predicate on the "room_name" field.
func RoomNameEqualFold(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEqualFold(FieldRoomName, v))
}

// RoomNameContainsFold applies the ContainsFold predicate on the "room_name" field.
func RoomNameContainsFold(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldContainsFold(FieldRoomName, v))
}

// RoomURLEQ applies the EQ predicate on the "room_url" field.
func RoomURLEQ(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldRoomURL, v))
}

// RoomURLNEQ applies the NEQ predicate on the "room_url" field.
func RoomURLNEQ(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldNEQ(FieldRoomURL, v))
}

// RoomURLIn applies the In predicate on the "room_url" field.
func RoomURLIn(vs ...string) predicate.Consultation {
	return predicate.Consultation(sql.FieldIn(FieldRoomURL, vs...))
}

// RoomURLNotIn applies the NotIn predicate on the "room_url" field.
func RoomURLNotIn(vs ...string) predicate.Consultation {
	return predicate.Consultation(sql.FieldNotIn(FieldRoomURL, vs...))
}

// RoomURLGT applies the GT predicate on the "room_url" field.
func RoomURLGT(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldGT(FieldRoomURL, v))
}

// RoomURLGTE applies the GTE predicate on the "room_url" field.
func RoomURLGTE(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldGTE(FieldRoomURL, v))
}

// RoomURLLT applies the LT predicate on the "room_url" field.
func RoomURLLT(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldLT(FieldRoomURL, v))
}

// RoomURLLTE applies the LTE predicate on the "room_url" field.
func RoomURLLTE(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldLTE(FieldRoomURL, v))
}

// RoomURLContains applies the Contains predicate on the "room_url" field.
func RoomURLContains(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldContains(FieldRoomURL, v))
}

// RoomURLHasPrefix applies the HasPrefix predicate on the "room_url" field.
func RoomURLHasPrefix(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldHasPrefix(FieldRoomURL, v))
}

// RoomURLHasSuffix applies the HasSuffix predicate on the "room_url" field.
func RoomURLHasSuffix(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldHasSuffix(FieldRoomURL, v))
}

// RoomURLEqualFold applies the EqualFold predicate on the "room_url" field.
func RoomURLEqualFold(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEqualFold(FieldRoomURL, v))
}

// RoomURLContainsFold applies the ContainsFold predicate on the "room_url" field.
func RoomURLContainsFold(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldContainsFold(FieldRoomURL, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Consultation {
	return predicate.Consultation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Consultation {
	return predicate.Consultation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Consultation {
	return predicate.Consultation(sql.FieldNotIn(FieldStatus, vs...))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Consultation {
	return predicate.Consultation(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Consultation {
	return predicate.Consultation(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Consultation {
	return predicate.Consultation(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Consultation {
	return predicate.Consultation(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Consultation {
	return predicate.Consultation(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Consultation) predicate.Consultation {
	return predicate.Consultation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Consultation) predicate.Consultation {
	return predicate.Consultation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Consultation) predicate.Consultation {
	return predicate.Consultation(sql.NotPredicates(p))
}
