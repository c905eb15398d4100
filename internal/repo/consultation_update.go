// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medimind/backend/internal/repo/consultation"
	"github.com/medimind/backend/internal/repo/predicate"
)

// ConsultationUpdate is the builder for updating Consultation entities.
type ConsultationUpdate struct {
	config
	hooks    []Hook
	mutation *ConsultationMutation
}

// Where appends a list predicates to the ConsultationUpdate builder.
func (_u *ConsultationUpdate) Where(ps ...predicate.Consultation) *ConsultationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConsultationUpdate) SetUpdatedAt(v time.Time) *ConsultationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *ConsultationUpdate) SetAppointmentID(v uuid.UUID) *ConsultationUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableAppointmentID(v *uuid.UUID) *ConsultationUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *ConsultationUpdate) SetPatientID(v uuid.UUID) *ConsultationUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillablePatientID(v *uuid.UUID) *ConsultationUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *ConsultationUpdate) SetDoctorID(v uuid.UUID) *ConsultationUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableDoctorID(v *uuid.UUID) *ConsultationUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *ConsultationUpdate) SetReportID(v uuid.UUID) *ConsultationUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableReportID(v *uuid.UUID) *ConsultationUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// ClearReportID clears the value of the "report_id" field.
func (_u *ConsultationUpdate) ClearReportID() *ConsultationUpdate {
	_u.mutation.ClearReportID()
	return _u
}

// SetRecommendationID sets the "recommendation_id" field.
func (_u *ConsultationUpdate) SetRecommendationID(v uuid.UUID) *ConsultationUpdate {
	_u.mutation.SetRecommendationID(v)
	return _u
}

// SetNillableRecommendationID sets the "recommendation_id" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableRecommendationID(v *uuid.UUID) *ConsultationUpdate {
	if v != nil {
		_u.SetRecommendationID(*v)
	}
	return _u
}

// ClearRecommendationID clears the value of the "recommendation_id" field.
func (_u *ConsultationUpdate) ClearRecommendationID() *ConsultationUpdate {
	_u.mutation.ClearRecommendationID()
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *ConsultationUpdate) SetPatientName(v string) *ConsultationUpdate {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillablePatientName(v *string) *ConsultationUpdate {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetDoctorName sets the "doctor_name" field.
func (_u *ConsultationUpdate) SetDoctorName(v string) *ConsultationUpdate {
	_u.mutation.SetDoctorName(v)
	return _u
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableDoctorName(v *string) *ConsultationUpdate {
	if v != nil {
		_u.SetDoctorName(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *ConsultationUpdate) SetDate(v string) *ConsultationUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableDate(v *string) *ConsultationUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTime sets the "time" field.
func (_u *ConsultationUpdate) SetTime(v string) *ConsultationUpdate {
	_u.mutation.SetTime(v)
	return _u
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableTime(v *string) *ConsultationUpdate {
	if v != nil {
		_u.SetTime(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ConsultationUpdate) SetReason(v string) *ConsultationUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableReason(v *string) *ConsultationUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetRoomName sets the "room_name" field.
func (_u *ConsultationUpdate) SetRoomName(v string) *ConsultationUpdate {
	_u.mutation.SetRoomName(v)
	return _u
}

// SetNillableRoomName sets the "room_name" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableRoomName(v *string) *ConsultationUpdate {
	if v != nil {
		_u.SetRoomName(*v)
	}
	return _u
}

// SetRoomURL sets the "room_url" field.
func (_u *ConsultationUpdate) SetRoomURL(v string) *ConsultationUpdate {
	_u.mutation.SetRoomURL(v)
	return _u
}

// SetNillableRoomURL sets the "room_url" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableRoomURL(v *string) *ConsultationUpdate {
	if v != nil {
		_u.SetRoomURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConsultationUpdate) SetStatus(v consultation.Status) *ConsultationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableStatus(v *consultation.Status) *ConsultationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ConsultationUpdate) SetNotes(v string) *ConsultationUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableNotes(v *string) *ConsultationUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ConsultationUpdate) ClearNotes() *ConsultationUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the ConsultationMutation object of the builder.
func (_u *ConsultationUpdate) Mutation() *ConsultationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConsultationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConsultationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConsultationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConsultationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConsultationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := consultation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConsultationUpdate) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := consultation.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "Consultation.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Time(); ok {
		if err := consultation.TimeValidator(v); err != nil {
			return &ValidationError{Name: "time", err: fmt.Errorf(`repo: validator failed for field "Consultation.time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoomName(); ok {
		if err := consultation.RoomNameValidator(v); err != nil {
			return &ValidationError{Name: "room_name", err: fmt.Errorf(`repo: validator failed for field "Consultation.room_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoomURL(); ok {
		if err := consultation.RoomURLValidator(v); err != nil {
			return &ValidationError{Name: "room_url", err: fmt.Errorf(`repo: validator failed for field "Consultation.room_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := consultation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Consultation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ConsultationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(consultation.Table, consultation.Columns, sqlgraph.NewFieldSpec(consultation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(consultation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(consultation.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(consultation.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(consultation.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(consultation.FieldReportID, field.TypeUUID, value)
	}
	if _u.mutation.ReportIDCleared() {
		_spec.ClearField(consultation.FieldReportID, field.TypeUUID)
	}
	if value, ok := _u.mutation.RecommendationID(); ok {
		_spec.SetField(consultation.FieldRecommendationID, field.TypeUUID, value)
	}
	if _u.mutation.RecommendationIDCleared() {
		_spec.ClearField(consultation.FieldRecommendationID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(consultation.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DoctorName(); ok {
		_spec.SetField(consultation.FieldDoctorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(consultation.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Time(); ok {
		_spec.SetField(consultation.FieldTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(consultation.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoomName(); ok {
		_spec.SetField(consultation.FieldRoomName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoomURL(); ok {
		_spec.SetField(consultation.FieldRoomURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(consultation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(consultation.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(consultation.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{consultation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConsultationUpdateOne is the builder for updating a single Consultation entity.
type ConsultationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConsultationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConsultationUpdateOne) SetUpdatedAt(v time.Time) *ConsultationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *ConsultationUpdateOne) SetAppointmentID(v uuid.UUID) *ConsultationUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *ConsultationUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *ConsultationUpdateOne) SetPatientID(v uuid.UUID) *ConsultationUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillablePatientID(v *uuid.UUID) *ConsultationUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *ConsultationUpdateOne) SetDoctorID(v uuid.UUID) *ConsultationUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableDoctorID(v *uuid.UUID) *ConsultationUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *ConsultationUpdateOne) SetReportID(v uuid.UUID) *ConsultationUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableReportID(v *uuid.UUID) *ConsultationUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// ClearReportID clears the value of the "report_id" field.
func (_u *ConsultationUpdateOne) ClearReportID() *ConsultationUpdateOne {
	_u.mutation.ClearReportID()
	return _u
}

// SetRecommendationID sets the "recommendation_id" field.
func (_u *ConsultationUpdateOne) SetRecommendationID(v uuid.UUID) *ConsultationUpdateOne {
	_u.mutation.SetRecommendationID(v)
	return _u
}

// SetNillableRecommendationID sets the "recommendation_id" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableRecommendationID(v *uuid.UUID) *ConsultationUpdateOne {
	if v != nil {
		_u.SetRecommendationID(*v)
	}
	return _u
}

// ClearRecommendationID clears the value of the "recommendation_id" field.
func (_u *ConsultationUpdateOne) ClearRecommendationID() *ConsultationUpdateOne {
	_u.mutation.ClearRecommendationID()
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *ConsultationUpdateOne) SetPatientName(v string) *ConsultationUpdateOne {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillablePatientName(v *string) *ConsultationUpdateOne {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetDoctorName sets the "doctor_name" field.
func (_u *ConsultationUpdateOne) SetDoctorName(v string) *ConsultationUpdateOne {
	_u.mutation.SetDoctorName(v)
	return _u
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableDoctorName(v *string) *ConsultationUpdateOne {
	if v != nil {
		_u.SetDoctorName(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *ConsultationUpdateOne) SetDate(v string) *ConsultationUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableDate(v *string) *ConsultationUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTime sets the "time" field.
func (_u *ConsultationUpdateOne) SetTime(v string) *ConsultationUpdateOne {
	_u.mutation.SetTime(v)
	return _u
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableTime(v *string) *ConsultationUpdateOne {
	if v != nil {
		_u.SetTime(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *ConsultationUpdateOne) SetReason(v string) *ConsultationUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableReason(v *string) *ConsultationUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetRoomName sets the "room_name" field.
func (_u *ConsultationUpdateOne) SetRoomName(v string) *ConsultationUpdateOne {
	_u.mutation.SetRoomName(v)
	return _u
}

// SetNillableRoomName sets the "room_name" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableRoomName(v *string) *ConsultationUpdateOne {
	if v != nil {
		_u.SetRoomName(*v)
	}
	return _u
}

// SetRoomURL sets the "room_url" field.
func (_u *ConsultationUpdateOne) SetRoomURL(v string) *ConsultationUpdateOne {
	_u.mutation.SetRoomURL(v)
	return _u
}

// SetNillableRoomURL sets the "room_url" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableRoomURL(v *string) *ConsultationUpdateOne {
	if v != nil {
		_u.SetRoomURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConsultationUpdateOne) SetStatus(v consultation.Status) *ConsultationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableStatus(v *consultation.Status) *ConsultationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ConsultationUpdateOne) SetNotes(v string) *ConsultationUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableNotes(v *string) *ConsultationUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ConsultationUpdateOne) ClearNotes() *ConsultationUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the ConsultationMutation object of the builder.
func (_u *ConsultationUpdateOne) Mutation() *ConsultationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConsultationUpdate builder.
func (_u *ConsultationUpdateOne) Where(ps ...predicate.Consultation) *ConsultationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConsultationUpdateOne) Select(field string, fields ...string) *ConsultationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Consultation entity.
func (_u *ConsultationUpdateOne) Save(ctx context.Context) (*Consultation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConsultationUpdateOne) SaveX(ctx context.Context) *Consultation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConsultationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConsultationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConsultationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := consultation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConsultationUpdateOne) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := consultation.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "Consultation.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Time(); ok {
		if err := consultation.TimeValidator(v); err != nil {
			return &ValidationError{Name: "time", err: fmt.Errorf(`repo: validator failed for field "Consultation.time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoomName(); ok {
		if err := consultation.RoomNameValidator(v); err != nil {
			return &ValidationError{Name: "room_name", err: fmt.Errorf(`repo: validator failed for field "Consultation.room_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RoomURL(); ok {
		if err := consultation.RoomURLValidator(v); err != nil {
			return &ValidationError{Name: "room_url", err: fmt.Errorf(`repo: validator failed for field "Consultation.room_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := consultation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Consultation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ConsultationUpdateOne) sqlSave(ctx context.Context) (_node *Consultation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(consultation.Table, consultation.Columns, sqlgraph.NewFieldSpec(consultation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Consultation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, consultation.FieldID)
		for _, f := range fields {
			if !consultation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != consultation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(consultation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(consultation.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(consultation.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(consultation.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(consultation.FieldReportID, field.TypeUUID, value)
	}
	if _u.mutation.ReportIDCleared() {
		_spec.ClearField(consultation.FieldReportID, field.TypeUUID)
	}
	if value, ok := _u.mutation.RecommendationID(); ok {
		_spec.SetField(consultation.FieldRecommendationID, field.TypeUUID, value)
	}
	if _u.mutation.RecommendationIDCleared() {
		_spec.ClearField(consultation.FieldRecommendationID, field.TypeUUID)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(consultation.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DoctorName(); ok {
		_spec.SetField(consultation.FieldDoctorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(consultation.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Time(); ok {
		_spec.SetField(consultation.FieldTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(consultation.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoomName(); ok {
		_spec.SetField(consultation.FieldRoomName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoomURL(); ok {
		_spec.SetField(consultation.FieldRoomURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(consultation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(consultation.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(consultation.FieldNotes, field.TypeString)
	}
	_node = &Consultation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{consultation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
