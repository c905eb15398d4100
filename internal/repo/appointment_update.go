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
	"github.com/medimind/backend/internal/repo/appointment"
	"github.com/medimind/backend/internal/repo/predicate"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdate) SetUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AppointmentUpdate) SetPatientID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePatientID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AppointmentUpdate) SetDoctorID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDoctorID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *AppointmentUpdate) SetPatientName(v string) *AppointmentUpdate {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePatientName(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetDoctorName sets the "doctor_name" field.
func (_u *AppointmentUpdate) SetDoctorName(v string) *AppointmentUpdate {
	_u.mutation.SetDoctorName(v)
	return _u
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDoctorName(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetDoctorName(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *AppointmentUpdate) SetDate(v string) *AppointmentUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDate(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTime sets the "time" field.
func (_u *AppointmentUpdate) SetTime(v string) *AppointmentUpdate {
	_u.mutation.SetTime(v)
	return _u
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableTime(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetTime(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *AppointmentUpdate) SetType(v appointment.Type) *AppointmentUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableType(v *appointment.Type) *AppointmentUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AppointmentUpdate) SetReason(v string) *AppointmentUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableReason(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdate) SetStatus(v appointment.Status) *AppointmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStatus(v *appointment.Status) *AppointmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConsultationID sets the "consultation_id" field.
func (_u *AppointmentUpdate) SetConsultationID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetConsultationID(v)
	return _u
}

// SetNillableConsultationID sets the "consultation_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableConsultationID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetConsultationID(*v)
	}
	return _u
}

// ClearConsultationID clears the value of the "consultation_id" field.
func (_u *AppointmentUpdate) ClearConsultationID() *AppointmentUpdate {
	_u.mutation.ClearConsultationID()
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *AppointmentUpdate) SetReportID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableReportID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// ClearReportID clears the value of the "report_id" field.
func (_u *AppointmentUpdate) ClearReportID() *AppointmentUpdate {
	_u.mutation.ClearReportID()
	return _u
}

// SetRoomName sets the "room_name" field.
func (_u *AppointmentUpdate) SetRoomName(v string) *AppointmentUpdate {
	_u.mutation.SetRoomName(v)
	return _u
}

// SetNillableRoomName sets the "room_name" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableRoomName(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetRoomName(*v)
	}
	return _u
}

// ClearRoomName clears the value of the "room_name" field.
func (_u *AppointmentUpdate) ClearRoomName() *AppointmentUpdate {
	_u.mutation.ClearRoomName()
	return _u
}

// SetRoomURL sets the "room_url" field.
func (_u *AppointmentUpdate) SetRoomURL(v string) *AppointmentUpdate {
	_u.mutation.SetRoomURL(v)
	return _u
}

// SetNillableRoomURL sets the "room_url" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableRoomURL(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetRoomURL(*v)
	}
	return _u
}

// ClearRoomURL clears the value of the "room_url" field.
func (_u *AppointmentUpdate) ClearRoomURL() *AppointmentUpdate {
	_u.mutation.ClearRoomURL()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AppointmentUpdate) SetNotes(v string) *AppointmentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableNotes(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AppointmentUpdate) ClearNotes() *AppointmentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := appointment.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "Appointment.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Time(); ok {
		if err := appointment.TimeValidator(v); err != nil {
			return &ValidationError{Name: "time", err: fmt.Errorf(`repo: validator failed for field "Appointment.time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := appointment.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Appointment.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(appointment.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(appointment.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(appointment.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DoctorName(); ok {
		_spec.SetField(appointment.FieldDoctorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(appointment.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Time(); ok {
		_spec.SetField(appointment.FieldTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(appointment.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(appointment.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConsultationID(); ok {
		_spec.SetField(appointment.FieldConsultationID, field.TypeUUID, value)
	}
	if _u.mutation.ConsultationIDCleared() {
		_spec.ClearField(appointment.FieldConsultationID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(appointment.FieldReportID, field.TypeUUID, value)
	}
	if _u.mutation.ReportIDCleared() {
		_spec.ClearField(appointment.FieldReportID, field.TypeUUID)
	}
	if value, ok := _u.mutation.RoomName(); ok {
		_spec.SetField(appointment.FieldRoomName, field.TypeString, value)
	}
	if _u.mutation.RoomNameCleared() {
		_spec.ClearField(appointment.FieldRoomName, field.TypeString)
	}
	if value, ok := _u.mutation.RoomURL(); ok {
		_spec.SetField(appointment.FieldRoomURL, field.TypeString, value)
	}
	if _u.mutation.RoomURLCleared() {
		_spec.ClearField(appointment.FieldRoomURL, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(appointment.FieldNotes, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdateOne) SetUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AppointmentUpdateOne) SetPatientID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePatientID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AppointmentUpdateOne) SetDoctorID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDoctorID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *AppointmentUpdateOne) SetPatientName(v string) *AppointmentUpdateOne {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePatientName(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetDoctorName sets the "doctor_name" field.
func (_u *AppointmentUpdateOne) SetDoctorName(v string) *AppointmentUpdateOne {
	_u.mutation.SetDoctorName(v)
	return _u
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDoctorName(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDoctorName(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *AppointmentUpdateOne) SetDate(v string) *AppointmentUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDate(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTime sets the "time" field.
func (_u *AppointmentUpdateOne) SetTime(v string) *AppointmentUpdateOne {
	_u.mutation.SetTime(v)
	return _u
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableTime(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetTime(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *AppointmentUpdateOne) SetType(v appointment.Type) *AppointmentUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableType(v *appointment.Type) *AppointmentUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AppointmentUpdateOne) SetReason(v string) *AppointmentUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableReason(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdateOne) SetStatus(v appointment.Status) *AppointmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStatus(v *appointment.Status) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConsultationID sets the "consultation_id" field.
func (_u *AppointmentUpdateOne) SetConsultationID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetConsultationID(v)
	return _u
}

// SetNillableConsultationID sets the "consultation_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableConsultationID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetConsultationID(*v)
	}
	return _u
}

// ClearConsultationID clears the value of the "consultation_id" field.
func (_u *AppointmentUpdateOne) ClearConsultationID() *AppointmentUpdateOne {
	_u.mutation.ClearConsultationID()
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *AppointmentUpdateOne) SetReportID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableReportID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// ClearReportID clears the value of the "report_id" field.
func (_u *AppointmentUpdateOne) ClearReportID() *AppointmentUpdateOne {
	_u.mutation.ClearReportID()
	return _u
}

// SetRoomName sets the "room_name" field.
func (_u *AppointmentUpdateOne) SetRoomName(v string) *AppointmentUpdateOne {
	_u.mutation.SetRoomName(v)
	return _u
}

// SetNillableRoomName sets the "room_name" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableRoomName(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetRoomName(*v)
	}
	return _u
}

// ClearRoomName clears the value of the "room_name" field.
func (_u *AppointmentUpdateOne) ClearRoomName() *AppointmentUpdateOne {
	_u.mutation.ClearRoomName()
	return _u
}

// SetRoomURL sets the "room_url" field.
func (_u *AppointmentUpdateOne) SetRoomURL(v string) *AppointmentUpdateOne {
	_u.mutation.SetRoomURL(v)
	return _u
}

// SetNillableRoomURL sets the "room_url" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableRoomURL(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetRoomURL(*v)
	}
	return _u
}

// ClearRoomURL clears the value of the "room_url" field.
func (_u *AppointmentUpdateOne) ClearRoomURL() *AppointmentUpdateOne {
	_u.mutation.ClearRoomURL()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AppointmentUpdateOne) SetNotes(v string) *AppointmentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableNotes(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AppointmentUpdateOne) ClearNotes() *AppointmentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := appointment.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "Appointment.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Time(); ok {
		if err := appointment.TimeValidator(v); err != nil {
			return &ValidationError{Name: "time", err: fmt.Errorf(`repo: validator failed for field "Appointment.time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := appointment.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "Appointment.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
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
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(appointment.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(appointment.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(appointment.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.DoctorName(); ok {
		_spec.SetField(appointment.FieldDoctorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(appointment.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Time(); ok {
		_spec.SetField(appointment.FieldTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(appointment.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(appointment.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConsultationID(); ok {
		_spec.SetField(appointment.FieldConsultationID, field.TypeUUID, value)
	}
	if _u.mutation.ConsultationIDCleared() {
		_spec.ClearField(appointment.FieldConsultationID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(appointment.FieldReportID, field.TypeUUID, value)
	}
	if _u.mutation.ReportIDCleared() {
		_spec.ClearField(appointment.FieldReportID, field.TypeUUID)
	}
	if value, ok := _u.mutation.RoomName(); ok {
		_spec.SetField(appointment.FieldRoomName, field.TypeString, value)
	}
	if _u.mutation.RoomNameCleared() {
		_spec.ClearField(appointment.FieldRoomName, field.TypeString)
	}
	if value, ok := _u.mutation.RoomURL(); ok {
		_spec.SetField(appointment.FieldRoomURL, field.TypeString, value)
	}
	if _u.mutation.RoomURLCleared() {
		_spec.ClearField(appointment.FieldRoomURL, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(appointment.FieldNotes, field.TypeString)
	}
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
