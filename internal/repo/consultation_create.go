// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medimind/backend/internal/repo/consultation"
)

// ConsultationCreate is the builder for creating a Consultation entity.
type ConsultationCreate struct {
	config
	mutation *ConsultationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConsultationCreate) SetCreatedAt(v time.Time) *ConsultationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillableCreatedAt(v *time.Time) *ConsultationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConsultationCreate) SetUpdatedAt(v time.Time) *ConsultationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillableUpdatedAt(v *time.Time) *ConsultationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *ConsultationCreate) SetAppointmentID(v uuid.UUID) *ConsultationCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *ConsultationCreate) SetPatientID(v uuid.UUID) *ConsultationCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *ConsultationCreate) SetDoctorID(v uuid.UUID) *ConsultationCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetReportID sets the "report_id" field.
func (_c *ConsultationCreate) SetReportID(v uuid.UUID) *ConsultationCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillableReportID(v *uuid.UUID) *ConsultationCreate {
	if v != nil {
		_c.SetReportID(*v)
	}
	return _c
}

// SetRecommendationID sets the "recommendation_id" field.
func (_c *ConsultationCreate) SetRecommendationID(v uuid.UUID) *ConsultationCreate {
	_c.mutation.SetRecommendationID(v)
	return _c
}

// SetNillableRecommendationID sets the "recommendation_id" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillableRecommendationID(v *uuid.UUID) *ConsultationCreate {
	if v != nil {
		_c.SetRecommendationID(*v)
	}
	return _c
}

// SetPatientName sets the "patient_name" field.
func (_c *ConsultationCreate) SetPatientName(v string) *ConsultationCreate {
	_c.mutation.SetPatientName(v)
	return _c
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillablePatientName(v *string) *ConsultationCreate {
	if v != nil {
		_c.SetPatientName(*v)
	}
	return _c
}

// SetDoctorName sets the "doctor_name" field.
func (_c *ConsultationCreate) SetDoctorName(v string) *ConsultationCreate {
	_c.mutation.SetDoctorName(v)
	return _c
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillableDoctorName(v *string) *ConsultationCreate {
	if v != nil {
		_c.SetDoctorName(*v)
	}
	return _c
}

// SetDate sets the "date" field.
func (_c *ConsultationCreate) SetDate(v string) *ConsultationCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetTime sets the "time" field.
func (_c *ConsultationCreate) SetTime(v string) *ConsultationCreate {
	_c.mutation.SetTime(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *ConsultationCreate) SetReason(v string) *ConsultationCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillableReason(v *string) *ConsultationCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetRoomName sets the "room_name" field.
func (_c *ConsultationCreate) SetRoomName(v string) *ConsultationCreate {
	_c.mutation.SetRoomName(v)
	return _c
}

// SetRoomURL sets the "room_url" field.
func (_c *ConsultationCreate) SetRoomURL(v string) *ConsultationCreate {
	_c.mutation.SetRoomURL(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConsultationCreate) SetStatus(v consultation.Status) *ConsultationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillableStatus(v *consultation.Status) *ConsultationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ConsultationCreate) SetNotes(v string) *ConsultationCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillableNotes(v *string) *ConsultationCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConsultationCreate) SetID(v uuid.UUID) *ConsultationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillableID(v *uuid.UUID) *ConsultationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ConsultationMutation object of the builder.
func (_c *ConsultationCreate) Mutation() *ConsultationMutation {
	return _c.mutation
}

// Save creates the Consultation in the database.
func (_c *ConsultationCreate) Save(ctx context.Context) (*Consultation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConsultationCreate) SaveX(ctx context.Context) *Consultation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConsultationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConsultationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConsultationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := consultation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := consultation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.PatientName(); !ok {
		v := consultation.DefaultPatientName
		_c.mutation.SetPatientName(v)
	}
	if _, ok := _c.mutation.DoctorName(); !ok {
		v := consultation.DefaultDoctorName
		_c.mutation.SetDoctorName(v)
	}
	if _, ok := _c.mutation.Reason(); !ok {
		v := consultation.DefaultReason
		_c.mutation.SetReason(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := consultation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := consultation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConsultationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Consultation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Consultation.updated_at"`)}
	}
	if _, ok := _c.mutation.AppointmentID(); !ok {
		return &ValidationError{Name: "appointment_id", err: errors.New(`repo: missing required field "Consultation.appointment_id"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Consultation.patient_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "Consultation.doctor_id"`)}
	}
	if _, ok := _c.mutation.PatientName(); !ok {
		return &ValidationError{Name: "patient_name", err: errors.New(`repo: missing required field "Consultation.patient_name"`)}
	}
	if _, ok := _c.mutation.DoctorName(); !ok {
		return &ValidationError{Name: "doctor_name", err: errors.New(`repo: missing required field "Consultation.doctor_name"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "Consultation.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := consultation.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "Consultation.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Time(); !ok {
		return &ValidationError{Name: "time", err: errors.New(`repo: missing required field "Consultation.time"`)}
	}
	if v, ok := _c.mutation.Time(); ok {
		if err := consultation.TimeValidator(v); err != nil {
			return &ValidationError{Name: "time", err: fmt.Errorf(`repo: validator failed for field "Consultation.time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`repo: missing required field "Consultation.reason"`)}
	}
	if _, ok := _c.mutation.RoomName(); !ok {
		return &ValidationError{Name: "room_name", err: errors.New(`repo: missing required field "Consultation.room_name"`)}
	}
	if v, ok := _c.mutation.RoomName(); ok {
		if err := consultation.RoomNameValidator(v); err != nil {
			return &ValidationError{Name: "room_name", err: fmt.Errorf(`repo: validator failed for field "Consultation.room_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RoomURL(); !ok {
		return &ValidationError{Name: "room_url", err: errors.New(`repo: missing required field "Consultation.room_url"`)}
	}
	if v, ok := _c.mutation.RoomURL(); ok {
		if err := consultation.RoomURLValidator(v); err != nil {
			return &ValidationError{Name: "room_url", err: fmt.Errorf(`repo: validator failed for field "Consultation.room_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Consultation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := consultation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Consultation.status": %w`, err)}
		}
	}
	return nil
}

func (_c *ConsultationCreate) sqlSave(ctx context.Context) (*Consultation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConsultationCreate) createSpec() (*Consultation, *sqlgraph.CreateSpec) {
	var (
		_node = &Consultation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(consultation.Table, sqlgraph.NewFieldSpec(consultation.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(consultation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(consultation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(consultation.FieldAppointmentID, field.TypeUUID, value)
		_node.AppointmentID = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(consultation.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(consultation.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.ReportID(); ok {
		_spec.SetField(consultation.FieldReportID, field.TypeUUID, value)
		_node.ReportID = &value
	}
	if value, ok := _c.mutation.RecommendationID(); ok {
		_spec.SetField(consultation.FieldRecommendationID, field.TypeUUID, value)
		_node.RecommendationID = &value
	}
	if value, ok := _c.mutation.PatientName(); ok {
		_spec.SetField(consultation.FieldPatientName, field.TypeString, value)
		_node.PatientName = value
	}
	if value, ok := _c.mutation.DoctorName(); ok {
		_spec.SetField(consultation.FieldDoctorName, field.TypeString, value)
		_node.DoctorName = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(consultation.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Time(); ok {
		_spec.SetField(consultation.FieldTime, field.TypeString, value)
		_node.Time = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(consultation.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.RoomName(); ok {
		_spec.SetField(consultation.FieldRoomName, field.TypeString, value)
		_node.RoomName = value
	}
	if value, ok := _c.mutation.RoomURL(); ok {
		_spec.SetField(consultation.FieldRoomURL, field.TypeString, value)
		_node.RoomURL = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(consultation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(consultation.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Consultation.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConsultationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ConsultationCreate) OnConflict(opts ...sql.ConflictOption) *ConsultationUpsertOne {
	_c.conflict = opts
	return &ConsultationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Consultation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConsultationCreate) OnConflictColumns(columns ...string) *ConsultationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConsultationUpsertOne{
		create: _c,
	}
}

type (
	// ConsultationUpsertOne is the builder for "upsert"-ing
	//  one Consultation node.
	ConsultationUpsertOne struct {
		create *ConsultationCreate
	}

	// ConsultationUpsert is the "OnConflict" setter.
	ConsultationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ConsultationUpsert) SetUpdatedAt(v time.Time) *ConsultationUpsert {
	u.Set(consultation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdateUpdatedAt() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldUpdatedAt)
	return u
}

// SetAppointmentID sets the "appointment_id" field.
func (u *ConsultationUpsert) SetAppointmentID(v uuid.UUID) *ConsultationUpsert {
	u.Set(consultation.FieldAppointmentID, v)
	return u
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdateAppointmentID() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldAppointmentID)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *ConsultationUpsert) SetPatientID(v uuid.UUID) *ConsultationUpsert {
	u.Set(consultation.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdatePatientID() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldPatientID)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *ConsultationUpsert) SetDoctorID(v uuid.UUID) *ConsultationUpsert {
	u.Set(consultation.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdateDoctorID() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldDoctorID)
	return u
}

// SetReportID sets the "report_id" field.
func (u *ConsultationUpsert) SetReportID(v uuid.UUID) *ConsultationUpsert {
	u.Set(consultation.FieldReportID, v)
	return u
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdateReportID() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldReportID)
	return u
}

// ClearReportID clears the value of the "report_id" field.
func (u *ConsultationUpsert) ClearReportID() *ConsultationUpsert {
	u.SetNull(consultation.FieldReportID)
	return u
}

// SetRecommendationID sets the "recommendation_id" field.
func (u *ConsultationUpsert) SetRecommendationID(v uuid.UUID) *ConsultationUpsert {
	u.Set(consultation.FieldRecommendationID, v)
	return u
}

// UpdateRecommendationID sets the "recommendation_id" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdateRecommendationID() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldRecommendationID)
	return u
}

// ClearRecommendationID clears the value of the "recommendation_id" field.
func (u *ConsultationUpsert) ClearRecommendationID() *ConsultationUpsert {
	u.SetNull(consultation.FieldRecommendationID)
	return u
}

// SetPatientName sets the "patient_name" field.
func (u *ConsultationUpsert) SetPatientName(v string) *ConsultationUpsert {
	u.Set(consultation.FieldPatientName, v)
	return u
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdatePatientName() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldPatientName)
	return u
}

// SetDoctorName sets the "doctor_name" field.
func (u *ConsultationUpsert) SetDoctorName(v string) *ConsultationUpsert {
	u.Set(consultation.FieldDoctorName, v)
	return u
}

// UpdateDoctorName sets the "doctor_name" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdateDoctorName() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldDoctorName)
	return u
}

// SetDate sets the "date" field.
func (u *ConsultationUpsert) SetDate(v string) *ConsultationUpsert {
	u.Set(consultation.FieldDate, v)
	return u
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdateDate() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldDate)
	return u
}

// SetTime sets the "time" field.
func (u *ConsultationUpsert) SetTime(v string) *ConsultationUpsert {
	u.Set(consultation.FieldTime, v)
	return u
}

// UpdateTime sets the "time" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdateTime() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldTime)
	return u
}

// SetReason sets the "reason" field.
func (u *ConsultationUpsert) SetReason(v string) *ConsultationUpsert {
	u.Set(consultation.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdateReason() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldReason)
	return u
}

// SetRoomName sets the "room_name" field.
func (u *ConsultationUpsert) SetRoomName(v string) *ConsultationUpsert {
	u.Set(consultation.FieldRoomName, v)
	return u
}

// UpdateRoomName sets the "room_name" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdateRoomName() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldRoomName)
	return u
}

// SetRoomURL sets the "room_url" field.
func (u *ConsultationUpsert) SetRoomURL(v string) *ConsultationUpsert {
	u.Set(consultation.FieldRoomURL, v)
	return u
}

// UpdateRoomURL sets the "room_url" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdateRoomURL() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldRoomURL)
	return u
}

// SetStatus sets the "status" field.
func (u *ConsultationUpsert) SetStatus(v consultation.Status) *ConsultationUpsert {
	u.Set(consultation.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdateStatus() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldStatus)
	return u
}

// SetNotes sets the "notes" field.
func (u *ConsultationUpsert) SetNotes(v string) *ConsultationUpsert {
	u.Set(consultation.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdateNotes() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *ConsultationUpsert) ClearNotes() *ConsultationUpsert {
	u.SetNull(consultation.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Consultation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(consultation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConsultationUpsertOne) UpdateNewValues() *ConsultationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(consultation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(consultation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Consultation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConsultationUpsertOne) Ignore() *ConsultationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConsultationUpsertOne) DoNothing() *ConsultationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConsultationCreate.OnConflict
// documentation for more info.
func (u *ConsultationUpsertOne) Update(set func(*ConsultationUpsert)) *ConsultationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConsultationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConsultationUpsertOne) SetUpdatedAt(v time.Time) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdateUpdatedAt() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAppointmentID sets the "appointment_id" field.
func (u *ConsultationUpsertOne) SetAppointmentID(v uuid.UUID) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdateAppointmentID() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateAppointmentID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *ConsultationUpsertOne) SetPatientID(v uuid.UUID) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdatePatientID() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdatePatientID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *ConsultationUpsertOne) SetDoctorID(v uuid.UUID) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdateDoctorID() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateDoctorID()
	})
}

// SetReportID sets the "report_id" field.
func (u *ConsultationUpsertOne) SetReportID(v uuid.UUID) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdateReportID() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateReportID()
	})
}

// ClearReportID clears the value of the "report_id" field.
func (u *ConsultationUpsertOne) ClearReportID() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.ClearReportID()
	})
}

// SetRecommendationID sets the "recommendation_id" field.
func (u *ConsultationUpsertOne) SetRecommendationID(v uuid.UUID) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetRecommendationID(v)
	})
}

// UpdateRecommendationID sets the "recommendation_id" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdateRecommendationID() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateRecommendationID()
	})
}

// ClearRecommendationID clears the value of the "recommendation_id" field.
func (u *ConsultationUpsertOne) ClearRecommendationID() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.ClearRecommendationID()
	})
}

// SetPatientName sets the "patient_name" field.
func (u *ConsultationUpsertOne) SetPatientName(v string) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetPatientName(v)
	})
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdatePatientName() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdatePatientName()
	})
}

// SetDoctorName sets the "doctor_name" field.
func (u *ConsultationUpsertOne) SetDoctorName(v string) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetDoctorName(v)
	})
}

// UpdateDoctorName sets the "doctor_name" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdateDoctorName() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateDoctorName()
	})
}

// SetDate sets the "date" field.
func (u *ConsultationUpsertOne) SetDate(v string) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdateDate() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateDate()
	})
}

// SetTime sets the "time" field.
func (u *ConsultationUpsertOne) SetTime(v string) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetTime(v)
	})
}

// UpdateTime sets the "time" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdateTime() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateTime()
	})
}

// SetReason sets the "reason" field.
func (u *ConsultationUpsertOne) SetReason(v string) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdateReason() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateReason()
	})
}

// SetRoomName sets the "room_name" field.
func (u *ConsultationUpsertOne) SetRoomName(v string) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetRoomName(v)
	})
}

// UpdateRoomName sets the "room_name" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdateRoomName() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateRoomName()
	})
}

// SetRoomURL sets the "room_url" field.
func (u *ConsultationUpsertOne) SetRoomURL(v string) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetRoomURL(v)
	})
}

// UpdateRoomURL sets the "room_url" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdateRoomURL() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateRoomURL()
	})
}

// SetStatus sets the "status" field.
func (u *ConsultationUpsertOne) SetStatus(v consultation.Status) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdateStatus() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateStatus()
	})
}

// SetNotes sets the "notes" field.
func (u *ConsultationUpsertOne) SetNotes(v string) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdateNotes() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *ConsultationUpsertOne) ClearNotes() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *ConsultationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ConsultationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConsultationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConsultationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ConsultationUpsertOne.ID is not supported by MySQL driver. Use ConsultationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConsultationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConsultationCreateBulk is the builder for creating many Consultation entities in bulk.
type ConsultationCreateBulk struct {
	config
	err      error
	builders []*ConsultationCreate
	conflict []sql.ConflictOption
}

// Save creates the Consultation entities in the database.
func (_c *ConsultationCreateBulk) Save(ctx context.Context) ([]*Consultation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Consultation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConsultationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ConsultationCreateBulk) SaveX(ctx context.Context) []*Consultation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConsultationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConsultationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Consultation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConsultationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ConsultationCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConsultationUpsertBulk {
	_c.conflict = opts
	return &ConsultationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Consultation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConsultationCreateBulk) OnConflictColumns(columns ...string) *ConsultationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConsultationUpsertBulk{
		create: _c,
	}
}

// ConsultationUpsertBulk is the builder for "upsert"-ing
// a bulk of Consultation nodes.
type ConsultationUpsertBulk struct {
	create *ConsultationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Consultation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(consultation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConsultationUpsertBulk) UpdateNewValues() *ConsultationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(consultation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(consultation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Consultation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConsultationUpsertBulk) Ignore() *ConsultationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConsultationUpsertBulk) DoNothing() *ConsultationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConsultationCreateBulk.OnConflict
// documentation for more info.
func (u *ConsultationUpsertBulk) Update(set func(*ConsultationUpsert)) *ConsultationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConsultationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConsultationUpsertBulk) SetUpdatedAt(v time.Time) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdateUpdatedAt() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAppointmentID sets the "appointment_id" field.
func (u *ConsultationUpsertBulk) SetAppointmentID(v uuid.UUID) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetAppointmentID(v)
	})
}

// UpdateAppointmentID sets the "appointment_id" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdateAppointmentID() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateAppointmentID()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *ConsultationUpsertBulk) SetPatientID(v uuid.UUID) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdatePatientID() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdatePatientID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *ConsultationUpsertBulk) SetDoctorID(v uuid.UUID) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdateDoctorID() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateDoctorID()
	})
}

// SetReportID sets the "report_id" field.
func (u *ConsultationUpsertBulk) SetReportID(v uuid.UUID) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdateReportID() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateReportID()
	})
}

// ClearReportID clears the value of the "report_id" field.
func (u *ConsultationUpsertBulk) ClearReportID() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.ClearReportID()
	})
}

// SetRecommendationID sets the "recommendation_id" field.
func (u *ConsultationUpsertBulk) SetRecommendationID(v uuid.UUID) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetRecommendationID(v)
	})
}

// UpdateRecommendationID sets the "recommendation_id" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdateRecommendationID() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateRecommendationID()
	})
}

// ClearRecommendationID clears the value of the "recommendation_id" field.
func (u *ConsultationUpsertBulk) ClearRecommendationID() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.ClearRecommendationID()
	})
}

// SetPatientName sets the "patient_name" field.
func (u *ConsultationUpsertBulk) SetPatientName(v string) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetPatientName(v)
	})
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdatePatientName() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdatePatientName()
	})
}

// SetDoctorName sets the "doctor_name" field.
func (u *ConsultationUpsertBulk) SetDoctorName(v string) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetDoctorName(v)
	})
}

// UpdateDoctorName sets the "doctor_name" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdateDoctorName() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateDoctorName()
	})
}

// SetDate sets the "date" field.
func (u *ConsultationUpsertBulk) SetDate(v string) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdateDate() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateDate()
	})
}

// SetTime sets the "time" field.
func (u *ConsultationUpsertBulk) SetTime(v string) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetTime(v)
	})
}

// UpdateTime sets the "time" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdateTime() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateTime()
	})
}

// SetReason sets the "reason" field.
func (u *ConsultationUpsertBulk) SetReason(v string) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdateReason() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateReason()
	})
}

// SetRoomName sets the "room_name" field.
func (u *ConsultationUpsertBulk) SetRoomName(v string) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetRoomName(v)
	})
}

// UpdateRoomName sets the "room_name" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdateRoomName() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateRoomName()
	})
}

// SetRoomURL sets the "room_url" field.
func (u *ConsultationUpsertBulk) SetRoomURL(v string) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetRoomURL(v)
	})
}

// UpdateRoomURL sets the "room_url" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdateRoomURL() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateRoomURL()
	})
}

// SetStatus sets the "status" field.
func (u *ConsultationUpsertBulk) SetStatus(v consultation.Status) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdateStatus() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateStatus()
	})
}

// SetNotes sets the "notes" field.
func (u *ConsultationUpsertBulk) SetNotes(v string) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdateNotes() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *ConsultationUpsertBulk) ClearNotes() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *ConsultationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ConsultationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ConsultationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConsultationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
