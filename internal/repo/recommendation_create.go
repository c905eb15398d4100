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
	"github.com/medimind/backend/internal/repo/recommendation"
)

// RecommendationCreate is the builder for creating a Recommendation entity.
type RecommendationCreate struct {
	config
	mutation *RecommendationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecommendationCreate) SetCreatedAt(v time.Time) *RecommendationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableCreatedAt(v *time.Time) *RecommendationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RecommendationCreate) SetUpdatedAt(v time.Time) *RecommendationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableUpdatedAt(v *time.Time) *RecommendationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *RecommendationCreate) SetPatientID(v uuid.UUID) *RecommendationCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *RecommendationCreate) SetDoctorID(v uuid.UUID) *RecommendationCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetReportID sets the "report_id" field.
func (_c *RecommendationCreate) SetReportID(v uuid.UUID) *RecommendationCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableReportID(v *uuid.UUID) *RecommendationCreate {
	if v != nil {
		_c.SetReportID(*v)
	}
	return _c
}

// SetReasonType sets the "reason_type" field.
func (_c *RecommendationCreate) SetReasonType(v recommendation.ReasonType) *RecommendationCreate {
	_c.mutation.SetReasonType(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *RecommendationCreate) SetRiskLevel(v recommendation.RiskLevel) *RecommendationCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableRiskLevel(v *recommendation.RiskLevel) *RecommendationCreate {
	if v != nil {
		_c.SetRiskLevel(*v)
	}
	return _c
}

// SetUrgency sets the "urgency" field.
func (_c *RecommendationCreate) SetUrgency(v recommendation.Urgency) *RecommendationCreate {
	_c.mutation.SetUrgency(v)
	return _c
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableUrgency(v *recommendation.Urgency) *RecommendationCreate {
	if v != nil {
		_c.SetUrgency(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *RecommendationCreate) SetSummary(v string) *RecommendationCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableSummary(v *string) *RecommendationCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetDoctorName sets the "doctor_name" field.
func (_c *RecommendationCreate) SetDoctorName(v string) *RecommendationCreate {
	_c.mutation.SetDoctorName(v)
	return _c
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableDoctorName(v *string) *RecommendationCreate {
	if v != nil {
		_c.SetDoctorName(*v)
	}
	return _c
}

// SetPatientName sets the "patient_name" field.
func (_c *RecommendationCreate) SetPatientName(v string) *RecommendationCreate {
	_c.mutation.SetPatientName(v)
	return _c
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillablePatientName(v *string) *RecommendationCreate {
	if v != nil {
		_c.SetPatientName(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RecommendationCreate) SetStatus(v recommendation.Status) *RecommendationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableStatus(v *recommendation.Status) *RecommendationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetConsultationID sets the "consultation_id" field.
func (_c *RecommendationCreate) SetConsultationID(v uuid.UUID) *RecommendationCreate {
	_c.mutation.SetConsultationID(v)
	return _c
}

// SetNillableConsultationID sets the "consultation_id" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableConsultationID(v *uuid.UUID) *RecommendationCreate {
	if v != nil {
		_c.SetConsultationID(*v)
	}
	return _c
}

// SetDismissedAt sets the "dismissed_at" field.
func (_c *RecommendationCreate) SetDismissedAt(v time.Time) *RecommendationCreate {
	_c.mutation.SetDismissedAt(v)
	return _c
}

// SetNillableDismissedAt sets the "dismissed_at" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableDismissedAt(v *time.Time) *RecommendationCreate {
	if v != nil {
		_c.SetDismissedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecommendationCreate) SetID(v uuid.UUID) *RecommendationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableID(v *uuid.UUID) *RecommendationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the RecommendationMutation object of the builder.
func (_c *RecommendationCreate) Mutation() *RecommendationMutation {
	return _c.mutation
}

// Save creates the Recommendation in the database.
func (_c *RecommendationCreate) Save(ctx context.Context) (*Recommendation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecommendationCreate) SaveX(ctx context.Context) *Recommendation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecommendationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recommendation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := recommendation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Urgency(); !ok {
		v := recommendation.DefaultUrgency
		_c.mutation.SetUrgency(v)
	}
	if _, ok := _c.mutation.Summary(); !ok {
		v := recommendation.DefaultSummary
		_c.mutation.SetSummary(v)
	}
	if _, ok := _c.mutation.DoctorName(); !ok {
		v := recommendation.DefaultDoctorName
		_c.mutation.SetDoctorName(v)
	}
	if _, ok := _c.mutation.PatientName(); !ok {
		v := recommendation.DefaultPatientName
		_c.mutation.SetPatientName(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := recommendation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := recommendation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecommendationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Recommendation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Recommendation.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Recommendation.patient_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "Recommendation.doctor_id"`)}
	}
	if _, ok := _c.mutation.ReasonType(); !ok {
		return &ValidationError{Name: "reason_type", err: errors.New(`repo: missing required field "Recommendation.reason_type"`)}
	}
	if v, ok := _c.mutation.ReasonType(); ok {
		if err := recommendation.ReasonTypeValidator(v); err != nil {
			return &ValidationError{Name: "reason_type", err: fmt.Errorf(`repo: validator failed for field "Recommendation.reason_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := recommendation.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`repo: validator failed for field "Recommendation.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Urgency(); !ok {
		return &ValidationError{Name: "urgency", err: errors.New(`repo: missing required field "Recommendation.urgency"`)}
	}
	if v, ok := _c.mutation.Urgency(); ok {
		if err := recommendation.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`repo: validator failed for field "Recommendation.urgency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`repo: missing required field "Recommendation.summary"`)}
	}
	if _, ok := _c.mutation.DoctorName(); !ok {
		return &ValidationError{Name: "doctor_name", err: errors.New(`repo: missing required field "Recommendation.doctor_name"`)}
	}
	if _, ok := _c.mutation.PatientName(); !ok {
		return &ValidationError{Name: "patient_name", err: errors.New(`repo: missing required field "Recommendation.patient_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Recommendation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := recommendation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Recommendation.status": %w`, err)}
		}
	}
	return nil
}

func (_c *RecommendationCreate) sqlSave(ctx context.Context) (*Recommendation, error) {
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

func (_c *RecommendationCreate) createSpec() (*Recommendation, *sqlgraph.CreateSpec) {
	var (
		_node = &Recommendation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recommendation.Table, sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recommendation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(recommendation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(recommendation.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(recommendation.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.ReportID(); ok {
		_spec.SetField(recommendation.FieldReportID, field.TypeUUID, value)
		_node.ReportID = &value
	}
	if value, ok := _c.mutation.ReasonType(); ok {
		_spec.SetField(recommendation.FieldReasonType, field.TypeEnum, value)
		_node.ReasonType = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(recommendation.FieldRiskLevel, field.TypeEnum, value)
		_node.RiskLevel = &value
	}
	if value, ok := _c.mutation.Urgency(); ok {
		_spec.SetField(recommendation.FieldUrgency, field.TypeEnum, value)
		_node.Urgency = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(recommendation.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.DoctorName(); ok {
		_spec.SetField(recommendation.FieldDoctorName, field.TypeString, value)
		_node.DoctorName = value
	}
	if value, ok := _c.mutation.PatientName(); ok {
		_spec.SetField(recommendation.FieldPatientName, field.TypeString, value)
		_node.PatientName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(recommendation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ConsultationID(); ok {
		_spec.SetField(recommendation.FieldConsultationID, field.TypeUUID, value)
		_node.ConsultationID = &value
	}
	if value, ok := _c.mutation.DismissedAt(); ok {
		_spec.SetField(recommendation.FieldDismissedAt, field.TypeTime, value)
		_node.DismissedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Recommendation.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RecommendationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RecommendationCreate) OnConflict(opts ...sql.ConflictOption) *RecommendationUpsertOne {
	_c.conflict = opts
	return &RecommendationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Recommendation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RecommendationCreate) OnConflictColumns(columns ...string) *RecommendationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RecommendationUpsertOne{
		create: _c,
	}
}

type (
	// RecommendationUpsertOne is the builder for "upsert"-ing
	//  one Recommendation node.
	RecommendationUpsertOne struct {
		create *RecommendationCreate
	}

	// RecommendationUpsert is the "OnConflict" setter.
	RecommendationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *RecommendationUpsert) SetUpdatedAt(v time.Time) *RecommendationUpsert {
	u.Set(recommendation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdateUpdatedAt() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *RecommendationUpsert) SetPatientID(v uuid.UUID) *RecommendationUpsert {
	u.Set(recommendation.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdatePatientID() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldPatientID)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *RecommendationUpsert) SetDoctorID(v uuid.UUID) *RecommendationUpsert {
	u.Set(recommendation.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdateDoctorID() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldDoctorID)
	return u
}

// SetReportID sets the "report_id" field.
func (u *RecommendationUpsert) SetReportID(v uuid.UUID) *RecommendationUpsert {
	u.Set(recommendation.FieldReportID, v)
	return u
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdateReportID() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldReportID)
	return u
}

// ClearReportID clears the value of the "report_id" field.
func (u *RecommendationUpsert) ClearReportID() *RecommendationUpsert {
	u.SetNull(recommendation.FieldReportID)
	return u
}

// SetReasonType sets the "reason_type" field.
func (u *RecommendationUpsert) SetReasonType(v recommendation.ReasonType) *RecommendationUpsert {
	u.Set(recommendation.FieldReasonType, v)
	return u
}

// UpdateReasonType sets the "reason_type" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdateReasonType() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldReasonType)
	return u
}

// SetRiskLevel sets the "risk_level" field.
func (u *RecommendationUpsert) SetRiskLevel(v recommendation.RiskLevel) *RecommendationUpsert {
	u.Set(recommendation.FieldRiskLevel, v)
	return u
}

// UpdateRiskLevel sets the "risk_level" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdateRiskLevel() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldRiskLevel)
	return u
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (u *RecommendationUpsert) ClearRiskLevel() *RecommendationUpsert {
	u.SetNull(recommendation.FieldRiskLevel)
	return u
}

// SetUrgency sets the "urgency" field.
func (u *RecommendationUpsert) SetUrgency(v recommendation.Urgency) *RecommendationUpsert {
	u.Set(recommendation.FieldUrgency, v)
	return u
}

// UpdateUrgency sets the "urgency" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdateUrgency() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldUrgency)
	return u
}

// SetSummary sets the "summary" field.
func (u *RecommendationUpsert) SetSummary(v string) *RecommendationUpsert {
	u.Set(recommendation.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdateSummary() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldSummary)
	return u
}

// SetDoctorName sets the "doctor_name" field.
func (u *RecommendationUpsert) SetDoctorName(v string) *RecommendationUpsert {
	u.Set(recommendation.FieldDoctorName, v)
	return u
}

// UpdateDoctorName sets the "doctor_name" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdateDoctorName() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldDoctorName)
	return u
}

// SetPatientName sets the "patient_name" field.
func (u *RecommendationUpsert) SetPatientName(v string) *RecommendationUpsert {
	u.Set(recommendation.FieldPatientName, v)
	return u
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdatePatientName() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldPatientName)
	return u
}

// SetStatus sets the "status" field.
func (u *RecommendationUpsert) SetStatus(v recommendation.Status) *RecommendationUpsert {
	u.Set(recommendation.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdateStatus() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldStatus)
	return u
}

// SetConsultationID sets the "consultation_id" field.
func (u *RecommendationUpsert) SetConsultationID(v uuid.UUID) *RecommendationUpsert {
	u.Set(recommendation.FieldConsultationID, v)
	return u
}

// UpdateConsultationID sets the "consultation_id" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdateConsultationID() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldConsultationID)
	return u
}

// ClearConsultationID clears the value of the "consultation_id" field.
func (u *RecommendationUpsert) ClearConsultationID() *RecommendationUpsert {
	u.SetNull(recommendation.FieldConsultationID)
	return u
}

// SetDismissedAt sets the "dismissed_at" field.
func (u *RecommendationUpsert) SetDismissedAt(v time.Time) *RecommendationUpsert {
	u.Set(recommendation.FieldDismissedAt, v)
	return u
}

// UpdateDismissedAt sets the "dismissed_at" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdateDismissedAt() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldDismissedAt)
	return u
}

// ClearDismissedAt clears the value of the "dismissed_at" field.
func (u *RecommendationUpsert) ClearDismissedAt() *RecommendationUpsert {
	u.SetNull(recommendation.FieldDismissedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Recommendation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(recommendation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RecommendationUpsertOne) UpdateNewValues() *RecommendationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(recommendation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(recommendation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Recommendation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RecommendationUpsertOne) Ignore() *RecommendationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RecommendationUpsertOne) DoNothing() *RecommendationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RecommendationCreate.OnConflict
// documentation for more info.
func (u *RecommendationUpsertOne) Update(set func(*RecommendationUpsert)) *RecommendationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RecommendationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RecommendationUpsertOne) SetUpdatedAt(v time.Time) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdateUpdatedAt() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *RecommendationUpsertOne) SetPatientID(v uuid.UUID) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdatePatientID() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdatePatientID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *RecommendationUpsertOne) SetDoctorID(v uuid.UUID) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdateDoctorID() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateDoctorID()
	})
}

// SetReportID sets the "report_id" field.
func (u *RecommendationUpsertOne) SetReportID(v uuid.UUID) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdateReportID() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateReportID()
	})
}

// ClearReportID clears the value of the "report_id" field.
func (u *RecommendationUpsertOne) ClearReportID() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.ClearReportID()
	})
}

// SetReasonType sets the "reason_type" field.
func (u *RecommendationUpsertOne) SetReasonType(v recommendation.ReasonType) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetReasonType(v)
	})
}

// UpdateReasonType sets the "reason_type" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdateReasonType() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateReasonType()
	})
}

// SetRiskLevel sets the "risk_level" field.
func (u *RecommendationUpsertOne) SetRiskLevel(v recommendation.RiskLevel) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetRiskLevel(v)
	})
}

// UpdateRiskLevel sets the "risk_level" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdateRiskLevel() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateRiskLevel()
	})
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (u *RecommendationUpsertOne) ClearRiskLevel() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.ClearRiskLevel()
	})
}

// SetUrgency sets the "urgency" field.
func (u *RecommendationUpsertOne) SetUrgency(v recommendation.Urgency) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetUrgency(v)
	})
}

// UpdateUrgency sets the "urgency" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdateUrgency() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateUrgency()
	})
}

// SetSummary sets the "summary" field.
func (u *RecommendationUpsertOne) SetSummary(v string) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdateSummary() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateSummary()
	})
}

// SetDoctorName sets the "doctor_name" field.
func (u *RecommendationUpsertOne) SetDoctorName(v string) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetDoctorName(v)
	})
}

// UpdateDoctorName sets the "doctor_name" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdateDoctorName() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateDoctorName()
	})
}

// SetPatientName sets the "patient_name" field.
func (u *RecommendationUpsertOne) SetPatientName(v string) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetPatientName(v)
	})
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdatePatientName() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdatePatientName()
	})
}

// SetStatus sets the "status" field.
func (u *RecommendationUpsertOne) SetStatus(v recommendation.Status) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdateStatus() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateStatus()
	})
}

// SetConsultationID sets the "consultation_id" field.
func (u *RecommendationUpsertOne) SetConsultationID(v uuid.UUID) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetConsultationID(v)
	})
}

// UpdateConsultationID sets the "consultation_id" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdateConsultationID() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateConsultationID()
	})
}

// ClearConsultationID clears the value of the "consultation_id" field.
func (u *RecommendationUpsertOne) ClearConsultationID() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.ClearConsultationID()
	})
}

// SetDismissedAt sets the "dismissed_at" field.
func (u *RecommendationUpsertOne) SetDismissedAt(v time.Time) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetDismissedAt(v)
	})
}

// UpdateDismissedAt sets the "dismissed_at" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdateDismissedAt() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateDismissedAt()
	})
}

// ClearDismissedAt clears the value of the "dismissed_at" field.
func (u *RecommendationUpsertOne) ClearDismissedAt() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.ClearDismissedAt()
	})
}

// Exec executes the query.
func (u *RecommendationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RecommendationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RecommendationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RecommendationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: RecommendationUpsertOne.ID is not supported by MySQL driver. Use RecommendationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RecommendationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RecommendationCreateBulk is the builder for creating many Recommendation entities in bulk.
type RecommendationCreateBulk struct {
	config
	err      error
	builders []*RecommendationCreate
	conflict []sql.ConflictOption
}

// Save creates the Recommendation entities in the database.
func (_c *RecommendationCreateBulk) Save(ctx context.Context) ([]*Recommendation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Recommendation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecommendationMutation)
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
func (_c *RecommendationCreateBulk) SaveX(ctx context.Context) []*Recommendation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Recommendation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RecommendationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RecommendationCreateBulk) OnConflict(opts ...sql.ConflictOption) *RecommendationUpsertBulk {
	_c.conflict = opts
	return &RecommendationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Recommendation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RecommendationCreateBulk) OnConflictColumns(columns ...string) *RecommendationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RecommendationUpsertBulk{
		create: _c,
	}
}

// RecommendationUpsertBulk is the builder for "upsert"-ing
// a bulk of Recommendation nodes.
type RecommendationUpsertBulk struct {
	create *RecommendationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Recommendation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(recommendation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RecommendationUpsertBulk) UpdateNewValues() *RecommendationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(recommendation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(recommendation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Recommendation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RecommendationUpsertBulk) Ignore() *RecommendationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RecommendationUpsertBulk) DoNothing() *RecommendationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RecommendationCreateBulk.OnConflict
// documentation for more info.
func (u *RecommendationUpsertBulk) Update(set func(*RecommendationUpsert)) *RecommendationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RecommendationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RecommendationUpsertBulk) SetUpdatedAt(v time.Time) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdateUpdatedAt() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *RecommendationUpsertBulk) SetPatientID(v uuid.UUID) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdatePatientID() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdatePatientID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *RecommendationUpsertBulk) SetDoctorID(v uuid.UUID) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdateDoctorID() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateDoctorID()
	})
}

// SetReportID sets the "report_id" field.
func (u *RecommendationUpsertBulk) SetReportID(v uuid.UUID) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetReportID(v)
	})
}

// UpdateReportID sets the "report_id" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdateReportID() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateReportID()
	})
}

// ClearReportID clears the value of the "report_id" field.
func (u *RecommendationUpsertBulk) ClearReportID() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.ClearReportID()
	})
}

// SetReasonType sets the "reason_type" field.
func (u *RecommendationUpsertBulk) SetReasonType(v recommendation.ReasonType) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetReasonType(v)
	})
}

// UpdateReasonType sets the "reason_type" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdateReasonType() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateReasonType()
	})
}

// SetRiskLevel sets the "risk_level" field.
func (u *RecommendationUpsertBulk) SetRiskLevel(v recommendation.RiskLevel) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetRiskLevel(v)
	})
}

// UpdateRiskLevel sets the "risk_level" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdateRiskLevel() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateRiskLevel()
	})
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (u *RecommendationUpsertBulk) ClearRiskLevel() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.ClearRiskLevel()
	})
}

// SetUrgency sets the "urgency" field.
func (u *RecommendationUpsertBulk) SetUrgency(v recommendation.Urgency) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetUrgency(v)
	})
}

// UpdateUrgency sets the "urgency" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdateUrgency() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateUrgency()
	})
}

// SetSummary sets the "summary" field.
func (u *RecommendationUpsertBulk) SetSummary(v string) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdateSummary() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateSummary()
	})
}

// SetDoctorName sets the "doctor_name" field.
func (u *RecommendationUpsertBulk) SetDoctorName(v string) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetDoctorName(v)
	})
}

// UpdateDoctorName sets the "doctor_name" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdateDoctorName() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateDoctorName()
	})
}

// SetPatientName sets the "patient_name" field.
func (u *RecommendationUpsertBulk) SetPatientName(v string) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetPatientName(v)
	})
}

// UpdatePatientName sets the "patient_name" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdatePatientName() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdatePatientName()
	})
}

// SetStatus sets the "status" field.
func (u *RecommendationUpsertBulk) SetStatus(v recommendation.Status) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdateStatus() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateStatus()
	})
}

// SetConsultationID sets the "consultation_id" field.
func (u *RecommendationUpsertBulk) SetConsultationID(v uuid.UUID) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetConsultationID(v)
	})
}

// UpdateConsultationID sets the "consultation_id" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdateConsultationID() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateConsultationID()
	})
}

// ClearConsultationID clears the value of the "consultation_id" field.
func (u *RecommendationUpsertBulk) ClearConsultationID() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.ClearConsultationID()
	})
}

// SetDismissedAt sets the "dismissed_at" field.
func (u *RecommendationUpsertBulk) SetDismissedAt(v time.Time) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetDismissedAt(v)
	})
}

// UpdateDismissedAt sets the "dismissed_at" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdateDismissedAt() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateDismissedAt()
	})
}

// ClearDismissedAt clears the value of the "dismissed_at" field.
func (u *RecommendationUpsertBulk) ClearDismissedAt() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.ClearDismissedAt()
	})
}

// Exec executes the query.
func (u *RecommendationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the RecommendationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RecommendationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RecommendationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
