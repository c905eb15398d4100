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
	"github.com/medimind/backend/internal/repo/predicate"
	"github.com/medimind/backend/internal/repo/recommendation"
)

// RecommendationUpdate is the builder for updating Recommendation entities.
type RecommendationUpdate struct {
	config
	hooks    []Hook
	mutation *RecommendationMutation
}

// Where appends a list predicates to the RecommendationUpdate builder.
func (_u *RecommendationUpdate) Where(ps ...predicate.Recommendation) *RecommendationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecommendationUpdate) SetUpdatedAt(v time.Time) *RecommendationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *RecommendationUpdate) SetPatientID(v uuid.UUID) *RecommendationUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillablePatientID(v *uuid.UUID) *RecommendationUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *RecommendationUpdate) SetDoctorID(v uuid.UUID) *RecommendationUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableDoctorID(v *uuid.UUID) *RecommendationUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *RecommendationUpdate) SetReportID(v uuid.UUID) *RecommendationUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableReportID(v *uuid.UUID) *RecommendationUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// ClearReportID clears the value of the "report_id" field.
func (_u *RecommendationUpdate) ClearReportID() *RecommendationUpdate {
	_u.mutation.ClearReportID()
	return _u
}

// SetReasonType sets the "reason_type" field.
func (_u *RecommendationUpdate) SetReasonType(v recommendation.ReasonType) *RecommendationUpdate {
	_u.mutation.SetReasonType(v)
	return _u
}

// SetNillableReasonType sets the "reason_type" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableReasonType(v *recommendation.ReasonType) *RecommendationUpdate {
	if v != nil {
		_u.SetReasonType(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *RecommendationUpdate) SetRiskLevel(v recommendation.RiskLevel) *RecommendationUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableRiskLevel(v *recommendation.RiskLevel) *RecommendationUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (_u *RecommendationUpdate) ClearRiskLevel() *RecommendationUpdate {
	_u.mutation.ClearRiskLevel()
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *RecommendationUpdate) SetUrgency(v recommendation.Urgency) *RecommendationUpdate {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableUrgency(v *recommendation.Urgency) *RecommendationUpdate {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *RecommendationUpdate) SetSummary(v string) *RecommendationUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableSummary(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetDoctorName sets the "doctor_name" field.
func (_u *RecommendationUpdate) SetDoctorName(v string) *RecommendationUpdate {
	_u.mutation.SetDoctorName(v)
	return _u
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableDoctorName(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetDoctorName(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *RecommendationUpdate) SetPatientName(v string) *RecommendationUpdate {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillablePatientName(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecommendationUpdate) SetStatus(v recommendation.Status) *RecommendationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableStatus(v *recommendation.Status) *RecommendationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConsultationID sets the "consultation_id" field.
func (_u *RecommendationUpdate) SetConsultationID(v uuid.UUID) *RecommendationUpdate {
	_u.mutation.SetConsultationID(v)
	return _u
}

// SetNillableConsultationID sets the "consultation_id" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableConsultationID(v *uuid.UUID) *RecommendationUpdate {
	if v != nil {
		_u.SetConsultationID(*v)
	}
	return _u
}

// ClearConsultationID clears the value of the "consultation_id" field.
func (_u *RecommendationUpdate) ClearConsultationID() *RecommendationUpdate {
	_u.mutation.ClearConsultationID()
	return _u
}

// SetDismissedAt sets the "dismissed_at" field.
func (_u *RecommendationUpdate) SetDismissedAt(v time.Time) *RecommendationUpdate {
	_u.mutation.SetDismissedAt(v)
	return _u
}

// SetNillableDismissedAt sets the "dismissed_at" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableDismissedAt(v *time.Time) *RecommendationUpdate {
	if v != nil {
		_u.SetDismissedAt(*v)
	}
	return _u
}

// ClearDismissedAt clears the value of the "dismissed_at" field.
func (_u *RecommendationUpdate) ClearDismissedAt() *RecommendationUpdate {
	_u.mutation.ClearDismissedAt()
	return _u
}

// Mutation returns the RecommendationMutation object of the builder.
func (_u *RecommendationUpdate) Mutation() *RecommendationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecommendationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecommendationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecommendationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recommendation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationUpdate) check() error {
	if v, ok := _u.mutation.ReasonType(); ok {
		if err := recommendation.ReasonTypeValidator(v); err != nil {
			return &ValidationError{Name: "reason_type", err: fmt.Errorf(`repo: validator failed for field "Recommendation.reason_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := recommendation.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`repo: validator failed for field "Recommendation.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Urgency(); ok {
		if err := recommendation.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`repo: validator failed for field "Recommendation.urgency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := recommendation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Recommendation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RecommendationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendation.Table, recommendation.Columns, sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recommendation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(recommendation.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(recommendation.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(recommendation.FieldReportID, field.TypeUUID, value)
	}
	if _u.mutation.ReportIDCleared() {
		_spec.ClearField(recommendation.FieldReportID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ReasonType(); ok {
		_spec.SetField(recommendation.FieldReasonType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(recommendation.FieldRiskLevel, field.TypeEnum, value)
	}
	if _u.mutation.RiskLevelCleared() {
		_spec.ClearField(recommendation.FieldRiskLevel, field.TypeEnum)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(recommendation.FieldUrgency, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(recommendation.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.DoctorName(); ok {
		_spec.SetField(recommendation.FieldDoctorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(recommendation.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recommendation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConsultationID(); ok {
		_spec.SetField(recommendation.FieldConsultationID, field.TypeUUID, value)
	}
	if _u.mutation.ConsultationIDCleared() {
		_spec.ClearField(recommendation.FieldConsultationID, field.TypeUUID)
	}
	if value, ok := _u.mutation.DismissedAt(); ok {
		_spec.SetField(recommendation.FieldDismissedAt, field.TypeTime, value)
	}
	if _u.mutation.DismissedAtCleared() {
		_spec.ClearField(recommendation.FieldDismissedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecommendationUpdateOne is the builder for updating a single Recommendation entity.
type RecommendationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecommendationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecommendationUpdateOne) SetUpdatedAt(v time.Time) *RecommendationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *RecommendationUpdateOne) SetPatientID(v uuid.UUID) *RecommendationUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillablePatientID(v *uuid.UUID) *RecommendationUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *RecommendationUpdateOne) SetDoctorID(v uuid.UUID) *RecommendationUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableDoctorID(v *uuid.UUID) *RecommendationUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *RecommendationUpdateOne) SetReportID(v uuid.UUID) *RecommendationUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableReportID(v *uuid.UUID) *RecommendationUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// ClearReportID clears the value of the "report_id" field.
func (_u *RecommendationUpdateOne) ClearReportID() *RecommendationUpdateOne {
	_u.mutation.ClearReportID()
	return _u
}

// SetReasonType sets the "reason_type" field.
func (_u *RecommendationUpdateOne) SetReasonType(v recommendation.ReasonType) *RecommendationUpdateOne {
	_u.mutation.SetReasonType(v)
	return _u
}

// SetNillableReasonType sets the "reason_type" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableReasonType(v *recommendation.ReasonType) *RecommendationUpdateOne {
	if v != nil {
		_u.SetReasonType(*v)
	}
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *RecommendationUpdateOne) SetRiskLevel(v recommendation.RiskLevel) *RecommendationUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableRiskLevel(v *recommendation.RiskLevel) *RecommendationUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (_u *RecommendationUpdateOne) ClearRiskLevel() *RecommendationUpdateOne {
	_u.mutation.ClearRiskLevel()
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *RecommendationUpdateOne) SetUrgency(v recommendation.Urgency) *RecommendationUpdateOne {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableUrgency(v *recommendation.Urgency) *RecommendationUpdateOne {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *RecommendationUpdateOne) SetSummary(v string) *RecommendationUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableSummary(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetDoctorName sets the "doctor_name" field.
func (_u *RecommendationUpdateOne) SetDoctorName(v string) *RecommendationUpdateOne {
	_u.mutation.SetDoctorName(v)
	return _u
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableDoctorName(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetDoctorName(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *RecommendationUpdateOne) SetPatientName(v string) *RecommendationUpdateOne {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillablePatientName(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecommendationUpdateOne) SetStatus(v recommendation.Status) *RecommendationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableStatus(v *recommendation.Status) *RecommendationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetConsultationID sets the "consultation_id" field.
func (_u *RecommendationUpdateOne) SetConsultationID(v uuid.UUID) *RecommendationUpdateOne {
	_u.mutation.SetConsultationID(v)
	return _u
}

// SetNillableConsultationID sets the "consultation_id" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableConsultationID(v *uuid.UUID) *RecommendationUpdateOne {
	if v != nil {
		_u.SetConsultationID(*v)
	}
	return _u
}

// ClearConsultationID clears the value of the "consultation_id" field.
func (_u *RecommendationUpdateOne) ClearConsultationID() *RecommendationUpdateOne {
	_u.mutation.ClearConsultationID()
	return _u
}

// SetDismissedAt sets the "dismissed_at" field.
func (_u *RecommendationUpdateOne) SetDismissedAt(v time.Time) *RecommendationUpdateOne {
	_u.mutation.SetDismissedAt(v)
	return _u
}

// SetNillableDismissedAt sets the "dismissed_at" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableDismissedAt(v *time.Time) *RecommendationUpdateOne {
	if v != nil {
		_u.SetDismissedAt(*v)
	}
	return _u
}

// ClearDismissedAt clears the value of the "dismissed_at" field.
func (_u *RecommendationUpdateOne) ClearDismissedAt() *RecommendationUpdateOne {
	_u.mutation.ClearDismissedAt()
	return _u
}

// Mutation returns the RecommendationMutation object of the builder.
func (_u *RecommendationUpdateOne) Mutation() *RecommendationMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecommendationUpdate builder.
func (_u *RecommendationUpdateOne) Where(ps ...predicate.Recommendation) *RecommendationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecommendationUpdateOne) Select(field string, fields ...string) *RecommendationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Recommendation entity.
func (_u *RecommendationUpdateOne) Save(ctx context.Context) (*Recommendation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationUpdateOne) SaveX(ctx context.Context) *Recommendation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecommendationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecommendationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recommendation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationUpdateOne) check() error {
	if v, ok := _u.mutation.ReasonType(); ok {
		if err := recommendation.ReasonTypeValidator(v); err != nil {
			return &ValidationError{Name: "reason_type", err: fmt.Errorf(`repo: validator failed for field "Recommendation.reason_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := recommendation.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`repo: validator failed for field "Recommendation.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Urgency(); ok {
		if err := recommendation.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`repo: validator failed for field "Recommendation.urgency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := recommendation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Recommendation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RecommendationUpdateOne) sqlSave(ctx context.Context) (_node *Recommendation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendation.Table, recommendation.Columns, sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Recommendation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recommendation.FieldID)
		for _, f := range fields {
			if !recommendation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != recommendation.FieldID {
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
		_spec.SetField(recommendation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(recommendation.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(recommendation.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(recommendation.FieldReportID, field.TypeUUID, value)
	}
	if _u.mutation.ReportIDCleared() {
		_spec.ClearField(recommendation.FieldReportID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ReasonType(); ok {
		_spec.SetField(recommendation.FieldReasonType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(recommendation.FieldRiskLevel, field.TypeEnum, value)
	}
	if _u.mutation.RiskLevelCleared() {
		_spec.ClearField(recommendation.FieldRiskLevel, field.TypeEnum)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(recommendation.FieldUrgency, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(recommendation.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.DoctorName(); ok {
		_spec.SetField(recommendation.FieldDoctorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(recommendation.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recommendation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ConsultationID(); ok {
		_spec.SetField(recommendation.FieldConsultationID, field.TypeUUID, value)
	}
	if _u.mutation.ConsultationIDCleared() {
		_spec.ClearField(recommendation.FieldConsultationID, field.TypeUUID)
	}
	if value, ok := _u.mutation.DismissedAt(); ok {
		_spec.SetField(recommendation.FieldDismissedAt, field.TypeTime, value)
	}
	if _u.mutation.DismissedAtCleared() {
		_spec.ClearField(recommendation.FieldDismissedAt, field.TypeTime)
	}
	_node = &Recommendation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
