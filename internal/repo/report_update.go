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
	"github.com/medimind/backend/internal/repo/report"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportUpdate) SetUpdatedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReportUpdate) SetUserID(v uuid.UUID) *ReportUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableUserID(v *uuid.UUID) *ReportUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ReportUpdate) SetFileName(v string) *ReportUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableFileName(v *string) *ReportUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ReportUpdate) SetFilePath(v string) *ReportUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableFilePath(v *string) *ReportUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *ReportUpdate) SetContentType(v string) *ReportUpdate {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableContentType(v *string) *ReportUpdate {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportUpdate) SetStatus(v report.Status) *ReportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableStatus(v *report.Status) *ReportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ReportUpdate) SetContent(v string) *ReportUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableContent(v *string) *ReportUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *ReportUpdate) ClearContent() *ReportUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *ReportUpdate) SetRiskLevel(v report.RiskLevel) *ReportUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableRiskLevel(v *report.RiskLevel) *ReportUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (_u *ReportUpdate) ClearRiskLevel() *ReportUpdate {
	_u.mutation.ClearRiskLevel()
	return _u
}

// SetHealthScore sets the "health_score" field.
func (_u *ReportUpdate) SetHealthScore(v int) *ReportUpdate {
	_u.mutation.ResetHealthScore()
	_u.mutation.SetHealthScore(v)
	return _u
}

// SetNillableHealthScore sets the "health_score" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableHealthScore(v *int) *ReportUpdate {
	if v != nil {
		_u.SetHealthScore(*v)
	}
	return _u
}

// AddHealthScore adds value to the "health_score" field.
func (_u *ReportUpdate) AddHealthScore(v int) *ReportUpdate {
	_u.mutation.AddHealthScore(v)
	return _u
}

// ClearHealthScore clears the value of the "health_score" field.
func (_u *ReportUpdate) ClearHealthScore() *ReportUpdate {
	_u.mutation.ClearHealthScore()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ReportUpdate) SetSummary(v string) *ReportUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableSummary(v *string) *ReportUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ReportUpdate) ClearSummary() *ReportUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetErrorDetail sets the "error_detail" field.
func (_u *ReportUpdate) SetErrorDetail(v string) *ReportUpdate {
	_u.mutation.SetErrorDetail(v)
	return _u
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableErrorDetail(v *string) *ReportUpdate {
	if v != nil {
		_u.SetErrorDetail(*v)
	}
	return _u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (_u *ReportUpdate) ClearErrorDetail() *ReportUpdate {
	_u.mutation.ClearErrorDetail()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ReportUpdate) SetProcessedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableProcessedAt(v *time.Time) *ReportUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ReportUpdate) ClearProcessedAt() *ReportUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdate) Mutation() *ReportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := report.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`repo: validator failed for field "Report.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := report.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`repo: validator failed for field "Report.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Report.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := report.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`repo: validator failed for field "Report.risk_level": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(report.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(report.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(report.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(report.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(report.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(report.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(report.FieldRiskLevel, field.TypeEnum, value)
	}
	if _u.mutation.RiskLevelCleared() {
		_spec.ClearField(report.FieldRiskLevel, field.TypeEnum)
	}
	if value, ok := _u.mutation.HealthScore(); ok {
		_spec.SetField(report.FieldHealthScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHealthScore(); ok {
		_spec.AddField(report.FieldHealthScore, field.TypeInt, value)
	}
	if _u.mutation.HealthScoreCleared() {
		_spec.ClearField(report.FieldHealthScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(report.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(report.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorDetail(); ok {
		_spec.SetField(report.FieldErrorDetail, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(report.FieldErrorDetail, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(report.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(report.FieldProcessedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportUpdateOne) SetUpdatedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReportUpdateOne) SetUserID(v uuid.UUID) *ReportUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableUserID(v *uuid.UUID) *ReportUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ReportUpdateOne) SetFileName(v string) *ReportUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableFileName(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *ReportUpdateOne) SetFilePath(v string) *ReportUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableFilePath(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetContentType sets the "content_type" field.
func (_u *ReportUpdateOne) SetContentType(v string) *ReportUpdateOne {
	_u.mutation.SetContentType(v)
	return _u
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableContentType(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetContentType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportUpdateOne) SetStatus(v report.Status) *ReportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableStatus(v *report.Status) *ReportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ReportUpdateOne) SetContent(v string) *ReportUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableContent(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *ReportUpdateOne) ClearContent() *ReportUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *ReportUpdateOne) SetRiskLevel(v report.RiskLevel) *ReportUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableRiskLevel(v *report.RiskLevel) *ReportUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (_u *ReportUpdateOne) ClearRiskLevel() *ReportUpdateOne {
	_u.mutation.ClearRiskLevel()
	return _u
}

// SetHealthScore sets the "health_score" field.
func (_u *ReportUpdateOne) SetHealthScore(v int) *ReportUpdateOne {
	_u.mutation.ResetHealthScore()
	_u.mutation.SetHealthScore(v)
	return _u
}

// SetNillableHealthScore sets the "health_score" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableHealthScore(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetHealthScore(*v)
	}
	return _u
}

// AddHealthScore adds value to the "health_score" field.
func (_u *ReportUpdateOne) AddHealthScore(v int) *ReportUpdateOne {
	_u.mutation.AddHealthScore(v)
	return _u
}

// ClearHealthScore clears the value of the "health_score" field.
func (_u *ReportUpdateOne) ClearHealthScore() *ReportUpdateOne {
	_u.mutation.ClearHealthScore()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ReportUpdateOne) SetSummary(v string) *ReportUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableSummary(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ReportUpdateOne) ClearSummary() *ReportUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetErrorDetail sets the "error_detail" field.
func (_u *ReportUpdateOne) SetErrorDetail(v string) *ReportUpdateOne {
	_u.mutation.SetErrorDetail(v)
	return _u
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableErrorDetail(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetErrorDetail(*v)
	}
	return _u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (_u *ReportUpdateOne) ClearErrorDetail() *ReportUpdateOne {
	_u.mutation.ClearErrorDetail()
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ReportUpdateOne) SetProcessedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableProcessedAt(v *time.Time) *ReportUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *ReportUpdateOne) ClearProcessedAt() *ReportUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdateOne) Mutation() *ReportMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Report entity.
func (_u *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := report.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`repo: validator failed for field "Report.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := report.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`repo: validator failed for field "Report.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Report.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := report.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`repo: validator failed for field "Report.risk_level": %w`, err)}
		}
	}
	return nil
}

func (_u *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != report.FieldID {
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
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(report.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(report.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(report.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentType(); ok {
		_spec.SetField(report.FieldContentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(report.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(report.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(report.FieldRiskLevel, field.TypeEnum, value)
	}
	if _u.mutation.RiskLevelCleared() {
		_spec.ClearField(report.FieldRiskLevel, field.TypeEnum)
	}
	if value, ok := _u.mutation.HealthScore(); ok {
		_spec.SetField(report.FieldHealthScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHealthScore(); ok {
		_spec.AddField(report.FieldHealthScore, field.TypeInt, value)
	}
	if _u.mutation.HealthScoreCleared() {
		_spec.ClearField(report.FieldHealthScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(report.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(report.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorDetail(); ok {
		_spec.SetField(report.FieldErrorDetail, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(report.FieldErrorDetail, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(report.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(report.FieldProcessedAt, field.TypeTime)
	}
	_node = &Report{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
