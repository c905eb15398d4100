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
	"github.com/medimind/backend/internal/repo/report"
)

// ReportCreate is the builder for creating a Report entity.
type ReportCreate struct {
	config
	mutation *ReportMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReportCreate) SetCreatedAt(v time.Time) *ReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableCreatedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReportCreate) SetUpdatedAt(v time.Time) *ReportCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableUpdatedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ReportCreate) SetUserID(v uuid.UUID) *ReportCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *ReportCreate) SetFileName(v string) *ReportCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *ReportCreate) SetFilePath(v string) *ReportCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *ReportCreate) SetContentType(v string) *ReportCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_c *ReportCreate) SetNillableContentType(v *string) *ReportCreate {
	if v != nil {
		_c.SetContentType(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReportCreate) SetStatus(v report.Status) *ReportCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReportCreate) SetNillableStatus(v *report.Status) *ReportCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *ReportCreate) SetContent(v string) *ReportCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *ReportCreate) SetNillableContent(v *string) *ReportCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *ReportCreate) SetRiskLevel(v report.RiskLevel) *ReportCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_c *ReportCreate) SetNillableRiskLevel(v *report.RiskLevel) *ReportCreate {
	if v != nil {
		_c.SetRiskLevel(*v)
	}
	return _c
}

// SetHealthScore sets the "health_score" field.
func (_c *ReportCreate) SetHealthScore(v int) *ReportCreate {
	_c.mutation.SetHealthScore(v)
	return _c
}

// SetNillableHealthScore sets the "health_score" field if the given value is not nil.
func (_c *ReportCreate) SetNillableHealthScore(v *int) *ReportCreate {
	if v != nil {
		_c.SetHealthScore(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ReportCreate) SetSummary(v string) *ReportCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *ReportCreate) SetNillableSummary(v *string) *ReportCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetErrorDetail sets the "error_detail" field.
func (_c *ReportCreate) SetErrorDetail(v string) *ReportCreate {
	_c.mutation.SetErrorDetail(v)
	return _c
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_c *ReportCreate) SetNillableErrorDetail(v *string) *ReportCreate {
	if v != nil {
		_c.SetErrorDetail(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ReportCreate) SetProcessedAt(v time.Time) *ReportCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ReportCreate) SetNillableProcessedAt(v *time.Time) *ReportCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReportCreate) SetID(v uuid.UUID) *ReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReportCreate) SetNillableID(v *uuid.UUID) *ReportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ReportMutation object of the builder.
func (_c *ReportCreate) Mutation() *ReportMutation {
	return _c.mutation
}

// Save creates the Report in the database.
func (_c *ReportCreate) Save(ctx context.Context) (*Report, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportCreate) SaveX(ctx context.Context) *Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := report.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := report.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		v := report.DefaultContentType
		_c.mutation.SetContentType(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := report.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := report.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Report.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Report.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "Report.user_id"`)}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`repo: missing required field "Report.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := report.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`repo: validator failed for field "Report.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`repo: missing required field "Report.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := report.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`repo: validator failed for field "Report.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentType(); !ok {
		return &ValidationError{Name: "content_type", err: errors.New(`repo: missing required field "Report.content_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Report.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Report.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := report.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`repo: validator failed for field "Report.risk_level": %w`, err)}
		}
	}
	return nil
}

func (_c *ReportCreate) sqlSave(ctx context.Context) (*Report, error) {
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

func (_c *ReportCreate) createSpec() (*Report, *sqlgraph.CreateSpec) {
	var (
		_node = &Report{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(report.Table, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(report.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(report.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(report.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(report.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(report.FieldContent, field.TypeString, value)
		_node.Content = &value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(report.FieldRiskLevel, field.TypeEnum, value)
		_node.RiskLevel = &value
	}
	if value, ok := _c.mutation.HealthScore(); ok {
		_spec.SetField(report.FieldHealthScore, field.TypeInt, value)
		_node.HealthScore = &value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(report.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.ErrorDetail(); ok {
		_spec.SetField(report.FieldErrorDetail, field.TypeString, value)
		_node.ErrorDetail = &value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(report.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Report.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportCreate) OnConflict(opts ...sql.ConflictOption) *ReportUpsertOne {
	_c.conflict = opts
	return &ReportUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportCreate) OnConflictColumns(columns ...string) *ReportUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportUpsertOne{
		create: _c,
	}
}

type (
	// ReportUpsertOne is the builder for "upsert"-ing
	//  one Report node.
	ReportUpsertOne struct {
		create *ReportCreate
	}

	// ReportUpsert is the "OnConflict" setter.
	ReportUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ReportUpsert) SetUpdatedAt(v time.Time) *ReportUpsert {
	u.Set(report.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReportUpsert) UpdateUpdatedAt() *ReportUpsert {
	u.SetExcluded(report.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *ReportUpsert) SetUserID(v uuid.UUID) *ReportUpsert {
	u.Set(report.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ReportUpsert) UpdateUserID() *ReportUpsert {
	u.SetExcluded(report.FieldUserID)
	return u
}

// SetFileName sets the "file_name" field.
func (u *ReportUpsert) SetFileName(v string) *ReportUpsert {
	u.Set(report.FieldFileName, v)
	return u
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *ReportUpsert) UpdateFileName() *ReportUpsert {
	u.SetExcluded(report.FieldFileName)
	return u
}

// SetFilePath sets the "file_path" field.
func (u *ReportUpsert) SetFilePath(v string) *ReportUpsert {
	u.Set(report.FieldFilePath, v)
	return u
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *ReportUpsert) UpdateFilePath() *ReportUpsert {
	u.SetExcluded(report.FieldFilePath)
	return u
}

// SetContentType sets the "content_type" field.
func (u *ReportUpsert) SetContentType(v string) *ReportUpsert {
	u.Set(report.FieldContentType, v)
	return u
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *ReportUpsert) UpdateContentType() *ReportUpsert {
	u.SetExcluded(report.FieldContentType)
	return u
}

// SetStatus sets the "status" field.
func (u *ReportUpsert) SetStatus(v report.Status) *ReportUpsert {
	u.Set(report.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReportUpsert) UpdateStatus() *ReportUpsert {
	u.SetExcluded(report.FieldStatus)
	return u
}

// SetContent sets the "content" field.
func (u *ReportUpsert) SetContent(v string) *ReportUpsert {
	u.Set(report.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ReportUpsert) UpdateContent() *ReportUpsert {
	u.SetExcluded(report.FieldContent)
	return u
}

// ClearContent clears the value of the "content" field.
func (u *ReportUpsert) ClearContent() *ReportUpsert {
	u.SetNull(report.FieldContent)
	return u
}

// SetRiskLevel sets the "risk_level" field.
func (u *ReportUpsert) SetRiskLevel(v report.RiskLevel) *ReportUpsert {
	u.Set(report.FieldRiskLevel, v)
	return u
}

// UpdateRiskLevel sets the "risk_level" field to the value that was provided on create.
func (u *ReportUpsert) UpdateRiskLevel() *ReportUpsert {
	u.SetExcluded(report.FieldRiskLevel)
	return u
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (u *ReportUpsert) ClearRiskLevel() *ReportUpsert {
	u.SetNull(report.FieldRiskLevel)
	return u
}

// SetHealthScore sets the "health_score" field.
func (u *ReportUpsert) SetHealthScore(v int) *ReportUpsert {
	u.Set(report.FieldHealthScore, v)
	return u
}

// UpdateHealthScore sets the "health_score" field to the value that was provided on create.
func (u *ReportUpsert) UpdateHealthScore() *ReportUpsert {
	u.SetExcluded(report.FieldHealthScore)
	return u
}

// AddHealthScore adds v to the "health_score" field.
func (u *ReportUpsert) AddHealthScore(v int) *ReportUpsert {
	u.Add(report.FieldHealthScore, v)
	return u
}

// ClearHealthScore clears the value of the "health_score" field.
func (u *ReportUpsert) ClearHealthScore() *ReportUpsert {
	u.SetNull(report.FieldHealthScore)
	return u
}

// SetSummary sets the "summary" field.
func (u *ReportUpsert) SetSummary(v string) *ReportUpsert {
	u.Set(report.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ReportUpsert) UpdateSummary() *ReportUpsert {
	u.SetExcluded(report.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *ReportUpsert) ClearSummary() *ReportUpsert {
	u.SetNull(report.FieldSummary)
	return u
}

// SetErrorDetail sets the "error_detail" field.
func (u *ReportUpsert) SetErrorDetail(v string) *ReportUpsert {
	u.Set(report.FieldErrorDetail, v)
	return u
}

// UpdateErrorDetail sets the "error_detail" field to the value that was provided on create.
func (u *ReportUpsert) UpdateErrorDetail() *ReportUpsert {
	u.SetExcluded(report.FieldErrorDetail)
	return u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (u *ReportUpsert) ClearErrorDetail() *ReportUpsert {
	u.SetNull(report.FieldErrorDetail)
	return u
}

// SetProcessedAt sets the "processed_at" field.
func (u *ReportUpsert) SetProcessedAt(v time.Time) *ReportUpsert {
	u.Set(report.FieldProcessedAt, v)
	return u
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *ReportUpsert) UpdateProcessedAt() *ReportUpsert {
	u.SetExcluded(report.FieldProcessedAt)
	return u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *ReportUpsert) ClearProcessedAt() *ReportUpsert {
	u.SetNull(report.FieldProcessedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(report.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportUpsertOne) UpdateNewValues() *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(report.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(report.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Report.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReportUpsertOne) Ignore() *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportUpsertOne) DoNothing() *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportCreate.OnConflict
// documentation for more info.
func (u *ReportUpsertOne) Update(set func(*ReportUpsert)) *ReportUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReportUpsertOne) SetUpdatedAt(v time.Time) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateUpdatedAt() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *ReportUpsertOne) SetUserID(v uuid.UUID) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateUserID() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateUserID()
	})
}

// SetFileName sets the "file_name" field.
func (u *ReportUpsertOne) SetFileName(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateFileName() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateFileName()
	})
}

// SetFilePath sets the "file_path" field.
func (u *ReportUpsertOne) SetFilePath(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetFilePath(v)
	})
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateFilePath() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateFilePath()
	})
}

// SetContentType sets the "content_type" field.
func (u *ReportUpsertOne) SetContentType(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateContentType() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateContentType()
	})
}

// SetStatus sets the "status" field.
func (u *ReportUpsertOne) SetStatus(v report.Status) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateStatus() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateStatus()
	})
}

// SetContent sets the "content" field.
func (u *ReportUpsertOne) SetContent(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateContent() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *ReportUpsertOne) ClearContent() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearContent()
	})
}

// SetRiskLevel sets the "risk_level" field.
func (u *ReportUpsertOne) SetRiskLevel(v report.RiskLevel) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetRiskLevel(v)
	})
}

// UpdateRiskLevel sets the "risk_level" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateRiskLevel() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateRiskLevel()
	})
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (u *ReportUpsertOne) ClearRiskLevel() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearRiskLevel()
	})
}

// SetHealthScore sets the "health_score" field.
func (u *ReportUpsertOne) SetHealthScore(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetHealthScore(v)
	})
}

// AddHealthScore adds v to the "health_score" field.
func (u *ReportUpsertOne) AddHealthScore(v int) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.AddHealthScore(v)
	})
}

// UpdateHealthScore sets the "health_score" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateHealthScore() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateHealthScore()
	})
}

// ClearHealthScore clears the value of the "health_score" field.
func (u *ReportUpsertOne) ClearHealthScore() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearHealthScore()
	})
}

// SetSummary sets the "summary" field.
func (u *ReportUpsertOne) SetSummary(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateSummary() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *ReportUpsertOne) ClearSummary() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearSummary()
	})
}

// SetErrorDetail sets the "error_detail" field.
func (u *ReportUpsertOne) SetErrorDetail(v string) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetErrorDetail(v)
	})
}

// UpdateErrorDetail sets the "error_detail" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateErrorDetail() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateErrorDetail()
	})
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (u *ReportUpsertOne) ClearErrorDetail() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearErrorDetail()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *ReportUpsertOne) SetProcessedAt(v time.Time) *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *ReportUpsertOne) UpdateProcessedAt() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *ReportUpsertOne) ClearProcessedAt() *ReportUpsertOne {
	return u.Update(func(s *ReportUpsert) {
		s.ClearProcessedAt()
	})
}

// Exec executes the query.
func (u *ReportUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ReportCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReportUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ReportUpsertOne.ID is not supported by MySQL driver. Use ReportUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReportUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReportCreateBulk is the builder for creating many Report entities in bulk.
type ReportCreateBulk struct {
	config
	err      error
	builders []*ReportCreate
	conflict []sql.ConflictOption
}

// Save creates the Report entities in the database.
func (_c *ReportCreateBulk) Save(ctx context.Context) ([]*Report, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Report, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportMutation)
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
func (_c *ReportCreateBulk) SaveX(ctx context.Context) []*Report {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Report.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReportUpsertBulk {
	_c.conflict = opts
	return &ReportUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportCreateBulk) OnConflictColumns(columns ...string) *ReportUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportUpsertBulk{
		create: _c,
	}
}

// ReportUpsertBulk is the builder for "upsert"-ing
// a bulk of Report nodes.
type ReportUpsertBulk struct {
	create *ReportCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(report.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportUpsertBulk) UpdateNewValues() *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(report.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(report.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Report.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReportUpsertBulk) Ignore() *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportUpsertBulk) DoNothing() *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportCreateBulk.OnConflict
// documentation for more info.
func (u *ReportUpsertBulk) Update(set func(*ReportUpsert)) *ReportUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ReportUpsertBulk) SetUpdatedAt(v time.Time) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateUpdatedAt() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *ReportUpsertBulk) SetUserID(v uuid.UUID) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateUserID() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateUserID()
	})
}

// SetFileName sets the "file_name" field.
func (u *ReportUpsertBulk) SetFileName(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateFileName() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateFileName()
	})
}

// SetFilePath sets the "file_path" field.
func (u *ReportUpsertBulk) SetFilePath(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetFilePath(v)
	})
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateFilePath() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateFilePath()
	})
}

// SetContentType sets the "content_type" field.
func (u *ReportUpsertBulk) SetContentType(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateContentType() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateContentType()
	})
}

// SetStatus sets the "status" field.
func (u *ReportUpsertBulk) SetStatus(v report.Status) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateStatus() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateStatus()
	})
}

// SetContent sets the "content" field.
func (u *ReportUpsertBulk) SetContent(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateContent() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *ReportUpsertBulk) ClearContent() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearContent()
	})
}

// SetRiskLevel sets the "risk_level" field.
func (u *ReportUpsertBulk) SetRiskLevel(v report.RiskLevel) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetRiskLevel(v)
	})
}

// UpdateRiskLevel sets the "risk_level" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateRiskLevel() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateRiskLevel()
	})
}

// ClearRiskLevel clears the value of the "risk_level" field.
func (u *ReportUpsertBulk) ClearRiskLevel() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearRiskLevel()
	})
}

// SetHealthScore sets the "health_score" field.
func (u *ReportUpsertBulk) SetHealthScore(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetHealthScore(v)
	})
}

// AddHealthScore adds v to the "health_score" field.
func (u *ReportUpsertBulk) AddHealthScore(v int) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.AddHealthScore(v)
	})
}

// UpdateHealthScore sets the "health_score" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateHealthScore() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateHealthScore()
	})
}

// ClearHealthScore clears the value of the "health_score" field.
func (u *ReportUpsertBulk) ClearHealthScore() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearHealthScore()
	})
}

// SetSummary sets the "summary" field.
func (u *ReportUpsertBulk) SetSummary(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateSummary() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *ReportUpsertBulk) ClearSummary() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearSummary()
	})
}

// SetErrorDetail sets the "error_detail" field.
func (u *ReportUpsertBulk) SetErrorDetail(v string) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetErrorDetail(v)
	})
}

// UpdateErrorDetail sets the "error_detail" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateErrorDetail() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateErrorDetail()
	})
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (u *ReportUpsertBulk) ClearErrorDetail() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearErrorDetail()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *ReportUpsertBulk) SetProcessedAt(v time.Time) *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *ReportUpsertBulk) UpdateProcessedAt() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *ReportUpsertBulk) ClearProcessedAt() *ReportUpsertBulk {
	return u.Update(func(s *ReportUpsert) {
		s.ClearProcessedAt()
	})
}

// Exec executes the query.
func (u *ReportUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ReportCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ReportCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
