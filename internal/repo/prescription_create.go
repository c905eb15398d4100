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
	"github.com/medimind/backend/internal/repo/prescription"
)

// PrescriptionCreate is the builder for creating a Prescription entity.
type PrescriptionCreate struct {
	config
	mutation *PrescriptionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PrescriptionCreate) SetCreatedAt(v time.Time) *PrescriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableCreatedAt(v *time.Time) *PrescriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PrescriptionCreate) SetUpdatedAt(v time.Time) *PrescriptionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableUpdatedAt(v *time.Time) *PrescriptionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PrescriptionCreate) SetPatientID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *PrescriptionCreate) SetDoctorID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetDoctorName sets the "doctor_name" field.
func (_c *PrescriptionCreate) SetDoctorName(v string) *PrescriptionCreate {
	_c.mutation.SetDoctorName(v)
	return _c
}

// SetNillableDoctorName sets the "doctor_name" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableDoctorName(v *string) *PrescriptionCreate {
	if v != nil {
		_c.SetDoctorName(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *PrescriptionCreate) SetTitle(v string) *PrescriptionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetMedicineSummary sets the "medicine_summary" field.
func (_c *PrescriptionCreate) SetMedicineSummary(v string) *PrescriptionCreate {
	_c.mutation.SetMedicineSummary(v)
	return _c
}

// SetNillableMedicineSummary sets the "medicine_summary" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableMedicineSummary(v *string) *PrescriptionCreate {
	if v != nil {
		_c.SetMedicineSummary(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *PrescriptionCreate) SetNotes(v string) *PrescriptionCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableNotes(v *string) *PrescriptionCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetPrescribedAt sets the "prescribed_at" field.
func (_c *PrescriptionCreate) SetPrescribedAt(v time.Time) *PrescriptionCreate {
	_c.mutation.SetPrescribedAt(v)
	return _c
}

// SetNillablePrescribedAt sets the "prescribed_at" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillablePrescribedAt(v *time.Time) *PrescriptionCreate {
	if v != nil {
		_c.SetPrescribedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PrescriptionCreate) SetID(v uuid.UUID) *PrescriptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PrescriptionCreate) SetNillableID(v *uuid.UUID) *PrescriptionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_c *PrescriptionCreate) Mutation() *PrescriptionMutation {
	return _c.mutation
}

// Save creates the Prescription in the database.
func (_c *PrescriptionCreate) Save(ctx context.Context) (*Prescription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PrescriptionCreate) SaveX(ctx context.Context) *Prescription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrescriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrescriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PrescriptionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prescription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := prescription.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.DoctorName(); !ok {
		v := prescription.DefaultDoctorName
		_c.mutation.SetDoctorName(v)
	}
	if _, ok := _c.mutation.MedicineSummary(); !ok {
		v := prescription.DefaultMedicineSummary
		_c.mutation.SetMedicineSummary(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := prescription.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PrescriptionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Prescription.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Prescription.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "Prescription.patient_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "Prescription.doctor_id"`)}
	}
	if _, ok := _c.mutation.DoctorName(); !ok {
		return &ValidationError{Name: "doctor_name", err: errors.New(`repo: missing required field "Prescription.doctor_name"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`repo: missing required field "Prescription.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := prescription.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Prescription.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MedicineSummary(); !ok {
		return &ValidationError{Name: "medicine_summary", err: errors.New(`repo: missing required field "Prescription.medicine_summary"`)}
	}
	return nil
}

func (_c *PrescriptionCreate) sqlSave(ctx context.Context) (*Prescription, error) {
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

func (_c *PrescriptionCreate) createSpec() (*Prescription, *sqlgraph.CreateSpec) {
	var (
		_node = &Prescription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prescription.Table, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prescription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(prescription.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(prescription.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(prescription.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.DoctorName(); ok {
		_spec.SetField(prescription.FieldDoctorName, field.TypeString, value)
		_node.DoctorName = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(prescription.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.MedicineSummary(); ok {
		_spec.SetField(prescription.FieldMedicineSummary, field.TypeString, value)
		_node.MedicineSummary = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(prescription.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.PrescribedAt(); ok {
		_spec.SetField(prescription.FieldPrescribedAt, field.TypeTime, value)
		_node.PrescribedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Prescription.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PrescriptionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PrescriptionCreate) OnConflict(opts ...sql.ConflictOption) *PrescriptionUpsertOne {
	_c.conflict = opts
	return &PrescriptionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PrescriptionCreate) OnConflictColumns(columns ...string) *PrescriptionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PrescriptionUpsertOne{
		create: _c,
	}
}

type (
	// PrescriptionUpsertOne is the builder for "upsert"-ing
	//  one Prescription node.
	PrescriptionUpsertOne struct {
		create *PrescriptionCreate
	}

	// PrescriptionUpsert is the "OnConflict" setter.
	PrescriptionUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PrescriptionUpsert) SetUpdatedAt(v time.Time) *PrescriptionUpsert {
	u.Set(prescription.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateUpdatedAt() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PrescriptionUpsert) SetPatientID(v uuid.UUID) *PrescriptionUpsert {
	u.Set(prescription.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdatePatientID() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldPatientID)
	return u
}

// SetDoctorID sets the "doctor_id" field.
func (u *PrescriptionUpsert) SetDoctorID(v uuid.UUID) *PrescriptionUpsert {
	u.Set(prescription.FieldDoctorID, v)
	return u
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateDoctorID() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldDoctorID)
	return u
}

// SetDoctorName sets the "doctor_name" field.
func (u *PrescriptionUpsert) SetDoctorName(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldDoctorName, v)
	return u
}

// UpdateDoctorName sets the "doctor_name" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateDoctorName() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldDoctorName)
	return u
}

// SetTitle sets the "title" field.
func (u *PrescriptionUpsert) SetTitle(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateTitle() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldTitle)
	return u
}

// SetMedicineSummary sets the "medicine_summary" field.
func (u *PrescriptionUpsert) SetMedicineSummary(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldMedicineSummary, v)
	return u
}

// UpdateMedicineSummary sets the "medicine_summary" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateMedicineSummary() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldMedicineSummary)
	return u
}

// SetNotes sets the "notes" field.
func (u *PrescriptionUpsert) SetNotes(v string) *PrescriptionUpsert {
	u.Set(prescription.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdateNotes() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *PrescriptionUpsert) ClearNotes() *PrescriptionUpsert {
	u.SetNull(prescription.FieldNotes)
	return u
}

// SetPrescribedAt sets the "prescribed_at" field.
func (u *PrescriptionUpsert) SetPrescribedAt(v time.Time) *PrescriptionUpsert {
	u.Set(prescription.FieldPrescribedAt, v)
	return u
}

// UpdatePrescribedAt sets the "prescribed_at" field to the value that was provided on create.
func (u *PrescriptionUpsert) UpdatePrescribedAt() *PrescriptionUpsert {
	u.SetExcluded(prescription.FieldPrescribedAt)
	return u
}

// ClearPrescribedAt clears the value of the "prescribed_at" field.
func (u *PrescriptionUpsert) ClearPrescribedAt() *PrescriptionUpsert {
	u.SetNull(prescription.FieldPrescribedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prescription.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PrescriptionUpsertOne) UpdateNewValues() *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(prescription.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(prescription.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Prescription.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PrescriptionUpsertOne) Ignore() *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PrescriptionUpsertOne) DoNothing() *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PrescriptionCreate.OnConflict
// documentation for more info.
func (u *PrescriptionUpsertOne) Update(set func(*PrescriptionUpsert)) *PrescriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PrescriptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PrescriptionUpsertOne) SetUpdatedAt(v time.Time) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateUpdatedAt() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PrescriptionUpsertOne) SetPatientID(v uuid.UUID) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdatePatientID() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePatientID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *PrescriptionUpsertOne) SetDoctorID(v uuid.UUID) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateDoctorID() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDoctorID()
	})
}

// SetDoctorName sets the "doctor_name" field.
func (u *PrescriptionUpsertOne) SetDoctorName(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDoctorName(v)
	})
}

// UpdateDoctorName sets the "doctor_name" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateDoctorName() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDoctorName()
	})
}

// SetTitle sets the "title" field.
func (u *PrescriptionUpsertOne) SetTitle(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateTitle() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateTitle()
	})
}

// SetMedicineSummary sets the "medicine_summary" field.
func (u *PrescriptionUpsertOne) SetMedicineSummary(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetMedicineSummary(v)
	})
}

// UpdateMedicineSummary sets the "medicine_summary" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateMedicineSummary() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateMedicineSummary()
	})
}

// SetNotes sets the "notes" field.
func (u *PrescriptionUpsertOne) SetNotes(v string) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdateNotes() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PrescriptionUpsertOne) ClearNotes() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearNotes()
	})
}

// SetPrescribedAt sets the "prescribed_at" field.
func (u *PrescriptionUpsertOne) SetPrescribedAt(v time.Time) *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPrescribedAt(v)
	})
}

// UpdatePrescribedAt sets the "prescribed_at" field to the value that was provided on create.
func (u *PrescriptionUpsertOne) UpdatePrescribedAt() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePrescribedAt()
	})
}

// ClearPrescribedAt clears the value of the "prescribed_at" field.
func (u *PrescriptionUpsertOne) ClearPrescribedAt() *PrescriptionUpsertOne {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearPrescribedAt()
	})
}

// Exec executes the query.
func (u *PrescriptionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PrescriptionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PrescriptionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PrescriptionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PrescriptionUpsertOne.ID is not supported by MySQL driver. Use PrescriptionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PrescriptionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PrescriptionCreateBulk is the builder for creating many Prescription entities in bulk.
type PrescriptionCreateBulk struct {
	config
	err      error
	builders []*PrescriptionCreate
	conflict []sql.ConflictOption
}

// Save creates the Prescription entities in the database.
func (_c *PrescriptionCreateBulk) Save(ctx context.Context) ([]*Prescription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Prescription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PrescriptionMutation)
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
func (_c *PrescriptionCreateBulk) SaveX(ctx context.Context) []*Prescription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PrescriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PrescriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Prescription.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PrescriptionUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PrescriptionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PrescriptionUpsertBulk {
	_c.conflict = opts
	return &PrescriptionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PrescriptionCreateBulk) OnConflictColumns(columns ...string) *PrescriptionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PrescriptionUpsertBulk{
		create: _c,
	}
}

// PrescriptionUpsertBulk is the builder for "upsert"-ing
// a bulk of Prescription nodes.
type PrescriptionUpsertBulk struct {
	create *PrescriptionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(prescription.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PrescriptionUpsertBulk) UpdateNewValues() *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(prescription.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(prescription.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Prescription.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PrescriptionUpsertBulk) Ignore() *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PrescriptionUpsertBulk) DoNothing() *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PrescriptionCreateBulk.OnConflict
// documentation for more info.
func (u *PrescriptionUpsertBulk) Update(set func(*PrescriptionUpsert)) *PrescriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PrescriptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PrescriptionUpsertBulk) SetUpdatedAt(v time.Time) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateUpdatedAt() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PrescriptionUpsertBulk) SetPatientID(v uuid.UUID) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdatePatientID() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePatientID()
	})
}

// SetDoctorID sets the "doctor_id" field.
func (u *PrescriptionUpsertBulk) SetDoctorID(v uuid.UUID) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDoctorID(v)
	})
}

// UpdateDoctorID sets the "doctor_id" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateDoctorID() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDoctorID()
	})
}

// SetDoctorName sets the "doctor_name" field.
func (u *PrescriptionUpsertBulk) SetDoctorName(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetDoctorName(v)
	})
}

// UpdateDoctorName sets the "doctor_name" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateDoctorName() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateDoctorName()
	})
}

// SetTitle sets the "title" field.
func (u *PrescriptionUpsertBulk) SetTitle(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateTitle() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateTitle()
	})
}

// SetMedicineSummary sets the "medicine_summary" field.
func (u *PrescriptionUpsertBulk) SetMedicineSummary(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetMedicineSummary(v)
	})
}

// UpdateMedicineSummary sets the "medicine_summary" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateMedicineSummary() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateMedicineSummary()
	})
}

// SetNotes sets the "notes" field.
func (u *PrescriptionUpsertBulk) SetNotes(v string) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdateNotes() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PrescriptionUpsertBulk) ClearNotes() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearNotes()
	})
}

// SetPrescribedAt sets the "prescribed_at" field.
func (u *PrescriptionUpsertBulk) SetPrescribedAt(v time.Time) *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.SetPrescribedAt(v)
	})
}

// UpdatePrescribedAt sets the "prescribed_at" field to the value that was provided on create.
func (u *PrescriptionUpsertBulk) UpdatePrescribedAt() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.UpdatePrescribedAt()
	})
}

// ClearPrescribedAt clears the value of the "prescribed_at" field.
func (u *PrescriptionUpsertBulk) ClearPrescribedAt() *PrescriptionUpsertBulk {
	return u.Update(func(s *PrescriptionUpsert) {
		s.ClearPrescribedAt()
	})
}

// Exec executes the query.
func (u *PrescriptionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PrescriptionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PrescriptionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PrescriptionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
