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
	"github.com/medimind/backend/internal/repo/conversation"
)

// ConversationCreate is the builder for creating a Conversation entity.
type ConversationCreate struct {
	config
	mutation *ConversationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationCreate) SetCreatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableCreatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConversationCreate) SetUpdatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableUpdatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetParticipantA sets the "participant_a" field.
func (_c *ConversationCreate) SetParticipantA(v uuid.UUID) *ConversationCreate {
	_c.mutation.SetParticipantA(v)
	return _c
}

// SetParticipantB sets the "participant_b" field.
func (_c *ConversationCreate) SetParticipantB(v uuid.UUID) *ConversationCreate {
	_c.mutation.SetParticipantB(v)
	return _c
}

// SetParticipantAName sets the "participant_a_name" field.
func (_c *ConversationCreate) SetParticipantAName(v string) *ConversationCreate {
	_c.mutation.SetParticipantAName(v)
	return _c
}

// SetNillableParticipantAName sets the "participant_a_name" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableParticipantAName(v *string) *ConversationCreate {
	if v != nil {
		_c.SetParticipantAName(*v)
	}
	return _c
}

// SetParticipantBName sets the "participant_b_name" field.
func (_c *ConversationCreate) SetParticipantBName(v string) *ConversationCreate {
	_c.mutation.SetParticipantBName(v)
	return _c
}

// SetNillableParticipantBName sets the "participant_b_name" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableParticipantBName(v *string) *ConversationCreate {
	if v != nil {
		_c.SetParticipantBName(*v)
	}
	return _c
}

// SetParticipantARole sets the "participant_a_role" field.
func (_c *ConversationCreate) SetParticipantARole(v string) *ConversationCreate {
	_c.mutation.SetParticipantARole(v)
	return _c
}

// SetNillableParticipantARole sets the "participant_a_role" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableParticipantARole(v *string) *ConversationCreate {
	if v != nil {
		_c.SetParticipantARole(*v)
	}
	return _c
}

// SetParticipantBRole sets the "participant_b_role" field.
func (_c *ConversationCreate) SetParticipantBRole(v string) *ConversationCreate {
	_c.mutation.SetParticipantBRole(v)
	return _c
}

// SetNillableParticipantBRole sets the "participant_b_role" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableParticipantBRole(v *string) *ConversationCreate {
	if v != nil {
		_c.SetParticipantBRole(*v)
	}
	return _c
}

// SetLastMessage sets the "last_message" field.
func (_c *ConversationCreate) SetLastMessage(v string) *ConversationCreate {
	_c.mutation.SetLastMessage(v)
	return _c
}

// SetNillableLastMessage sets the "last_message" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableLastMessage(v *string) *ConversationCreate {
	if v != nil {
		_c.SetLastMessage(*v)
	}
	return _c
}

// SetLastMessageAt sets the "last_message_at" field.
func (_c *ConversationCreate) SetLastMessageAt(v time.Time) *ConversationCreate {
	_c.mutation.SetLastMessageAt(v)
	return _c
}

// SetNillableLastMessageAt sets the "last_message_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableLastMessageAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetLastMessageAt(*v)
	}
	return _c
}

// SetAutoGenerated sets the "auto_generated" field.
func (_c *ConversationCreate) SetAutoGenerated(v bool) *ConversationCreate {
	_c.mutation.SetAutoGenerated(v)
	return _c
}

// SetNillableAutoGenerated sets the "auto_generated" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableAutoGenerated(v *bool) *ConversationCreate {
	if v != nil {
		_c.SetAutoGenerated(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationCreate) SetID(v uuid.UUID) *ConversationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableID(v *uuid.UUID) *ConversationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ConversationMutation object of the builder.
func (_c *ConversationCreate) Mutation() *ConversationMutation {
	return _c.mutation
}

// Save creates the Conversation in the database.
func (_c *ConversationCreate) Save(ctx context.Context) (*Conversation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationCreate) SaveX(ctx context.Context) *Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := conversation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ParticipantAName(); !ok {
		v := conversation.DefaultParticipantAName
		_c.mutation.SetParticipantAName(v)
	}
	if _, ok := _c.mutation.ParticipantBName(); !ok {
		v := conversation.DefaultParticipantBName
		_c.mutation.SetParticipantBName(v)
	}
	if _, ok := _c.mutation.ParticipantARole(); !ok {
		v := conversation.DefaultParticipantARole
		_c.mutation.SetParticipantARole(v)
	}
	if _, ok := _c.mutation.ParticipantBRole(); !ok {
		v := conversation.DefaultParticipantBRole
		_c.mutation.SetParticipantBRole(v)
	}
	if _, ok := _c.mutation.LastMessage(); !ok {
		v := conversation.DefaultLastMessage
		_c.mutation.SetLastMessage(v)
	}
	if _, ok := _c.mutation.AutoGenerated(); !ok {
		v := conversation.DefaultAutoGenerated
		_c.mutation.SetAutoGenerated(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := conversation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Conversation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Conversation.updated_at"`)}
	}
	if _, ok := _c.mutation.ParticipantA(); !ok {
		return &ValidationError{Name: "participant_a", err: errors.New(`repo: missing required field "Conversation.participant_a"`)}
	}
	if _, ok := _c.mutation.ParticipantB(); !ok {
		return &ValidationError{Name: "participant_b", err: errors.New(`repo: missing required field "Conversation.participant_b"`)}
	}
	if _, ok := _c.mutation.ParticipantAName(); !ok {
		return &ValidationError{Name: "participant_a_name", err: errors.New(`repo: missing required field "Conversation.participant_a_name"`)}
	}
	if _, ok := _c.mutation.ParticipantBName(); !ok {
		return &ValidationError{Name: "participant_b_name", err: errors.New(`repo: missing required field "Conversation.participant_b_name"`)}
	}
	if _, ok := _c.mutation.ParticipantARole(); !ok {
		return &ValidationError{Name: "participant_a_role", err: errors.New(`repo: missing required field "Conversation.participant_a_role"`)}
	}
	if _, ok := _c.mutation.ParticipantBRole(); !ok {
		return &ValidationError{Name: "participant_b_role", err: errors.New(`repo: missing required field "Conversation.participant_b_role"`)}
	}
	if _, ok := _c.mutation.LastMessage(); !ok {
		return &ValidationError{Name: "last_message", err: errors.New(`repo: missing required field "Conversation.last_message"`)}
	}
	if _, ok := _c.mutation.AutoGenerated(); !ok {
		return &ValidationError{Name: "auto_generated", err: errors.New(`repo: missing required field "Conversation.auto_generated"`)}
	}
	return nil
}

func (_c *ConversationCreate) sqlSave(ctx context.Context) (*Conversation, error) {
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

func (_c *ConversationCreate) createSpec() (*Conversation, *sqlgraph.CreateSpec) {
	var (
		_node = &Conversation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversation.Table, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ParticipantA(); ok {
		_spec.SetField(conversation.FieldParticipantA, field.TypeUUID, value)
		_node.ParticipantA = value
	}
	if value, ok := _c.mutation.ParticipantB(); ok {
		_spec.SetField(conversation.FieldParticipantB, field.TypeUUID, value)
		_node.ParticipantB = value
	}
	if value, ok := _c.mutation.ParticipantAName(); ok {
		_spec.SetField(conversation.FieldParticipantAName, field.TypeString, value)
		_node.ParticipantAName = value
	}
	if value, ok := _c.mutation.ParticipantBName(); ok {
		_spec.SetField(conversation.FieldParticipantBName, field.TypeString, value)
		_node.ParticipantBName = value
	}
	if value, ok := _c.mutation.ParticipantARole(); ok {
		_spec.SetField(conversation.FieldParticipantARole, field.TypeString, value)
		_node.ParticipantARole = value
	}
	if value, ok := _c.mutation.ParticipantBRole(); ok {
		_spec.SetField(conversation.FieldParticipantBRole, field.TypeString, value)
		_node.ParticipantBRole = value
	}
	if value, ok := _c.mutation.LastMessage(); ok {
		_spec.SetField(conversation.FieldLastMessage, field.TypeString, value)
		_node.LastMessage = value
	}
	if value, ok := _c.mutation.LastMessageAt(); ok {
		_spec.SetField(conversation.FieldLastMessageAt, field.TypeTime, value)
		_node.LastMessageAt = &value
	}
	if value, ok := _c.mutation.AutoGenerated(); ok {
		_spec.SetField(conversation.FieldAutoGenerated, field.TypeBool, value)
		_node.AutoGenerated = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Conversation.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversationCreate) OnConflict(opts ...sql.ConflictOption) *ConversationUpsertOne {
	_c.conflict = opts
	return &ConversationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversationCreate) OnConflictColumns(columns ...string) *ConversationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversationUpsertOne{
		create: _c,
	}
}

type (
	// ConversationUpsertOne is the builder for "upsert"-ing
	//  one Conversation node.
	ConversationUpsertOne struct {
		create *ConversationCreate
	}

	// ConversationUpsert is the "OnConflict" setter.
	ConversationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ConversationUpsert) SetUpdatedAt(v time.Time) *ConversationUpsert {
	u.Set(conversation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateUpdatedAt() *ConversationUpsert {
	u.SetExcluded(conversation.FieldUpdatedAt)
	return u
}

// SetParticipantA sets the "participant_a" field.
func (u *ConversationUpsert) SetParticipantA(v uuid.UUID) *ConversationUpsert {
	u.Set(conversation.FieldParticipantA, v)
	return u
}

// UpdateParticipantA sets the "participant_a" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateParticipantA() *ConversationUpsert {
	u.SetExcluded(conversation.FieldParticipantA)
	return u
}

// SetParticipantB sets the "participant_b" field.
func (u *ConversationUpsert) SetParticipantB(v uuid.UUID) *ConversationUpsert {
	u.Set(conversation.FieldParticipantB, v)
	return u
}

// UpdateParticipantB sets the "participant_b" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateParticipantB() *ConversationUpsert {
	u.SetExcluded(conversation.FieldParticipantB)
	return u
}

// SetParticipantAName sets the "participant_a_name" field.
func (u *ConversationUpsert) SetParticipantAName(v string) *ConversationUpsert {
	u.Set(conversation.FieldParticipantAName, v)
	return u
}

// UpdateParticipantAName sets the "participant_a_name" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateParticipantAName() *ConversationUpsert {
	u.SetExcluded(conversation.FieldParticipantAName)
	return u
}

// SetParticipantBName sets the "participant_b_name" field.
func (u *ConversationUpsert) SetParticipantBName(v string) *ConversationUpsert {
	u.Set(conversation.FieldParticipantBName, v)
	return u
}

// UpdateParticipantBName sets the "participant_b_name" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateParticipantBName() *ConversationUpsert {
	u.SetExcluded(conversation.FieldParticipantBName)
	return u
}

// SetParticipantARole sets the "participant_a_role" field.
func (u *ConversationUpsert) SetParticipantARole(v string) *ConversationUpsert {
	u.Set(conversation.FieldParticipantARole, v)
	return u
}

// UpdateParticipantARole sets the "participant_a_role" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateParticipantARole() *ConversationUpsert {
	u.SetExcluded(conversation.FieldParticipantARole)
	return u
}

// SetParticipantBRole sets the "participant_b_role" field.
func (u *ConversationUpsert) SetParticipantBRole(v string) *ConversationUpsert {
	u.Set(conversation.FieldParticipantBRole, v)
	return u
}

// UpdateParticipantBRole sets the "participant_b_role" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateParticipantBRole() *ConversationUpsert {
	u.SetExcluded(conversation.FieldParticipantBRole)
	return u
}

// SetLastMessage sets the "last_message" field.
func (u *ConversationUpsert) SetLastMessage(v string) *ConversationUpsert {
	u.Set(conversation.FieldLastMessage, v)
	return u
}

// UpdateLastMessage sets the "last_message" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateLastMessage() *ConversationUpsert {
	u.SetExcluded(conversation.FieldLastMessage)
	return u
}

// SetLastMessageAt sets the "last_message_at" field.
func (u *ConversationUpsert) SetLastMessageAt(v time.Time) *ConversationUpsert {
	u.Set(conversation.FieldLastMessageAt, v)
	return u
}

// UpdateLastMessageAt sets the "last_message_at" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateLastMessageAt() *ConversationUpsert {
	u.SetExcluded(conversation.FieldLastMessageAt)
	return u
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (u *ConversationUpsert) ClearLastMessageAt() *ConversationUpsert {
	u.SetNull(conversation.FieldLastMessageAt)
	return u
}

// SetAutoGenerated sets the "auto_generated" field.
func (u *ConversationUpsert) SetAutoGenerated(v bool) *ConversationUpsert {
	u.Set(conversation.FieldAutoGenerated, v)
	return u
}

// UpdateAutoGenerated sets the "auto_generated" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateAutoGenerated() *ConversationUpsert {
	u.SetExcluded(conversation.FieldAutoGenerated)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conversation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConversationUpsertOne) UpdateNewValues() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(conversation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(conversation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConversationUpsertOne) Ignore() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversationUpsertOne) DoNothing() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversationCreate.OnConflict
// documentation for more info.
func (u *ConversationUpsertOne) Update(set func(*ConversationUpsert)) *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConversationUpsertOne) SetUpdatedAt(v time.Time) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateUpdatedAt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetParticipantA sets the "participant_a" field.
func (u *ConversationUpsertOne) SetParticipantA(v uuid.UUID) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetParticipantA(v)
	})
}

// UpdateParticipantA sets the "participant_a" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateParticipantA() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateParticipantA()
	})
}

// SetParticipantB sets the "participant_b" field.
func (u *ConversationUpsertOne) SetParticipantB(v uuid.UUID) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetParticipantB(v)
	})
}

// UpdateParticipantB sets the "participant_b" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateParticipantB() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateParticipantB()
	})
}

// SetParticipantAName sets the "participant_a_name" field.
func (u *ConversationUpsertOne) SetParticipantAName(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetParticipantAName(v)
	})
}

// UpdateParticipantAName sets the "participant_a_name" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateParticipantAName() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateParticipantAName()
	})
}

// SetParticipantBName sets the "participant_b_name" field.
func (u *ConversationUpsertOne) SetParticipantBName(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetParticipantBName(v)
	})
}

// UpdateParticipantBName sets the "participant_b_name" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateParticipantBName() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateParticipantBName()
	})
}

// SetParticipantARole sets the "participant_a_role" field.
func (u *ConversationUpsertOne) SetParticipantARole(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetParticipantARole(v)
	})
}

// UpdateParticipantARole sets the "participant_a_role" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateParticipantARole() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateParticipantARole()
	})
}

// SetParticipantBRole sets the "participant_b_role" field.
func (u *ConversationUpsertOne) SetParticipantBRole(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetParticipantBRole(v)
	})
}

// UpdateParticipantBRole sets the "participant_b_role" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateParticipantBRole() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateParticipantBRole()
	})
}

// SetLastMessage sets the "last_message" field.
func (u *ConversationUpsertOne) SetLastMessage(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetLastMessage(v)
	})
}

// UpdateLastMessage sets the "last_message" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateLastMessage() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateLastMessage()
	})
}

// SetLastMessageAt sets the "last_message_at" field.
func (u *ConversationUpsertOne) SetLastMessageAt(v time.Time) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetLastMessageAt(v)
	})
}

// UpdateLastMessageAt sets the "last_message_at" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateLastMessageAt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateLastMessageAt()
	})
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (u *ConversationUpsertOne) ClearLastMessageAt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearLastMessageAt()
	})
}

// SetAutoGenerated sets the "auto_generated" field.
func (u *ConversationUpsertOne) SetAutoGenerated(v bool) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetAutoGenerated(v)
	})
}

// UpdateAutoGenerated sets the "auto_generated" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateAutoGenerated() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateAutoGenerated()
	})
}

// Exec executes the query.
func (u *ConversationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ConversationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConversationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ConversationUpsertOne.ID is not supported by MySQL driver. Use ConversationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConversationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConversationCreateBulk is the builder for creating many Conversation entities in bulk.
type ConversationCreateBulk struct {
	config
	err      error
	builders []*ConversationCreate
	conflict []sql.ConflictOption
}

// Save creates the Conversation entities in the database.
func (_c *ConversationCreateBulk) Save(ctx context.Context) ([]*Conversation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Conversation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationMutation)
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
func (_c *ConversationCreateBulk) SaveX(ctx context.Context) []*Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Conversation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversationCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConversationUpsertBulk {
	_c.conflict = opts
	return &ConversationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversationCreateBulk) OnConflictColumns(columns ...string) *ConversationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversationUpsertBulk{
		create: _c,
	}
}

// ConversationUpsertBulk is the builder for "upsert"-ing
// a bulk of Conversation nodes.
type ConversationUpsertBulk struct {
	create *ConversationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conversation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConversationUpsertBulk) UpdateNewValues() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(conversation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(conversation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConversationUpsertBulk) Ignore() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversationUpsertBulk) DoNothing() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversationCreateBulk.OnConflict
// documentation for more info.
func (u *ConversationUpsertBulk) Update(set func(*ConversationUpsert)) *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConversationUpsertBulk) SetUpdatedAt(v time.Time) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateUpdatedAt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetParticipantA sets the "participant_a" field.
func (u *ConversationUpsertBulk) SetParticipantA(v uuid.UUID) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetParticipantA(v)
	})
}

// UpdateParticipantA sets the "participant_a" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateParticipantA() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateParticipantA()
	})
}

// SetParticipantB sets the "participant_b" field.
func (u *ConversationUpsertBulk) SetParticipantB(v uuid.UUID) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetParticipantB(v)
	})
}

// UpdateParticipantB sets the "participant_b" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateParticipantB() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateParticipantB()
	})
}

// SetParticipantAName sets the "participant_a_name" field.
func (u *ConversationUpsertBulk) SetParticipantAName(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetParticipantAName(v)
	})
}

// UpdateParticipantAName sets the "participant_a_name" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateParticipantAName() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateParticipantAName()
	})
}

// SetParticipantBName sets the "participant_b_name" field.
func (u *ConversationUpsertBulk) SetParticipantBName(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetParticipantBName(v)
	})
}

// UpdateParticipantBName sets the "participant_b_name" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateParticipantBName() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateParticipantBName()
	})
}

// SetParticipantARole sets the "participant_a_role" field.
func (u *ConversationUpsertBulk) SetParticipantARole(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetParticipantARole(v)
	})
}

// UpdateParticipantARole sets the "participant_a_role" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateParticipantARole() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateParticipantARole()
	})
}

// SetParticipantBRole sets the "participant_b_role" field.
func (u *ConversationUpsertBulk) SetParticipantBRole(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetParticipantBRole(v)
	})
}

// UpdateParticipantBRole sets the "participant_b_role" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateParticipantBRole() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateParticipantBRole()
	})
}

// SetLastMessage sets the "last_message" field.
func (u *ConversationUpsertBulk) SetLastMessage(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetLastMessage(v)
	})
}

// UpdateLastMessage sets the "last_message" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateLastMessage() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateLastMessage()
	})
}

// SetLastMessageAt sets the "last_message_at" field.
func (u *ConversationUpsertBulk) SetLastMessageAt(v time.Time) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetLastMessageAt(v)
	})
}

// UpdateLastMessageAt sets the "last_message_at" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateLastMessageAt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateLastMessageAt()
	})
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (u *ConversationUpsertBulk) ClearLastMessageAt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearLastMessageAt()
	})
}

// SetAutoGenerated sets the "auto_generated" field.
func (u *ConversationUpsertBulk) SetAutoGenerated(v bool) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetAutoGenerated(v)
	})
}

// UpdateAutoGenerated sets the "auto_generated" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateAutoGenerated() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateAutoGenerated()
	})
}

// Exec executes the query.
func (u *ConversationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ConversationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ConversationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
