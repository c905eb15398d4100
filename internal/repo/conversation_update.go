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
	"github.com/medimind/backend/internal/repo/conversation"
	"github.com/medimind/backend/internal/repo/predicate"
)

// ConversationUpdate is the builder for updating Conversation entities.
type ConversationUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationMutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdate) Where(ps ...predicate.Conversation) *ConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationUpdate) SetUpdatedAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetParticipantA sets the "participant_a" field.
func (_u *ConversationUpdate) SetParticipantA(v uuid.UUID) *ConversationUpdate {
	_u.mutation.SetParticipantA(v)
	return _u
}

// SetNillableParticipantA sets the "participant_a" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableParticipantA(v *uuid.UUID) *ConversationUpdate {
	if v != nil {
		_u.SetParticipantA(*v)
	}
	return _u
}

// SetParticipantB sets the "participant_b" field.
func (_u *ConversationUpdate) SetParticipantB(v uuid.UUID) *ConversationUpdate {
	_u.mutation.SetParticipantB(v)
	return _u
}

// SetNillableParticipantB sets the "participant_b" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableParticipantB(v *uuid.UUID) *ConversationUpdate {
	if v != nil {
		_u.SetParticipantB(*v)
	}
	return _u
}

// SetParticipantAName sets the "participant_a_name" field.
func (_u *ConversationUpdate) SetParticipantAName(v string) *ConversationUpdate {
	_u.mutation.SetParticipantAName(v)
	return _u
}

// SetNillableParticipantAName sets the "participant_a_name" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableParticipantAName(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetParticipantAName(*v)
	}
	return _u
}

// SetParticipantBName sets the "participant_b_name" field.
func (_u *ConversationUpdate) SetParticipantBName(v string) *ConversationUpdate {
	_u.mutation.SetParticipantBName(v)
	return _u
}

// SetNillableParticipantBName sets the "participant_b_name" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableParticipantBName(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetParticipantBName(*v)
	}
	return _u
}

// SetParticipantARole sets the "participant_a_role" field.
func (_u *ConversationUpdate) SetParticipantARole(v string) *ConversationUpdate {
	_u.mutation.SetParticipantARole(v)
	return _u
}

// SetNillableParticipantARole sets the "participant_a_role" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableParticipantARole(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetParticipantARole(*v)
	}
	return _u
}

// SetParticipantBRole sets the "participant_b_role" field.
func (_u *ConversationUpdate) SetParticipantBRole(v string) *ConversationUpdate {
	_u.mutation.SetParticipantBRole(v)
	return _u
}

// SetNillableParticipantBRole sets the "participant_b_role" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableParticipantBRole(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetParticipantBRole(*v)
	}
	return _u
}

// SetLastMessage sets the "last_message" field.
func (_u *ConversationUpdate) SetLastMessage(v string) *ConversationUpdate {
	_u.mutation.SetLastMessage(v)
	return _u
}

// SetNillableLastMessage sets the "last_message" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableLastMessage(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetLastMessage(*v)
	}
	return _u
}

// SetLastMessageAt sets the "last_message_at" field.
func (_u *ConversationUpdate) SetLastMessageAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetLastMessageAt(v)
	return _u
}

// SetNillableLastMessageAt sets the "last_message_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableLastMessageAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetLastMessageAt(*v)
	}
	return _u
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (_u *ConversationUpdate) ClearLastMessageAt() *ConversationUpdate {
	_u.mutation.ClearLastMessageAt()
	return _u
}

// SetAutoGenerated sets the "auto_generated" field.
func (_u *ConversationUpdate) SetAutoGenerated(v bool) *ConversationUpdate {
	_u.mutation.SetAutoGenerated(v)
	return _u
}

// SetNillableAutoGenerated sets the "auto_generated" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableAutoGenerated(v *bool) *ConversationUpdate {
	if v != nil {
		_u.SetAutoGenerated(*v)
	}
	return _u
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdate) Mutation() *ConversationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ParticipantA(); ok {
		_spec.SetField(conversation.FieldParticipantA, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ParticipantB(); ok {
		_spec.SetField(conversation.FieldParticipantB, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ParticipantAName(); ok {
		_spec.SetField(conversation.FieldParticipantAName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParticipantBName(); ok {
		_spec.SetField(conversation.FieldParticipantBName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParticipantARole(); ok {
		_spec.SetField(conversation.FieldParticipantARole, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParticipantBRole(); ok {
		_spec.SetField(conversation.FieldParticipantBRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastMessage(); ok {
		_spec.SetField(conversation.FieldLastMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastMessageAt(); ok {
		_spec.SetField(conversation.FieldLastMessageAt, field.TypeTime, value)
	}
	if _u.mutation.LastMessageAtCleared() {
		_spec.ClearField(conversation.FieldLastMessageAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AutoGenerated(); ok {
		_spec.SetField(conversation.FieldAutoGenerated, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationUpdateOne is the builder for updating a single Conversation entity.
type ConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationUpdateOne) SetUpdatedAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetParticipantA sets the "participant_a" field.
func (_u *ConversationUpdateOne) SetParticipantA(v uuid.UUID) *ConversationUpdateOne {
	_u.mutation.SetParticipantA(v)
	return _u
}

// SetNillableParticipantA sets the "participant_a" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableParticipantA(v *uuid.UUID) *ConversationUpdateOne {
	if v != nil {
		_u.SetParticipantA(*v)
	}
	return _u
}

// SetParticipantB sets the "participant_b" field.
func (_u *ConversationUpdateOne) SetParticipantB(v uuid.UUID) *ConversationUpdateOne {
	_u.mutation.SetParticipantB(v)
	return _u
}

// SetNillableParticipantB sets the "participant_b" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableParticipantB(v *uuid.UUID) *ConversationUpdateOne {
	if v != nil {
		_u.SetParticipantB(*v)
	}
	return _u
}

// SetParticipantAName sets the "participant_a_name" field.
func (_u *ConversationUpdateOne) SetParticipantAName(v string) *ConversationUpdateOne {
	_u.mutation.SetParticipantAName(v)
	return _u
}

// SetNillableParticipantAName sets the "participant_a_name" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableParticipantAName(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetParticipantAName(*v)
	}
	return _u
}

// SetParticipantBName sets the "participant_b_name" field.
func (_u *ConversationUpdateOne) SetParticipantBName(v string) *ConversationUpdateOne {
	_u.mutation.SetParticipantBName(v)
	return _u
}

// SetNillableParticipantBName sets the "participant_b_name" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableParticipantBName(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetParticipantBName(*v)
	}
	return _u
}

// SetParticipantARole sets the "participant_a_role" field.
func (_u *ConversationUpdateOne) SetParticipantARole(v string) *ConversationUpdateOne {
	_u.mutation.SetParticipantARole(v)
	return _u
}

// SetNillableParticipantARole sets the "participant_a_role" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableParticipantARole(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetParticipantARole(*v)
	}
	return _u
}

// SetParticipantBRole sets the "participant_b_role" field.
func (_u *ConversationUpdateOne) SetParticipantBRole(v string) *ConversationUpdateOne {
	_u.mutation.SetParticipantBRole(v)
	return _u
}

// SetNillableParticipantBRole sets the "participant_b_role" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableParticipantBRole(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetParticipantBRole(*v)
	}
	return _u
}

// SetLastMessage sets the "last_message" field.
func (_u *ConversationUpdateOne) SetLastMessage(v string) *ConversationUpdateOne {
	_u.mutation.SetLastMessage(v)
	return _u
}

// SetNillableLastMessage sets the "last_message" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableLastMessage(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetLastMessage(*v)
	}
	return _u
}

// SetLastMessageAt sets the "last_message_at" field.
func (_u *ConversationUpdateOne) SetLastMessageAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetLastMessageAt(v)
	return _u
}

// SetNillableLastMessageAt sets the "last_message_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableLastMessageAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetLastMessageAt(*v)
	}
	return _u
}

// ClearLastMessageAt clears the value of the "last_message_at" field.
func (_u *ConversationUpdateOne) ClearLastMessageAt() *ConversationUpdateOne {
	_u.mutation.ClearLastMessageAt()
	return _u
}

// SetAutoGenerated sets the "auto_generated" field.
func (_u *ConversationUpdateOne) SetAutoGenerated(v bool) *ConversationUpdateOne {
	_u.mutation.SetAutoGenerated(v)
	return _u
}

// SetNillableAutoGenerated sets the "auto_generated" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableAutoGenerated(v *bool) *ConversationUpdateOne {
	if v != nil {
		_u.SetAutoGenerated(*v)
	}
	return _u
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdateOne) Mutation() *ConversationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdateOne) Where(ps ...predicate.Conversation) *ConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationUpdateOne) Select(field string, fields ...string) *ConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conversation entity.
func (_u *ConversationUpdateOne) Save(ctx context.Context) (*Conversation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdateOne) SaveX(ctx context.Context) *Conversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ConversationUpdateOne) sqlSave(ctx context.Context) (_node *Conversation, err error) {
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Conversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversation.FieldID)
		for _, f := range fields {
			if !conversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != conversation.FieldID {
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
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ParticipantA(); ok {
		_spec.SetField(conversation.FieldParticipantA, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ParticipantB(); ok {
		_spec.SetField(conversation.FieldParticipantB, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.ParticipantAName(); ok {
		_spec.SetField(conversation.FieldParticipantAName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParticipantBName(); ok {
		_spec.SetField(conversation.FieldParticipantBName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParticipantARole(); ok {
		_spec.SetField(conversation.FieldParticipantARole, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParticipantBRole(); ok {
		_spec.SetField(conversation.FieldParticipantBRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastMessage(); ok {
		_spec.SetField(conversation.FieldLastMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastMessageAt(); ok {
		_spec.SetField(conversation.FieldLastMessageAt, field.TypeTime, value)
	}
	if _u.mutation.LastMessageAtCleared() {
		_spec.ClearField(conversation.FieldLastMessageAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AutoGenerated(); ok {
		_spec.SetField(conversation.FieldAutoGenerated, field.TypeBool, value)
	}
	_node = &Conversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
