// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medimind/backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUpdatedAt, v))
}

// ParticipantA applies equality check predicate on the "participant_a" field. It's identical to ParticipantAEQ.
func ParticipantA(v uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldParticipantA, v))
}

// ParticipantB applies equality check predicate on the "participant_b" field. It's identical to ParticipantBEQ.
func ParticipantB(v uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldParticipantB, v))
}

// ParticipantAName applies equality check predicate on the "participant_a_name" field. It's identical to ParticipantANameEQ.
func ParticipantAName(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldParticipantAName, v))
}

// ParticipantBName applies equality check predicate on the "participant_b_name" field. It's identical to ParticipantBNameEQ.
func ParticipantBName(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldParticipantBName, v))
}

// ParticipantARole applies equality check predicate on the "participant_a_role" field. It's identical to ParticipantARoleEQ.
func ParticipantARole(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldParticipantARole, v))
}

// ParticipantBRole applies equality check predicate on the "participant_b_role" field. It's identical to ParticipantBRoleEQ.
func ParticipantBRole(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldParticipantBRole, v))
}

// LastMessage applies equality check predicate on the "last_message" field. It's identical to LastMessageEQ.
func LastMessage(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastMessage, v))
}

// LastMessageAt applies equality check predicate on the "last_message_at" field. It's identical to LastMessageAtEQ.
func LastMessageAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastMessageAt, v))
}

// AutoGenerated applies equality check predicate on the "auto_generated" field. It's identical to AutoGeneratedEQ.
func AutoGenerated(v bool) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldAutoGenerated, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldUpdatedAt, v))
}

// ParticipantAEQ applies the EQ predicate on the "participant_a" field.
func ParticipantAEQ(v uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldParticipantA, v))
}

// ParticipantANEQ applies the NEQ predicate on the "participant_a" field.
func ParticipantANEQ(v uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldParticipantA, v))
}

// ParticipantAIn applies the In predicate on the "participant_a" field.
func ParticipantAIn(vs ...uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldParticipantA, vs...))
}

// ParticipantANotIn applies the NotIn predicate on the "participant_a" field.
func ParticipantANotIn(vs ...uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldParticipantA, vs...))
}

// ParticipantAGT applies the GT predicate on the "participant_a" field.
func ParticipantAGT(v uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldParticipantA, v))
}

// ParticipantAGTE applies the GTE predicate on the "participant_a" field.
func ParticipantAGTE(v uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldParticipantA, v))
}

// ParticipantALT applies the LT predicate on the "participant_a" field.
func ParticipantALT(v uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldParticipantA, v))
}

// ParticipantALTE applies the LTE predicate on the "participant_a" field.
func ParticipantALTE(v uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldParticipantA, v))
}

// ParticipantBEQ applies the EQ predicate on the "participant_b" field.
func ParticipantBEQ(v uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldParticipantB, v))
}

// ParticipantBNEQ applies the NEQ predicate on the "participant_b" field.
func ParticipantBNEQ(v uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldParticipantB, v))
}

// ParticipantBIn applies the In predicate on the "participant_b" field.
func ParticipantBIn(vs ...uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldParticipantB, vs...))
}

// ParticipantBNotIn applies the NotIn predicate on the "participant_b" field.
func ParticipantBNotIn(vs ...uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldParticipantB, vs...))
}

// ParticipantBGT applies the GT predicate on the "participant_b" field.
func ParticipantBGT(v uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldParticipantB, v))
}

// ParticipantBGTE applies the GTE predicate on the "participant_b" field.
func ParticipantBGTE(v uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldParticipantB, v))
}

// ParticipantBLT applies the LT predicate on the "participant_b" field.
func ParticipantBLT(v uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldParticipantB, v))
}

// ParticipantBLTE applies the LTE predicate on the "participant_b" field.
func ParticipantBLTE(v uuid.UUID) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldParticipantB, v))
}

// ParticipantANameEQ applies the EQ predicate on the "participant_a_name" field.
func ParticipantANameEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldParticipantAName, v))
}

// ParticipantANameNEQ applies the NEQ predicate on the "participant_a_name" field.
func ParticipantANameNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldParticipantAName, v))
}

// ParticipantANameIn applies the In predicate on the "participant_a_name" field.
func ParticipantANameIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldParticipantAName, vs...))
}

// ParticipantANameNotIn applies the NotIn predicate on the "participant_a_name" field.
func ParticipantANameNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldParticipantAName, vs...))
}

// ParticipantANameGT applies the GT predicate on the "participant_a_name" field.
func ParticipantANameGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldParticipantAName, v))
}

// ParticipantANameGTE applies the GTE predicate on the "participant_a_name" field.
func ParticipantANameGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldParticipantAName, v))
}

// ParticipantANameLT applies the LT predicate on the "participant_a_name" field.
func ParticipantANameLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldParticipantAName, v))
}

// ParticipantANameLTE applies the LTE predicate on the "participant_a_name" field.
func ParticipantANameLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldParticipantAName, v))
}

// ParticipantANameContains applies the Contains predicate on the "participant_a_name" field.
func ParticipantANameContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldParticipantAName, v))
}

// ParticipantANameHasPrefix applies the HasPrefix predicate on the "participant_a_name" field.
func ParticipantANameHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldParticipantAName, v))
}

// ParticipantANameHasSuffix applies the HasSuffix predicate on the "participant_a_name" field.
func ParticipantANameHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldParticipantAName, v))
}

// ParticipantANameEqualFold applies the EqualFold predicate on the "participant_a_name" field.
func ParticipantANameEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldParticipantAName, v))
}

// ParticipantANameContainsFold applies the ContainsFold predicate on the "participant_a_name" field.
func ParticipantANameContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldParticipantAName, v))
}

// ParticipantBNameEQ applies the EQ predicate on the "participant_b_name" field.
func ParticipantBNameEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldParticipantBName, v))
}

// ParticipantBNameNEQ applies the NEQ predicate on the "participant_b_name" field.
func ParticipantBNameNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldParticipantBName, v))
}

// ParticipantBNameIn applies the In predicate on the "participant_b_name" field.
func ParticipantBNameIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldParticipantBName, vs...))
}

// ParticipantBNameNotIn applies the NotIn predicate on the "participant_b_name" field.
func ParticipantBNameNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldParticipantBName, vs...))
}

// ParticipantBNameGT applies the GT predicate on the "participant_b_name" field.
func ParticipantBNameGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldParticipantBName, v))
}

// ParticipantBNameGTE applies the GTE predicate on the "participant_b_name" field.
func ParticipantBNameGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldParticipantBName, v))
}

// ParticipantBNameLT applies the LT predicate on the "participant_b_name" field.
func ParticipantBNameLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldParticipantBName, v))
}

// ParticipantBNameLTE applies the LTE predicate on the "participant_b_name" field.
func ParticipantBNameLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldParticipantBName, v))
}

// ParticipantBNameContains applies the Contains predicate on the "participant_b_name" field.
func ParticipantBNameContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldParticipantBName, v))
}

// ParticipantBNameHasPrefix applies the HasPrefix predicate on the "participant_b_name" field.
func ParticipantBNameHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldParticipantBName, v))
}

// ParticipantBNameHasSuffix applies the HasSuffix predicate on the "participant_b_name" field.
func ParticipantBNameHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldParticipantBName, v))
}

// ParticipantBNameEqualFold applies the EqualFold predicate on the "participant_b_name" field.
func ParticipantBNameEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldParticipantBName, v))
}

// ParticipantBNameContainsFold applies the ContainsFold predicate on the "participant_b_name" field.
func ParticipantBNameContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldParticipantBName, v))
}

// ParticipantARoleEQ applies the EQ predicate on the "participant_a_role" field.
func ParticipantARoleEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldParticipantARole, v))
}

// ParticipantARoleNEQ applies the NEQ predicate on the "participant_a_role" field.
func ParticipantARoleNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldParticipantARole, v))
}

// ParticipantARoleIn applies the In predicate on the "participant_a_role" field.
func ParticipantARoleIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldParticipantARole, vs...))
}

// ParticipantARoleNotIn applies the NotIn predicate on the "participant_a_role" field.
func ParticipantARoleNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldParticipantARole, vs...))
}

// ParticipantARoleGT applies the GT predicate on the "participant_a_role" field.
func ParticipantARoleGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldParticipantARole, v))
}

// ParticipantARoleGTE applies the GTE predicate on the "participant_a_role" field.
func ParticipantARoleGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldParticipantARole, v))
}

// ParticipantARoleLT applies the LT predicate on the "participant_a_role" field.
func ParticipantARoleLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldParticipantARole, v))
}

// ParticipantARoleLTE applies the LTE predicate on the "participant_a_role" field.
func ParticipantARoleLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldParticipantARole, v))
}

// ParticipantARoleContains applies the Contains predicate on the "participant_a_role" field.
func ParticipantARoleContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldParticipantARole, v))
}

// ParticipantARoleHasPrefix applies the HasPrefix predicate on the "participant_a_role" field.
func ParticipantARoleHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldParticipantARole, v))
}

// ParticipantARoleHasSuffix applies the HasSuffix predicate on the "participant_a_role" field.
func ParticipantARoleHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldParticipantARole, v))
}

// ParticipantARoleEqualFold applies the EqualFold predicate on the "participant_a_role" field.
func ParticipantARoleEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldParticipantARole, v))
}

// ParticipantARoleContainsFold applies the ContainsFold predicate on the "participant_a_role" field.
func ParticipantARoleContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldParticipantARole, v))
}

// ParticipantBRoleEQ applies the EQ predicate on the "participant_b_role" field.
func ParticipantBRoleEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldParticipantBRole, v))
}

// ParticipantBRoleNEQ applies the NEQ predicate on the "participant_b_role" field.
func ParticipantBRoleNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldParticipantBRole, v))
}

// ParticipantBRoleIn applies the In predicate on the "participant_b_role" field.
func ParticipantBRoleIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldParticipantBRole, vs...))
}

// ParticipantBRoleNotIn applies the NotIn predicate on the "participant_b_role" field.
func ParticipantBRoleNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldParticipantBRole, vs...))
}

// ParticipantBRoleGT applies the GT predicate on the "participant_b_role" field.
func ParticipantBRoleGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldParticipantBRole, v))
}

// ParticipantBRoleGTE applies the GTE predicate on the "participant_b_role" field.
func ParticipantBRoleGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldParticipantBRole, v))
}

// ParticipantBRoleLT applies the LT predicate on the "participant_b_role" field.
func ParticipantBRoleLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldParticipantBRole, v))
}

// ParticipantBRoleLTE applies the LTE predicate on the "participant_b_role" field.
func ParticipantBRoleLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldParticipantBRole, v))
}

// ParticipantBRoleContains applies the Contains predicate on the "participant_b_role" field.
func ParticipantBRoleContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldParticipantBRole, v))
}

// ParticipantBRoleHasPrefix applies the HasPrefix predicate on the "participant_b_role" field.
func ParticipantBRoleHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldParticipantBRole, v))
}

// ParticipantBRoleHasSuffix applies the HasSuffix predicate on the "participant_b_role" field.
func ParticipantBRoleHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldParticipantBRole, v))
}

// ParticipantBRoleEqualFold applies the EqualFold predicate on the "participant_b_role" field.
func ParticipantBRoleEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldParticipantBRole, v))
}

// ParticipantBRoleContainsFold applies the ContainsFold predicate on the "participant_b_role" field.
func ParticipantBRoleContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldParticipantBRole, v))
}

// LastMessageEQ applies the EQ predicate on the "last_message" field.
func LastMessageEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastMessage, v))
}

// LastMessageNEQ applies the NEQ predicate on the "last_message" field.
func LastMessageNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldLastMessage, v))
}

// LastMessageIn applies the In predicate on the "last_message" field.
func LastMessageIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldLastMessage, vs...))
}

// LastMessageNotIn applies the NotIn predicate on the "last_message" field.
func LastMessageNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldLastMessage, vs...))
}

// LastMessageGT applies the GT predicate on the "last_message" field.
func LastMessageGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldLastMessage, v))
}

// LastMessageGTE applies the GTE predicate on the "last_message" field.
func LastMessageGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldLastMessage, v))
}

// LastMessageLT applies the LT predicate on the "last_message" field.
func LastMessageLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldLastMessage, v))
}

// LastMessageLTE applies the LTE predicate on the "last_message" field.
func LastMessageLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldLastMessage, v))
}

// LastMessageContains applies the Contains predicate on the "last_message" field.
func LastMessageContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldLastMessage, v))
}

// LastMessageHasPrefix applies the HasPrefix predicate on the "last_message" field.
func LastMessageHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldLastMessage, v))
}

// LastMessageHasSuffix applies the HasSuffix predicate on the "last_message" field.
func LastMessageHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldLastMessage, v))
}

// LastMessageEqualFold applies the EqualFold predicate on the "last_message" field.
func LastMessageEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldLastMessage, v))
}

// LastMessageContainsFold applies the ContainsFold predicate on the "last_message" field.
func LastMessageContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldLastMessage, v))
}

// LastMessageAtEQ applies the EQ predicate on the "last_message_at" field.
func LastMessageAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastMessageAt, v))
}

// LastMessageAtNEQ applies the NEQ predicate on the "last_message_at" field.
func LastMessageAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldLastMessageAt, v))
}

// LastMessageAtIn applies the In predicate on the "last_message_at" field.
func LastMessageAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldLastMessageAt, vs...))
}

// LastMessageAtNotIn applies the NotIn predicate on the "last_message_at" field.
func LastMessageAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldLastMessageAt, vs...))
}

// LastMessageAtGT applies the GT predicate on the "last_message_at" field.
func LastMessageAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldLastMessageAt, v))
}

// LastMessageAtGTE applies the GTE predicate on the "last_message_at" field.
func LastMessageAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldLastMessageAt, v))
}

// LastMessageAtLT applies the LT predicate on the "last_message_at" field.
func LastMessageAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldLastMessageAt, v))
}

// LastMessageAtLTE applies the LTE predicate on the "last_message_at" field.
func LastMessageAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldLastMessageAt, v))
}

// LastMessageAtIsNil applies the IsNil predicate on the "last_message_at" field.
func LastMessageAtIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldLastMessageAt))
}

// LastMessageAtNotNil applies the NotNil predicate on the "last_message_at" field.
func LastMessageAtNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldLastMessageAt))
}

// AutoGeneratedEQ applies the EQ predicate on the "auto_generated" field.
func AutoGeneratedEQ(v bool) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldAutoGenerated, v))
}

// AutoGeneratedNEQ applies the NEQ predicate on the "auto_generated" field.
func AutoGeneratedNEQ(v bool) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldAutoGenerated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.NotPredicates(p))
}
