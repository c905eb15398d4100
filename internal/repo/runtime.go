// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/medimind/backend/internal/repo/activitylog"
	"github.com/medimind/backend/internal/repo/appointment"
	"github.com/medimind/backend/internal/repo/consultation"
	"github.com/medimind/backend/internal/repo/conversation"
	"github.com/medimind/backend/internal/repo/message"
	"github.com/medimind/backend/internal/repo/prescription"
	"github.com/medimind/backend/internal/repo/recommendation"
	"github.com/medimind/backend/internal/repo/relationship"
	"github.com/medimind/backend/internal/repo/report"
	"github.com/medimind/backend/internal/repo/user"
	"github.com/medimind/backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activitylogMixin := schema.ActivityLog{}.Mixin()
	activitylogMixinFields0 := activitylogMixin[0].Fields()
	_ = activitylogMixinFields0
	activitylogMixinFields1 := activitylogMixin[1].Fields()
	_ = activitylogMixinFields1
	activitylogFields := schema.ActivityLog{}.Fields()
	_ = activitylogFields
	// activitylogDescCreatedAt is the schema descriptor for created_at field.
	activitylogDescCreatedAt := activitylogMixinFields1[0].Descriptor()
	// activitylog.DefaultCreatedAt holds the default value on creation for the created_at field.
	activitylog.DefaultCreatedAt = activitylogDescCreatedAt.Default.(func() time.Time)
	// activitylogDescType is the schema descriptor for type field.
	activitylogDescType := activitylogFields[1].Descriptor()
	// activitylog.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	activitylog.TypeValidator = activitylogDescType.Validators[0].(func(string) error)
	// activitylogDescAction is the schema descriptor for action field.
	activitylogDescAction := activitylogFields[2].Descriptor()
	// activitylog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	activitylog.ActionValidator = activitylogDescAction.Validators[0].(func(string) error)
	// activitylogDescActor is the schema descriptor for actor field.
	activitylogDescActor := activitylogFields[3].Descriptor()
	// activitylog.DefaultActor holds the default value on creation for the actor field.
	activitylog.DefaultActor = activitylogDescActor.Default.(string)
	// activitylogDescID is the schema descriptor for id field.
	activitylogDescID := activitylogMixinFields0[0].Descriptor()
	// activitylog.DefaultID holds the default value on creation for the id field.
	activitylog.DefaultID = activitylogDescID.Default.(func() uuid.UUID)
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescPatientName is the schema descriptor for patient_name field.
	appointmentDescPatientName := appointmentFields[2].Descriptor()
	// appointment.DefaultPatientName holds the default value on creation for the patient_name field.
	appointment.DefaultPatientName = appointmentDescPatientName.Default.(string)
	// appointmentDescDoctorName is the schema descriptor for doctor_name field.
	appointmentDescDoctorName := appointmentFields[3].Descriptor()
	// appointment.DefaultDoctorName holds the default value on creation for the doctor_name field.
	appointment.DefaultDoctorName = appointmentDescDoctorName.Default.(string)
	// appointmentDescDate is the schema descriptor for date field.
	appointmentDescDate := appointmentFields[4].Descriptor()
	// appointment.DateValidator is a validator for the "date" field. It is called by the builders before save.
	appointment.DateValidator = appointmentDescDate.Validators[0].(func(string) error)
	// appointmentDescTime is the schema descriptor for time field.
	appointmentDescTime := appointmentFields[5].Descriptor()
	// appointment.TimeValidator is a validator for the "time" field. It is called by the builders before save.
	appointment.TimeValidator = appointmentDescTime.Validators[0].(func(string) error)
	// appointmentDescReason is the schema descriptor for reason field.
	appointmentDescReason := appointmentFields[7].Descriptor()
	// appointment.DefaultReason holds the default value on creation for the reason field.
	appointment.DefaultReason = appointmentDescReason.Default.(string)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	consultationMixin := schema.Consultation{}.Mixin()
	consultationMixinFields0 := consultationMixin[0].Fields()
	_ = consultationMixinFields0
	consultationMixinFields1 := consultationMixin[1].Fields()
	_ = consultationMixinFields1
	consultationFields := schema.Consultation{}.Fields()
	_ = consultationFields
	// consultationDescCreatedAt is the schema descriptor for created_at field.
	consultationDescCreatedAt := consultationMixinFields1[0].Descriptor()
	// consultation.DefaultCreatedAt holds the default value on creation for the created_at field.
	consultation.DefaultCreatedAt = consultationDescCreatedAt.Default.(func() time.Time)
	// consultationDescUpdatedAt is the schema descriptor for updated_at field.
	consultationDescUpdatedAt := consultationMixinFields1[1].Descriptor()
	// consultation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	consultation.DefaultUpdatedAt = consultationDescUpdatedAt.Default.(func() time.Time)
	// consultation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	consultation.UpdateDefaultUpdatedAt = consultationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// consultationDescPatientName is the schema descriptor for patient_name field.
	consultationDescPatientName := consultationFields[5].Descriptor()
	// consultation.DefaultPatientName holds the default value on creation for the patient_name field.
	consultation.DefaultPatientName = consultationDescPatientName.Default.(string)
	// consultationDescDoctorName is the schema descriptor for doctor_name field.
	consultationDescDoctorName := consultationFields[6].Descriptor()
	// consultation.DefaultDoctorName holds the default value on creation for the doctor_name field.
	consultation.DefaultDoctorName = consultationDescDoctorName.Default.(string)
	// consultationDescDate is the schema descriptor for date field.
	consultationDescDate := consultationFields[7].Descriptor()
	// consultation.DateValidator is a validator for the "date" field. It is called by the builders before save.
	consultation.DateValidator = consultationDescDate.Validators[0].(func(string) error)
	// consultationDescTime is the schema descriptor for time field.
	consultationDescTime := consultationFields[8].Descriptor()
	// consultation.TimeValidator is a validator for the "time" field. It is called by the builders before save.
	consultation.TimeValidator = consultationDescTime.Validators[0].(func(string) error)
	// consultationDescReason is the schema descriptor for reason field.
	consultationDescReason := consultationFields[9].Descriptor()
	// consultation.DefaultReason holds the default value on creation for the reason field.
	consultation.DefaultReason = consultationDescReason.Default.(string)
	// consultationDescRoomName is the schema descriptor for room_name field.
	consultationDescRoomName := consultationFields[10].Descriptor()
	// consultation.RoomNameValidator is a validator for the "room_name" field. It is called by the builders before save.
	consultation.RoomNameValidator = consultationDescRoomName.Validators[0].(func(string) error)
	// consultationDescRoomURL is the schema descriptor for room_url field.
	consultationDescRoomURL := consultationFields[11].Descriptor()
	// consultation.RoomURLValidator is a validator for the "room_url" field. It is called by the builders before save.
	consultation.RoomURLValidator = consultationDescRoomURL.Validators[0].(func(string) error)
	// consultationDescID is the schema descriptor for id field.
	consultationDescID := consultationMixinFields0[0].Descriptor()
	// consultation.DefaultID holds the default value on creation for the id field.
	consultation.DefaultID = consultationDescID.Default.(func() uuid.UUID)
	conversationMixin := schema.Conversation{}.Mixin()
	conversationMixinFields0 := conversationMixin[0].Fields()
	_ = conversationMixinFields0
	conversationMixinFields1 := conversationMixin[1].Fields()
	_ = conversationMixinFields1
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationMixinFields1[0].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationMixinFields1[1].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// conversationDescParticipantAName is the schema descriptor for participant_a_name field.
	conversationDescParticipantAName := conversationFields[2].Descriptor()
	// conversation.DefaultParticipantAName holds the default value on creation for the participant_a_name field.
	conversation.DefaultParticipantAName = conversationDescParticipantAName.Default.(string)
	// conversationDescParticipantBName is the schema descriptor for participant_b_name field.
	conversationDescParticipantBName := conversationFields[3].Descriptor()
	// conversation.DefaultParticipantBName holds the default value on creation for the participant_b_name field.
	conversation.DefaultParticipantBName = conversationDescParticipantBName.Default.(string)
	// conversationDescParticipantARole is the schema descriptor for participant_a_role field.
	conversationDescParticipantARole := conversationFields[4].Descriptor()
	// conversation.DefaultParticipantARole holds the default value on creation for the participant_a_role field.
	conversation.DefaultParticipantARole = conversationDescParticipantARole.Default.(string)
	// conversationDescParticipantBRole is the schema descriptor for participant_b_role field.
	conversationDescParticipantBRole := conversationFields[5].Descriptor()
	// conversation.DefaultParticipantBRole holds the default value on creation for the participant_b_role field.
	conversation.DefaultParticipantBRole = conversationDescParticipantBRole.Default.(string)
	// conversationDescLastMessage is the schema descriptor for last_message field.
	conversationDescLastMessage := conversationFields[6].Descriptor()
	// conversation.DefaultLastMessage holds the default value on creation for the last_message field.
	conversation.DefaultLastMessage = conversationDescLastMessage.Default.(string)
	// conversationDescAutoGenerated is the schema descriptor for auto_generated field.
	conversationDescAutoGenerated := conversationFields[8].Descriptor()
	// conversation.DefaultAutoGenerated holds the default value on creation for the auto_generated field.
	conversation.DefaultAutoGenerated = conversationDescAutoGenerated.Default.(bool)
	// conversationDescID is the schema descriptor for id field.
	conversationDescID := conversationMixinFields0[0].Descriptor()
	// conversation.DefaultID holds the default value on creation for the id field.
	conversation.DefaultID = conversationDescID.Default.(func() uuid.UUID)
	messageMixin := schema.Message{}.Mixin()
	messageMixinFields0 := messageMixin[0].Fields()
	_ = messageMixinFields0
	messageMixinFields1 := messageMixin[1].Fields()
	_ = messageMixinFields1
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageMixinFields1[0].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescSenderName is the schema descriptor for sender_name field.
	messageDescSenderName := messageFields[2].Descriptor()
	// message.DefaultSenderName holds the default value on creation for the sender_name field.
	message.DefaultSenderName = messageDescSenderName.Default.(string)
	// messageDescContent is the schema descriptor for content field.
	messageDescContent := messageFields[4].Descriptor()
	// message.ContentValidator is a validator for the "content" field. It is called by the builders before save.
	message.ContentValidator = messageDescContent.Validators[0].(func(string) error)
	// messageDescRead is the schema descriptor for read field.
	messageDescRead := messageFields[5].Descriptor()
	// message.DefaultRead holds the default value on creation for the read field.
	message.DefaultRead = messageDescRead.Default.(bool)
	// messageDescID is the schema descriptor for id field.
	messageDescID := messageMixinFields0[0].Descriptor()
	// message.DefaultID holds the default value on creation for the id field.
	message.DefaultID = messageDescID.Default.(func() uuid.UUID)
	prescriptionMixin := schema.Prescription{}.Mixin()
	prescriptionMixinFields0 := prescriptionMixin[0].Fields()
	_ = prescriptionMixinFields0
	prescriptionMixinFields1 := prescriptionMixin[1].Fields()
	_ = prescriptionMixinFields1
	prescriptionFields := schema.Prescription{}.Fields()
	_ = prescriptionFields
	// prescriptionDescCreatedAt is the schema descriptor for created_at field.
	prescriptionDescCreatedAt := prescriptionMixinFields1[0].Descriptor()
	// prescription.DefaultCreatedAt holds the default value on creation for the created_at field.
	prescription.DefaultCreatedAt = prescriptionDescCreatedAt.Default.(func() time.Time)
	// prescriptionDescUpdatedAt is the schema descriptor for updated_at field.
	prescriptionDescUpdatedAt := prescriptionMixinFields1[1].Descriptor()
	// prescription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prescription.DefaultUpdatedAt = prescriptionDescUpdatedAt.Default.(func() time.Time)
	// prescription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prescription.UpdateDefaultUpdatedAt = prescriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// prescriptionDescDoctorName is the schema descriptor for doctor_name field.
	prescriptionDescDoctorName := prescriptionFields[2].Descriptor()
	// prescription.DefaultDoctorName holds the default value on creation for the doctor_name field.
	prescription.DefaultDoctorName = prescriptionDescDoctorName.Default.(string)
	// prescriptionDescTitle is the schema descriptor for title field.
	prescriptionDescTitle := prescriptionFields[3].Descriptor()
	// prescription.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	prescription.TitleValidator = prescriptionDescTitle.Validators[0].(func(string) error)
	// prescriptionDescMedicineSummary is the schema descriptor for medicine_summary field.
	prescriptionDescMedicineSummary := prescriptionFields[4].Descriptor()
	// prescription.DefaultMedicineSummary holds the default value on creation for the medicine_summary field.
	prescription.DefaultMedicineSummary = prescriptionDescMedicineSummary.Default.(string)
	// prescriptionDescID is the schema descriptor for id field.
	prescriptionDescID := prescriptionMixinFields0[0].Descriptor()
	// prescription.DefaultID holds the default value on creation for the id field.
	prescription.DefaultID = prescriptionDescID.Default.(func() uuid.UUID)
	recommendationMixin := schema.Recommendation{}.Mixin()
	recommendationMixinFields0 := recommendationMixin[0].Fields()
	_ = recommendationMixinFields0
	recommendationMixinFields1 := recommendationMixin[1].Fields()
	_ = recommendationMixinFields1
	recommendationFields := schema.Recommendation{}.Fields()
	_ = recommendationFields
	// recommendationDescCreatedAt is the schema descriptor for created_at field.
	recommendationDescCreatedAt := recommendationMixinFields1[0].Descriptor()
	// recommendation.DefaultCreatedAt holds the default value on creation for the created_at field.
	recommendation.DefaultCreatedAt = recommendationDescCreatedAt.Default.(func() time.Time)
	// recommendationDescUpdatedAt is the schema descriptor for updated_at field.
	recommendationDescUpdatedAt := recommendationMixinFields1[1].Descriptor()
	// recommendation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	recommendation.DefaultUpdatedAt = recommendationDescUpdatedAt.Default.(func() time.Time)
	// recommendation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	recommendation.UpdateDefaultUpdatedAt = recommendationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// recommendationDescSummary is the schema descriptor for summary field.
	recommendationDescSummary := recommendationFields[6].Descriptor()
	// recommendation.DefaultSummary holds the default value on creation for the summary field.
	recommendation.DefaultSummary = recommendationDescSummary.Default.(string)
	// recommendationDescDoctorName is the schema descriptor for doctor_name field.
	recommendationDescDoctorName := recommendationFields[7].Descriptor()
	// recommendation.DefaultDoctorName holds the default value on creation for the doctor_name field.
	recommendation.DefaultDoctorName = recommendationDescDoctorName.Default.(string)
	// recommendationDescPatientName is the schema descriptor for patient_name field.
	recommendationDescPatientName := recommendationFields[8].Descriptor()
	// recommendation.DefaultPatientName holds the default value on creation for the patient_name field.
	recommendation.DefaultPatientName = recommendationDescPatientName.Default.(string)
	// recommendationDescID is the schema descriptor for id field.
	recommendationDescID := recommendationMixinFields0[0].Descriptor()
	// recommendation.DefaultID holds the default value on creation for the id field.
	recommendation.DefaultID = recommendationDescID.Default.(func() uuid.UUID)
	relationshipMixin := schema.Relationship{}.Mixin()
	relationshipMixinFields0 := relationshipMixin[0].Fields()
	_ = relationshipMixinFields0
	relationshipMixinFields1 := relationshipMixin[1].Fields()
	_ = relationshipMixinFields1
	relationshipFields := schema.Relationship{}.Fields()
	_ = relationshipFields
	// relationshipDescCreatedAt is the schema descriptor for created_at field.
	relationshipDescCreatedAt := relationshipMixinFields1[0].Descriptor()
	// relationship.DefaultCreatedAt holds the default value on creation for the created_at field.
	relationship.DefaultCreatedAt = relationshipDescCreatedAt.Default.(func() time.Time)
	// relationshipDescUpdatedAt is the schema descriptor for updated_at field.
	relationshipDescUpdatedAt := relationshipMixinFields1[1].Descriptor()
	// relationship.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	relationship.DefaultUpdatedAt = relationshipDescUpdatedAt.Default.(func() time.Time)
	// relationship.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	relationship.UpdateDefaultUpdatedAt = relationshipDescUpdatedAt.UpdateDefault.(func() time.Time)
	// relationshipDescDoctorName is the schema descriptor for doctor_name field.
	relationshipDescDoctorName := relationshipFields[2].Descriptor()
	// relationship.DefaultDoctorName holds the default value on creation for the doctor_name field.
	relationship.DefaultDoctorName = relationshipDescDoctorName.Default.(string)
	// relationshipDescPatientName is the schema descriptor for patient_name field.
	relationshipDescPatientName := relationshipFields[3].Descriptor()
	// relationship.DefaultPatientName holds the default value on creation for the patient_name field.
	relationship.DefaultPatientName = relationshipDescPatientName.Default.(string)
	// relationshipDescID is the schema descriptor for id field.
	relationshipDescID := relationshipMixinFields0[0].Descriptor()
	// relationship.DefaultID holds the default value on creation for the id field.
	relationship.DefaultID = relationshipDescID.Default.(func() uuid.UUID)
	reportMixin := schema.Report{}.Mixin()
	reportMixinFields0 := reportMixin[0].Fields()
	_ = reportMixinFields0
	reportMixinFields1 := reportMixin[1].Fields()
	_ = reportMixinFields1
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportMixinFields1[0].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescUpdatedAt is the schema descriptor for updated_at field.
	reportDescUpdatedAt := reportMixinFields1[1].Descriptor()
	// report.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	report.DefaultUpdatedAt = reportDescUpdatedAt.Default.(func() time.Time)
	// report.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	report.UpdateDefaultUpdatedAt = reportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reportDescFileName is the schema descriptor for file_name field.
	reportDescFileName := reportFields[1].Descriptor()
	// report.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	report.FileNameValidator = reportDescFileName.Validators[0].(func(string) error)
	// reportDescFilePath is the schema descriptor for file_path field.
	reportDescFilePath := reportFields[2].Descriptor()
	// report.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	report.FilePathValidator = reportDescFilePath.Validators[0].(func(string) error)
	// reportDescContentType is the schema descriptor for content_type field.
	reportDescContentType := reportFields[3].Descriptor()
	// report.DefaultContentType holds the default value on creation for the content_type field.
	report.DefaultContentType = reportDescContentType.Default.(string)
	// reportDescID is the schema descriptor for id field.
	reportDescID := reportMixinFields0[0].Descriptor()
	// report.DefaultID holds the default value on creation for the id field.
	report.DefaultID = reportDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescFullName is the schema descriptor for full_name field.
	userDescFullName := userFields[1].Descriptor()
	// user.DefaultFullName holds the default value on creation for the full_name field.
	user.DefaultFullName = userDescFullName.Default.(string)
	// userDescProfileComplete is the schema descriptor for profile_complete field.
	userDescProfileComplete := userFields[6].Descriptor()
	// user.DefaultProfileComplete holds the default value on creation for the profile_complete field.
	user.DefaultProfileComplete = userDescProfileComplete.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
