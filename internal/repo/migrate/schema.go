// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivityLogsColumns holds the columns for the "activity_logs" table.
	ActivityLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "actor", Type: field.TypeString, Default: ""},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
	}
	// ActivityLogsTable holds the schema information for the "activity_logs" table.
	ActivityLogsTable = &schema.Table{
		Name:       "activity_logs",
		Columns:    ActivityLogsColumns,
		PrimaryKey: []*schema.Column{ActivityLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activitylog_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ActivityLogsColumns[2], ActivityLogsColumns[1]},
			},
		},
	}
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_name", Type: field.TypeString, Default: ""},
		{Name: "doctor_name", Type: field.TypeString, Default: ""},
		{Name: "date", Type: field.TypeString},
		{Name: "time", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"video", "in_person"}, Default: "video"},
		{Name: "reason", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"upcoming", "completed", "cancelled"}, Default: "upcoming"},
		{Name: "consultation_id", Type: field.TypeUUID, Nullable: true},
		{Name: "report_id", Type: field.TypeUUID, Nullable: true},
		{Name: "room_name", Type: field.TypeString, Nullable: true},
		{Name: "room_url", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[11]},
			},
			{
				Name:    "appointment_doctor_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[11]},
			},
			{
				Name:    "appointment_doctor_id_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[7]},
			},
		},
	}
	// ConsultationsColumns holds the columns for the "consultations" table.
	ConsultationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "appointment_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "report_id", Type: field.TypeUUID, Nullable: true},
		{Name: "recommendation_id", Type: field.TypeUUID, Nullable: true},
		{Name: "patient_name", Type: field.TypeString, Default: ""},
		{Name: "doctor_name", Type: field.TypeString, Default: ""},
		{Name: "date", Type: field.TypeString},
		{Name: "time", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "room_name", Type: field.TypeString},
		{Name: "room_url", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "in_progress", "completed", "cancelled"}, Default: "scheduled"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// ConsultationsTable holds the schema information for the "consultations" table.
	ConsultationsTable = &schema.Table{
		Name:       "consultations",
		Columns:    ConsultationsColumns,
		PrimaryKey: []*schema.Column{ConsultationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "consultation_appointment_id",
				Unique:  false,
				Columns: []*schema.Column{ConsultationsColumns[3]},
			},
			{
				Name:    "consultation_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{ConsultationsColumns[4], ConsultationsColumns[15]},
			},
			{
				Name:    "consultation_doctor_id_status",
				Unique:  false,
				Columns: []*schema.Column{ConsultationsColumns[5], ConsultationsColumns[15]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "participant_a", Type: field.TypeUUID},
		{Name: "participant_b", Type: field.TypeUUID},
		{Name: "participant_a_name", Type: field.TypeString, Default: ""},
		{Name: "participant_b_name", Type: field.TypeString, Default: ""},
		{Name: "participant_a_role", Type: field.TypeString, Default: ""},
		{Name: "participant_b_role", Type: field.TypeString, Default: ""},
		{Name: "last_message", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "last_message_at", Type: field.TypeTime, Nullable: true},
		{Name: "auto_generated", Type: field.TypeBool, Default: false},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_participant_a",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[3]},
			},
			{
				Name:    "conversation_participant_b",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[4]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeUUID},
		{Name: "sender_id", Type: field.TypeUUID, Nullable: true},
		{Name: "sender_name", Type: field.TypeString, Default: ""},
		{Name: "sender_role", Type: field.TypeEnum, Enums: []string{"patient", "doctor", "system"}, Default: "system"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "read", Type: field.TypeBool, Default: false},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[2], MessagesColumns[1]},
			},
		},
	}
	// PrescriptionsColumns holds the columns for the "prescriptions" table.
	PrescriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "doctor_name", Type: field.TypeString, Default: ""},
		{Name: "title", Type: field.TypeString},
		{Name: "medicine_summary", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "prescribed_at", Type: field.TypeTime, Nullable: true},
	}
	// PrescriptionsTable holds the schema information for the "prescriptions" table.
	PrescriptionsTable = &schema.Table{
		Name:       "prescriptions",
		Columns:    PrescriptionsColumns,
		PrimaryKey: []*schema.Column{PrescriptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prescription_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[3], PrescriptionsColumns[1]},
			},
			{
				Name:    "prescription_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{PrescriptionsColumns[4]},
			},
		},
	}
	// RecommendationsColumns holds the columns for the "recommendations" table.
	RecommendationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "report_id", Type: field.TypeUUID, Nullable: true},
		{Name: "reason_type", Type: field.TypeEnum, Enums: []string{"post_report", "follow_up", "prescription", "ai_escalation", "second_opinion"}},
		{Name: "risk_level", Type: field.TypeEnum, Nullable: true, Enums: []string{"low", "medium", "high"}},
		{Name: "urgency", Type: field.TypeEnum, Enums: []string{"urgent", "normal", "follow_up"}, Default: "normal"},
		{Name: "summary", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "doctor_name", Type: field.TypeString, Default: ""},
		{Name: "patient_name", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "dismissed", "booked"}, Default: "active"},
		{Name: "consultation_id", Type: field.TypeUUID, Nullable: true},
		{Name: "dismissed_at", Type: field.TypeTime, Nullable: true},
	}
	// RecommendationsTable holds the schema information for the "recommendations" table.
	RecommendationsTable = &schema.Table{
		Name:       "recommendations",
		Columns:    RecommendationsColumns,
		PrimaryKey: []*schema.Column{RecommendationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recommendation_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{RecommendationsColumns[3], RecommendationsColumns[12]},
			},
			{
				Name:    "recommendation_doctor_id_status",
				Unique:  false,
				Columns: []*schema.Column{RecommendationsColumns[4], RecommendationsColumns[12]},
			},
			{
				Name:    "recommendation_report_id",
				Unique:  false,
				Columns: []*schema.Column{RecommendationsColumns[5]},
			},
		},
	}
	// RelationshipsColumns holds the columns for the "relationships" table.
	RelationshipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_name", Type: field.TypeString, Default: ""},
		{Name: "patient_name", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "ended"}, Default: "active"},
	}
	// RelationshipsTable holds the schema information for the "relationships" table.
	RelationshipsTable = &schema.Table{
		Name:       "relationships",
		Columns:    RelationshipsColumns,
		PrimaryKey: []*schema.Column{RelationshipsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "relationship_doctor_id_patient_id",
				Unique:  true,
				Columns: []*schema.Column{RelationshipsColumns[3], RelationshipsColumns[4]},
			},
			{
				Name:    "relationship_doctor_id_status",
				Unique:  false,
				Columns: []*schema.Column{RelationshipsColumns[3], RelationshipsColumns[7]},
			},
			{
				Name:    "relationship_patient_id",
				Unique:  false,
				Columns: []*schema.Column{RelationshipsColumns[4]},
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString, Default: "application/octet-stream"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "error"}, Default: "pending"},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "risk_level", Type: field.TypeEnum, Nullable: true, Enums: []string{"low", "medium", "high"}},
		{Name: "health_score", Type: field.TypeInt, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_detail", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "report_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[3], ReportsColumns[1]},
			},
			{
				Name:    "report_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{ReportsColumns[3], ReportsColumns[7]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "full_name", Type: field.TypeString, Default: ""},
		{Name: "role", Type: field.TypeEnum, Nullable: true, Enums: []string{"patient", "doctor"}},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "date_of_birth", Type: field.TypeString, Nullable: true},
		{Name: "specialty", Type: field.TypeString, Nullable: true},
		{Name: "profile_complete", Type: field.TypeBool, Default: false},
		{Name: "assigned_doctor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "assigned_doctor_name", Type: field.TypeString, Nullable: true},
		{Name: "assigned_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4]},
			},
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6]},
			},
			{
				Name:    "user_assigned_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivityLogsTable,
		AppointmentsTable,
		ConsultationsTable,
		ConversationsTable,
		MessagesTable,
		PrescriptionsTable,
		RecommendationsTable,
		RelationshipsTable,
		ReportsTable,
		UsersTable,
	}
)

func init() {
}
