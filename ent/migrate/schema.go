// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "appointment_id", Type: field.TypeString, Unique: true},
		{Name: "clinic_id", Type: field.TypeString},
		{Name: "patient_id", Type: field.TypeString},
		{Name: "doctor_id", Type: field.TypeString},
		{Name: "room_id", Type: field.TypeString},
		{Name: "service_id", Type: field.TypeString},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "cancelled", "completed", "no_show"}, Default: "scheduled"},
		{Name: "policy_snapshot_id", Type: field.TypeString, Nullable: true},
		{Name: "policy_version", Type: field.TypeInt, Nullable: true},
		{Name: "policy_bundle_sha256", Type: field.TypeString, Nullable: true},
		{Name: "calendar_event_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_clinic_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[1], AppointmentsColumns[6]},
			},
			{
				Name:    "appointment_doctor_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[6]},
			},
			{
				Name:    "appointment_room_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[6]},
			},
			{
				Name:    "appointment_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[2], AppointmentsColumns[8]},
			},
		},
	}
	// ClinicsColumns holds the columns for the "clinics" table.
	ClinicsColumns = []*schema.Column{
		{Name: "clinic_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "timezone", Type: field.TypeString, Default: "UTC"},
		{Name: "instance_name", Type: field.TypeString, Nullable: true},
		{Name: "default_language", Type: field.TypeString, Default: "en"},
		{Name: "profile", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ClinicsTable holds the schema information for the "clinics" table.
	ClinicsTable = &schema.Table{
		Name:       "clinics",
		Columns:    ClinicsColumns,
		PrimaryKey: []*schema.Column{ClinicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clinic_instance_name",
				Unique:  false,
				Columns: []*schema.Column{ClinicsColumns[3]},
			},
		},
	}
	// ConversationTurnsColumns holds the columns for the "conversation_turns" table.
	ConversationTurnsColumns = []*schema.Column{
		{Name: "turn_id", Type: field.TypeString, Unique: true},
		{Name: "clinic_id", Type: field.TypeString},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "user_message", Type: field.TypeString, Size: 2147483647},
		{Name: "assistant_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "lane", Type: field.TypeString, Nullable: true},
		{Name: "fast_path", Type: field.TypeBool, Default: false},
		{Name: "latency_ms", Type: field.TypeInt, Nullable: true},
		{Name: "tools_called", Type: field.TypeJSON, Nullable: true},
		{Name: "hallucination_blocked", Type: field.TypeBool, Default: false},
		{Name: "response_flagged", Type: field.TypeBool, Default: false},
		{Name: "constraints_delta", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ConversationTurnsTable holds the schema information for the "conversation_turns" table.
	ConversationTurnsTable = &schema.Table{
		Name:       "conversation_turns",
		Columns:    ConversationTurnsColumns,
		PrimaryKey: []*schema.Column{ConversationTurnsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversation_turns_sessions_turns",
				Columns:    []*schema.Column{ConversationTurnsColumns[13]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversationturn_session_id_sequence_number",
				Unique:  false,
				Columns: []*schema.Column{ConversationTurnsColumns[13], ConversationTurnsColumns[2]},
			},
			{
				Name:    "conversationturn_clinic_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationTurnsColumns[1], ConversationTurnsColumns[12]},
			},
		},
	}
	// EscalationsColumns holds the columns for the "escalations" table.
	EscalationsColumns = []*schema.Column{
		{Name: "escalation_id", Type: field.TypeString, Unique: true},
		{Name: "clinic_id", Type: field.TypeString},
		{Name: "patient_id", Type: field.TypeString},
		{Name: "service_id", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "assigned", "resolved", "declined"}, Default: "open"},
		{Name: "reason", Type: field.TypeString},
		{Name: "request", Type: field.TypeJSON},
		{Name: "suggestions", Type: field.TypeJSON, Nullable: true},
		{Name: "sla_deadline", Type: field.TypeTime},
		{Name: "assigned_to", Type: field.TypeString, Nullable: true},
		{Name: "resolution", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// EscalationsTable holds the schema information for the "escalations" table.
	EscalationsTable = &schema.Table{
		Name:       "escalations",
		Columns:    EscalationsColumns,
		PrimaryKey: []*schema.Column{EscalationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "escalation_clinic_id_status",
				Unique:  false,
				Columns: []*schema.Column{EscalationsColumns[1], EscalationsColumns[4]},
			},
			{
				Name:    "escalation_patient_id_service_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EscalationsColumns[2], EscalationsColumns[3], EscalationsColumns[11]},
			},
			{
				Name:    "escalation_status_sla_deadline",
				Unique:  false,
				Columns: []*schema.Column{EscalationsColumns[4], EscalationsColumns[8]},
			},
		},
	}
	// HoldsColumns holds the columns for the "holds" table.
	HoldsColumns = []*schema.Column{
		{Name: "hold_id", Type: field.TypeString, Unique: true},
		{Name: "client_hold_id", Type: field.TypeString, Unique: true},
		{Name: "clinic_id", Type: field.TypeString},
		{Name: "patient_id", Type: field.TypeString},
		{Name: "doctor_id", Type: field.TypeString},
		{Name: "room_id", Type: field.TypeString},
		{Name: "service_id", Type: field.TypeString},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "score", Type: field.TypeFloat64, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// HoldsTable holds the schema information for the "holds" table.
	HoldsTable = &schema.Table{
		Name:       "holds",
		Columns:    HoldsColumns,
		PrimaryKey: []*schema.Column{HoldsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hold_room_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{HoldsColumns[5], HoldsColumns[7]},
			},
			{
				Name:    "hold_expires_at",
				Unique:  false,
				Columns: []*schema.Column{HoldsColumns[10]},
			},
			{
				Name:    "hold_patient_id",
				Unique:  false,
				Columns: []*schema.Column{HoldsColumns[3]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "patient_id", Type: field.TypeString, Unique: true},
		{Name: "clinic_id", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString},
		{Name: "first_name", Type: field.TypeString, Nullable: true},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "preferred_language", Type: field.TypeString, Nullable: true},
		{Name: "hard_doctor_bans", Type: field.TypeJSON, Nullable: true},
		{Name: "hard_service_bans", Type: field.TypeJSON, Nullable: true},
		{Name: "allergies", Type: field.TypeJSON, Nullable: true},
		{Name: "preferences", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_clinic_id_phone",
				Unique:  true,
				Columns: []*schema.Column{PatientsColumns[1], PatientsColumns[2]},
			},
		},
	}
	// PolicySnapshotsColumns holds the columns for the "policy_snapshots" table.
	PolicySnapshotsColumns = []*schema.Column{
		{Name: "snapshot_id", Type: field.TypeString, Unique: true},
		{Name: "clinic_id", Type: field.TypeString},
		{Name: "bundle_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "staged", "active"}, Default: "draft"},
		{Name: "sha256", Type: field.TypeString},
		{Name: "bundle", Type: field.TypeJSON},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "actor", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PolicySnapshotsTable holds the schema information for the "policy_snapshots" table.
	PolicySnapshotsTable = &schema.Table{
		Name:       "policy_snapshots",
		Columns:    PolicySnapshotsColumns,
		PrimaryKey: []*schema.Column{PolicySnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "policysnapshot_clinic_id_status",
				Unique:  false,
				Columns: []*schema.Column{PolicySnapshotsColumns[1], PolicySnapshotsColumns[4]},
			},
			{
				Name:    "policysnapshot_clinic_id_version",
				Unique:  false,
				Columns: []*schema.Column{PolicySnapshotsColumns[1], PolicySnapshotsColumns[3]},
			},
			{
				Name:    "policysnapshot_sha256",
				Unique:  false,
				Columns: []*schema.Column{PolicySnapshotsColumns[5]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "phone", Type: field.TypeString},
		{Name: "clinic_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "dormant", "closed"}, Default: "active"},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "last_activity_at", Type: field.TypeTime},
		{Name: "prev_session_id", Type: field.TypeString, Nullable: true},
		{Name: "reset_kind", Type: field.TypeEnum, Enums: []string{"none", "soft", "hard"}, Default: "none"},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "summary_status", Type: field.TypeEnum, Enums: []string{"pending", "ready", "failed"}, Default: "pending"},
		{Name: "episode", Type: field.TypeJSON, Nullable: true},
		{Name: "pending_action", Type: field.TypeString, Nullable: true},
		{Name: "last_service_mentioned", Type: field.TypeString, Nullable: true},
		{Name: "closed_at", Type: field.TypeTime, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_phone_clinic_id_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[2], SessionsColumns[3]},
			},
			{
				Name:    "session_clinic_id_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[2], SessionsColumns[3]},
			},
			{
				Name:    "session_status_last_activity_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3], SessionsColumns[6]},
			},
			{
				Name:    "session_status_summary_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3], SessionsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		ClinicsTable,
		ConversationTurnsTable,
		EscalationsTable,
		HoldsTable,
		PatientsTable,
		PolicySnapshotsTable,
		SessionsTable,
	}
)

func init() {
	ConversationTurnsTable.ForeignKeys[0].RefTable = SessionsTable
}
