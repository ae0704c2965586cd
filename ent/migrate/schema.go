// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "assessment_id", Type: field.TypeString, Default: ""},
		{Name: "learner_id", Type: field.TypeString, Default: ""},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_assessment_id_learner_id",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3], LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_assessment_id_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3], LlmRequestEventsColumns[7]},
			},
			{
				Name:    "llmrequestevent_provider_model",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5], LlmRequestEventsColumns[6]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[11]},
			},
		},
	}
	// ProgressesColumns holds the columns for the "progresses" table.
	ProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "assessment_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "step", Type: field.TypeInt, Default: 0},
		{Name: "num_attempts", Type: field.TypeInt, Default: 0},
		{Name: "attempted", Type: field.TypeBool, Default: false},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "results", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressesTable holds the schema information for the "progresses" table.
	ProgressesTable = &schema.Table{
		Name:       "progresses",
		Columns:    ProgressesColumns,
		PrimaryKey: []*schema.Column{ProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progress_assessment_id_learner_id",
				Unique:  true,
				Columns: []*schema.Column{ProgressesColumns[1], ProgressesColumns[2]},
			},
			{
				Name:    "progress_learner_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressesColumns[2]},
			},
		},
	}
	// SubmissionEventsColumns holds the columns for the "submission_events" table.
	SubmissionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "assessment_id", Type: field.TypeString, Default: ""},
		{Name: "learner_id", Type: field.TypeString, Default: ""},
		{Name: "exercise_id", Type: field.TypeString},
		{Name: "step", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: ""},
		{Name: "accepted", Type: field.TypeBool},
		{Name: "num_attempts", Type: field.TypeInt, Default: 0},
		{Name: "final_grade", Type: field.TypeFloat64, Nullable: true},
		{Name: "submitted_answer", Type: field.TypeJSON, Nullable: true},
	}
	// SubmissionEventsTable holds the schema information for the "submission_events" table.
	SubmissionEventsTable = &schema.Table{
		Name:       "submission_events",
		Columns:    SubmissionEventsColumns,
		PrimaryKey: []*schema.Column{SubmissionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submissionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[2]},
			},
			{
				Name:    "submissionevent_assessment_id_learner_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[3], SubmissionEventsColumns[4]},
			},
			{
				Name:    "submissionevent_exercise_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[5]},
			},
			{
				Name:    "submissionevent_accepted",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[8]},
			},
		},
	}
	// TelemetryEventsColumns holds the columns for the "telemetry_events" table.
	TelemetryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "assessment_id", Type: field.TypeString, Default: ""},
		{Name: "learner_id", Type: field.TypeString, Default: ""},
		{Name: "event_type", Type: field.TypeString},
		{Name: "exercise_id", Type: field.TypeString, Default: ""},
		{Name: "session_id", Type: field.TypeString, Default: ""},
	}
	// TelemetryEventsTable holds the schema information for the "telemetry_events" table.
	TelemetryEventsTable = &schema.Table{
		Name:       "telemetry_events",
		Columns:    TelemetryEventsColumns,
		PrimaryKey: []*schema.Column{TelemetryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "telemetryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[2]},
			},
			{
				Name:    "telemetryevent_assessment_id_learner_id",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[3], TelemetryEventsColumns[4]},
			},
			{
				Name:    "telemetryevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[5]},
			},
			{
				Name:    "telemetryevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TelemetryEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		ProgressesTable,
		SubmissionEventsTable,
		TelemetryEventsTable,
	}
)

func init() {
}
