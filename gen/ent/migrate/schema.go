// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CourseRecordsColumns holds the columns for the "course_records" table.
	CourseRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "course_name", Type: field.TypeString},
		{Name: "instructor", Type: field.TypeString},
		{Name: "hours", Type: field.TypeInt},
		{Name: "category", Type: field.TypeString},
		{Name: "week", Type: field.TypeString, Default: ""},
		{Name: "location", Type: field.TypeString, Default: ""},
		{Name: "section", Type: field.TypeString, Default: ""},
		{Name: "time_period", Type: field.TypeString, Default: ""},
		{Name: "note", Type: field.TypeString, Default: ""},
		{Name: "source_file", Type: field.TypeString},
		{Name: "sheet_or_page", Type: field.TypeString},
		{Name: "source_locator", Type: field.TypeString},
		{Name: "source_text", Type: field.TypeString, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "run_id", Type: field.TypeUUID},
	}
	// CourseRecordsTable holds the schema information for the "course_records" table.
	CourseRecordsTable = &schema.Table{
		Name:       "course_records",
		Columns:    CourseRecordsColumns,
		PrimaryKey: []*schema.Column{CourseRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "course_records_runs_records",
				Columns:    []*schema.Column{CourseRecordsColumns[15]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "courserecord_run_id_position",
				Unique:  true,
				Columns: []*schema.Column{CourseRecordsColumns[15], CourseRecordsColumns[1]},
			},
			{
				Name:    "courserecord_instructor",
				Unique:  false,
				Columns: []*schema.Column{CourseRecordsColumns[3]},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "input_root", Type: field.TypeString, Default: ""},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "files_scanned", Type: field.TypeInt, Default: 0},
		{Name: "files_failed", Type: field.TypeInt, Default: 0},
		{Name: "units_processed", Type: field.TypeInt, Default: 0},
		{Name: "units_skipped", Type: field.TypeInt, Default: 0},
		{Name: "raw_records", Type: field.TypeInt, Default: 0},
		{Name: "cleaned_records", Type: field.TypeInt, Default: 0},
		{Name: "total_hours", Type: field.TypeInt, Default: 0},
		{Name: "stats", Type: field.TypeJSON, Nullable: true},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "run_started_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[2]},
			},
			{
				Name:    "run_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[4], RunsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CourseRecordsTable,
		RunsTable,
	}
)

func init() {
	CourseRecordsTable.ForeignKeys[0].RefTable = RunsTable
	CourseRecordsTable.Annotation = &entsql.Annotation{
		Table: "course_records",
	}
	RunsTable.Annotation = &entsql.Annotation{
		Table: "runs",
	}
}
