// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/course-stats/gen/ent/run"
)

// Run is the model entity for the Run schema.
type Run struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// InputRoot holds the value of the "input_root" field.
	InputRoot string `json:"input_root,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// FilesScanned holds the value of the "files_scanned" field.
	FilesScanned int `json:"files_scanned,omitempty"`
	// FilesFailed holds the value of the "files_failed" field.
	FilesFailed int `json:"files_failed,omitempty"`
	// UnitsProcessed holds the value of the "units_processed" field.
	UnitsProcessed int `json:"units_processed,omitempty"`
	// UnitsSkipped holds the value of the "units_skipped" field.
	UnitsSkipped int `json:"units_skipped,omitempty"`
	// RawRecords holds the value of the "raw_records" field.
	RawRecords int `json:"raw_records,omitempty"`
	// CleanedRecords holds the value of the "cleaned_records" field.
	CleanedRecords int `json:"cleaned_records,omitempty"`
	// TotalHours holds the value of the "total_hours" field.
	TotalHours int `json:"total_hours,omitempty"`
	// Stats holds the value of the "stats" field.
	Stats json.RawMessage `json:"stats,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RunQuery when eager-loading is set.
	Edges        RunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RunEdges holds the relations/edges for other nodes in the graph.
type RunEdges struct {
	// Records holds the value of the records edge.
	Records []*CourseRecord `json:"records,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RecordsOrErr returns the Records value or an error if the edge
// was not loaded in eager-loading.
func (e RunEdges) RecordsOrErr() ([]*CourseRecord, error) {
	if e.loadedTypes[0] {
		return e.Records, nil
	}
	return nil, &NotLoadedError{edge: "records"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Run) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case run.FieldStats:
			values[i] = new([]byte)
		case run.FieldFilesScanned, run.FieldFilesFailed, run.FieldUnitsProcessed, run.FieldUnitsSkipped, run.FieldRawRecords, run.FieldCleanedRecords, run.FieldTotalHours:
			values[i] = new(sql.NullInt64)
		case run.FieldInputRoot, run.FieldStatus, run.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case run.FieldStartedAt, run.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case run.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Run fields.
func (_m *Run) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case run.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case run.FieldInputRoot:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_root", values[i])
			} else if value.Valid {
				_m.InputRoot = value.String
			}
		case run.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case run.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case run.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case run.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case run.FieldFilesScanned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field files_scanned", values[i])
			} else if value.Valid {
				_m.FilesScanned = int(value.Int64)
			}
		case run.FieldFilesFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field files_failed", values[i])
			} else if value.Valid {
				_m.FilesFailed = int(value.Int64)
			}
		case run.FieldUnitsProcessed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field units_processed", values[i])
			} else if value.Valid {
				_m.UnitsProcessed = int(value.Int64)
			}
		case run.FieldUnitsSkipped:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field units_skipped", values[i])
			} else if value.Valid {
				_m.UnitsSkipped = int(value.Int64)
			}
		case run.FieldRawRecords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_records", values[i])
			} else if value.Valid {
				_m.RawRecords = int(value.Int64)
			}
		case run.FieldCleanedRecords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cleaned_records", values[i])
			} else if value.Valid {
				_m.CleanedRecords = int(value.Int64)
			}
		case run.FieldTotalHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_hours", values[i])
			} else if value.Valid {
				_m.TotalHours = int(value.Int64)
			}
		case run.FieldStats:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field stats", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Stats); err != nil {
					return fmt.Errorf("unmarshal field stats: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Run.
// This includes values selected through modifiers, order, etc.
func (_m *Run) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRecords queries the "records" edge of the Run entity.
func (_m *Run) QueryRecords() *CourseRecordQuery {
	return NewRunClient(_m.config).QueryRecords(_m)
}

// Update returns a builder for updating this Run.
// Note that you need to call Run.Unwrap() before calling this method if this Run
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Run) Update() *RunUpdateOne {
	return NewRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Run entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Run) Unwrap() *Run {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Run is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Run) String() string {
	var builder strings.Builder
	builder.WriteString("Run(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("input_root=")
	builder.WriteString(_m.InputRoot)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("files_scanned=")
	builder.WriteString(fmt.Sprintf("%v", _m.FilesScanned))
	builder.WriteString(", ")
	builder.WriteString("files_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.FilesFailed))
	builder.WriteString(", ")
	builder.WriteString("units_processed=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitsProcessed))
	builder.WriteString(", ")
	builder.WriteString("units_skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitsSkipped))
	builder.WriteString(", ")
	builder.WriteString("raw_records=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawRecords))
	builder.WriteString(", ")
	builder.WriteString("cleaned_records=")
	builder.WriteString(fmt.Sprintf("%v", _m.CleanedRecords))
	builder.WriteString(", ")
	builder.WriteString("total_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalHours))
	builder.WriteString(", ")
	builder.WriteString("stats=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stats))
	builder.WriteByte(')')
	return builder.String()
}

// Runs is a parsable slice of Run.
type Runs []*Run
