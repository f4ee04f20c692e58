// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/course-stats/gen/ent/courserecord"
	"github.com/joseph-ayodele/course-stats/gen/ent/run"
)

// CourseRecord is the model entity for the CourseRecord schema.
type CourseRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID uuid.UUID `json:"run_id,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// CourseName holds the value of the "course_name" field.
	CourseName string `json:"course_name,omitempty"`
	// Instructor holds the value of the "instructor" field.
	Instructor string `json:"instructor,omitempty"`
	// Hours holds the value of the "hours" field.
	Hours int `json:"hours,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// Week holds the value of the "week" field.
	Week string `json:"week,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// Section holds the value of the "section" field.
	Section string `json:"section,omitempty"`
	// TimePeriod holds the value of the "time_period" field.
	TimePeriod string `json:"time_period,omitempty"`
	// Note holds the value of the "note" field.
	Note string `json:"note,omitempty"`
	// SourceFile holds the value of the "source_file" field.
	SourceFile string `json:"source_file,omitempty"`
	// SheetOrPage holds the value of the "sheet_or_page" field.
	SheetOrPage string `json:"sheet_or_page,omitempty"`
	// SourceLocator holds the value of the "source_locator" field.
	SourceLocator string `json:"source_locator,omitempty"`
	// SourceText holds the value of the "source_text" field.
	SourceText string `json:"source_text,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CourseRecordQuery when eager-loading is set.
	Edges        CourseRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CourseRecordEdges holds the relations/edges for other nodes in the graph.
type CourseRecordEdges struct {
	// Run holds the value of the run edge.
	Run *Run `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CourseRecordEdges) RunOrErr() (*Run, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: run.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CourseRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case courserecord.FieldID, courserecord.FieldPosition, courserecord.FieldHours:
			values[i] = new(sql.NullInt64)
		case courserecord.FieldCourseName, courserecord.FieldInstructor, courserecord.FieldCategory, courserecord.FieldWeek, courserecord.FieldLocation, courserecord.FieldSection, courserecord.FieldTimePeriod, courserecord.FieldNote, courserecord.FieldSourceFile, courserecord.FieldSheetOrPage, courserecord.FieldSourceLocator, courserecord.FieldSourceText:
			values[i] = new(sql.NullString)
		case courserecord.FieldRunID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CourseRecord fields.
func (_m *CourseRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case courserecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case courserecord.FieldRunID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value != nil {
				_m.RunID = *value
			}
		case courserecord.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case courserecord.FieldCourseName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_name", values[i])
			} else if value.Valid {
				_m.CourseName = value.String
			}
		case courserecord.FieldInstructor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instructor", values[i])
			} else if value.Valid {
				_m.Instructor = value.String
			}
		case courserecord.FieldHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hours", values[i])
			} else if value.Valid {
				_m.Hours = int(value.Int64)
			}
		case courserecord.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case courserecord.FieldWeek:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field week", values[i])
			} else if value.Valid {
				_m.Week = value.String
			}
		case courserecord.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case courserecord.FieldSection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section", values[i])
			} else if value.Valid {
				_m.Section = value.String
			}
		case courserecord.FieldTimePeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time_period", values[i])
			} else if value.Valid {
				_m.TimePeriod = value.String
			}
		case courserecord.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = value.String
			}
		case courserecord.FieldSourceFile:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_file", values[i])
			} else if value.Valid {
				_m.SourceFile = value.String
			}
		case courserecord.FieldSheetOrPage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sheet_or_page", values[i])
			} else if value.Valid {
				_m.SheetOrPage = value.String
			}
		case courserecord.FieldSourceLocator:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_locator", values[i])
			} else if value.Valid {
				_m.SourceLocator = value.String
			}
		case courserecord.FieldSourceText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_text", values[i])
			} else if value.Valid {
				_m.SourceText = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CourseRecord.
// This includes values selected through modifiers, order, etc.
func (_m *CourseRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the CourseRecord entity.
func (_m *CourseRecord) QueryRun() *RunQuery {
	return NewCourseRecordClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this CourseRecord.
// Note that you need to call CourseRecord.Unwrap() before calling this method if this CourseRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CourseRecord) Update() *CourseRecordUpdateOne {
	return NewCourseRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CourseRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CourseRecord) Unwrap() *CourseRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CourseRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CourseRecord) String() string {
	var builder strings.Builder
	builder.WriteString("CourseRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunID))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("course_name=")
	builder.WriteString(_m.CourseName)
	builder.WriteString(", ")
	builder.WriteString("instructor=")
	builder.WriteString(_m.Instructor)
	builder.WriteString(", ")
	builder.WriteString("hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hours))
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("week=")
	builder.WriteString(_m.Week)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	builder.WriteString("section=")
	builder.WriteString(_m.Section)
	builder.WriteString(", ")
	builder.WriteString("time_period=")
	builder.WriteString(_m.TimePeriod)
	builder.WriteString(", ")
	builder.WriteString("note=")
	builder.WriteString(_m.Note)
	builder.WriteString(", ")
	builder.WriteString("source_file=")
	builder.WriteString(_m.SourceFile)
	builder.WriteString(", ")
	builder.WriteString("sheet_or_page=")
	builder.WriteString(_m.SheetOrPage)
	builder.WriteString(", ")
	builder.WriteString("source_locator=")
	builder.WriteString(_m.SourceLocator)
	builder.WriteString(", ")
	builder.WriteString("source_text=")
	builder.WriteString(_m.SourceText)
	builder.WriteByte(')')
	return builder.String()
}

// CourseRecords is a parsable slice of CourseRecord.
type CourseRecords []*CourseRecord
