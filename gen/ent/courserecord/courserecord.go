// Code generated by ent, DO NOT EDIT.

package courserecord

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the courserecord type in the database.
	Label = "course_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldCourseName holds the string denoting the course_name field in the database.
	FieldCourseName = "course_name"
	// FieldInstructor holds the string denoting the instructor field in the database.
	FieldInstructor = "instructor"
	// FieldHours holds the string denoting the hours field in the database.
	FieldHours = "hours"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldWeek holds the string denoting the week field in the database.
	FieldWeek = "week"
	// FieldLocation holds the string denoting the location field in the database.
	FieldLocation = "location"
	// FieldSection holds the string denoting the section field in the database.
	FieldSection = "section"
	// FieldTimePeriod holds the string denoting the time_period field in the database.
	FieldTimePeriod = "time_period"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// FieldSourceFile holds the string denoting the source_file field in the database.
	FieldSourceFile = "source_file"
	// FieldSheetOrPage holds the string denoting the sheet_or_page field in the database.
	FieldSheetOrPage = "sheet_or_page"
	// FieldSourceLocator holds the string denoting the source_locator field in the database.
	FieldSourceLocator = "source_locator"
	// FieldSourceText holds the string denoting the source_text field in the database.
	FieldSourceText = "source_text"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// Table holds the table name of the courserecord in the database.
	Table = "course_records"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "course_records"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for courserecord fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldPosition,
	FieldCourseName,
	FieldInstructor,
	FieldHours,
	FieldCategory,
	FieldWeek,
	FieldLocation,
	FieldSection,
	FieldTimePeriod,
	FieldNote,
	FieldSourceFile,
	FieldSheetOrPage,
	FieldSourceLocator,
	FieldSourceText,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// CourseNameValidator is a validator for the "course_name" field. It is called by the builders before save.
	CourseNameValidator func(string) error
	// HoursValidator is a validator for the "hours" field. It is called by the builders before save.
	HoursValidator func(int) error
	// DefaultWeek holds the default value on creation for the "week" field.
	DefaultWeek string
	// DefaultLocation holds the default value on creation for the "location" field.
	DefaultLocation string
	// DefaultSection holds the default value on creation for the "section" field.
	DefaultSection string
	// DefaultTimePeriod holds the default value on creation for the "time_period" field.
	DefaultTimePeriod string
	// DefaultNote holds the default value on creation for the "note" field.
	DefaultNote string
	// DefaultSourceText holds the default value on creation for the "source_text" field.
	DefaultSourceText string
)

// OrderOption defines the ordering options for the CourseRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByCourseName orders the results by the course_name field.
func ByCourseName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseName, opts...).ToFunc()
}

// ByInstructor orders the results by the instructor field.
func ByInstructor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstructor, opts...).ToFunc()
}

// ByHours orders the results by the hours field.
func ByHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHours, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByWeek orders the results by the week field.
func ByWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeek, opts...).ToFunc()
}

// ByLocation orders the results by the location field.
func ByLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocation, opts...).ToFunc()
}

// BySection orders the results by the section field.
func BySection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSection, opts...).ToFunc()
}

// ByTimePeriod orders the results by the time_period field.
func ByTimePeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimePeriod, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// BySourceFile orders the results by the source_file field.
func BySourceFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceFile, opts...).ToFunc()
}

// BySheetOrPage orders the results by the sheet_or_page field.
func BySheetOrPage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSheetOrPage, opts...).ToFunc()
}

// BySourceLocator orders the results by the source_locator field.
func BySourceLocator(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceLocator, opts...).ToFunc()
}

// BySourceText orders the results by the source_text field.
func BySourceText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceText, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
