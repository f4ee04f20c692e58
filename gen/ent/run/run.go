// Code generated by ent, DO NOT EDIT.

package run

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the run type in the database.
	Label = "run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldInputRoot holds the string denoting the input_root field in the database.
	FieldInputRoot = "input_root"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldFilesScanned holds the string denoting the files_scanned field in the database.
	FieldFilesScanned = "files_scanned"
	// FieldFilesFailed holds the string denoting the files_failed field in the database.
	FieldFilesFailed = "files_failed"
	// FieldUnitsProcessed holds the string denoting the units_processed field in the database.
	FieldUnitsProcessed = "units_processed"
	// FieldUnitsSkipped holds the string denoting the units_skipped field in the database.
	FieldUnitsSkipped = "units_skipped"
	// FieldRawRecords holds the string denoting the raw_records field in the database.
	FieldRawRecords = "raw_records"
	// FieldCleanedRecords holds the string denoting the cleaned_records field in the database.
	FieldCleanedRecords = "cleaned_records"
	// FieldTotalHours holds the string denoting the total_hours field in the database.
	FieldTotalHours = "total_hours"
	// FieldStats holds the string denoting the stats field in the database.
	FieldStats = "stats"
	// EdgeRecords holds the string denoting the records edge name in mutations.
	EdgeRecords = "records"
	// Table holds the table name of the run in the database.
	Table = "runs"
	// RecordsTable is the table that holds the records relation/edge.
	RecordsTable = "course_records"
	// RecordsInverseTable is the table name for the CourseRecord entity.
	// It exists in this package in order to avoid circular dependency with the "courserecord" package.
	RecordsInverseTable = "course_records"
	// RecordsColumn is the table column denoting the records relation/edge.
	RecordsColumn = "run_id"
)

// Columns holds all SQL columns for run fields.
var Columns = []string{
	FieldID,
	FieldInputRoot,
	FieldStartedAt,
	FieldFinishedAt,
	FieldStatus,
	FieldErrorMessage,
	FieldFilesScanned,
	FieldFilesFailed,
	FieldUnitsProcessed,
	FieldUnitsSkipped,
	FieldRawRecords,
	FieldCleanedRecords,
	FieldTotalHours,
	FieldStats,
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
	// DefaultInputRoot holds the default value on creation for the "input_root" field.
	DefaultInputRoot string
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultFilesScanned holds the default value on creation for the "files_scanned" field.
	DefaultFilesScanned int
	// FilesScannedValidator is a validator for the "files_scanned" field. It is called by the builders before save.
	FilesScannedValidator func(int) error
	// DefaultFilesFailed holds the default value on creation for the "files_failed" field.
	DefaultFilesFailed int
	// FilesFailedValidator is a validator for the "files_failed" field. It is called by the builders before save.
	FilesFailedValidator func(int) error
	// DefaultUnitsProcessed holds the default value on creation for the "units_processed" field.
	DefaultUnitsProcessed int
	// UnitsProcessedValidator is a validator for the "units_processed" field. It is called by the builders before save.
	UnitsProcessedValidator func(int) error
	// DefaultUnitsSkipped holds the default value on creation for the "units_skipped" field.
	DefaultUnitsSkipped int
	// UnitsSkippedValidator is a validator for the "units_skipped" field. It is called by the builders before save.
	UnitsSkippedValidator func(int) error
	// DefaultRawRecords holds the default value on creation for the "raw_records" field.
	DefaultRawRecords int
	// RawRecordsValidator is a validator for the "raw_records" field. It is called by the builders before save.
	RawRecordsValidator func(int) error
	// DefaultCleanedRecords holds the default value on creation for the "cleaned_records" field.
	DefaultCleanedRecords int
	// CleanedRecordsValidator is a validator for the "cleaned_records" field. It is called by the builders before save.
	CleanedRecordsValidator func(int) error
	// DefaultTotalHours holds the default value on creation for the "total_hours" field.
	DefaultTotalHours int
	// TotalHoursValidator is a validator for the "total_hours" field. It is called by the builders before save.
	TotalHoursValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Run queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByInputRoot orders the results by the input_root field.
func ByInputRoot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputRoot, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByFilesScanned orders the results by the files_scanned field.
func ByFilesScanned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilesScanned, opts...).ToFunc()
}

// ByFilesFailed orders the results by the files_failed field.
func ByFilesFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilesFailed, opts...).ToFunc()
}

// ByUnitsProcessed orders the results by the units_processed field.
func ByUnitsProcessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitsProcessed, opts...).ToFunc()
}

// ByUnitsSkipped orders the results by the units_skipped field.
func ByUnitsSkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitsSkipped, opts...).ToFunc()
}

// ByRawRecords orders the results by the raw_records field.
func ByRawRecords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawRecords, opts...).ToFunc()
}

// ByCleanedRecords orders the results by the cleaned_records field.
func ByCleanedRecords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCleanedRecords, opts...).ToFunc()
}

// ByTotalHours orders the results by the total_hours field.
func ByTotalHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalHours, opts...).ToFunc()
}

// ByRecordsCount orders the results by records count.
func ByRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRecordsStep(), opts...)
	}
}

// ByRecords orders the results by records terms.
func ByRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecordsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RecordsTable, RecordsColumn),
	)
}
