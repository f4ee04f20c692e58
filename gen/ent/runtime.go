// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/course-stats/db/ent/schema"
	"github.com/joseph-ayodele/course-stats/gen/ent/courserecord"
	"github.com/joseph-ayodele/course-stats/gen/ent/run"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	courserecordFields := schema.CourseRecord{}.Fields()
	_ = courserecordFields
	// courserecordDescPosition is the schema descriptor for position field.
	courserecordDescPosition := courserecordFields[1].Descriptor()
	// courserecord.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	courserecord.PositionValidator = courserecordDescPosition.Validators[0].(func(int) error)
	// courserecordDescCourseName is the schema descriptor for course_name field.
	courserecordDescCourseName := courserecordFields[2].Descriptor()
	// courserecord.CourseNameValidator is a validator for the "course_name" field. It is called by the builders before save.
	courserecord.CourseNameValidator = courserecordDescCourseName.Validators[0].(func(string) error)
	// courserecordDescHours is the schema descriptor for hours field.
	courserecordDescHours := courserecordFields[4].Descriptor()
	// courserecord.HoursValidator is a validator for the "hours" field. It is called by the builders before save.
	courserecord.HoursValidator = courserecordDescHours.Validators[0].(func(int) error)
	// courserecordDescWeek is the schema descriptor for week field.
	courserecordDescWeek := courserecordFields[6].Descriptor()
	// courserecord.DefaultWeek holds the default value on creation for the week field.
	courserecord.DefaultWeek = courserecordDescWeek.Default.(string)
	// courserecordDescLocation is the schema descriptor for location field.
	courserecordDescLocation := courserecordFields[7].Descriptor()
	// courserecord.DefaultLocation holds the default value on creation for the location field.
	courserecord.DefaultLocation = courserecordDescLocation.Default.(string)
	// courserecordDescSection is the schema descriptor for section field.
	courserecordDescSection := courserecordFields[8].Descriptor()
	// courserecord.DefaultSection holds the default value on creation for the section field.
	courserecord.DefaultSection = courserecordDescSection.Default.(string)
	// courserecordDescTimePeriod is the schema descriptor for time_period field.
	courserecordDescTimePeriod := courserecordFields[9].Descriptor()
	// courserecord.DefaultTimePeriod holds the default value on creation for the time_period field.
	courserecord.DefaultTimePeriod = courserecordDescTimePeriod.Default.(string)
	// courserecordDescNote is the schema descriptor for note field.
	courserecordDescNote := courserecordFields[10].Descriptor()
	// courserecord.DefaultNote holds the default value on creation for the note field.
	courserecord.DefaultNote = courserecordDescNote.Default.(string)
	// courserecordDescSourceText is the schema descriptor for source_text field.
	courserecordDescSourceText := courserecordFields[14].Descriptor()
	// courserecord.DefaultSourceText holds the default value on creation for the source_text field.
	courserecord.DefaultSourceText = courserecordDescSourceText.Default.(string)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescInputRoot is the schema descriptor for input_root field.
	runDescInputRoot := runFields[1].Descriptor()
	// run.DefaultInputRoot holds the default value on creation for the input_root field.
	run.DefaultInputRoot = runDescInputRoot.Default.(string)
	// runDescStartedAt is the schema descriptor for started_at field.
	runDescStartedAt := runFields[2].Descriptor()
	// run.DefaultStartedAt holds the default value on creation for the started_at field.
	run.DefaultStartedAt = runDescStartedAt.Default.(func() time.Time)
	// runDescStatus is the schema descriptor for status field.
	runDescStatus := runFields[4].Descriptor()
	// run.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	run.StatusValidator = runDescStatus.Validators[0].(func(string) error)
	// runDescFilesScanned is the schema descriptor for files_scanned field.
	runDescFilesScanned := runFields[6].Descriptor()
	// run.DefaultFilesScanned holds the default value on creation for the files_scanned field.
	run.DefaultFilesScanned = runDescFilesScanned.Default.(int)
	// run.FilesScannedValidator is a validator for the "files_scanned" field. It is called by the builders before save.
	run.FilesScannedValidator = runDescFilesScanned.Validators[0].(func(int) error)
	// runDescFilesFailed is the schema descriptor for files_failed field.
	runDescFilesFailed := runFields[7].Descriptor()
	// run.DefaultFilesFailed holds the default value on creation for the files_failed field.
	run.DefaultFilesFailed = runDescFilesFailed.Default.(int)
	// run.FilesFailedValidator is a validator for the "files_failed" field. It is called by the builders before save.
	run.FilesFailedValidator = runDescFilesFailed.Validators[0].(func(int) error)
	// runDescUnitsProcessed is the schema descriptor for units_processed field.
	runDescUnitsProcessed := runFields[8].Descriptor()
	// run.DefaultUnitsProcessed holds the default value on creation for the units_processed field.
	run.DefaultUnitsProcessed = runDescUnitsProcessed.Default.(int)
	// run.UnitsProcessedValidator is a validator for the "units_processed" field. It is called by the builders before save.
	run.UnitsProcessedValidator = runDescUnitsProcessed.Validators[0].(func(int) error)
	// runDescUnitsSkipped is the schema descriptor for units_skipped field.
	runDescUnitsSkipped := runFields[9].Descriptor()
	// run.DefaultUnitsSkipped holds the default value on creation for the units_skipped field.
	run.DefaultUnitsSkipped = runDescUnitsSkipped.Default.(int)
	// run.UnitsSkippedValidator is a validator for the "units_skipped" field. It is called by the builders before save.
	run.UnitsSkippedValidator = runDescUnitsSkipped.Validators[0].(func(int) error)
	// runDescRawRecords is the schema descriptor for raw_records field.
	runDescRawRecords := runFields[10].Descriptor()
	// run.DefaultRawRecords holds the default value on creation for the raw_records field.
	run.DefaultRawRecords = runDescRawRecords.Default.(int)
	// run.RawRecordsValidator is a validator for the "raw_records" field. It is called by the builders before save.
	run.RawRecordsValidator = runDescRawRecords.Validators[0].(func(int) error)
	// runDescCleanedRecords is the schema descriptor for cleaned_records field.
	runDescCleanedRecords := runFields[11].Descriptor()
	// run.DefaultCleanedRecords holds the default value on creation for the cleaned_records field.
	run.DefaultCleanedRecords = runDescCleanedRecords.Default.(int)
	// run.CleanedRecordsValidator is a validator for the "cleaned_records" field. It is called by the builders before save.
	run.CleanedRecordsValidator = runDescCleanedRecords.Validators[0].(func(int) error)
	// runDescTotalHours is the schema descriptor for total_hours field.
	runDescTotalHours := runFields[12].Descriptor()
	// run.DefaultTotalHours holds the default value on creation for the total_hours field.
	run.DefaultTotalHours = runDescTotalHours.Default.(int)
	// run.TotalHoursValidator is a validator for the "total_hours" field. It is called by the builders before save.
	run.TotalHoursValidator = runDescTotalHours.Validators[0].(func(int) error)
	// runDescID is the schema descriptor for id field.
	runDescID := runFields[0].Descriptor()
	// run.DefaultID holds the default value on creation for the id field.
	run.DefaultID = runDescID.Default.(func() uuid.UUID)
}
