// Code generated by ent, DO NOT EDIT.

package run

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/course-stats/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldID, id))
}

// InputRoot applies equality check predicate on the "input_root" field. It's identical to InputRootEQ.
func InputRoot(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldInputRoot, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldFinishedAt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldErrorMessage, v))
}

// FilesScanned applies equality check predicate on the "files_scanned" field. It's identical to FilesScannedEQ.
func FilesScanned(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldFilesScanned, v))
}

// FilesFailed applies equality check predicate on the "files_failed" field. It's identical to FilesFailedEQ.
func FilesFailed(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldFilesFailed, v))
}

// UnitsProcessed applies equality check predicate on the "units_processed" field. It's identical to UnitsProcessedEQ.
func UnitsProcessed(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldUnitsProcessed, v))
}

// UnitsSkipped applies equality check predicate on the "units_skipped" field. It's identical to UnitsSkippedEQ.
func UnitsSkipped(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldUnitsSkipped, v))
}

// RawRecords applies equality check predicate on the "raw_records" field. It's identical to RawRecordsEQ.
func RawRecords(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldRawRecords, v))
}

// CleanedRecords applies equality check predicate on the "cleaned_records" field. It's identical to CleanedRecordsEQ.
func CleanedRecords(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCleanedRecords, v))
}

// TotalHours applies equality check predicate on the "total_hours" field. It's identical to TotalHoursEQ.
func TotalHours(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTotalHours, v))
}

// InputRootEQ applies the EQ predicate on the "input_root" field.
func InputRootEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldInputRoot, v))
}

// InputRootNEQ applies the NEQ predicate on the "input_root" field.
func InputRootNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldInputRoot, v))
}

// InputRootIn applies the In predicate on the "input_root" field.
func InputRootIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldInputRoot, vs...))
}

// InputRootNotIn applies the NotIn predicate on the "input_root" field.
func InputRootNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldInputRoot, vs...))
}

// InputRootGT applies the GT predicate on the "input_root" field.
func InputRootGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldInputRoot, v))
}

// InputRootGTE applies the GTE predicate on the "input_root" field.
func InputRootGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldInputRoot, v))
}

// InputRootLT applies the LT predicate on the "input_root" field.
func InputRootLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldInputRoot, v))
}

// InputRootLTE applies the LTE predicate on the "input_root" field.
func InputRootLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldInputRoot, v))
}

// InputRootContains applies the Contains predicate on the "input_root" field.
func InputRootContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldInputRoot, v))
}

// InputRootHasPrefix applies the HasPrefix predicate on the "input_root" field.
func InputRootHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldInputRoot, v))
}

// InputRootHasSuffix applies the HasSuffix predicate on the "input_root" field.
func InputRootHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldInputRoot, v))
}

// InputRootEqualFold applies the EqualFold predicate on the "input_root" field.
func InputRootEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldInputRoot, v))
}

// InputRootContainsFold applies the ContainsFold predicate on the "input_root" field.
func InputRootContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldInputRoot, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldFinishedAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldErrorMessage, v))
}

// FilesScannedEQ applies the EQ predicate on the "files_scanned" field.
func FilesScannedEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldFilesScanned, v))
}

// FilesScannedNEQ applies the NEQ predicate on the "files_scanned" field.
func FilesScannedNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldFilesScanned, v))
}

// FilesScannedIn applies the In predicate on the "files_scanned" field.
func FilesScannedIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldFilesScanned, vs...))
}

// FilesScannedNotIn applies the NotIn predicate on the "files_scanned" field.
func FilesScannedNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldFilesScanned, vs...))
}

// FilesScannedGT applies the GT predicate on the "files_scanned" field.
func FilesScannedGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldFilesScanned, v))
}

// FilesScannedGTE applies the GTE predicate on the "files_scanned" field.
func FilesScannedGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldFilesScanned, v))
}

// FilesScannedLT applies the LT predicate on the "files_scanned" field.
func FilesScannedLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldFilesScanned, v))
}

// FilesScannedLTE applies the LTE predicate on the "files_scanned" field.
func FilesScannedLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldFilesScanned, v))
}

// FilesFailedEQ applies the EQ predicate on the "files_failed" field.
func FilesFailedEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldFilesFailed, v))
}

// FilesFailedNEQ applies the NEQ predicate on the "files_failed" field.
func FilesFailedNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldFilesFailed, v))
}

// FilesFailedIn applies the In predicate on the "files_failed" field.
func FilesFailedIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldFilesFailed, vs...))
}

// FilesFailedNotIn applies the NotIn predicate on the "files_failed" field.
func FilesFailedNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldFilesFailed, vs...))
}

// FilesFailedGT applies the GT predicate on the "files_failed" field.
func FilesFailedGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldFilesFailed, v))
}

// FilesFailedGTE applies the GTE predicate on the "files_failed" field.
func FilesFailedGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldFilesFailed, v))
}

// FilesFailedLT applies the LT predicate on the "files_failed" field.
func FilesFailedLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldFilesFailed, v))
}

// FilesFailedLTE applies the LTE predicate on the "files_failed" field.
func FilesFailedLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldFilesFailed, v))
}

// UnitsProcessedEQ applies the EQ predicate on the "units_processed" field.
func UnitsProcessedEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldUnitsProcessed, v))
}

// UnitsProcessedNEQ applies the NEQ predicate on the "units_processed" field.
func UnitsProcessedNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldUnitsProcessed, v))
}

// UnitsProcessedIn applies the In predicate on the "units_processed" field.
func UnitsProcessedIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldUnitsProcessed, vs...))
}

// UnitsProcessedNotIn applies the NotIn predicate on the "units_processed" field.
func UnitsProcessedNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldUnitsProcessed, vs...))
}

// UnitsProcessedGT applies the GT predicate on the "units_processed" field.
func UnitsProcessedGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldUnitsProcessed, v))
}

// UnitsProcessedGTE applies the GTE predicate on the "units_processed" field.
func UnitsProcessedGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldUnitsProcessed, v))
}

// UnitsProcessedLT applies the LT predicate on the "units_processed" field.
func UnitsProcessedLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldUnitsProcessed, v))
}

// UnitsProcessedLTE applies the LTE predicate on the "units_processed" field.
func UnitsProcessedLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldUnitsProcessed, v))
}

// UnitsSkippedEQ applies the EQ predicate on the "units_skipped" field.
func UnitsSkippedEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldUnitsSkipped, v))
}

// UnitsSkippedNEQ applies the NEQ predicate on the "units_skipped" field.
func UnitsSkippedNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldUnitsSkipped, v))
}

// UnitsSkippedIn applies the In predicate on the "units_skipped" field.
func UnitsSkippedIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldUnitsSkipped, vs...))
}

// UnitsSkippedNotIn applies the NotIn predicate on the "units_skipped" field.
func UnitsSkippedNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldUnitsSkipped, vs...))
}

// UnitsSkippedGT applies the GT predicate on the "units_skipped" field.
func UnitsSkippedGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldUnitsSkipped, v))
}

// UnitsSkippedGTE applies the GTE predicate on the "units_skipped" field.
func UnitsSkippedGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldUnitsSkipped, v))
}

// UnitsSkippedLT applies the LT predicate on the "units_skipped" field.
func UnitsSkippedLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldUnitsSkipped, v))
}

// UnitsSkippedLTE applies the LTE predicate on the "units_skipped" field.
func UnitsSkippedLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldUnitsSkipped, v))
}

// RawRecordsEQ applies the EQ predicate on the "raw_records" field.
func RawRecordsEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldRawRecords, v))
}

// RawRecordsNEQ applies the NEQ predicate on the "raw_records" field.
func RawRecordsNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldRawRecords, v))
}

// RawRecordsIn applies the In predicate on the "raw_records" field.
func RawRecordsIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldRawRecords, vs...))
}

// RawRecordsNotIn applies the NotIn predicate on the "raw_records" field.
func RawRecordsNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldRawRecords, vs...))
}

// RawRecordsGT applies the GT predicate on the "raw_records" field.
func RawRecordsGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldRawRecords, v))
}

// RawRecordsGTE applies the GTE predicate on the "raw_records" field.
func RawRecordsGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldRawRecords, v))
}

// RawRecordsLT applies the LT predicate on the "raw_records" field.
func RawRecordsLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldRawRecords, v))
}

// RawRecordsLTE applies the LTE predicate on the "raw_records" field.
func RawRecordsLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldRawRecords, v))
}

// CleanedRecordsEQ applies the EQ predicate on the "cleaned_records" field.
func CleanedRecordsEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCleanedRecords, v))
}

// CleanedRecordsNEQ applies the NEQ predicate on the "cleaned_records" field.
func CleanedRecordsNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCleanedRecords, v))
}

// CleanedRecordsIn applies the In predicate on the "cleaned_records" field.
func CleanedRecordsIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCleanedRecords, vs...))
}

// CleanedRecordsNotIn applies the NotIn predicate on the "cleaned_records" field.
func CleanedRecordsNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCleanedRecords, vs...))
}

// CleanedRecordsGT applies the GT predicate on the "cleaned_records" field.
func CleanedRecordsGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCleanedRecords, v))
}

// CleanedRecordsGTE applies the GTE predicate on the "cleaned_records" field.
func CleanedRecordsGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCleanedRecords, v))
}

// CleanedRecordsLT applies the LT predicate on the "cleaned_records" field.
func CleanedRecordsLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCleanedRecords, v))
}

// CleanedRecordsLTE applies the LTE predicate on the "cleaned_records" field.
func CleanedRecordsLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCleanedRecords, v))
}

// TotalHoursEQ applies the EQ predicate on the "total_hours" field.
func TotalHoursEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldTotalHours, v))
}

// TotalHoursNEQ applies the NEQ predicate on the "total_hours" field.
func TotalHoursNEQ(v int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldTotalHours, v))
}

// TotalHoursIn applies the In predicate on the "total_hours" field.
func TotalHoursIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldTotalHours, vs...))
}

// TotalHoursNotIn applies the NotIn predicate on the "total_hours" field.
func TotalHoursNotIn(vs ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldTotalHours, vs...))
}

// TotalHoursGT applies the GT predicate on the "total_hours" field.
func TotalHoursGT(v int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldTotalHours, v))
}

// TotalHoursGTE applies the GTE predicate on the "total_hours" field.
func TotalHoursGTE(v int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldTotalHours, v))
}

// TotalHoursLT applies the LT predicate on the "total_hours" field.
func TotalHoursLT(v int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldTotalHours, v))
}

// TotalHoursLTE applies the LTE predicate on the "total_hours" field.
func TotalHoursLTE(v int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldTotalHours, v))
}

// StatsIsNil applies the IsNil predicate on the "stats" field.
func StatsIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldStats))
}

// StatsNotNil applies the NotNil predicate on the "stats" field.
func StatsNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldStats))
}

// HasRecords applies the HasEdge predicate on the "records" edge.
func HasRecords() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecordsTable, RecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecordsWith applies the HasEdge predicate on the "records" edge with a given conditions (other predicates).
func HasRecordsWith(preds ...predicate.CourseRecord) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Run) predicate.Run {
	return predicate.Run(sql.NotPredicates(p))
}
