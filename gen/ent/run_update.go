// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/course-stats/gen/ent/courserecord"
	"github.com/joseph-ayodele/course-stats/gen/ent/predicate"
	"github.com/joseph-ayodele/course-stats/gen/ent/run"
)

// RunUpdate is the builder for updating Run entities.
type RunUpdate struct {
	config
	hooks    []Hook
	mutation *RunMutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdate) Where(ps ...predicate.Run) *RunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInputRoot sets the "input_root" field.
func (_u *RunUpdate) SetInputRoot(v string) *RunUpdate {
	_u.mutation.SetInputRoot(v)
	return _u
}

// SetNillableInputRoot sets the "input_root" field if the given value is not nil.
func (_u *RunUpdate) SetNillableInputRoot(v *string) *RunUpdate {
	if v != nil {
		_u.SetInputRoot(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RunUpdate) SetFinishedAt(v time.Time) *RunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableFinishedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RunUpdate) ClearFinishedAt() *RunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdate) SetStatus(v string) *RunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStatus(v *string) *RunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunUpdate) SetErrorMessage(v string) *RunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunUpdate) SetNillableErrorMessage(v *string) *RunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunUpdate) ClearErrorMessage() *RunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFilesScanned sets the "files_scanned" field.
func (_u *RunUpdate) SetFilesScanned(v int) *RunUpdate {
	_u.mutation.ResetFilesScanned()
	_u.mutation.SetFilesScanned(v)
	return _u
}

// SetNillableFilesScanned sets the "files_scanned" field if the given value is not nil.
func (_u *RunUpdate) SetNillableFilesScanned(v *int) *RunUpdate {
	if v != nil {
		_u.SetFilesScanned(*v)
	}
	return _u
}

// AddFilesScanned adds value to the "files_scanned" field.
func (_u *RunUpdate) AddFilesScanned(v int) *RunUpdate {
	_u.mutation.AddFilesScanned(v)
	return _u
}

// SetFilesFailed sets the "files_failed" field.
func (_u *RunUpdate) SetFilesFailed(v int) *RunUpdate {
	_u.mutation.ResetFilesFailed()
	_u.mutation.SetFilesFailed(v)
	return _u
}

// SetNillableFilesFailed sets the "files_failed" field if the given value is not nil.
func (_u *RunUpdate) SetNillableFilesFailed(v *int) *RunUpdate {
	if v != nil {
		_u.SetFilesFailed(*v)
	}
	return _u
}

// AddFilesFailed adds value to the "files_failed" field.
func (_u *RunUpdate) AddFilesFailed(v int) *RunUpdate {
	_u.mutation.AddFilesFailed(v)
	return _u
}

// SetUnitsProcessed sets the "units_processed" field.
func (_u *RunUpdate) SetUnitsProcessed(v int) *RunUpdate {
	_u.mutation.ResetUnitsProcessed()
	_u.mutation.SetUnitsProcessed(v)
	return _u
}

// SetNillableUnitsProcessed sets the "units_processed" field if the given value is not nil.
func (_u *RunUpdate) SetNillableUnitsProcessed(v *int) *RunUpdate {
	if v != nil {
		_u.SetUnitsProcessed(*v)
	}
	return _u
}

// AddUnitsProcessed adds value to the "units_processed" field.
func (_u *RunUpdate) AddUnitsProcessed(v int) *RunUpdate {
	_u.mutation.AddUnitsProcessed(v)
	return _u
}

// SetUnitsSkipped sets the "units_skipped" field.
func (_u *RunUpdate) SetUnitsSkipped(v int) *RunUpdate {
	_u.mutation.ResetUnitsSkipped()
	_u.mutation.SetUnitsSkipped(v)
	return _u
}

// SetNillableUnitsSkipped sets the "units_skipped" field if the given value is not nil.
func (_u *RunUpdate) SetNillableUnitsSkipped(v *int) *RunUpdate {
	if v != nil {
		_u.SetUnitsSkipped(*v)
	}
	return _u
}

// AddUnitsSkipped adds value to the "units_skipped" field.
func (_u *RunUpdate) AddUnitsSkipped(v int) *RunUpdate {
	_u.mutation.AddUnitsSkipped(v)
	return _u
}

// SetRawRecords sets the "raw_records" field.
func (_u *RunUpdate) SetRawRecords(v int) *RunUpdate {
	_u.mutation.ResetRawRecords()
	_u.mutation.SetRawRecords(v)
	return _u
}

// SetNillableRawRecords sets the "raw_records" field if the given value is not nil.
func (_u *RunUpdate) SetNillableRawRecords(v *int) *RunUpdate {
	if v != nil {
		_u.SetRawRecords(*v)
	}
	return _u
}

// AddRawRecords adds value to the "raw_records" field.
func (_u *RunUpdate) AddRawRecords(v int) *RunUpdate {
	_u.mutation.AddRawRecords(v)
	return _u
}

// SetCleanedRecords sets the "cleaned_records" field.
func (_u *RunUpdate) SetCleanedRecords(v int) *RunUpdate {
	_u.mutation.ResetCleanedRecords()
	_u.mutation.SetCleanedRecords(v)
	return _u
}

// SetNillableCleanedRecords sets the "cleaned_records" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCleanedRecords(v *int) *RunUpdate {
	if v != nil {
		_u.SetCleanedRecords(*v)
	}
	return _u
}

// AddCleanedRecords adds value to the "cleaned_records" field.
func (_u *RunUpdate) AddCleanedRecords(v int) *RunUpdate {
	_u.mutation.AddCleanedRecords(v)
	return _u
}

// SetTotalHours sets the "total_hours" field.
func (_u *RunUpdate) SetTotalHours(v int) *RunUpdate {
	_u.mutation.ResetTotalHours()
	_u.mutation.SetTotalHours(v)
	return _u
}

// SetNillableTotalHours sets the "total_hours" field if the given value is not nil.
func (_u *RunUpdate) SetNillableTotalHours(v *int) *RunUpdate {
	if v != nil {
		_u.SetTotalHours(*v)
	}
	return _u
}

// AddTotalHours adds value to the "total_hours" field.
func (_u *RunUpdate) AddTotalHours(v int) *RunUpdate {
	_u.mutation.AddTotalHours(v)
	return _u
}

// SetStats sets the "stats" field.
func (_u *RunUpdate) SetStats(v json.RawMessage) *RunUpdate {
	_u.mutation.SetStats(v)
	return _u
}

// AppendStats appends value to the "stats" field.
func (_u *RunUpdate) AppendStats(v json.RawMessage) *RunUpdate {
	_u.mutation.AppendStats(v)
	return _u
}

// ClearStats clears the value of the "stats" field.
func (_u *RunUpdate) ClearStats() *RunUpdate {
	_u.mutation.ClearStats()
	return _u
}

// AddRecordIDs adds the "records" edge to the CourseRecord entity by IDs.
func (_u *RunUpdate) AddRecordIDs(ids ...int) *RunUpdate {
	_u.mutation.AddRecordIDs(ids...)
	return _u
}

// AddRecords adds the "records" edges to the CourseRecord entity.
func (_u *RunUpdate) AddRecords(v ...*CourseRecord) *RunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdate) Mutation() *RunMutation {
	return _u.mutation
}

// ClearRecords clears all "records" edges to the CourseRecord entity.
func (_u *RunUpdate) ClearRecords() *RunUpdate {
	_u.mutation.ClearRecords()
	return _u
}

// RemoveRecordIDs removes the "records" edge to CourseRecord entities by IDs.
func (_u *RunUpdate) RemoveRecordIDs(ids ...int) *RunUpdate {
	_u.mutation.RemoveRecordIDs(ids...)
	return _u
}

// RemoveRecords removes "records" edges to CourseRecord entities.
func (_u *RunUpdate) RemoveRecords(v ...*CourseRecord) *RunUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilesScanned(); ok {
		if err := run.FilesScannedValidator(v); err != nil {
			return &ValidationError{Name: "files_scanned", err: fmt.Errorf(`ent: validator failed for field "Run.files_scanned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilesFailed(); ok {
		if err := run.FilesFailedValidator(v); err != nil {
			return &ValidationError{Name: "files_failed", err: fmt.Errorf(`ent: validator failed for field "Run.files_failed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitsProcessed(); ok {
		if err := run.UnitsProcessedValidator(v); err != nil {
			return &ValidationError{Name: "units_processed", err: fmt.Errorf(`ent: validator failed for field "Run.units_processed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitsSkipped(); ok {
		if err := run.UnitsSkippedValidator(v); err != nil {
			return &ValidationError{Name: "units_skipped", err: fmt.Errorf(`ent: validator failed for field "Run.units_skipped": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RawRecords(); ok {
		if err := run.RawRecordsValidator(v); err != nil {
			return &ValidationError{Name: "raw_records", err: fmt.Errorf(`ent: validator failed for field "Run.raw_records": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CleanedRecords(); ok {
		if err := run.CleanedRecordsValidator(v); err != nil {
			return &ValidationError{Name: "cleaned_records", err: fmt.Errorf(`ent: validator failed for field "Run.cleaned_records": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalHours(); ok {
		if err := run.TotalHoursValidator(v); err != nil {
			return &ValidationError{Name: "total_hours", err: fmt.Errorf(`ent: validator failed for field "Run.total_hours": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InputRoot(); ok {
		_spec.SetField(run.FieldInputRoot, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(run.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(run.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(run.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FilesScanned(); ok {
		_spec.SetField(run.FieldFilesScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFilesScanned(); ok {
		_spec.AddField(run.FieldFilesScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FilesFailed(); ok {
		_spec.SetField(run.FieldFilesFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFilesFailed(); ok {
		_spec.AddField(run.FieldFilesFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitsProcessed(); ok {
		_spec.SetField(run.FieldUnitsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnitsProcessed(); ok {
		_spec.AddField(run.FieldUnitsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitsSkipped(); ok {
		_spec.SetField(run.FieldUnitsSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnitsSkipped(); ok {
		_spec.AddField(run.FieldUnitsSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RawRecords(); ok {
		_spec.SetField(run.FieldRawRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRawRecords(); ok {
		_spec.AddField(run.FieldRawRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CleanedRecords(); ok {
		_spec.SetField(run.FieldCleanedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCleanedRecords(); ok {
		_spec.AddField(run.FieldCleanedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalHours(); ok {
		_spec.SetField(run.FieldTotalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalHours(); ok {
		_spec.AddField(run.FieldTotalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stats(); ok {
		_spec.SetField(run.FieldStats, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStats(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, run.FieldStats, value)
		})
	}
	if _u.mutation.StatsCleared() {
		_spec.ClearField(run.FieldStats, field.TypeJSON)
	}
	if _u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RecordsTable,
			Columns: []string{run.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courserecord.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordsIDs(); len(nodes) > 0 && !_u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RecordsTable,
			Columns: []string{run.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courserecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RecordsTable,
			Columns: []string{run.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courserecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunUpdateOne is the builder for updating a single Run entity.
type RunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunMutation
}

// SetInputRoot sets the "input_root" field.
func (_u *RunUpdateOne) SetInputRoot(v string) *RunUpdateOne {
	_u.mutation.SetInputRoot(v)
	return _u
}

// SetNillableInputRoot sets the "input_root" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableInputRoot(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetInputRoot(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *RunUpdateOne) SetFinishedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableFinishedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *RunUpdateOne) ClearFinishedAt() *RunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdateOne) SetStatus(v string) *RunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStatus(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunUpdateOne) SetErrorMessage(v string) *RunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableErrorMessage(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunUpdateOne) ClearErrorMessage() *RunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFilesScanned sets the "files_scanned" field.
func (_u *RunUpdateOne) SetFilesScanned(v int) *RunUpdateOne {
	_u.mutation.ResetFilesScanned()
	_u.mutation.SetFilesScanned(v)
	return _u
}

// SetNillableFilesScanned sets the "files_scanned" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableFilesScanned(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetFilesScanned(*v)
	}
	return _u
}

// AddFilesScanned adds value to the "files_scanned" field.
func (_u *RunUpdateOne) AddFilesScanned(v int) *RunUpdateOne {
	_u.mutation.AddFilesScanned(v)
	return _u
}

// SetFilesFailed sets the "files_failed" field.
func (_u *RunUpdateOne) SetFilesFailed(v int) *RunUpdateOne {
	_u.mutation.ResetFilesFailed()
	_u.mutation.SetFilesFailed(v)
	return _u
}

// SetNillableFilesFailed sets the "files_failed" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableFilesFailed(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetFilesFailed(*v)
	}
	return _u
}

// AddFilesFailed adds value to the "files_failed" field.
func (_u *RunUpdateOne) AddFilesFailed(v int) *RunUpdateOne {
	_u.mutation.AddFilesFailed(v)
	return _u
}

// SetUnitsProcessed sets the "units_processed" field.
func (_u *RunUpdateOne) SetUnitsProcessed(v int) *RunUpdateOne {
	_u.mutation.ResetUnitsProcessed()
	_u.mutation.SetUnitsProcessed(v)
	return _u
}

// SetNillableUnitsProcessed sets the "units_processed" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableUnitsProcessed(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetUnitsProcessed(*v)
	}
	return _u
}

// AddUnitsProcessed adds value to the "units_processed" field.
func (_u *RunUpdateOne) AddUnitsProcessed(v int) *RunUpdateOne {
	_u.mutation.AddUnitsProcessed(v)
	return _u
}

// SetUnitsSkipped sets the "units_skipped" field.
func (_u *RunUpdateOne) SetUnitsSkipped(v int) *RunUpdateOne {
	_u.mutation.ResetUnitsSkipped()
	_u.mutation.SetUnitsSkipped(v)
	return _u
}

// SetNillableUnitsSkipped sets the "units_skipped" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableUnitsSkipped(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetUnitsSkipped(*v)
	}
	return _u
}

// AddUnitsSkipped adds value to the "units_skipped" field.
func (_u *RunUpdateOne) AddUnitsSkipped(v int) *RunUpdateOne {
	_u.mutation.AddUnitsSkipped(v)
	return _u
}

// SetRawRecords sets the "raw_records" field.
func (_u *RunUpdateOne) SetRawRecords(v int) *RunUpdateOne {
	_u.mutation.ResetRawRecords()
	_u.mutation.SetRawRecords(v)
	return _u
}

// SetNillableRawRecords sets the "raw_records" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableRawRecords(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetRawRecords(*v)
	}
	return _u
}

// AddRawRecords adds value to the "raw_records" field.
func (_u *RunUpdateOne) AddRawRecords(v int) *RunUpdateOne {
	_u.mutation.AddRawRecords(v)
	return _u
}

// SetCleanedRecords sets the "cleaned_records" field.
func (_u *RunUpdateOne) SetCleanedRecords(v int) *RunUpdateOne {
	_u.mutation.ResetCleanedRecords()
	_u.mutation.SetCleanedRecords(v)
	return _u
}

// SetNillableCleanedRecords sets the "cleaned_records" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCleanedRecords(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetCleanedRecords(*v)
	}
	return _u
}

// AddCleanedRecords adds value to the "cleaned_records" field.
func (_u *RunUpdateOne) AddCleanedRecords(v int) *RunUpdateOne {
	_u.mutation.AddCleanedRecords(v)
	return _u
}

// SetTotalHours sets the "total_hours" field.
func (_u *RunUpdateOne) SetTotalHours(v int) *RunUpdateOne {
	_u.mutation.ResetTotalHours()
	_u.mutation.SetTotalHours(v)
	return _u
}

// SetNillableTotalHours sets the "total_hours" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableTotalHours(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetTotalHours(*v)
	}
	return _u
}

// AddTotalHours adds value to the "total_hours" field.
func (_u *RunUpdateOne) AddTotalHours(v int) *RunUpdateOne {
	_u.mutation.AddTotalHours(v)
	return _u
}

// SetStats sets the "stats" field.
func (_u *RunUpdateOne) SetStats(v json.RawMessage) *RunUpdateOne {
	_u.mutation.SetStats(v)
	return _u
}

// AppendStats appends value to the "stats" field.
func (_u *RunUpdateOne) AppendStats(v json.RawMessage) *RunUpdateOne {
	_u.mutation.AppendStats(v)
	return _u
}

// ClearStats clears the value of the "stats" field.
func (_u *RunUpdateOne) ClearStats() *RunUpdateOne {
	_u.mutation.ClearStats()
	return _u
}

// AddRecordIDs adds the "records" edge to the CourseRecord entity by IDs.
func (_u *RunUpdateOne) AddRecordIDs(ids ...int) *RunUpdateOne {
	_u.mutation.AddRecordIDs(ids...)
	return _u
}

// AddRecords adds the "records" edges to the CourseRecord entity.
func (_u *RunUpdateOne) AddRecords(v ...*CourseRecord) *RunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdateOne) Mutation() *RunMutation {
	return _u.mutation
}

// ClearRecords clears all "records" edges to the CourseRecord entity.
func (_u *RunUpdateOne) ClearRecords() *RunUpdateOne {
	_u.mutation.ClearRecords()
	return _u
}

// RemoveRecordIDs removes the "records" edge to CourseRecord entities by IDs.
func (_u *RunUpdateOne) RemoveRecordIDs(ids ...int) *RunUpdateOne {
	_u.mutation.RemoveRecordIDs(ids...)
	return _u
}

// RemoveRecords removes "records" edges to CourseRecord entities.
func (_u *RunUpdateOne) RemoveRecords(v ...*CourseRecord) *RunUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordIDs(ids...)
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdateOne) Where(ps ...predicate.Run) *RunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunUpdateOne) Select(field string, fields ...string) *RunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Run entity.
func (_u *RunUpdateOne) Save(ctx context.Context) (*Run, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdateOne) SaveX(ctx context.Context) *Run {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilesScanned(); ok {
		if err := run.FilesScannedValidator(v); err != nil {
			return &ValidationError{Name: "files_scanned", err: fmt.Errorf(`ent: validator failed for field "Run.files_scanned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilesFailed(); ok {
		if err := run.FilesFailedValidator(v); err != nil {
			return &ValidationError{Name: "files_failed", err: fmt.Errorf(`ent: validator failed for field "Run.files_failed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitsProcessed(); ok {
		if err := run.UnitsProcessedValidator(v); err != nil {
			return &ValidationError{Name: "units_processed", err: fmt.Errorf(`ent: validator failed for field "Run.units_processed": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitsSkipped(); ok {
		if err := run.UnitsSkippedValidator(v); err != nil {
			return &ValidationError{Name: "units_skipped", err: fmt.Errorf(`ent: validator failed for field "Run.units_skipped": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RawRecords(); ok {
		if err := run.RawRecordsValidator(v); err != nil {
			return &ValidationError{Name: "raw_records", err: fmt.Errorf(`ent: validator failed for field "Run.raw_records": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CleanedRecords(); ok {
		if err := run.CleanedRecordsValidator(v); err != nil {
			return &ValidationError{Name: "cleaned_records", err: fmt.Errorf(`ent: validator failed for field "Run.cleaned_records": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalHours(); ok {
		if err := run.TotalHoursValidator(v); err != nil {
			return &ValidationError{Name: "total_hours", err: fmt.Errorf(`ent: validator failed for field "Run.total_hours": %w`, err)}
		}
	}
	return nil
}

func (_u *RunUpdateOne) sqlSave(ctx context.Context) (_node *Run, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Run.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for _, f := range fields {
			if !run.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != run.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.InputRoot(); ok {
		_spec.SetField(run.FieldInputRoot, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(run.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(run.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(run.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FilesScanned(); ok {
		_spec.SetField(run.FieldFilesScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFilesScanned(); ok {
		_spec.AddField(run.FieldFilesScanned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FilesFailed(); ok {
		_spec.SetField(run.FieldFilesFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFilesFailed(); ok {
		_spec.AddField(run.FieldFilesFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitsProcessed(); ok {
		_spec.SetField(run.FieldUnitsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnitsProcessed(); ok {
		_spec.AddField(run.FieldUnitsProcessed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitsSkipped(); ok {
		_spec.SetField(run.FieldUnitsSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnitsSkipped(); ok {
		_spec.AddField(run.FieldUnitsSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RawRecords(); ok {
		_spec.SetField(run.FieldRawRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRawRecords(); ok {
		_spec.AddField(run.FieldRawRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CleanedRecords(); ok {
		_spec.SetField(run.FieldCleanedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCleanedRecords(); ok {
		_spec.AddField(run.FieldCleanedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalHours(); ok {
		_spec.SetField(run.FieldTotalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalHours(); ok {
		_spec.AddField(run.FieldTotalHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Stats(); ok {
		_spec.SetField(run.FieldStats, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStats(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, run.FieldStats, value)
		})
	}
	if _u.mutation.StatsCleared() {
		_spec.ClearField(run.FieldStats, field.TypeJSON)
	}
	if _u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RecordsTable,
			Columns: []string{run.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courserecord.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordsIDs(); len(nodes) > 0 && !_u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RecordsTable,
			Columns: []string{run.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courserecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.RecordsTable,
			Columns: []string{run.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(courserecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Run{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
