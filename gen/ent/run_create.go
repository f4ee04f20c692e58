// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/course-stats/gen/ent/courserecord"
	"github.com/joseph-ayodele/course-stats/gen/ent/run"
)

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
}

// SetInputRoot sets the "input_root" field.
func (_c *RunCreate) SetInputRoot(v string) *RunCreate {
	_c.mutation.SetInputRoot(v)
	return _c
}

// SetNillableInputRoot sets the "input_root" field if the given value is not nil.
func (_c *RunCreate) SetNillableInputRoot(v *string) *RunCreate {
	if v != nil {
		_c.SetInputRoot(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunCreate) SetStartedAt(v time.Time) *RunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableStartedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *RunCreate) SetFinishedAt(v time.Time) *RunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableFinishedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunCreate) SetStatus(v string) *RunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RunCreate) SetErrorMessage(v string) *RunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RunCreate) SetNillableErrorMessage(v *string) *RunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetFilesScanned sets the "files_scanned" field.
func (_c *RunCreate) SetFilesScanned(v int) *RunCreate {
	_c.mutation.SetFilesScanned(v)
	return _c
}

// SetNillableFilesScanned sets the "files_scanned" field if the given value is not nil.
func (_c *RunCreate) SetNillableFilesScanned(v *int) *RunCreate {
	if v != nil {
		_c.SetFilesScanned(*v)
	}
	return _c
}

// SetFilesFailed sets the "files_failed" field.
func (_c *RunCreate) SetFilesFailed(v int) *RunCreate {
	_c.mutation.SetFilesFailed(v)
	return _c
}

// SetNillableFilesFailed sets the "files_failed" field if the given value is not nil.
func (_c *RunCreate) SetNillableFilesFailed(v *int) *RunCreate {
	if v != nil {
		_c.SetFilesFailed(*v)
	}
	return _c
}

// SetUnitsProcessed sets the "units_processed" field.
func (_c *RunCreate) SetUnitsProcessed(v int) *RunCreate {
	_c.mutation.SetUnitsProcessed(v)
	return _c
}

// SetNillableUnitsProcessed sets the "units_processed" field if the given value is not nil.
func (_c *RunCreate) SetNillableUnitsProcessed(v *int) *RunCreate {
	if v != nil {
		_c.SetUnitsProcessed(*v)
	}
	return _c
}

// SetUnitsSkipped sets the "units_skipped" field.
func (_c *RunCreate) SetUnitsSkipped(v int) *RunCreate {
	_c.mutation.SetUnitsSkipped(v)
	return _c
}

// SetNillableUnitsSkipped sets the "units_skipped" field if the given value is not nil.
func (_c *RunCreate) SetNillableUnitsSkipped(v *int) *RunCreate {
	if v != nil {
		_c.SetUnitsSkipped(*v)
	}
	return _c
}

// SetRawRecords sets the "raw_records" field.
func (_c *RunCreate) SetRawRecords(v int) *RunCreate {
	_c.mutation.SetRawRecords(v)
	return _c
}

// SetNillableRawRecords sets the "raw_records" field if the given value is not nil.
func (_c *RunCreate) SetNillableRawRecords(v *int) *RunCreate {
	if v != nil {
		_c.SetRawRecords(*v)
	}
	return _c
}

// SetCleanedRecords sets the "cleaned_records" field.
func (_c *RunCreate) SetCleanedRecords(v int) *RunCreate {
	_c.mutation.SetCleanedRecords(v)
	return _c
}

// SetNillableCleanedRecords sets the "cleaned_records" field if the given value is not nil.
func (_c *RunCreate) SetNillableCleanedRecords(v *int) *RunCreate {
	if v != nil {
		_c.SetCleanedRecords(*v)
	}
	return _c
}

// SetTotalHours sets the "total_hours" field.
func (_c *RunCreate) SetTotalHours(v int) *RunCreate {
	_c.mutation.SetTotalHours(v)
	return _c
}

// SetNillableTotalHours sets the "total_hours" field if the given value is not nil.
func (_c *RunCreate) SetNillableTotalHours(v *int) *RunCreate {
	if v != nil {
		_c.SetTotalHours(*v)
	}
	return _c
}

// SetStats sets the "stats" field.
func (_c *RunCreate) SetStats(v json.RawMessage) *RunCreate {
	_c.mutation.SetStats(v)
	return _c
}

// SetID sets the "id" field.
func (_c *RunCreate) SetID(v uuid.UUID) *RunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RunCreate) SetNillableID(v *uuid.UUID) *RunCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddRecordIDs adds the "records" edge to the CourseRecord entity by IDs.
func (_c *RunCreate) AddRecordIDs(ids ...int) *RunCreate {
	_c.mutation.AddRecordIDs(ids...)
	return _c
}

// AddRecords adds the "records" edges to the CourseRecord entity.
func (_c *RunCreate) AddRecords(v ...*CourseRecord) *RunCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRecordIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.InputRoot(); !ok {
		v := run.DefaultInputRoot
		_c.mutation.SetInputRoot(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := run.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.FilesScanned(); !ok {
		v := run.DefaultFilesScanned
		_c.mutation.SetFilesScanned(v)
	}
	if _, ok := _c.mutation.FilesFailed(); !ok {
		v := run.DefaultFilesFailed
		_c.mutation.SetFilesFailed(v)
	}
	if _, ok := _c.mutation.UnitsProcessed(); !ok {
		v := run.DefaultUnitsProcessed
		_c.mutation.SetUnitsProcessed(v)
	}
	if _, ok := _c.mutation.UnitsSkipped(); !ok {
		v := run.DefaultUnitsSkipped
		_c.mutation.SetUnitsSkipped(v)
	}
	if _, ok := _c.mutation.RawRecords(); !ok {
		v := run.DefaultRawRecords
		_c.mutation.SetRawRecords(v)
	}
	if _, ok := _c.mutation.CleanedRecords(); !ok {
		v := run.DefaultCleanedRecords
		_c.mutation.SetCleanedRecords(v)
	}
	if _, ok := _c.mutation.TotalHours(); !ok {
		v := run.DefaultTotalHours
		_c.mutation.SetTotalHours(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := run.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.InputRoot(); !ok {
		return &ValidationError{Name: "input_root", err: errors.New(`ent: missing required field "Run.input_root"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Run.started_at"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Run.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilesScanned(); !ok {
		return &ValidationError{Name: "files_scanned", err: errors.New(`ent: missing required field "Run.files_scanned"`)}
	}
	if v, ok := _c.mutation.FilesScanned(); ok {
		if err := run.FilesScannedValidator(v); err != nil {
			return &ValidationError{Name: "files_scanned", err: fmt.Errorf(`ent: validator failed for field "Run.files_scanned": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilesFailed(); !ok {
		return &ValidationError{Name: "files_failed", err: errors.New(`ent: missing required field "Run.files_failed"`)}
	}
	if v, ok := _c.mutation.FilesFailed(); ok {
		if err := run.FilesFailedValidator(v); err != nil {
			return &ValidationError{Name: "files_failed", err: fmt.Errorf(`ent: validator failed for field "Run.files_failed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitsProcessed(); !ok {
		return &ValidationError{Name: "units_processed", err: errors.New(`ent: missing required field "Run.units_processed"`)}
	}
	if v, ok := _c.mutation.UnitsProcessed(); ok {
		if err := run.UnitsProcessedValidator(v); err != nil {
			return &ValidationError{Name: "units_processed", err: fmt.Errorf(`ent: validator failed for field "Run.units_processed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitsSkipped(); !ok {
		return &ValidationError{Name: "units_skipped", err: errors.New(`ent: missing required field "Run.units_skipped"`)}
	}
	if v, ok := _c.mutation.UnitsSkipped(); ok {
		if err := run.UnitsSkippedValidator(v); err != nil {
			return &ValidationError{Name: "units_skipped", err: fmt.Errorf(`ent: validator failed for field "Run.units_skipped": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawRecords(); !ok {
		return &ValidationError{Name: "raw_records", err: errors.New(`ent: missing required field "Run.raw_records"`)}
	}
	if v, ok := _c.mutation.RawRecords(); ok {
		if err := run.RawRecordsValidator(v); err != nil {
			return &ValidationError{Name: "raw_records", err: fmt.Errorf(`ent: validator failed for field "Run.raw_records": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CleanedRecords(); !ok {
		return &ValidationError{Name: "cleaned_records", err: errors.New(`ent: missing required field "Run.cleaned_records"`)}
	}
	if v, ok := _c.mutation.CleanedRecords(); ok {
		if err := run.CleanedRecordsValidator(v); err != nil {
			return &ValidationError{Name: "cleaned_records", err: fmt.Errorf(`ent: validator failed for field "Run.cleaned_records": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalHours(); !ok {
		return &ValidationError{Name: "total_hours", err: errors.New(`ent: missing required field "Run.total_hours"`)}
	}
	if v, ok := _c.mutation.TotalHours(); ok {
		if err := run.TotalHoursValidator(v); err != nil {
			return &ValidationError{Name: "total_hours", err: fmt.Errorf(`ent: validator failed for field "Run.total_hours": %w`, err)}
		}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.InputRoot(); ok {
		_spec.SetField(run.FieldInputRoot, field.TypeString, value)
		_node.InputRoot = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(run.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.FilesScanned(); ok {
		_spec.SetField(run.FieldFilesScanned, field.TypeInt, value)
		_node.FilesScanned = value
	}
	if value, ok := _c.mutation.FilesFailed(); ok {
		_spec.SetField(run.FieldFilesFailed, field.TypeInt, value)
		_node.FilesFailed = value
	}
	if value, ok := _c.mutation.UnitsProcessed(); ok {
		_spec.SetField(run.FieldUnitsProcessed, field.TypeInt, value)
		_node.UnitsProcessed = value
	}
	if value, ok := _c.mutation.UnitsSkipped(); ok {
		_spec.SetField(run.FieldUnitsSkipped, field.TypeInt, value)
		_node.UnitsSkipped = value
	}
	if value, ok := _c.mutation.RawRecords(); ok {
		_spec.SetField(run.FieldRawRecords, field.TypeInt, value)
		_node.RawRecords = value
	}
	if value, ok := _c.mutation.CleanedRecords(); ok {
		_spec.SetField(run.FieldCleanedRecords, field.TypeInt, value)
		_node.CleanedRecords = value
	}
	if value, ok := _c.mutation.TotalHours(); ok {
		_spec.SetField(run.FieldTotalHours, field.TypeInt, value)
		_node.TotalHours = value
	}
	if value, ok := _c.mutation.Stats(); ok {
		_spec.SetField(run.FieldStats, field.TypeJSON, value)
		_node.Stats = value
	}
	if nodes := _c.mutation.RecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
