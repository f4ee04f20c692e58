// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/course-stats/gen/ent/courserecord"
	"github.com/joseph-ayodele/course-stats/gen/ent/predicate"
	"github.com/joseph-ayodele/course-stats/gen/ent/run"
)

// CourseRecordUpdate is the builder for updating CourseRecord entities.
type CourseRecordUpdate struct {
	config
	hooks    []Hook
	mutation *CourseRecordMutation
}

// Where appends a list predicates to the CourseRecordUpdate builder.
func (_u *CourseRecordUpdate) Where(ps ...predicate.CourseRecord) *CourseRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *CourseRecordUpdate) SetRunID(v uuid.UUID) *CourseRecordUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *CourseRecordUpdate) SetNillableRunID(v *uuid.UUID) *CourseRecordUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CourseRecordUpdate) SetPosition(v int) *CourseRecordUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CourseRecordUpdate) SetNillablePosition(v *int) *CourseRecordUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CourseRecordUpdate) AddPosition(v int) *CourseRecordUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetCourseName sets the "course_name" field.
func (_u *CourseRecordUpdate) SetCourseName(v string) *CourseRecordUpdate {
	_u.mutation.SetCourseName(v)
	return _u
}

// SetNillableCourseName sets the "course_name" field if the given value is not nil.
func (_u *CourseRecordUpdate) SetNillableCourseName(v *string) *CourseRecordUpdate {
	if v != nil {
		_u.SetCourseName(*v)
	}
	return _u
}

// SetInstructor sets the "instructor" field.
func (_u *CourseRecordUpdate) SetInstructor(v string) *CourseRecordUpdate {
	_u.mutation.SetInstructor(v)
	return _u
}

// SetNillableInstructor sets the "instructor" field if the given value is not nil.
func (_u *CourseRecordUpdate) SetNillableInstructor(v *string) *CourseRecordUpdate {
	if v != nil {
		_u.SetInstructor(*v)
	}
	return _u
}

// SetHours sets the "hours" field.
func (_u *CourseRecordUpdate) SetHours(v int) *CourseRecordUpdate {
	_u.mutation.ResetHours()
	_u.mutation.SetHours(v)
	return _u
}

// SetNillableHours sets the "hours" field if the given value is not nil.
func (_u *CourseRecordUpdate) SetNillableHours(v *int) *CourseRecordUpdate {
	if v != nil {
		_u.SetHours(*v)
	}
	return _u
}

// AddHours adds value to the "hours" field.
func (_u *CourseRecordUpdate) AddHours(v int) *CourseRecordUpdate {
	_u.mutation.AddHours(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *CourseRecordUpdate) SetCategory(v string) *CourseRecordUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CourseRecordUpdate) SetNillableCategory(v *string) *CourseRecordUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetWeek sets the "week" field.
func (_u *CourseRecordUpdate) SetWeek(v string) *CourseRecordUpdate {
	_u.mutation.SetWeek(v)
	return _u
}

// SetNillableWeek sets the "week" field if the given value is not nil.
func (_u *CourseRecordUpdate) SetNillableWeek(v *string) *CourseRecordUpdate {
	if v != nil {
		_u.SetWeek(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *CourseRecordUpdate) SetLocation(v string) *CourseRecordUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *CourseRecordUpdate) SetNillableLocation(v *string) *CourseRecordUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *CourseRecordUpdate) SetSection(v string) *CourseRecordUpdate {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *CourseRecordUpdate) SetNillableSection(v *string) *CourseRecordUpdate {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetTimePeriod sets the "time_period" field.
func (_u *CourseRecordUpdate) SetTimePeriod(v string) *CourseRecordUpdate {
	_u.mutation.SetTimePeriod(v)
	return _u
}

// SetNillableTimePeriod sets the "time_period" field if the given value is not nil.
func (_u *CourseRecordUpdate) SetNillableTimePeriod(v *string) *CourseRecordUpdate {
	if v != nil {
		_u.SetTimePeriod(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *CourseRecordUpdate) SetNote(v string) *CourseRecordUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *CourseRecordUpdate) SetNillableNote(v *string) *CourseRecordUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *CourseRecordUpdate) SetSourceFile(v string) *CourseRecordUpdate {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *CourseRecordUpdate) SetNillableSourceFile(v *string) *CourseRecordUpdate {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// SetSheetOrPage sets the "sheet_or_page" field.
func (_u *CourseRecordUpdate) SetSheetOrPage(v string) *CourseRecordUpdate {
	_u.mutation.SetSheetOrPage(v)
	return _u
}

// SetNillableSheetOrPage sets the "sheet_or_page" field if the given value is not nil.
func (_u *CourseRecordUpdate) SetNillableSheetOrPage(v *string) *CourseRecordUpdate {
	if v != nil {
		_u.SetSheetOrPage(*v)
	}
	return _u
}

// SetSourceLocator sets the "source_locator" field.
func (_u *CourseRecordUpdate) SetSourceLocator(v string) *CourseRecordUpdate {
	_u.mutation.SetSourceLocator(v)
	return _u
}

// SetNillableSourceLocator sets the "source_locator" field if the given value is not nil.
func (_u *CourseRecordUpdate) SetNillableSourceLocator(v *string) *CourseRecordUpdate {
	if v != nil {
		_u.SetSourceLocator(*v)
	}
	return _u
}

// SetSourceText sets the "source_text" field.
func (_u *CourseRecordUpdate) SetSourceText(v string) *CourseRecordUpdate {
	_u.mutation.SetSourceText(v)
	return _u
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_u *CourseRecordUpdate) SetNillableSourceText(v *string) *CourseRecordUpdate {
	if v != nil {
		_u.SetSourceText(*v)
	}
	return _u
}

// SetRun sets the "run" edge to the Run entity.
func (_u *CourseRecordUpdate) SetRun(v *Run) *CourseRecordUpdate {
	return _u.SetRunID(v.ID)
}

// Mutation returns the CourseRecordMutation object of the builder.
func (_u *CourseRecordUpdate) Mutation() *CourseRecordMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the Run entity.
func (_u *CourseRecordUpdate) ClearRun() *CourseRecordUpdate {
	_u.mutation.ClearRun()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseRecordUpdate) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := courserecord.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "CourseRecord.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseName(); ok {
		if err := courserecord.CourseNameValidator(v); err != nil {
			return &ValidationError{Name: "course_name", err: fmt.Errorf(`ent: validator failed for field "CourseRecord.course_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Hours(); ok {
		if err := courserecord.HoursValidator(v); err != nil {
			return &ValidationError{Name: "hours", err: fmt.Errorf(`ent: validator failed for field "CourseRecord.hours": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CourseRecord.run"`)
	}
	return nil
}

func (_u *CourseRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courserecord.Table, courserecord.Columns, sqlgraph.NewFieldSpec(courserecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(courserecord.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(courserecord.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CourseName(); ok {
		_spec.SetField(courserecord.FieldCourseName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Instructor(); ok {
		_spec.SetField(courserecord.FieldInstructor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hours(); ok {
		_spec.SetField(courserecord.FieldHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHours(); ok {
		_spec.AddField(courserecord.FieldHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(courserecord.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Week(); ok {
		_spec.SetField(courserecord.FieldWeek, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(courserecord.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(courserecord.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimePeriod(); ok {
		_spec.SetField(courserecord.FieldTimePeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(courserecord.FieldNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(courserecord.FieldSourceFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.SheetOrPage(); ok {
		_spec.SetField(courserecord.FieldSheetOrPage, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceLocator(); ok {
		_spec.SetField(courserecord.FieldSourceLocator, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceText(); ok {
		_spec.SetField(courserecord.FieldSourceText, field.TypeString, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   courserecord.RunTable,
			Columns: []string{courserecord.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   courserecord.RunTable,
			Columns: []string{courserecord.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courserecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseRecordUpdateOne is the builder for updating a single CourseRecord entity.
type CourseRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseRecordMutation
}

// SetRunID sets the "run_id" field.
func (_u *CourseRecordUpdateOne) SetRunID(v uuid.UUID) *CourseRecordUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *CourseRecordUpdateOne) SetNillableRunID(v *uuid.UUID) *CourseRecordUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *CourseRecordUpdateOne) SetPosition(v int) *CourseRecordUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *CourseRecordUpdateOne) SetNillablePosition(v *int) *CourseRecordUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *CourseRecordUpdateOne) AddPosition(v int) *CourseRecordUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetCourseName sets the "course_name" field.
func (_u *CourseRecordUpdateOne) SetCourseName(v string) *CourseRecordUpdateOne {
	_u.mutation.SetCourseName(v)
	return _u
}

// SetNillableCourseName sets the "course_name" field if the given value is not nil.
func (_u *CourseRecordUpdateOne) SetNillableCourseName(v *string) *CourseRecordUpdateOne {
	if v != nil {
		_u.SetCourseName(*v)
	}
	return _u
}

// SetInstructor sets the "instructor" field.
func (_u *CourseRecordUpdateOne) SetInstructor(v string) *CourseRecordUpdateOne {
	_u.mutation.SetInstructor(v)
	return _u
}

// SetNillableInstructor sets the "instructor" field if the given value is not nil.
func (_u *CourseRecordUpdateOne) SetNillableInstructor(v *string) *CourseRecordUpdateOne {
	if v != nil {
		_u.SetInstructor(*v)
	}
	return _u
}

// SetHours sets the "hours" field.
func (_u *CourseRecordUpdateOne) SetHours(v int) *CourseRecordUpdateOne {
	_u.mutation.ResetHours()
	_u.mutation.SetHours(v)
	return _u
}

// SetNillableHours sets the "hours" field if the given value is not nil.
func (_u *CourseRecordUpdateOne) SetNillableHours(v *int) *CourseRecordUpdateOne {
	if v != nil {
		_u.SetHours(*v)
	}
	return _u
}

// AddHours adds value to the "hours" field.
func (_u *CourseRecordUpdateOne) AddHours(v int) *CourseRecordUpdateOne {
	_u.mutation.AddHours(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *CourseRecordUpdateOne) SetCategory(v string) *CourseRecordUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CourseRecordUpdateOne) SetNillableCategory(v *string) *CourseRecordUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetWeek sets the "week" field.
func (_u *CourseRecordUpdateOne) SetWeek(v string) *CourseRecordUpdateOne {
	_u.mutation.SetWeek(v)
	return _u
}

// SetNillableWeek sets the "week" field if the given value is not nil.
func (_u *CourseRecordUpdateOne) SetNillableWeek(v *string) *CourseRecordUpdateOne {
	if v != nil {
		_u.SetWeek(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *CourseRecordUpdateOne) SetLocation(v string) *CourseRecordUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *CourseRecordUpdateOne) SetNillableLocation(v *string) *CourseRecordUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *CourseRecordUpdateOne) SetSection(v string) *CourseRecordUpdateOne {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *CourseRecordUpdateOne) SetNillableSection(v *string) *CourseRecordUpdateOne {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetTimePeriod sets the "time_period" field.
func (_u *CourseRecordUpdateOne) SetTimePeriod(v string) *CourseRecordUpdateOne {
	_u.mutation.SetTimePeriod(v)
	return _u
}

// SetNillableTimePeriod sets the "time_period" field if the given value is not nil.
func (_u *CourseRecordUpdateOne) SetNillableTimePeriod(v *string) *CourseRecordUpdateOne {
	if v != nil {
		_u.SetTimePeriod(*v)
	}
	return _u
}

// SetNote sets the "note" field.
func (_u *CourseRecordUpdateOne) SetNote(v string) *CourseRecordUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *CourseRecordUpdateOne) SetNillableNote(v *string) *CourseRecordUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// SetSourceFile sets the "source_file" field.
func (_u *CourseRecordUpdateOne) SetSourceFile(v string) *CourseRecordUpdateOne {
	_u.mutation.SetSourceFile(v)
	return _u
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_u *CourseRecordUpdateOne) SetNillableSourceFile(v *string) *CourseRecordUpdateOne {
	if v != nil {
		_u.SetSourceFile(*v)
	}
	return _u
}

// SetSheetOrPage sets the "sheet_or_page" field.
func (_u *CourseRecordUpdateOne) SetSheetOrPage(v string) *CourseRecordUpdateOne {
	_u.mutation.SetSheetOrPage(v)
	return _u
}

// SetNillableSheetOrPage sets the "sheet_or_page" field if the given value is not nil.
func (_u *CourseRecordUpdateOne) SetNillableSheetOrPage(v *string) *CourseRecordUpdateOne {
	if v != nil {
		_u.SetSheetOrPage(*v)
	}
	return _u
}

// SetSourceLocator sets the "source_locator" field.
func (_u *CourseRecordUpdateOne) SetSourceLocator(v string) *CourseRecordUpdateOne {
	_u.mutation.SetSourceLocator(v)
	return _u
}

// SetNillableSourceLocator sets the "source_locator" field if the given value is not nil.
func (_u *CourseRecordUpdateOne) SetNillableSourceLocator(v *string) *CourseRecordUpdateOne {
	if v != nil {
		_u.SetSourceLocator(*v)
	}
	return _u
}

// SetSourceText sets the "source_text" field.
func (_u *CourseRecordUpdateOne) SetSourceText(v string) *CourseRecordUpdateOne {
	_u.mutation.SetSourceText(v)
	return _u
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_u *CourseRecordUpdateOne) SetNillableSourceText(v *string) *CourseRecordUpdateOne {
	if v != nil {
		_u.SetSourceText(*v)
	}
	return _u
}

// SetRun sets the "run" edge to the Run entity.
func (_u *CourseRecordUpdateOne) SetRun(v *Run) *CourseRecordUpdateOne {
	return _u.SetRunID(v.ID)
}

// Mutation returns the CourseRecordMutation object of the builder.
func (_u *CourseRecordUpdateOne) Mutation() *CourseRecordMutation {
	return _u.mutation
}

// ClearRun clears the "run" edge to the Run entity.
func (_u *CourseRecordUpdateOne) ClearRun() *CourseRecordUpdateOne {
	_u.mutation.ClearRun()
	return _u
}

// Where appends a list predicates to the CourseRecordUpdate builder.
func (_u *CourseRecordUpdateOne) Where(ps ...predicate.CourseRecord) *CourseRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseRecordUpdateOne) Select(field string, fields ...string) *CourseRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CourseRecord entity.
func (_u *CourseRecordUpdateOne) Save(ctx context.Context) (*CourseRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseRecordUpdateOne) SaveX(ctx context.Context) *CourseRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := courserecord.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "CourseRecord.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CourseName(); ok {
		if err := courserecord.CourseNameValidator(v); err != nil {
			return &ValidationError{Name: "course_name", err: fmt.Errorf(`ent: validator failed for field "CourseRecord.course_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Hours(); ok {
		if err := courserecord.HoursValidator(v); err != nil {
			return &ValidationError{Name: "hours", err: fmt.Errorf(`ent: validator failed for field "CourseRecord.hours": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CourseRecord.run"`)
	}
	return nil
}

func (_u *CourseRecordUpdateOne) sqlSave(ctx context.Context) (_node *CourseRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(courserecord.Table, courserecord.Columns, sqlgraph.NewFieldSpec(courserecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CourseRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, courserecord.FieldID)
		for _, f := range fields {
			if !courserecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != courserecord.FieldID {
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
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(courserecord.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(courserecord.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CourseName(); ok {
		_spec.SetField(courserecord.FieldCourseName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Instructor(); ok {
		_spec.SetField(courserecord.FieldInstructor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hours(); ok {
		_spec.SetField(courserecord.FieldHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHours(); ok {
		_spec.AddField(courserecord.FieldHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(courserecord.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Week(); ok {
		_spec.SetField(courserecord.FieldWeek, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(courserecord.FieldLocation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(courserecord.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimePeriod(); ok {
		_spec.SetField(courserecord.FieldTimePeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(courserecord.FieldNote, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceFile(); ok {
		_spec.SetField(courserecord.FieldSourceFile, field.TypeString, value)
	}
	if value, ok := _u.mutation.SheetOrPage(); ok {
		_spec.SetField(courserecord.FieldSheetOrPage, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceLocator(); ok {
		_spec.SetField(courserecord.FieldSourceLocator, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceText(); ok {
		_spec.SetField(courserecord.FieldSourceText, field.TypeString, value)
	}
	if _u.mutation.RunCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   courserecord.RunTable,
			Columns: []string{courserecord.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   courserecord.RunTable,
			Columns: []string{courserecord.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CourseRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{courserecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
