// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/course-stats/gen/ent/courserecord"
	"github.com/joseph-ayodele/course-stats/gen/ent/run"
)

// CourseRecordCreate is the builder for creating a CourseRecord entity.
type CourseRecordCreate struct {
	config
	mutation *CourseRecordMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *CourseRecordCreate) SetRunID(v uuid.UUID) *CourseRecordCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *CourseRecordCreate) SetPosition(v int) *CourseRecordCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetCourseName sets the "course_name" field.
func (_c *CourseRecordCreate) SetCourseName(v string) *CourseRecordCreate {
	_c.mutation.SetCourseName(v)
	return _c
}

// SetInstructor sets the "instructor" field.
func (_c *CourseRecordCreate) SetInstructor(v string) *CourseRecordCreate {
	_c.mutation.SetInstructor(v)
	return _c
}

// SetHours sets the "hours" field.
func (_c *CourseRecordCreate) SetHours(v int) *CourseRecordCreate {
	_c.mutation.SetHours(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *CourseRecordCreate) SetCategory(v string) *CourseRecordCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetWeek sets the "week" field.
func (_c *CourseRecordCreate) SetWeek(v string) *CourseRecordCreate {
	_c.mutation.SetWeek(v)
	return _c
}

// SetNillableWeek sets the "week" field if the given value is not nil.
func (_c *CourseRecordCreate) SetNillableWeek(v *string) *CourseRecordCreate {
	if v != nil {
		_c.SetWeek(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *CourseRecordCreate) SetLocation(v string) *CourseRecordCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *CourseRecordCreate) SetNillableLocation(v *string) *CourseRecordCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetSection sets the "section" field.
func (_c *CourseRecordCreate) SetSection(v string) *CourseRecordCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_c *CourseRecordCreate) SetNillableSection(v *string) *CourseRecordCreate {
	if v != nil {
		_c.SetSection(*v)
	}
	return _c
}

// SetTimePeriod sets the "time_period" field.
func (_c *CourseRecordCreate) SetTimePeriod(v string) *CourseRecordCreate {
	_c.mutation.SetTimePeriod(v)
	return _c
}

// SetNillableTimePeriod sets the "time_period" field if the given value is not nil.
func (_c *CourseRecordCreate) SetNillableTimePeriod(v *string) *CourseRecordCreate {
	if v != nil {
		_c.SetTimePeriod(*v)
	}
	return _c
}

// SetNote sets the "note" field.
func (_c *CourseRecordCreate) SetNote(v string) *CourseRecordCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *CourseRecordCreate) SetNillableNote(v *string) *CourseRecordCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetSourceFile sets the "source_file" field.
func (_c *CourseRecordCreate) SetSourceFile(v string) *CourseRecordCreate {
	_c.mutation.SetSourceFile(v)
	return _c
}

// SetSheetOrPage sets the "sheet_or_page" field.
func (_c *CourseRecordCreate) SetSheetOrPage(v string) *CourseRecordCreate {
	_c.mutation.SetSheetOrPage(v)
	return _c
}

// SetSourceLocator sets the "source_locator" field.
func (_c *CourseRecordCreate) SetSourceLocator(v string) *CourseRecordCreate {
	_c.mutation.SetSourceLocator(v)
	return _c
}

// SetSourceText sets the "source_text" field.
func (_c *CourseRecordCreate) SetSourceText(v string) *CourseRecordCreate {
	_c.mutation.SetSourceText(v)
	return _c
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_c *CourseRecordCreate) SetNillableSourceText(v *string) *CourseRecordCreate {
	if v != nil {
		_c.SetSourceText(*v)
	}
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *CourseRecordCreate) SetRun(v *Run) *CourseRecordCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the CourseRecordMutation object of the builder.
func (_c *CourseRecordCreate) Mutation() *CourseRecordMutation {
	return _c.mutation
}

// Save creates the CourseRecord in the database.
func (_c *CourseRecordCreate) Save(ctx context.Context) (*CourseRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseRecordCreate) SaveX(ctx context.Context) *CourseRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseRecordCreate) defaults() {
	if _, ok := _c.mutation.Week(); !ok {
		v := courserecord.DefaultWeek
		_c.mutation.SetWeek(v)
	}
	if _, ok := _c.mutation.Location(); !ok {
		v := courserecord.DefaultLocation
		_c.mutation.SetLocation(v)
	}
	if _, ok := _c.mutation.Section(); !ok {
		v := courserecord.DefaultSection
		_c.mutation.SetSection(v)
	}
	if _, ok := _c.mutation.TimePeriod(); !ok {
		v := courserecord.DefaultTimePeriod
		_c.mutation.SetTimePeriod(v)
	}
	if _, ok := _c.mutation.Note(); !ok {
		v := courserecord.DefaultNote
		_c.mutation.SetNote(v)
	}
	if _, ok := _c.mutation.SourceText(); !ok {
		v := courserecord.DefaultSourceText
		_c.mutation.SetSourceText(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseRecordCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "CourseRecord.run_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "CourseRecord.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := courserecord.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "CourseRecord.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CourseName(); !ok {
		return &ValidationError{Name: "course_name", err: errors.New(`ent: missing required field "CourseRecord.course_name"`)}
	}
	if v, ok := _c.mutation.CourseName(); ok {
		if err := courserecord.CourseNameValidator(v); err != nil {
			return &ValidationError{Name: "course_name", err: fmt.Errorf(`ent: validator failed for field "CourseRecord.course_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Instructor(); !ok {
		return &ValidationError{Name: "instructor", err: errors.New(`ent: missing required field "CourseRecord.instructor"`)}
	}
	if _, ok := _c.mutation.Hours(); !ok {
		return &ValidationError{Name: "hours", err: errors.New(`ent: missing required field "CourseRecord.hours"`)}
	}
	if v, ok := _c.mutation.Hours(); ok {
		if err := courserecord.HoursValidator(v); err != nil {
			return &ValidationError{Name: "hours", err: fmt.Errorf(`ent: validator failed for field "CourseRecord.hours": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "CourseRecord.category"`)}
	}
	if _, ok := _c.mutation.Week(); !ok {
		return &ValidationError{Name: "week", err: errors.New(`ent: missing required field "CourseRecord.week"`)}
	}
	if _, ok := _c.mutation.Location(); !ok {
		return &ValidationError{Name: "location", err: errors.New(`ent: missing required field "CourseRecord.location"`)}
	}
	if _, ok := _c.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required field "CourseRecord.section"`)}
	}
	if _, ok := _c.mutation.TimePeriod(); !ok {
		return &ValidationError{Name: "time_period", err: errors.New(`ent: missing required field "CourseRecord.time_period"`)}
	}
	if _, ok := _c.mutation.Note(); !ok {
		return &ValidationError{Name: "note", err: errors.New(`ent: missing required field "CourseRecord.note"`)}
	}
	if _, ok := _c.mutation.SourceFile(); !ok {
		return &ValidationError{Name: "source_file", err: errors.New(`ent: missing required field "CourseRecord.source_file"`)}
	}
	if _, ok := _c.mutation.SheetOrPage(); !ok {
		return &ValidationError{Name: "sheet_or_page", err: errors.New(`ent: missing required field "CourseRecord.sheet_or_page"`)}
	}
	if _, ok := _c.mutation.SourceLocator(); !ok {
		return &ValidationError{Name: "source_locator", err: errors.New(`ent: missing required field "CourseRecord.source_locator"`)}
	}
	if _, ok := _c.mutation.SourceText(); !ok {
		return &ValidationError{Name: "source_text", err: errors.New(`ent: missing required field "CourseRecord.source_text"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "CourseRecord.run"`)}
	}
	return nil
}

func (_c *CourseRecordCreate) sqlSave(ctx context.Context) (*CourseRecord, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CourseRecordCreate) createSpec() (*CourseRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &CourseRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(courserecord.Table, sqlgraph.NewFieldSpec(courserecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(courserecord.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.CourseName(); ok {
		_spec.SetField(courserecord.FieldCourseName, field.TypeString, value)
		_node.CourseName = value
	}
	if value, ok := _c.mutation.Instructor(); ok {
		_spec.SetField(courserecord.FieldInstructor, field.TypeString, value)
		_node.Instructor = value
	}
	if value, ok := _c.mutation.Hours(); ok {
		_spec.SetField(courserecord.FieldHours, field.TypeInt, value)
		_node.Hours = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(courserecord.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Week(); ok {
		_spec.SetField(courserecord.FieldWeek, field.TypeString, value)
		_node.Week = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(courserecord.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(courserecord.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := _c.mutation.TimePeriod(); ok {
		_spec.SetField(courserecord.FieldTimePeriod, field.TypeString, value)
		_node.TimePeriod = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(courserecord.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := _c.mutation.SourceFile(); ok {
		_spec.SetField(courserecord.FieldSourceFile, field.TypeString, value)
		_node.SourceFile = value
	}
	if value, ok := _c.mutation.SheetOrPage(); ok {
		_spec.SetField(courserecord.FieldSheetOrPage, field.TypeString, value)
		_node.SheetOrPage = value
	}
	if value, ok := _c.mutation.SourceLocator(); ok {
		_spec.SetField(courserecord.FieldSourceLocator, field.TypeString, value)
		_node.SourceLocator = value
	}
	if value, ok := _c.mutation.SourceText(); ok {
		_spec.SetField(courserecord.FieldSourceText, field.TypeString, value)
		_node.SourceText = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
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
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CourseRecordCreateBulk is the builder for creating many CourseRecord entities in bulk.
type CourseRecordCreateBulk struct {
	config
	err      error
	builders []*CourseRecordCreate
}

// Save creates the CourseRecord entities in the database.
func (_c *CourseRecordCreateBulk) Save(ctx context.Context) ([]*CourseRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CourseRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseRecordMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *CourseRecordCreateBulk) SaveX(ctx context.Context) []*CourseRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
