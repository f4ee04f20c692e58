// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/course-stats/gen/ent/courserecord"
	"github.com/joseph-ayodele/course-stats/gen/ent/predicate"
	"github.com/joseph-ayodele/course-stats/gen/ent/run"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCourseRecord = "CourseRecord"
	TypeRun          = "Run"
)

// CourseRecordMutation represents an operation that mutates the CourseRecord nodes in the graph.
type CourseRecordMutation struct {
	config
	op             Op
	typ            string
	id             *int
	position       *int
	addposition    *int
	course_name    *string
	instructor     *string
	hours          *int
	addhours       *int
	category       *string
	week           *string
	location       *string
	section        *string
	time_period    *string
	note           *string
	source_file    *string
	sheet_or_page  *string
	source_locator *string
	source_text    *string
	clearedFields  map[string]struct{}
	run            *uuid.UUID
	clearedrun     bool
	done           bool
	oldValue       func(context.Context) (*CourseRecord, error)
	predicates     []predicate.CourseRecord
}

var _ ent.Mutation = (*CourseRecordMutation)(nil)

// courserecordOption allows management of the mutation configuration using functional options.
type courserecordOption func(*CourseRecordMutation)

// newCourseRecordMutation creates new mutation for the CourseRecord entity.
func newCourseRecordMutation(c config, op Op, opts ...courserecordOption) *CourseRecordMutation {
	m := &CourseRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeCourseRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCourseRecordID sets the ID field of the mutation.
func withCourseRecordID(id int) courserecordOption {
	return func(m *CourseRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *CourseRecord
		)
		m.oldValue = func(ctx context.Context) (*CourseRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CourseRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCourseRecord sets the old CourseRecord of the mutation.
func withCourseRecord(node *CourseRecord) courserecordOption {
	return func(m *CourseRecordMutation) {
		m.oldValue = func(context.Context) (*CourseRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CourseRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CourseRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CourseRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CourseRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CourseRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *CourseRecordMutation) SetRunID(u uuid.UUID) {
	m.run = &u
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *CourseRecordMutation) RunID() (r uuid.UUID, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the CourseRecord entity.
// If the CourseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseRecordMutation) OldRunID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *CourseRecordMutation) ResetRunID() {
	m.run = nil
}

// SetPosition sets the "position" field.
func (m *CourseRecordMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *CourseRecordMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the CourseRecord entity.
// If the CourseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseRecordMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *CourseRecordMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *CourseRecordMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *CourseRecordMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetCourseName sets the "course_name" field.
func (m *CourseRecordMutation) SetCourseName(s string) {
	m.course_name = &s
}

// CourseName returns the value of the "course_name" field in the mutation.
func (m *CourseRecordMutation) CourseName() (r string, exists bool) {
	v := m.course_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseName returns the old "course_name" field's value of the CourseRecord entity.
// If the CourseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseRecordMutation) OldCourseName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseName: %w", err)
	}
	return oldValue.CourseName, nil
}

// ResetCourseName resets all changes to the "course_name" field.
func (m *CourseRecordMutation) ResetCourseName() {
	m.course_name = nil
}

// SetInstructor sets the "instructor" field.
func (m *CourseRecordMutation) SetInstructor(s string) {
	m.instructor = &s
}

// Instructor returns the value of the "instructor" field in the mutation.
func (m *CourseRecordMutation) Instructor() (r string, exists bool) {
	v := m.instructor
	if v == nil {
		return
	}
	return *v, true
}

// OldInstructor returns the old "instructor" field's value of the CourseRecord entity.
// If the CourseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseRecordMutation) OldInstructor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstructor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstructor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstructor: %w", err)
	}
	return oldValue.Instructor, nil
}

// ResetInstructor resets all changes to the "instructor" field.
func (m *CourseRecordMutation) ResetInstructor() {
	m.instructor = nil
}

// SetHours sets the "hours" field.
func (m *CourseRecordMutation) SetHours(i int) {
	m.hours = &i
	m.addhours = nil
}

// Hours returns the value of the "hours" field in the mutation.
func (m *CourseRecordMutation) Hours() (r int, exists bool) {
	v := m.hours
	if v == nil {
		return
	}
	return *v, true
}

// OldHours returns the old "hours" field's value of the CourseRecord entity.
// If the CourseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseRecordMutation) OldHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHours: %w", err)
	}
	return oldValue.Hours, nil
}

// AddHours adds i to the "hours" field.
func (m *CourseRecordMutation) AddHours(i int) {
	if m.addhours != nil {
		*m.addhours += i
	} else {
		m.addhours = &i
	}
}

// AddedHours returns the value that was added to the "hours" field in this mutation.
func (m *CourseRecordMutation) AddedHours() (r int, exists bool) {
	v := m.addhours
	if v == nil {
		return
	}
	return *v, true
}

// ResetHours resets all changes to the "hours" field.
func (m *CourseRecordMutation) ResetHours() {
	m.hours = nil
	m.addhours = nil
}

// SetCategory sets the "category" field.
func (m *CourseRecordMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *CourseRecordMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the CourseRecord entity.
// If the CourseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseRecordMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *CourseRecordMutation) ResetCategory() {
	m.category = nil
}

// SetWeek sets the "week" field.
func (m *CourseRecordMutation) SetWeek(s string) {
	m.week = &s
}

// Week returns the value of the "week" field in the mutation.
func (m *CourseRecordMutation) Week() (r string, exists bool) {
	v := m.week
	if v == nil {
		return
	}
	return *v, true
}

// OldWeek returns the old "week" field's value of the CourseRecord entity.
// If the CourseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseRecordMutation) OldWeek(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeek: %w", err)
	}
	return oldValue.Week, nil
}

// ResetWeek resets all changes to the "week" field.
func (m *CourseRecordMutation) ResetWeek() {
	m.week = nil
}

// SetLocation sets the "location" field.
func (m *CourseRecordMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *CourseRecordMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the CourseRecord entity.
// If the CourseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseRecordMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ResetLocation resets all changes to the "location" field.
func (m *CourseRecordMutation) ResetLocation() {
	m.location = nil
}

// SetSection sets the "section" field.
func (m *CourseRecordMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *CourseRecordMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the CourseRecord entity.
// If the CourseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseRecordMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ResetSection resets all changes to the "section" field.
func (m *CourseRecordMutation) ResetSection() {
	m.section = nil
}

// SetTimePeriod sets the "time_period" field.
func (m *CourseRecordMutation) SetTimePeriod(s string) {
	m.time_period = &s
}

// TimePeriod returns the value of the "time_period" field in the mutation.
func (m *CourseRecordMutation) TimePeriod() (r string, exists bool) {
	v := m.time_period
	if v == nil {
		return
	}
	return *v, true
}

// OldTimePeriod returns the old "time_period" field's value of the CourseRecord entity.
// If the CourseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseRecordMutation) OldTimePeriod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimePeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimePeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimePeriod: %w", err)
	}
	return oldValue.TimePeriod, nil
}

// ResetTimePeriod resets all changes to the "time_period" field.
func (m *CourseRecordMutation) ResetTimePeriod() {
	m.time_period = nil
}

// SetNote sets the "note" field.
func (m *CourseRecordMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *CourseRecordMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the CourseRecord entity.
// If the CourseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseRecordMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ResetNote resets all changes to the "note" field.
func (m *CourseRecordMutation) ResetNote() {
	m.note = nil
}

// SetSourceFile sets the "source_file" field.
func (m *CourseRecordMutation) SetSourceFile(s string) {
	m.source_file = &s
}

// SourceFile returns the value of the "source_file" field in the mutation.
func (m *CourseRecordMutation) SourceFile() (r string, exists bool) {
	v := m.source_file
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFile returns the old "source_file" field's value of the CourseRecord entity.
// If the CourseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseRecordMutation) OldSourceFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFile: %w", err)
	}
	return oldValue.SourceFile, nil
}

// ResetSourceFile resets all changes to the "source_file" field.
func (m *CourseRecordMutation) ResetSourceFile() {
	m.source_file = nil
}

// SetSheetOrPage sets the "sheet_or_page" field.
func (m *CourseRecordMutation) SetSheetOrPage(s string) {
	m.sheet_or_page = &s
}

// SheetOrPage returns the value of the "sheet_or_page" field in the mutation.
func (m *CourseRecordMutation) SheetOrPage() (r string, exists bool) {
	v := m.sheet_or_page
	if v == nil {
		return
	}
	return *v, true
}

// OldSheetOrPage returns the old "sheet_or_page" field's value of the CourseRecord entity.
// If the CourseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseRecordMutation) OldSheetOrPage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSheetOrPage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSheetOrPage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSheetOrPage: %w", err)
	}
	return oldValue.SheetOrPage, nil
}

// ResetSheetOrPage resets all changes to the "sheet_or_page" field.
func (m *CourseRecordMutation) ResetSheetOrPage() {
	m.sheet_or_page = nil
}

// SetSourceLocator sets the "source_locator" field.
func (m *CourseRecordMutation) SetSourceLocator(s string) {
	m.source_locator = &s
}

// SourceLocator returns the value of the "source_locator" field in the mutation.
func (m *CourseRecordMutation) SourceLocator() (r string, exists bool) {
	v := m.source_locator
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceLocator returns the old "source_locator" field's value of the CourseRecord entity.
// If the CourseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseRecordMutation) OldSourceLocator(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceLocator is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceLocator requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceLocator: %w", err)
	}
	return oldValue.SourceLocator, nil
}

// ResetSourceLocator resets all changes to the "source_locator" field.
func (m *CourseRecordMutation) ResetSourceLocator() {
	m.source_locator = nil
}

// SetSourceText sets the "source_text" field.
func (m *CourseRecordMutation) SetSourceText(s string) {
	m.source_text = &s
}

// SourceText returns the value of the "source_text" field in the mutation.
func (m *CourseRecordMutation) SourceText() (r string, exists bool) {
	v := m.source_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceText returns the old "source_text" field's value of the CourseRecord entity.
// If the CourseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CourseRecordMutation) OldSourceText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceText: %w", err)
	}
	return oldValue.SourceText, nil
}

// ResetSourceText resets all changes to the "source_text" field.
func (m *CourseRecordMutation) ResetSourceText() {
	m.source_text = nil
}

// ClearRun clears the "run" edge to the Run entity.
func (m *CourseRecordMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[courserecord.FieldRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the Run entity was cleared.
func (m *CourseRecordMutation) RunCleared() bool {
	return m.clearedrun
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *CourseRecordMutation) RunIDs() (ids []uuid.UUID) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *CourseRecordMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the CourseRecordMutation builder.
func (m *CourseRecordMutation) Where(ps ...predicate.CourseRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CourseRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CourseRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CourseRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CourseRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CourseRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CourseRecord).
func (m *CourseRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CourseRecordMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.run != nil {
		fields = append(fields, courserecord.FieldRunID)
	}
	if m.position != nil {
		fields = append(fields, courserecord.FieldPosition)
	}
	if m.course_name != nil {
		fields = append(fields, courserecord.FieldCourseName)
	}
	if m.instructor != nil {
		fields = append(fields, courserecord.FieldInstructor)
	}
	if m.hours != nil {
		fields = append(fields, courserecord.FieldHours)
	}
	if m.category != nil {
		fields = append(fields, courserecord.FieldCategory)
	}
	if m.week != nil {
		fields = append(fields, courserecord.FieldWeek)
	}
	if m.location != nil {
		fields = append(fields, courserecord.FieldLocation)
	}
	if m.section != nil {
		fields = append(fields, courserecord.FieldSection)
	}
	if m.time_period != nil {
		fields = append(fields, courserecord.FieldTimePeriod)
	}
	if m.note != nil {
		fields = append(fields, courserecord.FieldNote)
	}
	if m.source_file != nil {
		fields = append(fields, courserecord.FieldSourceFile)
	}
	if m.sheet_or_page != nil {
		fields = append(fields, courserecord.FieldSheetOrPage)
	}
	if m.source_locator != nil {
		fields = append(fields, courserecord.FieldSourceLocator)
	}
	if m.source_text != nil {
		fields = append(fields, courserecord.FieldSourceText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CourseRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case courserecord.FieldRunID:
		return m.RunID()
	case courserecord.FieldPosition:
		return m.Position()
	case courserecord.FieldCourseName:
		return m.CourseName()
	case courserecord.FieldInstructor:
		return m.Instructor()
	case courserecord.FieldHours:
		return m.Hours()
	case courserecord.FieldCategory:
		return m.Category()
	case courserecord.FieldWeek:
		return m.Week()
	case courserecord.FieldLocation:
		return m.Location()
	case courserecord.FieldSection:
		return m.Section()
	case courserecord.FieldTimePeriod:
		return m.TimePeriod()
	case courserecord.FieldNote:
		return m.Note()
	case courserecord.FieldSourceFile:
		return m.SourceFile()
	case courserecord.FieldSheetOrPage:
		return m.SheetOrPage()
	case courserecord.FieldSourceLocator:
		return m.SourceLocator()
	case courserecord.FieldSourceText:
		return m.SourceText()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CourseRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case courserecord.FieldRunID:
		return m.OldRunID(ctx)
	case courserecord.FieldPosition:
		return m.OldPosition(ctx)
	case courserecord.FieldCourseName:
		return m.OldCourseName(ctx)
	case courserecord.FieldInstructor:
		return m.OldInstructor(ctx)
	case courserecord.FieldHours:
		return m.OldHours(ctx)
	case courserecord.FieldCategory:
		return m.OldCategory(ctx)
	case courserecord.FieldWeek:
		return m.OldWeek(ctx)
	case courserecord.FieldLocation:
		return m.OldLocation(ctx)
	case courserecord.FieldSection:
		return m.OldSection(ctx)
	case courserecord.FieldTimePeriod:
		return m.OldTimePeriod(ctx)
	case courserecord.FieldNote:
		return m.OldNote(ctx)
	case courserecord.FieldSourceFile:
		return m.OldSourceFile(ctx)
	case courserecord.FieldSheetOrPage:
		return m.OldSheetOrPage(ctx)
	case courserecord.FieldSourceLocator:
		return m.OldSourceLocator(ctx)
	case courserecord.FieldSourceText:
		return m.OldSourceText(ctx)
	}
	return nil, fmt.Errorf("unknown CourseRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case courserecord.FieldRunID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case courserecord.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case courserecord.FieldCourseName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseName(v)
		return nil
	case courserecord.FieldInstructor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstructor(v)
		return nil
	case courserecord.FieldHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHours(v)
		return nil
	case courserecord.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case courserecord.FieldWeek:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeek(v)
		return nil
	case courserecord.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case courserecord.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case courserecord.FieldTimePeriod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimePeriod(v)
		return nil
	case courserecord.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case courserecord.FieldSourceFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFile(v)
		return nil
	case courserecord.FieldSheetOrPage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSheetOrPage(v)
		return nil
	case courserecord.FieldSourceLocator:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceLocator(v)
		return nil
	case courserecord.FieldSourceText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceText(v)
		return nil
	}
	return fmt.Errorf("unknown CourseRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CourseRecordMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, courserecord.FieldPosition)
	}
	if m.addhours != nil {
		fields = append(fields, courserecord.FieldHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CourseRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case courserecord.FieldPosition:
		return m.AddedPosition()
	case courserecord.FieldHours:
		return m.AddedHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CourseRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case courserecord.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case courserecord.FieldHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHours(v)
		return nil
	}
	return fmt.Errorf("unknown CourseRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CourseRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CourseRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CourseRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CourseRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CourseRecordMutation) ResetField(name string) error {
	switch name {
	case courserecord.FieldRunID:
		m.ResetRunID()
		return nil
	case courserecord.FieldPosition:
		m.ResetPosition()
		return nil
	case courserecord.FieldCourseName:
		m.ResetCourseName()
		return nil
	case courserecord.FieldInstructor:
		m.ResetInstructor()
		return nil
	case courserecord.FieldHours:
		m.ResetHours()
		return nil
	case courserecord.FieldCategory:
		m.ResetCategory()
		return nil
	case courserecord.FieldWeek:
		m.ResetWeek()
		return nil
	case courserecord.FieldLocation:
		m.ResetLocation()
		return nil
	case courserecord.FieldSection:
		m.ResetSection()
		return nil
	case courserecord.FieldTimePeriod:
		m.ResetTimePeriod()
		return nil
	case courserecord.FieldNote:
		m.ResetNote()
		return nil
	case courserecord.FieldSourceFile:
		m.ResetSourceFile()
		return nil
	case courserecord.FieldSheetOrPage:
		m.ResetSheetOrPage()
		return nil
	case courserecord.FieldSourceLocator:
		m.ResetSourceLocator()
		return nil
	case courserecord.FieldSourceText:
		m.ResetSourceText()
		return nil
	}
	return fmt.Errorf("unknown CourseRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CourseRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, courserecord.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CourseRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case courserecord.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CourseRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CourseRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CourseRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, courserecord.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CourseRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case courserecord.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CourseRecordMutation) ClearEdge(name string) error {
	switch name {
	case courserecord.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown CourseRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CourseRecordMutation) ResetEdge(name string) error {
	switch name {
	case courserecord.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown CourseRecord edge %s", name)
}

// RunMutation represents an operation that mutates the Run nodes in the graph.
type RunMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	input_root         *string
	started_at         *time.Time
	finished_at        *time.Time
	status             *string
	error_message      *string
	files_scanned      *int
	addfiles_scanned   *int
	files_failed       *int
	addfiles_failed    *int
	units_processed    *int
	addunits_processed *int
	units_skipped      *int
	addunits_skipped   *int
	raw_records        *int
	addraw_records     *int
	cleaned_records    *int
	addcleaned_records *int
	total_hours        *int
	addtotal_hours     *int
	stats              *json.RawMessage
	appendstats        json.RawMessage
	clearedFields      map[string]struct{}
	records            map[int]struct{}
	removedrecords     map[int]struct{}
	clearedrecords     bool
	done               bool
	oldValue           func(context.Context) (*Run, error)
	predicates         []predicate.Run
}

var _ ent.Mutation = (*RunMutation)(nil)

// runOption allows management of the mutation configuration using functional options.
type runOption func(*RunMutation)

// newRunMutation creates new mutation for the Run entity.
func newRunMutation(c config, op Op, opts ...runOption) *RunMutation {
	m := &RunMutation{
		config:        c,
		op:            op,
		typ:           TypeRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunID sets the ID field of the mutation.
func withRunID(id uuid.UUID) runOption {
	return func(m *RunMutation) {
		var (
			err   error
			once  sync.Once
			value *Run
		)
		m.oldValue = func(ctx context.Context) (*Run, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Run.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRun sets the old Run of the mutation.
func withRun(node *Run) runOption {
	return func(m *RunMutation) {
		m.oldValue = func(context.Context) (*Run, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Run entities.
func (m *RunMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Run.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInputRoot sets the "input_root" field.
func (m *RunMutation) SetInputRoot(s string) {
	m.input_root = &s
}

// InputRoot returns the value of the "input_root" field in the mutation.
func (m *RunMutation) InputRoot() (r string, exists bool) {
	v := m.input_root
	if v == nil {
		return
	}
	return *v, true
}

// OldInputRoot returns the old "input_root" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldInputRoot(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputRoot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputRoot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputRoot: %w", err)
	}
	return oldValue.InputRoot, nil
}

// ResetInputRoot resets all changes to the "input_root" field.
func (m *RunMutation) ResetInputRoot() {
	m.input_root = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *RunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *RunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *RunMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[run.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *RunMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[run.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *RunMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, run.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *RunMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *RunMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RunMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *RunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *RunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *RunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[run.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *RunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[run.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *RunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, run.FieldErrorMessage)
}

// SetFilesScanned sets the "files_scanned" field.
func (m *RunMutation) SetFilesScanned(i int) {
	m.files_scanned = &i
	m.addfiles_scanned = nil
}

// FilesScanned returns the value of the "files_scanned" field in the mutation.
func (m *RunMutation) FilesScanned() (r int, exists bool) {
	v := m.files_scanned
	if v == nil {
		return
	}
	return *v, true
}

// OldFilesScanned returns the old "files_scanned" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldFilesScanned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilesScanned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilesScanned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilesScanned: %w", err)
	}
	return oldValue.FilesScanned, nil
}

// AddFilesScanned adds i to the "files_scanned" field.
func (m *RunMutation) AddFilesScanned(i int) {
	if m.addfiles_scanned != nil {
		*m.addfiles_scanned += i
	} else {
		m.addfiles_scanned = &i
	}
}

// AddedFilesScanned returns the value that was added to the "files_scanned" field in this mutation.
func (m *RunMutation) AddedFilesScanned() (r int, exists bool) {
	v := m.addfiles_scanned
	if v == nil {
		return
	}
	return *v, true
}

// ResetFilesScanned resets all changes to the "files_scanned" field.
func (m *RunMutation) ResetFilesScanned() {
	m.files_scanned = nil
	m.addfiles_scanned = nil
}

// SetFilesFailed sets the "files_failed" field.
func (m *RunMutation) SetFilesFailed(i int) {
	m.files_failed = &i
	m.addfiles_failed = nil
}

// FilesFailed returns the value of the "files_failed" field in the mutation.
func (m *RunMutation) FilesFailed() (r int, exists bool) {
	v := m.files_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFilesFailed returns the old "files_failed" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldFilesFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilesFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilesFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilesFailed: %w", err)
	}
	return oldValue.FilesFailed, nil
}

// AddFilesFailed adds i to the "files_failed" field.
func (m *RunMutation) AddFilesFailed(i int) {
	if m.addfiles_failed != nil {
		*m.addfiles_failed += i
	} else {
		m.addfiles_failed = &i
	}
}

// AddedFilesFailed returns the value that was added to the "files_failed" field in this mutation.
func (m *RunMutation) AddedFilesFailed() (r int, exists bool) {
	v := m.addfiles_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFilesFailed resets all changes to the "files_failed" field.
func (m *RunMutation) ResetFilesFailed() {
	m.files_failed = nil
	m.addfiles_failed = nil
}

// SetUnitsProcessed sets the "units_processed" field.
func (m *RunMutation) SetUnitsProcessed(i int) {
	m.units_processed = &i
	m.addunits_processed = nil
}

// UnitsProcessed returns the value of the "units_processed" field in the mutation.
func (m *RunMutation) UnitsProcessed() (r int, exists bool) {
	v := m.units_processed
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitsProcessed returns the old "units_processed" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldUnitsProcessed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitsProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitsProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitsProcessed: %w", err)
	}
	return oldValue.UnitsProcessed, nil
}

// AddUnitsProcessed adds i to the "units_processed" field.
func (m *RunMutation) AddUnitsProcessed(i int) {
	if m.addunits_processed != nil {
		*m.addunits_processed += i
	} else {
		m.addunits_processed = &i
	}
}

// AddedUnitsProcessed returns the value that was added to the "units_processed" field in this mutation.
func (m *RunMutation) AddedUnitsProcessed() (r int, exists bool) {
	v := m.addunits_processed
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitsProcessed resets all changes to the "units_processed" field.
func (m *RunMutation) ResetUnitsProcessed() {
	m.units_processed = nil
	m.addunits_processed = nil
}

// SetUnitsSkipped sets the "units_skipped" field.
func (m *RunMutation) SetUnitsSkipped(i int) {
	m.units_skipped = &i
	m.addunits_skipped = nil
}

// UnitsSkipped returns the value of the "units_skipped" field in the mutation.
func (m *RunMutation) UnitsSkipped() (r int, exists bool) {
	v := m.units_skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitsSkipped returns the old "units_skipped" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldUnitsSkipped(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitsSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitsSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitsSkipped: %w", err)
	}
	return oldValue.UnitsSkipped, nil
}

// AddUnitsSkipped adds i to the "units_skipped" field.
func (m *RunMutation) AddUnitsSkipped(i int) {
	if m.addunits_skipped != nil {
		*m.addunits_skipped += i
	} else {
		m.addunits_skipped = &i
	}
}

// AddedUnitsSkipped returns the value that was added to the "units_skipped" field in this mutation.
func (m *RunMutation) AddedUnitsSkipped() (r int, exists bool) {
	v := m.addunits_skipped
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitsSkipped resets all changes to the "units_skipped" field.
func (m *RunMutation) ResetUnitsSkipped() {
	m.units_skipped = nil
	m.addunits_skipped = nil
}

// SetRawRecords sets the "raw_records" field.
func (m *RunMutation) SetRawRecords(i int) {
	m.raw_records = &i
	m.addraw_records = nil
}

// RawRecords returns the value of the "raw_records" field in the mutation.
func (m *RunMutation) RawRecords() (r int, exists bool) {
	v := m.raw_records
	if v == nil {
		return
	}
	return *v, true
}

// OldRawRecords returns the old "raw_records" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldRawRecords(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawRecords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawRecords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawRecords: %w", err)
	}
	return oldValue.RawRecords, nil
}

// AddRawRecords adds i to the "raw_records" field.
func (m *RunMutation) AddRawRecords(i int) {
	if m.addraw_records != nil {
		*m.addraw_records += i
	} else {
		m.addraw_records = &i
	}
}

// AddedRawRecords returns the value that was added to the "raw_records" field in this mutation.
func (m *RunMutation) AddedRawRecords() (r int, exists bool) {
	v := m.addraw_records
	if v == nil {
		return
	}
	return *v, true
}

// ResetRawRecords resets all changes to the "raw_records" field.
func (m *RunMutation) ResetRawRecords() {
	m.raw_records = nil
	m.addraw_records = nil
}

// SetCleanedRecords sets the "cleaned_records" field.
func (m *RunMutation) SetCleanedRecords(i int) {
	m.cleaned_records = &i
	m.addcleaned_records = nil
}

// CleanedRecords returns the value of the "cleaned_records" field in the mutation.
func (m *RunMutation) CleanedRecords() (r int, exists bool) {
	v := m.cleaned_records
	if v == nil {
		return
	}
	return *v, true
}

// OldCleanedRecords returns the old "cleaned_records" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldCleanedRecords(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCleanedRecords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCleanedRecords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCleanedRecords: %w", err)
	}
	return oldValue.CleanedRecords, nil
}

// AddCleanedRecords adds i to the "cleaned_records" field.
func (m *RunMutation) AddCleanedRecords(i int) {
	if m.addcleaned_records != nil {
		*m.addcleaned_records += i
	} else {
		m.addcleaned_records = &i
	}
}

// AddedCleanedRecords returns the value that was added to the "cleaned_records" field in this mutation.
func (m *RunMutation) AddedCleanedRecords() (r int, exists bool) {
	v := m.addcleaned_records
	if v == nil {
		return
	}
	return *v, true
}

// ResetCleanedRecords resets all changes to the "cleaned_records" field.
func (m *RunMutation) ResetCleanedRecords() {
	m.cleaned_records = nil
	m.addcleaned_records = nil
}

// SetTotalHours sets the "total_hours" field.
func (m *RunMutation) SetTotalHours(i int) {
	m.total_hours = &i
	m.addtotal_hours = nil
}

// TotalHours returns the value of the "total_hours" field in the mutation.
func (m *RunMutation) TotalHours() (r int, exists bool) {
	v := m.total_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalHours returns the old "total_hours" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldTotalHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalHours: %w", err)
	}
	return oldValue.TotalHours, nil
}

// AddTotalHours adds i to the "total_hours" field.
func (m *RunMutation) AddTotalHours(i int) {
	if m.addtotal_hours != nil {
		*m.addtotal_hours += i
	} else {
		m.addtotal_hours = &i
	}
}

// AddedTotalHours returns the value that was added to the "total_hours" field in this mutation.
func (m *RunMutation) AddedTotalHours() (r int, exists bool) {
	v := m.addtotal_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalHours resets all changes to the "total_hours" field.
func (m *RunMutation) ResetTotalHours() {
	m.total_hours = nil
	m.addtotal_hours = nil
}

// SetStats sets the "stats" field.
func (m *RunMutation) SetStats(jm json.RawMessage) {
	m.stats = &jm
	m.appendstats = nil
}

// Stats returns the value of the "stats" field in the mutation.
func (m *RunMutation) Stats() (r json.RawMessage, exists bool) {
	v := m.stats
	if v == nil {
		return
	}
	return *v, true
}

// OldStats returns the old "stats" field's value of the Run entity.
// If the Run object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunMutation) OldStats(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStats is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStats requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStats: %w", err)
	}
	return oldValue.Stats, nil
}

// AppendStats adds jm to the "stats" field.
func (m *RunMutation) AppendStats(jm json.RawMessage) {
	m.appendstats = append(m.appendstats, jm...)
}

// AppendedStats returns the list of values that were appended to the "stats" field in this mutation.
func (m *RunMutation) AppendedStats() (json.RawMessage, bool) {
	if len(m.appendstats) == 0 {
		return nil, false
	}
	return m.appendstats, true
}

// ClearStats clears the value of the "stats" field.
func (m *RunMutation) ClearStats() {
	m.stats = nil
	m.appendstats = nil
	m.clearedFields[run.FieldStats] = struct{}{}
}

// StatsCleared returns if the "stats" field was cleared in this mutation.
func (m *RunMutation) StatsCleared() bool {
	_, ok := m.clearedFields[run.FieldStats]
	return ok
}

// ResetStats resets all changes to the "stats" field.
func (m *RunMutation) ResetStats() {
	m.stats = nil
	m.appendstats = nil
	delete(m.clearedFields, run.FieldStats)
}

// AddRecordIDs adds the "records" edge to the CourseRecord entity by ids.
func (m *RunMutation) AddRecordIDs(ids ...int) {
	if m.records == nil {
		m.records = make(map[int]struct{})
	}
	for i := range ids {
		m.records[ids[i]] = struct{}{}
	}
}

// ClearRecords clears the "records" edge to the CourseRecord entity.
func (m *RunMutation) ClearRecords() {
	m.clearedrecords = true
}

// RecordsCleared reports if the "records" edge to the CourseRecord entity was cleared.
func (m *RunMutation) RecordsCleared() bool {
	return m.clearedrecords
}

// RemoveRecordIDs removes the "records" edge to the CourseRecord entity by IDs.
func (m *RunMutation) RemoveRecordIDs(ids ...int) {
	if m.removedrecords == nil {
		m.removedrecords = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.records, ids[i])
		m.removedrecords[ids[i]] = struct{}{}
	}
}

// RemovedRecords returns the removed IDs of the "records" edge to the CourseRecord entity.
func (m *RunMutation) RemovedRecordsIDs() (ids []int) {
	for id := range m.removedrecords {
		ids = append(ids, id)
	}
	return
}

// RecordsIDs returns the "records" edge IDs in the mutation.
func (m *RunMutation) RecordsIDs() (ids []int) {
	for id := range m.records {
		ids = append(ids, id)
	}
	return
}

// ResetRecords resets all changes to the "records" edge.
func (m *RunMutation) ResetRecords() {
	m.records = nil
	m.clearedrecords = false
	m.removedrecords = nil
}

// Where appends a list predicates to the RunMutation builder.
func (m *RunMutation) Where(ps ...predicate.Run) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Run, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Run).
func (m *RunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.input_root != nil {
		fields = append(fields, run.FieldInputRoot)
	}
	if m.started_at != nil {
		fields = append(fields, run.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, run.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, run.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, run.FieldErrorMessage)
	}
	if m.files_scanned != nil {
		fields = append(fields, run.FieldFilesScanned)
	}
	if m.files_failed != nil {
		fields = append(fields, run.FieldFilesFailed)
	}
	if m.units_processed != nil {
		fields = append(fields, run.FieldUnitsProcessed)
	}
	if m.units_skipped != nil {
		fields = append(fields, run.FieldUnitsSkipped)
	}
	if m.raw_records != nil {
		fields = append(fields, run.FieldRawRecords)
	}
	if m.cleaned_records != nil {
		fields = append(fields, run.FieldCleanedRecords)
	}
	if m.total_hours != nil {
		fields = append(fields, run.FieldTotalHours)
	}
	if m.stats != nil {
		fields = append(fields, run.FieldStats)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case run.FieldInputRoot:
		return m.InputRoot()
	case run.FieldStartedAt:
		return m.StartedAt()
	case run.FieldFinishedAt:
		return m.FinishedAt()
	case run.FieldStatus:
		return m.Status()
	case run.FieldErrorMessage:
		return m.ErrorMessage()
	case run.FieldFilesScanned:
		return m.FilesScanned()
	case run.FieldFilesFailed:
		return m.FilesFailed()
	case run.FieldUnitsProcessed:
		return m.UnitsProcessed()
	case run.FieldUnitsSkipped:
		return m.UnitsSkipped()
	case run.FieldRawRecords:
		return m.RawRecords()
	case run.FieldCleanedRecords:
		return m.CleanedRecords()
	case run.FieldTotalHours:
		return m.TotalHours()
	case run.FieldStats:
		return m.Stats()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case run.FieldInputRoot:
		return m.OldInputRoot(ctx)
	case run.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case run.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case run.FieldStatus:
		return m.OldStatus(ctx)
	case run.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case run.FieldFilesScanned:
		return m.OldFilesScanned(ctx)
	case run.FieldFilesFailed:
		return m.OldFilesFailed(ctx)
	case run.FieldUnitsProcessed:
		return m.OldUnitsProcessed(ctx)
	case run.FieldUnitsSkipped:
		return m.OldUnitsSkipped(ctx)
	case run.FieldRawRecords:
		return m.OldRawRecords(ctx)
	case run.FieldCleanedRecords:
		return m.OldCleanedRecords(ctx)
	case run.FieldTotalHours:
		return m.OldTotalHours(ctx)
	case run.FieldStats:
		return m.OldStats(ctx)
	}
	return nil, fmt.Errorf("unknown Run field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case run.FieldInputRoot:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputRoot(v)
		return nil
	case run.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case run.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case run.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case run.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case run.FieldFilesScanned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilesScanned(v)
		return nil
	case run.FieldFilesFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilesFailed(v)
		return nil
	case run.FieldUnitsProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitsProcessed(v)
		return nil
	case run.FieldUnitsSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitsSkipped(v)
		return nil
	case run.FieldRawRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawRecords(v)
		return nil
	case run.FieldCleanedRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCleanedRecords(v)
		return nil
	case run.FieldTotalHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalHours(v)
		return nil
	case run.FieldStats:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStats(v)
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunMutation) AddedFields() []string {
	var fields []string
	if m.addfiles_scanned != nil {
		fields = append(fields, run.FieldFilesScanned)
	}
	if m.addfiles_failed != nil {
		fields = append(fields, run.FieldFilesFailed)
	}
	if m.addunits_processed != nil {
		fields = append(fields, run.FieldUnitsProcessed)
	}
	if m.addunits_skipped != nil {
		fields = append(fields, run.FieldUnitsSkipped)
	}
	if m.addraw_records != nil {
		fields = append(fields, run.FieldRawRecords)
	}
	if m.addcleaned_records != nil {
		fields = append(fields, run.FieldCleanedRecords)
	}
	if m.addtotal_hours != nil {
		fields = append(fields, run.FieldTotalHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case run.FieldFilesScanned:
		return m.AddedFilesScanned()
	case run.FieldFilesFailed:
		return m.AddedFilesFailed()
	case run.FieldUnitsProcessed:
		return m.AddedUnitsProcessed()
	case run.FieldUnitsSkipped:
		return m.AddedUnitsSkipped()
	case run.FieldRawRecords:
		return m.AddedRawRecords()
	case run.FieldCleanedRecords:
		return m.AddedCleanedRecords()
	case run.FieldTotalHours:
		return m.AddedTotalHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case run.FieldFilesScanned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFilesScanned(v)
		return nil
	case run.FieldFilesFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFilesFailed(v)
		return nil
	case run.FieldUnitsProcessed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitsProcessed(v)
		return nil
	case run.FieldUnitsSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitsSkipped(v)
		return nil
	case run.FieldRawRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRawRecords(v)
		return nil
	case run.FieldCleanedRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCleanedRecords(v)
		return nil
	case run.FieldTotalHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalHours(v)
		return nil
	}
	return fmt.Errorf("unknown Run numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(run.FieldFinishedAt) {
		fields = append(fields, run.FieldFinishedAt)
	}
	if m.FieldCleared(run.FieldErrorMessage) {
		fields = append(fields, run.FieldErrorMessage)
	}
	if m.FieldCleared(run.FieldStats) {
		fields = append(fields, run.FieldStats)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunMutation) ClearField(name string) error {
	switch name {
	case run.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case run.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case run.FieldStats:
		m.ClearStats()
		return nil
	}
	return fmt.Errorf("unknown Run nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunMutation) ResetField(name string) error {
	switch name {
	case run.FieldInputRoot:
		m.ResetInputRoot()
		return nil
	case run.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case run.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case run.FieldStatus:
		m.ResetStatus()
		return nil
	case run.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case run.FieldFilesScanned:
		m.ResetFilesScanned()
		return nil
	case run.FieldFilesFailed:
		m.ResetFilesFailed()
		return nil
	case run.FieldUnitsProcessed:
		m.ResetUnitsProcessed()
		return nil
	case run.FieldUnitsSkipped:
		m.ResetUnitsSkipped()
		return nil
	case run.FieldRawRecords:
		m.ResetRawRecords()
		return nil
	case run.FieldCleanedRecords:
		m.ResetCleanedRecords()
		return nil
	case run.FieldTotalHours:
		m.ResetTotalHours()
		return nil
	case run.FieldStats:
		m.ResetStats()
		return nil
	}
	return fmt.Errorf("unknown Run field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.records != nil {
		edges = append(edges, run.EdgeRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.records))
		for id := range m.records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedrecords != nil {
		edges = append(edges, run.EdgeRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case run.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.removedrecords))
		for id := range m.removedrecords {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrecords {
		edges = append(edges, run.EdgeRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunMutation) EdgeCleared(name string) bool {
	switch name {
	case run.EdgeRecords:
		return m.clearedrecords
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Run unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunMutation) ResetEdge(name string) error {
	switch name {
	case run.EdgeRecords:
		m.ResetRecords()
		return nil
	}
	return fmt.Errorf("unknown Run edge %s", name)
}
