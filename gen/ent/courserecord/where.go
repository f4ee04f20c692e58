// Code generated by ent, DO NOT EDIT.

package courserecord

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/course-stats/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v uuid.UUID) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldRunID, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldPosition, v))
}

// CourseName applies equality check predicate on the "course_name" field. It's identical to CourseNameEQ.
func CourseName(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldCourseName, v))
}

// Instructor applies equality check predicate on the "instructor" field. It's identical to InstructorEQ.
func Instructor(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldInstructor, v))
}

// Hours applies equality check predicate on the "hours" field. It's identical to HoursEQ.
func Hours(v int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldHours, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldCategory, v))
}

// Week applies equality check predicate on the "week" field. It's identical to WeekEQ.
func Week(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldWeek, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldLocation, v))
}

// Section applies equality check predicate on the "section" field. It's identical to SectionEQ.
func Section(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldSection, v))
}

// TimePeriod applies equality check predicate on the "time_period" field. It's identical to TimePeriodEQ.
func TimePeriod(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldTimePeriod, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldNote, v))
}

// SourceFile applies equality check predicate on the "source_file" field. It's identical to SourceFileEQ.
func SourceFile(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldSourceFile, v))
}

// SheetOrPage applies equality check predicate on the "sheet_or_page" field. It's identical to SheetOrPageEQ.
func SheetOrPage(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldSheetOrPage, v))
}

// SourceLocator applies equality check predicate on the "source_locator" field. It's identical to SourceLocatorEQ.
func SourceLocator(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldSourceLocator, v))
}

// SourceText applies equality check predicate on the "source_text" field. It's identical to SourceTextEQ.
func SourceText(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldSourceText, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v uuid.UUID) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v uuid.UUID) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...uuid.UUID) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...uuid.UUID) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNotIn(FieldRunID, vs...))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLTE(FieldPosition, v))
}

// CourseNameEQ applies the EQ predicate on the "course_name" field.
func CourseNameEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldCourseName, v))
}

// CourseNameNEQ applies the NEQ predicate on the "course_name" field.
func CourseNameNEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNEQ(FieldCourseName, v))
}

// CourseNameIn applies the In predicate on the "course_name" field.
func CourseNameIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldIn(FieldCourseName, vs...))
}

// CourseNameNotIn applies the NotIn predicate on the "course_name" field.
func CourseNameNotIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNotIn(FieldCourseName, vs...))
}

// CourseNameGT applies the GT predicate on the "course_name" field.
func CourseNameGT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGT(FieldCourseName, v))
}

// CourseNameGTE applies the GTE predicate on the "course_name" field.
func CourseNameGTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGTE(FieldCourseName, v))
}

// CourseNameLT applies the LT predicate on the "course_name" field.
func CourseNameLT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLT(FieldCourseName, v))
}

// CourseNameLTE applies the LTE predicate on the "course_name" field.
func CourseNameLTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLTE(FieldCourseName, v))
}

// CourseNameContains applies the Contains predicate on the "course_name" field.
func CourseNameContains(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContains(FieldCourseName, v))
}

// CourseNameHasPrefix applies the HasPrefix predicate on the "course_name" field.
func CourseNameHasPrefix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasPrefix(FieldCourseName, v))
}

// CourseNameHasSuffix applies the HasSuffix predicate on the "course_name" field.
func CourseNameHasSuffix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasSuffix(FieldCourseName, v))
}

// CourseNameEqualFold applies the EqualFold predicate on the "course_name" field.
func CourseNameEqualFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEqualFold(FieldCourseName, v))
}

// CourseNameContainsFold applies the ContainsFold predicate on the "course_name" field.
func CourseNameContainsFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContainsFold(FieldCourseName, v))
}

// InstructorEQ applies the EQ predicate on the "instructor" field.
func InstructorEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldInstructor, v))
}

// InstructorNEQ applies the NEQ predicate on the "instructor" field.
func InstructorNEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNEQ(FieldInstructor, v))
}

// InstructorIn applies the In predicate on the "instructor" field.
func InstructorIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldIn(FieldInstructor, vs...))
}

// InstructorNotIn applies the NotIn predicate on the "instructor" field.
func InstructorNotIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNotIn(FieldInstructor, vs...))
}

// InstructorGT applies the GT predicate on the "instructor" field.
func InstructorGT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGT(FieldInstructor, v))
}

// InstructorGTE applies the GTE predicate on the "instructor" field.
func InstructorGTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGTE(FieldInstructor, v))
}

// InstructorLT applies the LT predicate on the "instructor" field.
func InstructorLT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLT(FieldInstructor, v))
}

// InstructorLTE applies the LTE predicate on the "instructor" field.
func InstructorLTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLTE(FieldInstructor, v))
}

// InstructorContains applies the Contains predicate on the "instructor" field.
func InstructorContains(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContains(FieldInstructor, v))
}

// InstructorHasPrefix applies the HasPrefix predicate on the "instructor" field.
func InstructorHasPrefix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasPrefix(FieldInstructor, v))
}

// InstructorHasSuffix applies the HasSuffix predicate on the "instructor" field.
func InstructorHasSuffix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasSuffix(FieldInstructor, v))
}

// InstructorEqualFold applies the EqualFold predicate on the "instructor" field.
func InstructorEqualFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEqualFold(FieldInstructor, v))
}

// InstructorContainsFold applies the ContainsFold predicate on the "instructor" field.
func InstructorContainsFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContainsFold(FieldInstructor, v))
}

// HoursEQ applies the EQ predicate on the "hours" field.
func HoursEQ(v int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldHours, v))
}

// HoursNEQ applies the NEQ predicate on the "hours" field.
func HoursNEQ(v int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNEQ(FieldHours, v))
}

// HoursIn applies the In predicate on the "hours" field.
func HoursIn(vs ...int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldIn(FieldHours, vs...))
}

// HoursNotIn applies the NotIn predicate on the "hours" field.
func HoursNotIn(vs ...int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNotIn(FieldHours, vs...))
}

// HoursGT applies the GT predicate on the "hours" field.
func HoursGT(v int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGT(FieldHours, v))
}

// HoursGTE applies the GTE predicate on the "hours" field.
func HoursGTE(v int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGTE(FieldHours, v))
}

// HoursLT applies the LT predicate on the "hours" field.
func HoursLT(v int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLT(FieldHours, v))
}

// HoursLTE applies the LTE predicate on the "hours" field.
func HoursLTE(v int) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLTE(FieldHours, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContainsFold(FieldCategory, v))
}

// WeekEQ applies the EQ predicate on the "week" field.
func WeekEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldWeek, v))
}

// WeekNEQ applies the NEQ predicate on the "week" field.
func WeekNEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNEQ(FieldWeek, v))
}

// WeekIn applies the In predicate on the "week" field.
func WeekIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldIn(FieldWeek, vs...))
}

// WeekNotIn applies the NotIn predicate on the "week" field.
func WeekNotIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNotIn(FieldWeek, vs...))
}

// WeekGT applies the GT predicate on the "week" field.
func WeekGT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGT(FieldWeek, v))
}

// WeekGTE applies the GTE predicate on the "week" field.
func WeekGTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGTE(FieldWeek, v))
}

// WeekLT applies the LT predicate on the "week" field.
func WeekLT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLT(FieldWeek, v))
}

// WeekLTE applies the LTE predicate on the "week" field.
func WeekLTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLTE(FieldWeek, v))
}

// WeekContains applies the Contains predicate on the "week" field.
func WeekContains(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContains(FieldWeek, v))
}

// WeekHasPrefix applies the HasPrefix predicate on the "week" field.
func WeekHasPrefix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasPrefix(FieldWeek, v))
}

// WeekHasSuffix applies the HasSuffix predicate on the "week" field.
func WeekHasSuffix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasSuffix(FieldWeek, v))
}

// WeekEqualFold applies the EqualFold predicate on the "week" field.
func WeekEqualFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEqualFold(FieldWeek, v))
}

// WeekContainsFold applies the ContainsFold predicate on the "week" field.
func WeekContainsFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContainsFold(FieldWeek, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContainsFold(FieldLocation, v))
}

// SectionEQ applies the EQ predicate on the "section" field.
func SectionEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldSection, v))
}

// SectionNEQ applies the NEQ predicate on the "section" field.
func SectionNEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNEQ(FieldSection, v))
}

// SectionIn applies the In predicate on the "section" field.
func SectionIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldIn(FieldSection, vs...))
}

// SectionNotIn applies the NotIn predicate on the "section" field.
func SectionNotIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNotIn(FieldSection, vs...))
}

// SectionGT applies the GT predicate on the "section" field.
func SectionGT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGT(FieldSection, v))
}

// SectionGTE applies the GTE predicate on the "section" field.
func SectionGTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGTE(FieldSection, v))
}

// SectionLT applies the LT predicate on the "section" field.
func SectionLT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLT(FieldSection, v))
}

// SectionLTE applies the LTE predicate on the "section" field.
func SectionLTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLTE(FieldSection, v))
}

// SectionContains applies the Contains predicate on the "section" field.
func SectionContains(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContains(FieldSection, v))
}

// SectionHasPrefix applies the HasPrefix predicate on the "section" field.
func SectionHasPrefix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasPrefix(FieldSection, v))
}

// SectionHasSuffix applies the HasSuffix predicate on the "section" field.
func SectionHasSuffix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasSuffix(FieldSection, v))
}

// SectionEqualFold applies the EqualFold predicate on the "section" field.
func SectionEqualFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEqualFold(FieldSection, v))
}

// SectionContainsFold applies the ContainsFold predicate on the "section" field.
func SectionContainsFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContainsFold(FieldSection, v))
}

// TimePeriodEQ applies the EQ predicate on the "time_period" field.
func TimePeriodEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldTimePeriod, v))
}

// TimePeriodNEQ applies the NEQ predicate on the "time_period" field.
func TimePeriodNEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNEQ(FieldTimePeriod, v))
}

// TimePeriodIn applies the In predicate on the "time_period" field.
func TimePeriodIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldIn(FieldTimePeriod, vs...))
}

// TimePeriodNotIn applies the NotIn predicate on the "time_period" field.
func TimePeriodNotIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNotIn(FieldTimePeriod, vs...))
}

// TimePeriodGT applies the GT predicate on the "time_period" field.
func TimePeriodGT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGT(FieldTimePeriod, v))
}

// TimePeriodGTE applies the GTE predicate on the "time_period" field.
func TimePeriodGTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGTE(FieldTimePeriod, v))
}

// TimePeriodLT applies the LT predicate on the "time_period" field.
func TimePeriodLT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLT(FieldTimePeriod, v))
}

// TimePeriodLTE applies the LTE predicate on the "time_period" field.
func TimePeriodLTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLTE(FieldTimePeriod, v))
}

// TimePeriodContains applies the Contains predicate on the "time_period" field.
func TimePeriodContains(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContains(FieldTimePeriod, v))
}

// TimePeriodHasPrefix applies the HasPrefix predicate on the "time_period" field.
func TimePeriodHasPrefix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasPrefix(FieldTimePeriod, v))
}

// TimePeriodHasSuffix applies the HasSuffix predicate on the "time_period" field.
func TimePeriodHasSuffix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasSuffix(FieldTimePeriod, v))
}

// TimePeriodEqualFold applies the EqualFold predicate on the "time_period" field.
func TimePeriodEqualFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEqualFold(FieldTimePeriod, v))
}

// TimePeriodContainsFold applies the ContainsFold predicate on the "time_period" field.
func TimePeriodContainsFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContainsFold(FieldTimePeriod, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasSuffix(FieldNote, v))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContainsFold(FieldNote, v))
}

// SourceFileEQ applies the EQ predicate on the "source_file" field.
func SourceFileEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldSourceFile, v))
}

// SourceFileNEQ applies the NEQ predicate on the "source_file" field.
func SourceFileNEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNEQ(FieldSourceFile, v))
}

// SourceFileIn applies the In predicate on the "source_file" field.
func SourceFileIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldIn(FieldSourceFile, vs...))
}

// SourceFileNotIn applies the NotIn predicate on the "source_file" field.
func SourceFileNotIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNotIn(FieldSourceFile, vs...))
}

// SourceFileGT applies the GT predicate on the "source_file" field.
func SourceFileGT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGT(FieldSourceFile, v))
}

// SourceFileGTE applies the GTE predicate on the "source_file" field.
func SourceFileGTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGTE(FieldSourceFile, v))
}

// SourceFileLT applies the LT predicate on the "source_file" field.
func SourceFileLT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLT(FieldSourceFile, v))
}

// SourceFileLTE applies the LTE predicate on the "source_file" field.
func SourceFileLTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLTE(FieldSourceFile, v))
}

// SourceFileContains applies the Contains predicate on the "source_file" field.
func SourceFileContains(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContains(FieldSourceFile, v))
}

// SourceFileHasPrefix applies the HasPrefix predicate on the "source_file" field.
func SourceFileHasPrefix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasPrefix(FieldSourceFile, v))
}

// SourceFileHasSuffix applies the HasSuffix predicate on the "source_file" field.
func SourceFileHasSuffix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasSuffix(FieldSourceFile, v))
}

// SourceFileEqualFold applies the EqualFold predicate on the "source_file" field.
func SourceFileEqualFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEqualFold(FieldSourceFile, v))
}

// SourceFileContainsFold applies the ContainsFold predicate on the "source_file" field.
func SourceFileContainsFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContainsFold(FieldSourceFile, v))
}

// SheetOrPageEQ applies the EQ predicate on the "sheet_or_page" field.
func SheetOrPageEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldSheetOrPage, v))
}

// SheetOrPageNEQ applies the NEQ predicate on the "sheet_or_page" field.
func SheetOrPageNEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNEQ(FieldSheetOrPage, v))
}

// SheetOrPageIn applies the In predicate on the "sheet_or_page" field.
func SheetOrPageIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldIn(FieldSheetOrPage, vs...))
}

// SheetOrPageNotIn applies the NotIn predicate on the "sheet_or_page" field.
func SheetOrPageNotIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNotIn(FieldSheetOrPage, vs...))
}

// SheetOrPageGT applies the GT predicate on the "sheet_or_page" field.
func SheetOrPageGT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGT(FieldSheetOrPage, v))
}

// SheetOrPageGTE applies the GTE predicate on the "sheet_or_page" field.
func SheetOrPageGTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGTE(FieldSheetOrPage, v))
}

// SheetOrPageLT applies the LT predicate on the "sheet_or_page" field.
func SheetOrPageLT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLT(FieldSheetOrPage, v))
}

// SheetOrPageLTE applies the LTE predicate on the "sheet_or_page" field.
func SheetOrPageLTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLTE(FieldSheetOrPage, v))
}

// SheetOrPageContains applies the Contains predicate on the "sheet_or_page" field.
func SheetOrPageContains(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContains(FieldSheetOrPage, v))
}

// SheetOrPageHasPrefix applies the HasPrefix predicate on the "sheet_or_page" field.
func SheetOrPageHasPrefix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasPrefix(FieldSheetOrPage, v))
}

// SheetOrPageHasSuffix applies the HasSuffix predicate on the "sheet_or_page" field.
func SheetOrPageHasSuffix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasSuffix(FieldSheetOrPage, v))
}

// SheetOrPageEqualFold applies the EqualFold predicate on the "sheet_or_page" field.
func SheetOrPageEqualFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEqualFold(FieldSheetOrPage, v))
}

// SheetOrPageContainsFold applies the ContainsFold predicate on the "sheet_or_page" field.
func SheetOrPageContainsFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContainsFold(FieldSheetOrPage, v))
}

// SourceLocatorEQ applies the EQ predicate on the "source_locator" field.
func SourceLocatorEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldSourceLocator, v))
}

// SourceLocatorNEQ applies the NEQ predicate on the "source_locator" field.
func SourceLocatorNEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNEQ(FieldSourceLocator, v))
}

// SourceLocatorIn applies the In predicate on the "source_locator" field.
func SourceLocatorIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldIn(FieldSourceLocator, vs...))
}

// SourceLocatorNotIn applies the NotIn predicate on the "source_locator" field.
func SourceLocatorNotIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNotIn(FieldSourceLocator, vs...))
}

// SourceLocatorGT applies the GT predicate on the "source_locator" field.
func SourceLocatorGT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGT(FieldSourceLocator, v))
}

// SourceLocatorGTE applies the GTE predicate on the "source_locator" field.
func SourceLocatorGTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGTE(FieldSourceLocator, v))
}

// SourceLocatorLT applies the LT predicate on the "source_locator" field.
func SourceLocatorLT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLT(FieldSourceLocator, v))
}

// SourceLocatorLTE applies the LTE predicate on the "source_locator" field.
func SourceLocatorLTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLTE(FieldSourceLocator, v))
}

// SourceLocatorContains applies the Contains predicate on the "source_locator" field.
func SourceLocatorContains(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContains(FieldSourceLocator, v))
}

// SourceLocatorHasPrefix applies the HasPrefix predicate on the "source_locator" field.
func SourceLocatorHasPrefix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasPrefix(FieldSourceLocator, v))
}

// SourceLocatorHasSuffix applies the HasSuffix predicate on the "source_locator" field.
func SourceLocatorHasSuffix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasSuffix(FieldSourceLocator, v))
}

// SourceLocatorEqualFold applies the EqualFold predicate on the "source_locator" field.
func SourceLocatorEqualFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEqualFold(FieldSourceLocator, v))
}

// SourceLocatorContainsFold applies the ContainsFold predicate on the "source_locator" field.
func SourceLocatorContainsFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContainsFold(FieldSourceLocator, v))
}

// SourceTextEQ applies the EQ predicate on the "source_text" field.
func SourceTextEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEQ(FieldSourceText, v))
}

// SourceTextNEQ applies the NEQ predicate on the "source_text" field.
func SourceTextNEQ(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNEQ(FieldSourceText, v))
}

// SourceTextIn applies the In predicate on the "source_text" field.
func SourceTextIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldIn(FieldSourceText, vs...))
}

// SourceTextNotIn applies the NotIn predicate on the "source_text" field.
func SourceTextNotIn(vs ...string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldNotIn(FieldSourceText, vs...))
}

// SourceTextGT applies the GT predicate on the "source_text" field.
func SourceTextGT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGT(FieldSourceText, v))
}

// SourceTextGTE applies the GTE predicate on the "source_text" field.
func SourceTextGTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldGTE(FieldSourceText, v))
}

// SourceTextLT applies the LT predicate on the "source_text" field.
func SourceTextLT(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLT(FieldSourceText, v))
}

// SourceTextLTE applies the LTE predicate on the "source_text" field.
func SourceTextLTE(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldLTE(FieldSourceText, v))
}

// SourceTextContains applies the Contains predicate on the "source_text" field.
func SourceTextContains(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContains(FieldSourceText, v))
}

// SourceTextHasPrefix applies the HasPrefix predicate on the "source_text" field.
func SourceTextHasPrefix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasPrefix(FieldSourceText, v))
}

// SourceTextHasSuffix applies the HasSuffix predicate on the "source_text" field.
func SourceTextHasSuffix(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldHasSuffix(FieldSourceText, v))
}

// SourceTextEqualFold applies the EqualFold predicate on the "source_text" field.
func SourceTextEqualFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldEqualFold(FieldSourceText, v))
}

// SourceTextContainsFold applies the ContainsFold predicate on the "source_text" field.
func SourceTextContainsFold(v string) predicate.CourseRecord {
	return predicate.CourseRecord(sql.FieldContainsFold(FieldSourceText, v))
}

// HasRun applies the HasEdge predicate on the "run" edge.
func HasRun() predicate.CourseRecord {
	return predicate.CourseRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunWith applies the HasEdge predicate on the "run" edge with a given conditions (other predicates).
func HasRunWith(preds ...predicate.Run) predicate.CourseRecord {
	return predicate.CourseRecord(func(s *sql.Selector) {
		step := newRunStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CourseRecord) predicate.CourseRecord {
	return predicate.CourseRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CourseRecord) predicate.CourseRecord {
	return predicate.CourseRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CourseRecord) predicate.CourseRecord {
	return predicate.CourseRecord(sql.NotPredicates(p))
}
