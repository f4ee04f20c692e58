package entity

import "strconv"

// RawCourseRecord is one course occurrence recovered from a source cell or row.
// Fields are best-effort; only the provenance fields are guaranteed.
type RawCourseRecord struct {
	SourceFile    string `json:"source_file"`
	SheetOrPage   string `json:"sheet_or_page"`
	SourceLocator string `json:"source_locator"`

	CourseName    string `json:"course_name,omitempty"`
	InstructorRaw string `json:"instructor_raw,omitempty"`
	// HoursRaw holds whatever the source had: string, int, float64 or nil.
	HoursRaw      any    `json:"hours_raw,omitempty"`
	CategoryRaw   string `json:"category_raw,omitempty"`
	WeekRaw       string `json:"week_raw,omitempty"`
	LocationRaw   string `json:"location_raw,omitempty"`
	SectionRaw    string `json:"section_raw,omitempty"`
	TimePeriodRaw string `json:"time_period_raw,omitempty"`
	Weekday       string `json:"weekday,omitempty"`
	Period        string `json:"period,omitempty"`
	Note          string `json:"note,omitempty"`

	SourceOriginalNameText string `json:"source_original_name_text,omitempty"`
}

// CleanedCourseRecord is a normalized, deduplicated course.
type CleanedCourseRecord struct {
	CourseName    string `json:"course_name"`
	Instructor    string `json:"instructor"`
	Hours         int    `json:"hours"`
	Category      string `json:"category"`
	Week          string `json:"week"`
	Location      string `json:"location"`
	Section       string `json:"section"`
	TimePeriod    string `json:"time_period"`
	Note          string `json:"note,omitempty"`
	SourceFile    string `json:"source_file"`
	SheetOrPage   string `json:"sheet_or_page"`
	SourceLocator string `json:"source_locator"`

	SourceOriginalNameText string `json:"source_original_name_text,omitempty"`
}

// Field returns the value of a record field by its snake_case name.
func (c CleanedCourseRecord) Field(name string) (string, bool) {
	switch name {
	case "course_name":
		return c.CourseName, true
	case "instructor":
		return c.Instructor, true
	case "hours":
		return strconv.Itoa(c.Hours), true
	case "category":
		return c.Category, true
	case "week":
		return c.Week, true
	case "location":
		return c.Location, true
	case "section":
		return c.Section, true
	case "time_period":
		return c.TimePeriod, true
	case "source_file":
		return c.SourceFile, true
	case "sheet_or_page":
		return c.SheetOrPage, true
	}
	return "", false
}
