package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andybalholm/brotli"

	"github.com/joseph-ayodele/course-stats/internal/entity"
)

// utf8BOM lets spreadsheet applications detect the encoding.
const utf8BOM = "\ufeff"

// CoreHeader is the column order of the cleaned CSV export.
var CoreHeader = []string{
	"source_file", "sheet_or_page", "course_name", "instructor", "hours",
	"category", "week", "location", "section", "time_period",
}

var rawHeader = []string{
	"source_file", "sheet_or_page", "source_locator", "course_name", "instructor_raw",
	"hours_raw", "category_raw", "week_raw", "location_raw", "section_raw",
	"time_period_raw", "weekday", "period", "note", "source_original_name_text",
}

// WriteCSV writes the core fields of records. Rows without a course name are
// dropped.
func WriteCSV(w io.Writer, records []entity.CleanedCourseRecord) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(CoreHeader); err != nil {
		return err
	}
	for _, r := range records {
		if strings.TrimSpace(r.CourseName) == "" {
			continue
		}
		row := []string{
			r.SourceFile, r.SheetOrPage, r.CourseName, r.Instructor, strconv.Itoa(r.Hours),
			r.Category, r.Week, r.Location, r.Section, r.TimePeriod,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRawCSV writes every raw field for manual auditing.
func WriteRawCSV(w io.Writer, raws []entity.RawCourseRecord) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(rawHeader); err != nil {
		return err
	}
	for _, r := range raws {
		hours := ""
		if r.HoursRaw != nil {
			hours = fmt.Sprint(r.HoursRaw)
		}
		row := []string{
			r.SourceFile, r.SheetOrPage, r.SourceLocator, r.CourseName, r.InstructorRaw,
			hours, r.CategoryRaw, r.WeekRaw, r.LocationRaw, r.SectionRaw,
			r.TimePeriodRaw, r.Weekday, r.Period, r.Note, r.SourceOriginalNameText,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the cleaned CSV to path atomically, brotli-compressed
// when path ends in ".br".
func WriteCSVFile(path string, records []entity.CleanedCourseRecord) error {
	return writeMaybeCompressed(path, func(w io.Writer) error { return WriteCSV(w, records) })
}

// WriteRawCSVFile is WriteCSVFile for raw records.
func WriteRawCSVFile(path string, raws []entity.RawCourseRecord) error {
	return writeMaybeCompressed(path, func(w io.Writer) error { return WriteRawCSV(w, raws) })
}

func writeMaybeCompressed(path string, write func(io.Writer) error) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		if !strings.HasSuffix(strings.ToLower(path), ".br") {
			return write(w)
		}
		bw := brotli.NewWriterLevel(w, brotli.DefaultCompression)
		if err := write(bw); err != nil {
			_ = bw.Close()
			return err
		}
		return bw.Close()
	})
}
