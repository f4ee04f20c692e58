package recovery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joseph-ayodele/course-stats/constants"
	"github.com/joseph-ayodele/course-stats/internal/entity"
)

const (
	timePeriodCol   = 0
	sectionCol      = 1
	firstWeekdayCol = 2
)

// ProcessTable recovers raw records from one table, dispatching on whether it
// is a weekday grid or a columnar list. The time-period carry starts fresh.
func (e *Engine) ProcessTable(t entity.Table) []entity.RawCourseRecord {
	var recs []entity.RawCourseRecord
	layout := "grid"
	if t.IsGrid() {
		recs = e.processGrid(t)
	} else {
		layout = "columnar"
		recs = e.processColumnar(t)
	}
	e.logger.Debug("recovery.table.done",
		"file", t.SourceFile, "unit", t.Unit, "table", t.Index,
		"layout", layout, "rows", len(t.Rows), "records", len(recs))
	return recs
}

// GridRow is the provenance of one timetable row.
type GridRow struct {
	Table    entity.Table
	Index    int // 0-based row index within the table
	Weekdays map[int]string
}

func (e *Engine) processGrid(t entity.Table) []entity.RawCourseRecord {
	if len(t.Rows) < 2 {
		return nil
	}
	weekdays := WeekdayColumns(t.Rows[0])

	var (
		out   []entity.RawCourseRecord
		carry Carry
	)
	for i := 1; i < len(t.Rows); i++ {
		// Short rows still reach ProcessGridRow: excelize trims trailing empty
		// cells, and a row holding only a time period must update the carry.
		row := t.Rows[i]
		if e.isHeaderRow(row) {
			continue
		}
		var recs []entity.RawCourseRecord
		recs, carry = e.ProcessGridRow(GridRow{Table: t, Index: i, Weekdays: weekdays}, row, carry)
		out = append(out, recs...)
	}
	return out
}

// ProcessGridRow recovers one record per non-empty weekday cell and returns
// the updated carry.
func (e *Engine) ProcessGridRow(pos GridRow, row []string, carry Carry) ([]entity.RawCourseRecord, Carry) {
	section := cellAt(row, sectionCol)
	timePeriod, carry := carry.Resolve(cellAt(row, timePeriodCol), section)
	period := NormalizePeriod(timePeriod, section)
	hours := SectionHours(section)

	var out []entity.RawCourseRecord
	for col := firstWeekdayCol; col < len(row) && col < firstWeekdayCol+len(constants.Weekdays); col++ {
		text := strings.TrimSpace(row[col])
		fields, ok := e.RecoverCell(text)
		if !ok {
			continue
		}
		weekday := pos.Weekdays[col]
		out = append(out, entity.RawCourseRecord{
			SourceFile:  pos.Table.SourceFile,
			SheetOrPage: pos.Table.Unit + "-" + weekday,
			SourceLocator: fmt.Sprintf("%s|%s|table%d|row%d|%s|col%d",
				pos.Table.SourceFile, pos.Table.Unit, pos.Table.Index, pos.Index, weekday, col),
			CourseName:             fields.CourseName,
			InstructorRaw:          fields.Instructor,
			HoursRaw:               hours,
			CategoryRaw:            fields.Category,
			WeekRaw:                fields.Week,
			LocationRaw:            fields.Location,
			SectionRaw:             section,
			TimePeriodRaw:          timePeriod,
			Weekday:                weekday,
			Period:                 period,
			Note:                   fields.Note,
			SourceOriginalNameText: text,
		})
	}
	return out, carry
}

// WeekdayColumns maps grid columns to weekday names, reading the header row
// where it is recognizable and falling back to column position.
func WeekdayColumns(header []string) map[int]string {
	cols := make(map[int]string, len(constants.Weekdays))
	for i, d := range constants.Weekdays {
		cols[firstWeekdayCol+i] = d
	}
	for col := firstWeekdayCol; col < len(header); col++ {
		if d, ok := constants.CanonicalWeekday(strings.TrimSpace(header[col])); ok {
			cols[col] = d
		}
	}
	return cols
}

func (e *Engine) isHeaderRow(row []string) bool {
	seen := false
	for _, c := range row {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if !e.IsHeaderToken(c) {
			return false
		}
		seen = true
	}
	return seen
}

func (e *Engine) processColumnar(t entity.Table) []entity.RawCourseRecord {
	var (
		out   []entity.RawCourseRecord
		carry Carry
	)
	get := func(row []string, field string) string {
		idx, ok := t.Columns[field]
		if !ok {
			return ""
		}
		return cellAt(row, idx)
	}

	for i := t.HeaderRow + 1; i < len(t.Rows); i++ {
		row := t.Rows[i]
		if e.isHeaderRow(row) {
			continue
		}
		nameCell := get(row, "course_name")
		if nameCell == "" || e.IsHeaderToken(nameCell) {
			continue
		}

		rec := entity.RawCourseRecord{
			SourceFile:             t.SourceFile,
			SheetOrPage:            t.Unit,
			SourceLocator:          t.SourceFile + "|" + t.Unit + "|row" + strconv.Itoa(i+1),
			CourseName:             nameCell,
			InstructorRaw:          get(row, "instructor"),
			CategoryRaw:            get(row, "category"),
			WeekRaw:                get(row, "week"),
			LocationRaw:            get(row, "location"),
			SectionRaw:             get(row, "section"),
			SourceOriginalNameText: nameCell,
		}
		if h := get(row, "hours"); h != "" {
			rec.HoursRaw = h
		} else if rec.SectionRaw != "" {
			rec.HoursRaw = SectionHours(rec.SectionRaw)
		}

		// A combined cell like "高等数学/张三/1-16周" still needs splitting.
		if rec.InstructorRaw == "" || separatorRe.MatchString(nameCell) {
			fields, ok := e.RecoverCell(nameCell)
			if !ok {
				continue
			}
			rec.CourseName = fields.CourseName
			rec.Note = fields.Note
			if rec.InstructorRaw == "" {
				rec.InstructorRaw = fields.Instructor
			}
			if rec.CategoryRaw == "" {
				rec.CategoryRaw = fields.Category
			}
			if rec.WeekRaw == "" {
				rec.WeekRaw = fields.Week
			}
			if rec.LocationRaw == "" {
				rec.LocationRaw = fields.Location
			}
		}

		rec.TimePeriodRaw, carry = carry.Resolve(get(row, "time_period"), rec.SectionRaw)
		rec.Period = NormalizePeriod(rec.TimePeriodRaw, rec.SectionRaw)
		out = append(out, rec)
	}
	return out
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	v := strings.TrimSpace(row[idx])
	if isPlaceholder(v) {
		return ""
	}
	return v
}
