package entity

// Table is a 2-D cell grid lifted from one spreadsheet sheet or one PDF page
// table. Rows are kept exactly as the reader produced them.
type Table struct {
	SourceFile string
	// Unit is the sheet name, or "第N页" for PDF pages.
	Unit  string
	Page  int // 1-based; zero for spreadsheets
	Index int // table index within the unit, 1-based
	Rows  [][]string

	// HeaderRow is the detected header row index, or -1 for timetable grids.
	HeaderRow int
	// Columns maps a target field name to its column index when HeaderRow >= 0.
	Columns map[string]int
}

// IsGrid reports whether the table is a weekday timetable rather than a
// columnar record list.
func (t Table) IsGrid() bool {
	return t.HeaderRow < 0
}
