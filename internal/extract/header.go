package extract

import (
	"sort"
	"strings"

	"golang.org/x/text/width"

	"github.com/joseph-ayodele/course-stats/constants"
)

// maxHeaderScan is how many leading rows are searched for a header.
const maxHeaderScan = 6

// targetOrder fixes the assignment order of well-known fields so that
// detection does not depend on map iteration.
var targetOrder = []string{
	"course_name", "instructor", "hours", "category",
	"week", "location", "section", "time_period",
}

// HeaderDetector finds a columnar header row using field aliases.
type HeaderDetector struct {
	targets   []string
	aliases   map[string][]string
	threshold int
}

// NewHeaderDetector normalizes the alias table once.
func NewHeaderDetector(mapping map[string][]string, threshold int) *HeaderDetector {
	if threshold < 1 {
		threshold = 1
	}
	d := &HeaderDetector{aliases: make(map[string][]string, len(mapping)), threshold: threshold}
	for target, list := range mapping {
		for _, a := range list {
			if a = normalizeHeader(a); a != "" {
				d.aliases[target] = append(d.aliases[target], a)
			}
		}
	}

	known := make(map[string]bool, len(targetOrder))
	for _, t := range targetOrder {
		known[t] = true
		if _, ok := d.aliases[t]; ok {
			d.targets = append(d.targets, t)
		}
	}
	var extra []string
	for t := range d.aliases {
		if !known[t] {
			extra = append(extra, t)
		}
	}
	sort.Strings(extra)
	d.targets = append(d.targets, extra...)
	return d
}

// Detect returns the index of the header row and its column assignment, or
// -1 when the leading rows look like a weekday timetable or nothing matches
// well enough.
func (d *HeaderDetector) Detect(rows [][]string) (int, map[string]int) {
	for i := 0; i < len(rows) && i < maxHeaderScan; i++ {
		if weekdayCells(rows[i]) >= 2 {
			return -1, nil
		}
		cols := d.match(rows[i])
		if len(cols) >= d.threshold {
			return i, cols
		}
	}
	return -1, nil
}

// GridStart returns the first row that names weekdays, so leading title rows
// can be dropped before grid processing. It returns 0 when there is none.
func GridStart(rows [][]string) int {
	for i := 0; i < len(rows) && i < maxHeaderScan; i++ {
		if weekdayCells(rows[i]) >= 2 {
			return i
		}
	}
	return 0
}

// match assigns columns in two passes: exact alias matches for every target,
// then substring matches for the targets still missing. A column is never
// assigned twice.
func (d *HeaderDetector) match(row []string) map[string]int {
	cells := make([]string, len(row))
	for i, c := range row {
		cells[i] = normalizeHeader(c)
	}
	cols := make(map[string]int)
	taken := make(map[int]bool)

	assign := func(contains bool) {
		for _, target := range d.targets {
			if _, done := cols[target]; done {
				continue
			}
		scan:
			for idx, cell := range cells {
				if cell == "" || taken[idx] {
					continue
				}
				for _, alias := range d.aliases[target] {
					if cell == alias || (contains && strings.Contains(cell, alias)) {
						cols[target] = idx
						taken[idx] = true
						break scan
					}
				}
			}
		}
	}
	assign(false)
	assign(true)
	return cols
}

func weekdayCells(row []string) int {
	n := 0
	for _, c := range row {
		if _, ok := constants.CanonicalWeekday(strings.TrimSpace(c)); ok {
			n++
		}
	}
	return n
}

func normalizeHeader(s string) string {
	s = strings.ToLower(width.Fold.String(s))
	return strings.Join(strings.Fields(s), "")
}
