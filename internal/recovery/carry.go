package recovery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/joseph-ayodele/course-stats/constants"
)

// Carry remembers the last explicit time-period value seen while walking the
// rows of one table. PDF tables report vertically merged cells as empty on
// every row but the first; Carry fills those gaps. Use a zero Carry per table.
type Carry struct {
	last string
}

// Last returns the remembered value, or "" if none.
func (c Carry) Last() string { return c.last }

// Resolve picks the time period for a row. An explicit value wins and is
// remembered; otherwise the remembered value is reused; otherwise the period
// is inferred from the section number; otherwise it is unknown.
func (c Carry) Resolve(explicit, section string) (string, Carry) {
	if explicit = strings.TrimSpace(explicit); explicit != "" && !isPlaceholder(explicit) {
		return explicit, Carry{last: explicit}
	}
	if c.last != "" {
		return c.last, c
	}
	if p := InferPeriod(section); p != "" {
		return p, c
	}
	return constants.UnknownPeriod, c
}

var (
	firstNumber = regexp.MustCompile(`\d+`)
	clockRe     = regexp.MustCompile(`(\d{1,2})\s*[:点]`)
)

// InferPeriod maps the first section number to a period: 1-4 morning,
// 5-8 afternoon, 9-10 evening. Anything else yields "".
func InferPeriod(section string) string {
	m := firstNumber.FindString(section)
	if m == "" {
		return ""
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return ""
	}
	switch {
	case n >= 1 && n <= 4:
		return constants.Morning
	case n >= 5 && n <= 8:
		return constants.Afternoon
	case n >= 9 && n <= 10:
		return constants.Evening
	}
	return ""
}

// NormalizePeriod reduces a time-period cell to 上午/下午/晚上 using keywords,
// then clock times, then the section number.
func NormalizePeriod(timePeriod, section string) string {
	tp := strings.TrimSpace(timePeriod)
	if tp == constants.UnknownPeriod {
		tp = ""
	}
	switch {
	case tp == "":
	case strings.Contains(tp, "上午") || strings.Contains(tp, "早"):
		return constants.Morning
	case strings.Contains(tp, "下午") || strings.Contains(tp, "午"):
		return constants.Afternoon
	case strings.Contains(tp, "晚") || strings.Contains(tp, "夜"):
		return constants.Evening
	}

	if m := clockRe.FindStringSubmatch(tp); m != nil {
		if hour, err := strconv.Atoi(m[1]); err == nil {
			switch {
			case hour >= 6 && hour <= 11:
				return constants.Morning
			case hour >= 12 && hour <= 17:
				return constants.Afternoon
			default:
				return constants.Evening
			}
		}
	}

	if p := InferPeriod(section); p != "" {
		return p
	}
	// Some timetables put the section range in the time column.
	if p := InferPeriod(tp); p != "" {
		return p
	}
	return constants.UnknownPeriod
}

func isPlaceholder(s string) bool {
	s = strings.TrimSpace(s)
	for _, p := range constants.CellPlaceholders {
		if s == p {
			return true
		}
	}
	return false
}
