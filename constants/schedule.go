package constants

// Placeholder values substituted when a field cannot be recovered.
const (
	UnknownInstructor = "未知讲师"
	Unassigned        = "未安排"
	UnknownWeek       = "未知周次"
	UnknownPeriod     = "未知时段"
)

// Normalized time-of-day labels.
const (
	Morning   = "上午"
	Afternoon = "下午"
	Evening   = "晚上"
)

// Weekdays in timetable column order (columns 2..8 of a grid).
var Weekdays = []string{"星期一", "星期二", "星期三", "星期四", "星期五", "星期六", "星期日"}

// weekdayAliases maps short or alternate headers to the canonical weekday.
var weekdayAliases = map[string]string{
	"周一": "星期一", "周二": "星期二", "周三": "星期三", "周四": "星期四",
	"周五": "星期五", "周六": "星期六", "周日": "星期日", "周天": "星期日",
	"星期天": "星期日",
	"mon": "星期一", "tue": "星期二", "wed": "星期三", "thu": "星期四",
	"fri": "星期五", "sat": "星期六", "sun": "星期日",
}

// CanonicalWeekday returns the canonical weekday name for a header cell.
func CanonicalWeekday(s string) (string, bool) {
	for _, d := range Weekdays {
		if s == d {
			return d, true
		}
	}
	if d, ok := weekdayAliases[s]; ok {
		return d, true
	}
	return "", false
}

// HeaderTokens are cell values that only ever appear in table headers.
var HeaderTokens = []string{
	"星期一", "星期二", "星期三", "星期四", "星期五", "星期六", "星期日", "星期天",
	"周一", "周二", "周三", "周四", "周五", "周六", "周日",
	"节次", "时间段", "时间", "节", "课程", "课程名称", "上课时间",
}

// CellPlaceholders are cell values that mean "nothing scheduled".
var CellPlaceholders = []string{"", "None", "/未安排", "未安排", "unassigned"}
