package extract

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/joseph-ayodele/course-stats/internal/common"
)

func TestHeaderDetectorDetect(t *testing.T) {
	d := NewHeaderDetector(common.DefaultConfig().FieldMapping, 2)

	tests := []struct {
		name     string
		rows     [][]string
		wantRow  int
		wantCols map[string]int
	}{
		{
			name:     "header on first row",
			rows:     [][]string{{"课程名称", "讲师", "课时"}, {"高等数学", "张三", "36"}},
			wantRow:  0,
			wantCols: map[string]int{"course_name": 0, "instructor": 1, "hours": 2},
		},
		{
			name: "title rows before header",
			rows: [][]string{
				{"2024春季课程表"},
				{""},
				{"序号", "课程", "授课人", "上课周"},
				{"1", "线性代数", "李四", "1-16周"},
			},
			wantRow:  2,
			wantCols: map[string]int{"course_name": 1, "instructor": 2, "week": 3},
		},
		{
			name:     "exact match wins over substring",
			rows:     [][]string{{"课程性质", "课程", "教师"}},
			wantRow:  0,
			wantCols: map[string]int{"course_name": 1, "category": 0, "instructor": 2},
		},
		{
			name:     "substring match with fullwidth spacing",
			rows:     [][]string{{"主讲教师（姓名）", "课程名称　"}},
			wantRow:  0,
			wantCols: map[string]int{"course_name": 1, "instructor": 0},
		},
		{
			name:    "weekday grid is not columnar",
			rows:    [][]string{{"时间段", "节次", "星期一", "星期二"}, {"上午", "1-2节", "高等数学/张三", ""}},
			wantRow: -1,
		},
		{
			name:    "below threshold",
			rows:    [][]string{{"课程", "备注"}, {"高等数学", ""}},
			wantRow: -1,
		},
		{
			name:    "empty",
			rows:    nil,
			wantRow: -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, cols := d.Detect(tt.rows)
			if row != tt.wantRow {
				t.Fatalf("Detect() row = %d, want %d", row, tt.wantRow)
			}
			if diff := cmp.Diff(tt.wantCols, cols); diff != "" {
				t.Errorf("Detect() columns mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHeaderDetectorCustomTargets(t *testing.T) {
	d := NewHeaderDetector(map[string][]string{
		"course_name": {"Course"},
		"room_code":   {"Room"},
	}, 2)
	row, cols := d.Detect([][]string{{"ROOM", "course"}})
	if row != 0 {
		t.Fatalf("row = %d, want 0", row)
	}
	if diff := cmp.Diff(map[string]int{"course_name": 1, "room_code": 0}, cols); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
}

func TestGridStart(t *testing.T) {
	rows := [][]string{{"计算机学院课表"}, {"", "", "星期一", "星期二"}, {"上午", "1-2节", "高等数学", ""}}
	if got := GridStart(rows); got != 1 {
		t.Errorf("GridStart() = %d, want 1", got)
	}
	if got := GridStart([][]string{{"a"}}); got != 0 {
		t.Errorf("GridStart() without weekdays = %d, want 0", got)
	}
}
