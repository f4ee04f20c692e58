package recovery

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/joseph-ayodele/course-stats/internal/entity"
)

func TestProcessTableGrid(t *testing.T) {
	e := newTestEngine()
	tbl := entity.Table{
		SourceFile: "t.pdf",
		Unit:       "第1页",
		Page:       1,
		Index:      1,
		HeaderRow:  -1,
		Rows: [][]string{
			{"时间段", "节次", "星期一", "星期二", "星期三"},
			{"上午", "1-2", "高等数学/张三/1-16周", "", ""},
			{"", "3-4", "", "★大学物理/李四/教学楼A101", "未安排"},
			{"星期一", "星期二", "节次", "时间段"},
			{"晚上", "9-10", "", "", "线性代数/王五"},
			{"x"},
		},
	}

	want := []entity.RawCourseRecord{
		{
			SourceFile:             "t.pdf",
			SheetOrPage:            "第1页-星期一",
			SourceLocator:          "t.pdf|第1页|table1|row1|星期一|col2",
			CourseName:             "高等数学",
			InstructorRaw:          "张三",
			HoursRaw:               1,
			WeekRaw:                "1-16周",
			SectionRaw:             "1-2",
			TimePeriodRaw:          "上午",
			Weekday:                "星期一",
			Period:                 "上午",
			SourceOriginalNameText: "高等数学/张三/1-16周",
		},
		{
			SourceFile:             "t.pdf",
			SheetOrPage:            "第1页-星期二",
			SourceLocator:          "t.pdf|第1页|table1|row2|星期二|col3",
			CourseName:             "大学物理",
			InstructorRaw:          "李四",
			HoursRaw:               1,
			CategoryRaw:            "理论",
			LocationRaw:            "教学楼A101",
			SectionRaw:             "3-4",
			TimePeriodRaw:          "上午",
			Weekday:                "星期二",
			Period:                 "上午",
			SourceOriginalNameText: "★大学物理/李四/教学楼A101",
		},
		{
			SourceFile:             "t.pdf",
			SheetOrPage:            "第1页-星期三",
			SourceLocator:          "t.pdf|第1页|table1|row4|星期三|col4",
			CourseName:             "线性代数",
			InstructorRaw:          "王五",
			HoursRaw:               1,
			SectionRaw:             "9-10",
			TimePeriodRaw:          "晚上",
			Weekday:                "星期三",
			Period:                 "晚上",
			SourceOriginalNameText: "线性代数/王五",
		},
	}

	got := e.ProcessTable(tbl)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ProcessTable grid mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessTableCarryResetsPerTable(t *testing.T) {
	e := newTestEngine()
	first := entity.Table{SourceFile: "a.pdf", Unit: "第1页", Index: 1, HeaderRow: -1, Rows: [][]string{
		{"时间段", "节次", "星期一"},
		{"下午", "", "体育/张三"},
	}}
	second := entity.Table{SourceFile: "a.pdf", Unit: "第1页", Index: 2, HeaderRow: -1, Rows: [][]string{
		{"时间段", "节次", "星期一"},
		{"", "", "美术/李四"},
	}}

	_ = e.ProcessTable(first)
	got := e.ProcessTable(second)
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].TimePeriodRaw != "未知时段" {
		t.Errorf("TimePeriodRaw = %q, carry leaked across tables", got[0].TimePeriodRaw)
	}
}

func TestProcessTableShortRowUpdatesCarry(t *testing.T) {
	e := newTestEngine()
	tests := []struct {
		name string
		rows [][]string
		want []string
	}{
		{
			name: "period only row",
			rows: [][]string{
				{"时间段", "节次", "星期一"},
				{"上午", "1-2"},
				{"", "3-4", "高等数学/张三"},
				{"下午"},
				{"", "5-6", "线性代数/李四"},
			},
			want: []string{"上午", "下午"},
		},
		{
			name: "empty short row keeps carry",
			rows: [][]string{
				{"时间段", "节次", "星期一"},
				{"晚上", "9-10", "大学英语/王五"},
				{""},
				{"", "11-12", "体育/赵六"},
			},
			want: []string{"晚上", "晚上"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := entity.Table{SourceFile: "s.xlsx", Unit: "Sheet1", Index: 1, HeaderRow: -1, Rows: tt.rows}
			var got []string
			for _, r := range e.ProcessTable(tbl) {
				got = append(got, r.TimePeriodRaw)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("time periods (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProcessTableColumnar(t *testing.T) {
	e := newTestEngine()
	tbl := entity.Table{
		SourceFile: "s.xlsx",
		Unit:       "Sheet1",
		Index:      1,
		HeaderRow:  0,
		Columns:    map[string]int{"course_name": 0, "instructor": 1, "hours": 2, "category": 3, "time_period": 4},
		Rows: [][]string{
			{"课程名称", "讲师", "课时", "分类", "时间段"},
			{"高等数学", "张三", "36课时(12实验)", "理论", "上午"},
			{"大学物理/李四", "", "32", "", ""},
			{"", "王五", "10", "实验", ""},
			{"课程名称", "讲师", "课时", "分类", "时间段"},
		},
	}

	want := []entity.RawCourseRecord{
		{
			SourceFile:             "s.xlsx",
			SheetOrPage:            "Sheet1",
			SourceLocator:          "s.xlsx|Sheet1|row2",
			CourseName:             "高等数学",
			InstructorRaw:          "张三",
			HoursRaw:               "36课时(12实验)",
			CategoryRaw:            "理论",
			TimePeriodRaw:          "上午",
			Period:                 "上午",
			SourceOriginalNameText: "高等数学",
		},
		{
			SourceFile:             "s.xlsx",
			SheetOrPage:            "Sheet1",
			SourceLocator:          "s.xlsx|Sheet1|row3",
			CourseName:             "大学物理",
			InstructorRaw:          "李四",
			HoursRaw:               "32",
			TimePeriodRaw:          "上午",
			Period:                 "上午",
			SourceOriginalNameText: "大学物理/李四",
		},
	}

	got := e.ProcessTable(tbl)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ProcessTable columnar mismatch (-want +got):\n%s", diff)
	}
}

func TestHeaderRowNeverEmitted(t *testing.T) {
	e := newTestEngine()
	pos := GridRow{Table: entity.Table{SourceFile: "h.pdf", Unit: "第1页", Index: 1}, Index: 3, Weekdays: WeekdayColumns(nil)}
	recs, _ := e.ProcessGridRow(pos, []string{"星期一", "星期二", "节次", "时间段"}, Carry{})
	if len(recs) != 0 {
		t.Errorf("header row produced records: %+v", recs)
	}
}

func TestWeekdayColumnsFromHeader(t *testing.T) {
	got := WeekdayColumns([]string{"时间", "节次", "周三", "周四"})
	if got[2] != "星期三" || got[3] != "星期四" {
		t.Errorf("header weekdays not honored: %v", got)
	}
	if got[4] != "星期三" {
		t.Errorf("positional fallback for col 4 = %q, want 星期三", got[4])
	}
}
