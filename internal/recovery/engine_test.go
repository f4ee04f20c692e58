package recovery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestEngine() *Engine {
	return NewEngine(Options{Rules: NewNameRules(2, 6, 30, []string{"计算机", "数学"})}, nil)
}

func TestRecoverCell(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name   string
		in     string
		want   CellFields
		wantOK bool
	}{
		{
			name:   "slash separated with class suffix",
			in:     "高等数学/张三/23计算机本",
			want:   CellFields{CourseName: "高等数学", Instructor: "张三", Note: "23计算机本"},
			wantOK: true,
		},
		{
			name: "marker week and location",
			in:   "★高等数学/李四/1-16周/教学楼A101",
			want: CellFields{
				CourseName: "高等数学",
				Instructor: "李四",
				Category:   "理论",
				Week:       "1-16周",
				Location:   "教学楼A101",
			},
			wantOK: true,
		},
		{
			name:   "labeled instructor with fullwidth punctuation",
			in:     "讲师：王五，线性代数",
			want:   CellFields{CourseName: "线性代数", Instructor: "王五"},
			wantOK: true,
		},
		{
			name:   "list weeks and computer marker",
			in:     "◆程序设计/赵六/3,5周",
			want:   CellFields{CourseName: "程序设计", Instructor: "赵六", Category: "上机", Week: "3,5周"},
			wantOK: true,
		},
		{
			name:   "suffix accepts latin names",
			in:     "大学英语(1-2节)/John Smith",
			want:   CellFields{CourseName: "大学英语", Instructor: "John Smith"},
			wantOK: true,
		},
		{
			name:   "unassigned attached to course",
			in:     "高等数学/未安排",
			want:   CellFields{CourseName: "高等数学", Instructor: "未知讲师"},
			wantOK: true,
		},
		{
			name:   "bare course name",
			in:     "数据结构",
			want:   CellFields{CourseName: "数据结构", Instructor: "未知讲师"},
			wantOK: true,
		},
		{
			name:   "course name ending in 场 is not a location",
			in:     "金融市场/张三/1-16周",
			want:   CellFields{CourseName: "金融市场", Instructor: "张三", Week: "1-16周"},
			wantOK: true,
		},
		{
			name:   "space separated name stays with the course",
			in:     "金融市场 张三",
			want:   CellFields{CourseName: "金融市场 张三", Instructor: "未知讲师"},
			wantOK: true,
		},
		{
			name:   "room after course name in first segment",
			in:     "资本市场 实验楼302/李四",
			want:   CellFields{CourseName: "资本市场", Instructor: "李四", Location: "实验楼302"},
			wantOK: true,
		},
		{
			name:   "venue without room number",
			in:     "体育/王五/体育馆",
			want:   CellFields{CourseName: "体育", Instructor: "王五", Location: "体育馆"},
			wantOK: true,
		},
		{
			name:   "earliest marker wins and only it is stripped",
			in:     "◆高等数学★/赵六",
			want:   CellFields{CourseName: "高等数学", Instructor: "赵六", Category: "上机"},
			wantOK: true,
		},
		{
			name:   "marker order in text beats table order",
			in:     "☆物理实验/钱七/★",
			want:   CellFields{CourseName: "物理实验", Instructor: "钱七", Category: "实验"},
			wantOK: true,
		},
		{name: "unassigned alone", in: "未安排"},
		{name: "slash unassigned", in: "/未安排"},
		{name: "empty", in: "   "},
		{name: "header token", in: "星期一"},
		{name: "section only", in: "1-2节"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.RecoverCell(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("RecoverCell(%q) ok = %v, want %v (got %+v)", tt.in, ok, tt.wantOK, got)
			}
			if !ok {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RecoverCell(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestRecoverCellDepartmentSegmentNotInstructor(t *testing.T) {
	e := newTestEngine()
	got, ok := e.RecoverCell("张三/高等数学")
	if !ok {
		t.Fatal("expected a record")
	}
	if got.Instructor == "高等数学" {
		t.Errorf("department-like segment taken as instructor: %+v", got)
	}
}

func TestCustomStrategyChain(t *testing.T) {
	e := NewEngine(Options{Strategies: []InstructorStrategy{LabeledStrategy{}}}, nil)
	got, ok := e.RecoverCell("高等数学/张三")
	if !ok {
		t.Fatal("expected a record")
	}
	if got.Instructor != "未知讲师" {
		t.Errorf("Instructor = %q, want sentinel when only the labeled strategy runs", got.Instructor)
	}
}

func TestHeaderBlacklist(t *testing.T) {
	e := NewEngine(Options{HeaderBlacklist: []string{"备注"}}, nil)
	if _, ok := e.RecoverCell("备注"); ok {
		t.Error("configured header token produced a record")
	}
}

func TestSectionHours(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1-2", 1},
		{"1-4", 2},
		{"3-4节", 1},
		{"1-6", 3},
		{"4-1", 2},
		{"9-11", 1},
		{"5", 1},
		{"第3节", 1},
		{"", 0},
		{"上午", 0},
	}
	for _, tt := range tests {
		if got := SectionHours(tt.in); got != tt.want {
			t.Errorf("SectionHours(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestIsLocation(t *testing.T) {
	tests := []struct {
		tok  string
		want bool
	}{
		{tok: "教学楼A101", want: true},
		{tok: "实验楼", want: true},
		{tok: "302室", want: true},
		{tok: "图书馆", want: true},
		{tok: "报告厅", want: true},
		{tok: "3号馆", want: true},
		{tok: "金融市场", want: false},
		{tok: "证券市场", want: false},
		{tok: "艺术展厅", want: false},
		{tok: "张三", want: false},
	}
	got := make(map[string]bool, len(tests))
	want := make(map[string]bool, len(tests))
	for _, tt := range tests {
		got[tt.tok] = isLocation(tt.tok)
		want[tt.tok] = tt.want
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("isLocation mismatch (-want +got):\n%s", diff)
	}
}
