package clean

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/joseph-ayodele/course-stats/constants"
	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/entity"
)

func newTestCleaner(t *testing.T, keys ...string) *Cleaner {
	t.Helper()
	c, err := NewCleaner(Options{
		DedupeKeys:          keys,
		DepartmentBlacklist: []string{"计算机", "数学"},
		NameMinRunes:        2,
		NameMaxRunes:        6,
		MaxRawRunes:         30,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewCleaner: %v", err)
	}
	return c
}

func TestCleanRecords(t *testing.T) {
	c := newTestCleaner(t)
	raws := []entity.RawCourseRecord{
		{
			SourceFile: "a.xlsx", SheetOrPage: "Sheet1-星期一", SourceLocator: "a.xlsx|Sheet1|table0|row1|星期一|col2",
			CourseName: "高等数学", InstructorRaw: "张三", HoursRaw: 2, CategoryRaw: "",
			WeekRaw: "1-16周", SectionRaw: "1-2节", TimePeriodRaw: "上午",
			Weekday: "星期一", Period: constants.Morning, SourceOriginalNameText: "高等数学/张三/1-16周",
		},
		{
			SourceFile: "a.xlsx", SheetOrPage: "Sheet1", SourceLocator: "a.xlsx|Sheet1|row3",
			CourseName: "★数据结构", InstructorRaw: "23计算机本", HoursRaw: "48学时", CategoryRaw: "实验课",
			SourceOriginalNameText: "数据结构/李四/23计算机本",
		},
		{SourceFile: "a.xlsx", CourseName: "★", InstructorRaw: "王五"},
	}

	got := c.Clean(context.Background(), raws)
	want := []entity.CleanedCourseRecord{
		{
			CourseName: "高等数学", Instructor: "张三", Hours: 2, Category: "星期一-" + constants.Morning,
			Week: "1-16周", Section: "1-2节", TimePeriod: "上午",
			SourceFile: "a.xlsx", SheetOrPage: "Sheet1-星期一", SourceLocator: "a.xlsx|Sheet1|table0|row1|星期一|col2",
			SourceOriginalNameText: "高等数学/张三/1-16周",
		},
		{
			CourseName: "数据结构", Instructor: "李四", Hours: 48, Category: string(constants.Lab),
			SourceFile: "a.xlsx", SheetOrPage: "Sheet1", SourceLocator: "a.xlsx|Sheet1|row3",
			SourceOriginalNameText: "数据结构/李四/23计算机本",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Clean() mismatch (-want +got):\n%s", diff)
	}
}

func TestCleanDedupeKeepsFirst(t *testing.T) {
	c := newTestCleaner(t)
	raws := []entity.RawCourseRecord{
		{CourseName: "线性代数", InstructorRaw: "赵六", HoursRaw: 2, SourceLocator: "first"},
		{CourseName: "线性代数", InstructorRaw: "赵六", HoursRaw: 4, SourceLocator: "second"},
		{CourseName: "线性代数", InstructorRaw: "钱七", HoursRaw: 4, SourceLocator: "third"},
	}
	got := c.Clean(context.Background(), raws)
	var locators []string
	for _, r := range got {
		locators = append(locators, r.SourceLocator)
	}
	if diff := cmp.Diff([]string{"first", "third"}, locators); diff != "" {
		t.Errorf("dedupe mismatch (-want +got):\n%s", diff)
	}
}

func TestCleanCustomDedupeKeys(t *testing.T) {
	c := newTestCleaner(t, "课程名称", "周次")
	raws := []entity.RawCourseRecord{
		{CourseName: "线性代数", InstructorRaw: "赵六", WeekRaw: "1-8周"},
		{CourseName: "线性代数", InstructorRaw: "钱七", WeekRaw: "1-8周"},
		{CourseName: "线性代数", InstructorRaw: "钱七", WeekRaw: "9-16周"},
	}
	if got := c.Clean(context.Background(), raws); len(got) != 2 {
		t.Errorf("got %d records, want 2", len(got))
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	c := newTestCleaner(t)
	raws := []entity.RawCourseRecord{
		{CourseName: "【选修】音乐鉴赏!", InstructorRaw: "孙八", HoursRaw: "32", CategoryRaw: "theory", WeekRaw: " 3-10周 "},
		{CourseName: "体育(2)", InstructorRaw: "未知讲师", SourceOriginalNameText: "体育(2)/周九", Weekday: "星期三"},
	}
	first := c.Clean(context.Background(), raws)

	again := make([]entity.RawCourseRecord, len(first))
	for i, r := range first {
		again[i] = entity.RawCourseRecord{
			SourceFile: r.SourceFile, SheetOrPage: r.SheetOrPage, SourceLocator: r.SourceLocator,
			CourseName: r.CourseName, InstructorRaw: r.Instructor, HoursRaw: r.Hours,
			CategoryRaw: r.Category, WeekRaw: r.Week, LocationRaw: r.Location, SectionRaw: r.Section,
			TimePeriodRaw: r.TimePeriod, Note: r.Note, SourceOriginalNameText: r.SourceOriginalNameText,
		}
	}
	second := c.Clean(context.Background(), again)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass changed records (-first +second):\n%s", diff)
	}
}

func TestNormalizeDedupeKeys(t *testing.T) {
	tests := []struct {
		name    string
		keys    []string
		want    []string
		wantErr bool
	}{
		{name: "aliases and padding", keys: []string{"课程名称", " week ", "讲师"}, want: []string{"course_name", "week", "instructor"}},
		{name: "empty yields defaults", want: DefaultDedupeKeys},
		{name: "hours by name", keys: []string{"course_name", "hours"}, want: []string{"course_name", "hours"}},
		{name: "hours by alias", keys: []string{"课程名称", "课时"}, want: []string{"course_name", "hours"}},
		{name: "unknown field", keys: []string{"teacher_name"}, wantErr: true},
		{name: "raw-only field", keys: []string{"note"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDedupeKeys(tt.keys)
			if tt.wantErr {
				if !errors.Is(err, common.ErrInvalidInput) {
					t.Fatalf("err = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCleanDedupeByHours(t *testing.T) {
	c := newTestCleaner(t, "课程名称", "课时")
	raws := []entity.RawCourseRecord{
		{CourseName: "线性代数", InstructorRaw: "赵六", HoursRaw: 2, SourceLocator: "first"},
		{CourseName: "线性代数", InstructorRaw: "钱七", HoursRaw: "2学时", SourceLocator: "second"},
		{CourseName: "线性代数", InstructorRaw: "钱七", HoursRaw: 4, SourceLocator: "third"},
	}
	var locators []string
	for _, r := range c.Clean(context.Background(), raws) {
		locators = append(locators, r.SourceLocator)
	}
	if diff := cmp.Diff([]string{"first", "third"}, locators); diff != "" {
		t.Errorf("dedupe by hours mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeCourseName(t *testing.T) {
	tests := map[string]string{
		"高等数学★":      "高等数学",
		"  数据结构（实验） ": "数据结构（实验）",
		"C++程序设计":    "C程序设计",
		"【选修】音乐鉴赏!":  "【选修】音乐鉴赏",
		"Python: 入门": "Python: 入门",
		"★☆":         "",
	}
	for in, want := range tests {
		if got := NormalizeCourseName(in); got != want {
			t.Errorf("NormalizeCourseName(%q) = %q, want %q", in, got, want)
		}
	}
}

type stringer string

func (s stringer) String() string { return string(s) }

func TestParseHours(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int
		wantErr bool
	}{
		{"nil", nil, 0, false},
		{"int", 36, 36, false},
		{"negative int", -3, 0, false},
		{"float truncates", 2.9, 2, false},
		{"negative float", -1.5, 0, false},
		{"largest digit run", "36课时(12实验)", 36, false},
		{"fullwidth digits", "１２学时", 12, false},
		{"decimal text", "1.5", 5, false},
		{"no digits", "无", 0, false},
		{"stringer", stringer("40"), 40, false},
		{"unsupported", struct{}{}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHours(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHours(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHours(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		name string
		raw  entity.RawCourseRecord
		want string
	}{
		{"marker category", entity.RawCourseRecord{CategoryRaw: "上机"}, "上机"},
		{"synonym", entity.RawCourseRecord{CategoryRaw: "Lab"}, "实验"},
		{"unknown kept", entity.RawCourseRecord{CategoryRaw: " 专业选修 "}, "专业选修"},
		{"weekday period", entity.RawCourseRecord{Weekday: "星期二", Period: constants.Afternoon}, "星期二-下午"},
		{"weekday without period", entity.RawCourseRecord{Weekday: "星期五"}, "星期五-" + constants.UnknownPeriod},
		{"nothing", entity.RawCourseRecord{}, string(constants.Unclassified)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryFor(tt.raw); got != tt.want {
				t.Errorf("CategoryFor() = %q, want %q", got, tt.want)
			}
		})
	}
}
