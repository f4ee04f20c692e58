package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/entity"
)

func testRecords() []entity.CleanedCourseRecord {
	return []entity.CleanedCourseRecord{
		{SourceFile: "a.xlsx", SheetOrPage: "S1", CourseName: "高等数学", Instructor: "张三", Hours: 2, Category: "理论", Week: "1-16周"},
		{SourceFile: "a.xlsx", SheetOrPage: "S1", CourseName: "", Instructor: "李四", Hours: 1},
		{SourceFile: "b.pdf", SheetOrPage: "第1页-星期二", CourseName: "线性代数, 上", Instructor: "未安排", Hours: 3, Category: "星期二-上午"},
	}
}

func testStats() entity.AggregateStatistics {
	return entity.AggregateStatistics{
		TotalCourses: 2, TotalHours: 5, DistinctInstructors: 1, DistinctCategories: 2, DistinctWeekTokens: 2,
		Instructors: []entity.Bucket{{Key: "张三", Count: 1}, {Key: "未安排", Count: 1}},
		Categories:  []entity.Bucket{{Key: "理论", Count: 1}, {Key: "星期二-上午", Count: 1}},
		Weeks:       []entity.Bucket{{Key: "1-16", Count: 1}, {Key: "未知周次", Count: 1}},
	}
}

func newTestService() *Service {
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestWorkbookXLSX(t *testing.T) {
	b, err := newTestService().WorkbookXLSX(context.Background(), testRecords(), testStats())
	if err != nil {
		t.Fatalf("WorkbookXLSX() error = %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	wantSheets := []string{SheetDetail, SheetBasic, SheetInstructors, SheetCategories, SheetWeeks}
	if diff := cmp.Diff(wantSheets, f.GetSheetList()); diff != "" {
		t.Errorf("sheets mismatch (-want +got):\n%s", diff)
	}

	basic, err := f.GetRows(SheetBasic)
	if err != nil {
		t.Fatal(err)
	}
	wantBasic := [][]string{
		{"统计项", "数值"},
		{"总课程数", "2"},
		{"总课时(小时)", "5"},
		{"涉及讲师数", "1"},
		{"涉及分类数", "2"},
		{"涉及周次种类", "2"},
	}
	if diff := cmp.Diff(wantBasic, basic); diff != "" {
		t.Errorf("basic sheet mismatch (-want +got):\n%s", diff)
	}

	detail, err := f.GetRows(SheetDetail)
	if err != nil {
		t.Fatal(err)
	}
	if len(detail) != 4 || detail[1][3] != "高等数学" || detail[1][6] != "2" {
		t.Errorf("detail rows = %v", detail)
	}
}

func TestWorkbookWithoutWeeks(t *testing.T) {
	st := testStats()
	st.Weeks = nil
	b, err := newTestService().WorkbookXLSX(context.Background(), nil, st)
	if err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	for _, s := range f.GetSheetList() {
		if s == SheetWeeks {
			t.Error("week sheet written without week data")
		}
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testRecords()); err != nil {
		t.Fatal(err)
	}
	want := "\ufeff" +
		"source_file,sheet_or_page,course_name,instructor,hours,category,week,location,section,time_period\n" +
		"a.xlsx,S1,高等数学,张三,2,理论,1-16周,,,\n" +
		"b.pdf,第1页-星期二,\"线性代数, 上\",未安排,3,星期二-上午,,,,\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("csv mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteRawCSV(t *testing.T) {
	var buf bytes.Buffer
	raws := []entity.RawCourseRecord{
		{SourceFile: "a.xlsx", CourseName: "高等数学", HoursRaw: 2, Weekday: "星期一"},
		{SourceFile: "a.xlsx", CourseName: "体育"},
	}
	if err := WriteRawCSV(&buf, raws); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(buf.String(), "\ufeff"), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[1] != "a.xlsx,,,高等数学,,2,,,,,,星期一,,," {
		t.Errorf("raw row = %q", lines[1])
	}
	if lines[2] != "a.xlsx,,,体育,,,,,,,,,,," {
		t.Errorf("raw row without hours = %q", lines[2])
	}
}

func TestWriteCSVFileBrotli(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "courses.csv.br")
	if err := WriteCSVFile(path, testRecords()); err != nil {
		t.Fatalf("WriteCSVFile() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	plain, err := io.ReadAll(brotli.NewReader(f))
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	var want bytes.Buffer
	if err := WriteCSV(&want, testRecords()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(want.Bytes(), plain) {
		t.Errorf("decompressed csv differs:\n%s", plain)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("output dir has %d entries, want only the csv", len(entries))
	}
}

func TestWriteFileAtomicFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.csv")
	boom := errors.New("boom")
	err := writeFileAtomic(path, func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("left %d files behind", len(entries))
	}
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	s := newTestService()
	b := Bundle{Cleaned: testRecords(), Stats: testStats(), Raw: []entity.RawCourseRecord{{SourceFile: "a.xlsx", CourseName: "高等数学"}}}

	w, err := s.WriteAll(context.Background(), common.OutputConfig{
		CSVPath:    filepath.Join(dir, "c.csv"),
		RawCSVPath: filepath.Join(dir, "raw.csv"),
	}, b)
	if err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	if w.Workbook != "" {
		t.Errorf("workbook written without a path: %q", w.Workbook)
	}
	for _, p := range []string{w.CSV, w.RawCSV} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing output %s: %v", p, err)
		}
	}

	w, err = s.WriteAll(context.Background(), common.OutputConfig{Path: filepath.Join(dir, "stats.xlsx")}, b)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(w.Workbook); err != nil {
		t.Errorf("workbook not written: %v", err)
	}
}

func TestUploadSFTPRequiresCredentials(t *testing.T) {
	err := UploadSFTP(context.Background(), common.SFTPConfig{Host: "example.org"}, "x", "x")
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}
