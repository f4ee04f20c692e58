package extract

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tsawler/tabula/model"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/entity"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeWorkbook(t *testing.T, sheets map[string][][]string, order ...string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
		for r, row := range sheets[name] {
			vals := make([]interface{}, len(row))
			for c, v := range row {
				vals[c] = v
			}
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetSheetRow(name, cell, &vals); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestSpreadsheetExtractor(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		"课表": {
			{"2024春季课表"},
			{"时间段", "节次", "星期一", "星期二"},
			{"上午", "1-2节", "高等数学/张三", ""},
		},
		"清单": {
			{"课程名称", "讲师", "课时"},
			{"线性代数", "李四", "36"},
		},
		"空白": {},
	}, "课表", "清单", "空白")

	x := NewSpreadsheetExtractor(ConfigFromApp(common.DefaultConfig()), discardLogger())
	res, err := x.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.Units != 3 || res.Skipped != 0 {
		t.Errorf("units = %d skipped = %d, want 3 and 0", res.Units, res.Skipped)
	}

	want := []entity.Table{
		{
			SourceFile: "schedule.xlsx", Unit: "课表", Index: 1, HeaderRow: -1,
			Rows: [][]string{
				{"时间段", "节次", "星期一", "星期二"},
				{"上午", "1-2节", "高等数学/张三"},
			},
		},
		{
			SourceFile: "schedule.xlsx", Unit: "清单", Index: 1, HeaderRow: 0,
			Columns: map[string]int{"course_name": 0, "instructor": 1, "hours": 2},
			Rows: [][]string{
				{"课程名称", "讲师", "课时"},
				{"线性代数", "李四", "36"},
			},
		},
	}
	if diff := cmp.Diff(want, res.Tables); diff != "" {
		t.Errorf("tables mismatch (-want +got):\n%s", diff)
	}
}

func TestSpreadsheetExtractorOpenFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(path, []byte("not a zip"), 0o600); err != nil {
		t.Fatal(err)
	}
	x := NewSpreadsheetExtractor(ConfigFromApp(common.DefaultConfig()), discardLogger())
	_, err := x.Extract(context.Background(), path)
	if !errors.Is(err, common.ErrSourceRead) {
		t.Errorf("Extract() error = %v, want ErrSourceRead", err)
	}
}

func TestExtractorRejectsUnsupported(t *testing.T) {
	x := NewExtractor(ConfigFromApp(common.DefaultConfig()), discardLogger())
	for _, name := range []string{"old.xls", "notes.txt"} {
		_, err := x.Extract(context.Background(), filepath.Join(t.TempDir(), name))
		if !errors.Is(err, common.ErrUnsupported) {
			t.Errorf("%s: error = %v, want ErrUnsupported", name, err)
		}
	}
}

func TestPDFExtractorMissingFile(t *testing.T) {
	x := NewPDFExtractor(discardLogger())
	_, err := x.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	if !errors.Is(err, common.ErrSourceRead) {
		t.Errorf("Extract() error = %v, want ErrSourceRead", err)
	}
}

func TestTableRowsDropsEmptyRows(t *testing.T) {
	tbl := &model.Table{Rows: [][]model.Cell{
		{{Text: " 节次 "}, {Text: "星期一"}},
		{{Text: ""}, {Text: "  "}},
		{{Text: "1-2节"}, {Text: "高等数学"}},
	}}
	got := tableRows(tbl)
	want := [][]string{{"节次", "星期一"}, {"1-2节", "高等数学"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tableRows() mismatch (-want +got):\n%s", diff)
	}
}
