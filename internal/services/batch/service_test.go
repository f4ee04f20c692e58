package batch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/course-stats/internal/clean"
	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/export"
	"github.com/joseph-ayodele/course-stats/internal/extract"
	"github.com/joseph-ayodele/course-stats/internal/pipeline"
	"github.com/joseph-ayodele/course-stats/internal/recovery"
)

func writeTimetable(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]any{
		{"时间段", "节次", "星期一", "星期二"},
		{"上午", "1-2节", "高等数学/张三/1-16周", "线性代数/李四"},
		{"下午", "5-6节", "", "大学英语/王五/1-8周"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}
}

func newService(t *testing.T, out common.OutputConfig) *Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := common.DefaultConfig()
	cleaner, err := clean.NewCleaner(clean.OptionsFromConfig(cfg), logger)
	if err != nil {
		t.Fatal(err)
	}
	stage := pipeline.NewExtractStage(
		extract.NewExtractor(extract.ConfigFromApp(cfg), logger),
		recovery.NewEngine(recovery.OptionsFromConfig(cfg), logger),
		logger,
	)
	return NewService(pipeline.NewProcessor(logger, stage, cleaner), export.NewService(logger), out, logger)
}

func TestServiceRun(t *testing.T) {
	in := t.TempDir()
	writeTimetable(t, filepath.Join(in, "课表.xlsx"))
	outDir := t.TempDir()
	out := common.OutputConfig{
		Path:    filepath.Join(outDir, "stats.xlsx"),
		CSVPath: filepath.Join(outDir, "courses.csv"),
	}
	s := newService(t, out)

	if _, ok := s.Last(); ok {
		t.Fatal("Last before any run should be empty")
	}

	rep, err := s.Run(context.Background(), Request{Root: in, Upload: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := rep.Result.Summary.CleanedRecords; got != 3 {
		t.Errorf("cleaned = %d, want 3", got)
	}
	if rep.Uploaded {
		t.Error("upload without sftp config should be skipped")
	}
	for _, p := range []string{out.Path, out.CSVPath} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s: %v", p, err)
		}
	}
	last, ok := s.Last()
	if !ok || last != rep {
		t.Errorf("Last = %v, %v", last, ok)
	}
}

func TestServiceRunRequiresInput(t *testing.T) {
	s := newService(t, common.OutputConfig{})
	_, err := s.Run(context.Background(), Request{Root: "  "})
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestServiceRunNoRecords(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string)
	}{
		{name: "empty directory", setup: func(*testing.T, string) {}},
		{name: "unsupported files only", setup: func(t *testing.T, dir string) {
			if err := os.WriteFile(filepath.Join(dir, "说明.txt"), []byte("课表见附件"), 0o644); err != nil {
				t.Fatal(err)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := t.TempDir()
			tt.setup(t, in)
			out := common.OutputConfig{Path: filepath.Join(t.TempDir(), "stats.xlsx")}
			s := newService(t, out)

			rep, err := s.Run(context.Background(), Request{Root: in})
			if !errors.Is(err, common.ErrNoRecords) {
				t.Fatalf("err = %v, want ErrNoRecords", err)
			}
			if rep == nil || rep.Result == nil || rep.Result.Summary.CleanedRecords != 0 {
				t.Fatalf("report = %+v", rep)
			}
			if _, err := os.Stat(out.Path); !errors.Is(err, os.ErrNotExist) {
				t.Errorf("workbook written for an empty run: %v", err)
			}
			if _, ok := s.Last(); ok {
				t.Error("an empty run replaced the last report")
			}
		})
	}
}
