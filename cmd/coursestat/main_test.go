package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/export"
	"github.com/joseph-ayodele/course-stats/internal/pipeline"
	"github.com/joseph-ayodele/course-stats/internal/services/batch"
)

func TestApplyFlags(t *testing.T) {
	cfg := common.DefaultConfig()
	applyFlags(cfg, "out.xlsx", "c.csv.br", "", " 课程名称, 讲师 ,,", "runs.db")

	if cfg.Output.Path != "out.xlsx" || cfg.Output.CSVPath != "c.csv.br" || cfg.Output.RawCSVPath != "" {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Database.DSN != "runs.db" {
		t.Errorf("dsn = %q", cfg.Database.DSN)
	}
	if diff := cmp.Diff([]string{"课程名称", "讲师"}, cfg.DedupeKeys); diff != "" {
		t.Errorf("dedupe keys (-want +got):\n%s", diff)
	}
}

func TestApplyFlagsKeepsConfig(t *testing.T) {
	cfg := common.DefaultConfig()
	cfg.Output.Path = "from-config.xlsx"
	applyFlags(cfg, "", "", "", "", "")
	if cfg.Output.Path != "from-config.xlsx" {
		t.Errorf("path = %q", cfg.Output.Path)
	}
	if diff := cmp.Diff(common.DefaultConfig().DedupeKeys, cfg.DedupeKeys); diff != "" {
		t.Errorf("dedupe keys changed:\n%s", diff)
	}
}

func TestPrintSummary(t *testing.T) {
	rep := &batch.Report{
		Result: &pipeline.Result{
			RunID:    uuid.Nil,
			Summary:  pipeline.Summary{FilesScanned: 2, FilesFailed: 1, UnitsProcessed: 3, CleanedRecords: 5},
			Failures: []pipeline.FileFailure{{Path: "bad.pdf", Error: "source read failed"}},
		},
		Written: export.Written{Workbook: "stats.xlsx"},
	}
	var buf bytes.Buffer
	printSummary(&buf, rep)
	out := buf.String()
	for _, want := range []string{"PARTIAL", "2 scanned, 1 failed", "5 cleaned", "bad.pdf", "wrote:   stats.xlsx"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
