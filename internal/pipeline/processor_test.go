package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/course-stats/constants"
	"github.com/joseph-ayodele/course-stats/internal/clean"
	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/entity"
	"github.com/joseph-ayodele/course-stats/internal/extract"
	"github.com/joseph-ayodele/course-stats/internal/recovery"
)

type fakeExtractor map[string]func() (extract.ExtractionResult, error)

func (f fakeExtractor) Extract(_ context.Context, path string) (extract.ExtractionResult, error) {
	fn, ok := f[path]
	if !ok {
		return extract.ExtractionResult{}, common.ErrUnsupported
	}
	return fn()
}

type fakeRecorder struct {
	started  []entity.Run
	finished []entity.Run
	records  int
	failed   []uuid.UUID
}

func (r *fakeRecorder) Start(_ context.Context, run entity.Run) error {
	r.started = append(r.started, run)
	return nil
}

func (r *fakeRecorder) Finish(_ context.Context, run entity.Run, recs []entity.CleanedCourseRecord) error {
	r.finished = append(r.finished, run)
	r.records += len(recs)
	return nil
}

func (r *fakeRecorder) Fail(_ context.Context, id uuid.UUID, _ string) error {
	r.failed = append(r.failed, id)
	return nil
}

func gridTable(file string) entity.Table {
	return entity.Table{
		SourceFile: file,
		Unit:       "Sheet1",
		Index:      1,
		HeaderRow:  -1,
		Rows: [][]string{
			{"时间段", "节次", "星期一", "星期二"},
			{"上午", "1-2节", "高等数学/张三/1-16周", "线性代数/李四"},
			{"", "3-4节", "高等数学/张三/1-16周", ""},
		},
	}
}

func newTestProcessor(t *testing.T, x extract.TableExtractor, opts ...Option) *Processor {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := recovery.NewEngine(recovery.Options{}, logger)
	cleaner, err := clean.NewCleaner(clean.Options{}, logger)
	if err != nil {
		t.Fatal(err)
	}
	return NewProcessor(logger, NewExtractStage(x, engine, logger), cleaner, opts...)
}

func TestProcessorRun(t *testing.T) {
	x := fakeExtractor{
		"good.xlsx": func() (extract.ExtractionResult, error) {
			return extract.ExtractionResult{
				Tables: []entity.Table{gridTable("good.xlsx")},
				Units:  2, Skipped: 1, Warnings: []string{"sheet 2: broken"},
			}, nil
		},
		"bad.pdf": func() (extract.ExtractionResult, error) {
			return extract.ExtractionResult{}, common.ErrSourceRead
		},
		"panic.pdf": func() (extract.ExtractionResult, error) {
			panic("reader exploded")
		},
	}
	rec := &fakeRecorder{}
	p := newTestProcessor(t, x, WithRecorder(rec))

	res, err := p.Run(context.Background(), []string{"bad.pdf", "good.xlsx", "panic.pdf"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantSummary := Summary{
		FilesScanned:   3,
		FilesFailed:    2,
		UnitsProcessed: 2,
		UnitsSkipped:   1,
		RawRecords:     3,
		CleanedRecords: 2,
		TotalHours:     2,
	}
	if diff := cmp.Diff(wantSummary, res.Summary); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
	if got := res.Summary.Status(); got != constants.RunStatusPartial {
		t.Errorf("status = %s, want PARTIAL", got)
	}

	var failed []string
	for _, f := range res.Failures {
		failed = append(failed, f.Path)
	}
	if diff := cmp.Diff([]string{"bad.pdf", "panic.pdf"}, failed); diff != "" {
		t.Errorf("failures mismatch (-want +got):\n%s", diff)
	}
	if !errors.Is(errorsFromFailure(t, p, "panic.pdf"), common.ErrSourceRead) {
		t.Error("panic was not reported as a source read error")
	}

	if len(rec.started) != 1 || len(rec.finished) != 1 || rec.records != 2 {
		t.Fatalf("recorder calls: started=%d finished=%d records=%d", len(rec.started), len(rec.finished), rec.records)
	}
	fin := rec.finished[0]
	if fin.ID != res.RunID || fin.Status != string(constants.RunStatusPartial) || fin.FinishedAt == nil {
		t.Errorf("finished run = %+v", fin)
	}
}

func errorsFromFailure(t *testing.T, p *Processor, path string) error {
	t.Helper()
	_, err := p.extract.Run(context.Background(), path)
	return err
}

func TestProcessorRunCancelled(t *testing.T) {
	rec := &fakeRecorder{}
	p := newTestProcessor(t, fakeExtractor{}, WithRecorder(rec))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Run(ctx, []string{"a.xlsx"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if len(rec.failed) != 1 {
		t.Errorf("Fail called %d times, want 1", len(rec.failed))
	}
}

func TestSummaryStatus(t *testing.T) {
	tests := []struct {
		s    Summary
		want constants.RunStatus
	}{
		{Summary{}, constants.RunStatusSucceeded},
		{Summary{FilesScanned: 2}, constants.RunStatusSucceeded},
		{Summary{FilesScanned: 2, UnitsSkipped: 1}, constants.RunStatusPartial},
		{Summary{FilesScanned: 2, FilesFailed: 1}, constants.RunStatusPartial},
		{Summary{FilesScanned: 2, FilesFailed: 2}, constants.RunStatusFailed},
	}
	for _, tt := range tests {
		if got := tt.s.Status(); got != tt.want {
			t.Errorf("%+v.Status() = %s, want %s", tt.s, got, tt.want)
		}
	}
}

func TestValidateRaw(t *testing.T) {
	ok := entity.RawCourseRecord{SourceFile: "a.xlsx", SheetOrPage: "S", SourceLocator: "a|S|row2", CourseName: "高数"}
	if msg := validateRaw(ok); msg != "" {
		t.Errorf("valid record rejected: %s", msg)
	}
	if msg := validateRaw(entity.RawCourseRecord{CourseName: "高数"}); msg == "" {
		t.Error("record without provenance accepted")
	}
}
