// Package pipeline runs extraction, recovery, cleaning and aggregation over a
// set of source files.
package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/course-stats/constants"
	"github.com/joseph-ayodele/course-stats/internal/clean"
	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/entity"
	"github.com/joseph-ayodele/course-stats/internal/ingest"
	"github.com/joseph-ayodele/course-stats/internal/stats"
)

// Recorder persists run bookkeeping. Implementations must tolerate being
// called from a single goroutine per run.
type Recorder interface {
	Start(ctx context.Context, run entity.Run) error
	Finish(ctx context.Context, run entity.Run, records []entity.CleanedCourseRecord) error
	Fail(ctx context.Context, runID uuid.UUID, message string) error
}

// Summary counts what a run processed.
type Summary struct {
	FilesScanned   int `json:"files_scanned"`
	FilesFailed    int `json:"files_failed"`
	UnitsProcessed int `json:"units_processed"`
	UnitsSkipped   int `json:"units_skipped"`
	RawRecords     int `json:"raw_records"`
	InvalidRecords int `json:"invalid_records"`
	CleanedRecords int `json:"cleaned_records"`
	TotalHours     int `json:"total_hours"`
}

// Status derives the run status from the counters.
func (s Summary) Status() constants.RunStatus {
	switch {
	case s.FilesScanned > 0 && s.FilesFailed == s.FilesScanned:
		return constants.RunStatusFailed
	case s.FilesFailed > 0 || s.UnitsSkipped > 0:
		return constants.RunStatusPartial
	}
	return constants.RunStatusSucceeded
}

// FileFailure records a file that produced no records because it failed.
type FileFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// Result is the full output of a run.
type Result struct {
	RunID    uuid.UUID
	Raw      []entity.RawCourseRecord
	Cleaned  []entity.CleanedCourseRecord
	Stats    entity.AggregateStatistics
	Summary  Summary
	Failures []FileFailure
	Warnings []string
}

// Processor coordinates the extract stage, the cleaner and aggregation.
type Processor struct {
	logger   *slog.Logger
	extract  *ExtractStage
	cleaner  *clean.Cleaner
	recorder Recorder
}

type Option func(*Processor)

// WithRecorder persists every run through r.
func WithRecorder(r Recorder) Option {
	return func(p *Processor) {
		p.recorder = r
	}
}

func NewProcessor(logger *slog.Logger, extract *ExtractStage, cleaner *clean.Cleaner, opts ...Option) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Processor{logger: logger, extract: extract, cleaner: cleaner}
	for _, o := range opts {
		o(p)
	}
	return p
}

// RunDir scans root and processes every readable file found.
func (p *Processor) RunDir(ctx context.Context, root string, scan ingest.ScanOptions) (*Result, error) {
	files, dirStats, err := ingest.ScanDirectory(ctx, root, scan)
	if err != nil {
		return nil, err
	}
	p.logger.Info("pipeline.scan.done",
		"root", root,
		"scanned", dirStats.Scanned,
		"matched", dirStats.Matched,
		"unsupported", dirStats.Unsupported,
		"deduplicated", dirStats.Deduplicated,
		"failed", dirStats.Failed,
	)

	res, err := p.run(ctx, root, ingest.Readable(files))
	if res != nil {
		for _, f := range files {
			if f.Err != "" {
				res.Warnings = append(res.Warnings, f.Path+": "+f.Err)
			}
		}
	}
	return res, err
}

// Run processes paths in order. Per-file failures are contained and reported
// in the result; only cancellation or a recorder failure returns an error.
func (p *Processor) Run(ctx context.Context, paths []string) (*Result, error) {
	return p.run(ctx, "", paths)
}

func (p *Processor) run(ctx context.Context, root string, paths []string) (*Result, error) {
	runID := uuid.New()
	ctx = common.WithRunID(ctx, runID.String())
	logger := common.LoggerFromContext(ctx, p.logger)
	start := time.Now()

	run := entity.Run{
		ID:        runID,
		InputRoot: root,
		StartedAt: start.UTC(),
		Status:    string(constants.RunStatusRunning),
	}
	if p.recorder != nil {
		if err := p.recorder.Start(ctx, run); err != nil {
			return nil, common.WrapError(err, "record run start")
		}
	}

	res := &Result{RunID: runID}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			p.fail(ctx, runID, err)
			return res, err
		}
		res.Summary.FilesScanned++

		out, err := p.extract.Run(ctx, path)
		res.Summary.UnitsProcessed += out.Units
		res.Summary.UnitsSkipped += out.Skipped
		res.Warnings = append(res.Warnings, out.Warnings...)
		if err != nil {
			res.Summary.FilesFailed++
			res.Failures = append(res.Failures, FileFailure{Path: path, Error: err.Error()})
			logger.Warn("pipeline.file.failed", "file", path, "err", err)
			continue
		}
		res.Summary.InvalidRecords += out.Invalid
		res.Raw = append(res.Raw, out.Raw...)
		logger.Info("pipeline.file.ok",
			"file", path,
			"method", out.Method,
			"units", out.Units,
			"skipped", out.Skipped,
			"tables", out.Tables,
			"records", len(out.Raw),
		)
	}

	res.Cleaned = p.cleaner.Clean(ctx, res.Raw)
	res.Stats = stats.Aggregate(res.Cleaned)
	res.Summary.RawRecords = len(res.Raw)
	res.Summary.CleanedRecords = len(res.Cleaned)
	res.Summary.TotalHours = res.Stats.TotalHours

	logger.Info("pipeline.run.done",
		"files", res.Summary.FilesScanned,
		"files_failed", res.Summary.FilesFailed,
		"units", res.Summary.UnitsProcessed,
		"units_skipped", res.Summary.UnitsSkipped,
		"raw", res.Summary.RawRecords,
		"cleaned", res.Summary.CleanedRecords,
		"total_hours", res.Summary.TotalHours,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if p.recorder != nil {
		if err := p.recorder.Finish(ctx, RunRecord(run, res), res.Cleaned); err != nil {
			return res, common.WrapError(err, "record run finish")
		}
	}
	return res, nil
}

func (p *Processor) fail(ctx context.Context, runID uuid.UUID, cause error) {
	if p.recorder == nil {
		return
	}
	// The run context may already be cancelled.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := p.recorder.Fail(ctx, runID, cause.Error()); err != nil {
		p.logger.Error("pipeline.run.record_fail_failed", "run_id", runID, "err", err)
	}
}

// RunRecord fills the bookkeeping fields of run from a finished result.
func RunRecord(run entity.Run, res *Result) entity.Run {
	now := time.Now().UTC()
	run.FinishedAt = &now
	run.Status = string(res.Summary.Status())
	run.FilesScanned = res.Summary.FilesScanned
	run.FilesFailed = res.Summary.FilesFailed
	run.UnitsProcessed = res.Summary.UnitsProcessed
	run.UnitsSkipped = res.Summary.UnitsSkipped
	run.RawRecords = res.Summary.RawRecords
	run.CleanedRecords = res.Summary.CleanedRecords
	run.TotalHours = res.Summary.TotalHours
	if b, err := json.Marshal(res.Stats); err == nil {
		run.Stats = b
	}
	return run
}
