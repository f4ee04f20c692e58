// Package batch runs one directory through the pipeline and writes its
// exports. The CLI and the daemon share it.
package batch

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/export"
	"github.com/joseph-ayodele/course-stats/internal/ingest"
	"github.com/joseph-ayodele/course-stats/internal/pipeline"
)

// Request describes one batch.
type Request struct {
	Root string
	// Paths, when set, are processed instead of scanning Root.
	Paths  []string
	Upload bool
}

// Report is the outcome of a finished batch.
type Report struct {
	Root       string
	Result     *pipeline.Result
	Written    export.Written
	Uploaded   bool
	FinishedAt time.Time
}

// Service handles batch business logic.
type Service struct {
	proc     *pipeline.Processor
	exporter *export.Service
	output   common.OutputConfig
	scan     ingest.ScanOptions
	logger   *slog.Logger

	// running admits one batch at a time across the CLI, queue and RPCs.
	running sync.Mutex

	mu   sync.RWMutex
	last *Report
}

// NewService creates a new batch service.
func NewService(proc *pipeline.Processor, exporter *export.Service, output common.OutputConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		proc:     proc,
		exporter: exporter,
		output:   output,
		scan:     ingest.ScanOptions{SkipHidden: true, Dedupe: true},
		logger:   logger,
	}
}

// Run processes the request, exports the result and optionally uploads it.
// Exports happen only after the whole cleaned set is assembled. A call made
// while another batch is running fails with common.ErrBusy; a run with no
// cleaned records returns its report and common.ErrNoRecords.
func (s *Service) Run(ctx context.Context, req Request) (*Report, error) {
	root := strings.TrimSpace(req.Root)
	if root == "" && len(req.Paths) == 0 {
		return nil, common.NewAppError("MISSING_INPUT", "root or paths is required", common.ErrInvalidInput)
	}
	if !s.running.TryLock() {
		return nil, common.ErrBusy
	}
	defer s.running.Unlock()

	var (
		res *pipeline.Result
		err error
	)
	if len(req.Paths) > 0 {
		res, err = s.proc.Run(ctx, req.Paths)
	} else {
		res, err = s.proc.RunDir(ctx, root, s.scan)
	}
	if err != nil {
		return nil, err
	}

	logger := common.LoggerFromContext(common.WithRunID(ctx, res.RunID.String()), s.logger)
	rep := &Report{Root: root, Result: res}
	if res.Summary.CleanedRecords == 0 {
		// Keep the previous exports rather than replace them with empty ones.
		logger.Warn("batch.export.skipped", "root", root, "files", res.Summary.FilesScanned, "raw", res.Summary.RawRecords)
		return rep, common.NewAppError("NO_RECORDS", "no course records recovered", common.ErrNoRecords)
	}
	rep.Written, err = s.exporter.WriteAll(ctx, s.output, export.Bundle{
		Raw:     res.Raw,
		Cleaned: res.Cleaned,
		Stats:   res.Stats,
	})
	if err != nil {
		return rep, err
	}

	if req.Upload {
		if !s.output.SFTP.Enabled() {
			logger.Warn("batch.upload.skipped", "reason", "sftp host or user not configured")
		} else if err := s.exporter.Upload(ctx, s.output.SFTP, rep.Written); err != nil {
			return rep, common.WrapError(err, "upload reports")
		} else {
			rep.Uploaded = true
		}
	}

	rep.FinishedAt = time.Now().UTC()
	s.mu.Lock()
	s.last = rep
	s.mu.Unlock()

	logger.Info("batch.done",
		"root", root,
		"status", res.Summary.Status(),
		"cleaned", res.Summary.CleanedRecords,
		"workbook", rep.Written.Workbook,
		"uploaded", rep.Uploaded,
	)
	return rep, nil
}

// Last returns the most recent successful report of this process.
func (s *Service) Last() (*Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last, s.last != nil
}
