package server

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/joseph-ayodele/course-stats/internal/async"
	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/entity"
	"github.com/joseph-ayodele/course-stats/internal/services/batch"
)

// BatchRunner runs batches in-process.
type BatchRunner interface {
	Run(ctx context.Context, req batch.Request) (*batch.Report, error)
	Last() (*batch.Report, bool)
}

// RunReader reads persisted runs.
type RunReader interface {
	Latest(ctx context.Context) (entity.Run, error)
}

const maxRootRunes = 4096

type StatsService struct {
	batch  BatchRunner
	queue  async.Queue
	runs   RunReader
	logger *zap.Logger
}

type Option func(*StatsService)

// WithQueue lets RunBatch accept {"async": true} requests.
func WithQueue(q async.Queue) Option {
	return func(s *StatsService) { s.queue = q }
}

// WithRunReader makes LastRun answer from the store instead of memory.
func WithRunReader(r RunReader) Option {
	return func(s *StatsService) { s.runs = r }
}

func NewStatsService(b BatchRunner, logger *zap.Logger, opts ...Option) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &StatsService{batch: b, logger: logger}
	for _, o := range opts {
		o(s)
	}
	return s
}

// RunBatch runs {"root": dir, "upload": bool}. With "async" the batch is
// queued and only the trace id is returned.
func (s *StatsService) RunBatch(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := req.GetFields()
	root := strings.TrimSpace(f["root"].GetStringValue())
	v := common.NewValidator().Field("root", root, common.Required, common.RuneRange(1, maxRootRunes))
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	upload := f["upload"].GetBoolValue()

	if f["async"].GetBoolValue() {
		if s.queue == nil {
			return nil, common.InvalidArgumentError("async runs are not enabled")
		}
		job := async.Job{Root: root, Upload: upload, SubmittedAt: time.Now()}
		if err := s.queue.Enqueue(ctx, job); err != nil {
			return nil, toStatus(err)
		}
		return structpb.NewStruct(map[string]any{"queued": true, "root": root})
	}

	rep, err := s.batch.Run(ctx, batch.Request{Root: root, Upload: upload})
	if err != nil {
		s.logger.Warn("run batch failed", zap.String("root", root), zap.Error(err))
		return nil, toStatus(err)
	}
	return reportStruct(rep)
}

// LastRun returns the latest run.
func (s *StatsService) LastRun(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	if s.runs != nil {
		run, err := s.runs.Latest(ctx)
		if err != nil {
			return nil, toStatus(err)
		}
		return runStruct(run)
	}
	rep, ok := s.batch.Last()
	if !ok {
		return nil, common.NotFoundError("no run has finished yet")
	}
	return reportStruct(rep)
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return common.InvalidArgumentErrorf("invalid request: %v", err)
	case errors.Is(err, common.ErrNotFound):
		return common.NotFoundError(err.Error())
	case errors.Is(err, common.ErrNoRecords):
		return common.FailedPreconditionError(err.Error())
	case errors.Is(err, common.ErrBusy), errors.Is(err, async.ErrClosed):
		return common.UnavailableError(err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return common.UnavailableError(err.Error())
	default:
		return common.InternalErrorf("run failed: %v", err)
	}
}

func reportStruct(rep *batch.Report) (*structpb.Struct, error) {
	res := rep.Result
	stats, err := jsonValue(res.Stats)
	if err != nil {
		return nil, common.InternalErrorf("encode stats: %v", err)
	}
	failures := make([]any, 0, len(res.Failures))
	for _, f := range res.Failures {
		failures = append(failures, map[string]any{"path": f.Path, "error": f.Error})
	}
	m := map[string]any{
		"run_id":          res.RunID.String(),
		"root":            rep.Root,
		"status":          string(res.Summary.Status()),
		"files_scanned":   res.Summary.FilesScanned,
		"files_failed":    res.Summary.FilesFailed,
		"units_processed": res.Summary.UnitsProcessed,
		"units_skipped":   res.Summary.UnitsSkipped,
		"raw_records":     res.Summary.RawRecords,
		"cleaned_records": res.Summary.CleanedRecords,
		"total_hours":     res.Summary.TotalHours,
		"workbook":        rep.Written.Workbook,
		"csv":             rep.Written.CSV,
		"uploaded":        rep.Uploaded,
		"finished_at":     rep.FinishedAt.Format(time.RFC3339Nano),
		"failures":        failures,
		"stats":           stats,
	}
	return newStruct(m)
}

func runStruct(run entity.Run) (*structpb.Struct, error) {
	m := map[string]any{
		"run_id":          run.ID.String(),
		"root":            run.InputRoot,
		"status":          run.Status,
		"started_at":      run.StartedAt.Format(time.RFC3339Nano),
		"files_scanned":   run.FilesScanned,
		"files_failed":    run.FilesFailed,
		"units_processed": run.UnitsProcessed,
		"units_skipped":   run.UnitsSkipped,
		"raw_records":     run.RawRecords,
		"cleaned_records": run.CleanedRecords,
		"total_hours":     run.TotalHours,
	}
	if run.FinishedAt != nil {
		m["finished_at"] = run.FinishedAt.Format(time.RFC3339Nano)
	}
	if run.ErrorMessage != nil {
		m["error"] = *run.ErrorMessage
	}
	if len(run.Stats) > 0 {
		var stats map[string]any
		if err := json.Unmarshal(run.Stats, &stats); err == nil {
			m["stats"] = stats
		}
	}
	return newStruct(m)
}

// jsonValue round-trips v through JSON so structpb accepts it.
func jsonValue(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func newStruct(m map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, common.InternalErrorf("encode reply: %v", err)
	}
	return s, nil
}
