package async

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/joseph-ayodele/course-stats/internal/common"
)

// Schedule enqueues a job on a cron spec. A tick that finds a run already
// pending is dropped.
type Schedule struct {
	c      *cron.Cron
	logger *slog.Logger
}

// StartSchedule validates spec (five fields, or a descriptor such as
// "@daily") and starts enqueueing job on it.
func StartSchedule(spec string, q Queue, job Job, logger *slog.Logger) (*Schedule, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, common.NewAppError("INVALID_SCHEDULE", fmt.Sprintf("parse schedule %q: %v", spec, err), common.ErrInvalidInput)
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, func() { tick(q, job, logger) }); err != nil {
		return nil, err
	}
	c.Start()
	logger.Info("schedule.started", "spec", spec, "root", job.Root)
	return &Schedule{c: c, logger: logger}, nil
}

func tick(q Queue, job Job, logger *slog.Logger) {
	job.SubmittedAt = time.Now()
	job.TraceID = ""
	err := q.Enqueue(context.Background(), job)
	switch {
	case errors.Is(err, common.ErrBusy):
		logger.Info("schedule.tick.skipped", "root", job.Root, "reason", "run pending")
	case err != nil:
		logger.Warn("schedule.tick.failed", "root", job.Root, "err", err)
	default:
		logger.Info("schedule.tick.queued", "root", job.Root)
	}
}

// Stop halts the schedule; it does not wait for queued jobs.
func (s *Schedule) Stop() {
	<-s.c.Stop().Done()
	s.logger.Info("schedule.stopped")
}
