package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/course-stats/internal/common"
)

// RunQueue runs jobs one at a time so batches never overlap. Jobs that find
// the buffer full are rejected with common.ErrBusy rather than blocking; a
// watcher burst therefore collapses into at most one pending run.
type RunQueue struct {
	handle  Handler
	logger  *slog.Logger
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	// base is cancelled on Shutdown so a running job stops early.
	base   context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

type Option func(*RunQueue)

func WithQueueSize(n int) Option {
	return func(q *RunQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithRunTimeout(d time.Duration) Option {
	return func(q *RunQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewRunQueue(handle Handler, logger *slog.Logger, opts ...Option) *RunQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &RunQueue{
		handle:  handle,
		logger:  logger,
		timeout: 10 * time.Minute,
		ch:      make(chan Job, 1),
	}
	for _, o := range opts {
		o(q)
	}
	q.base, q.cancel = context.WithCancel(context.Background())
	q.start()
	return q
}

func (q *RunQueue) start() {
	q.once.Do(func() {
		q.wg.Add(1)
		go func() {
			defer q.wg.Done()
			q.logger.Info("queue.worker.started")
			for job := range q.ch {
				q.run(job)
			}
			q.logger.Info("queue.worker.stopped")
		}()
	})
}

func (q *RunQueue) run(job Job) {
	ctx, cancel := context.WithTimeout(q.base, q.timeout)
	defer cancel()
	if job.TraceID != "" {
		ctx = common.WithRunID(ctx, job.TraceID)
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error("queue.job.panic", "root", job.Root, "trace_id", job.TraceID, "panic", r)
		}
	}()
	if err := q.handle(ctx, job); err != nil {
		q.logger.Error("queue.job.failed", "root", job.Root, "trace_id", job.TraceID, "err", err)
		return
	}
	q.logger.Info("queue.job.ok",
		"root", job.Root,
		"trace_id", job.TraceID,
		"waited_ms", start.Sub(job.SubmittedAt).Milliseconds(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
}

// Enqueue schedules job without blocking.
func (q *RunQueue) Enqueue(_ context.Context, job Job) error {
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	if job.TraceID == "" {
		job.TraceID = uuid.NewString()
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("queue.enqueue.closed", "root", job.Root)
		return ErrClosed
	}
	select {
	case q.ch <- job:
		q.logger.Info("queue.enqueued", "root", job.Root, "trace_id", job.TraceID)
		return nil
	default:
		q.logger.Warn("queue.enqueue.busy", "root", job.Root)
		return common.ErrBusy
	}
}

// Shutdown stops accepting jobs and waits for the worker to drain. If ctx
// ends first the running job is cancelled.
func (q *RunQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("queue.shutdown.interrupted")
		q.cancel()
		<-done
	case <-done:
		q.cancel()
		q.logger.Info("queue.shutdown.done")
	}
}
