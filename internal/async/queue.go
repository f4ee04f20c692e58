// Package async serializes batch runs behind a small queue.
package async

import (
	"context"
	"errors"
	"time"
)

// Job asks for one batch over Root.
type Job struct {
	Root        string
	Upload      bool
	SubmittedAt time.Time
	TraceID     string
}

// Handler runs one job. Errors are logged by the queue.
type Handler func(ctx context.Context, job Job) error

// ErrClosed is returned by Enqueue after Shutdown.
var ErrClosed = errors.New("queue is shutting down")

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
