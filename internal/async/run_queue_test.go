package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/joseph-ayodele/course-stats/internal/common"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunQueueSerializesJobs(t *testing.T) {
	var (
		mu      sync.Mutex
		running int
		maxSeen int
		roots   []string
	)
	release := make(chan struct{})
	handler := func(ctx context.Context, job Job) error {
		mu.Lock()
		running++
		maxSeen = max(maxSeen, running)
		roots = append(roots, job.Root)
		mu.Unlock()
		<-release
		mu.Lock()
		running--
		mu.Unlock()
		return nil
	}
	q := NewRunQueue(handler, quietLogger(), WithQueueSize(2))

	for _, r := range []string{"a", "b", "c"} {
		// The first job may still be in the buffer when the third arrives.
		for {
			err := q.Enqueue(context.Background(), Job{Root: r})
			if err == nil {
				break
			}
			if !errors.Is(err, common.ErrBusy) {
				t.Fatalf("Enqueue(%s): %v", r, err)
			}
			time.Sleep(time.Millisecond)
		}
	}
	close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	mu.Lock()
	defer mu.Unlock()
	if maxSeen != 1 {
		t.Errorf("concurrent jobs = %d, want 1", maxSeen)
	}
	if len(roots) != 3 || roots[0] != "a" || roots[1] != "b" || roots[2] != "c" {
		t.Errorf("roots = %v", roots)
	}
}

func TestRunQueueBusyWhenFull(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	q := NewRunQueue(func(ctx context.Context, job Job) error {
		close(started)
		<-release
		return nil
	}, quietLogger())

	if err := q.Enqueue(context.Background(), Job{Root: "first"}); err != nil {
		t.Fatal(err)
	}
	<-started
	if err := q.Enqueue(context.Background(), Job{Root: "pending"}); err != nil {
		t.Fatal(err)
	}
	if err := q.Enqueue(context.Background(), Job{Root: "overflow"}); !errors.Is(err, common.ErrBusy) {
		t.Fatalf("overflow err = %v, want ErrBusy", err)
	}
	close(release)
	q.Shutdown(context.Background())

	if err := q.Enqueue(context.Background(), Job{Root: "late"}); !errors.Is(err, ErrClosed) {
		t.Errorf("after shutdown err = %v, want ErrClosed", err)
	}
}

func TestRunQueueShutdownCancelsRunningJob(t *testing.T) {
	started := make(chan struct{})
	var got error
	q := NewRunQueue(func(ctx context.Context, job Job) error {
		close(started)
		<-ctx.Done()
		got = ctx.Err()
		return got
	}, quietLogger())

	if err := q.Enqueue(context.Background(), Job{Root: "slow"}); err != nil {
		t.Fatal(err)
	}
	<-started
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	q.Shutdown(ctx)

	if !errors.Is(got, context.Canceled) {
		t.Errorf("job ctx err = %v, want context.Canceled", got)
	}
}

func TestRunQueueRecoversPanic(t *testing.T) {
	done := make(chan struct{})
	calls := 0
	q := NewRunQueue(func(ctx context.Context, job Job) error {
		calls++
		if job.Root == "boom" {
			panic("reader exploded")
		}
		close(done)
		return nil
	}, quietLogger(), WithQueueSize(2))

	_ = q.Enqueue(context.Background(), Job{Root: "boom"})
	_ = q.Enqueue(context.Background(), Job{Root: "ok"})
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not survive the panic")
	}
	q.Shutdown(context.Background())
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
