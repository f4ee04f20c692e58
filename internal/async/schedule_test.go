package async

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/joseph-ayodele/course-stats/internal/common"
)

type recordingQueue struct {
	mu   sync.Mutex
	jobs []Job
	err  error
}

func (q *recordingQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordingQueue) Shutdown(context.Context) {}

func TestStartScheduleRejectsBadSpec(t *testing.T) {
	for _, spec := range []string{"", "every morning", "61 * * * *"} {
		if _, err := StartSchedule(spec, &recordingQueue{}, Job{Root: "/d"}, quietLogger()); !errors.Is(err, common.ErrInvalidInput) {
			t.Errorf("StartSchedule(%q) err = %v, want ErrInvalidInput", spec, err)
		}
	}
}

func TestStartScheduleStop(t *testing.T) {
	s, err := StartSchedule("@daily", &recordingQueue{}, Job{Root: "/d"}, quietLogger())
	if err != nil {
		t.Fatalf("StartSchedule: %v", err)
	}
	s.Stop()
}

func TestTick(t *testing.T) {
	q := &recordingQueue{}
	tick(q, Job{Root: "/d", Upload: true, TraceID: "stale"}, quietLogger())
	if len(q.jobs) != 1 {
		t.Fatalf("jobs = %d, want 1", len(q.jobs))
	}
	got := q.jobs[0]
	if got.Root != "/d" || !got.Upload || got.SubmittedAt.IsZero() || got.TraceID != "" {
		t.Errorf("job = %+v", got)
	}

	busy := &recordingQueue{err: common.ErrBusy}
	tick(busy, Job{Root: "/d"}, quietLogger())
	if len(busy.jobs) != 0 {
		t.Errorf("busy queue got jobs")
	}
}
