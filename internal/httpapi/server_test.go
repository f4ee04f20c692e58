package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/course-stats/internal/async"
	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/entity"
	"github.com/joseph-ayodele/course-stats/internal/export"
	"github.com/joseph-ayodele/course-stats/internal/pipeline"
	"github.com/joseph-ayodele/course-stats/internal/services/batch"
)

type fakeReports struct{ rep *batch.Report }

func (f fakeReports) Last() (*batch.Report, bool) { return f.rep, f.rep != nil }

type fakeQueue struct {
	jobs []async.Job
	ids  []string
	err  error
}

func (q *fakeQueue) Enqueue(ctx context.Context, job async.Job) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	q.ids = append(q.ids, common.RequestIDFromContext(ctx))
	return nil
}

func (q *fakeQueue) Shutdown(context.Context) {}

type fakeRuns struct {
	run entity.Run
	err error
}

func (f fakeRuns) Latest(context.Context) (entity.Run, error) { return f.run, f.err }

func (f fakeRuns) Get(_ context.Context, id uuid.UUID) (entity.Run, error) {
	if f.err != nil {
		return entity.Run{}, f.err
	}
	if id != f.run.ID {
		return entity.Run{}, common.NewAppError("NOT_FOUND", "run not found", common.ErrNotFound)
	}
	return f.run, nil
}

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func report(t *testing.T) *batch.Report {
	t.Helper()
	dir := t.TempDir()
	wb := filepath.Join(dir, "课程统计.xlsx")
	if err := os.WriteFile(wb, []byte("PK fake workbook"), 0o644); err != nil {
		t.Fatal(err)
	}
	return &batch.Report{
		Root: "/data",
		Result: &pipeline.Result{
			RunID:   uuid.MustParse("5d2c7e0a-1f3b-4c6d-8e9f-0a1b2c3d4e5f"),
			Summary: pipeline.Summary{FilesScanned: 1, CleanedRecords: 2, TotalHours: 4},
			Stats:   entity.AggregateStatistics{TotalCourses: 2, TotalHours: 4},
		},
		Written:    export.Written{Workbook: wb},
		FinishedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
}

func do(t *testing.T, d Deps, method, target, body string) (*http.Response, map[string]any) {
	t.Helper()
	d.Logger = quiet()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := New(d).Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	var out map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return resp, out
}

func TestHealth(t *testing.T) {
	resp, _ := do(t, Deps{Reports: fakeReports{}}, http.MethodGet, "/health", "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID")
	}
}

func TestLatestRunFromMemory(t *testing.T) {
	resp, body := do(t, Deps{Reports: fakeReports{}}, http.MethodGet, "/api/runs/latest", "")
	if resp.StatusCode != http.StatusNotFound || body["error"] == nil {
		t.Fatalf("empty: status = %d body = %v", resp.StatusCode, body)
	}

	resp, body = do(t, Deps{Reports: fakeReports{rep: report(t)}}, http.MethodGet, "/api/runs/latest", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body["status"] != "SUCCEEDED" || body["run_id"] != "5d2c7e0a-1f3b-4c6d-8e9f-0a1b2c3d4e5f" {
		t.Errorf("body = %v", body)
	}
}

func TestLatestRunFromStore(t *testing.T) {
	run := entity.Run{ID: uuid.New(), Status: "PARTIAL", CleanedRecords: 7}
	resp, body := do(t, Deps{Reports: fakeReports{}, Runs: fakeRuns{run: run}}, http.MethodGet, "/api/runs/latest", "")
	if resp.StatusCode != http.StatusOK || body["status"] != "PARTIAL" || body["cleaned_records"] != float64(7) {
		t.Errorf("status = %d body = %v", resp.StatusCode, body)
	}

	missing := fakeRuns{err: common.NewAppError("NOT_FOUND", "latest run not found", common.ErrNotFound)}
	resp, _ = do(t, Deps{Reports: fakeReports{}, Runs: missing}, http.MethodGet, "/api/runs/latest", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing: status = %d", resp.StatusCode)
	}
}

func TestGetRun(t *testing.T) {
	stored := entity.Run{ID: uuid.MustParse("9b1f0c2e-3d4a-4b5c-8d6e-7f8091a2b3c4"), Status: "SUCCEEDED"}
	tests := []struct {
		name   string
		deps   Deps
		target string
		want   int
		status string
	}{
		{name: "malformed id", deps: Deps{Reports: fakeReports{}}, target: "/api/runs/not-a-uuid", want: http.StatusBadRequest},
		{name: "from store", deps: Deps{Reports: fakeReports{}, Runs: fakeRuns{run: stored}}, target: "/api/runs/" + stored.ID.String(), want: http.StatusOK, status: "SUCCEEDED"},
		{name: "unknown in store", deps: Deps{Reports: fakeReports{}, Runs: fakeRuns{run: stored}}, target: "/api/runs/" + uuid.NewString(), want: http.StatusNotFound},
		{name: "from memory", deps: Deps{Reports: fakeReports{rep: report(t)}}, target: "/api/runs/5d2c7e0a-1f3b-4c6d-8e9f-0a1b2c3d4e5f", want: http.StatusOK, status: "SUCCEEDED"},
		{name: "memory holds another run", deps: Deps{Reports: fakeReports{rep: report(t)}}, target: "/api/runs/" + uuid.NewString(), want: http.StatusNotFound},
		{name: "latest is not an id", deps: Deps{Reports: fakeReports{rep: report(t)}}, target: "/api/runs/latest", want: http.StatusOK, status: "SUCCEEDED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, tt.deps, http.MethodGet, tt.target, "")
			if resp.StatusCode != tt.want {
				t.Fatalf("status = %d, want %d (body %v)", resp.StatusCode, tt.want, body)
			}
			if tt.status != "" && body["status"] != tt.status {
				t.Errorf("body = %v", body)
			}
		})
	}
}

func TestSubmitRun(t *testing.T) {
	q := &fakeQueue{}
	resp, body := do(t, Deps{Reports: fakeReports{}, Queue: q}, http.MethodPost, "/api/runs", `{"root":" /data ","upload":true}`)
	if resp.StatusCode != http.StatusAccepted || body["queued"] != true {
		t.Fatalf("status = %d body = %v", resp.StatusCode, body)
	}
	if len(q.jobs) != 1 || q.jobs[0].Root != "/data" || !q.jobs[0].Upload || q.jobs[0].TraceID != body["trace_id"] {
		t.Errorf("jobs = %+v", q.jobs)
	}
	if id := resp.Header.Get("X-Request-ID"); id == "" || len(q.ids) != 1 || q.ids[0] != id {
		t.Errorf("request id = %q, seen by queue %v", id, q.ids)
	}

	tests := []struct {
		name string
		deps Deps
		body string
		want int
	}{
		{name: "no queue", deps: Deps{Reports: fakeReports{}}, body: `{"root":"/d"}`, want: http.StatusServiceUnavailable},
		{name: "bad json", deps: Deps{Reports: fakeReports{}, Queue: &fakeQueue{}}, body: `{`, want: http.StatusBadRequest},
		{name: "missing root", deps: Deps{Reports: fakeReports{}, Queue: &fakeQueue{}}, body: `{"upload":true}`, want: http.StatusBadRequest},
		{name: "busy", deps: Deps{Reports: fakeReports{}, Queue: &fakeQueue{err: common.ErrBusy}}, body: `{"root":"/d"}`, want: http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := do(t, tt.deps, http.MethodPost, "/api/runs", tt.body)
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestDownload(t *testing.T) {
	deps := Deps{Reports: fakeReports{rep: report(t)}}

	resp, _ := do(t, deps, http.MethodGet, "/api/reports/latest/workbook", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	b, _ := io.ReadAll(resp.Body)
	if string(b) != "PK fake workbook" {
		t.Errorf("body = %q", b)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	for target, want := range map[string]int{
		"/api/reports/latest/csv": http.StatusNotFound,
		"/api/reports/latest/pdf": http.StatusBadRequest,
	} {
		if resp, _ := do(t, deps, http.MethodGet, target, ""); resp.StatusCode != want {
			t.Errorf("%s: status = %d, want %d", target, resp.StatusCode, want)
		}
	}
}
