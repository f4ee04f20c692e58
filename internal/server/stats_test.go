package server

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/joseph-ayodele/course-stats/internal/async"
	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/entity"
	"github.com/joseph-ayodele/course-stats/internal/export"
	"github.com/joseph-ayodele/course-stats/internal/pipeline"
	"github.com/joseph-ayodele/course-stats/internal/services/batch"
)

type fakeBatch struct {
	err  error
	last *batch.Report
	reqs []batch.Request
}

func (f *fakeBatch) Run(_ context.Context, req batch.Request) (*batch.Report, error) {
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	f.last = &batch.Report{
		Root: req.Root,
		Result: &pipeline.Result{
			RunID: uuid.MustParse("0b9c3f8e-9a43-4a55-9c1e-1b7b1c2d3e4f"),
			Stats: entity.AggregateStatistics{
				TotalCourses: 2,
				TotalHours:   3,
				Instructors:  []entity.Bucket{{Key: "张三", Count: 2}},
			},
			Summary: pipeline.Summary{FilesScanned: 1, UnitsProcessed: 1, CleanedRecords: 2, TotalHours: 3},
		},
		Written:    export.Written{Workbook: "/tmp/stats.xlsx"},
		FinishedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
	return f.last, nil
}

func (f *fakeBatch) Last() (*batch.Report, bool) { return f.last, f.last != nil }

type fakeQueue struct {
	jobs []async.Job
	err  error
}

func (q *fakeQueue) Enqueue(_ context.Context, job async.Job) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeQueue) Shutdown(context.Context) {}

func dial(t *testing.T, svc StatsServer) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	gs, _ := NewGRPCServer(svc, zap.NewNop())
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestRunBatchAndLastRun(t *testing.T) {
	fb := &fakeBatch{}
	client := NewStatsClient(dial(t, NewStatsService(fb, nil)))
	ctx := context.Background()

	if _, err := client.LastRun(ctx, &structpb.Struct{}); status.Code(err) != codes.NotFound {
		t.Fatalf("LastRun before any run: code = %v", status.Code(err))
	}

	out, err := client.RunBatch(ctx, mustStruct(t, map[string]any{"root": "/data/课表", "upload": true}))
	if err != nil {
		t.Fatalf("RunBatch: %v", err)
	}
	f := out.GetFields()
	if got := f["status"].GetStringValue(); got != "SUCCEEDED" {
		t.Errorf("status = %q", got)
	}
	if got := f["cleaned_records"].GetNumberValue(); got != 2 {
		t.Errorf("cleaned_records = %v", got)
	}
	inst := f["stats"].GetStructValue().GetFields()["instructors"].GetListValue().GetValues()
	if len(inst) != 1 || inst[0].GetStructValue().GetFields()["key"].GetStringValue() != "张三" {
		t.Errorf("instructors = %v", inst)
	}
	if len(fb.reqs) != 1 || fb.reqs[0].Root != "/data/课表" || !fb.reqs[0].Upload {
		t.Errorf("requests = %+v", fb.reqs)
	}

	last, err := client.LastRun(ctx, &structpb.Struct{})
	if err != nil {
		t.Fatalf("LastRun: %v", err)
	}
	if got := last.GetFields()["run_id"].GetStringValue(); got != "0b9c3f8e-9a43-4a55-9c1e-1b7b1c2d3e4f" {
		t.Errorf("run_id = %q", got)
	}
}

func TestRunBatchErrors(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		svc  *StatsService
		req  map[string]any
		want codes.Code
	}{
		{name: "missing root", svc: NewStatsService(&fakeBatch{}, nil), req: map[string]any{}, want: codes.InvalidArgument},
		{name: "busy", svc: NewStatsService(&fakeBatch{err: common.ErrBusy}, nil), req: map[string]any{"root": "/d"}, want: codes.Unavailable},
		{name: "internal", svc: NewStatsService(&fakeBatch{err: io.ErrUnexpectedEOF}, nil), req: map[string]any{"root": "/d"}, want: codes.Internal},
		{name: "no records", svc: NewStatsService(&fakeBatch{err: common.NewAppError("NO_RECORDS", "nothing recovered", common.ErrNoRecords)}, nil), req: map[string]any{"root": "/d"}, want: codes.FailedPrecondition},
		{name: "async without queue", svc: NewStatsService(&fakeBatch{}, nil), req: map[string]any{"root": "/d", "async": true}, want: codes.InvalidArgument},
		{name: "queue full", svc: NewStatsService(&fakeBatch{}, nil, WithQueue(&fakeQueue{err: common.ErrBusy})), req: map[string]any{"root": "/d", "async": true}, want: codes.Unavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewStatsClient(dial(t, tt.svc))
			_, err := client.RunBatch(ctx, mustStruct(t, tt.req))
			if got := status.Code(err); got != tt.want {
				t.Errorf("code = %v, want %v (err %v)", got, tt.want, err)
			}
		})
	}
}

func TestRunBatchAsync(t *testing.T) {
	q := &fakeQueue{}
	fb := &fakeBatch{}
	client := NewStatsClient(dial(t, NewStatsService(fb, nil, WithQueue(q))))

	out, err := client.RunBatch(context.Background(), mustStruct(t, map[string]any{"root": "/d", "async": true}))
	if err != nil {
		t.Fatalf("RunBatch: %v", err)
	}
	if !out.GetFields()["queued"].GetBoolValue() {
		t.Error("expected queued reply")
	}
	if len(q.jobs) != 1 || q.jobs[0].Root != "/d" || len(fb.reqs) != 0 {
		t.Errorf("jobs = %+v, direct runs = %d", q.jobs, len(fb.reqs))
	}
}

type fakeRuns struct{ run entity.Run }

func (f fakeRuns) Latest(context.Context) (entity.Run, error) { return f.run, nil }

func TestLastRunFromStore(t *testing.T) {
	msg := "context canceled"
	run := entity.Run{
		ID:           uuid.New(),
		InputRoot:    "/d",
		Status:       "FAILED",
		StartedAt:    time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
		ErrorMessage: &msg,
		Stats:        []byte(`{"total_courses":4}`),
	}
	client := NewStatsClient(dial(t, NewStatsService(&fakeBatch{}, nil, WithRunReader(fakeRuns{run: run}))))
	out, err := client.LastRun(context.Background(), &structpb.Struct{})
	if err != nil {
		t.Fatalf("LastRun: %v", err)
	}
	f := out.GetFields()
	if f["status"].GetStringValue() != "FAILED" || f["error"].GetStringValue() != msg {
		t.Errorf("reply = %v", out)
	}
	if got := f["stats"].GetStructValue().GetFields()["total_courses"].GetNumberValue(); got != 4 {
		t.Errorf("total_courses = %v", got)
	}
}

func TestHealthServing(t *testing.T) {
	conn := dial(t, NewStatsService(&fakeBatch{}, nil))
	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Errorf("status = %v", resp.GetStatus())
	}
}
