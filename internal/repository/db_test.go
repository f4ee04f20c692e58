package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/course-stats/constants"
	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/entity"
)

func TestDialectFor(t *testing.T) {
	tests := []struct {
		dsn     string
		want    string
		wantErr bool
	}{
		{dsn: "postgres://u:p@localhost:5432/courses?sslmode=disable", want: dialect.Postgres},
		{dsn: "postgresql://localhost/courses", want: dialect.Postgres},
		{dsn: "host=localhost dbname=courses user=u", want: dialect.Postgres},
		{dsn: "coursestat.db", want: dialect.SQLite},
		{dsn: MemoryDSN, want: dialect.SQLite},
		{dsn: "  ", wantErr: true},
	}
	for _, tt := range tests {
		got, err := DialectFor(tt.dsn)
		if tt.wantErr {
			if !errors.Is(err, common.ErrInvalidInput) {
				t.Errorf("DialectFor(%q) err = %v, want ErrInvalidInput", tt.dsn, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("DialectFor(%q) = %q, %v; want %q", tt.dsn, got, err, tt.want)
		}
	}
}

func TestSQLiteDSN(t *testing.T) {
	tests := map[string]string{
		"coursestat.db":                     "file:coursestat.db?_pragma=foreign_keys(1)",
		"sqlite://data/runs.db":             "file:data/runs.db?_pragma=foreign_keys(1)",
		"file:x.db?cache=shared":            "file:x.db?cache=shared&_pragma=foreign_keys(1)",
		"file:x.db?_pragma=foreign_keys(1)": "file:x.db?_pragma=foreign_keys(1)",
	}
	for in, want := range tests {
		if got := sqliteDSN(in); got != want {
			t.Errorf("sqliteDSN(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOpenFailureIsDatabaseError(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
	}{
		{name: "sqlite in missing directory", dsn: filepath.Join(t.TempDir(), "missing", "runs.db")},
		{name: "postgres refused", dsn: "postgres://u@127.0.0.1:1/courses?sslmode=disable&connect_timeout=1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := Open(context.Background(), Config{DSN: tt.dsn, DialTimeout: 3 * time.Second}, nil)
			if err == nil {
				st.Close(nil)
				t.Fatal("Open succeeded")
			}
			if !errors.Is(err, common.ErrDatabase) {
				t.Errorf("err = %v, want ErrDatabase", err)
			}
			var appErr *common.AppError
			if !errors.As(err, &appErr) || appErr.Code != "DB_CONNECT" {
				t.Errorf("err = %#v, want DB_CONNECT", err)
			}
		})
	}
}

func openMemory(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	st, err := Open(ctx, Config{DSN: dsn, DialTimeout: 5 * time.Second}, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { st.Close(nil) })
	if err := st.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return st
}

func TestRunRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	st := openMemory(t)
	if err := st.HealthCheck(ctx, time.Second); err != nil {
		t.Fatalf("HealthCheck: %v", err)
	}
	repo := NewRunRepository(st.Client, nil)

	id := uuid.New()
	started := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	if err := repo.Start(ctx, entity.Run{ID: id, InputRoot: "/data/课表", StartedAt: started}); err != nil {
		t.Fatalf("Start: %v", err)
	}

	records := []entity.CleanedCourseRecord{
		{CourseName: "高等数学", Instructor: "张三", Hours: 2, Category: "周一-上午", Week: "1-16周",
			SourceFile: "a.xlsx", SheetOrPage: "Sheet1-周一", SourceLocator: "a.xlsx|Sheet1|table1|row1|周一|col2",
			SourceOriginalNameText: "高等数学/张三/1-16周"},
		{CourseName: "大学英语", Instructor: constants.Unassigned, Hours: 1, Category: "理论",
			SourceFile: "a.xlsx", SheetOrPage: "Sheet2", SourceLocator: "a.xlsx|Sheet2|row2"},
	}
	done := entity.Run{
		ID:             id,
		Status:         string(constants.RunStatusSucceeded),
		FilesScanned:   1,
		UnitsProcessed: 2,
		RawRecords:     3,
		CleanedRecords: 2,
		TotalHours:     3,
		Stats:          []byte(`{"total_courses":2}`),
	}
	if err := repo.Finish(ctx, done, records); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	got, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if got.ID != id || got.Status != string(constants.RunStatusSucceeded) || got.FinishedAt == nil {
		t.Errorf("Latest = %+v", got)
	}
	if got.CleanedRecords != 2 || got.TotalHours != 3 || got.InputRoot != "/data/课表" {
		t.Errorf("counters = %+v", got)
	}

	back, err := repo.Records(ctx, id)
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if diff := cmp.Diff(records, back); diff != "" {
		t.Errorf("Records mismatch (-want +got):\n%s", diff)
	}
}

func TestRunRepositoryFailAndRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewRunRepository(openMemory(t).Client, nil)

	base := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	var ids []uuid.UUID
	for i := range 3 {
		id := uuid.New()
		ids = append(ids, id)
		if err := repo.Start(ctx, entity.Run{ID: id, StartedAt: base.Add(time.Duration(i) * time.Hour)}); err != nil {
			t.Fatalf("Start: %v", err)
		}
	}
	if err := repo.Fail(ctx, ids[1], "context canceled"); err != nil {
		t.Fatalf("Fail: %v", err)
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != ids[2] || recent[1].ID != ids[1] {
		t.Fatalf("Recent order = %v", recent)
	}
	failed := recent[1]
	if failed.Status != string(constants.RunStatusFailed) || failed.ErrorMessage == nil || *failed.ErrorMessage != "context canceled" {
		t.Errorf("failed run = %+v", failed)
	}

	if _, err := repo.Get(ctx, uuid.New()); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Get(unknown) err = %v, want ErrNotFound", err)
	}
}

func TestLatestEmpty(t *testing.T) {
	repo := NewRunRepository(openMemory(t).Client, nil)
	if _, err := repo.Latest(context.Background()); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Latest err = %v, want ErrNotFound", err)
	}
}
