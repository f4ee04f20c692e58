package common

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zapcore"
)

// clearEnv blanks every variable applyEnv reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DB_URL", "DB_MAX_CONNS", "DB_MIN_CONNS", "DB_DIAL_TIMEOUT", "GRPC_ADDR", "HTTP_ADDR",
		"COURSESTAT_OUTPUT", "COURSESTAT_CSV", "COURSESTAT_RAW_CSV",
		"SFTP_HOST", "SFTP_PORT", "SFTP_USER", "SFTP_PASS", "SFTP_DIR",
		"COURSESTAT_WATCH_DIR", "COURSESTAT_WATCH_DEBOUNCE", "COURSESTAT_SCHEDULE",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if diff := cmp.Diff([]string{"course_name", "instructor"}, cfg.DedupeKeys); diff != "" {
		t.Errorf("dedupe keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NameConfig{MinRunes: 2, MaxRunes: 6, MaxRawRunes: 30}, cfg.Names); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	if cfg.HeaderMatchThreshold != 2 || cfg.Server.GRPCAddr != ":8080" {
		t.Errorf("threshold = %d addr = %q", cfg.HeaderMatchThreshold, cfg.Server.GRPCAddr)
	}
}

func TestLoadConfigYAMLOverlay(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "coursestat.yaml", `
dedupe_keys: [课程名称, 讲师, 周次]
name_whitelist: [欧阳修]
names:
  min_runes: 2
  max_runes: 8
  max_raw_runes: 30
field_mapping:
  course_name: [科目]
watch:
  dir: /srv/timetables
  debounce: 500ms
  schedule: "@daily"
output:
  path: out/课程统计.xlsx
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if diff := cmp.Diff([]string{"课程名称", "讲师", "周次"}, cfg.DedupeKeys); diff != "" {
		t.Errorf("dedupe keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"科目"}, cfg.FieldMapping["course_name"]); diff != "" {
		t.Errorf("course_name aliases (-want +got):\n%s", diff)
	}
	if _, ok := cfg.FieldMapping["instructor"]; !ok {
		t.Error("default instructor aliases were dropped by the overlay")
	}
	if cfg.Names.MaxRunes != 8 || cfg.Watch.Debounce.Std() != 500*time.Millisecond || cfg.Watch.Schedule != "@daily" {
		t.Errorf("names = %+v watch = %+v", cfg.Names, cfg.Watch)
	}
	if cfg.Output.Path != "out/课程统计.xlsx" {
		t.Errorf("output path = %q", cfg.Output.Path)
	}
}

func TestLoadConfigDedupeKeys(t *testing.T) {
	tests := []struct {
		body string
		want []string
	}{
		{body: "dedupe_keys: [course_name, hours]\n", want: []string{"course_name", "hours"}},
		{body: "dedupe_keys: [课程名称, 课时]\n", want: []string{"课程名称", "课时"}},
		{body: "dedupe_keys: [文件来源, sheet/页码]\n", want: []string{"文件来源", "sheet/页码"}},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			clearEnv(t)
			cfg, err := LoadConfig(writeConfig(t, "c.yaml", tt.body))
			if err != nil {
				t.Fatalf("LoadConfig: %v", err)
			}
			if diff := cmp.Diff(tt.want, cfg.DedupeKeys); diff != "" {
				t.Errorf("dedupe keys (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadConfigJSON(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "coursestat.json", `{"header_match_threshold": 3, "log": {"level": "warn"}}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.HeaderMatchThreshold != 3 || cfg.Log.Level != "warn" {
		t.Errorf("threshold = %d level = %q", cfg.HeaderMatchThreshold, cfg.Log.Level)
	}
}

func TestLoadConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown top-level key", body: "colour: blue\n"},
		{name: "bad duration", body: "watch:\n  debounce: five seconds\n"},
		{name: "zero threshold", body: "header_match_threshold: 0\n"},
		{name: "unknown dedupe key", body: "dedupe_keys: [teacher_name]\n"},
		{name: "inverted name bounds", body: "names:\n  min_runes: 4\n  max_runes: 2\n  max_raw_runes: 30\n"},
		{name: "bad log level", body: "log:\n  level: loud\n"},
		{name: "empty alias list", body: "field_mapping:\n  week: []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := LoadConfig(writeConfig(t, "c.yaml", tt.body))
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
			var appErr *AppError
			if !errors.As(err, &appErr) || appErr.Code != "CONFIG_ERROR" {
				t.Errorf("err = %#v, want CONFIG_ERROR", err)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GRPC_ADDR", ":9999")
	t.Setenv("DB_URL", "postgres://u@localhost/courses")
	t.Setenv("DB_MAX_CONNS", "not-a-number")
	t.Setenv("COURSESTAT_WATCH_DEBOUNCE", "750ms")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.GRPCAddr != ":9999" || cfg.Database.DSN != "postgres://u@localhost/courses" {
		t.Errorf("server = %+v dsn = %q", cfg.Server, cfg.Database.DSN)
	}
	if cfg.Database.MaxConns != 20 {
		t.Errorf("max conns = %d, want default kept on bad input", cfg.Database.MaxConns)
	}
	if cfg.Watch.Debounce.Std() != 750*time.Millisecond {
		t.Errorf("debounce = %v", cfg.Watch.Debounce.Std())
	}
	if cfg.LogLevel().String() != "DEBUG" {
		t.Errorf("level = %v", cfg.LogLevel())
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("missing .env should be ignored, got %v", err)
	}
}

func TestNewZapLogger(t *testing.T) {
	tests := []struct {
		level, format string
		debug, info   bool
	}{
		{level: "debug", format: "text", debug: true, info: true},
		{level: "info", format: "json", debug: false, info: true},
		{level: "error", format: "json", debug: false, info: false},
	}
	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.format, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Log = LogConfig{Level: tt.level, Format: tt.format}
			zl, err := cfg.NewZapLogger()
			if err != nil {
				t.Fatalf("NewZapLogger: %v", err)
			}
			core := zl.Core()
			if core.Enabled(zapcore.DebugLevel) != tt.debug || core.Enabled(zapcore.InfoLevel) != tt.info {
				t.Errorf("debug=%v info=%v", core.Enabled(zapcore.DebugLevel), core.Enabled(zapcore.InfoLevel))
			}
		})
	}
}
