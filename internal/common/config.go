package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// FieldMapping maps a target record field to acceptable header aliases.
	FieldMapping         map[string][]string `json:"field_mapping" validate:"required,min=1"`
	DedupeKeys           []string            `json:"dedupe_keys" validate:"required,min=1,dive,oneof=course_name instructor hours week location section category time_period source_file sheet_or_page 课程名称 讲师 课时 周次 地点 节次 分类 时间段 文件来源 sheet/页码"`
	TeacherBlacklist     []string            `json:"teacher_blacklist"`
	DepartmentBlacklist  []string            `json:"department_blacklist"`
	NameWhitelist        []string            `json:"name_whitelist"`
	HeaderMatchThreshold int                 `json:"header_match_threshold" validate:"min=1"`
	HeaderBlacklist      []string            `json:"header_blacklist"`
	Names                NameConfig          `json:"names"`
	Output               OutputConfig        `json:"output"`
	Database             DatabaseConfig      `json:"database"`
	Server               ServerConfig        `json:"server"`
	Watch                WatchConfig         `json:"watch"`
	Log                  LogConfig           `json:"log"`
}

// NameConfig bounds what is accepted as a person's name.
type NameConfig struct {
	MinRunes int `json:"min_runes" validate:"min=1"`
	MaxRunes int `json:"max_runes" validate:"gtefield=MinRunes"`
	// MaxRawRunes rejects raw instructor values longer than this outright.
	MaxRawRunes int `json:"max_raw_runes" validate:"min=1"`
}

// OutputConfig holds export destinations. An empty path disables that export.
type OutputConfig struct {
	Path       string     `json:"path"`
	CSVPath    string     `json:"csv_path"`
	RawCSVPath string     `json:"raw_csv_path"`
	SFTP       SFTPConfig `json:"sftp"`
}

// SFTPConfig describes where finished reports are uploaded.
type SFTPConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port" validate:"min=0,max=65535"`
	User      string `json:"user"`
	Pass      string `json:"pass"`
	RemoteDir string `json:"remote_dir"`
}

// Enabled reports whether enough is configured to attempt an upload.
func (s SFTPConfig) Enabled() bool {
	return s.Host != "" && s.User != ""
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN             string   `json:"dsn"`
	MaxConns        int32    `json:"max_conns" validate:"min=0"`
	MinConns        int32    `json:"min_conns" validate:"min=0"`
	MaxConnLifetime Duration `json:"max_conn_lifetime"`
	MaxConnIdleTime Duration `json:"max_conn_idle_time"`
	DialTimeout     Duration `json:"dial_timeout"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string `json:"grpc_addr"`
	// HTTPAddr enables the HTTP report surface when set.
	HTTPAddr string `json:"http_addr"`
}

// WatchConfig controls the daemon's directory watcher.
type WatchConfig struct {
	Dir      string   `json:"dir"`
	Debounce Duration `json:"debounce"`
	// Schedule is a standard five-field cron spec for periodic runs of Dir.
	Schedule string `json:"schedule"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `json:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `json:"format" validate:"omitempty,oneof=json text"`
}

// Duration is a time.Duration that decodes from strings like "500ms".
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// DefaultConfig returns the built-in configuration used when no file is given
// and as the base that a config file overlays.
func DefaultConfig() *Config {
	return &Config{
		FieldMapping: map[string][]string{
			"course_name": {"课程名称", "课程", "course_name", "course"},
			"instructor":  {"讲师", "教师", "授课人", "instructor", "teacher"},
			"hours":       {"课时", "时长", "学时", "hours"},
			"category":    {"分类", "类型", "课程性质", "category"},
			"week":        {"周次", "上课周", "week"},
			"location":    {"地点", "教室", "上课地点", "location"},
			"section":     {"节次", "section"},
			"time_period": {"时间段", "上课时间", "time_period"},
		},
		DedupeKeys:           []string{"course_name", "instructor"},
		TeacherBlacklist:     []string{},
		DepartmentBlacklist:  []string{"计算机", "数学", "电信", "大数据", "软件", "信息"},
		NameWhitelist:        []string{},
		HeaderMatchThreshold: 2,
		HeaderBlacklist:      []string{},
		Names: NameConfig{
			MinRunes:    2,
			MaxRunes:    6,
			MaxRawRunes: 30,
		},
		Database: DatabaseConfig{
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: Duration(30 * time.Minute),
			MaxConnIdleTime: Duration(5 * time.Minute),
			DialTimeout:     Duration(3 * time.Second),
		},
		Server: ServerConfig{GRPCAddr: ":8080"},
		Watch:  WatchConfig{Debounce: Duration(2 * time.Second)},
		Log:    LogConfig{Level: "info", Format: "json"},
	}
}

// LoadConfig builds the configuration: defaults, then the optional YAML/JSON
// file at path, then environment overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from a .env file into the process
// environment. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return WrapError(err, "load env file")
	}
	return nil
}

func (c *Config) overlayFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return NewAppError("CONFIG_ERROR", "read config file", err)
	}

	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(raw, &doc); err != nil {
			return NewAppError("CONFIG_ERROR", "parse json config", err)
		}
	default:
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return NewAppError("CONFIG_ERROR", "parse yaml config", err)
		}
	}
	if doc == nil {
		return nil
	}

	// Round-trip through JSON so YAML and JSON share one schema and one decoder.
	b, err := json.Marshal(doc)
	if err != nil {
		return NewAppError("CONFIG_ERROR", "normalize config", err)
	}
	if err := validateConfigDocument(b); err != nil {
		return NewAppError("CONFIG_ERROR", "config does not match schema", errors.Join(ErrInvalidInput, err))
	}
	if err := json.Unmarshal(b, c); err != nil {
		return NewAppError("CONFIG_ERROR", "decode config", err)
	}
	return nil
}

func validateConfigDocument(data []byte) error {
	b, err := json.Marshal(ConfigJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("config.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("config.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	return schema.Validate(v)
}

// ConfigJSONSchema returns the accepted shape of a config file.
func ConfigJSONSchema() map[string]any {
	stringList := map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
	duration := map[string]any{"type": "string", "pattern": `^(\d+(\.\d+)?(ns|us|µs|ms|s|m|h))+$`}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"field_mapping": map[string]any{
				"type":                 "object",
				"additionalProperties": stringList,
			},
			"dedupe_keys":            map[string]any{"type": "array", "minItems": 1, "items": map[string]any{"type": "string", "minLength": 1}},
			"teacher_blacklist":      stringList,
			"department_blacklist":   stringList,
			"name_whitelist":         stringList,
			"header_blacklist":       stringList,
			"header_match_threshold": map[string]any{"type": "integer", "minimum": 1},
			"names": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"min_runes":     map[string]any{"type": "integer", "minimum": 1},
					"max_runes":     map[string]any{"type": "integer", "minimum": 1},
					"max_raw_runes": map[string]any{"type": "integer", "minimum": 1},
				},
			},
			"output": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"path":         map[string]any{"type": "string"},
					"csv_path":     map[string]any{"type": "string"},
					"raw_csv_path": map[string]any{"type": "string"},
					"sftp":         map[string]any{"type": "object"},
				},
			},
			"database": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"dsn":                map[string]any{"type": "string"},
					"max_conns":          map[string]any{"type": "integer", "minimum": 0},
					"min_conns":          map[string]any{"type": "integer", "minimum": 0},
					"max_conn_lifetime":  duration,
					"max_conn_idle_time": duration,
					"dial_timeout":       duration,
				},
			},
			"server": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"grpc_addr": map[string]any{"type": "string"},
					"http_addr": map[string]any{"type": "string"},
				},
			},
			"watch": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"dir":      map[string]any{"type": "string"},
					"debounce": duration,
					"schedule": map[string]any{"type": "string"},
				},
			},
			"log": map[string]any{"type": "object"},
		},
	}
}

func (c *Config) applyEnv() {
	c.Database.DSN = getEnv("DB_URL", c.Database.DSN)
	c.Database.MaxConns = getEnvAsInt32("DB_MAX_CONNS", c.Database.MaxConns)
	c.Database.MinConns = getEnvAsInt32("DB_MIN_CONNS", c.Database.MinConns)
	c.Database.DialTimeout = Duration(getEnvAsDuration("DB_DIAL_TIMEOUT", c.Database.DialTimeout.Std()))
	c.Server.GRPCAddr = getEnv("GRPC_ADDR", c.Server.GRPCAddr)
	c.Server.HTTPAddr = getEnv("HTTP_ADDR", c.Server.HTTPAddr)
	c.Output.Path = getEnv("COURSESTAT_OUTPUT", c.Output.Path)
	c.Output.CSVPath = getEnv("COURSESTAT_CSV", c.Output.CSVPath)
	c.Output.RawCSVPath = getEnv("COURSESTAT_RAW_CSV", c.Output.RawCSVPath)
	c.Output.SFTP.Host = getEnv("SFTP_HOST", c.Output.SFTP.Host)
	c.Output.SFTP.Port = getEnvAsInt("SFTP_PORT", c.Output.SFTP.Port)
	c.Output.SFTP.User = getEnv("SFTP_USER", c.Output.SFTP.User)
	c.Output.SFTP.Pass = getEnv("SFTP_PASS", c.Output.SFTP.Pass)
	c.Output.SFTP.RemoteDir = getEnv("SFTP_DIR", c.Output.SFTP.RemoteDir)
	c.Watch.Dir = getEnv("COURSESTAT_WATCH_DIR", c.Watch.Dir)
	c.Watch.Debounce = Duration(getEnvAsDuration("COURSESTAT_WATCH_DEBOUNCE", c.Watch.Debounce.Std()))
	c.Watch.Schedule = getEnv("COURSESTAT_SCHEDULE", c.Watch.Schedule)
	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

var structValidator = validator.New()

// Validate checks the loaded configuration
func (c *Config) Validate() error {
	if err := structValidator.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return NewAppError("CONFIG_ERROR", strings.Join(msgs, "; "), ErrInvalidInput)
		}
		return NewAppError("CONFIG_ERROR", "validate config", err)
	}
	v := NewValidator()
	for target, aliases := range c.FieldMapping {
		v.Field("field_mapping."+target, len(aliases), MinCount(1))
	}
	if v.HasErrors() {
		return NewAppError("CONFIG_ERROR", v.ErrorMessage(), ErrInvalidInput)
	}
	return nil
}

// LogLevel maps the configured level name to a slog level.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// NewLogger builds the process logger from the log section.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel()}
	if strings.EqualFold(c.Log.Format, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// NewZapLogger builds the logger for the gRPC surface from the same log
// section as NewLogger.
func (c *Config) NewZapLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if strings.EqualFold(c.Log.Format, "text") {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	level := zapcore.InfoLevel
	switch c.LogLevel() {
	case slog.LevelDebug:
		level = zapcore.DebugLevel
	case slog.LevelWarn:
		level = zapcore.WarnLevel
	case slog.LevelError:
		level = zapcore.ErrorLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
