package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/joseph-ayodele/course-stats/gen/ent"
	"github.com/joseph-ayodele/course-stats/internal/common"
)

// MemoryDSN is a private in-memory SQLite database for one process.
const MemoryDSN = "file:coursestat?mode=memory&cache=shared&_pragma=foreign_keys(1)"

type Config struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ConfigFromApp maps the application database settings.
func ConfigFromApp(cfg common.DatabaseConfig) Config {
	return Config{
		DSN:             cfg.DSN,
		MaxConns:        cfg.MaxConns,
		MinConns:        cfg.MinConns,
		MaxConnLifetime: cfg.MaxConnLifetime.Std(),
		MaxConnIdleTime: cfg.MaxConnIdleTime.Std(),
		DialTimeout:     cfg.DialTimeout.Std(),
	}
}

// Store bundles the Ent client with the handle it was opened on.
type Store struct {
	Client  *ent.Client
	Dialect string

	pool *pgxpool.Pool
	db   *sql.DB
}

// DialectFor picks the Ent dialect from a DSN. postgres:// URLs and libpq
// key/value strings go to Postgres, everything else is a SQLite file.
func DialectFor(dsn string) (string, error) {
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "":
		return "", common.NewAppError("INVALID_DSN", "database dsn is empty", common.ErrInvalidInput)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host=") && strings.Contains(dsn, "dbname="):
		return dialect.Postgres, nil
	default:
		return dialect.SQLite, nil
	}
}

// sqliteDSN makes sure foreign keys are on; Ent's cascade edges rely on it.
func sqliteDSN(dsn string) string {
	dsn = strings.TrimPrefix(strings.TrimSpace(dsn), "sqlite://")
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// Open connects to Postgres through a pgx pool or to SQLite through
// modernc.org/sqlite, depending on the DSN.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	d, err := DialectFor(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}

	logger.Info("db.connect", "dialect", d)
	var st *Store
	if d == dialect.Postgres {
		st, err = openPostgres(ctx, cfg)
	} else {
		st, err = openSQLite(ctx, cfg)
	}
	if err != nil {
		logger.Error("db.connect.failed", "dialect", d, "err", err)
		return nil, common.NewAppError("DB_CONNECT", "connect "+d, fmt.Errorf("%w: %v", common.ErrDatabase, err))
	}
	logger.Info("db.connect.ok", "dialect", d)
	return st, nil
}

func openPostgres(ctx context.Context, cfg Config) (*Store, error) {
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	pc.MinConns = cfg.MinConns
	if cfg.MaxConnLifetime > 0 {
		pc.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	pc.ConnConfig.RuntimeParams["application_name"] = "course-stats"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = fmt.Sprint(cfg.StatementTimeout.Milliseconds())
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	// Wrap pool as *sql.DB for Ent
	db := stdlib.OpenDBFromPool(pool)
	drv := entsql.OpenDB(dialect.Postgres, db)
	return &Store{
		Client:  ent.NewClient(ent.Driver(drv)),
		Dialect: dialect.Postgres,
		pool:    pool,
		db:      db,
	}, nil
}

func openSQLite(ctx context.Context, cfg Config) (*Store, error) {
	db, err := sql.Open("sqlite", sqliteDSN(cfg.DSN))
	if err != nil {
		return nil, err
	}
	// SQLite serializes writers; one connection also keeps a memory
	// database alive for the life of the store.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	return &Store{
		Client:  ent.NewClient(ent.Driver(drv)),
		Dialect: dialect.SQLite,
		db:      db,
	}, nil
}

// Migrate creates or updates the runs and course_records tables.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.Client.Schema.Create(ctx); err != nil {
		return common.NewAppError("DB_MIGRATE", "migrate schema", fmt.Errorf("%w: %v", common.ErrDatabase, err))
	}
	return nil
}

// Close closes the database connections gracefully
func (s *Store) Close(logger *slog.Logger) {
	if s == nil {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("db.close")
	if s.Client != nil {
		if err := s.Client.Close(); err != nil {
			logger.Error("db.close.failed", "err", err)
		}
	}
	if s.pool != nil {
		s.pool.Close()
	}
}

// HealthCheck pings the underlying connection to catch DSN issues early.
func (s *Store) HealthCheck(ctx context.Context, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if s.pool != nil {
		return s.pool.Ping(ctx)
	}
	return s.db.PingContext(ctx)
}

// Init opens the configured store, or a private in-memory SQLite database
// when inmem is set, and migrates it.
func Init(ctx context.Context, cfg Config, inmem bool, logger *slog.Logger) (*Store, error) {
	if inmem {
		cfg.DSN = MemoryDSN
	}
	st, err := Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close(logger)
		return nil, err
	}
	return st, nil
}
