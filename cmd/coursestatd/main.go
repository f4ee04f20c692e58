package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/joseph-ayodele/course-stats/internal/async"
	"github.com/joseph-ayodele/course-stats/internal/clean"
	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/export"
	"github.com/joseph-ayodele/course-stats/internal/extract"
	"github.com/joseph-ayodele/course-stats/internal/httpapi"
	"github.com/joseph-ayodele/course-stats/internal/ingest"
	"github.com/joseph-ayodele/course-stats/internal/pipeline"
	"github.com/joseph-ayodele/course-stats/internal/recovery"
	repo "github.com/joseph-ayodele/course-stats/internal/repository"
	"github.com/joseph-ayodele/course-stats/internal/server"
	"github.com/joseph-ayodele/course-stats/internal/services/batch"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML or JSON config file (optional)")
		envFile    = flag.String("env", ".env", "dotenv file to load before reading config")
		upload     = flag.Bool("upload", false, "upload reports after watcher-triggered runs")
	)
	flag.Parse()

	if err := common.LoadDotEnv(*envFile); err != nil {
		slog.Error("load env", "error", err)
		os.Exit(1)
	}
	cfg, err := common.LoadConfig(*configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)
	zlog, err := cfg.NewZapLogger()
	if err != nil {
		logger.Error("build grpc logger", "error", err)
		os.Exit(1)
	}
	defer func() { _ = zlog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cleaner, err := clean.NewCleaner(clean.OptionsFromConfig(cfg), logger)
	if err != nil {
		logger.Error("invalid cleaner config", "error", err)
		os.Exit(1)
	}
	stage := pipeline.NewExtractStage(
		extract.NewExtractor(extract.ConfigFromApp(cfg), logger),
		recovery.NewEngine(recovery.OptionsFromConfig(cfg), logger),
		logger,
	)

	var (
		procOpts []pipeline.Option
		svcOpts  []server.Option
		runs     httpapi.RunReader
	)
	if cfg.Database.DSN != "" {
		store, err := repo.Init(ctx, repo.ConfigFromApp(cfg.Database), false, logger)
		if err != nil {
			logger.Error("failed to initialize database", "error", err)
			os.Exit(1)
		}
		defer store.Close(logger)
		if err := store.HealthCheck(ctx, cfg.Database.DialTimeout.Std()); err != nil {
			logger.Error("database health check failed", "error", err)
			os.Exit(1)
		}
		runRepo := repo.NewRunRepository(store.Client, logger)
		procOpts = append(procOpts, pipeline.WithRecorder(runRepo))
		svcOpts = append(svcOpts, server.WithRunReader(runRepo))
		runs = runRepo
	} else {
		logger.Warn("database not configured; runs are kept in memory only")
	}

	proc := pipeline.NewProcessor(logger, stage, cleaner, procOpts...)
	batches := batch.NewService(proc, export.NewService(logger), cfg.Output, logger)

	queue := async.NewRunQueue(func(ctx context.Context, job async.Job) error {
		_, err := batches.Run(ctx, batch.Request{Root: job.Root, Upload: job.Upload})
		return err
	}, logger)
	svcOpts = append(svcOpts, server.WithQueue(queue))

	if cfg.Watch.Dir != "" {
		if err := watch(ctx, cfg.Watch, queue, *upload, logger); err != nil {
			logger.Error("failed to start watcher", "dir", cfg.Watch.Dir, "error", err)
			os.Exit(1)
		}
		if cfg.Watch.Schedule != "" {
			sched, err := async.StartSchedule(cfg.Watch.Schedule, queue, async.Job{Root: cfg.Watch.Dir, Upload: *upload}, logger)
			if err != nil {
				logger.Error("failed to start schedule", "spec", cfg.Watch.Schedule, "error", err)
				os.Exit(1)
			}
			defer sched.Stop()
		}
	}

	var httpApp *fiber.App
	if cfg.Server.HTTPAddr != "" {
		httpApp = httpapi.New(httpapi.Deps{Reports: batches, Queue: queue, Runs: runs, Logger: logger})
		go func() {
			logger.Info("HTTP serving", "addr", cfg.Server.HTTPAddr)
			if err := httpApp.Listen(cfg.Server.HTTPAddr); err != nil {
				logger.Error("http serve", "error", err)
			}
		}()
	}

	gs, hs := server.NewGRPCServer(server.NewStatsService(batches, zlog, svcOpts...), zlog)
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("gRPC serving", "addr", lis.Addr().String())
		serveErr <- gs.Serve(lis)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			logger.Error("grpc serve", "error", err)
		}
	}

	logger.Info("shutting down")
	hs.Shutdown()
	if httpApp != nil {
		if err := httpApp.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Warn("http shutdown", "error", err)
		}
	}
	stopped := make(chan struct{})
	go func() { gs.GracefulStop(); close(stopped) }()
	select {
	case <-stopped:
	case <-time.After(10 * time.Second):
		gs.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	logger.Info("stopped")
}

// watch queues a run of the whole directory after each debounced change.
// Changes seen while a run is already pending are dropped; the pending run
// will pick them up.
func watch(ctx context.Context, cfg common.WatchConfig, q async.Queue, upload bool, logger *slog.Logger) error {
	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:    []string{cfg.Dir},
		Debounce: cfg.Debounce.Std(),
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	go func() {
		for {
			select {
			case path, ok := <-events:
				if !ok {
					return
				}
				err := q.Enqueue(ctx, async.Job{Root: cfg.Dir, Upload: upload, SubmittedAt: time.Now()})
				switch {
				case errors.Is(err, common.ErrBusy):
					logger.Debug("watch.change.coalesced", "path", path)
				case err != nil:
					logger.Warn("watch.enqueue.failed", "path", path, "error", err)
				default:
					logger.Info("watch.change.queued", "path", path)
				}
			case err, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				logger.Warn("watch.error", "error", err)
			}
		}
	}()
	return nil
}
