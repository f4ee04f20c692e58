package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joseph-ayodele/course-stats/internal/clean"
	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/export"
	"github.com/joseph-ayodele/course-stats/internal/extract"
	"github.com/joseph-ayodele/course-stats/internal/pipeline"
	"github.com/joseph-ayodele/course-stats/internal/recovery"
	repo "github.com/joseph-ayodele/course-stats/internal/repository"
	"github.com/joseph-ayodele/course-stats/internal/services/batch"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML or JSON config file (optional)")
		envFile    = flag.String("env", ".env", "dotenv file to load before reading config")
		dir        = flag.String("dir", "", "directory of timetable files (required)")
		out        = flag.String("out", "", "statistics workbook path (.xlsx)")
		csvPath    = flag.String("csv", "", "cleaned records CSV path; a .br suffix compresses it")
		rawCSV     = flag.String("raw-csv", "", "raw records CSV path for auditing")
		dedupe     = flag.String("dedupe", "", "comma-separated dedupe keys, e.g. 课程名称,讲师")
		dbDSN      = flag.String("db", "", "persist the run to this database (postgres:// URL or SQLite file)")
		inmem      = flag.Bool("inmem", false, "persist the run to an in-memory SQLite database")
		upload     = flag.Bool("upload", false, "upload written files over SFTP")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: -dir is required\n")
		flag.Usage()
		os.Exit(2)
	}

	if err := common.LoadDotEnv(*envFile); err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := common.LoadConfig(*configPath)
	if err != nil {
		printError("Error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, *out, *csvPath, *rawCSV, *dedupe, *dbDSN)

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cleaner, err := clean.NewCleaner(clean.OptionsFromConfig(cfg), logger)
	if err != nil {
		logger.Error("invalid dedupe keys", "error", err)
		os.Exit(1)
	}
	stage := pipeline.NewExtractStage(
		extract.NewExtractor(extract.ConfigFromApp(cfg), logger),
		recovery.NewEngine(recovery.OptionsFromConfig(cfg), logger),
		logger,
	)

	var opts []pipeline.Option
	if cfg.Database.DSN != "" || *inmem {
		store, err := repo.Init(ctx, repo.ConfigFromApp(cfg.Database), *inmem, logger)
		if err != nil {
			logger.Error("failed to initialize database", "error", err)
			os.Exit(1)
		}
		defer store.Close(logger)
		opts = append(opts, pipeline.WithRecorder(repo.NewRunRepository(store.Client, logger)))
	}

	proc := pipeline.NewProcessor(logger, stage, cleaner, opts...)
	svc := batch.NewService(proc, export.NewService(logger), cfg.Output, logger)

	rep, err := svc.Run(ctx, batch.Request{Root: *dir, Upload: *upload})
	if rep != nil && rep.Result != nil {
		printSummary(os.Stdout, rep)
	}
	if err != nil {
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}
}

func applyFlags(cfg *common.Config, out, csvPath, rawCSV, dedupe, dsn string) {
	if out != "" {
		cfg.Output.Path = out
	}
	if csvPath != "" {
		cfg.Output.CSVPath = csvPath
	}
	if rawCSV != "" {
		cfg.Output.RawCSVPath = rawCSV
	}
	if dsn != "" {
		cfg.Database.DSN = dsn
	}
	if dedupe != "" {
		var keys []string
		for _, k := range strings.Split(dedupe, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		cfg.DedupeKeys = keys
	}
}

func printSummary(w io.Writer, rep *batch.Report) {
	s := rep.Result.Summary
	st := rep.Result.Stats
	fmt.Fprintf(w, "run %s: %s\n", rep.Result.RunID, s.Status())
	fmt.Fprintf(w, "  files:   %d scanned, %d failed\n", s.FilesScanned, s.FilesFailed)
	fmt.Fprintf(w, "  units:   %d processed, %d skipped\n", s.UnitsProcessed, s.UnitsSkipped)
	fmt.Fprintf(w, "  records: %d raw, %d invalid, %d cleaned\n", s.RawRecords, s.InvalidRecords, s.CleanedRecords)
	fmt.Fprintf(w, "  courses: %d, hours: %d, instructors: %d, categories: %d\n",
		st.TotalCourses, st.TotalHours, st.DistinctInstructors, st.DistinctCategories)
	for _, f := range rep.Result.Failures {
		fmt.Fprintf(w, "  failed:  %s (%s)\n", f.Path, f.Error)
	}
	for _, p := range []string{rep.Written.Workbook, rep.Written.CSV, rep.Written.RawCSV} {
		if p != "" {
			fmt.Fprintf(w, "  wrote:   %s\n", p)
		}
	}
	if rep.Uploaded {
		fmt.Fprintln(w, "  uploaded over sftp")
	}
}
