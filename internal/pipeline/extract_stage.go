package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/entity"
	"github.com/joseph-ayodele/course-stats/internal/extract"
	"github.com/joseph-ayodele/course-stats/internal/recovery"
)

// FileOutcome is what one source file contributed to a run.
type FileOutcome struct {
	Path     string
	Method   string
	Units    int
	Skipped  int
	Tables   int
	Raw      []entity.RawCourseRecord
	Invalid  int
	Warnings []string
}

// ExtractStage reads one file into raw records.
type ExtractStage struct {
	Extractor extract.TableExtractor
	Engine    *recovery.Engine
	Logger    *slog.Logger
}

func NewExtractStage(x extract.TableExtractor, engine *recovery.Engine, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{Extractor: x, Engine: engine, Logger: logger}
}

// Run extracts tables from path and recovers raw records from each. A panic
// anywhere below is turned into an error for this file only.
func (s *ExtractStage) Run(ctx context.Context, path string) (out FileOutcome, err error) {
	out.Path = path
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic while reading %s: %v", common.ErrSourceRead, filepath.Base(path), r)
		}
	}()

	res, err := s.Extractor.Extract(ctx, path)
	out.Method = res.Method
	out.Units = res.Units
	out.Skipped = res.Skipped
	out.Tables = len(res.Tables)
	out.Warnings = res.Warnings
	if err != nil {
		return out, err
	}

	for _, t := range res.Tables {
		for _, rec := range s.Engine.ProcessTable(t) {
			if msg := validateRaw(rec); msg != "" {
				out.Invalid++
				s.Logger.Debug("pipeline.raw.invalid", "locator", rec.SourceLocator, "reason", msg)
				continue
			}
			out.Raw = append(out.Raw, rec)
		}
	}
	return out, nil
}

// validateRaw checks that a recovered record can be traced to its source.
func validateRaw(rec entity.RawCourseRecord) string {
	v := common.NewValidator().
		Field("source_file", rec.SourceFile, common.Required).
		Field("sheet_or_page", rec.SheetOrPage, common.Required).
		Field("source_locator", rec.SourceLocator, common.Required).
		Field("course_name", rec.CourseName, common.Required)
	return v.ErrorMessage()
}
