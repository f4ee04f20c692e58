package extract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/course-stats/constants"
	"github.com/joseph-ayodele/course-stats/internal/common"
)

// Config holds the header detection settings shared by the readers.
type Config struct {
	FieldMapping         map[string][]string
	HeaderMatchThreshold int
}

// ConfigFromApp derives extractor settings from the application config.
func ConfigFromApp(cfg *common.Config) Config {
	return Config{
		FieldMapping:         cfg.FieldMapping,
		HeaderMatchThreshold: cfg.HeaderMatchThreshold,
	}
}

// Extractor routes a file to the spreadsheet or PDF reader by extension.
type Extractor struct {
	sheets TableExtractor
	pdfs   TableExtractor
	logger *slog.Logger
}

// NewExtractor wires the default readers.
func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		sheets: NewSpreadsheetExtractor(cfg, logger),
		pdfs:   NewPDFExtractor(logger),
		logger: logger,
	}
}

// Extract picks a reader based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("extract.start", "path", path, "ext", ext)

	var (
		res ExtractionResult
		err error
	)
	kind, ok := constants.KindForExt(ext)
	switch {
	case ok && kind == constants.SourceSpreadsheet:
		res, err = e.sheets.Extract(ctx, path)
	case ok && kind == constants.SourcePDF:
		res, err = e.pdfs.Extract(ctx, path)
	default:
		e.logger.Warn("extract.unsupported", "path", path, "ext", ext)
		return ExtractionResult{}, common.NewAppError("UNSUPPORTED_SOURCE",
			fmt.Sprintf("unsupported extension %q", ext), common.ErrUnsupported)
	}
	res.Duration = time.Since(start)
	return res, err
}
