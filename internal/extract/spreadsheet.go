package extract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/entity"
)

// SpreadsheetExtractor reads every sheet of an xlsx/xlsm workbook.
type SpreadsheetExtractor struct {
	header *HeaderDetector
	logger *slog.Logger
}

// NewSpreadsheetExtractor creates a workbook reader.
func NewSpreadsheetExtractor(cfg Config, logger *slog.Logger) *SpreadsheetExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpreadsheetExtractor{
		header: NewHeaderDetector(cfg.FieldMapping, cfg.HeaderMatchThreshold),
		logger: logger,
	}
}

// Extract returns one table per readable, non-empty sheet. A sheet that fails
// to read is skipped with a warning; only failing to open the workbook is an
// error.
func (s *SpreadsheetExtractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	res := ExtractionResult{Method: "xlsx"}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return res, common.NewAppError("SOURCE_READ", "open workbook "+path, fmt.Errorf("%w: %v", common.ErrSourceRead, err))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.logger.Warn("extract.xlsx.close_failed", "path", path, "err", cerr)
		}
	}()

	file := filepath.Base(path)
	for _, sheet := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Units++

		rows, err := s.readSheet(f, sheet)
		if err != nil {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("sheet %s: %v", sheet, err))
			s.logger.Warn("extract.xlsx.sheet_failed", "file", file, "unit", sheet, "err", err)
			continue
		}
		if len(rows) == 0 {
			continue
		}
		res.Tables = append(res.Tables, s.tableFor(file, sheet, rows))
	}
	return res, nil
}

// readSheet isolates a panicking reader to the sheet it was reading.
func (s *SpreadsheetExtractor) readSheet(f *excelize.File, sheet string) (rows [][]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", common.ErrSourceRead, r)
		}
	}()
	rows, err = f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrSourceRead, err)
	}
	normalizeRows(rows)
	return rows, nil
}

func (s *SpreadsheetExtractor) tableFor(file, sheet string, rows [][]string) entity.Table {
	t := entity.Table{SourceFile: file, Unit: sheet, Index: 1, HeaderRow: -1}
	if idx, cols := s.header.Detect(rows); idx >= 0 {
		t.HeaderRow = idx
		t.Columns = cols
		t.Rows = rows
		return t
	}
	t.Rows = rows[GridStart(rows):]
	return t
}
