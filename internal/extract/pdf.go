package extract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/reader"
	"github.com/tsawler/tabula/tables"

	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/entity"
)

// PDFExtractor detects table grids on each page of a text PDF. Every detected
// table is treated as a weekday timetable.
type PDFExtractor struct {
	detector tables.Detector
	logger   *slog.Logger
}

// NewPDFExtractor creates a PDF reader using geometric table detection.
func NewPDFExtractor(logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{detector: tables.NewGeometricDetector(), logger: logger}
}

// Extract returns the tables of every page. Page failures become warnings.
func (p *PDFExtractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	res := ExtractionResult{Method: "pdf-geometric"}

	r, err := reader.Open(path)
	if err != nil {
		return res, common.NewAppError("SOURCE_READ", "open pdf "+path, fmt.Errorf("%w: %v", common.ErrSourceRead, err))
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			p.logger.Warn("extract.pdf.close_failed", "path", path, "err", cerr)
		}
	}()

	count, err := r.PageCount()
	if err != nil {
		return res, common.NewAppError("SOURCE_READ", "count pages "+path, fmt.Errorf("%w: %v", common.ErrSourceRead, err))
	}

	file := filepath.Base(path)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Units++
		unit := fmt.Sprintf("第%d页", i+1)

		found, err := p.readPage(r, i)
		if err != nil {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("page %d: %v", i+1, err))
			p.logger.Warn("extract.pdf.page_failed", "file", file, "unit", unit, "err", err)
			continue
		}
		for j, tbl := range found {
			rows := tableRows(tbl)
			if len(rows) == 0 {
				continue
			}
			res.Tables = append(res.Tables, entity.Table{
				SourceFile: file,
				Unit:       unit,
				Page:       i + 1,
				Index:      j + 1,
				Rows:       rows,
				HeaderRow:  -1,
			})
		}
	}
	return res, nil
}

func (p *PDFExtractor) readPage(r *reader.Reader, index int) (found []*model.Table, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: panic: %v", common.ErrSourceRead, rec)
		}
	}()

	pg, err := r.GetPage(index)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrSourceRead, err)
	}
	frags, err := r.ExtractTextFragments(pg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrSourceRead, err)
	}
	w, err := pg.Width()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrSourceRead, err)
	}
	h, err := pg.Height()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrSourceRead, err)
	}

	page := model.NewPage(w, h)
	page.Number = index + 1
	for _, f := range frags {
		page.RawText = append(page.RawText, model.TextFragment{
			Text:     f.Text,
			BBox:     model.NewBBox(f.X, f.Y, f.Width, f.Height),
			FontSize: f.FontSize,
			FontName: f.FontName,
		})
	}
	return p.detector.Detect(page)
}

func tableRows(t *model.Table) [][]string {
	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		empty := true
		for i, c := range row {
			cells[i] = NormalizeCell(c.Text)
			if cells[i] != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, cells)
		}
	}
	return rows
}
