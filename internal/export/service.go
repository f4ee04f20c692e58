// Package export writes cleaned records and statistics to workbooks and CSV.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/course-stats/internal/entity"
)

// Sheet names of the statistics workbook.
const (
	SheetDetail      = "详细课程数据"
	SheetBasic       = "基础统计"
	SheetInstructors = "讲师分布"
	SheetCategories  = "分类分布"
	SheetWeeks       = "周次分布"
)

var detailHeaders = []string{
	"文件来源", "sheet/页码", "来源标识", "课程名称", "讲师", "来源原文", "课时",
	"分类", "周次", "地点", "节次", "时间段", "备注",
}

// Service renders exports. It is stateless apart from its logger.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// WorkbookXLSX returns the statistics workbook as bytes. The week sheet is
// only present when there is week data.
func (s *Service) WorkbookXLSX(ctx context.Context, records []entity.CleanedCourseRecord, st entity.AggregateStatistics) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetDetail); err != nil {
		return nil, err
	}
	if err := writeDetail(f, records); err != nil {
		return nil, fmt.Errorf("write %s: %w", SheetDetail, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	basic := [][]any{
		{"总课程数", st.TotalCourses},
		{"总课时(小时)", st.TotalHours},
		{"涉及讲师数", st.DistinctInstructors},
		{"涉及分类数", st.DistinctCategories},
		{"涉及周次种类", st.DistinctWeekTokens},
	}
	if err := writeTable(f, SheetBasic, []string{"统计项", "数值"}, basic); err != nil {
		return nil, err
	}
	if err := writeTable(f, SheetInstructors, []string{"讲师", "课程数量"}, bucketRows(st.Instructors)); err != nil {
		return nil, err
	}
	if err := writeTable(f, SheetCategories, []string{"分类(星期-时间段)", "课程数量"}, bucketRows(st.Categories)); err != nil {
		return nil, err
	}
	if len(st.Weeks) > 0 {
		if err := writeTable(f, SheetWeeks, []string{"周次", "课程数量"}, bucketRows(st.Weeks)); err != nil {
			return nil, err
		}
	}

	idx, _ := f.GetSheetIndex(SheetDetail)
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	s.logger.Info("export.xlsx.ok",
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// WriteWorkbookFile renders the workbook and writes it to path atomically.
func (s *Service) WriteWorkbookFile(ctx context.Context, path string, records []entity.CleanedCourseRecord, st entity.AggregateStatistics) error {
	b, err := s.WorkbookXLSX(ctx, records, st)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, func(w io.Writer) error {
		_, err := w.Write(b)
		return err
	})
}

func writeDetail(f *excelize.File, records []entity.CleanedCourseRecord) error {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{
			r.SourceFile, r.SheetOrPage, r.SourceLocator, r.CourseName, r.Instructor,
			truncate(r.SourceOriginalNameText, 140), r.Hours, r.Category, r.Week,
			r.Location, r.Section, r.TimePeriod, r.Note,
		})
	}
	if err := fillSheet(f, SheetDetail, detailHeaders, rows); err != nil {
		return err
	}
	_ = f.SetColWidth(SheetDetail, "A", "B", 22) // source
	_ = f.SetColWidth(SheetDetail, "C", "C", 40) // locator
	_ = f.SetColWidth(SheetDetail, "D", "D", 28) // course
	_ = f.SetColWidth(SheetDetail, "F", "F", 48) // original text
	_ = f.SetColWidth(SheetDetail, "H", "M", 16)
	return nil
}

func writeTable(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := fillSheet(f, sheet, headers, rows); err != nil {
		return fmt.Errorf("write %s: %w", sheet, err)
	}
	_ = f.SetColWidth(sheet, "A", "A", 24)
	_ = f.SetColWidth(sheet, "B", "B", 12)
	return nil
}

func fillSheet(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	head := make([]any, len(headers))
	for i, h := range headers {
		head[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func bucketRows(buckets []entity.Bucket) [][]any {
	rows := make([][]any, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []any{b.Key, b.Count})
	}
	return rows
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
