package export

import (
	"context"
	"path/filepath"

	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/entity"
)

// Bundle is everything a finished run can export.
type Bundle struct {
	Raw     []entity.RawCourseRecord
	Cleaned []entity.CleanedCourseRecord
	Stats   entity.AggregateStatistics
}

// Written lists the files produced by WriteAll.
type Written struct {
	Workbook string
	CSV      string
	RawCSV   string
}

// WriteAll writes every configured output. A missing workbook path is
// reported once and is not an error.
func (s *Service) WriteAll(ctx context.Context, out common.OutputConfig, b Bundle) (Written, error) {
	var w Written
	if out.Path == "" {
		s.logger.Warn("export.output.missing", "hint", "set output.path or pass -out to write the workbook")
	} else {
		if err := s.WriteWorkbookFile(ctx, out.Path, b.Cleaned, b.Stats); err != nil {
			return w, common.WrapError(err, "export workbook")
		}
		w.Workbook = out.Path
	}

	if out.CSVPath != "" {
		if err := WriteCSVFile(out.CSVPath, b.Cleaned); err != nil {
			return w, common.WrapError(err, "export csv")
		}
		w.CSV = out.CSVPath
		s.logger.Info("export.csv.ok", "path", out.CSVPath, "rows", len(b.Cleaned))
	}
	if out.RawCSVPath != "" {
		if err := WriteRawCSVFile(out.RawCSVPath, b.Raw); err != nil {
			return w, common.WrapError(err, "export raw csv")
		}
		w.RawCSV = out.RawCSVPath
		s.logger.Info("export.raw_csv.ok", "path", out.RawCSVPath, "rows", len(b.Raw))
	}
	return w, nil
}

// Upload sends every written file to the configured SFTP target.
func (s *Service) Upload(ctx context.Context, cfg common.SFTPConfig, w Written) error {
	for _, p := range []string{w.Workbook, w.CSV, w.RawCSV} {
		if p == "" {
			continue
		}
		if err := UploadSFTP(ctx, cfg, p, filepath.Base(p)); err != nil {
			s.logger.Error("export.sftp.failed", "path", p, "err", err)
			return err
		}
		s.logger.Info("export.sftp.ok", "path", p, "host", cfg.Host, "remote_dir", cfg.RemoteDir)
	}
	return nil
}
