package ingest

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/course-stats/constants"
	"github.com/joseph-ayodele/course-stats/internal/common"
)

// ScanDirectory walks root in lexical order and returns the readable source
// files under it. Unreadable entries are reported in the results with Err set
// and never stop the walk.
func ScanDirectory(ctx context.Context, root string, opts ScanOptions) ([]SourceFile, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, common.NewAppError("INVALID_ROOT", "root path is required", common.ErrInvalidInput)
	}

	var (
		results []SourceFile
		stats   DirStats
		seen    = map[string]string{}
	)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats.Scanned++
		if walkErr != nil {
			results = append(results, SourceFile{Path: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if path != root && opts.SkipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || IsLockFile(path) {
			return nil
		}

		ext := constants.NormalizeExt(filepath.Ext(path))
		if UnsupportedExt(ext) {
			results = append(results, SourceFile{Path: path, Ext: ext, Err: "unsupported legacy format; convert to xlsx"})
			stats.Unsupported++
			return nil
		}
		kind, ok := constants.KindForExt(ext)
		if !ok {
			return nil
		}
		stats.Matched++

		sf := SourceFile{Path: path, Ext: ext, Kind: kind}
		if info, err := d.Info(); err == nil {
			sf.ModTime = info.ModTime()
		}
		sum, size, err := HashFile(path)
		if err != nil {
			sf.Err = err.Error()
			results = append(results, sf)
			stats.Failed++
			return nil
		}
		sf.HashHex, sf.Size = sum, size

		if first, dup := seen[sum]; dup && opts.Dedupe {
			sf.Duplicate = first
			stats.Deduplicated++
		} else if !dup {
			seen[sum] = path
		}
		results = append(results, sf)
		return nil
	})
	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

// Readable returns the paths that should be processed: no error and not a
// duplicate of an earlier file.
func Readable(files []SourceFile) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		if f.Err == "" && f.Duplicate == "" {
			out = append(out, f.Path)
		}
	}
	return out
}
