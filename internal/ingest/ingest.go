// Package ingest discovers timetable source files on disk.
package ingest

import (
	"time"

	"github.com/joseph-ayodele/course-stats/constants"
)

// SourceFile is one discovered input file.
type SourceFile struct {
	Path    string
	Ext     string
	Kind    constants.SourceKind
	HashHex string
	Size    int64
	ModTime time.Time
	// Duplicate names the earlier path with identical content, if any.
	Duplicate string
	Err       string
}

// DirStats summarizes a directory scan.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Unsupported  uint32
	Deduplicated uint32
	Failed       uint32
}

// ScanOptions controls ScanDirectory.
type ScanOptions struct {
	SkipHidden bool
	// Dedupe drops files whose content hash matches an earlier file.
	Dedupe bool
}
