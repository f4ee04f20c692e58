// Package extract reads source files into raw cell tables.
package extract

import (
	"context"
	"time"

	"github.com/joseph-ayodele/course-stats/internal/entity"
)

// TableExtractor turns one source file into zero or more cell tables.
type TableExtractor interface {
	Extract(ctx context.Context, path string) (ExtractionResult, error)
}

// ExtractionResult holds the tables of one file. A unit is a sheet or a page;
// units that failed to read are counted in Skipped and described in Warnings.
type ExtractionResult struct {
	Tables   []entity.Table
	Units    int
	Skipped  int
	Method   string // "xlsx" | "pdf-geometric"
	Duration time.Duration
	Warnings []string
}
