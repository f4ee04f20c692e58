package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Run represents one batch pipeline execution for data transfer between layers.
type Run struct {
	ID             uuid.UUID       `json:"id"`
	InputRoot      string          `json:"input_root"`
	StartedAt      time.Time       `json:"started_at"`
	FinishedAt     *time.Time      `json:"finished_at,omitempty"`
	Status         string          `json:"status"`
	ErrorMessage   *string         `json:"error_message,omitempty"`
	FilesScanned   int             `json:"files_scanned"`
	FilesFailed    int             `json:"files_failed"`
	UnitsProcessed int             `json:"units_processed"`
	UnitsSkipped   int             `json:"units_skipped"`
	RawRecords     int             `json:"raw_records"`
	CleanedRecords int             `json:"cleaned_records"`
	TotalHours     int             `json:"total_hours"`
	Stats          json.RawMessage `json:"stats,omitempty"`
}
