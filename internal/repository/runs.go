package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/course-stats/constants"
	"github.com/joseph-ayodele/course-stats/gen/ent"
	"github.com/joseph-ayodele/course-stats/gen/ent/courserecord"
	"github.com/joseph-ayodele/course-stats/gen/ent/run"
	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/entity"
)

// bulkChunk bounds a single INSERT; 16 columns x 500 rows stays under
// SQLite's bound-parameter limit.
const bulkChunk = 500

type RunRepository interface {
	Start(ctx context.Context, r entity.Run) error
	Finish(ctx context.Context, r entity.Run, records []entity.CleanedCourseRecord) error
	Fail(ctx context.Context, runID uuid.UUID, message string) error
	SaveRecords(ctx context.Context, runID uuid.UUID, records []entity.CleanedCourseRecord) error
	Get(ctx context.Context, runID uuid.UUID) (entity.Run, error)
	Latest(ctx context.Context) (entity.Run, error)
	Recent(ctx context.Context, limit int) ([]entity.Run, error)
	Records(ctx context.Context, runID uuid.UUID) ([]entity.CleanedCourseRecord, error)
}

type runRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewRunRepository(entc *ent.Client, log *slog.Logger) RunRepository {
	if log == nil {
		log = slog.Default()
	}
	return &runRepo{ent: entc, log: log}
}

func (r *runRepo) Start(ctx context.Context, in entity.Run) error {
	status := in.Status
	if status == "" {
		status = string(constants.RunStatusRunning)
	}
	started := in.StartedAt
	if started.IsZero() {
		started = time.Now().UTC()
	}
	_, err := r.ent.Run.
		Create().
		SetID(in.ID).
		SetInputRoot(in.InputRoot).
		SetStartedAt(started).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		r.log.Error("run.start.failed", "run_id", in.ID, "err", err)
		return err
	}
	r.log.Info("run.started", "run_id", in.ID, "root", in.InputRoot)
	return nil
}

// Finish stores the counters and the cleaned records in one transaction.
func (r *runRepo) Finish(ctx context.Context, in entity.Run, records []entity.CleanedCourseRecord) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return err
	}
	if err := finishTx(ctx, tx, in, records); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rollback: %v", err, rerr)
		}
		r.log.Error("run.finish.failed", "run_id", in.ID, "err", err)
		return err
	}
	if err := tx.Commit(); err != nil {
		r.log.Error("run.finish.failed", "run_id", in.ID, "err", err)
		return err
	}
	r.log.Info("run.finished", "run_id", in.ID, "status", in.Status, "records", len(records))
	return nil
}

func finishTx(ctx context.Context, tx *ent.Tx, in entity.Run, records []entity.CleanedCourseRecord) error {
	finished := time.Now().UTC()
	if in.FinishedAt != nil {
		finished = *in.FinishedAt
	}
	upd := tx.Run.
		UpdateOneID(in.ID).
		SetFinishedAt(finished).
		SetStatus(in.Status).
		SetFilesScanned(in.FilesScanned).
		SetFilesFailed(in.FilesFailed).
		SetUnitsProcessed(in.UnitsProcessed).
		SetUnitsSkipped(in.UnitsSkipped).
		SetRawRecords(in.RawRecords).
		SetCleanedRecords(in.CleanedRecords).
		SetTotalHours(in.TotalHours)
	if len(in.Stats) > 0 {
		upd.SetStats(in.Stats)
	}
	if in.ErrorMessage != nil {
		upd.SetErrorMessage(*in.ErrorMessage)
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("update run: %w", err)
	}

	return insertRecords(ctx, tx.CourseRecord, in.ID, records)
}

// SaveRecords stores the records of a run that has none yet; positions
// start at zero.
func (r *runRepo) SaveRecords(ctx context.Context, runID uuid.UUID, records []entity.CleanedCourseRecord) error {
	if err := insertRecords(ctx, r.ent.CourseRecord, runID, records); err != nil {
		r.log.Error("run.records.save_failed", "run_id", runID, "err", err)
		return err
	}
	return nil
}

func insertRecords(ctx context.Context, c *ent.CourseRecordClient, runID uuid.UUID, records []entity.CleanedCourseRecord) error {
	for lo := 0; lo < len(records); lo += bulkChunk {
		hi := min(lo+bulkChunk, len(records))
		builders := make([]*ent.CourseRecordCreate, 0, hi-lo)
		for i := lo; i < hi; i++ {
			rec := records[i]
			builders = append(builders, c.Create().
				SetRunID(runID).
				SetPosition(i).
				SetCourseName(rec.CourseName).
				SetInstructor(rec.Instructor).
				SetHours(rec.Hours).
				SetCategory(rec.Category).
				SetWeek(rec.Week).
				SetLocation(rec.Location).
				SetSection(rec.Section).
				SetTimePeriod(rec.TimePeriod).
				SetNote(rec.Note).
				SetSourceFile(rec.SourceFile).
				SetSheetOrPage(rec.SheetOrPage).
				SetSourceLocator(rec.SourceLocator).
				SetSourceText(rec.SourceOriginalNameText))
		}
		if err := c.CreateBulk(builders...).Exec(ctx); err != nil {
			return fmt.Errorf("insert records %d-%d: %w", lo, hi, err)
		}
	}
	return nil
}

func (r *runRepo) Fail(ctx context.Context, runID uuid.UUID, message string) error {
	err := r.ent.Run.
		UpdateOneID(runID).
		SetFinishedAt(time.Now().UTC()).
		SetStatus(string(constants.RunStatusFailed)).
		SetErrorMessage(message).
		Exec(ctx)
	if err != nil {
		r.log.Error("run.fail.failed", "run_id", runID, "err", err)
		return err
	}
	r.log.Warn("run.failed", "run_id", runID, "error", message)
	return nil
}

func (r *runRepo) Get(ctx context.Context, runID uuid.UUID) (entity.Run, error) {
	row, err := r.ent.Run.Get(ctx, runID)
	if err != nil {
		return entity.Run{}, notFound(err, "run "+runID.String())
	}
	return toEntityRun(row), nil
}

func (r *runRepo) Latest(ctx context.Context) (entity.Run, error) {
	row, err := r.ent.Run.Query().
		Order(ent.Desc(run.FieldStartedAt)).
		First(ctx)
	if err != nil {
		return entity.Run{}, notFound(err, "latest run")
	}
	return toEntityRun(row), nil
}

func (r *runRepo) Recent(ctx context.Context, limit int) ([]entity.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.ent.Run.Query().
		Order(ent.Desc(run.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Run, len(rows))
	for i, row := range rows {
		out[i] = toEntityRun(row)
	}
	return out, nil
}

// Records returns a run's cleaned records in their original order.
func (r *runRepo) Records(ctx context.Context, runID uuid.UUID) ([]entity.CleanedCourseRecord, error) {
	rows, err := r.ent.CourseRecord.Query().
		Where(courserecord.RunID(runID)).
		Order(ent.Asc(courserecord.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.CleanedCourseRecord, len(rows))
	for i, c := range rows {
		out[i] = entity.CleanedCourseRecord{
			CourseName:             c.CourseName,
			Instructor:             c.Instructor,
			Hours:                  c.Hours,
			Category:               c.Category,
			Week:                   c.Week,
			Location:               c.Location,
			Section:                c.Section,
			TimePeriod:             c.TimePeriod,
			Note:                   c.Note,
			SourceFile:             c.SourceFile,
			SheetOrPage:            c.SheetOrPage,
			SourceLocator:          c.SourceLocator,
			SourceOriginalNameText: c.SourceText,
		}
	}
	return out, nil
}

func notFound(err error, what string) error {
	if ent.IsNotFound(err) {
		return common.NewAppError("NOT_FOUND", what+" not found", common.ErrNotFound)
	}
	return err
}

func toEntityRun(row *ent.Run) entity.Run {
	return entity.Run{
		ID:             row.ID,
		InputRoot:      row.InputRoot,
		StartedAt:      row.StartedAt,
		FinishedAt:     row.FinishedAt,
		Status:         row.Status,
		ErrorMessage:   row.ErrorMessage,
		FilesScanned:   row.FilesScanned,
		FilesFailed:    row.FilesFailed,
		UnitsProcessed: row.UnitsProcessed,
		UnitsSkipped:   row.UnitsSkipped,
		RawRecords:     row.RawRecords,
		CleanedRecords: row.CleanedRecords,
		TotalHours:     row.TotalHours,
		Stats:          row.Stats,
	}
}
