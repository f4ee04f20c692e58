// Package httpapi serves run summaries and report downloads over HTTP next
// to the gRPC surface.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/course-stats/internal/async"
	"github.com/joseph-ayodele/course-stats/internal/common"
	"github.com/joseph-ayodele/course-stats/internal/entity"
	"github.com/joseph-ayodele/course-stats/internal/services/batch"
)

// Reports exposes the last in-process batch.
type Reports interface {
	Last() (*batch.Report, bool)
}

// RunReader reads persisted runs.
type RunReader interface {
	Get(ctx context.Context, runID uuid.UUID) (entity.Run, error)
	Latest(ctx context.Context) (entity.Run, error)
}

type Deps struct {
	Reports Reports
	Queue   async.Queue
	// Runs is optional; without it the run routes answer from memory.
	Runs   RunReader
	Logger *slog.Logger
}

type handler struct {
	Deps
}

// New builds the HTTP app:
//
//	GET  /health
//	GET  /api/runs/latest
//	GET  /api/runs/{id}
//	POST /api/runs                 {"root": "...", "upload": false} -> 202
//	GET  /api/reports/latest/{workbook|csv|raw_csv}
func New(d Deps) *fiber.App {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	h := &handler{Deps: d}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          h.errorHandler,
	})
	app.Use(h.requestLog)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	api := app.Group("/api")
	api.Get("/runs/latest", h.latestRun)
	api.Get("/runs/:id", h.getRun)
	api.Post("/runs", h.submitRun)
	api.Get("/reports/latest/:kind", h.download)
	return app
}

func (h *handler) requestLog(c *fiber.Ctx) error {
	id := c.Get("X-Request-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("X-Request-ID", id)
	c.SetUserContext(common.WithRequestID(c.UserContext(), id))
	start := time.Now()
	err := c.Next()
	status := c.Response().StatusCode()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}
	h.Logger.Info("http.request",
		"id", id,
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return err
}

func (h *handler) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

type reportView struct {
	RunID      string                     `json:"run_id"`
	Root       string                     `json:"root"`
	Status     string                     `json:"status"`
	Summary    any                        `json:"summary"`
	Stats      entity.AggregateStatistics `json:"stats"`
	Workbook   string                     `json:"workbook,omitempty"`
	CSV        string                     `json:"csv,omitempty"`
	RawCSV     string                     `json:"raw_csv,omitempty"`
	Uploaded   bool                       `json:"uploaded"`
	FinishedAt time.Time                  `json:"finished_at"`
}

func (h *handler) latestRun(c *fiber.Ctx) error {
	if h.Runs != nil {
		run, err := h.Runs.Latest(c.UserContext())
		if errors.Is(err, common.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "no run recorded yet")
		}
		if err != nil {
			return err
		}
		return c.JSON(run)
	}
	rep, ok := h.Reports.Last()
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "no run has finished yet")
	}
	return c.JSON(viewOf(rep))
}

func (h *handler) getRun(c *fiber.Ctx) error {
	id := c.Params("id")
	v := common.NewValidator().Field("id", id, common.UUID)
	if v.HasErrors() {
		return fiber.NewError(fiber.StatusBadRequest, v.ErrorMessage())
	}
	runID := uuid.MustParse(id)
	if h.Runs != nil {
		run, err := h.Runs.Get(c.UserContext(), runID)
		if errors.Is(err, common.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "run not found")
		}
		if err != nil {
			return err
		}
		return c.JSON(run)
	}
	// Only the last report is kept in memory.
	rep, ok := h.Reports.Last()
	if !ok || rep.Result.RunID != runID {
		return fiber.NewError(fiber.StatusNotFound, "run not found")
	}
	return c.JSON(viewOf(rep))
}

func viewOf(rep *batch.Report) reportView {
	res := rep.Result
	return reportView{
		RunID:      res.RunID.String(),
		Root:       rep.Root,
		Status:     string(res.Summary.Status()),
		Summary:    res.Summary,
		Stats:      res.Stats,
		Workbook:   rep.Written.Workbook,
		CSV:        rep.Written.CSV,
		RawCSV:     rep.Written.RawCSV,
		Uploaded:   rep.Uploaded,
		FinishedAt: rep.FinishedAt,
	}
}

type runRequest struct {
	Root   string `json:"root"`
	Upload bool   `json:"upload"`
}

func (h *handler) submitRun(c *fiber.Ctx) error {
	if h.Queue == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "runs cannot be submitted")
	}
	var req runRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "body must be JSON")
	}
	req.Root = strings.TrimSpace(req.Root)
	if req.Root == "" {
		return fiber.NewError(fiber.StatusBadRequest, "root is required")
	}

	job := async.Job{Root: req.Root, Upload: req.Upload, SubmittedAt: time.Now(), TraceID: uuid.NewString()}
	switch err := h.Queue.Enqueue(c.UserContext(), job); {
	case errors.Is(err, common.ErrBusy), errors.Is(err, async.ErrClosed):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case err != nil:
		return err
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"queued": true, "trace_id": job.TraceID})
}

func (h *handler) download(c *fiber.Ctx) error {
	kind := c.Params("kind")
	v := common.NewValidator().Field("kind", kind, common.OneOf("workbook", "csv", "raw_csv"))
	if v.HasErrors() {
		return fiber.NewError(fiber.StatusBadRequest, v.ErrorMessage())
	}
	rep, ok := h.Reports.Last()
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "no report has been written yet")
	}
	var path string
	switch kind {
	case "workbook":
		path = rep.Written.Workbook
	case "csv":
		path = rep.Written.CSV
	case "raw_csv":
		path = rep.Written.RawCSV
	}
	if path == "" {
		return fiber.NewError(fiber.StatusNotFound, "that report is not configured")
	}
	return c.Download(path, filepath.Base(path))
}
