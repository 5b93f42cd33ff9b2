// Package handler wires the chart endpoints to the chart service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"saju/internal/chart/models"
	"saju/internal/platform/middleware"
	"saju/pkg/platform/httputil"
)

// Service defines the interface for chart operations.
type Service interface {
	Compute(ctx context.Context, birth models.BirthRecord) (models.Chart, error)
	AnnualLuck(ctx context.Context, birth models.BirthRecord, fromYear, count int) ([]models.AnnualLuck, error)
	MonthlyLuck(ctx context.Context, birth models.BirthRecord, year int) ([]models.MonthlyLuck, error)
	DailyPillars(ctx context.Context, birth models.BirthRecord, from time.Time, count int) ([]models.DailyPillar, error)
}

// Handler wires chart endpoints to the chart service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a chart handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts chart endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/charts", h.HandleCompute)
	r.Post("/v1/luck/annual", h.HandleAnnualLuck)
	r.Post("/v1/luck/monthly", h.HandleMonthlyLuck)
	r.Post("/v1/pillars/daily", h.HandleDailyPillars)
}

// HandleCompute handles POST /v1/charts requests.
func (h *Handler) HandleCompute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req ChartRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}
	birth, err := req.Birth.Record()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	chart, err := h.service.Compute(ctx, birth)
	if err != nil {
		h.logger.ErrorContext(ctx, "chart computation failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "chart computed",
		"request_id", middleware.GetRequestID(ctx),
		"spti", chart.SPTI,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, chart)
}

// HandleAnnualLuck handles POST /v1/luck/annual requests.
func (h *Handler) HandleAnnualLuck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AnnualLuckRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}
	birth, err := req.Birth.Record()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if req.FromYear == 0 {
		req.FromYear = time.Now().UTC().Year()
	}
	if req.Count == 0 {
		req.Count = 10
	}

	entries, err := h.service.AnnualLuck(ctx, birth, req.FromYear, req.Count)
	if err != nil {
		h.logger.ErrorContext(ctx, "annual luck query failed",
			"request_id", middleware.GetRequestID(ctx),
			"from_year", req.FromYear,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"annual_luck": entries})
}

// HandleMonthlyLuck handles POST /v1/luck/monthly requests.
func (h *Handler) HandleMonthlyLuck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req MonthlyLuckRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}
	birth, err := req.Birth.Record()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if req.Year == 0 {
		req.Year = time.Now().UTC().Year()
	}

	entries, err := h.service.MonthlyLuck(ctx, birth, req.Year)
	if err != nil {
		h.logger.ErrorContext(ctx, "monthly luck query failed",
			"request_id", middleware.GetRequestID(ctx),
			"year", req.Year,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"monthly_luck": entries})
}

// HandleDailyPillars handles POST /v1/pillars/daily requests.
func (h *Handler) HandleDailyPillars(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DailyPillarsRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}
	birth, err := req.Birth.Record()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	from, err := req.From()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if req.Count == 0 {
		req.Count = 30
	}

	entries, err := h.service.DailyPillars(ctx, birth, from, req.Count)
	if err != nil {
		h.logger.ErrorContext(ctx, "daily pillar query failed",
			"request_id", middleware.GetRequestID(ctx),
			"from_date", req.FromDate,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"daily_pillars": entries})
}
