// Package handler exposes the solar-term ingestion endpoint for operators.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"saju/internal/platform/middleware"
	"saju/internal/solarterm"
	dErrors "saju/pkg/domain-errors"
	"saju/pkg/platform/httputil"
)

// Inserter is the write side of a solar-term store.
type Inserter interface {
	Insert(ctx context.Context, events []solarterm.Event) error
}

// Handler wires the admin ingestion endpoint to a writable store.
type Handler struct {
	store  Inserter
	logger *slog.Logger
}

// New constructs a solar-term admin handler.
func New(store Inserter, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Register mounts admin endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/admin/solar-terms", h.HandleIngest)
}

type ingestRequest struct {
	Events []eventRequest `json:"events"`
}

type eventRequest struct {
	Name string    `json:"name"`
	Kind string    `json:"kind"`
	At   time.Time `json:"at"`
}

// HandleIngest handles POST /admin/solar-terms requests.
func (h *Handler) HandleIngest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ingestRequest
	if !httputil.DecodeJSON(w, r, &req) {
		return
	}
	if len(req.Events) == 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "events must not be empty"))
		return
	}

	events := make([]solarterm.Event, 0, len(req.Events))
	for _, ev := range req.Events {
		if ev.Name == "" || ev.At.IsZero() {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "each event needs a name and timestamp"))
			return
		}
		if solarterm.Kind(ev.Kind) != solarterm.KindJeolgi {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "kind must be JEOLGI"))
			return
		}
		if _, ok := solarterm.JeolgiBranch[ev.Name]; !ok {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "unknown solar term name "+ev.Name))
			return
		}
		events = append(events, solarterm.Event{Name: ev.Name, Kind: solarterm.KindJeolgi, At: ev.At})
	}

	if err := h.store.Insert(ctx, events); err != nil {
		h.logger.ErrorContext(ctx, "solar-term ingestion failed",
			"request_id", middleware.GetRequestID(ctx),
			"count", len(events),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store solar terms"))
		return
	}

	h.logger.InfoContext(ctx, "solar terms ingested",
		"request_id", middleware.GetRequestID(ctx),
		"count", len(events),
	)
	httputil.WriteJSON(w, http.StatusOK, map[string]int{"accepted": len(events)})
}
