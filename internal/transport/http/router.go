// Package httptransport assembles the service's HTTP surface. It mounts the
// domain handlers and keeps transport concerns (routing, request IDs, panic
// recovery, admin auth) out of the handlers themselves.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"saju/internal/platform/middleware"
)

// Registrar mounts a handler's routes on a router.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter wires all endpoints. Admin routes are token-guarded; everything
// else is public.
func NewRouter(logger *slog.Logger, adminToken string, public Registrar, admin Registrar, health http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)

	public.Register(r)

	r.Group(func(gr chi.Router) {
		gr.Use(middleware.RequireAdminToken(adminToken, logger))
		admin.Register(gr)
	})

	r.Get("/healthz", health)
	r.Handle("/metrics", promhttp.Handler())
	return r
}
