package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	charthandler "saju/internal/chart/handler"
	chartservice "saju/internal/chart/service"
	"saju/internal/platform/config"
	"saju/internal/platform/httpserver"
	"saju/internal/platform/logger"
	"saju/internal/platform/metrics"
	platformredis "saju/internal/platform/redis"
	"saju/internal/solarterm"
	solartermhandler "saju/internal/solarterm/handler"
	solartermstore "saju/internal/solarterm/store"
	httptransport "saju/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Without a database the engine runs on an in-memory store fed through
	// the admin endpoint. Fine for development, useless in production.
	var (
		db     *sql.DB
		terms  solarterm.Provider
		ingest solartermhandler.Inserter
	)
	if cfg.DatabaseURL != "" {
		var err error
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Error("open postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		pg := solartermstore.NewPostgres(db)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Error("ensure schema", "error", err)
			os.Exit(1)
		}
		terms, ingest = pg, pg
	} else {
		log.Warn("DATABASE_URL not set, using in-memory solar-term store")
		mem := solartermstore.NewMemory()
		terms, ingest = mem, mem
	}

	rdb, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if rdb != nil {
		defer rdb.Close()
		terms = solartermstore.NewCached(terms, rdb.Client, cfg.TermCache.TTL, log)
	}

	m := metrics.New()
	charts, err := chartservice.New(terms,
		chartservice.WithLogger(log),
		chartservice.WithMetrics(m),
	)
	if err != nil {
		log.Error("build chart service", "error", err)
		os.Exit(1)
	}

	router := httptransport.NewRouter(
		log,
		cfg.AdminToken,
		charthandler.New(charts, log),
		solartermhandler.New(ingest, log),
		healthHandler(db, rdb),
	)
	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting saju server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// healthHandler reports liveness of the process and its backing stores.
func healthHandler(db *sql.DB, rdb *platformredis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if db != nil {
			if err := db.PingContext(ctx); err != nil {
				http.Error(w, `{"status":"degraded","postgres":"down"}`, http.StatusServiceUnavailable)
				return
			}
		}
		if rdb != nil {
			if err := rdb.Health(ctx); err != nil {
				http.Error(w, `{"status":"degraded","redis":"down"}`, http.StatusServiceUnavailable)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
