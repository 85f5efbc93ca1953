package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/Simplici0/landedcost/internal/catalog"
	"github.com/Simplici0/landedcost/internal/config"
	"github.com/Simplici0/landedcost/internal/db"
	"github.com/Simplici0/landedcost/internal/logger"
	"github.com/Simplici0/landedcost/internal/migrations"
	"github.com/Simplici0/landedcost/internal/scenario"
	"github.com/Simplici0/landedcost/internal/seed"
)

type server struct {
	catalog      *catalog.Repository
	scenarios    *scenario.Repository
	log          zerolog.Logger
	historyLimit int
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The logger is not configured yet.
		bootLog := logger.New(logger.Config{Level: "error"})
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.IsDev()})

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("db_path", cfg.DBPath).Msg("failed to open database")
	}
	defer database.Close()

	migrations.SetLogger(log)
	if err := migrations.Up(database, cfg.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}
	if version, err := migrations.Version(database); err == nil {
		log.Info().Int64("schema_version", version).Msg("database ready")
	}

	stats, err := seed.Run(context.Background(), database, catalog.Defaults())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed catalog")
	}
	log.Info().Int("inserts", stats.Inserts).Msg("catalog seeded")

	srv := &server{
		catalog:      catalog.NewRepository(database, log),
		scenarios:    scenario.NewRepository(database, log),
		log:          log.With().Str("component", "http").Logger(),
		historyLimit: cfg.HistoryLimit,
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.routes(cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", httpServer.Addr).Str("env", cfg.Env).Msg("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func (s *server) routes(corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/calculate", s.handleCalculate)
		r.Post("/margin", s.handleMargin)

		r.Get("/input/default", s.handleDefaultInput)
		r.Get("/input/current", s.handleGetCurrentInput)
		r.Put("/input/current", s.handlePutCurrentInput)
		r.Post("/input/apply", s.handleApplyInput)

		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handlePutSettings)
		r.Post("/settings/reset", s.handleResetSettings)
		r.Put("/settings/suppliers/{id}", s.handlePutSupplier)
		r.Delete("/settings/suppliers/{id}", s.handleDeleteSupplier)
		r.Put("/settings/customers/{id}", s.handlePutCustomer)
		r.Delete("/settings/customers/{id}", s.handleDeleteCustomer)
		r.Put("/settings/ports/{id}", s.handlePutPort)
		r.Delete("/settings/ports/{id}", s.handleDeletePort)
		r.Get("/weight-gains", s.handleWeightGains)

		r.Get("/scenarios", s.handleListScenarios)
		r.Post("/scenarios", s.handleCreateScenario)
		r.Get("/scenarios/{id}", s.handleGetScenario)
		r.Patch("/scenarios/{id}", s.handleRenameScenario)
		r.Delete("/scenarios/{id}", s.handleDeleteScenario)
		r.Get("/scenarios/{id}/text", s.handleScenarioText)
		r.Post("/scenarios/{id}/compare", s.handleCompareScenario)

		r.Get("/history", s.handleListHistory)
		r.Delete("/history", s.handleClearHistory)
	})

	return r
}

func (s *server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
