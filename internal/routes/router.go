package routes

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/Abishekkhanal/channelManager2/internal/api"
	"github.com/Abishekkhanal/channelManager2/internal/jobs"
	"github.com/Abishekkhanal/channelManager2/internal/logging"
	"github.com/Abishekkhanal/channelManager2/internal/metrics"
	"github.com/Abishekkhanal/channelManager2/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// RegisterRoutes wires middleware, dependencies and the API surface
func RegisterRoutes(gormDB *gorm.DB, sqlxDB *sqlx.DB, upSince time.Time) http.Handler {

	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(sqlxDB, upSince))

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(gormDB, sqlxDB, metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// Initialize handlers with dependencies
	handlers := api.NewHandlers(deps)

	// Start the scheduled sync job unless disabled
	if os.Getenv("DISABLE_SYNC_SCHEDULER") == "" {
		jobs.InitializeJobs(context.Background(), deps.Repo.Configs, deps.Services.Sync)
	}

	RegisterAPIRoutes(r, handlers, metricsReg, os.Getenv("JWT_SECRET"))

	return r
}
