package routes

import (
	"github.com/Abishekkhanal/channelManager2/internal/api"
	"github.com/Abishekkhanal/channelManager2/internal/metrics"
	"github.com/Abishekkhanal/channelManager2/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers the channel-manager surface under /api/v1.
// Every route requires authentication plus the manager/admin role; the sync
// triggers additionally go through the per-IP rate limiter.
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, metricsReg *metrics.MetricsRegistry, jwtSecret string) {

	r.Route("/api/v1/ota", func(v1 chi.Router) {
		v1.Use(middleware.AuthMiddleware(jwtSecret))
		v1.Use(middleware.IsManagerMiddleware())

		// Configuration management
		v1.Get("/configurations", handlers.ListConfigurations())
		v1.Post("/configurations", handlers.CreateConfiguration())
		v1.Put("/configurations/{id}", handlers.UpdateConfiguration())
		v1.Delete("/configurations/{id}", handlers.DeleteConfiguration())

		// Sync triggers
		v1.Group(func(sync chi.Router) {
			sync.Use(middleware.RateLimitMiddleware)
			sync.Post("/sync/{id}", handlers.TriggerSync())
			sync.Post("/sync-all", handlers.TriggerSyncAll())
			sync.Post("/test-connection/{id}", handlers.TestConnection())
		})

		// Audit & reporting
		v1.Get("/sync-logs", handlers.ListSyncLogs())
		v1.Get("/sync-stats", handlers.SyncStats())
		v1.Get("/export-xml/{id}", handlers.ExportXML())
	})
}
