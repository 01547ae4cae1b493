package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shareofmodel/internal/dataset"
	"shareofmodel/internal/db"
	"shareofmodel/internal/handlers"
	"shareofmodel/internal/handlers/api"
	"shareofmodel/internal/middleware"
)

// RegisterRoutes registers all application routes. database is nil when
// snapshot history is disabled.
func RegisterRoutes(ctx context.Context, s *Server, data *dataset.Store, database *db.DB) error {
	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(s.Cfg)

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(data, s.Cfg)
	exportHandler := handlers.NewExportHandler(data)
	adminHandler := handlers.NewAdminHandler(data, database)
	probeHandler := handlers.NewProbeHandler(data, database)
	statsHandler := api.NewStatsHandler(data)
	snapshotHandler := api.NewSnapshotHandler(database)

	// Auth routes - only registered when OIDC is configured
	if s.Cfg.AuthEnabled() {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg)
		if err != nil {
			return err
		}
		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
	} else {
		log.Println("OIDC authentication is disabled. Set OIDC_ISSUER to enable.")
		log.Println("Admin endpoints are unprotected; do not run this way in production.")
	}

	// Dashboard
	s.App.Get("/", authMiddleware.OptionalAuth, dashboardHandler.Index)
	s.App.Get("/export/at-risk.xlsx", authMiddleware.OptionalAuth, exportHandler.AtRisk)

	// Admin routes
	s.App.Post("/admin/reload", authMiddleware.RequireAuth, adminHandler.Reload)

	// JSON API
	s.App.Get("/api/v1/stats", statsHandler.GetStats)
	s.App.Get("/api/v1/keywords/at-risk", statsHandler.GetAtRisk)
	s.App.Get("/api/v1/categories", statsHandler.GetCategories)
	s.App.Get("/api/v1/snapshots", snapshotHandler.List)
	s.App.Get("/api/v1/snapshots/:id", snapshotHandler.Get)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}
