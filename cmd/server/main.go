package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"shareofmodel/internal/config"
	"shareofmodel/internal/dataset"
	"shareofmodel/internal/db"
	"shareofmodel/internal/jobs"
	"shareofmodel/internal/metrics"
	"shareofmodel/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// Load the dataset once at startup. A missing source is not fatal: the
	// dashboard serves an empty state until the file appears.
	data := dataset.Open(cfg.DatasetPath)
	if err := data.Err(); err != nil {
		metrics.RecordDatasetLoad("error")
		if errors.Is(err, dataset.ErrSourceMissing) {
			log.Printf("Warning: dataset %s not found; serving empty state", cfg.DatasetPath)
		} else {
			log.Printf("Warning: dataset load failed: %v", err)
		}
	} else {
		metrics.RecordDatasetLoad("success")
		log.Printf("Loaded %d records from %s", data.Len(), cfg.DatasetPath)
	}
	metrics.Init(data)

	// Snapshot history is optional and only enabled with a DATABASE_URL.
	var database *db.DB
	if cfg.HistoryEnabled() {
		var err error
		database, err = db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Migrations completed successfully")
	} else {
		log.Println("Snapshot history is disabled. Set DATABASE_URL to enable.")
	}

	srv := server.New(cfg)
	if err := server.RegisterRoutes(ctx, srv, data, database); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Background refresher picks up republished dataset files.
	if cfg.RefreshInterval > 0 {
		refresher := jobs.NewRefresher(data, database, cfg.RefreshInterval)
		go refresher.Start(ctx)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
