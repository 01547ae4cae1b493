package jobs

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"shareofmodel/internal/dataset"
	"shareofmodel/internal/db"
	"shareofmodel/internal/metrics"
)

// Refresher reloads the dataset in the background when the source file
// changes on disk, so a republished CSV shows up without a restart.
type Refresher struct {
	data     *dataset.Store
	db       *db.DB // nil when snapshot history is disabled
	interval time.Duration
}

// NewRefresher creates a new dataset refresher.
func NewRefresher(data *dataset.Store, database *db.DB, interval time.Duration) *Refresher {
	return &Refresher{
		data:     data,
		db:       database,
		interval: interval,
	}
}

// Start begins the background refresh loop.
func (r *Refresher) Start(ctx context.Context) {
	log.Printf("Dataset refresher started (interval: %v)", r.interval)

	// Run immediately on start
	r.checkOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Dataset refresher stopped")
			return
		case <-ticker.C:
			r.checkOnce(ctx)
		}
	}
}

// checkOnce reloads the dataset if the source file is newer than the last
// successful load, or if the last load failed and the file is back.
func (r *Refresher) checkOnce(ctx context.Context) {
	fi, err := os.Stat(r.data.Path())
	if err != nil {
		// Source still missing; the dashboard keeps its empty state.
		return
	}

	if r.data.Err() == nil && !fi.ModTime().After(r.data.LoadedAt()) {
		return
	}

	if err := r.data.Reload(); err != nil {
		metrics.RecordDatasetLoad("error")
		slog.Error("dataset refresh failed", "path", r.data.Path(), "error", err)
		return
	}
	metrics.RecordDatasetLoad("success")
	log.Printf("Dataset refreshed: %d records from %s", r.data.Len(), r.data.Path())

	r.snapshot(ctx)
}

// snapshot persists an aggregate snapshot of the fresh load when history
// is enabled.
func (r *Refresher) snapshot(ctx context.Context) {
	if r.db == nil {
		return
	}

	snap := dataset.Snapshot(r.data.Records(), r.data.Path())
	if err := r.db.SaveSnapshot(ctx, snap); err != nil {
		slog.Error("failed to save dataset snapshot", "error", err)
	}
}
