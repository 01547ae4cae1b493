package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"shareofmodel/internal/models"
)

// snapshotColumns is the standard column list for snapshot queries.
const snapshotColumns = `id, dataset_path, record_count, survived_count,
	survival_rate, category_rates, created_at`

// scanSnapshot scans a row into a Snapshot struct.
func scanSnapshot(row pgx.Row) (*models.Snapshot, error) {
	var snap models.Snapshot
	var rates []byte
	err := row.Scan(
		&snap.ID,
		&snap.DatasetPath,
		&snap.RecordCount,
		&snap.SurvivedCount,
		&snap.SurvivalRate,
		&rates,
		&snap.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rates, &snap.CategoryRates); err != nil {
		return nil, fmt.Errorf("failed to decode category rates: %w", err)
	}
	return &snap, nil
}

// SaveSnapshot persists an aggregate snapshot of a completed dataset load.
func (d *DB) SaveSnapshot(ctx context.Context, snap *models.Snapshot) error {
	rates, err := json.Marshal(snap.CategoryRates)
	if err != nil {
		return fmt.Errorf("failed to encode category rates: %w", err)
	}

	query := `
		INSERT INTO snapshots (dataset_path, record_count, survived_count, survival_rate, category_rates)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return d.Pool.QueryRow(ctx, query,
		snap.DatasetPath,
		snap.RecordCount,
		snap.SurvivedCount,
		snap.SurvivalRate,
		rates,
	).Scan(&snap.ID, &snap.CreatedAt)
}

// ListSnapshots returns the most recent snapshots, newest first.
func (d *DB) ListSnapshots(ctx context.Context, limit int) ([]models.Snapshot, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + snapshotColumns + ` FROM snapshots ORDER BY created_at DESC LIMIT $1`
	rows, err := d.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []models.Snapshot
	for rows.Next() {
		var snap models.Snapshot
		var rates []byte
		if err := rows.Scan(
			&snap.ID,
			&snap.DatasetPath,
			&snap.RecordCount,
			&snap.SurvivedCount,
			&snap.SurvivalRate,
			&rates,
			&snap.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rates, &snap.CategoryRates); err != nil {
			return nil, fmt.Errorf("failed to decode category rates: %w", err)
		}
		snaps = append(snaps, snap)
	}

	return snaps, rows.Err()
}

// GetSnapshotByID retrieves a snapshot by its ID.
func (d *DB) GetSnapshotByID(ctx context.Context, id uuid.UUID) (*models.Snapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM snapshots WHERE id = $1`
	return scanSnapshot(d.Pool.QueryRow(ctx, query, id))
}
