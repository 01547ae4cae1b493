package models

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is one persisted aggregate of a completed dataset load, used to
// track visibility drift across dataset refreshes.
type Snapshot struct {
	ID            uuid.UUID      `json:"id"`
	DatasetPath   string         `json:"dataset_path"`
	RecordCount   int            `json:"record_count"`
	SurvivedCount int            `json:"survived_count"`
	SurvivalRate  float64        `json:"survival_rate"`
	CategoryRates []CategoryRate `json:"category_rates"`
	CreatedAt     time.Time      `json:"created_at"`
}
