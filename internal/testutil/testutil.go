// Package testutil provides test utilities and helpers.
package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"shareofmodel/internal/models"
)

// DatasetHeader is the canonical CSV header for test fixtures.
var DatasetHeader = []string{"keyword", "google_top_1_brand", "llm_recs", "rank_1_survived_ai"}

// WriteDatasetCSV writes a dataset CSV with the canonical header and the
// given rows into a temp directory, returning its path.
func WriteDatasetCSV(t *testing.T, rows [][]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "share_of_model_data.csv")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture csv: %v", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(DatasetHeader); err != nil {
		t.Fatalf("failed to write fixture header: %v", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			t.Fatalf("failed to write fixture row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("failed to flush fixture csv: %v", err)
	}
	return path
}

// SampleRecords returns a small fixture covering every category and both
// survival outcomes.
func SampleRecords() []models.Record {
	return []models.Record{
		{Keyword: "best crm software", GoogleTopBrand: "HubSpot", LLMRecs: `['HubSpot', 'Salesforce']`, SurvivedAI: false},
		{Keyword: "project management tool", GoogleTopBrand: "Asana", LLMRecs: `['Asana', 'Trello', 'Monday']`, SurvivedAI: true},
		{Keyword: "best coffee beans", GoogleTopBrand: "Lavazza", LLMRecs: `['Lavazza', 'Illy']`, SurvivedAI: true},
		{Keyword: "protein powder", GoogleTopBrand: "Optimum Nutrition", LLMRecs: "", SurvivedAI: false},
		{Keyword: "running shoes for women", GoogleTopBrand: "Nike", LLMRecs: `['Nike', 'Brooks', 'Asics']`, SurvivedAI: true},
		{Keyword: "best mattress", GoogleTopBrand: "Casper", LLMRecs: `['Casper', 'Purple']`, SurvivedAI: false},
	}
}
