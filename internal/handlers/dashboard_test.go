package handlers

import (
	"strings"
	"testing"

	"shareofmodel/internal/models"
	"shareofmodel/internal/testutil"
)

func TestBarColor(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		expected string
	}{
		{"zero is red", 0, "hsl(0, 70%, 45%)"},
		{"full is green", 100, "hsl(120, 70%, 45%)"},
		{"midpoint", 50, "hsl(60, 70%, 45%)"},
		{"clamped below", -5, "hsl(0, 70%, 45%)"},
		{"clamped above", 150, "hsl(120, 70%, 45%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := barColor(tt.rate); got != tt.expected {
				t.Errorf("barColor(%v) = %q, want %q", tt.rate, got, tt.expected)
			}
		})
	}
}

func TestChartBars(t *testing.T) {
	rates := []models.CategoryRate{
		{Category: models.CategorySoftware, RecordCount: 2, SurvivalRate: 50},
		{Category: models.CategoryApparel, RecordCount: 0, SurvivalRate: 0},
	}

	bars := chartBars(rates)

	if len(bars) != 2 {
		t.Fatalf("chartBars() returned %d bars, want 2", len(bars))
	}
	if bars[0].Width != 50 {
		t.Errorf("bars[0].Width = %v, want 50", bars[0].Width)
	}
	// Zero-rate bars keep a minimum width so they stay visible.
	if bars[1].Width != 2 {
		t.Errorf("bars[1].Width = %v, want minimum width 2", bars[1].Width)
	}
	if !strings.HasPrefix(bars[1].Color, "hsl(0,") {
		t.Errorf("bars[1].Color = %q, want red hue", bars[1].Color)
	}
}

func TestFilterOptions(t *testing.T) {
	options := filterOptions(testutil.SampleRecords())

	if options[0] != models.FilterAll {
		t.Errorf("options[0] = %q, want %q", options[0], models.FilterAll)
	}
	// The sample fixture covers all four categories.
	if len(options) != 5 {
		t.Errorf("filterOptions() returned %d options, want 5", len(options))
	}
}

func TestFilterOptionsEmptyDataset(t *testing.T) {
	options := filterOptions(nil)

	if len(options) != 1 || options[0] != models.FilterAll {
		t.Errorf("filterOptions(nil) = %v, want just %q", options, models.FilterAll)
	}
}

func TestTableRows(t *testing.T) {
	rows := tableRows([]models.Record{
		{Keyword: "best crm software", GoogleTopBrand: "HubSpot", LLMRecs: `['HubSpot', 'Salesforce']`},
	})

	if len(rows) != 1 {
		t.Fatalf("tableRows() returned %d rows, want 1", len(rows))
	}
	if rows[0].Keyword != "best crm software" {
		t.Errorf("Keyword = %q", rows[0].Keyword)
	}
	if rows[0].TopBrand != "HubSpot" {
		t.Errorf("TopBrand = %q", rows[0].TopBrand)
	}
	if rows[0].Recs != "HubSpot, Salesforce" {
		t.Errorf("Recs = %q, want formatted list", rows[0].Recs)
	}
}
