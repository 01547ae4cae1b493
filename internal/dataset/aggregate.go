package dataset

import (
	"sort"

	"github.com/montanaflynn/stats"

	"shareofmodel/internal/models"
)

// Aggregate computes the dashboard statistics for the given filter. The
// top-line metrics (counts, survival rate) are computed over the filtered
// view; the per-category breakdown is always computed over the full record
// set regardless of filter. That asymmetry is intentional product
// behavior: the chart keeps showing the whole market while the metrics
// zoom in.
func Aggregate(records []models.Record, filter string) models.Statistics {
	if filter == "" || !models.ValidCategory(filter) {
		filter = models.FilterAll
	}

	view := records
	if filter != models.FilterAll {
		view = filterByCategory(records, models.Category(filter))
	}

	survived := 0
	for _, r := range view {
		if r.SurvivedAI {
			survived++
		}
	}

	return models.Statistics{
		Filter:        filter,
		TotalKeywords: len(view),
		SurvivedCount: survived,
		AtRiskCount:   len(view) - survived,
		SurvivalRate:  survivalRate(view),
		Categories:    CategoryBreakdown(records),
	}
}

// CategoryBreakdown computes the survival rate per category over the given
// records, sorted by descending survival rate. Every category appears even
// when it has no records, so the chart shape is stable across filters.
func CategoryBreakdown(records []models.Record) []models.CategoryRate {
	groups := make(map[models.Category][]models.Record)
	for _, r := range records {
		c := r.Category()
		groups[c] = append(groups[c], r)
	}

	breakdown := make([]models.CategoryRate, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		group := groups[c]
		breakdown = append(breakdown, models.CategoryRate{
			Category:     c,
			RecordCount:  len(group),
			SurvivalRate: survivalRate(group),
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].SurvivalRate > breakdown[j].SurvivalRate
	})
	return breakdown
}

// AtRisk returns the records in the filtered view whose top-ranked brand
// did not survive into AI answers. A positive limit caps the result; zero
// or negative means no cap.
func AtRisk(records []models.Record, filter string, limit int) []models.Record {
	view := records
	if filter != "" && filter != models.FilterAll && models.ValidCategory(filter) {
		view = filterByCategory(records, models.Category(filter))
	}

	var failing []models.Record
	for _, r := range view {
		if r.SurvivedAI {
			continue
		}
		failing = append(failing, r)
		if limit > 0 && len(failing) == limit {
			break
		}
	}
	return failing
}

// CategoriesPresent returns the categories that have at least one record,
// in rule priority order. The sidebar filter offers these plus "All".
func CategoriesPresent(records []models.Record) []models.Category {
	seen := make(map[models.Category]bool)
	for _, r := range records {
		seen[r.Category()] = true
	}

	var present []models.Category
	for _, c := range models.Categories() {
		if seen[c] {
			present = append(present, c)
		}
	}
	return present
}

// Snapshot builds a persistable aggregate of the given record set for the
// snapshot history store.
func Snapshot(records []models.Record, path string) *models.Snapshot {
	aggregated := Aggregate(records, models.FilterAll)
	return &models.Snapshot{
		DatasetPath:   path,
		RecordCount:   aggregated.TotalKeywords,
		SurvivedCount: aggregated.SurvivedCount,
		SurvivalRate:  aggregated.SurvivalRate,
		CategoryRates: aggregated.Categories,
	}
}

// survivalRate returns the percentage of records that survived, rounded to
// one decimal. An empty input yields 0; no division is performed.
func survivalRate(records []models.Record) float64 {
	if len(records) == 0 {
		return 0
	}

	indicators := make([]float64, len(records))
	for i, r := range records {
		if r.SurvivedAI {
			indicators[i] = 1
		}
	}

	mean, err := stats.Mean(indicators)
	if err != nil {
		return 0
	}
	rate, err := stats.Round(mean*100, 1)
	if err != nil {
		return 0
	}
	return rate
}

func filterByCategory(records []models.Record, c models.Category) []models.Record {
	var out []models.Record
	for _, r := range records {
		if r.Category() == c {
			out = append(out, r)
		}
	}
	return out
}
