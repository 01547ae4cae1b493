package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"shareofmodel/internal/config"
	"shareofmodel/internal/dataset"
	"shareofmodel/internal/models"
)

// DashboardHandler renders the AI search visibility dashboard.
type DashboardHandler struct {
	data *dataset.Store
	cfg  *config.Config
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(data *dataset.Store, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{data: data, cfg: cfg}
}

// ChartBar is one bar of the category survival chart.
type ChartBar struct {
	Category     models.Category
	RecordCount  int
	SurvivalRate float64
	Width        float64 // bar width in percent of the chart area
	Color        string  // red at 0% survival through green at 100%
}

// TableRow is one row of the at-risk keywords table.
type TableRow struct {
	Keyword  string
	TopBrand string
	Recs     string
}

// Index renders the dashboard page. The category filter arrives as a query
// parameter; each filter change is a plain request that recomputes the
// aggregate view over the already loaded records. HTMX requests receive
// only the content partial.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	filter := c.Query("category", models.FilterAll)
	records := h.data.Records()

	aggregated := dataset.Aggregate(records, filter)
	atRisk := dataset.AtRisk(records, aggregated.Filter, h.cfg.TableLimit)

	data := fiber.Map{
		"User":        c.Locals("user"),
		"Stats":       aggregated,
		"Filter":      aggregated.Filter,
		"Categories":  filterOptions(records),
		"Bars":        chartBars(aggregated.Categories),
		"AtRisk":      tableRows(atRisk),
		"Empty":       len(records) == 0,
		"LoadError":   h.data.Err() != nil,
		"DatasetPath": h.data.Path(),
		"TableLimit":  h.cfg.TableLimit,
	}

	if c.Get("HX-Request") == "true" {
		return c.Render("partials/dashboard_content", data, "")
	}
	return c.Render("dashboard", MergeBranding(data, h.cfg))
}

// filterOptions builds the sidebar options: "All" plus categories present.
func filterOptions(records []models.Record) []string {
	options := []string{models.FilterAll}
	for _, c := range dataset.CategoriesPresent(records) {
		options = append(options, string(c))
	}
	return options
}

// chartBars converts category rates into renderable bars. The color scale
// runs red at 0% survival through green at 100%.
func chartBars(rates []models.CategoryRate) []ChartBar {
	bars := make([]ChartBar, 0, len(rates))
	for _, rate := range rates {
		width := rate.SurvivalRate
		if width < 2 {
			width = 2 // keep zero-rate bars visible
		}
		bars = append(bars, ChartBar{
			Category:     rate.Category,
			RecordCount:  rate.RecordCount,
			SurvivalRate: rate.SurvivalRate,
			Width:        width,
			Color:        barColor(rate.SurvivalRate),
		})
	}
	return bars
}

// barColor maps a survival rate in [0,100] onto a red-to-green hue.
func barColor(rate float64) string {
	if rate < 0 {
		rate = 0
	}
	if rate > 100 {
		rate = 100
	}
	hue := int(rate * 1.2) // 0 = red, 120 = green
	return fmt.Sprintf("hsl(%d, 70%%, 45%%)", hue)
}

func tableRows(records []models.Record) []TableRow {
	rows := make([]TableRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, TableRow{
			Keyword:  r.Keyword,
			TopBrand: r.GoogleTopBrand,
			Recs:     r.FormattedRecs(),
		})
	}
	return rows
}
