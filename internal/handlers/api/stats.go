package api

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"shareofmodel/internal/dataset"
	"shareofmodel/internal/models"
)

// StatsHandler serves the aggregate statistics JSON API.
type StatsHandler struct {
	data *dataset.Store
}

// NewStatsHandler creates a new API stats handler.
func NewStatsHandler(data *dataset.Store) *StatsHandler {
	return &StatsHandler{data: data}
}

// GetStats returns the aggregate statistics for an optional category filter.
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	filter := c.Query("category", models.FilterAll)
	if filter != models.FilterAll && !models.ValidCategory(filter) {
		return jsonError(c, fiber.StatusBadRequest, "unknown category")
	}

	return jsonSuccess(c, dataset.Aggregate(h.data.Records(), filter))
}

// GetAtRisk returns keywords whose top-ranked brand did not survive into
// AI answers, optionally filtered by category and capped by limit.
func (h *StatsHandler) GetAtRisk(c fiber.Ctx) error {
	filter := c.Query("category", models.FilterAll)
	if filter != models.FilterAll && !models.ValidCategory(filter) {
		return jsonError(c, fiber.StatusBadRequest, "unknown category")
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return jsonError(c, fiber.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	failing := dataset.AtRisk(h.data.Records(), filter, limit)
	if failing == nil {
		failing = []models.Record{}
	}
	return jsonSuccess(c, failing)
}

// GetCategories returns the filter options: "All" plus categories present
// in the loaded dataset.
func (h *StatsHandler) GetCategories(c fiber.Ctx) error {
	options := []string{models.FilterAll}
	for _, category := range dataset.CategoriesPresent(h.data.Records()) {
		options = append(options, string(category))
	}
	return jsonSuccess(c, options)
}
