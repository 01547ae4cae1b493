package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"shareofmodel/internal/dataset"
	"shareofmodel/internal/db"
	"shareofmodel/internal/metrics"
)

// AdminHandler handles operator actions on the dataset.
type AdminHandler struct {
	data *dataset.Store
	db   *db.DB // nil when snapshot history is disabled
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(data *dataset.Store, database *db.DB) *AdminHandler {
	return &AdminHandler{data: data, db: database}
}

// Reload re-reads the dataset from disk. This is the explicit cache
// invalidation path: the dashboard never reloads implicitly on page views.
func (h *AdminHandler) Reload(c fiber.Ctx) error {
	if err := h.data.Reload(); err != nil {
		metrics.RecordDatasetLoad("error")
		if errors.Is(err, dataset.ErrSourceMissing) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status": "error",
				"error":  "dataset source missing",
				"path":   h.data.Path(),
			})
		}
		return fiber.NewError(fiber.StatusInternalServerError, "dataset reload failed")
	}
	metrics.RecordDatasetLoad("success")

	if h.db != nil {
		snap := dataset.Snapshot(h.data.Records(), h.data.Path())
		if err := h.db.SaveSnapshot(c.Context(), snap); err != nil {
			slog.Error("failed to save dataset snapshot", "error", err)
		}
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"records": h.data.Len(),
	})
}
