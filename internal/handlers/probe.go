package handlers

import (
	"github.com/gofiber/fiber/v3"

	"shareofmodel/internal/dataset"
	"shareofmodel/internal/db"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	data *dataset.Store
	db   *db.DB // nil when snapshot history is disabled
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(data *dataset.Store, database *db.DB) *ProbeHandler {
	return &ProbeHandler{data: data, db: database}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint. A missing dataset is not a
// readiness failure: the dashboard serves an empty state by design. Only
// an unreachable snapshot store fails the probe.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "database unavailable",
			})
		}
	}

	resp := fiber.Map{
		"status":  "ok",
		"records": h.data.Len(),
	}
	if err := h.data.Err(); err != nil {
		resp["dataset_error"] = err.Error()
	}
	return c.JSON(resp)
}
