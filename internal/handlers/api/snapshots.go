package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"shareofmodel/internal/db"
)

// SnapshotHandler serves the snapshot history JSON API.
type SnapshotHandler struct {
	db *db.DB // nil when snapshot history is disabled
}

// NewSnapshotHandler creates a new API snapshot handler.
func NewSnapshotHandler(database *db.DB) *SnapshotHandler {
	return &SnapshotHandler{db: database}
}

// List returns recent snapshots, newest first.
func (h *SnapshotHandler) List(c fiber.Ctx) error {
	if h.db == nil {
		return jsonError(c, fiber.StatusNotFound, "snapshot history is disabled")
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return jsonError(c, fiber.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	snaps, err := h.db.ListSnapshots(c.Context(), limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to list snapshots")
	}
	return jsonSuccess(c, snaps)
}

// Get returns a single snapshot by ID.
func (h *SnapshotHandler) Get(c fiber.Ctx) error {
	if h.db == nil {
		return jsonError(c, fiber.StatusNotFound, "snapshot history is disabled")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid snapshot id")
	}

	snap, err := h.db.GetSnapshotByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrSnapshotNotFound) {
			return jsonError(c, fiber.StatusNotFound, "snapshot not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch snapshot")
	}
	return jsonSuccess(c, snap)
}
