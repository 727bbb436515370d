package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/xoibasu/internal/database"
)

// StatsHandler serves dashboard aggregates.
type StatsHandler struct {
	store *database.Store
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(store *database.Store) *StatsHandler {
	return &StatsHandler{store: store}
}

// GetStats returns counts, revenue and top products for the selected range.
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.store.GetStats(database.Filter{
		Start:  c.Query("start"),
		End:    c.Query("end"),
		Status: c.Query("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
