package handlers

import (
	"log/slog"
	"net/http"

	"dailyquiz/services"
	"dailyquiz/store"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	store *store.Store
	hub   *services.Hub
}

func NewAdminHandler(store *store.Store, hub *services.Hub) *AdminHandler {
	return &AdminHandler{
		store: store,
		hub:   hub,
	}
}

// ResetAll wipes every collection. The caller must echo the configured reset
// password; anything else is rejected without touching the data.
func (h *AdminHandler) ResetAll(c *gin.Context) {
	var req struct {
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.ResetAll(req.ConfirmPassword); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Incorrect confirmation password"})
		return
	}

	slog.Warn("all data reset by admin request")
	h.hub.Broadcast(services.EventDataReset, nil)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All data has been reset",
	})
}
