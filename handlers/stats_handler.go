package handlers

import (
	"net/http"

	"dailyquiz/store"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	store *store.Store
}

func NewStatsHandler(store *store.Store) *StatsHandler {
	return &StatsHandler{store: store}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats())
}
