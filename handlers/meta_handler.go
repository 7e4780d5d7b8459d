package handlers

import (
	"net/http"
	"runtime"
	"time"

	"dailyquiz/store"

	"github.com/gin-gonic/gin"
)

type MetaHandler struct {
	store     *store.Store
	startedAt time.Time
}

func NewMetaHandler(store *store.Store) *MetaHandler {
	return &MetaHandler{
		store:     store,
		startedAt: time.Now(),
	}
}

// APIInfo serves the static service descriptor.
func (h *MetaHandler) APIInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "Daily Quiz API",
		"status":      "running",
		"version":     "2.1.0",
		"description": "Learn something new every day!",
		"endpoints": gin.H{
			"questions": "/questions",
			"answers":   "/answers (supports type: 'question' or 'media')",
			"media":     "/media",
			"phones":    "/phones",
			"stats":     "/stats",
		},
		"features": []string{
			"Daily questions",
			"Media uploads (images/audio)",
			"Student responses to media",
			"Phone number tracking",
			"Real-time synchronization",
		},
	})
}

// Health reports uptime, memory usage and the size of each collection.
func (h *MetaHandler) Health(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).Seconds(),
		"memory": gin.H{
			"alloc":      mem.Alloc,
			"totalAlloc": mem.TotalAlloc,
			"sys":        mem.Sys,
			"numGC":      mem.NumGC,
		},
		"dataStats": h.store.Counts(),
	})
}
