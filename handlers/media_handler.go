package handlers

import (
	"errors"
	"net/http"

	"dailyquiz/services"
	"dailyquiz/store"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	store *store.Store
	hub   *services.Hub
}

func NewMediaHandler(store *store.Store, hub *services.Hub) *MediaHandler {
	return &MediaHandler{
		store: store,
		hub:   hub,
	}
}

func (h *MediaHandler) ListMedia(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Media())
}

func (h *MediaHandler) UploadMedia(c *gin.Context) {
	var req store.UploadMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.store.UploadMedia(&req)
	if err != nil {
		var ve *store.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.hub.Broadcast(services.EventMediaUploaded, item)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Media uploaded successfully",
		"media":   item,
	})
}

func (h *MediaHandler) LatestMedia(c *gin.Context) {
	item, err := h.store.LatestMedia()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No media files found"})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.DeleteMedia(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		return
	}

	h.hub.Broadcast(services.EventMediaDeleted, gin.H{"id": id})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Media deleted successfully",
	})
}
