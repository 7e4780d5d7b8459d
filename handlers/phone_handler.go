package handlers

import (
	"errors"
	"net/http"

	"dailyquiz/services"
	"dailyquiz/store"

	"github.com/gin-gonic/gin"
)

type PhoneHandler struct {
	store *store.Store
	hub   *services.Hub
}

func NewPhoneHandler(store *store.Store, hub *services.Hub) *PhoneHandler {
	return &PhoneHandler{
		store: store,
		hub:   hub,
	}
}

func (h *PhoneHandler) ListPhones(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Phones())
}

func (h *PhoneHandler) RegisterPhone(c *gin.Context) {
	var req store.RegisterPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.RegisterPhone(&req); err != nil {
		var ve *store.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.hub.Broadcast(services.EventPhoneRegistered, gin.H{"pin": req.Pin, "name": req.Name})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Phone registered successfully",
	})
}
