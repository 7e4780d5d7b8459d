package handlers

import (
	"errors"
	"net/http"

	"dailyquiz/services"
	"dailyquiz/store"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	store *store.Store
	hub   *services.Hub
}

func NewAnswerHandler(store *store.Store, hub *services.Hub) *AnswerHandler {
	return &AnswerHandler{
		store: store,
		hub:   hub,
	}
}

func (h *AnswerHandler) ListAnswers(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Answers())
}

func (h *AnswerHandler) ListAnswersByQuestion(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.AnswersByQuestion(c.Param("questionId")))
}

func (h *AnswerHandler) SubmitAnswer(c *gin.Context) {
	var req store.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.store.SubmitAnswer(&req)
	if err != nil {
		var ve *store.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		case errors.Is(err, store.ErrDuplicateSubmission):
			c.JSON(http.StatusBadRequest, gin.H{"error": "You have already answered this"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	h.hub.Broadcast(services.EventAnswerSubmitted, answer)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Answer submitted successfully",
		"answer":  answer,
	})
}
