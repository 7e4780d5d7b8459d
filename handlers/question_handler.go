package handlers

import (
	"errors"
	"net/http"

	"dailyquiz/services"
	"dailyquiz/store"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	store *store.Store
	hub   *services.Hub
}

func NewQuestionHandler(store *store.Store, hub *services.Hub) *QuestionHandler {
	return &QuestionHandler{
		store: store,
		hub:   hub,
	}
}

func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Questions())
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req store.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.store.CreateQuestion(&req)
	if err != nil {
		var ve *store.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.hub.Broadcast(services.EventQuestionPosted, question)

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Question posted successfully",
		"question": question,
	})
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	question, err := h.store.QuestionByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) UpdateAnswer(c *gin.Context) {
	var req struct {
		Answer string `json:"answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.store.UpdateQuestionAnswer(c.Param("id"), req.Answer)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": question,
	})
}

func (h *QuestionHandler) ResetQuestions(c *gin.Context) {
	h.store.ResetQuestions()

	h.hub.Broadcast(services.EventQuestionsReset, nil)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All questions deleted",
	})
}
