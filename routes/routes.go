package routes

import (
	"log/slog"
	"net/http"

	"dailyquiz/handlers"
	"dailyquiz/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // quiz pages are served from arbitrary origins
	},
}

func SetupRoutes(
	router *gin.Engine,
	questionHandler *handlers.QuestionHandler,
	answerHandler *handlers.AnswerHandler,
	mediaHandler *handlers.MediaHandler,
	phoneHandler *handlers.PhoneHandler,
	statsHandler *handlers.StatsHandler,
	adminHandler *handlers.AdminHandler,
	metaHandler *handlers.MetaHandler,
	hub *services.Hub,
) {
	questions := router.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.POST("", questionHandler.CreateQuestion)
		questions.GET("/:id", questionHandler.GetQuestion)
		questions.PUT("/:id/answer", questionHandler.UpdateAnswer)
		questions.DELETE("/reset", questionHandler.ResetQuestions)
	}

	answers := router.Group("/answers")
	{
		answers.GET("", answerHandler.ListAnswers)
		answers.GET("/question/:questionId", answerHandler.ListAnswersByQuestion)
		answers.POST("", answerHandler.SubmitAnswer)
	}

	media := router.Group("/media")
	{
		media.GET("", mediaHandler.ListMedia)
		media.POST("", mediaHandler.UploadMedia)
		media.GET("/latest", mediaHandler.LatestMedia)
		media.DELETE("/:id", mediaHandler.DeleteMedia)
	}

	phones := router.Group("/phones")
	{
		phones.GET("", phoneHandler.ListPhones)
		phones.POST("", phoneHandler.RegisterPhone)
	}

	router.GET("/stats", statsHandler.GetStats)
	router.POST("/admin/reset-all", adminHandler.ResetAll)

	router.GET("/api", metaHandler.APIInfo)
	router.GET("/health", metaHandler.Health)

	// Live event stream for connected quiz pages.
	router.GET("/ws", func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", "err", err)
			return
		}
		hub.RegisterClient(conn)
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":         "Endpoint not found",
			"message":       "Please check the API documentation",
			"requestedPath": c.Request.URL.Path,
		})
	})
}
