package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dailyquiz/config"
	"dailyquiz/handlers"
	"dailyquiz/routes"
	"dailyquiz/services"
	"dailyquiz/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

func main() {
	if err := godotenv.Load(); err != nil {
		// A missing .env file is fine; config falls back to defaults.
		slog.Debug("no .env file loaded", "err", err)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		slog.Warn("unknown timezone, falling back to UTC", "timezone", cfg.Timezone)
		loc = time.UTC
	}

	dataStore := store.New(cfg.ResetPassword, loc)

	hub := services.NewHub()
	go hub.Run()

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"message": fmt.Sprint(recovered),
		})
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	questionHandler := handlers.NewQuestionHandler(dataStore, hub)
	answerHandler := handlers.NewAnswerHandler(dataStore, hub)
	mediaHandler := handlers.NewMediaHandler(dataStore, hub)
	phoneHandler := handlers.NewPhoneHandler(dataStore, hub)
	statsHandler := handlers.NewStatsHandler(dataStore)
	adminHandler := handlers.NewAdminHandler(dataStore, hub)
	metaHandler := handlers.NewMetaHandler(dataStore)

	routes.SetupRoutes(router, questionHandler, answerHandler, mediaHandler,
		phoneHandler, statsHandler, adminHandler, metaHandler, hub)

	httpServer := &http.Server{
		Addr:              net.JoinHostPort(cfg.BindAddress, cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("quiz server listening", "addr", httpServer.Addr)
		slog.Info("learn something new every day!")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("error listening and serving", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("error shutting down server", "err", err)
	}
}
