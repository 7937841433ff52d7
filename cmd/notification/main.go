package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/krishilink/krishilink/internal/pkg/config"
	"github.com/krishilink/krishilink/internal/pkg/database"
	"github.com/krishilink/krishilink/internal/pkg/logger"
	"github.com/krishilink/krishilink/services/notification/handler"
	"github.com/krishilink/krishilink/services/notification/repository"
)

func main() {
	appName := "notification-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/notification.env"
	}
	configs := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	logger.SetGlobalLogger(appLogger)

	logger.Info("Starting application", logger.Fields{
		"app":         appName,
		"version":     configs.App.Version,
		"environment": configs.App.Environment,
	})

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Fields{"error": err.Error()})
	}
	defer postgresClient.Close()

	// Initialize repository
	notificationRepo := repository.NewNotificationRepo(postgresClient.GetDB())

	// Initialize NSQ consumers for auth events
	consumer := handler.NewConsumer(notificationRepo)
	if err := consumer.Start(configs.NSQ.Address); err != nil {
		logger.Fatal("Failed to start NSQ consumers", logger.Fields{"error": err.Error()})
	}
	defer consumer.Stop()

	// Initialize REST server
	if configs.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	notificationHandler := handler.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", configs.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Starting server", logger.Fields{
			"app":  appName,
			"port": configs.Server.Port,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server terminated", logger.Fields{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down gracefully", logger.Fields{"app": appName})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", logger.Fields{"error": err.Error()})
	}
}
