package main

import (
	"log"
	"os"
	"time"

	"github.com/krishilink/krishilink/internal/pkg/config"
	"github.com/krishilink/krishilink/internal/pkg/database"
	"github.com/krishilink/krishilink/internal/pkg/health"
	"github.com/krishilink/krishilink/internal/pkg/logger"
	"github.com/krishilink/krishilink/internal/pkg/mailer"
	"github.com/krishilink/krishilink/internal/pkg/middleware"
	nsqpkg "github.com/krishilink/krishilink/internal/pkg/nsq"
	"github.com/krishilink/krishilink/internal/pkg/server"
	"github.com/krishilink/krishilink/services/auth/gateway"
	httpHandler "github.com/krishilink/krishilink/services/auth/handler/http"
	"github.com/krishilink/krishilink/services/auth/repository"
	"github.com/krishilink/krishilink/services/auth/usecase"
	"github.com/labstack/echo/v4"
)

func main() {
	appName := "auth-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/auth.env"
	}
	configs := config.InitConfig(configPath)

	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

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

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Fields{"error": err.Error()})
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Fields{"error": err.Error()})
	}
	defer producer.Stop()

	// Initialize the mailer for OTP delivery
	otpMailer := mailer.New(mailer.Config{
		Host:     configs.SMTP.Host,
		Port:     configs.SMTP.Port,
		Username: configs.SMTP.Username,
		Password: configs.SMTP.Password,
		From:     configs.SMTP.From,
		Timeout:  time.Duration(configs.SMTP.TimeoutSeconds) * time.Second,
	})

	// Initialize repository
	userRepo := repository.NewUserRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	authGW := gateway.NewAuthGW(otpMailer, producer)

	// Initialize usecase
	authUC := usecase.NewAuthUC(userRepo, authGW, configs)

	// Handlers for HTTP
	authHandler := httpHandler.NewAuthHandler(authUC)
	userHandler := httpHandler.NewUserHandler(authUC)
	handler := httpHandler.NewHandler(authHandler, userHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, configs.App.Version)

	// Register service routes
	handler.RegisterRoutes(e)

	logger.Info("Starting server", logger.Fields{
		"app":  appName,
		"port": configs.Server.Port,
	})

	srv := server.NewGracefulServer(e, configs.Server.Port, configs.Server.ShutdownTimeout)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server terminated", logger.Fields{
			"app":   appName,
			"error": err.Error(),
		})
	}
}
