// Package main is the entry point for the vacancy service.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	_ "github.com/jobvault/vacancy-service/docs"
	"github.com/jobvault/vacancy-service/internal/config"
	"github.com/jobvault/vacancy-service/internal/handlers"
	"github.com/jobvault/vacancy-service/internal/hh"
	"github.com/jobvault/vacancy-service/internal/repository"
	"github.com/jobvault/vacancy-service/internal/routes"
	"github.com/jobvault/vacancy-service/internal/service"
	"github.com/jobvault/vacancy-service/pkg/database"
	"github.com/jobvault/vacancy-service/pkg/logging"
	"github.com/jobvault/vacancy-service/pkg/redis"
)

// @title Vacancy Service API
// @version 1.0
// @description Job vacancy management with bearer-token authentication
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	log := logging.New(cfg.Environment)

	db, err := database.Connect(database.PostgresConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  "disable",
		TimeZone: "UTC",
	})
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// The session cache is optional: when redis is down the service runs
	// with signature+expiry verification only, trading revocation strength
	// for availability.
	var sessions service.SessionStore
	if redisClient, err := redis.NewClient(cfg.RedisAddr(), cfg.RedisPassword); err != nil {
		log.Warn("session cache unavailable, running in stateless-token mode", "error", err)
		sessions = service.NewUnavailableSessionStore()
	} else {
		sessions = service.NewRedisSessionStore(redisClient)
	}

	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	authService := service.NewAuthService(userRepo, tokens, sessions, log)
	searcher := hh.NewClient(cfg.VacancyAPIURL, &http.Client{Timeout: 10 * time.Second})
	jobService := service.NewJobService(jobRepo, searcher, log)

	authHandler := handlers.NewAuthHandler(authService)
	jobHandler := handlers.NewJobHandler(jobService)
	healthHandler := handlers.NewHealthHandler()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	routes.Setup(router, cfg, authService, authHandler, jobHandler, healthHandler)

	log.Info("starting vacancy service", "port", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
