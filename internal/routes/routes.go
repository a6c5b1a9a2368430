// Package routes defines HTTP routes for the vacancy service.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jobvault/vacancy-service/docs"
	"github.com/jobvault/vacancy-service/internal/config"
	"github.com/jobvault/vacancy-service/internal/handlers"
	"github.com/jobvault/vacancy-service/internal/metrics"
	"github.com/jobvault/vacancy-service/internal/middleware"
	"github.com/jobvault/vacancy-service/internal/service"
)

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, cfg *config.Config, authService service.AuthService,
	authHandler *handlers.AuthHandler, jobHandler *handlers.JobHandler, healthHandler *handlers.HealthHandler) {

	router.Use(middleware.RequestID())
	router.Use(metrics.Collector())

	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	users := v1.Group("/users")
	{
		users.POST("/register", authHandler.Register)
	}

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", middleware.Auth(authService), authHandler.Me)
	}

	jobs := v1.Group("/jobs", middleware.Auth(authService))
	{
		jobs.POST("", jobHandler.Create)
		jobs.GET("", jobHandler.List)
		jobs.GET("/:id", jobHandler.Get)
		jobs.PUT("/:id", jobHandler.Update)
		jobs.DELETE("/:id", jobHandler.Delete)
		jobs.POST("/import", jobHandler.Import)
	}

	// Swagger documentation (only if SWAGGER_HOST is configured)
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
