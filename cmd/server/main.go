package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ajharbinger/lead-intent-api/internal/api"
	"github.com/ajharbinger/lead-intent-api/internal/logger"
	"github.com/ajharbinger/lead-intent-api/internal/middleware"
	"github.com/ajharbinger/lead-intent-api/pkg/config"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize configuration
	cfg := config.New()

	appLogger := logger.New(cfg.Environment)

	if !cfg.HasGroqCredentials() {
		appLogger.Warn("GROQ_API_KEY is not set; AI scoring will degrade to intent=error")
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	r := gin.New()

	if err := r.SetTrustedProxies(cfg.GetTrustedProxies()); err != nil {
		appLogger.Fatal("Failed to set trusted proxies", err)
	}

	// Add middleware
	r.Use(middleware.LoggingMiddleware(appLogger))
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.CORSMiddleware(cfg))
	r.Use(middleware.InputValidationMiddleware(cfg))

	if cfg.EnableRateLimit {
		r.Use(middleware.RateLimitingMiddleware(100, 100))
	}

	r.Use(gin.Recovery())

	// Setup API routes
	api.SetupRoutes(r, cfg, appLogger)

	appLogger.Info("Server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		appLogger.Fatal("Failed to start server", err)
	}
}
