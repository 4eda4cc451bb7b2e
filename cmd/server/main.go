package main

import (
	"context"                        // context package is needed for the Redis ping
	"time"                           // Wall-clock for slot generation
	"booking_system/internal/api"    // Custom package for API handlers
	"booking_system/internal/config" // Custom package for configuration
	"booking_system/internal/db"     // Custom package for the database and startup phase

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// The token signing secret has no safe default
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is required")
	}

	// Connect to the database
	conn, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Startup phase: schema, admin seed and slot grid run before listening
	if err := db.AutoMigrate(conn); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	if err := db.SeedAdmin(conn, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logrus.Fatalf("admin seed failed: %v", err)
	}
	if err := db.GenerateSlots(conn, time.Now()); err != nil {
		logrus.Fatalf("slot generation failed: %v", err)
	}

	// Setup Redis client for the rate limiter, when configured
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	} else {
		logrus.Warn("REDIS_ADDR not set, rate limiting disabled")
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin with the full route table and middleware chain
	r := api.NewRouter(conn, cfg, redisClient)

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.Info("Server running on " + cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err) // Start the server on port cfg.AppPort
	}
}
