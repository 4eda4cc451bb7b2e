package api

import (
	"booking_system/internal/config"     // Application configuration
	"booking_system/internal/middleware" // Middleware chain

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// NewRouter builds the route table with the full middleware chain. The redis
// client may be nil, in which case rate limiting is skipped (tests, or a
// deployment without redis).
func NewRouter(db *gorm.DB, cfg *config.Config, rdb *redis.Client) *gin.Engine {
	r := gin.New()                          // Gin router instance
	r.Use(gin.Recovery())                   // Recover from handler panics
	r.Use(middleware.RequestIDMiddleware()) // Correlation IDs + request log
	// CORS allow-list from configuration
	if len(cfg.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		r.Use(cors.New(corsCfg))
	}
	// Fixed-window rate ceiling per client
	if rdb != nil {
		r.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimit, cfg.RateWindow))
	}

	// Public routes
	r.GET("/", HealthHandler())                            // Health endpoint
	r.POST("/register", RegisterHandler(db))               // Registration endpoint
	r.POST("/login", LoginHandler(db, cfg.JWTSecret))      // Login endpoint
	r.GET("/slots", ListSlotsHandler(db))                  // Open slot listing

	// Authenticated routes (protected by JWT)
	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authed.POST("/book", BookSlotHandler(db))       // Book slot endpoint
	authed.GET("/my-bookings", MyBookingsHandler(db)) // Own bookings endpoint

	// Admin routes (protected, admin only)
	admin := r.Group("/")
	admin.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware())
	admin.GET("/all-bookings", AllBookingsHandler(db)) // All bookings endpoint

	return r
}
