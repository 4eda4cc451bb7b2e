package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For splitting list values
	"time"    // For window durations

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort        string        // Application port
	DBUser         string        // Database user
	DBPassword     string        // Database password
	DBHost         string        // Database host
	DBPort         string        // Database port
	DBName         string        // Database name
	JWTSecret      string        // JWT secret key
	AdminEmail     string        // Seed admin email
	AdminPassword  string        // Seed admin password
	AllowedOrigins []string      // CORS allow-list
	RedisAddr      string        // Redis server address
	RedisPass      string        // Redis password
	RedisDB        int           // Redis database number
	RateLimit      int           // Requests allowed per window per client
	RateWindow     time.Duration // Rate limit window
	IsProd         bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),              // Application port
		DBUser:         os.Getenv("DB_USER"),                    // Database user
		DBPassword:     os.Getenv("DB_PASSWORD"),                // Database password
		DBHost:         os.Getenv("DB_HOST"),                    // Database host
		DBPort:         os.Getenv("DB_PORT"),                    // Database port
		DBName:         os.Getenv("DB_NAME"),                    // Database name
		JWTSecret:      os.Getenv("JWT_SECRET"),                 // JWT secret key
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),                // Seed admin email
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),             // Seed admin password
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")), // CORS allow-list
		RedisAddr:      os.Getenv("REDIS_ADDR"),                 // Redis server address
		RedisPass:      os.Getenv("REDIS_PASS"),                 // Redis password
		RedisDB:        redisDB,                                 // Redis database number
		RateLimit:      getEnvInt("RATE_LIMIT", 100),            // Requests per window
		RateWindow:     time.Duration(getEnvInt("RATE_WINDOW_MINUTES", 15)) * time.Minute, // Window length
		IsProd:         os.Getenv("IS_PROD") == "true",          // Is production environment
	}
}

// DSN builds the MySQL data source name from the database fields
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

// getEnv returns the environment value or a fallback when unset
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt returns the environment value as a positive int, or a fallback
func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

// splitList splits a comma-separated env value, dropping empty entries
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
