package utils

import (
	"context" // Context for Redis operations
	"time"    // Window durations

	"github.com/redis/go-redis/v9" // Redis client
)

// CountRequest increments the fixed-window counter for key and returns the
// new count. The window's TTL is set when the counter is first created, so
// every counter expires window-length after its first hit.
func CountRequest(ctx context.Context, rdb *redis.Client, key string, window time.Duration) (int64, error) {
	count, err := rdb.Incr(ctx, key).Result() // Increment the counter
	if err != nil {
		return 0, err // Return error if Redis fails
	}
	// First hit in the window starts the expiry clock
	if count == 1 {
		if err := rdb.Expire(ctx, key, window).Err(); err != nil {
			return count, err // Return error if setting TTL fails
		}
	}
	return count, nil // Return the current count
}
