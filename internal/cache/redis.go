package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	redisClient *redis.Client
	enabled     bool
)

// Initialize sets up the Redis connection if a URL is provided. Without one
// the cache stays disabled and every operation is a no-op, so running
// without Redis behaves exactly like having no cache at all.
func Initialize(redisURL string, logger *zap.Logger) {
	if redisURL == "" {
		logger.Info("redis url not provided, caching disabled")
		enabled = false
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Warn("failed to parse redis url, caching disabled", zap.Error(err))
		enabled = false
		return
	}

	redisClient = redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("failed to connect to redis, caching disabled", zap.Error(err))
		enabled = false
		return
	}

	enabled = true
	logger.Info("redis cache initialized")
}

// Close closes the Redis connection
func Close() {
	if redisClient != nil {
		redisClient.Close()
	}
}

// Set stores a value in cache with expiration
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if !enabled {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return redisClient.Set(ctx, key, data, expiration).Err()
}

// Get retrieves a value from cache
func Get(ctx context.Context, key string, dest interface{}) error {
	if !enabled {
		return redis.Nil
	}

	data, err := redisClient.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Delete removes a key from cache
func Delete(ctx context.Context, key string) error {
	if !enabled {
		return nil
	}
	return redisClient.Del(ctx, key).Err()
}
