// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"tamiltaxi/config"

	"github.com/go-redis/redis/v8"
)

// RateLimitClient is the Redis client backing per-IP request counters.
var RateLimitClient *redis.Client

// InitRedis initializes the Redis client used for rate limiting.
func InitRedis() {
	RateLimitClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := RateLimitClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
}

// GetRateLimitClient returns the Redis client for rate limiting.
func GetRateLimitClient() *redis.Client {
	if RateLimitClient == nil {
		InitRedis()
	}
	return RateLimitClient
}
