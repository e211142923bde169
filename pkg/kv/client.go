// Package kv provides the Redis-backed key-value layer: short-TTL JSON
// records (constraint blocks, language cache, warm flags), the
// token-based distributed lock used by boundary detection, and the
// atomic limit-occurrence counters reserved at confirm time.
//
// Consumers depend on the small interfaces defined here so unit tests
// can inject the in-memory implementations from memory.go.
package kv

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis using REDIS_ADDR / REDIS_PASSWORD /
// REDIS_DB and verifies the connection with a ping.
func NewRedisClient(ctx context.Context) (*redis.Client, error) {
	db, _ := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	client := redis.NewClient(&redis.Options{
		Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
