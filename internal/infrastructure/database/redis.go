package database

import (
	"context"
	"fmt"

	"mixto_gestao/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects and pings the configured Redis.
func NewRedisClient(ctx context.Context, cfg config.StorageConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return rdb, nil
}
