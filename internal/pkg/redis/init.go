package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/Ilia-Pringless/YaTube/internal/api/config"
	"github.com/Ilia-Pringless/YaTube/internal/pkg/logger"
)

var Rdb *redis.Client

// InitRedis establishes the Redis client connection.
func InitRedis(cfg config.RedisConfig) error {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	rdb.AddHook(logger.NewRedisLogger())

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return err
	}

	Rdb = rdb
	return nil
}

// GetRdbClient returns the shared client.
func GetRdbClient() *redis.Client {
	return Rdb
}
