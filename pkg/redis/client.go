package redis

import (
	"github.com/redis/go-redis/v9"

	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/pkg/config"
)

// NewClient builds the client used for short-lived admin notices.
func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
