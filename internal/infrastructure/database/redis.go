package database

import (
	"context"
	"fmt"
	"log"
	"time"

	appconfig "mecanica_gateway/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects the sender rate monitor store. The caller decides
// whether a failed ping is fatal.
func NewRedisClient(ctx context.Context, cfg appconfig.SenderRateConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return client, fmt.Errorf("pinging redis at %s: %w", cfg.RedisAddr, err)
	}
	log.Printf("[ratelimit][redis] connected addr=%s", cfg.RedisAddr)
	return client, nil
}
