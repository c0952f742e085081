package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/lshigami/examcore/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// NewRedisClient dials redis and checks the connection with a PING.
func NewRedisClient(ctx context.Context, cfg config.Redis) (redis.UniversalClient, error) {
	opts := &redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}
	log.Info().Str("addr", cfg.Addr).Int("db", cfg.DB).Msg("Redis connection established")
	return client, nil
}
