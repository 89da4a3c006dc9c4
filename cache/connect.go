package cache

import (
	"context"
	"time"

	"khmer_calendar/config"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

// Client is nil when no Redis address is configured; every helper in this
// package then degrades to computing values directly.
var Client *redis.Client

// TTL applies to every cached entry.
var TTL = 6 * time.Hour

func Connect(cfg config.RedisConfig) error {
	if cfg.Addr == "" {
		log.Info().Msg("redis address not configured, caching disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return eris.Wrapf(err, "ping redis at %s", cfg.Addr)
	}

	Client = client
	if cfg.TTLSeconds > 0 {
		TTL = time.Duration(cfg.TTLSeconds) * time.Second
	}
	log.Info().Str("addr", cfg.Addr).Dur("ttl", TTL).Msg("redis connected")
	return nil
}

func Close() {
	if Client == nil {
		return
	}
	if err := Client.Close(); err != nil {
		log.Warn().Err(err).Msg("close redis")
	}
	Client = nil
}
