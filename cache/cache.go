package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"khmer_calendar/constants"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func Key(parts ...string) string {
	return constants.CACHE_PREFIX + strings.Join(parts, ":")
}

// Remember returns the value cached under key, computing and storing it on
// a miss. Redis errors are logged and never fail the caller.
func Remember[T any](ctx context.Context, key string, compute func() T) T {
	if Client == nil {
		return compute()
	}

	raw, err := Client.Get(ctx, key).Bytes()
	if err == nil {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached
		}
		log.Warn().Str("key", key).Msg("discarding undecodable cache entry")
	} else if !errors.Is(err, redis.Nil) {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}

	value := compute()
	Store(ctx, key, value)
	return value
}

// Store writes value under key for TTL.
func Store(ctx context.Context, key string, value any) {
	if Client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache encode failed")
		return
	}
	if err := Client.Set(ctx, key, data, TTL).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// Publish sends payload as JSON on channel. It reports whether Redis took
// the message, so callers can fall back to local delivery.
func Publish(ctx context.Context, channel string, payload any) bool {
	if Client == nil {
		return false
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Warn().Err(err).Str("channel", channel).Msg("publish encode failed")
		return false
	}
	if err := Client.Publish(ctx, channel, data).Err(); err != nil {
		log.Warn().Err(err).Str("channel", channel).Msg("publish failed")
		return false
	}
	return true
}

// Subscribe delivers raw message payloads on channel to handle until ctx is
// done. It returns immediately when Redis is not configured.
func Subscribe(ctx context.Context, channel string, handle func([]byte)) {
	if Client == nil {
		return
	}
	pubsub := Client.Subscribe(ctx, channel)
	defer pubsub.Close()

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			handle([]byte(msg.Payload))
		}
	}
}
