package cache

import (
	"context"
	"testing"
	"time"

	"khmer_calendar/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	require.NoError(t, Connect(config.RedisConfig{Addr: mr.Addr(), TTLSeconds: 120}))
	t.Cleanup(func() {
		Close()
		TTL = 6 * time.Hour
	})
	return mr
}

func TestConnect_Disabled(t *testing.T) {
	require.NoError(t, Connect(config.RedisConfig{}))
	assert.Nil(t, Client)
}

func TestConnect_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	err := Connect(config.RedisConfig{Addr: addr})
	assert.Error(t, err)
	assert.Nil(t, Client)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "khmer-calendar:holidays:2024", Key("holidays", "2024"))
}

func TestRemember(t *testing.T) {
	mr := setupRedis(t)
	ctx := context.Background()
	assert.Equal(t, 120*time.Second, TTL)

	calls := 0
	compute := func() []string {
		calls++
		return []string{"a", "b"}
	}

	assert.Equal(t, []string{"a", "b"}, Remember(ctx, "k", compute))
	assert.Equal(t, []string{"a", "b"}, Remember(ctx, "k", compute))
	assert.Equal(t, 1, calls)

	raw, err := mr.Get("k")
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, raw)
	assert.Equal(t, 120*time.Second, mr.TTL("k"))

	mr.FastForward(121 * time.Second)
	Remember(ctx, "k", compute)
	assert.Equal(t, 2, calls)
}

func TestRemember_CorruptEntry(t *testing.T) {
	mr := setupRedis(t)
	require.NoError(t, mr.Set("k", "{not json"))

	got := Remember(context.Background(), "k", func() int { return 7 })
	assert.Equal(t, 7, got)

	raw, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "7", raw)
}

func TestRemember_WithoutRedis(t *testing.T) {
	Client = nil
	calls := 0
	for range 2 {
		Remember(context.Background(), "k", func() int { calls++; return calls })
	}
	assert.Equal(t, 2, calls)
	assert.False(t, Publish(context.Background(), "ch", "x"))
}

func TestPublishSubscribe(t *testing.T) {
	setupRedis(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan []byte, 1)
	go Subscribe(ctx, "calendar:today", func(b []byte) { received <- b })

	// Wait until the subscription is registered before publishing.
	require.Eventually(t, func() bool {
		n, err := Client.PubSubNumSub(ctx, "calendar:today").Result()
		return err == nil && n["calendar:today"] == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.True(t, Publish(ctx, "calendar:today", map[string]string{"date": "2025-01-01"}))

	select {
	case b := <-received:
		assert.JSONEq(t, `{"date":"2025-01-01"}`, string(b))
	case <-time.After(2 * time.Second):
		t.Fatal("message not delivered")
	}
}
