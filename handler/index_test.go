package handler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"khmer_calendar/cache"
	"khmer_calendar/config"
	"khmer_calendar/constants"
	"khmer_calendar/model"
	"khmer_calendar/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	require.NoError(t, cache.Connect(config.RedisConfig{Addr: mr.Addr()}))
	t.Cleanup(cache.Close)
	return mr
}

func freezeNow(t *testing.T, now time.Time) {
	t.Helper()
	utils.Now = func() time.Time { return now }
	t.Cleanup(func() { utils.Now = time.Now })
}

func TestWarmCache(t *testing.T) {
	mr := setupRedis(t)
	freezeNow(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	WarmCache()

	assert.True(t, mr.Exists("khmer-calendar:holidays:2025"))
	assert.True(t, mr.Exists("khmer-calendar:holidays:2026"))

	raw, err := mr.Get("khmer-calendar:holidays:2026")
	require.NoError(t, err)
	var cached []model.ResolvedHoliday
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, Holidays.InYear(2026), cached)
}

func TestYearHolidays_ServedFromCache(t *testing.T) {
	mr := setupRedis(t)
	require.NoError(t, mr.Set(yearCacheKey(2030), `[{"nameEn":"Cached","date":"2030-01-01","year":2030}]`))

	got := yearHolidays(context.Background(), 2030)
	require.Len(t, got, 1)
	assert.Equal(t, "Cached", got[0].NameEn)
}

func TestYearHolidays_WithoutRedis(t *testing.T) {
	got := yearHolidays(context.Background(), 2024)
	assert.Len(t, got, 22)
}

func TestPublishToday_ViaRedis(t *testing.T) {
	setupRedis(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sub := cache.Client.Subscribe(ctx, constants.CHANNEL_TODAY)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	PublishToday(time.Date(2025, 1, 1, 0, 0, 5, 0, utils.ICT))

	select {
	case msg := <-sub.Channel():
		var payload model.ConvertResult
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &payload))
		assert.Equal(t, "2025-01-01", payload.Date)
		assert.True(t, payload.IsHoliday)
	case <-time.After(2 * time.Second):
		t.Fatal("rollover not published")
	}
}

func TestPublishToday_LocalFallback(t *testing.T) {
	// No Redis and no clients: the local broadcast must not block or panic.
	assert.NotPanics(t, func() {
		PublishToday(time.Date(2025, 1, 1, 0, 0, 5, 0, utils.ICT))
	})
}
