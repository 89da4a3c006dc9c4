package handler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"khmer_calendar/cache"
	"khmer_calendar/constants"
	"khmer_calendar/helper"
	"khmer_calendar/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog/log"
)

var (
	todayClients = make(map[*websocket.Conn]bool)
	todayMu      sync.Mutex
)

// TodayFeed sends the current Khmer date on connect and again after every
// day rollover until the client disconnects.
func TodayFeed(c *websocket.Conn) {
	todayMu.Lock()
	err := c.WriteJSON(helper.Today(Holidays, Workdays, utils.NowICT()))
	if err == nil {
		todayClients[c] = true
	}
	todayMu.Unlock()
	if err != nil {
		log.Debug().Err(err).Msg("today feed: initial write failed")
		return
	}

	defer func() {
		todayMu.Lock()
		delete(todayClients, c)
		todayMu.Unlock()
		c.Close()
	}()

	// Incoming frames are ignored; reading detects the disconnect.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

// PublishToday is the rollover callback. With Redis every instance receives
// the update through ListenToday; without it only local clients are told.
func PublishToday(now time.Time) {
	payload := helper.Today(Holidays, Workdays, now)
	if cache.Publish(context.Background(), constants.CHANNEL_TODAY, payload) {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("today feed: encode")
		return
	}
	broadcastToday(data)
}

// ListenToday forwards rollover messages from Redis to this instance's
// clients until ctx is done.
func ListenToday(ctx context.Context) {
	cache.Subscribe(ctx, constants.CHANNEL_TODAY, broadcastToday)
}

func broadcastToday(data []byte) {
	todayMu.Lock()
	defer todayMu.Unlock()

	for conn := range todayClients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(todayClients, conn)
			conn.Close()
		}
	}
	log.Info().Int("clients", len(todayClients)).Msg("today feed: rollover broadcast")
}
