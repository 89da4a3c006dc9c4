package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLog redirects the global logger and returns the access log line
// of the request.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func requestLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		if entry["message"] == "request" {
			return entry
		}
	}
	t.Fatal("no request log line")
	return nil
}

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(RequestID())
	app.Use(RequestLogger())
	app.Use(recover.New())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/fail", func(c *fiber.Ctx) error { return eris.New("boom") })
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })
	app.Get("/panic", func(c *fiber.Ctx) error { panic("kaboom") })
	app.Use(NotFound)
	return app
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		path   string
		status int
		level  string
	}{
		{"/ok", http.StatusNoContent, "info"},
		{"/fail", http.StatusInternalServerError, "error"},
		{"/teapot", http.StatusTeapot, "info"},
		{"/panic", http.StatusInternalServerError, "error"},
		{"/missing", http.StatusNotFound, "info"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			buf := captureLog(t)
			resp, err := newApp().Test(httptest.NewRequest(http.MethodGet, tt.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			entry := requestLine(t, buf)
			assert.EqualValues(t, tt.status, entry["status"])
			assert.Equal(t, tt.level, entry["level"])
			assert.NotEmpty(t, entry["requestId"])
		})
	}
}

func TestErrorHandler_HidesInternalErrors(t *testing.T) {
	captureLog(t)
	resp, err := newApp().Test(httptest.NewRequest(http.MethodGet, "/fail", nil), -1)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]any{"success": false, "error": "Internal server error"}, body)
}
