package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nearby/config"
	deliverycontext "nearby/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestValidRequestID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "req-123", want: true},
		{id: "0f8fad5b-d9cb-469f-a165-70867728950e", want: true},
		{id: "", want: false},
		{id: "has space", want: false},
		{id: "line\nbreak", want: false},
		{id: strings.Repeat("a", maxRequestIDLength+1), want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validRequestID(tt.id), "id %q", tt.id)
	}
}

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/boom", func(c echo.Context) error { return c.NoContent(http.StatusInternalServerError) })
	e.GET("/echo-id", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)

	t.Run("keeps a valid client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/echo-id", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-7")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-7", rec.Body.String())
		assert.Equal(t, "client-7", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("replaces an unsafe client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/echo-id", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "bad id")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.NotEqual(t, "bad id", rec.Body.String())
		assert.Len(t, rec.Body.String(), 36)
	})
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("quiet on success without debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.NotContains(t, buf.String(), "HTTP Request")
	})

	t.Run("server errors are always logged with the request id", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)

		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-500")
		e.ServeHTTP(httptest.NewRecorder(), req)

		assert.Contains(t, buf.String(), "HTTP Request")
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), `"request_id":"req-500"`)
		assert.Contains(t, buf.String(), `"route":"/boom"`)
	})

	t.Run("debug logs every request", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, true)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Contains(t, buf.String(), `"status":200`)
	})
}
