package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"nearby/config"
	deliverycontext "nearby/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// slowRequestThreshold marks requests logged even when debug logging is off.
const slowRequestThreshold = time.Second

// LoggerMiddleware writes one access log line per request. With debug off only
// failed and slow requests are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		latency := time.Since(start)
		if m.debug || err != nil || latency >= slowRequestThreshold || c.Response().Status >= http.StatusInternalServerError {
			m.logRequest(c, start, latency, err)
		}

		return err
	}
}

// logRequest uses the request-scoped logger, which already carries the request
// id and, once Identify has run, the caller.
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, latency time.Duration, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
		slog.String("time", start.Format(time.RFC3339)),
	}
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}
	if latency >= slowRequestThreshold {
		fields = append(fields, slog.Bool("slow", true))
	}

	logLevel := slog.LevelInfo
	switch {
	case res.Status >= http.StatusInternalServerError:
		logLevel = slog.LevelError
	case res.Status >= http.StatusBadRequest:
		logLevel = slog.LevelWarn
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
