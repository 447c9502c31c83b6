// Package context carries request-scoped values (request id, logger) through
// the HTTP API, the push worker and the usecases they call.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request id set by the request id middleware, or a fresh one.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request id carried by ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithCaller tags the request logger with the resolved caller so engine logs
// (ledger writes, degraded reads) can be traced back to a user or guest.
// A context without a request logger is returned unchanged.
func WithCaller(ctx context.Context, userID *uuid.UUID, guestPhone string) context.Context {
	logger := GetLogger(ctx)
	if logger == nil {
		return ctx
	}

	if userID != nil {
		logger = logger.With(slog.String("user_id", userID.String()))
	}
	if guestPhone != "" {
		logger = logger.With(slog.String("guest", maskPhone(guestPhone)))
	}

	return WithLogger(ctx, logger)
}

// maskPhone keeps the last four digits.
func maskPhone(phone string) string {
	const visible = 4
	if len(phone) <= visible {
		return "****"
	}

	return "****" + phone[len(phone)-visible:]
}
