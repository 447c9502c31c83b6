package impl

import (
	"context"
	"log/slog"
	"time"

	"nearby/config"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/service"
	"nearby/internal/errors"
)

// storeGuard bounds every backing store call with the configured timeout.
type storeGuard struct {
	timeout time.Duration
}

func newStoreGuard(cfg *config.Config) storeGuard {
	return storeGuard{timeout: engineConfig(cfg).StoreTimeout}
}

func (g storeGuard) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, g.timeout)
}

// isStoreTimeout reports whether err came from an expired store deadline.
func isStoreTimeout(err error) bool {
	return errors.IsTimeout(err)
}

// writeFailure surfaces a write path store error. Timeouts become ErrBackingStoreTimeout
// so the caller never assumes the write went through.
func writeFailure(err error, message string) error {
	if isStoreTimeout(err) {
		return errors.Wrap(domainerrors.ErrBackingStoreTimeout.WithDetails(err.Error()), message)
	}

	return errors.Wrap(err, message)
}

// engineConfig returns the engine section, falling back to defaults.
func engineConfig(cfg *config.Config) *config.EngineConfig {
	if cfg == nil || cfg.Engine == nil {
		return config.DefaultEngineConfig()
	}

	return cfg.Engine
}

// entitlementsConfig returns the entitlements section, falling back to defaults.
func entitlementsConfig(cfg *config.Config) *config.EntitlementsConfig {
	if cfg == nil || cfg.Entitlements == nil {
		return config.DefaultEntitlementsConfig()
	}

	return cfg.Entitlements
}

func metricsOrNop(m service.EngineMetrics) service.EngineMetrics {
	if m == nil {
		return service.NopEngineMetrics{}
	}

	return m
}

func utcNow() time.Time {
	return time.Now().UTC()
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}

	return logger
}
