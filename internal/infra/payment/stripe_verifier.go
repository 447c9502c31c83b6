// Package payment verifies card payments captured by Stripe.
package payment

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"nearby/config"
	"nearby/internal/domain/service"
	"nearby/internal/errors"

	gobreaker "github.com/sony/gobreaker/v2"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

const defaultTimeout = 10 * time.Second

// StripeVerifier looks up payment intents through the Stripe API.
type StripeVerifier struct {
	api     *client.API
	breaker *gobreaker.CircuitBreaker[*service.PaymentIntent]
}

var _ service.PaymentVerifier = (*StripeVerifier)(nil)

// NewPaymentVerifier returns the Stripe verifier, or a nil interface when no key is
// configured so card payments are reported as unsupported.
func NewPaymentVerifier(cfg *config.Config, logger *slog.Logger) service.PaymentVerifier {
	if cfg.Payment == nil || strings.TrimSpace(cfg.Payment.StripeSecretKey) == "" {
		return nil
	}

	return NewStripeVerifier(cfg.Payment, logger)
}

// NewStripeVerifier is the constructor for StripeVerifier. Retries are left to the
// caller; the breaker opens on repeated provider failures.
func NewStripeVerifier(cfg *config.PaymentConfig, logger *slog.Logger) *StripeVerifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	backendConfig := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: timeout},
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	}
	if baseURL := strings.TrimRight(cfg.StripeBaseURL, "/"); baseURL != "" {
		backendConfig.URL = stripe.String(baseURL)
	}

	api := &client.API{}
	api.Init(cfg.StripeSecretKey, &stripe.Backends{
		API: stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig),
	})

	return &StripeVerifier{
		api: api,
		breaker: gobreaker.NewCircuitBreaker[*service.PaymentIntent](gobreaker.Settings{
			Name:    "stripe",
			Timeout: 30 * time.Second,
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("payment circuit breaker state changed",
					slog.String("name", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()))
			},
		}),
	}
}

// Verify maps the intent onto the engine's three payment outcomes.
func (v *StripeVerifier) Verify(ctx context.Context, paymentIntentID string) (*service.PaymentIntent, error) {
	return v.breaker.Execute(func() (*service.PaymentIntent, error) {
		params := &stripe.PaymentIntentParams{}
		params.Context = ctx

		intent, err := v.api.PaymentIntents.Get(paymentIntentID, params)
		if err != nil {
			var stripeErr *stripe.Error
			if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusNotFound {
				// An unknown intent was never paid.
				return &service.PaymentIntent{ID: paymentIntentID, Status: service.PaymentFailed}, nil
			}

			return nil, errors.Wrap(err, "payment provider request failed")
		}

		return &service.PaymentIntent{
			ID:       intent.ID,
			Status:   statusOf(intent.Status),
			Amount:   intent.AmountReceived,
			Currency: string(intent.Currency),
			Metadata: intent.Metadata,
		}, nil
	})
}

func statusOf(status stripe.PaymentIntentStatus) service.PaymentStatus {
	switch status {
	case stripe.PaymentIntentStatusSucceeded:
		return service.PaymentSucceeded
	case stripe.PaymentIntentStatusProcessing,
		stripe.PaymentIntentStatusRequiresCapture,
		stripe.PaymentIntentStatusRequiresAction,
		stripe.PaymentIntentStatusRequiresConfirmation:
		return service.PaymentPending
	default:
		return service.PaymentFailed
	}
}
