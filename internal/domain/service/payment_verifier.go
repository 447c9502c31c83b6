package service

import "context"

// PaymentStatus is the capture state of a payment intent.
type PaymentStatus string

const (
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentPending   PaymentStatus = "pending"
	PaymentFailed    PaymentStatus = "failed"
)

// PaymentIntent is what the engine needs to know about a captured card payment.
type PaymentIntent struct {
	ID       string
	Status   PaymentStatus
	Amount   int64 // Minor currency unit.
	Currency string
	Metadata map[string]string
}

// PaymentVerifier checks a card payment captured by the payment provider.
type PaymentVerifier interface {
	// Verify returns the payment intent. An unknown intent is reported as PaymentFailed.
	Verify(ctx context.Context, paymentIntentID string) (*PaymentIntent, error)
}
