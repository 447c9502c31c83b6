// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is how a premium action was paid for.
type PaymentMethod string

const (
	PaymentMethodPoints     PaymentMethod = "points"
	PaymentMethodStripe     PaymentMethod = "stripe"
	PaymentMethodMembership PaymentMethod = "membership"
	PaymentMethodQuota      PaymentMethod = "quota"
)

// NoBoostFactor is the multiplier applied when a subject has no effective boost.
const NoBoostFactor = 1.0

// Boost is a time-limited visibility multiplier. Rows are deactivated, never deleted.
type Boost struct {
	ID            uuid.UUID     `json:"id"`
	SubjectID     uuid.UUID     `json:"subject_id"`
	BoostType     string        `json:"boost_type"`
	Factor        float64       `json:"factor"`
	StartedAt     time.Time     `json:"started_at"`
	ExpiresAt     time.Time     `json:"expires_at"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	MembershipID  *uuid.UUID    `json:"membership_id,omitempty"` // Set when granted by a membership.
	PaymentRef    string        `json:"payment_ref,omitempty"`   // Card payment redeemed for this boost.
	Active        bool          `json:"active"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// IsEffective reports whether the boost applies at now.
func (b *Boost) IsEffective(now time.Time) bool {
	return b != nil && b.Active && b.ExpiresAt.After(now)
}

// BoostType is a purchasable boost from the catalog.
type BoostType struct {
	Name            string
	Factor          float64
	DurationMinutes int
	PointCost       int
	PriceCents      int64
	Currency        string
}
