// Package usecase defines the application's business operations and the engine
// components they are composed of.
package usecase

import (
	"context"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/geo"

	"github.com/google/uuid"
)

// GeoIndex stores the last known point of every discoverable entity.
type GeoIndex interface {
	// Upsert validates the coordinate and replaces the entity's indexed location.
	Upsert(ctx context.Context, entry *entity.IndexedLocation) error

	// FindWithinRadius returns candidates no farther than radiusMiles from center,
	// nearest first. A store failure yields an empty result.
	FindWithinRadius(ctx context.Context, center entity.Coordinate, radiusMiles float64, filter entity.GeoFilter) ([]*entity.Candidate, error)

	// FindWithinBoundingBox returns candidates inside box with distances measured from
	// its center, nearest first. A store failure yields an empty result.
	FindWithinBoundingBox(ctx context.Context, box geo.BoundingBox, filter entity.GeoFilter) ([]*entity.Candidate, error)

	// FindNearbyForWrite is FindWithinRadius for write paths such as venue de-duplication:
	// store failures are returned instead of degrading to an empty result.
	FindNearbyForWrite(ctx context.Context, center entity.Coordinate, radiusMiles float64, filter entity.GeoFilter) ([]*entity.Candidate, error)

	// SetActive toggles whether the entity is discoverable.
	SetActive(ctx context.Context, entityID uuid.UUID, active bool) error
}

// BoostLedger tracks time-limited visibility multipliers per subject.
type BoostLedger interface {
	// EffectiveBoost returns the factor of the highest effective boost, or 1.0.
	EffectiveBoost(ctx context.Context, subjectID uuid.UUID) float64

	// EffectiveBoosts returns factors for many subjects in one store round trip.
	// Subjects without a boost map to 1.0.
	EffectiveBoosts(ctx context.Context, subjectIDs []uuid.UUID) map[uuid.UUID]float64

	// CurrentBoost returns the effective boost row, or nil.
	CurrentBoost(ctx context.Context, subjectID uuid.UUID) (*entity.Boost, error)

	// Activate installs a boost when its factor beats the effective one; otherwise it
	// fails with a BoostAlreadyActiveError carrying the existing boost.
	Activate(ctx context.Context, input *ActivateInput) (*entity.Boost, error)

	// Cancel deactivates one of the subject's boosts. There is no refund.
	Cancel(ctx context.Context, subjectID, boostID uuid.UUID) error
}

// ActivateInput describes a boost to install.
type ActivateInput struct {
	SubjectID       uuid.UUID
	BoostType       string
	Factor          float64
	DurationMinutes int
	PaymentMethod   entity.PaymentMethod
	MembershipID    *uuid.UUID
	PaymentRef      string // Card payment being redeemed; redeemable once.
}

// EntitlementLedger gates premium features behind per-period quotas, overlaid by
// membership benefits, and fronts the point balance.
type EntitlementLedger interface {
	// CanUseFeature reports the allowance without consuming it. A store failure yields
	// an Unknown, not-allowed answer.
	CanUseFeature(ctx context.Context, subjectID uuid.UUID, feature entity.FeatureType) *entity.FeatureAllowance

	// Consume increments the period counter by cost in one atomic store operation, or
	// fails with a QuotaExceededError. Unlimited memberships bypass the counter entirely
	// and return a nil usage.
	Consume(ctx context.Context, subjectID uuid.UUID, feature entity.FeatureType, cost int) (*entity.FeatureUsage, error)

	// SpendPoints debits the user's balance or fails with ErrInsufficientPoints.
	SpendPoints(ctx context.Context, userID uuid.UUID, amount int) error

	// RefundPoints credits back a debit whose purchase could not be completed.
	RefundPoints(ctx context.Context, userID uuid.UUID, amount int) error

	// PointBalance returns the user's balance.
	PointBalance(ctx context.Context, userID uuid.UUID) (int, error)

	// EffectiveMembership returns the effective membership with the latest end date, or nil.
	EffectiveMembership(ctx context.Context, subjectID uuid.UUID) (*entity.Membership, error)
}

// RankedCandidate is one discovery result.
type RankedCandidate struct {
	EntityID      uuid.UUID         `json:"entity_id"`
	EntityKind    entity.EntityKind `json:"entity_kind"`
	Location      entity.Location   `json:"location"`
	DistanceMiles float64           `json:"distance_miles"`
	BoostFactor   float64           `json:"boost_factor"`
	Score         float64           `json:"score"`
	LastActive    time.Time         `json:"last_active"`
}

// RankingEngine orders geo index candidates by boost factor over distance.
type RankingEngine interface {
	// Rank ranks candidates within radiusMiles of center. requester, when set, is excluded.
	Rank(ctx context.Context, center entity.Coordinate, radiusMiles float64, filter entity.GeoFilter, requester *uuid.UUID) ([]*RankedCandidate, error)

	// RankWithinBox ranks candidates inside box, measuring distance from its center.
	RankWithinBox(ctx context.Context, box geo.BoundingBox, filter entity.GeoFilter, requester *uuid.UUID) ([]*RankedCandidate, error)
}

// ResolveOptions controls identity resolution.
type ResolveOptions struct {
	// CreateIfMissing creates the caller's profile on first use.
	CreateIfMissing bool
}

// IdentityResolver maps a request identity onto the single profile every ledger keys on.
type IdentityResolver interface {
	// Resolve returns the caller's subject. An authenticated user always wins over a
	// guest token; a guest token never resolves to a profile owned by someone else.
	Resolve(ctx context.Context, identity entity.Identity, opts ResolveOptions) (*entity.Subject, error)

	// Claim transfers a guest profile to userID. One-way and idempotent.
	Claim(ctx context.Context, userID uuid.UUID, guest *entity.GuestIdentity) (*entity.Profile, error)
}

// EventNotifier hands cross-subject events to the real-time sink without blocking
// the caller. Delivery is best-effort.
type EventNotifier interface {
	Notify(ctx context.Context, subjectID uuid.UUID, eventType entity.EventType, payload map[string]string)
}
