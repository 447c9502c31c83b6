// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MembershipBenefits are read-only overlays consulted by the entitlement ledger.
type MembershipBenefits struct {
	UnlimitedLikes      bool    `json:"unlimited_likes"`
	UnlimitedSuperLikes bool    `json:"unlimited_super_likes"`
	UnlimitedRekindles  bool    `json:"unlimited_rekindles"`
	AdvancedFilters     bool    `json:"advanced_filters"`
	ProfileBoostFactor  float64 `json:"profile_boost_factor"`
}

// Unlimited reports whether the benefits lift the quota of feature.
func (b MembershipBenefits) Unlimited(feature FeatureType) bool {
	switch feature {
	case FeatureSuperLike:
		return b.UnlimitedSuperLikes
	case FeatureRekindle:
		return b.UnlimitedRekindles
	case FeatureFilter:
		return b.AdvancedFilters
	default:
		return false
	}
}

// Membership is a paid plan. It stays effective until EndDate even after cancellation.
type Membership struct {
	ID               uuid.UUID          `json:"id"`
	SubjectID        uuid.UUID          `json:"subject_id"`
	Type             string             `json:"type"`
	StartDate        time.Time          `json:"start_date"`
	EndDate          time.Time          `json:"end_date"`
	Benefits         MembershipBenefits `json:"benefits"`
	CancellationDate *time.Time         `json:"cancellation_date,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// IsEffective reports whether the membership applies at now.
func (m *Membership) IsEffective(now time.Time) bool {
	return m != nil && !m.StartDate.After(now) && m.EndDate.After(now)
}

// MembershipPlan is a purchasable plan from the catalog.
type MembershipPlan struct {
	Type         string
	DurationDays int
	PointCost    int
	Benefits     MembershipBenefits
}

// SelectEffectiveMembership picks, among the rows effective at now, the one with the latest EndDate.
func SelectEffectiveMembership(memberships []*Membership, now time.Time) *Membership {
	var selected *Membership
	for _, m := range memberships {
		if !m.IsEffective(now) {
			continue
		}
		if selected == nil || m.EndDate.After(selected.EndDate) {
			selected = m
		}
	}

	return selected
}
