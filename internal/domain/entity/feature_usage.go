// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeatureType enumerates quota-gated premium features.
type FeatureType string

const (
	FeatureSuperLike FeatureType = "superlike"
	FeatureBoost     FeatureType = "boost"
	FeatureRekindle  FeatureType = "rekindle"
	FeatureFilter    FeatureType = "filter"
)

// AllFeatures lists the features in display order.
var AllFeatures = []FeatureType{FeatureSuperLike, FeatureBoost, FeatureRekindle, FeatureFilter}

// IsValid reports whether f is a known feature.
func (f FeatureType) IsValid() bool {
	switch f {
	case FeatureSuperLike, FeatureBoost, FeatureRekindle, FeatureFilter:
		return true
	default:
		return false
	}
}

// QuotaPeriod is the reset cadence of a feature quota.
type QuotaPeriod string

const (
	QuotaPeriodDaily  QuotaPeriod = "daily"
	QuotaPeriodWeekly QuotaPeriod = "weekly"
)

// Window returns the UTC-aligned period containing now: days start at 00:00 UTC,
// weeks on Monday 00:00 UTC.
func (p QuotaPeriod) Window(now time.Time) (start, resetAt time.Time) {
	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch p {
	case QuotaPeriodWeekly:
		offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
		start = day.AddDate(0, 0, -offset)

		return start, start.AddDate(0, 0, 7)
	default:
		return day, day.AddDate(0, 0, 1)
	}
}

// Quota is the base allowance of a feature per period.
type Quota struct {
	Limit  int
	Period QuotaPeriod
}

// FeatureUsage counts uses of a feature within one period. A new period is a new row;
// rows are never reset in place.
type FeatureUsage struct {
	ID            uuid.UUID   `json:"id"`
	SubjectID     uuid.UUID   `json:"subject_id"`
	FeatureType   FeatureType `json:"feature_type"`
	PeriodStart   time.Time   `json:"period_start"`
	Count         int         `json:"count"`
	ResetAt       time.Time   `json:"reset_at"`
	MembershipRef *uuid.UUID  `json:"membership_ref,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// Unbounded marks an unlimited remaining count.
const Unbounded = -1

// FeatureAllowance is the answer to "can this subject use feature now".
type FeatureAllowance struct {
	Feature   FeatureType `json:"feature"`
	Allowed   bool        `json:"allowed"`
	Remaining int         `json:"remaining"` // Unbounded (-1) when a membership lifts the quota.
	Limit     int         `json:"limit"`
	Used      int         `json:"used"`
	ResetAt   *time.Time  `json:"reset_at,omitempty"`
	Unlimited bool        `json:"unlimited"`
	Unknown   bool        `json:"unknown,omitempty"` // The store could not be read; treat as not allowed.
}
