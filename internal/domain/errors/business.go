package errors

import (
	"fmt"
	"net/http"
	"time"

	"nearby/internal/domain/entity"
)

// PayloadError is implemented by business errors that carry data the client
// needs to render the rejection without a second round trip.
type PayloadError interface {
	AppError
	Payload() any
}

// BoostAlreadyActiveError rejects a boost whose factor does not beat the effective one.
type BoostAlreadyActiveError struct {
	Existing *entity.Boost
}

// NewBoostAlreadyActiveError wraps the currently effective boost.
func NewBoostAlreadyActiveError(existing *entity.Boost) *BoostAlreadyActiveError {
	return &BoostAlreadyActiveError{Existing: existing}
}

func (e *BoostAlreadyActiveError) Error() string {
	if e.Existing == nil {
		return "boost already active"
	}

	return fmt.Sprintf("boost already active: factor %.2f until %s", e.Existing.Factor, e.Existing.ExpiresAt.Format(time.RFC3339))
}

func (e *BoostAlreadyActiveError) HTTPCode() int     { return http.StatusConflict }
func (e *BoostAlreadyActiveError) ErrorCode() string { return "BOOST_ALREADY_ACTIVE" }
func (e *BoostAlreadyActiveError) Message() string   { return "已有更高或相同倍率的加速進行中" }
func (e *BoostAlreadyActiveError) Details() string   { return e.Error() }
func (e *BoostAlreadyActiveError) Payload() any      { return e.Existing }

// QuotaExceededError rejects a feature use once the period quota is spent.
type QuotaExceededError struct {
	Feature entity.FeatureType
	Limit   int
	ResetAt time.Time
}

// NewQuotaExceededError builds a quota rejection for feature.
func NewQuotaExceededError(feature entity.FeatureType, limit int, resetAt time.Time) *QuotaExceededError {
	return &QuotaExceededError{Feature: feature, Limit: limit, ResetAt: resetAt}
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded for %s (limit %d), resets at %s", e.Feature, e.Limit, e.ResetAt.Format(time.RFC3339))
}

func (e *QuotaExceededError) HTTPCode() int     { return http.StatusTooManyRequests }
func (e *QuotaExceededError) ErrorCode() string { return "QUOTA_EXCEEDED" }
func (e *QuotaExceededError) Message() string   { return "本期使用次數已達上限" }
func (e *QuotaExceededError) Details() string   { return e.Error() }

func (e *QuotaExceededError) Payload() any {
	return map[string]any{
		"feature":  e.Feature,
		"limit":    e.Limit,
		"reset_at": e.ResetAt,
	}
}
