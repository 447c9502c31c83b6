package service

import "time"

// Outcome labels shared by the engine metrics.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// EngineMetrics records engine activity. Implementations must be safe for concurrent use.
type EngineMetrics interface {
	// ObserveDiscovery records one ranking request.
	ObserveDiscovery(mode string, candidates int, elapsed time.Duration)

	// IncBoostActivation counts activation attempts by payment method and outcome.
	IncBoostActivation(paymentMethod, outcome string)

	// IncQuotaConsume counts consume attempts by feature and outcome.
	IncQuotaConsume(feature, outcome string)

	// IncDegradedRead counts read paths that fell back to a degraded answer.
	IncDegradedRead(component string)

	// IncIdentityResolution counts identity resolutions by outcome.
	IncIdentityResolution(outcome string)
}

// NopEngineMetrics discards every observation.
type NopEngineMetrics struct{}

func (NopEngineMetrics) ObserveDiscovery(string, int, time.Duration) {}
func (NopEngineMetrics) IncBoostActivation(string, string)           {}
func (NopEngineMetrics) IncQuotaConsume(string, string)              {}
func (NopEngineMetrics) IncDegradedRead(string)                      {}
func (NopEngineMetrics) IncIdentityResolution(string)                {}
