// Package metrics exposes engine activity to prometheus.
package metrics

import (
	"net/http"
	"time"

	"nearby/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nearby"

// EngineMetrics implements service.EngineMetrics on its own registry so that
// several instances never collide.
type EngineMetrics struct {
	registry *prometheus.Registry

	discoveryDuration   *prometheus.HistogramVec
	discoveryCandidates *prometheus.HistogramVec
	boostActivations    *prometheus.CounterVec
	quotaConsumes       *prometheus.CounterVec
	degradedReads       *prometheus.CounterVec
	identityResolutions *prometheus.CounterVec
}

var _ service.EngineMetrics = (*EngineMetrics)(nil)

// NewEngineMetrics registers the engine collectors plus the go and process collectors.
func NewEngineMetrics() *EngineMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &EngineMetrics{
		registry: registry,
		discoveryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "discovery_duration_seconds",
			Help:      "Duration of ranking requests in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"mode"}),
		discoveryCandidates: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "discovery_candidates",
			Help:      "Number of candidates returned per ranking request",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100},
		}, []string{"mode"}),
		boostActivations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "boost_activations_total",
			Help:      "Boost activation attempts",
		}, []string{"payment_method", "outcome"}),
		quotaConsumes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quota_consumes_total",
			Help:      "Feature quota consume attempts",
		}, []string{"feature", "outcome"}),
		degradedReads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "degraded_reads_total",
			Help:      "Read paths answered with a degraded result",
		}, []string{"component"}),
		identityResolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identity_resolutions_total",
			Help:      "Identity resolutions by outcome",
		}, []string{"outcome"}),
	}
}

func (m *EngineMetrics) ObserveDiscovery(mode string, candidates int, elapsed time.Duration) {
	m.discoveryDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
	m.discoveryCandidates.WithLabelValues(mode).Observe(float64(candidates))
}

func (m *EngineMetrics) IncBoostActivation(paymentMethod, outcome string) {
	m.boostActivations.WithLabelValues(paymentMethod, outcome).Inc()
}

func (m *EngineMetrics) IncQuotaConsume(feature, outcome string) {
	m.quotaConsumes.WithLabelValues(feature, outcome).Inc()
}

func (m *EngineMetrics) IncDegradedRead(component string) {
	m.degradedReads.WithLabelValues(component).Inc()
}

func (m *EngineMetrics) IncIdentityResolution(outcome string) {
	m.identityResolutions.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the prometheus exposition format.
func (m *EngineMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
