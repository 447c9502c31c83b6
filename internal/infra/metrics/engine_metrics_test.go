package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nearby/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineMetrics_Counters(t *testing.T) {
	m := NewEngineMetrics()

	m.IncBoostActivation("points", service.OutcomeSuccess)
	m.IncBoostActivation("points", service.OutcomeSuccess)
	m.IncBoostActivation("stripe", service.OutcomeRejected)
	m.IncQuotaConsume("superlike", service.OutcomeRejected)
	m.IncDegradedRead("geo_index")
	m.IncIdentityResolution(service.OutcomeError)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.boostActivations.WithLabelValues("points", service.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.boostActivations.WithLabelValues("stripe", service.OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quotaConsumes.WithLabelValues("superlike", service.OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.degradedReads.WithLabelValues("geo_index")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.identityResolutions.WithLabelValues(service.OutcomeError)))
}

func TestEngineMetrics_InstancesAreIsolated(t *testing.T) {
	a := NewEngineMetrics()
	b := NewEngineMetrics()

	a.IncDegradedRead("boost_ledger")

	assert.Equal(t, 1.0, testutil.ToFloat64(a.degradedReads.WithLabelValues("boost_ledger")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.degradedReads.WithLabelValues("boost_ledger")))
}

func TestEngineMetrics_Handler(t *testing.T) {
	m := NewEngineMetrics()
	m.ObserveDiscovery("radius", 3, 12*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `nearby_discovery_candidates_count{mode="radius"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
