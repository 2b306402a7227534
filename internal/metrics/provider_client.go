package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	providerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "provider_client",
		Name:      "requests_total",
		Help:      "Count of upstream provider requests.",
	}, []string{"operation", "network", "provider", "status"})
	providerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "provider_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of upstream provider requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "provider", "status"})
)

// ProviderClient tracks metrics for requests issued to one upstream provider.
type ProviderClient struct {
	network  model.Network
	provider string
}

// NewProviderClient constructs a metrics collector for provider requests.
func NewProviderClient(network model.Network, provider string) *ProviderClient {
	if network == "" {
		network = "unknown"
	}
	if provider == "" {
		provider = "unknown"
	}
	return &ProviderClient{network: network, provider: provider}
}

// Observe records a single request outcome and duration.
func (m ProviderClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	providerRequestsTotal.WithLabelValues(operation, string(m.network), m.provider, status).Inc()
	providerRequestDuration.WithLabelValues(operation, string(m.network), m.provider, status).
		Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
