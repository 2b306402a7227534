package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	explorerAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "explorer",
		Name:      "provider_attempts_total",
		Help:      "Count of explorer attempts per provider.",
	}, []string{"operation", "network", "provider", "status"})
	explorerAttemptDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "explorer",
		Name:      "provider_attempt_duration_seconds",
		Help:      "Duration of explorer attempts per provider.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "provider", "status"})
	explorerExhaustedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "explorer",
		Name:      "providers_exhausted_total",
		Help:      "Count of operations where every configured provider failed.",
	}, []string{"operation", "network"})
)

// Explorer tracks provider fallback metrics of one network explorer.
type Explorer struct {
	network model.Network
}

// NewExplorer constructs an Explorer collector.
func NewExplorer(network model.Network) *Explorer {
	if network == "" {
		network = "unknown"
	}
	return &Explorer{network: network}
}

// ObserveAttempt records one provider attempt outcome and duration.
func (m Explorer) ObserveAttempt(operation, provider string, err error, started time.Time) {
	status := statusOf(err)
	explorerAttemptsTotal.WithLabelValues(operation, string(m.network), provider, status).Inc()
	explorerAttemptDuration.WithLabelValues(operation, string(m.network), provider, status).
		Observe(time.Since(started).Seconds())
}

// ObserveExhausted records an operation that ran out of providers.
func (m Explorer) ObserveExhausted(operation string) {
	explorerExhaustedTotal.WithLabelValues(operation, string(m.network)).Inc()
}
