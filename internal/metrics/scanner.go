package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scannerScanTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_scanner",
		Name:      "scan_total",
		Help:      "Count of block range scans.",
	}, []string{"network", "status"})

	scannerScanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_scanner",
		Name:      "scan_duration_seconds",
		Help:      "Duration of block range scans.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	scannerScanBlocks = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_scanner",
		Name:      "scan_blocks",
		Help:      "Number of blocks covered per scan.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"network"})

	scannerLatestProcessed = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_scanner",
		Name:      "latest_processed_height",
		Help:      "Latest block height processed by the scanner.",
	}, []string{"network"})
)

// Scanner tracks metrics for the block scanner loop.
type Scanner struct {
	network model.Network
}

// NewScanner constructs a Scanner collector.
func NewScanner(network model.Network) *Scanner {
	if network == "" {
		network = "unknown"
	}
	return &Scanner{network: network}
}

// ObserveScan records a scan outcome, duration and covered block count.
func (m Scanner) ObserveScan(err error, blocks int, started time.Time) {
	status := statusOf(err)
	scannerScanTotal.WithLabelValues(string(m.network), status).Inc()
	scannerScanDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	if err == nil {
		scannerScanBlocks.WithLabelValues(string(m.network)).Observe(float64(blocks))
	}
}

// ObserveLatestProcessed sets the latest processed height.
func (m Scanner) ObserveLatestProcessed(height int64) {
	scannerLatestProcessed.WithLabelValues(string(m.network)).Set(float64(height))
}
