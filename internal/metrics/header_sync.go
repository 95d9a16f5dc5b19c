package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	headerSyncIterationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "header_sync",
		Name:      "iterations_total",
		Help:      "Count of sync loop iterations.",
	}, []string{"network", "status"})

	headerSyncIterationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "header_sync",
		Name:      "iteration_duration_seconds",
		Help:      "Duration of sync loop iterations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	headerSyncCandidates = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "header_sync",
		Name:      "candidates",
		Help:      "Number of candidate headers validated per iteration.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
	}, []string{"network"})

	headerSyncTipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "header_sync",
		Name:      "tip_height",
		Help:      "Height of the last accepted header.",
	}, []string{"network", "algorithm"})
)

// HeaderSync tracks metrics for the header sync loop.
type HeaderSync struct {
	network string
}

// NewHeaderSync creates a HeaderSync metrics collector.
func NewHeaderSync(network string) *HeaderSync {
	return &HeaderSync{network: orUnknown(network)}
}

// ObserveIteration records one sync iteration and how many candidates it validated.
func (m HeaderSync) ObserveIteration(err error, candidates int, started time.Time) {
	st := status(err)
	headerSyncIterationTotal.WithLabelValues(m.network, st).Inc()
	headerSyncIterationDuration.WithLabelValues(m.network, st).Observe(time.Since(started).Seconds())
	if candidates > 0 {
		headerSyncCandidates.WithLabelValues(m.network).Observe(float64(candidates))
	}
}

// ObserveAccepted records the new tip.
func (m HeaderSync) ObserveAccepted(algo model.PowAlgorithm, height uint64) {
	headerSyncTipHeight.WithLabelValues(m.network, orUnknown(string(algo))).Set(float64(height))
}
