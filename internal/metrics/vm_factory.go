package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	vmFactoryAcquireTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "randomx_factory",
		Name:      "acquire_total",
		Help:      "Count of VM acquisitions by cache result.",
	}, []string{"network", "result", "status"})

	vmFactoryAcquireDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "randomx_factory",
		Name:      "acquire_duration_seconds",
		Help:      "Time spent acquiring a VM, including construction.",
		Buckets:   []float64{.0001, .001, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"network", "result"})

	vmFactoryEvictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "randomx_factory",
		Name:      "evictions_total",
		Help:      "Count of cached VMs evicted to make room.",
	}, []string{"network"})

	vmFactoryEntries = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "randomx_factory",
		Name:      "entries",
		Help:      "Number of VMs currently cached.",
	}, []string{"network"})
)

// VMFactory tracks metrics for the RandomX VM cache.
type VMFactory struct {
	network string
}

// NewVMFactory creates a VMFactory metrics collector.
func NewVMFactory(network string) *VMFactory {
	return &VMFactory{network: orUnknown(network)}
}

// ObserveAcquire records a VM acquisition. result is hit, shared or miss.
func (m VMFactory) ObserveAcquire(result string, err error, started time.Time) {
	vmFactoryAcquireTotal.WithLabelValues(m.network, result, status(err)).Inc()
	vmFactoryAcquireDuration.WithLabelValues(m.network, result).Observe(time.Since(started).Seconds())
}

func (m VMFactory) ObserveEviction() {
	vmFactoryEvictionsTotal.WithLabelValues(m.network).Inc()
}

func (m VMFactory) SetEntries(n int) {
	vmFactoryEntries.WithLabelValues(m.network).Set(float64(n))
}
