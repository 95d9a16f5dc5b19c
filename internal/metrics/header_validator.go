package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/validation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	headerValidationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "header_validator",
		Name:      "validations_total",
		Help:      "Count of header validations by algorithm and verdict.",
	}, []string{"network", "algorithm", "verdict"})

	headerValidationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "header_validator",
		Name:      "validation_duration_seconds",
		Help:      "Duration of full header validations.",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"network", "algorithm"})

	headerValidationStageTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "header_validator",
		Name:      "stages_total",
		Help:      "Count of validation stages run, by outcome.",
	}, []string{"network", "stage", "status"})

	headerValidationStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "header_validator",
		Name:      "stage_duration_seconds",
		Help:      "Duration of individual validation stages.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "stage"})
)

// HeaderValidator tracks metrics for header validation.
type HeaderValidator struct {
	network string
}

// NewHeaderValidator creates a HeaderValidator metrics collector.
func NewHeaderValidator(network string) *HeaderValidator {
	return &HeaderValidator{network: orUnknown(network)}
}

// ObserveStage records the outcome of a single validation stage.
func (m HeaderValidator) ObserveStage(stage string, err error, started time.Time) {
	headerValidationStageTotal.WithLabelValues(m.network, stage, status(err)).Inc()
	headerValidationStageDuration.WithLabelValues(m.network, stage).Observe(time.Since(started).Seconds())
}

// ObserveValidation records a validation verdict. Rejections are labelled with
// their rule error kind.
func (m HeaderValidator) ObserveValidation(algo model.PowAlgorithm, err error, started time.Time) {
	headerValidationTotal.WithLabelValues(m.network, orUnknown(string(algo)), Verdict(err)).Inc()
	headerValidationDuration.WithLabelValues(m.network, orUnknown(string(algo))).Observe(time.Since(started).Seconds())
}

// Verdict maps a validation error to a low-cardinality label value.
func Verdict(err error) string {
	if err == nil {
		return "accepted"
	}
	if kind, ok := validation.KindOf(err); ok {
		return string(kind)
	}
	return statusError
}
