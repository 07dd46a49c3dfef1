package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/beeracademy/distribute/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	solveDuration  prometheus.Histogram
	solveOutcomes  *prometheus.CounterVec
	bucketCount    prometheus.Histogram
	imbalance      prometheus.Histogram
	validationErrs *prometheus.CounterVec
	cacheLookups   *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "distribute" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "distribute"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.solveDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock duration of completed partition solves in seconds.",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 2.5, 5, 10},
		})

		p.solveOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "solves_total",
			Help:      "Total partition solves by outcome (ok/timeout).",
		}, []string{"outcome"})

		p.bucketCount = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "bucket_count",
			Help:      "Bucket counts of returned assignments.",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		})

		p.imbalance = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "imbalance",
			Help:      "Imbalance (max minus min bucket sum) of returned assignments.",
			Buckets:   prometheus.LinearBuckets(0, 1, 7),
		})

		p.validationErrs = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "input",
			Name:      "validation_failures_total",
			Help:      "Total inputs rejected before search, by reason.",
		}, []string{"reason"})

		p.cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Total solve-result cache lookups by result (hit/miss).",
		}, []string{"hit"})

		p.reg.MustRegister(
			p.solveDuration,
			p.solveOutcomes,
			p.bucketCount,
			p.imbalance,
			p.validationErrs,
			p.cacheLookups,
		)
	})
}

// RecordSolve records a completed solve.
func (p *PrometheusCollector) RecordSolve(duration float64, buckets, imbalance int) {
	p.ensureRegistered()
	p.solveDuration.Observe(duration)
	p.solveOutcomes.WithLabelValues("ok").Inc()
	p.bucketCount.Observe(float64(buckets))
	p.imbalance.Observe(float64(imbalance))
}

// RecordSolveTimeout records a solve aborted by the deadline guard.
func (p *PrometheusCollector) RecordSolveTimeout(_ /* budget */ float64) {
	p.ensureRegistered()
	p.solveOutcomes.WithLabelValues("timeout").Inc()
}

// RecordValidationFailure records an input rejected before search.
func (p *PrometheusCollector) RecordValidationFailure(reason string) {
	p.ensureRegistered()
	p.validationErrs.WithLabelValues(reason).Inc()
}

// RecordCacheLookup records a solve-result cache lookup outcome.
func (p *PrometheusCollector) RecordCacheLookup(hit bool) {
	p.ensureRegistered()
	p.cacheLookups.WithLabelValues(strconv.FormatBool(hit)).Inc()
}
