// Package metrics provides types.MetricsCollector implementations: a no-op
// collector and a Prometheus-backed one.
package metrics

import "github.com/beeracademy/distribute/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordSolve discards the solve metric.
func (n *NopMetrics) RecordSolve(_ /* duration */ float64, _ /* buckets */, _ /* imbalance */ int) {
	// No-op
}

// RecordSolveTimeout discards the timeout metric.
func (n *NopMetrics) RecordSolveTimeout(_ /* budget */ float64) {
	// No-op
}

// RecordValidationFailure discards the validation failure metric.
func (n *NopMetrics) RecordValidationFailure(_ /* reason */ string) {
	// No-op
}

// RecordCacheLookup discards the cache lookup metric.
func (n *NopMetrics) RecordCacheLookup(_ /* hit */ bool) {
	// No-op
}
