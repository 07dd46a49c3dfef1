package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods may be called from concurrent requests and must be thread-safe.
type MetricsCollector interface {
	// RecordSolve records a completed solve: wall-clock duration in seconds
	// plus the objective of the returned assignment.
	RecordSolve(duration float64, buckets, imbalance int)

	// RecordSolveTimeout records a solve aborted by the deadline guard, with
	// the budget that was exhausted, in seconds.
	RecordSolveTimeout(budget float64)

	// RecordValidationFailure records an input rejected before search.
	RecordValidationFailure(reason string)

	// RecordCacheLookup records a solver cache lookup outcome.
	RecordCacheLookup(hit bool)
}
