package types

import "errors"

// Sentinel errors for the distribute library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Validation errors - raised before any search is attempted.
var (
	// ErrNoParticipants is returned when the input token sequence is empty.
	ErrNoParticipants = errors.New("no participants given")

	// ErrGroupTooLarge is returned when a single group's size exceeds the
	// bucket capacity, making any assignment infeasible.
	ErrGroupTooLarge = errors.New("group size exceeds bucket capacity")
)

// Solver errors.
var (
	// ErrDeadlineExceeded is returned when the search exceeds its wall-clock
	// budget. No partial assignment is ever surfaced alongside it.
	ErrDeadlineExceeded = errors.New("partition search exceeded deadline")
)

// Configuration errors.
var (
	// ErrInvalidConfig is returned when the engine configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// IsValidationError checks whether an error is one of the input validation
// errors, i.e. the request was rejected before any search began.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true for ErrNoParticipants or ErrGroupTooLarge (wrapped or not)
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNoParticipants) || errors.Is(err, ErrGroupTooLarge)
}
