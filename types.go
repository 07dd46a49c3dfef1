package distribute

import "github.com/beeracademy/distribute/types"

// Re-export types from the types subpackage.
//
// Internal packages depend on the leaf types package to avoid import cycles;
// these aliases keep the convenient distribute.Group, distribute.Logger, etc.
// spelling for users of the root package.
type (
	Group        = types.Group
	Assignment   = types.Assignment
	Key          = types.Key
	SolverResult = types.SolverResult
	Bucket       = types.Bucket
)

// Re-export interfaces from the types subpackage for convenience.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export sentinel errors from the types subpackage.
var (
	ErrNoParticipants   = types.ErrNoParticipants
	ErrGroupTooLarge    = types.ErrGroupTooLarge
	ErrDeadlineExceeded = types.ErrDeadlineExceeded
	ErrInvalidConfig    = types.ErrInvalidConfig
)
