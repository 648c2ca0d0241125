package align

import "errors"

// Sentinel errors returned by Align. Matching dijkstra's style of one
// exported sentinel per failure mode (see katalvlaran/lvlath's
// dijkstra.ErrNilGraph and friends), rather than ad-hoc fmt.Errorf calls
// for conditions a caller might reasonably want to errors.Is against.
var (
	// ErrNoInput is returned when both forests are empty; there is
	// nothing to align.
	ErrNoInput = errors.New("align: both lhs and rhs forests are empty")

	// ErrQueueExhausted is never returned: its message is the panic value
	// the search raises when its priority queue runs dry before reaching
	// the end vertex. The end vertex (nil, nil) is always reachable by
	// repeatedly taking novel-atom/delimiter edges, so that panic means
	// the neighbour generator has a gap.
	ErrQueueExhausted = errors.New("align: search exhausted its queue before reaching the end vertex")

	// ErrBadMaxVertices is never returned: its message is the panic value
	// WithMaxVertices raises for a non-positive bound.
	ErrBadMaxVertices = errors.New("align: MaxVertices must be positive")

	// ErrVertexBudgetExceeded is returned when the search visits more
	// vertices than the bound set by WithMaxVertices without reaching the
	// end. Unlike
	// ErrQueueExhausted, this is an expected, recoverable outcome for
	// pathologically large or unrelated inputs, not a programming error.
	ErrVertexBudgetExceeded = errors.New("align: exceeded the configured vertex budget")
)
