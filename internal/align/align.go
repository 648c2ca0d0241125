package align

import (
	"time"

	"github.com/maekawatoshiki/difftastic/internal/align/diffmetrics"
	"github.com/maekawatoshiki/difftastic/internal/syntax"
)

// Options configures a call to Align. The zero value runs with no vertex
// budget and no metrics — the same permissive defaults dijkstra.DefaultOptions
// uses for MaxDistance/InfEdgeThreshold (spec §4.3 notes this search is
// unbounded by default; large/unrelated inputs are the caller's problem to
// bound via WithMaxVertices).
type Options struct {
	maxVertices int64
	metrics     *diffmetrics.Collector
}

// Option configures Options.
type Option func(*Options)

// WithMaxVertices bounds how many vertices the search will visit before
// giving up with ErrVertexBudgetExceeded. Panics (WithMaxVertices is a
// constructor, not a runtime path) if n is not positive.
func WithMaxVertices(n int64) Option {
	if n <= 0 {
		panic(ErrBadMaxVertices.Error())
	}
	return func(o *Options) {
		o.maxVertices = n
	}
}

// WithMetrics attaches a Prometheus collector that records every search's
// vertex count and duration. A nil collector (the default) disables
// metrics entirely at zero cost.
func WithMetrics(c *diffmetrics.Collector) Option {
	return func(o *Options) {
		o.metrics = c
	}
}

// Stats summarises one completed alignment: how many of each edge kind
// the route used, and how many vertices the search visited to find it.
type Stats struct {
	VerticesVisited int64

	UnchangedNodes      int
	UnchangedDelimiters int
	ReplacedComments    int
	NovelLHSAtoms       int
	NovelRHSAtoms       int
	NovelLHSDelimiters  int
	NovelRHSDelimiters  int
	NovelLHSTrees       int
	NovelRHSTrees       int
}

// Align computes the cheapest alignment between the lhs and rhs forests
// and stamps every node's Change slot accordingly (spec §4). Both forests
// must already be frozen (internal/lang's builders do this as their last
// step). Either forest may be empty, but not both.
//
// Align never mutates the forests' shape — only each Node's Change slot,
// written exactly once per node. Calling Align twice on the same nodes
// panics on the second call, since Change is a write-once field.
func Align(lhsRoots, rhsRoots []*syntax.Node, opts ...Option) (Stats, error) {
	if len(lhsRoots) == 0 && len(rhsRoots) == 0 {
		return Stats{}, ErrNoInput
	}

	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	start := vertex{}
	if len(lhsRoots) > 0 {
		start.lhs = lhsRoots[0]
	}
	if len(rhsRoots) > 0 {
		start.rhs = rhsRoots[0]
	}

	begin := time.Now()
	route, visited, peakQueue, err := search(start, cfg.maxVertices)
	if err != nil {
		if cfg.metrics != nil {
			cfg.metrics.ObserveBudgetExceeded()
		}
		return Stats{}, err
	}
	cfg.metrics.ObserveSearch(visited, time.Since(begin), peakQueue)

	mark(route)
	return summarize(route, visited), nil
}

// summarize tallies the edge kinds used in route into a Stats value.
func summarize(route []routeStep, visited int64) Stats {
	stats := Stats{VerticesVisited: visited}

	for _, step := range route {
		switch step.via.kind {
		case edgeUnchangedNode:
			stats.UnchangedNodes++
		case edgeUnchangedDelimiter:
			stats.UnchangedDelimiters++
		case edgeReplacedComment:
			stats.ReplacedComments++
		case edgeNovelAtomLHS:
			stats.NovelLHSAtoms++
		case edgeNovelAtomRHS:
			stats.NovelRHSAtoms++
		case edgeNovelDelimiterLHS:
			stats.NovelLHSDelimiters++
		case edgeNovelDelimiterRHS:
			stats.NovelRHSDelimiters++
		case edgeNovelTreeLHS:
			stats.NovelLHSTrees++
		case edgeNovelTreeRHS:
			stats.NovelRHSTrees++
		}
	}

	return stats
}
