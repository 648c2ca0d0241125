// Package diffmetrics exposes Prometheus instrumentation for the
// alignment engine: how many vertices each search visits, how long a
// search takes, and the high-water mark of the search's priority queue.
// It is a separate package from internal/align, and Collector is opt-in,
// wired through align.WithMetrics. internal/align imports this package for
// that option's parameter type, so a binary that imports internal/align
// also links the Prometheus client.
package diffmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector groups the metrics recorded for every alignment run. Register
// constructs a new Collector bound to a given registry; RegisterDefault
// binds it to prometheus.DefaultRegisterer for the common case of a
// single alignment engine per process.
type Collector struct {
	verticesVisited prometheus.Histogram
	searchDuration  prometheus.Histogram
	budgetExceeded  prometheus.Counter
	queueHighWater  prometheus.Gauge
}

// RegisterDefault builds a Collector registered against
// prometheus.DefaultRegisterer. Call it once per process; call sites that
// need an isolated registry (tests, multiple engines) should use Register
// instead.
func RegisterDefault() *Collector {
	return Register(prometheus.DefaultRegisterer)
}

// Register builds a Collector whose metrics are registered against reg.
func Register(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		verticesVisited: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "difftastic",
			Subsystem: "align",
			Name:      "vertices_visited",
			Help:      "Number of search vertices visited to align one pair of forests.",
			Buckets:   prometheus.ExponentialBuckets(8, 2, 16),
		}),
		searchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "difftastic",
			Subsystem: "align",
			Name:      "search_duration_seconds",
			Help:      "Wall-clock time spent in the shortest-path search.",
			Buckets:   prometheus.DefBuckets,
		}),
		budgetExceeded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "difftastic",
			Subsystem: "align",
			Name:      "vertex_budget_exceeded_total",
			Help:      "Number of alignments that hit the configured MaxVertices budget.",
		}),
		queueHighWater: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "difftastic",
			Subsystem: "align",
			Name:      "queue_high_water_mark",
			Help:      "Largest size the search's priority queue reached during the most recent alignment.",
		}),
	}
}

// ObserveSearch records one completed search's vertex count, duration, and
// the peak size its priority queue reached.
func (c *Collector) ObserveSearch(verticesVisited int64, duration time.Duration, queueHighWaterMark int) {
	if c == nil {
		return
	}
	c.verticesVisited.Observe(float64(verticesVisited))
	c.searchDuration.Observe(duration.Seconds())
	c.queueHighWater.Set(float64(queueHighWaterMark))
}

// ObserveBudgetExceeded records that a search was aborted by MaxVertices.
func (c *Collector) ObserveBudgetExceeded() {
	if c == nil {
		return
	}
	c.budgetExceeded.Inc()
}
