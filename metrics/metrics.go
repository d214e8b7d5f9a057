// Package metrics exports A* search statistics as Prometheus collectors.
//
// A Collector implements astar.Observer; pass it to astar.WithObserver and every
// successful Search is counted and timed:
//
//	tilegrid_astar_searches_total{variant="plain|filtered", result="found|unreachable"}
//	tilegrid_astar_expanded_nodes     histogram of expansions per search
//	tilegrid_astar_path_length        histogram of returned path lengths
//	tilegrid_astar_duration_seconds   histogram of wall time per search
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/tilegrid/astar"
)

// ErrNilRegisterer is returned by New when reg is nil.
var ErrNilRegisterer = errors.New("metrics: nil registerer")

// Label values.
const (
	VariantPlain    = "plain"
	VariantFiltered = "filtered"

	ResultFound       = "found"
	ResultUnreachable = "unreachable"
)

// Collector records astar.SearchStats into Prometheus metrics.
type Collector struct {
	searches *prometheus.CounterVec
	expanded prometheus.Histogram
	pathLen  prometheus.Histogram
	duration prometheus.Histogram
}

var _ astar.Observer = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}
	c := &Collector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tilegrid_astar_searches_total",
			Help: "Total A* searches by variant and result",
		}, []string{"variant", "result"}),
		expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tilegrid_astar_expanded_nodes",
			Help:    "Coordinates expanded per A* search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k
		}),
		pathLen: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tilegrid_astar_path_length",
			Help:    "Length of returned A* paths (0 when unreachable)",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 200, 500, 1000},
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tilegrid_astar_duration_seconds",
			Help:    "A* search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~330ms
		}),
	}
	for _, col := range []prometheus.Collector{c.searches, c.expanded, c.pathLen, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}
	return c, nil
}

// ObserveSearch implements astar.Observer.
func (c *Collector) ObserveSearch(s astar.SearchStats) {
	variant := VariantPlain
	if s.Filtered {
		variant = VariantFiltered
	}
	result := ResultUnreachable
	if s.Found {
		result = ResultFound
	}
	c.searches.WithLabelValues(variant, result).Inc()
	c.expanded.Observe(float64(s.Expanded))
	c.pathLen.Observe(float64(s.PathLen))
	c.duration.Observe(s.Duration.Seconds())
}

// Searches returns the number of searches recorded for variant and result.
func (c *Collector) Searches(variant, result string) float64 {
	m := &dto.Metric{}
	if err := c.searches.WithLabelValues(variant, result).Write(m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}
