package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilegrid/astar"
	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/metrics"
)

func TestNew_NilRegisterer(t *testing.T) {
	_, err := metrics.New(nil)
	assert.ErrorIs(t, err, metrics.ErrNilRegisterer)
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)
	_, err = metrics.New(reg)
	assert.Error(t, err)
}

func TestObserveSearch_Labels(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)

	c.ObserveSearch(astar.SearchStats{Found: true, Expanded: 5, PathLen: 5, Duration: time.Millisecond})
	c.ObserveSearch(astar.SearchStats{Filtered: true, Expanded: 2})
	c.ObserveSearch(astar.SearchStats{Filtered: true, Found: true, Expanded: 3, PathLen: 2})

	assert.Equal(t, 1.0, c.Searches(metrics.VariantPlain, metrics.ResultFound))
	assert.Equal(t, 0.0, c.Searches(metrics.VariantPlain, metrics.ResultUnreachable))
	assert.Equal(t, 1.0, c.Searches(metrics.VariantFiltered, metrics.ResultUnreachable))
	assert.Equal(t, 1.0, c.Searches(metrics.VariantFiltered, metrics.ResultFound))

	const want = `
# HELP tilegrid_astar_path_length Length of returned A* paths (0 when unreachable)
# TYPE tilegrid_astar_path_length histogram
tilegrid_astar_path_length_bucket{le="0"} 1
tilegrid_astar_path_length_bucket{le="1"} 1
tilegrid_astar_path_length_bucket{le="2"} 2
tilegrid_astar_path_length_bucket{le="5"} 3
tilegrid_astar_path_length_bucket{le="10"} 3
tilegrid_astar_path_length_bucket{le="20"} 3
tilegrid_astar_path_length_bucket{le="50"} 3
tilegrid_astar_path_length_bucket{le="100"} 3
tilegrid_astar_path_length_bucket{le="200"} 3
tilegrid_astar_path_length_bucket{le="500"} 3
tilegrid_astar_path_length_bucket{le="1000"} 3
tilegrid_astar_path_length_bucket{le="+Inf"} 3
tilegrid_astar_path_length_sum 7
tilegrid_astar_path_length_count 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "tilegrid_astar_path_length"))
}

func TestCollector_AsObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.New(reg)
	require.NoError(t, err)

	g, err := grid.New(4, 4, grid.WithDefaultValue(1))
	require.NoError(t, err)
	_, err = astar.Search(g, grid.Coordinate{}, grid.Coordinate{X: 3, Y: 3},
		astar.WithCost(true), astar.WithObserver(c))
	require.NoError(t, err)

	// a rejected search is not observed
	_, err = astar.Search(g, grid.Coordinate{X: -1}, grid.Coordinate{}, astar.WithObserver(c))
	require.ErrorIs(t, err, astar.ErrStartOutOfBounds)

	assert.Equal(t, 1.0, c.Searches(metrics.VariantPlain, metrics.ResultFound))
	n, err := testutil.GatherAndCount(reg, "tilegrid_astar_searches_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = testutil.GatherAndCount(reg, "tilegrid_astar_duration_seconds", "tilegrid_astar_expanded_nodes")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
