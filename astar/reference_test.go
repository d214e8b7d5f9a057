package astar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilegrid/astar"
	"github.com/katalvlaran/tilegrid/grid"
)

// referenceSearch is a direct A* over an unsorted open list that keeps
// duplicate entries: the first entry with the lowest priority wins and only
// that entry is removed. Search must reproduce its path and expansion count.
func referenceSearch(g *grid.Grid, start, end grid.Coordinate, useCost bool, filter *astar.TypeFilter) ([]grid.Coordinate, int) {
	if filter != nil && !filter.Allowed.Has(filter.Grid.Value(start)) {
		return nil, 0
	}
	sentinel := g.Sentinel()
	open := []grid.Coordinate{start}
	cost := map[grid.Coordinate]int{start: 0}
	priority := map[grid.Coordinate]float64{start: 0}
	parent := map[grid.Coordinate]grid.Coordinate{start: sentinel}

	expanded := 0
	for len(open) > 0 {
		best := 0
		for i := range open {
			if priority[open[i]] < priority[open[best]] {
				best = i
			}
		}
		current := open[best]
		open = append(open[:best], open[best+1:]...)
		expanded++

		if current == end {
			var path []grid.Coordinate
			for at := end; at != sentinel; at = parent[at] {
				path = append(path, at)
			}
			return path, expanded
		}

		nbs := g.AdjacentValidCoordinates(current)
		if filter != nil {
			nbs = filter.Grid.AdjacentValidCoordinatesWithValues(current, filter.Allowed)
		}
		for _, nb := range nbs {
			newCost := 0
			if useCost {
				newCost = cost[current] + g.Value(nb)
			}
			if old, ok := cost[nb]; ok && newCost >= old {
				continue
			}
			cost[nb] = newCost
			priority[nb] = float64(newCost) + astar.Manhattan(nb, end)
			open = append(open, nb)
			parent[nb] = current
		}
	}
	return nil, expanded
}

// TestSearch_ZeroCostReopening: (2,1) is reopened after its first expansion and
// lowers both (1,1) and (2,0) to f=4. (1,1) still has an older queued entry, so it
// wins the tie and the path reaches E through (1,1) rather than (2,0).
//
// Grid (start S=(1,3), end E=(1,0)):
//
//	2 E 2 0 1
//	0 2 0 0 3
//	1 3 2 1 1
//	2 S 0 0 0
//	2 3 1 3 0
//	1 3 0 1 3
func TestSearch_ZeroCostReopening(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 1, 2, 0, 1},
		{0, 2, 0, 0, 3},
		{1, 3, 2, 1, 1},
		{2, 3, 0, 0, 0},
		{2, 3, 1, 3, 0},
		{1, 3, 0, 1, 3},
	})

	res, err := astar.Search(g, c(1, 3), c(1, 0), astar.WithCost(true))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coordinate{
		c(1, 0), c(1, 1), c(2, 1), c(3, 1), c(3, 2), c(3, 3), c(2, 3), c(1, 3),
	}, res.Path)
	assert.Equal(t, 4, res.Cost)
	assert.Equal(t, 14, res.Expanded)

	want, expanded := referenceSearch(g, c(1, 3), c(1, 0), true, nil)
	assert.Equal(t, want, res.Path)
	assert.Equal(t, expanded, res.Expanded)
}

// TestSearch_MatchesReference compares Search with referenceSearch on random
// grids with zero-cost cells, with and without cost and type filtering.
func TestSearch_MatchesReference(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for trial := 0; trial < 400; trial++ {
		w, h := 2+rnd.Intn(23), 2+rnd.Intn(23)
		g, err := grid.New(w, h, grid.WithDefaultValue(0))
		require.NoError(t, err)
		types, err := grid.New(w, h, grid.WithDefaultValue(0))
		require.NoError(t, err)
		for i := 0; i < w*h; i++ {
			at := g.CoordinateAt(i)
			require.NoError(t, g.Set(at, rnd.Intn(4)))
			require.NoError(t, types.Set(at, rnd.Intn(3)))
		}
		start := c(rnd.Intn(w), rnd.Intn(h))
		end := c(rnd.Intn(w), rnd.Intn(h))
		useCost := rnd.Intn(4) != 0

		var filter *astar.TypeFilter
		opts := []astar.Option{astar.WithCost(useCost)}
		if rnd.Intn(2) == 0 {
			f := astar.NewTypeFilter(types, 1, 2)
			filter = &f
			opts = append(opts, astar.WithTypeFilter(f))
		}

		res, err := astar.Search(g, start, end, opts...)
		require.NoError(t, err)
		want, expanded := referenceSearch(g, start, end, useCost, filter)
		require.Equal(t, want, res.Path,
			"trial %d: %dx%d %v->%v cost=%v filtered=%v", trial, w, h, start, end, useCost, filter != nil)
		require.Equal(t, expanded, res.Expanded, "trial %d", trial)
	}
}
