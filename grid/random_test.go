package grid_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilegrid/grid"
)

// fixedSource returns a preset sequence of values, recording each bound it was asked for.
type fixedSource struct {
	next   []int
	bounds []int
}

func (f *fixedSource) Intn(n int) int {
	f.bounds = append(f.bounds, n)
	v := f.next[0]
	f.next = f.next[1:]
	return v
}

func TestRandomCoordinateOfValue_NoMatch(t *testing.T) {
	g, err := grid.New(3, 3, grid.WithDefaultValue(0))
	require.NoError(t, err)

	_, err = g.RandomCoordinateOfValue(1)
	assert.ErrorIs(t, err, grid.ErrNoMatchingCell)
}

// TestRandomCoordinateOfValue_InjectedSource checks that candidates are collected
// in row-major order and that the source is asked for [0,count).
func TestRandomCoordinateOfValue_InjectedSource(t *testing.T) {
	src := &fixedSource{next: []int{0, 2, 1}}
	g, err := grid.From2D([][]int{
		{0, 7, 0},
		{7, 0, 0},
		{0, 0, 7},
	}, grid.WithRandSource(src))
	require.NoError(t, err)

	want := []grid.Coordinate{{X: 1, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 1}}
	for _, w := range want {
		c, err := g.RandomCoordinateOfValue(7)
		require.NoError(t, err)
		assert.Equal(t, w, c)
	}
	assert.Equal(t, []int{3, 3, 3}, src.bounds)
}

// TestRandomCoordinateOfValue_Seeded checks determinism under a fixed seed and that
// every returned coordinate holds the requested value.
func TestRandomCoordinateOfValue_Seeded(t *testing.T) {
	build := func() *grid.Grid {
		g, err := grid.New(6, 4, grid.WithDefaultValue(0), grid.WithRandSource(rand.New(rand.NewSource(42))))
		require.NoError(t, err)
		for _, c := range []grid.Coordinate{{X: 0, Y: 0}, {X: 5, Y: 3}, {X: 2, Y: 1}, {X: 4, Y: 2}} {
			require.NoError(t, g.Set(c, 9))
		}
		return g
	}
	a, b := build(), build()
	seen := map[grid.Coordinate]bool{}
	for i := 0; i < 64; i++ {
		ca, err := a.RandomCoordinateOfValue(9)
		require.NoError(t, err)
		cb, err := b.RandomCoordinateOfValue(9)
		require.NoError(t, err)
		assert.Equal(t, ca, cb)
		assert.Equal(t, 9, a.Value(ca))
		seen[ca] = true
	}
	assert.Len(t, seen, 4, "all candidates should be reachable")
}
