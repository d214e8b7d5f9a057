package astar

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilegrid/grid"
)

// TestFrontier_TieBreak pops equal priorities in insertion order.
func TestFrontier_TieBreak(t *testing.T) {
	r := &runner{options: DefaultOptions(), inOpen: map[grid.Coordinate]*frontierItem{}}
	heap.Init(&r.open)

	r.push(grid.Coordinate{X: 5, Y: 5}, 2)
	r.push(grid.Coordinate{X: 1, Y: 1}, 2)
	r.push(grid.Coordinate{X: 3, Y: 3}, 1)
	r.push(grid.Coordinate{X: 0, Y: 0}, 2)

	var got []grid.Coordinate
	for r.open.Len() > 0 {
		got = append(got, heap.Pop(&r.open).(*frontierItem).c)
	}
	assert.Equal(t, []grid.Coordinate{{X: 3, Y: 3}, {X: 5, Y: 5}, {X: 1, Y: 1}, {X: 0, Y: 0}}, got)
}

// TestFrontier_ImproveKeepsOldestOccurrence: an open coordinate whose priority
// drops keeps its first place among equal priorities, and its second occurrence
// is served after everything queued in between.
func TestFrontier_ImproveKeepsOldestOccurrence(t *testing.T) {
	r := &runner{options: DefaultOptions(), inOpen: map[grid.Coordinate]*frontierItem{}}
	heap.Init(&r.open)

	a := grid.Coordinate{X: 0, Y: 1}
	b := grid.Coordinate{X: 1, Y: 0}
	r.push(a, 9)
	r.push(b, 4)
	r.push(a, 4) // improved: occurrences 0 and 2

	assert.Equal(t, 2, r.open.Len())
	assert.Equal(t, a, r.pop())
	assert.Equal(t, b, r.pop())
	assert.Equal(t, a, r.pop(), "second occurrence of a")
	assert.Zero(t, r.open.Len())
	assert.Empty(t, r.inOpen)
}

// TestFrontier_ReopenedAfterPop: a coordinate popped once while a later
// occurrence is still queued stays open and is not given a new place when improved again.
func TestFrontier_ReopenedAfterPop(t *testing.T) {
	r := &runner{options: DefaultOptions(), inOpen: map[grid.Coordinate]*frontierItem{}}
	heap.Init(&r.open)

	a := grid.Coordinate{X: 0, Y: 0}
	b := grid.Coordinate{X: 1, Y: 0}
	r.push(a, 5) // occurrence 0
	r.push(a, 3) // occurrence 1
	r.push(b, 1) // occurrence 2
	assert.Equal(t, b, r.pop())
	assert.Equal(t, a, r.pop())
	require.Contains(t, r.inOpen, a)

	r.push(b, 1) // occurrence 3
	r.push(a, 1) // occurrence 4; a still ranks by occurrence 1
	assert.Equal(t, a, r.pop())
	assert.Equal(t, b, r.pop())
	assert.Equal(t, a, r.pop())
}

// TestPath_StopsAtSentinel follows parents until the sentinel.
func TestPath_StopsAtSentinel(t *testing.T) {
	s := grid.Coordinate{X: -1, Y: -1}
	r := &runner{
		sentinel: s,
		parent: map[grid.Coordinate]grid.Coordinate{
			{X: 0, Y: 0}: s,
			{X: 1, Y: 0}: {X: 0, Y: 0},
			{X: 1, Y: 1}: {X: 1, Y: 0},
		},
	}
	assert.Equal(t, []grid.Coordinate{{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}, r.path(grid.Coordinate{X: 1, Y: 1}))
}

// TestPath_BoundedOnCycle terminates even if parent links form a cycle.
func TestPath_BoundedOnCycle(t *testing.T) {
	r := &runner{
		sentinel: grid.Coordinate{X: -1, Y: -1},
		parent: map[grid.Coordinate]grid.Coordinate{
			{X: 0, Y: 0}: {X: 1, Y: 0},
			{X: 1, Y: 0}: {X: 0, Y: 0},
		},
	}
	assert.Len(t, r.path(grid.Coordinate{X: 0, Y: 0}), 3)
}
