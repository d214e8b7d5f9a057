package grid

import "fmt"

// RandomCoordinateOfValue scans every cell, collects the coordinates holding v
// and returns one chosen uniformly at random using the grid's Source.
// Returns ErrNoMatchingCell when no cell holds v.
// Complexity: O(W×H) time, O(k) memory for k matches.
func (g *Grid) RandomCoordinateOfValue(v int) (Coordinate, error) {
	var matches []int
	for i, cell := range g.cells {
		if cell == v {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		return g.Sentinel(), fmt.Errorf("%w: %d", ErrNoMatchingCell, v)
	}
	return g.CoordinateAt(matches[g.rnd.Intn(len(matches))]), nil
}
