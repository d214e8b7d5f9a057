package grid

// neighborOffsets lists axis-aligned moves in the fixed order: left, right, up, down.
// Search results depend on this order.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// AdjacentValidCount returns how many of the four axis-aligned neighbors of c
// lie inside the grid, i.e. the number of true conditions among
// X>0, X<Width-1, Y>0, Y<Height-1.
func (g *Grid) AdjacentValidCount(c Coordinate) int {
	n := 0
	if c.X > 0 {
		n++
	}
	if c.X < g.width-1 {
		n++
	}
	if c.Y > 0 {
		n++
	}
	if c.Y < g.height-1 {
		n++
	}
	return n
}

// AdjacentValidCoordinates returns the in-bounds axis-aligned neighbors of c
// in the order left, right, up, down.
// Complexity: O(1).
func (g *Grid) AdjacentValidCoordinates(c Coordinate) []Coordinate {
	out := make([]Coordinate, 0, 4)
	for _, d := range neighborOffsets {
		n := Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// AdjacentValidCoordinatesWithValues is AdjacentValidCoordinates restricted to
// neighbors whose stored value is a member of allowed.
// Complexity: O(1).
func (g *Grid) AdjacentValidCoordinatesWithValues(c Coordinate, allowed ValueSet) []Coordinate {
	out := make([]Coordinate, 0, 4)
	for _, d := range neighborOffsets {
		n := Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
		if g.InBounds(n) && allowed.Has(g.cells[g.Index(n)]) {
			out = append(out, n)
		}
	}
	return out
}

// AdjacentValues returns the values of the four axis-aligned neighbors of c in
// the order left, right, up, down. Positions outside the grid report OutOfBoundsValue.
func (g *Grid) AdjacentValues(c Coordinate) [4]int {
	var out [4]int
	for i, d := range neighborOffsets {
		out[i] = g.Value(Coordinate{X: c.X + d[0], Y: c.Y + d[1]})
	}
	return out
}

// AdjacentValidValues returns the values of the in-bounds neighbors of c,
// in the same order as AdjacentValidCoordinates.
func (g *Grid) AdjacentValidValues(c Coordinate) []int {
	out := make([]int, 0, 4)
	for _, d := range neighborOffsets {
		n := Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
		if g.InBounds(n) {
			out = append(out, g.cells[g.Index(n)])
		}
	}
	return out
}
