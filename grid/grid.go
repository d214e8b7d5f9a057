package grid

import (
	"fmt"
	"math"
)

// New constructs a width×height Grid with every cell set to the default value.
// Returns ErrBadDimensions if width or height is not positive or their product
// overflows int, and
// ErrSentinelInBounds if (OutOfBoundsValue, OutOfBoundsValue) would address a
// valid cell, since that pair terminates path reconstruction.
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d cells overflow int", ErrBadDimensions, width, height)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.OutOfBoundsValue >= 0 && o.OutOfBoundsValue < width && o.OutOfBoundsValue < height {
		return nil, fmt.Errorf("%w: %d", ErrSentinelInBounds, o.OutOfBoundsValue)
	}
	if o.Rand == nil {
		o.Rand = newDefaultSource()
	}

	cells := make([]int, width*height)
	for i := range cells {
		cells[i] = o.DefaultValue
	}

	return &Grid{
		width:            width,
		height:           height,
		defaultValue:     o.DefaultValue,
		outOfBoundsValue: o.OutOfBoundsValue,
		cells:            cells,
		rnd:              o.Rand,
	}, nil
}

// From2D builds a Grid from rows[y][x]. The input is copied.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H).
func From2D(rows [][]int, opts ...Option) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(w, h, opts...)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		copy(g.cells[y*w:(y+1)*w], row)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// DefaultValue returns the construction fill value.
func (g *Grid) DefaultValue() int { return g.defaultValue }

// OutOfBoundsValue returns the sentinel value.
func (g *Grid) OutOfBoundsValue() int { return g.outOfBoundsValue }

// Sentinel returns the coordinate (OutOfBoundsValue, OutOfBoundsValue),
// which never addresses a valid cell.
func (g *Grid) Sentinel() Coordinate {
	return Coordinate{X: g.outOfBoundsValue, Y: g.outOfBoundsValue}
}

// InBounds reports whether c lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Index maps c to its row-major index y*Width + x. c must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Coordinate) int {
	return c.Y*g.width + c.X
}

// CoordinateAt converts a row-major index back to a Coordinate.
// It is the exact inverse of Index: X = idx mod Width, Y = idx div Width.
// Complexity: O(1).
func (g *Grid) CoordinateAt(idx int) Coordinate {
	return Coordinate{X: idx % g.width, Y: idx / g.width}
}

func (g *Grid) outOfBounds(c Coordinate) error {
	return fmt.Errorf("%w: %v not in %dx%d", ErrOutOfBounds, c, g.width, g.height)
}

// Get returns the value stored at c, or ErrOutOfBounds.
func (g *Grid) Get(c Coordinate) (int, error) {
	if !g.InBounds(c) {
		return g.outOfBoundsValue, g.outOfBounds(c)
	}
	return g.cells[g.Index(c)], nil
}

// Value returns the value stored at c, or OutOfBoundsValue if c is outside the grid.
func (g *Grid) Value(c Coordinate) int {
	if !g.InBounds(c) {
		return g.outOfBoundsValue
	}
	return g.cells[g.Index(c)]
}

// Set overwrites the value stored at c, or returns ErrOutOfBounds.
func (g *Grid) Set(c Coordinate, v int) error {
	if !g.InBounds(c) {
		return g.outOfBounds(c)
	}
	g.cells[g.Index(c)] = v
	return nil
}

// IsSet reports whether the value at c differs from DefaultValue.
func (g *Grid) IsSet(c Coordinate) (bool, error) {
	if !g.InBounds(c) {
		return false, g.outOfBounds(c)
	}
	return g.cells[g.Index(c)] != g.defaultValue, nil
}

// Fill sets every cell to v.
func (g *Grid) Fill(v int) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Count returns the number of cells holding v.
func (g *Grid) Count(v int) int {
	n := 0
	for _, cell := range g.cells {
		if cell == v {
			n++
		}
	}
	return n
}

// Cells returns a row-major copy of the grid content.
func (g *Grid) Cells() []int {
	out := make([]int, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns a deep copy of g, content included. The clone shares g's random source.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:            g.width,
		height:           g.height,
		defaultValue:     g.defaultValue,
		outOfBoundsValue: g.outOfBoundsValue,
		cells:            g.Cells(),
		rnd:              g.rnd,
	}
}

// SameShape reports whether g and o have identical dimensions.
func (g *Grid) SameShape(o *Grid) bool {
	return o != nil && g.width == o.width && g.height == o.height
}
