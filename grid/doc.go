// Package grid provides a fixed-size, dense 2D store of integer cell values
// with coordinate-indexed access, bounded neighbor enumeration and content queries.
//
// What:
//
//   - Grid holds Width×Height integers in row-major order (index = y*Width + x),
//     initialized to DefaultValue at construction.
//   - Single-cell reads and writes by Coordinate, with explicit ErrOutOfBounds.
//   - Axis-aligned neighbor enumeration in the fixed order left, right, up, down,
//     optionally restricted to neighbors whose value is in a ValueSet.
//   - Uniform random selection of a cell holding a given value via an injectable Source.
//
// Why:
//
//   - Tile-based game logic: terrain/type layers, cost layers, placement checks.
//   - Input for the astar package, which reads adjacency and cost from a Grid.
//
// Complexity:
//
//   - Get, Set, IsSet, InBounds, Index, CoordinateAt: O(1).
//   - Adjacent*: O(1) (at most four neighbors).
//   - RandomCoordinateOfValue, Count, Fill, Clone: O(W×H).
//
// Options:
//
//   - WithDefaultValue: fill value at construction (default -1).
//   - WithOutOfBoundsValue: sentinel reported for cells outside the grid and used
//     as the "no parent" marker (default math.MinInt32).
//   - WithRandSource: random source used by RandomCoordinateOfValue.
//
// Errors:
//
//   - ErrBadDimensions: width or height is not positive.
//   - ErrSentinelInBounds: (OutOfBoundsValue, OutOfBoundsValue) is a valid coordinate.
//   - ErrEmptyGrid, ErrNonRectangular: From2D input is not a non-empty rectangle.
//   - ErrOutOfBounds: a coordinate lies outside [0,Width)×[0,Height).
//   - ErrNoMatchingCell: no cell holds the requested value.
//
// A Grid is not safe for concurrent use. Callers that share a Grid between
// goroutines must serialize access or search a Clone.
package grid
