// Package tilegrid is an in-memory toolkit for fixed-size integer tile grids:
// store a value per cell, query the four orthogonal neighbours, pick a random
// cell of a given value and find paths with A*.
//
// 🚀 What is in tilegrid?
//
//	• grid/  : the Grid Store: row-major cells, sentinel value outside the
//	            grid, neighbour queries (left, right, up, down), random lookup
//	• astar/ : A* with Manhattan heuristic; plain, cost-weighted and
//	            type-constrained (a second grid restricts where a path may go)
//	• flat/  : handle registry and count-prefixed int32 buffers for hosts
//	            calling in across a foreign-function boundary
//	• metrics/: Prometheus collectors fed by astar.Observer
//	• cmd/gridpath: command line search over a grid stored in a text file
//
// ✨ Conventions
//
//   - Coordinates are (x, y) with x in [0, Width) and y in [0, Height).
//   - Neighbour order is always left, right, up, down.
//   - Paths are returned end first; use astar.Result.StartToEnd to reverse.
//   - Library packages never log; they return sentinel errors checked with errors.Is.
//
// Quick ASCII example (types grid, 0 = wall, path from S to E):
//
//	S 1 1       S ─ ─ ┐
//	0 0 1   →         │
//	E 1 1       E ─ ─ ┘
//
//	go get github.com/katalvlaran/tilegrid
package tilegrid
