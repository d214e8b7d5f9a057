// Package flat exposes grids and A* search through primitive-only calls that
// exchange flat int32 buffers, for hosts on the far side of a foreign-function
// or embedding boundary.
//
// Grids live in a Registry and are addressed by Handle. Every buffer-returning
// call hands out a fresh []int32 that the host gives back with Release once it
// has copied the data out.
//
// Buffer layouts:
//
//	coordinate list:  [n, x0, y0, x1, y1, ..., x(n-1), y(n-1)]
//	value list (in):  [n, v0, v1, ..., v(n-1)]
//	adjacent values:  [left, right, up, down]  (OutOfBoundsValue outside the grid)
//	single coordinate: [x, y]
//
// Paths keep the astar ordering: the end coordinate comes first.
//
// Errors:
//
//	ErrUnknownHandle - the handle was never created or was deleted.
//	ErrBadBuffer     - an input buffer is empty, negative-counted or truncated.
//	ErrNotOutstanding - Release was given a buffer not handed out by this Registry.
package flat
