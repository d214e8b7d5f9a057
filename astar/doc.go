// Package astar implements A* search over a grid.Grid.
//
// Two variants share one algorithm:
//
//   - Uniform/cost-weighted: adjacency and edge cost both come from the searched grid.
//   - Type-constrained: adjacency comes from a TypeFilter's grid restricted to its
//     allowed values; edge cost (when enabled) is still read from the searched grid.
//
// The search keeps an open set ordered by f-score (accumulated cost plus the
// Manhattan distance to the end). Among equal f-scores, the coordinate that
// entered the open set first is expanded first, which makes results
// reproducible across runs.
//
// Options:
//
//	– WithCost(bool):        add the neighbor's cell value to the path cost. When
//	                         disabled every step costs zero and the search is ordered
//	                         by the heuristic alone (greedy best-first).
//	– WithTypeFilter(f):     restrict traversal to cells whose value on f.Grid is in f.Allowed.
//	– WithMaxExpansions(n):  stop after n expansions (0 = unlimited, n < 0 is invalid).
//	– WithOnExpand, WithOnEnqueue: per-node hooks.
//	– WithObserver(o):       receive SearchStats once per completed search.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the searched grid is nil.
//	– ErrStartOutOfBounds if start lies outside the grid.
//	– ErrEndOutOfBounds   if end lies outside the grid.
//	– ErrNilFilter        if a TypeFilter has no grid.
//	– ErrFilterDimensions if the filter grid's shape differs from the searched grid.
//	– ErrNegativeCost     if a negative cell value is entered while cost is enabled.
//	– ErrOptionViolation  if an invalid Option is supplied.
//
// An unreachable end is not an error: Search returns an empty Path with Found=false.
//
// Complexity:
//
//   - Time:  O(N log N) for N = Width×Height expansions with non-negative costs.
//   - Space: O(N) for the cost and parent maps plus the heap.
//
// Notes on implementation choices:
//
//   - Every strict improvement of a coordinate queues one more occurrence of it.
//     The heap holds one item per open coordinate, keyed by (f-score, insertion
//     number of its oldest pending occurrence), so an improved coordinate keeps
//     its place among equal f-scores and is repositioned with heap.Fix.
//   - Popping consumes one occurrence. A coordinate with occurrences left is
//     pushed back and expanded again later; that expansion finds nothing cheaper.
//   - A neighbor is only updated when its tentative cost is strictly lower than
//     its recorded cost, so with cost disabled every coordinate is discovered once.
package astar
