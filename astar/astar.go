package astar

import (
	"container/heap"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/tilegrid/grid"
)

// Manhattan returns |b.X-a.X| + |b.Y-a.Y| as a float64.
func Manhattan(a, b grid.Coordinate) float64 {
	return math.Abs(float64(b.X-a.X)) + math.Abs(float64(b.Y-a.Y))
}

// FindPath runs the uniform/cost-weighted search from start to end on g.
// The returned path is ordered end-to-start and is empty if end is unreachable.
func FindPath(g *grid.Grid, start, end grid.Coordinate, useCost bool) ([]grid.Coordinate, error) {
	res, err := Search(g, start, end, WithCost(useCost))
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// FindPathFiltered runs the type-constrained search from start to end on g.
// Adjacency comes from filter; cost, when enabled, is read from g.
// The returned path is ordered end-to-start and is empty if end is unreachable
// or start itself is not an allowed cell.
func FindPathFiltered(g *grid.Grid, start, end grid.Coordinate, useCost bool, filter TypeFilter) ([]grid.Coordinate, error) {
	res, err := Search(g, start, end, WithCost(useCost), WithTypeFilter(filter))
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// Search runs A* from start to end on g, configured by opts.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and end must lie inside g (ErrStartOutOfBounds, ErrEndOutOfBounds;
//     both also match grid.ErrOutOfBounds).
//  4. A TypeFilter must carry a grid of the same shape as g (ErrNilFilter, ErrFilterDimensions).
//
// With a TypeFilter, a start cell whose filter value is not allowed yields an
// empty path immediately.
//
// With cost enabled, entering any cell whose value is negative fails the search
// with ErrNegativeCost, even where no negative cycle could form.
//
// A search is single-threaded and runs to completion; g and the filter grid
// must not be mutated while it runs.
func Search(g *grid.Grid, start, end grid.Coordinate, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: %v: %w", ErrStartOutOfBounds, start, grid.ErrOutOfBounds)
	}
	if !g.InBounds(end) {
		return Result{}, fmt.Errorf("%w: %v: %w", ErrEndOutOfBounds, end, grid.ErrOutOfBounds)
	}
	if cfg.Filter != nil {
		if cfg.Filter.Grid == nil {
			return Result{}, ErrNilFilter
		}
		if !g.SameShape(cfg.Filter.Grid) {
			return Result{}, fmt.Errorf("%w: %dx%d vs %dx%d", ErrFilterDimensions,
				cfg.Filter.Grid.Width(), cfg.Filter.Grid.Height(), g.Width(), g.Height())
		}
	}

	began := time.Now()
	n := g.Width() * g.Height()
	r := &runner{
		g:        g,
		options:  cfg,
		end:      end,
		sentinel: g.Sentinel(),
		open:     make(frontier, 0, n),
		inOpen:   make(map[grid.Coordinate]*frontierItem),
		cost:     make(map[grid.Coordinate]int),
		parent:   make(map[grid.Coordinate]grid.Coordinate),
	}

	var res Result
	if cfg.Filter == nil || cfg.Filter.permits(start) {
		r.init(start)
		var err error
		if res, err = r.process(); err != nil {
			return Result{}, err
		}
	}

	if cfg.Observer != nil {
		cfg.Observer.ObserveSearch(SearchStats{
			Filtered: cfg.Filter != nil,
			Found:    res.Found,
			Expanded: res.Expanded,
			PathLen:  len(res.Path),
			Cost:     res.Cost,
			Duration: time.Since(began),
		})
	}
	return res, nil
}

// runner holds the search state for a single Search call. Nothing in it
// outlives the call.
type runner struct {
	g        *grid.Grid                        // searched grid; cost source
	options  Options                           // configuration
	end      grid.Coordinate                   // destination
	sentinel grid.Coordinate                   // parent of start
	open     frontier                          // open set ordered by (f, oldest occurrence)
	inOpen   map[grid.Coordinate]*frontierItem // open-set membership
	cost     map[grid.Coordinate]int           // g-score
	parent   map[grid.Coordinate]grid.Coordinate
	seq      uint64 // next occurrence number
	expanded int
}

// init seeds the open set with start at cost 0 and priority 0.
func (r *runner) init(start grid.Coordinate) {
	heap.Init(&r.open)
	r.cost[start] = 0
	r.parent[start] = r.sentinel
	r.push(start, 0)
}

// push records one more open-set occurrence of c with priority f. A coordinate
// that is already open gets the new priority and keeps its earliest pending
// occurrence as its tie-break key.
func (r *runner) push(c grid.Coordinate, f float64) {
	if it, ok := r.inOpen[c]; ok {
		it.f = f
		it.pending = append(it.pending, r.seq)
		heap.Fix(&r.open, it.index)
	} else {
		it = &frontierItem{c: c, f: f, pending: []uint64{r.seq}}
		heap.Push(&r.open, it)
		r.inOpen[c] = it
	}
	r.seq++
	r.options.OnEnqueue(c, f)
}

// pop removes the earliest pending occurrence of the best coordinate. A
// coordinate with further occurrences goes back into the heap keyed by the next one.
func (r *runner) pop() grid.Coordinate {
	it := heap.Pop(&r.open).(*frontierItem)
	it.pending = it.pending[1:]
	if len(it.pending) > 0 {
		heap.Push(&r.open, it)
	} else {
		delete(r.inOpen, it.c)
	}
	return it.c
}

// process expands coordinates until end is reached, the open set is empty,
// or the expansion limit is hit.
func (r *runner) process() (Result, error) {
	for r.open.Len() > 0 {
		// 1) Take the lowest f-score; ties go to the earliest pending occurrence.
		current := r.pop()
		r.expanded++
		r.options.OnExpand(current, r.cost[current])

		// 2) Goal reached: rebuild the path from the parent links.
		if current == r.end {
			return Result{
				Path:     r.path(current),
				Cost:     r.cost[current],
				Expanded: r.expanded,
				Found:    true,
			}, nil
		}
		// 3) Expansion budget spent: give up without a path.
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			break
		}
		// 4) Relax neighbors. A repeated occurrence of current finds nothing cheaper.
		if err := r.relax(current); err != nil {
			return Result{}, err
		}
	}

	return Result{Expanded: r.expanded}, nil
}

// neighbors returns the adjacency of c under the active policy.
func (r *runner) neighbors(c grid.Coordinate) []grid.Coordinate {
	if f := r.options.Filter; f != nil {
		return f.Grid.AdjacentValidCoordinatesWithValues(c, f.Allowed)
	}
	return r.g.AdjacentValidCoordinates(c)
}

// relax examines each neighbor of current and records any strictly cheaper route.
func (r *runner) relax(current grid.Coordinate) error {
	for _, nb := range r.neighbors(current) {
		// a) Tentative cost: zero per step unless cost is enabled.
		newCost := 0
		if r.options.UseCost {
			step := r.g.Value(nb)
			if step < 0 {
				return fmt.Errorf("%w: %v holds %d", ErrNegativeCost, nb, step)
			}
			newCost = r.cost[current] + step
		}

		// b) Not strictly better than the recorded cost: no update, no re-insertion.
		if old, ok := r.cost[nb]; ok && newCost >= old {
			continue
		}

		// c) Record the cheaper route and queue another occurrence of nb.
		r.cost[nb] = newCost
		r.parent[nb] = current
		r.push(nb, float64(newCost)+Manhattan(nb, r.end))
	}
	return nil
}

// path follows parent links from end back to the sentinel, returning the
// coordinates end-first. The walk is bounded by the number of recorded parents.
func (r *runner) path(end grid.Coordinate) []grid.Coordinate {
	out := make([]grid.Coordinate, 0, 16)
	for cur := end; len(out) <= len(r.parent); {
		out = append(out, cur)
		p, ok := r.parent[cur]
		if !ok || p == r.sentinel {
			break
		}
		cur = p
	}
	return out
}

// frontierItem is a coordinate waiting in the open set, possibly several times.
type frontierItem struct {
	c       grid.Coordinate
	f       float64  // priority
	pending []uint64 // insertion numbers of queued occurrences, oldest first
	index   int      // position in the heap, maintained by Swap
}

// frontier is a min-heap of *frontierItem ordered by (f, oldest pending occurrence).
type frontier []*frontierItem

// Len returns the number of items in the heap.
func (q frontier) Len() int { return len(q) }

// Less orders by priority, then by oldest pending occurrence.
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].pending[0] < q[j].pending[0]
}

// Swap swaps two elements and keeps their indices current.
func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

// Push appends x, which must be a *frontierItem. Called by heap.Push.
func (q *frontier) Push(x interface{}) {
	it := x.(*frontierItem)
	it.index = len(*q)
	*q = append(*q, it)
}

// Pop removes and returns the last element. Called by heap.Pop.
func (q *frontier) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*q = old[:n-1]

	return it
}
