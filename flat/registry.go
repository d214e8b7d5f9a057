package flat

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/tilegrid/astar"
	"github.com/katalvlaran/tilegrid/grid"
)

// Sentinel errors for registry operations.
var (
	// ErrUnknownHandle indicates a handle that does not address a live grid.
	ErrUnknownHandle = errors.New("flat: unknown grid handle")
	// ErrNotOutstanding indicates a Release of a buffer this Registry did not hand out,
	// or one already released.
	ErrNotOutstanding = errors.New("flat: buffer is not outstanding")
)

// Handle addresses a grid inside a Registry. Zero is never issued.
type Handle int32

// Registry owns grids created through the boundary and tracks buffers handed
// out to the host. It is safe for concurrent use: mutations take the write
// lock, reads and searches share the read lock.
type Registry struct {
	mu          sync.RWMutex
	grids       map[Handle]*grid.Grid
	next        Handle
	outstanding map[*int32]struct{}
	gridOpts    []grid.Option
}

// NewRegistry returns an empty Registry. opts are applied to every grid it
// creates after the per-call default and sentinel values (e.g. grid.WithRandSource).
func NewRegistry(opts ...grid.Option) *Registry {
	return &Registry{
		grids:       make(map[Handle]*grid.Grid),
		outstanding: make(map[*int32]struct{}),
		gridOpts:    opts,
	}
}

// Create constructs a width×height grid and returns its handle.
func (r *Registry) Create(width, height, defaultValue, outOfBoundsValue int32) (Handle, error) {
	opts := append([]grid.Option{
		grid.WithDefaultValue(int(defaultValue)),
		grid.WithOutOfBoundsValue(int(outOfBoundsValue)),
	}, r.gridOpts...)
	g, err := grid.New(int(width), int(height), opts...)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.grids[r.next] = g
	return r.next, nil
}

// Delete destroys the grid behind h.
func (r *Registry) Delete(h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.grids[h]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	delete(r.grids, h)
	return nil
}

// Len returns the number of live grids.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.grids)
}

// lookup returns the grid behind h. Callers hold r.mu.
func (r *Registry) lookup(h Handle) (*grid.Grid, error) {
	g, ok := r.grids[h]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return g, nil
}

// read runs fn against the grid behind h under the read lock.
func (r *Registry) read(h Handle, fn func(g *grid.Grid) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, err := r.lookup(h)
	if err != nil {
		return err
	}
	return fn(g)
}

// Width returns the width of the grid behind h.
func (r *Registry) Width(h Handle) (int32, error) {
	var v int32
	err := r.read(h, func(g *grid.Grid) error { v = int32(g.Width()); return nil })
	return v, err
}

// Height returns the height of the grid behind h.
func (r *Registry) Height(h Handle) (int32, error) {
	var v int32
	err := r.read(h, func(g *grid.Grid) error { v = int32(g.Height()); return nil })
	return v, err
}

// DefaultValue returns the fill value of the grid behind h.
func (r *Registry) DefaultValue(h Handle) (int32, error) {
	var v int32
	err := r.read(h, func(g *grid.Grid) error { v = int32(g.DefaultValue()); return nil })
	return v, err
}

// OutOfBoundsValue returns the sentinel of the grid behind h.
func (r *Registry) OutOfBoundsValue(h Handle) (int32, error) {
	var v int32
	err := r.read(h, func(g *grid.Grid) error { v = int32(g.OutOfBoundsValue()); return nil })
	return v, err
}

// Get returns the value at (x,y).
func (r *Registry) Get(h Handle, x, y int32) (int32, error) {
	var v int32
	err := r.read(h, func(g *grid.Grid) error {
		got, err := g.Get(grid.Coordinate{X: int(x), Y: int(y)})
		v = int32(got)
		return err
	})
	return v, err
}

// Set writes v at (x,y).
func (r *Registry) Set(h Handle, x, y, v int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, err := r.lookup(h)
	if err != nil {
		return err
	}
	return g.Set(grid.Coordinate{X: int(x), Y: int(y)}, int(v))
}

// AdjacentValues returns [left, right, up, down] around (x,y).
func (r *Registry) AdjacentValues(h Handle, x, y int32) ([]int32, error) {
	var out []int32
	err := r.read(h, func(g *grid.Grid) error {
		c, err := inBounds(g, x, y)
		if err != nil {
			return err
		}
		vals := g.AdjacentValues(c)
		out = make([]int32, len(vals))
		for i, v := range vals {
			out[i] = int32(v)
		}
		return nil
	})
	return r.handOut(out, err)
}

// AdjacentValidCoordinates returns the in-bounds neighbors of (x,y) as a coordinate list.
func (r *Registry) AdjacentValidCoordinates(h Handle, x, y int32) ([]int32, error) {
	var out []int32
	err := r.read(h, func(g *grid.Grid) error {
		c, err := inBounds(g, x, y)
		if err != nil {
			return err
		}
		out = EncodeCoordinates(g.AdjacentValidCoordinates(c))
		return nil
	})
	return r.handOut(out, err)
}

// AdjacentValidCoordinatesOfValues returns the in-bounds neighbors of (x,y) whose
// value appears in the count-prefixed values buffer.
func (r *Registry) AdjacentValidCoordinatesOfValues(h Handle, x, y int32, values []int32) ([]int32, error) {
	allowed, err := DecodeValues(values)
	if err != nil {
		return nil, err
	}
	var out []int32
	err = r.read(h, func(g *grid.Grid) error {
		c, err := inBounds(g, x, y)
		if err != nil {
			return err
		}
		out = EncodeCoordinates(g.AdjacentValidCoordinatesWithValues(c, grid.NewValueSet(allowed...)))
		return nil
	})
	return r.handOut(out, err)
}

// RandomCoordinateOfValue returns [x, y] of a random cell holding v.
// It takes the write lock because it advances the grid's random source.
func (r *Registry) RandomCoordinateOfValue(h Handle, v int32) ([]int32, error) {
	r.mu.Lock()
	g, err := r.lookup(h)
	var out []int32
	if err == nil {
		var c grid.Coordinate
		if c, err = g.RandomCoordinateOfValue(int(v)); err == nil {
			out = []int32{int32(c.X), int32(c.Y)}
		}
	}
	r.mu.Unlock()
	return r.handOut(out, err)
}

// AStar runs the unconstrained search and returns the path as a coordinate list, end first.
func (r *Registry) AStar(h Handle, startX, startY, endX, endY int32, useCost bool) ([]int32, error) {
	var out []int32
	err := r.read(h, func(g *grid.Grid) error {
		path, err := astar.FindPath(g,
			grid.Coordinate{X: int(startX), Y: int(startY)},
			grid.Coordinate{X: int(endX), Y: int(endY)}, useCost)
		out = EncodeCoordinates(path)
		return err
	})
	return r.handOut(out, err)
}

// AStarWithTypeInfo runs the type-constrained search. Adjacency comes from the
// grid behind valueGrid restricted to the count-prefixed values buffer; cost,
// when enabled, is read from the grid behind h. valueGrid may equal h.
func (r *Registry) AStarWithTypeInfo(h Handle, startX, startY, endX, endY int32, useCost bool, values []int32, valueGrid Handle) ([]int32, error) {
	allowed, err := DecodeValues(values)
	if err != nil {
		return nil, err
	}
	var out []int32
	err = r.read(h, func(g *grid.Grid) error {
		vg, err := r.lookup(valueGrid)
		if err != nil {
			return err
		}
		path, err := astar.FindPathFiltered(g,
			grid.Coordinate{X: int(startX), Y: int(startY)},
			grid.Coordinate{X: int(endX), Y: int(endY)},
			useCost, astar.NewTypeFilter(vg, allowed...))
		out = EncodeCoordinates(path)
		return err
	})
	return r.handOut(out, err)
}

// Release returns a buffer handed out by this Registry.
func (r *Registry) Release(buf []int32) error {
	if len(buf) == 0 {
		return fmt.Errorf("%w: empty buffer", ErrNotOutstanding)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.outstanding[&buf[0]]; !ok {
		return ErrNotOutstanding
	}
	delete(r.outstanding, &buf[0])
	return nil
}

// Outstanding returns the number of buffers handed out and not yet released.
func (r *Registry) Outstanding() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.outstanding)
}

// handOut records buf as outstanding unless err is set.
func (r *Registry) handOut(buf []int32, err error) ([]int32, error) {
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.outstanding[&buf[0]] = struct{}{}
	r.mu.Unlock()
	return buf, nil
}

// inBounds converts (x,y) and rejects coordinates outside g.
func inBounds(g *grid.Grid, x, y int32) (grid.Coordinate, error) {
	c := grid.Coordinate{X: int(x), Y: int(y)}
	if !g.InBounds(c) {
		return c, fmt.Errorf("%w: %v", grid.ErrOutOfBounds, c)
	}
	return c, nil
}
