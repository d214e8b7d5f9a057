package astar

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/tilegrid/grid"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrStartOutOfBounds indicates that the start coordinate is outside the searched grid.
	ErrStartOutOfBounds = errors.New("astar: start coordinate out of bounds")

	// ErrEndOutOfBounds indicates that the end coordinate is outside the searched grid.
	ErrEndOutOfBounds = errors.New("astar: end coordinate out of bounds")

	// ErrNilFilter indicates a TypeFilter without a grid.
	ErrNilFilter = errors.New("astar: type filter grid is nil")

	// ErrFilterDimensions indicates that the filter grid and the searched grid differ in shape.
	ErrFilterDimensions = errors.New("astar: type filter grid dimensions differ from searched grid")

	// ErrNegativeCost indicates that a negative cell value was entered with cost enabled.
	// Negative costs would let a coordinate improve forever.
	ErrNegativeCost = errors.New("astar: negative cell cost encountered")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// TypeFilter restricts traversal to cells whose value on Grid is a member of Allowed.
// Grid may be the searched grid itself; it is only read during a search.
type TypeFilter struct {
	Grid    *grid.Grid
	Allowed grid.ValueSet
}

// NewTypeFilter builds a TypeFilter over g allowing values.
func NewTypeFilter(g *grid.Grid, values ...int) TypeFilter {
	return TypeFilter{Grid: g, Allowed: grid.NewValueSet(values...)}
}

// permits reports whether c's value on the filter grid is allowed.
func (f *TypeFilter) permits(c grid.Coordinate) bool {
	return f.Grid.InBounds(c) && f.Allowed.Has(f.Grid.Value(c))
}

// SearchStats summarizes one completed search for an Observer.
type SearchStats struct {
	Filtered bool          // a TypeFilter was active
	Found    bool          // end was reached
	Expanded int           // coordinates removed from the open set
	PathLen  int           // len(Result.Path)
	Cost     int           // g-score at end, 0 when not found
	Duration time.Duration // wall time inside Search
}

// Observer receives statistics about completed searches.
type Observer interface {
	ObserveSearch(SearchStats)
}

// Options configures Search.
type Options struct {
	// UseCost adds the neighbor's cell value to the accumulated cost of each step.
	UseCost bool

	// Filter, if non-nil, sources adjacency from Filter.Grid restricted to Filter.Allowed.
	Filter *TypeFilter

	// MaxExpansions, if > 0, ends the search unsuccessfully after that many expansions.
	MaxExpansions int

	// OnExpand is called when a coordinate is removed from the open set,
	// with its accumulated cost.
	OnExpand func(c grid.Coordinate, cost int)

	// OnEnqueue is called when a coordinate is (re)inserted into the open set,
	// with its priority (f-score).
	OnEnqueue func(c grid.Coordinate, priority float64)

	// Observer, if non-nil, receives SearchStats when Search returns without error.
	Observer Observer

	// internal error recorded during option parsing
	err error
}

// Option configures Search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with cost disabled, no filter, no expansion
// limit, no observer and no-op hooks.
func DefaultOptions() Options {
	return Options{
		UseCost:       false,
		Filter:        nil,
		MaxExpansions: 0,
		OnExpand:      func(grid.Coordinate, int) {},
		OnEnqueue:     func(grid.Coordinate, float64) {},
	}
}

// WithCost enables or disables cost weighting by cell content.
func WithCost(use bool) Option {
	return func(o *Options) {
		o.UseCost = use
	}
}

// WithTypeFilter restricts traversal with f.
func WithTypeFilter(f TypeFilter) Option {
	return func(o *Options) {
		o.Filter = &f
	}
}

// WithMaxExpansions bounds the number of expansions.
//
//	n > 0: at most n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(c grid.Coordinate, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback run whenever a coordinate enters the open set.
func WithOnEnqueue(fn func(c grid.Coordinate, priority float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithObserver registers an Observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// Result holds the outcome of a search.
//
// Path is ordered end-to-start: Path[0] is the end coordinate and the last
// element is the start. It is empty when no path exists.
type Result struct {
	Path     []grid.Coordinate
	Cost     int
	Expanded int
	Found    bool
}

// StartToEnd returns a reversed copy of Path, ordered from start to end.
func (r Result) StartToEnd() []grid.Coordinate {
	out := make([]grid.Coordinate, len(r.Path))
	for i, c := range r.Path {
		out[len(r.Path)-1-i] = c
	}
	return out
}
