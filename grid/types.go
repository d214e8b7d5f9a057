package grid

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrSentinelInBounds indicates that the out-of-bounds sentinel coordinate lies inside the grid.
	ErrSentinelInBounds = errors.New("grid: out-of-bounds value must not address a valid cell")
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrNoMatchingCell indicates that no cell holds the requested value.
	ErrNoMatchingCell = errors.New("grid: no cell holds the requested value")
)

// Coordinate is an (X, Y) cell position. X grows to the right, Y grows downward.
type Coordinate struct {
	X, Y int
}

// Less orders coordinates by X, then by Y.
func (c Coordinate) Less(o Coordinate) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// String formats the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ValueSet is a set of cell values, used to restrict adjacency to cells of certain types.
type ValueSet = mapset.Set[int]

// NewValueSet returns a ValueSet holding values.
func NewValueSet(values ...int) ValueSet {
	s := mapset.New[int]()
	for _, v := range values {
		s.Put(v)
	}
	return s
}

// Source supplies random integers in [0,n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Options holds construction parameters for a Grid.
type Options struct {
	// DefaultValue fills every cell at construction; IsSet compares against it.
	DefaultValue int
	// OutOfBoundsValue is reported for cells outside the grid and, paired with
	// itself, marks "no parent" during path reconstruction.
	OutOfBoundsValue int
	// Rand is used by RandomCoordinateOfValue. Nil selects a time-seeded source.
	Rand Source
}

// Option configures a Grid via functional arguments.
type Option func(*Options)

// DefaultOptions returns DefaultValue=-1, OutOfBoundsValue=math.MinInt32 and no Rand.
func DefaultOptions() Options {
	return Options{
		DefaultValue:     -1,
		OutOfBoundsValue: math.MinInt32,
	}
}

// WithDefaultValue sets the fill value.
func WithDefaultValue(v int) Option {
	return func(o *Options) {
		o.DefaultValue = v
	}
}

// WithOutOfBoundsValue sets the out-of-bounds sentinel.
func WithOutOfBoundsValue(v int) Option {
	return func(o *Options) {
		o.OutOfBoundsValue = v
	}
}

// WithRandSource injects the random source used by RandomCoordinateOfValue.
// A nil src is ignored.
func WithRandSource(src Source) Option {
	return func(o *Options) {
		if src != nil {
			o.Rand = src
		}
	}
}

func newDefaultSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Grid is a dense Width×Height store of integer cell values.
// Dimensions and the default/sentinel values are fixed for the lifetime of the Grid.
type Grid struct {
	width, height    int
	defaultValue     int
	outOfBoundsValue int
	cells            []int // row-major, len == width*height
	rnd              Source
}
