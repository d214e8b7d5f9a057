package flat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilegrid/grid"
)

// ErrBadBuffer indicates a malformed count-prefixed buffer.
var ErrBadBuffer = errors.New("flat: malformed buffer")

// EncodeCoordinates flattens coords into [n, x0, y0, ...].
func EncodeCoordinates(coords []grid.Coordinate) []int32 {
	out := make([]int32, 1+2*len(coords))
	out[0] = int32(len(coords))
	for i, c := range coords {
		out[1+2*i] = int32(c.X)
		out[2+2*i] = int32(c.Y)
	}
	return out
}

// DecodeCoordinates is the inverse of EncodeCoordinates.
func DecodeCoordinates(buf []int32) ([]grid.Coordinate, error) {
	n, err := count(buf, 2)
	if err != nil {
		return nil, err
	}
	out := make([]grid.Coordinate, n)
	for i := range out {
		out[i] = grid.Coordinate{X: int(buf[1+2*i]), Y: int(buf[2+2*i])}
	}
	return out, nil
}

// EncodeValues flattens values into [n, v0, v1, ...].
func EncodeValues(values []int) []int32 {
	out := make([]int32, 1+len(values))
	out[0] = int32(len(values))
	for i, v := range values {
		out[1+i] = int32(v)
	}
	return out
}

// DecodeValues reads the buf[0] values that follow the count.
func DecodeValues(buf []int32) ([]int, error) {
	n, err := count(buf, 1)
	if err != nil {
		return nil, err
	}
	out := make([]int, n)
	for i := range out {
		out[i] = int(buf[1+i])
	}
	return out, nil
}

// count validates the prefix of a buffer whose elements are stride int32s wide.
func count(buf []int32, stride int) (int, error) {
	if len(buf) == 0 {
		return 0, fmt.Errorf("%w: missing count", ErrBadBuffer)
	}
	n := int(buf[0])
	if n < 0 {
		return 0, fmt.Errorf("%w: negative count %d", ErrBadBuffer, n)
	}
	if len(buf)-1 < n*stride {
		return 0, fmt.Errorf("%w: count %d needs %d elements, have %d", ErrBadBuffer, n, n*stride, len(buf)-1)
	}
	return n, nil
}
