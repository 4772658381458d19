package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input layer has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input layer must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMalformedKey indicates a key that is not of the form "x,y".
	ErrMalformedKey = errors.New("grid: malformed coordinate key")
)

// Coordinate is a single grid cell. It is a value type; copies are independent.
type Coordinate struct {
	X, Y int
}

// C is shorthand for Coordinate{X: x, Y: y}.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Key returns the canonical "x,y" form used to index a cell.
// Keys of distinct coordinates are distinct.
func (c Coordinate) Key() string {
	buf := make([]byte, 0, 12)
	buf = strconv.AppendInt(buf, int64(c.X), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(c.Y), 10)

	return string(buf)
}

// String implements fmt.Stringer as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns c shifted by the offset d.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y}
}

// ParseKey is the inverse of Coordinate.Key.
func ParseKey(key string) (Coordinate, error) {
	xs, ys, ok := strings.Cut(key, ",")
	if !ok {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q: %v", ErrMalformedKey, key, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q: %v", ErrMalformedKey, key, err)
	}

	return Coordinate{X: x, Y: y}, nil
}
