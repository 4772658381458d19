package grid

// offsets4 lists the 4-connected steps in successor order:
// west, east, then +y, then -y.
var offsets4 = [4]Coordinate{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}

// Offsets4 returns the 4-connected neighbor offsets in successor order.
// Complexity: O(1).
func Offsets4() [4]Coordinate {
	return offsets4
}

// Within reports whether c lies on the grid bounded by bounds (inclusive maximum).
// Cells with X ≤ 0 or Y ≤ 0 are never within the grid.
// Complexity: O(1).
func Within(c, bounds Coordinate) bool {
	return c.X > 0 && c.Y > 0 && c.X <= bounds.X && c.Y <= bounds.Y
}

// ValidBounds reports whether bounds describes a grid with at least one cell.
func ValidBounds(bounds Coordinate) bool {
	return bounds.X >= 1 && bounds.Y >= 1
}

// Neighbors4 returns the four axis-aligned neighbors of c in successor order,
// without filtering. Callers apply Within and their own blocked test.
// Complexity: O(1).
func Neighbors4(c Coordinate) [4]Coordinate {
	var out [4]Coordinate
	for i, d := range offsets4 {
		out[i] = c.Add(d)
	}

	return out
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
// It is admissible and consistent for unit-cost 4-connected movement.
func Manhattan(a, b Coordinate) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Adjacent reports whether a and b differ by exactly one unit on exactly one axis.
func Adjacent(a, b Coordinate) bool {
	return Manhattan(a, b) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// BlockedFromLayer converts a rectangular collision layer into blocked coordinates.
// A cell whose value is ≥ threshold is blocked. layer[r][c] maps to Coordinate{c+1, r+1},
// so the returned bounds are (width, height) and every returned cell satisfies Within.
// Blocked cells are returned in row-major order. The input is not retained.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed layers.
// Complexity: O(W×H) time and memory.
func BlockedFromLayer(layer [][]int, threshold int) (blocked []Coordinate, bounds Coordinate, err error) {
	if len(layer) == 0 || len(layer[0]) == 0 {
		return nil, Coordinate{}, ErrEmptyGrid
	}
	h, w := len(layer), len(layer[0])
	for _, row := range layer {
		if len(row) != w {
			return nil, Coordinate{}, ErrNonRectangular
		}
	}
	blocked = make([]Coordinate, 0, w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if layer[r][c] >= threshold {
				blocked = append(blocked, Coordinate{X: c + 1, Y: r + 1})
			}
		}
	}

	return blocked, Coordinate{X: w, Y: h}, nil
}
