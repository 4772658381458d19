package scenario

import (
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// cellPath marks a path step in Render output.
const cellPath = '*'

// Render draws the scenario as ASCII rows, y=1 first, using the map markers
// and '*' for each cell of path. Endpoint markers win over path marks.
func (s *Scenario) Render(path []grid.Coordinate) string {
	if !grid.ValidBounds(s.Bounds) {
		return ""
	}
	w, h := s.Bounds.X, s.Bounds.Y
	cells := make([][]byte, h)
	for y := range cells {
		cells[y] = []byte(strings.Repeat(string(cellFree), w))
	}
	set := func(c grid.Coordinate, b byte) {
		if grid.Within(c, s.Bounds) {
			cells[c.Y-1][c.X-1] = b
		}
	}
	for _, b := range s.Blocked {
		set(b, cellWall)
	}
	for _, p := range path {
		set(p, cellPath)
	}
	set(s.Source, cellSource)
	set(s.Destination, cellDestination)

	var sb strings.Builder
	sb.Grow(h * (w + 1))
	for _, row := range cells {
		sb.Write(row)
		sb.WriteByte('\n')
	}

	return sb.String()
}
