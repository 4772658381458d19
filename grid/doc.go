// Package grid defines the coordinate model shared by every search in gridpath:
// integer cells on a bounded, 4-connected plane with static obstacles.
//
// What:
//
//   - Coordinate is an immutable (X, Y) value with a canonical "x,y" key.
//   - Within applies the boundary rule: a cell is on the grid iff 0 < X ≤ bounds.X
//     and 0 < Y ≤ bounds.Y. Row 0 and column 0 are always off-grid.
//   - Neighbors4 yields the axis-aligned neighbors in a fixed order:
//     (x-1,y), (x+1,y), (x,y+1), (x,y-1).
//   - Manhattan returns |dx| + |dy|.
//   - BlockedFromLayer converts a collision tile layer into a blocked set plus bounds.
//
// Why the zero exclusion:
//
//	Callers address tiles from 1, and successor generation in astar and bfs
//	discards x ≤ 0 or y ≤ 0. The rule lives here, in one place, so both searches
//	agree at the grid edges.
//
// Complexity:
//
//   - Key, ParseKey, Within, Manhattan: O(1) (Key/ParseKey are O(digits)).
//   - BlockedFromLayer: O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:      layer has no rows or no columns.
//   - ErrNonRectangular: layer rows have differing lengths.
//   - ErrMalformedKey:   ParseKey input is not "x,y".
package grid
