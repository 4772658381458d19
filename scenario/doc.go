// Package scenario loads grid path-finding problems from YAML and runs them
// through astar.
//
// A scenario names the grid, the two endpoints and the walls, either as an
// explicit list or as an ASCII map, plus an optional expected outcome:
//
//	name: wall detour
//	bounds: [5, 5]
//	source: [1, 1]
//	destination: {x: 4, y: 1}
//	blocked: [[2, 1], [2, 2], [2, 3], [2, 4]]
//	expect:
//	  found: true
//	  length: 11
//
// The same problem drawn as a map. The first row is y=1 and the first
// column is x=1; '#' is a wall, 'S' the source, 'D' the destination and
// '.' a free cell. Bounds come from the map's width and height.
//
//	name: wall detour
//	map: |
//	  S#.D.
//	  .#...
//	  .#...
//	  .#...
//	  .....
//
// Decoding is strict: unknown keys are rejected.
//
// Errors
//
//   - ErrMissingField          a required key (bounds, source, destination,
//     expect.found) is absent.
//   - ErrBadMapRune            a map cell is not one of "#.SD", or S/D repeat.
//   - ErrConflictingObstacles  map combined with bounds, blocked, or an
//     endpoint that the map also marks.
//   - ErrExpectationMismatch   Check found a result that differs from expect.
//
// Geometry (bounds, endpoints inside the grid, endpoints not blocked) is
// validated by astar.FindPath when the scenario runs.
package scenario
