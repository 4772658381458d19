// Package astar finds shortest 4-connected paths on a bounded grid with A*.
//
// What
//
//   - FindPath(blocked, source, destination, bounds, opts...) searches the grid
//     whose cells are (1..bounds.X) × (1..bounds.Y); row 0 and column 0 are
//     off-grid.
//   - Every move costs 1; the step count of the returned path is minimal when
//     the heuristic never overestimates (Manhattan, the default, does not).
//   - The open set and closed set are both indexedpq.Queue values keyed by the
//     cell's "x,y" key, so membership tests and priority lookups are O(h) and
//     re-ranking a cheaper route is a single DecreasePriority call.
//
// Algorithm
//
//  1. Validate options, then bounds, source, destination, blocked endpoints.
//  2. Seed the open set with the source (g = h = f = 0).
//  3. Pop the minimum-f node. For each neighbor in grid.Neighbors4 order:
//     - skip off-grid and blocked cells;
//     - if it is the destination, record it and stop;
//     - skip it if the closed set already holds an f ≤ the new f;
//     - if it is open with a larger f, lower g/h/f and its priority;
//     - otherwise open it.
//  4. Close the popped node; repeat until found, the open set is empty,
//     or MaxExpansions is reached.
//  5. Walk parent links back from the destination.
//
// Ties between equal f values resolve by heap order, which depends only on
// insertion order. Identical inputs always produce identical paths.
//
// Result
//
//	Found == false is an ordinary outcome (walled-off destination, or a
//	truncated search); it is not an error. Result.PathOrErr converts it to
//	ErrNotFound for callers that prefer error flow.
//
// Errors
//
//   - ErrInvalidBounds           bounds.X < 1 or bounds.Y < 1.
//   - ErrSourceOutOfBounds       source outside (0, bounds].
//   - ErrDestinationOutOfBounds  destination outside (0, bounds].
//   - ErrSourceBlocked           source listed in blocked.
//   - ErrDestinationBlocked      destination listed in blocked.
//   - ErrOptionViolation         invalid Option (e.g. negative MaxExpansions).
//
// All input errors wrap ErrInvalidInput.
//
// Options
//
//   - WithHeuristic(h):          replace Manhattan (e.g. SingleAxis).
//   - WithMaxExpansions(n):      stop after n expansions (n > 0).
//   - WithInvariantChecks():     verify queue consistency after each expansion.
//   - WithOnExpand(fn):          hook per popped node.
//   - WithOnEnqueue(fn):         hook per newly opened cell.
//   - WithOnReprioritize(fn):    hook per in-place f decrease.
//
// Complexity
//
//   - Time:   O(N·(log N + h)), N = discovered cells, h = index height.
//   - Memory: O(N + |blocked|).
//
// Usage
//
//	res, err := astar.FindPath(blocked, grid.C(1, 1), grid.C(4, 1), grid.C(5, 5))
//	if err != nil {
//	    return err
//	}
//	if !res.Found {
//	    // unreachable
//	}
//	for _, step := range res.Path { ... }
package astar
