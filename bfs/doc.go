// Package bfs provides breadth-first search over a bounded 4-connected grid,
// returning unit-cost shortest distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing distance (step count) from a start cell.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance (steps) from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Supports functional hooks at two stages:
//   - OnEnqueue (before a cell is enqueued)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Regions labels every free cell with its 4-connected region, so
//     reachability between any two cells is a single comparison.
//
// Why
//
//   - Every move on the grid costs 1, so BFS distances are exact shortest-path
//     lengths in O(cells) time.
//   - Shares grid.Within and grid.Neighbors4 with astar and nothing else,
//     so its Depth map is an independent reference for A* path lengths.
//
// Determinism
//
//	Neighbors are enqueued in grid.Neighbors4 order (x-1, x+1, y+1, y-1),
//	so the visit sequence and parent links are fully reproducible.
//
// Complexity (N = bounds.X * bounds.Y)
//
//   - Time:   O(N)   (each cell enqueued at most once, 4 probes per visit)
//   - Memory: O(N)   (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.Search(blocked, grid.C(1, 1), grid.C(5, 5))
//	if err != nil {
//	    // ErrInvalidBounds, ErrStartOutOfBounds, ErrStartBlocked,
//	    // ErrOptionViolation, ctx.Err(), or a wrapped OnVisit error
//	}
//	steps, ok := res.Distance(grid.C(4, 1))
//	path, err := res.PathTo(grid.C(4, 1)) // start and dest inclusive
//
//	rm, err := bfs.Regions(blocked, grid.C(5, 5))
//	same := rm.Connected(grid.C(1, 1), grid.C(4, 1))
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit.
//   - WithContext(ctx):   set a custom context for cancellation.
//   - WithMaxDepth(d):    stop exploring beyond depth d (>0).
//   - WithOnEnqueue(fn):  hook before a cell is enqueued.
//   - WithOnVisit(fn):    hook during visit; returning error aborts BFS.
package bfs
