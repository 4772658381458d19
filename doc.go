// Package gridpath finds shortest routes on bounded 4-connected grids with A*,
// built on its own keyed priority queue.
//
// 🚀 What is gridpath?
//
//	A small, dependency-light toolkit that brings together:
//		• Grid geometry: coordinates, "x,y" keys, bounds, neighbors, collision layers
//		• MinHeap: array-backed binary heap with handles and decrease-priority
//		• OrderedIndex: unbalanced binary search tree keyed by any ordered type
//		• IndexedPriorityQueue: heap + index, so "is it queued?" and
//		  "make it cheaper" are both fast
//		• A*: grid path-finding over the queue, with hooks and counters
//		• BFS: unit-cost reference search over the same grid rules
//		• Scenarios: YAML problems with lists or ASCII maps and expected outcomes
//
// ✨ Why choose gridpath?
//
//   - Deterministic - same input, same path, every time
//   - Explicit outcomes - "no path" is a result, bad input is an error
//   - Observable - OnExpand, OnEnqueue, OnReprioritize hooks plus counters
//   - Self-checking - Verify on every queue, invariant checks on demand
//
// Under the hood, everything is organized into small packages:
//
//	grid/         - Coordinate, Within, Neighbors4, Manhattan, BlockedFromLayer
//	minheap/      - Heap[P, V] with Entry handles
//	orderedindex/ - Index[K, V] binary search tree
//	indexedpq/    - Queue[K, P, V] keyed priority queue
//	astar/        - FindPath, heuristics, options, Result
//	bfs/          - Search, BFSResult.PathTo
//	scenario/     - Load, LoadFile, Run, Check, Render
//
// Quick ASCII example (y=1 on top, S source, D destination, # wall):
//
//	S#.D.
//	.#...
//	.#...
//	.#...
//	.....
//
//	is solved in 11 steps through the gap at (2,5).
//
// Try it:
//
//	go run ./examples/gridpath -f scenario/testdata/serpentine.yaml
package gridpath
