package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/indexedpq"
	"github.com/katalvlaran/gridpath/orderedindex"
)

// maxInitialCapacity bounds the queue pre-allocation on very large grids.
const maxInitialCapacity = 1024

// noParent marks the source node, the only node without a predecessor.
const noParent = -1

// searchNode is one discovered cell. parent is an index into runner.nodes,
// never an owning reference; nodes live until the call returns.
type searchNode struct {
	coords  grid.Coordinate
	parent  int
	g, h, f int
}

// FindPath runs A* from source to destination over the 4-connected grid
// bounded by bounds (inclusive maximum), avoiding every cell in blocked.
//
// Returns:
//
//   - res.Found == true and res.Path holding the steps after source up to and
//     including destination. source == destination yields an empty path.
//   - res.Found == false when the destination is unreachable (or MaxExpansions
//     was hit, see res.Truncated). This is not an error.
//   - err for invalid input, checked in order:
//     1. bounds (ErrInvalidBounds)
//     2. source within (0, bounds] (ErrSourceOutOfBounds)
//     3. destination within (0, bounds] (ErrDestinationOutOfBounds)
//     4. source not blocked (ErrSourceBlocked)
//     5. destination not blocked (ErrDestinationBlocked)
//     plus ErrOptionViolation for bad options.
//
// Each call owns all of its state; nothing is shared between calls, so
// concurrent calls on distinct inputs are safe.
//
// Complexity: O(N·(log N + h)) time and O(N) memory, where N is the number of
// discovered cells and h the height of the key indexes.
func FindPath(blocked []grid.Coordinate, source, destination, bounds grid.Coordinate, opts ...Option) (*Result, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate geometry.
	if !grid.ValidBounds(bounds) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidBounds, bounds)
	}
	if !grid.Within(source, bounds) {
		return nil, fmt.Errorf("%w: %v not in (0,%v]", ErrSourceOutOfBounds, source, bounds)
	}
	if !grid.Within(destination, bounds) {
		return nil, fmt.Errorf("%w: %v not in (0,%v]", ErrDestinationOutOfBounds, destination, bounds)
	}

	// 3) Index the blocked cells for O(h) membership tests.
	walls := orderedindex.New[string, struct{}]()
	for _, b := range blocked {
		walls.Add(b.Key(), struct{}{})
	}
	if walls.Exists(source.Key()) {
		return nil, fmt.Errorf("%w: %v", ErrSourceBlocked, source)
	}
	if walls.Exists(destination.Key()) {
		return nil, fmt.Errorf("%w: %v", ErrDestinationBlocked, destination)
	}

	// 4) Trivial query: already there.
	if source == destination {
		return &Result{Path: []grid.Coordinate{}, Found: true}, nil
	}

	capacity := bounds.X * bounds.Y
	if capacity > maxInitialCapacity || capacity <= 0 {
		capacity = maxInitialCapacity
	}
	r := &runner{
		options:     cfg,
		walls:       walls,
		destination: destination,
		bounds:      bounds,
		nodes:       make([]searchNode, 0, capacity),
		open:        indexedpq.New[string, int, int](capacity),
		closed:      indexedpq.New[string, int, int](capacity),
		terminal:    noParent,
		res:         &Result{},
	}

	// 5) Seed and run.
	if err := r.init(source); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	// 6) Reconstruct, or report not found.
	if r.terminal == noParent {
		return r.res, nil
	}
	r.res.Path = r.reconstruct()
	r.res.Cost = len(r.res.Path)
	r.res.Found = true

	return r.res, nil
}

// runner holds the mutable state for one FindPath execution.
type runner struct {
	options     Options
	walls       *orderedindex.Index[string, struct{}]
	destination grid.Coordinate
	bounds      grid.Coordinate
	nodes       []searchNode                       // arena; queue payloads are indexes into it
	open        *indexedpq.Queue[string, int, int] // discovered, not yet expanded
	closed      *indexedpq.Queue[string, int, int] // expanded, keyed by cell
	terminal    int                                // arena index of the destination node, or noParent
	res         *Result
}

// init pushes the source with g = h = f = 0 and no parent.
func (r *runner) init(source grid.Coordinate) error {
	idx := r.newNode(searchNode{coords: source, parent: noParent})

	return r.open.Enqueue(0, source.Key(), idx)
}

// process pops the minimum-f node until the destination is discovered, the
// open set is exhausted, or the expansion budget runs out.
func (r *runner) process() error {
	for r.open.Len() > 0 && r.terminal == noParent {
		if r.options.MaxExpansions > 0 && r.res.Expanded >= r.options.MaxExpansions {
			r.res.Truncated = true
			break
		}

		// 1) Pop the smallest-f node.
		cur, _ := r.open.DequeueMin()
		node := r.nodes[cur]
		r.res.Expanded++
		r.options.OnExpand(node.coords, node.g, node.f)

		// 2) Relax its successors; may record the terminal node.
		if err := r.relax(cur); err != nil {
			return err
		}

		// 3) Finalize it.
		if err := r.closed.Enqueue(node.f, node.coords.Key(), cur); err != nil {
			return fmt.Errorf("astar: closing %v: %w", node.coords, err)
		}

		if r.options.CheckInvariants {
			if err := r.verify(); err != nil {
				return err
			}
		}
	}

	return nil
}

// relax examines the four neighbors of the node at arena index cur.
func (r *runner) relax(cur int) error {
	node := r.nodes[cur]
	for _, next := range grid.Neighbors4(node.coords) {
		// Off-grid (including row/column 0) or walled cells are not successors.
		if !grid.Within(next, r.bounds) {
			continue
		}
		key := next.Key()
		if r.walls.Exists(key) {
			continue
		}

		// Destination reached on discovery; stop scanning successors.
		if next == r.destination {
			r.terminal = r.newNode(searchNode{coords: next, parent: cur, g: node.g + 1})
			return nil
		}

		g := node.g + 1
		h := r.options.Heuristic(next, r.destination)
		f := g + h

		// An equal-or-cheaper route to this cell was already finalized.
		if idx, ok := r.closed.Lookup(key); ok {
			if r.nodes[idx].f <= f {
				continue
			}
			// Cheaper than a finalized route: reopen. Unreachable with a
			// consistent heuristic.
			r.closed.Remove(key)
		}

		// Already queued: lower it in place and re-rank, or leave it.
		if idx, ok := r.open.Lookup(key); ok {
			existing := &r.nodes[idx]
			if existing.f > f {
				oldF := existing.f
				existing.parent, existing.g, existing.h, existing.f = cur, g, h, f
				if err := r.open.DecreasePriority(key, f); err != nil {
					return fmt.Errorf("astar: reprioritizing %v: %w", next, err)
				}
				r.res.Reprioritized++
				r.options.OnReprioritize(next, oldF, f)
			}
			continue
		}

		idx := r.newNode(searchNode{coords: next, parent: cur, g: g, h: h, f: f})
		if err := r.open.Enqueue(f, key, idx); err != nil {
			return fmt.Errorf("astar: opening %v: %w", next, err)
		}
		r.options.OnEnqueue(next, g, f)
	}

	return nil
}

// newNode appends n to the arena and returns its index.
func (r *runner) newNode(n searchNode) int {
	r.nodes = append(r.nodes, n)

	return len(r.nodes) - 1
}

// reconstruct walks parent links from the terminal node, collecting every
// cell except the source, and returns them source-side first.
func (r *runner) reconstruct() []grid.Coordinate {
	var path []grid.Coordinate
	for at := r.terminal; r.nodes[at].parent != noParent; at = r.nodes[at].parent {
		path = append(path, r.nodes[at].coords)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// verify checks both queues' internal consistency and that no cell is open
// and closed at once.
func (r *runner) verify() error {
	if err := r.open.Verify(); err != nil {
		return fmt.Errorf("astar: open set: %w", err)
	}
	if err := r.closed.Verify(); err != nil {
		return fmt.Errorf("astar: closed set: %w", err)
	}
	for _, k := range r.open.Keys() {
		if r.closed.Exists(k) {
			return fmt.Errorf("astar: %w: %s both open and closed", indexedpq.ErrStructuralViolation, k)
		}
	}

	return nil
}
