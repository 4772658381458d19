// Package bfs provides breadth-first search over a bounded 4-connected grid,
// returning unit-cost shortest distances, parent links, and visit order.
//
// It shares the grid package's boundary rule and successor order with astar
// but none of its data structures, which makes it a reference answer for
// shortest-path lengths.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	c     grid.Coordinate
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	ctx     context.Context
	opts    BFSOptions
	bounds  grid.Coordinate
	walls   map[grid.Coordinate]struct{}
	queue   []queueItem
	visited map[grid.Coordinate]bool
	res     *BFSResult
}

// Search runs breadth-first search from start over the grid bounded by bounds,
// never entering a cell listed in blocked, applying any number of functional Options.
// Returns ErrInvalidBounds, ErrStartOutOfBounds or ErrStartBlocked for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation, or any user-supplied hook error.
func Search(blocked []grid.Coordinate, start, bounds grid.Coordinate, opts ...Option) (*BFSResult, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !grid.ValidBounds(bounds) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidBounds, bounds)
	}
	if !grid.Within(start, bounds) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	walls := make(map[grid.Coordinate]struct{}, len(blocked))
	for _, b := range blocked {
		walls[b] = struct{}{}
	}
	if _, ok := walls[start]; ok {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}

	// Prepare walker
	n := bounds.X * bounds.Y
	if n > 4096 {
		n = 4096
	}
	w := &walker{
		ctx:     o.Ctx,
		opts:    o,
		bounds:  bounds,
		walls:   walls,
		queue:   make([]queueItem, 0, n),
		visited: make(map[grid.Coordinate]bool, n),
		res: &BFSResult{
			Order:  make([]grid.Coordinate, 0, n),
			Depth:  make(map[grid.Coordinate]int, n),
			Parent: make(map[grid.Coordinate]grid.Coordinate, n),
		},
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks c visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(c grid.Coordinate, d int, parent *grid.Coordinate) {
	w.visited[c] = true
	w.res.Depth[c] = d
	if parent != nil {
		w.res.Parent[c] = *parent
	}
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{c: c, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.c)
	if err := w.opts.OnVisit(item.c, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.c, err)
	}

	return nil
}

// enqueueNeighbors applies the grid rule, walls and MaxDepth,
// and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range grid.Neighbors4(item.c) {
		if !grid.Within(nbr, w.bounds) {
			continue
		}
		if _, wall := w.walls[nbr]; wall {
			continue
		}
		// first time seen?
		if !w.visited[nbr] {
			parent := item.c
			w.enqueue(nbr, nextDepth, &parent)
		}
	}
}
