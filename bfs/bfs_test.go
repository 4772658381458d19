package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	if _, err := bfs.Search(nil, grid.C(1, 1), grid.C(0, 3)); !errors.Is(err, bfs.ErrInvalidBounds) {
		t.Errorf("zero width: want ErrInvalidBounds, got %v", err)
	}
	for _, start := range []grid.Coordinate{grid.C(0, 1), grid.C(1, 0), grid.C(4, 1), grid.C(1, 4), grid.C(-1, -1)} {
		if _, err := bfs.Search(nil, start, grid.C(3, 3)); !errors.Is(err, bfs.ErrStartOutOfBounds) {
			t.Errorf("start %v: want ErrStartOutOfBounds, got %v", start, err)
		}
	}
	if _, err := bfs.Search([]grid.Coordinate{grid.C(2, 2)}, grid.C(2, 2), grid.C(3, 3)); !errors.Is(err, bfs.ErrStartBlocked) {
		t.Errorf("blocked start: want ErrStartBlocked, got %v", err)
	}
	if _, err := bfs.Search(nil, grid.C(1, 1), grid.C(3, 3), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestSearch_SingleCell covers the trivial 1×1 grid.
func TestSearch_SingleCell(t *testing.T) {
	res, err := bfs.Search(nil, grid.C(1, 1), grid.C(1, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []grid.Coordinate{grid.C(1, 1)}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[grid.C(1, 1)]; d != 0 {
		t.Errorf("Depth[(1,1)] = %d; want 0", d)
	}
}

// TestSearch_OpenGridDepths checks that every depth equals the Manhattan distance
// on an obstacle-free grid.
func TestSearch_OpenGridDepths(t *testing.T) {
	start, bounds := grid.C(3, 2), grid.C(6, 4)
	res, err := bfs.Search(nil, start, bounds)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(res.Order), bounds.X*bounds.Y; got != want {
		t.Fatalf("visited %d cells; want %d", got, want)
	}
	for c, d := range res.Depth {
		if want := grid.Manhattan(start, c); d != want {
			t.Errorf("Depth[%v] = %d; want %d", c, d, want)
		}
	}
	// visit order is non-decreasing in depth
	for i := 1; i < len(res.Order); i++ {
		if res.Depth[res.Order[i-1]] > res.Depth[res.Order[i]] {
			t.Fatalf("order not layered at %d: %v", i, res.Order)
		}
	}
}

// TestSearch_ZeroRowAndColumnAreOffGrid ensures nothing with a zero coordinate is reached.
func TestSearch_ZeroRowAndColumnAreOffGrid(t *testing.T) {
	res, err := bfs.Search(nil, grid.C(1, 1), grid.C(2, 2))
	if err != nil {
		t.Fatal(err)
	}
	for c := range res.Depth {
		if c.X <= 0 || c.Y <= 0 {
			t.Errorf("reached off-grid cell %v", c)
		}
	}
}

// TestSearch_Walls ensures blocked cells are never entered and detours are measured.
func TestSearch_Walls(t *testing.T) {
	// column x=2 blocked for y=1..4 on a 5×5 grid; the only gap is (2,5)
	walls := []grid.Coordinate{grid.C(2, 1), grid.C(2, 2), grid.C(2, 3), grid.C(2, 4)}
	res, err := bfs.Search(walls, grid.C(1, 1), grid.C(5, 5))
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range walls {
		if _, ok := res.Depth[w]; ok {
			t.Errorf("entered wall %v", w)
		}
	}
	if d, ok := res.Distance(grid.C(4, 1)); !ok || d != 11 {
		t.Errorf("Distance((4,1)) = %d,%v; want 11,true", d, ok)
	}
}

// TestSearch_Disconnected ensures BFS only explores the region of the start cell.
func TestSearch_Disconnected(t *testing.T) {
	// full wall on x=2 splits a 3×3 grid
	walls := []grid.Coordinate{grid.C(2, 1), grid.C(2, 2), grid.C(2, 3)}
	res, err := bfs.Search(walls, grid.C(1, 1), grid.C(3, 3))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 3 {
		t.Errorf("visited %v; want only the x=1 column", res.Order)
	}
	if _, err := res.PathTo(grid.C(3, 3)); !errors.Is(err, bfs.ErrUnreached) {
		t.Errorf("PathTo across wall: want ErrUnreached, got %v", err)
	}
}

// TestSearch_MaxDepth verifies WithMaxDepth for positive and zero (no limit) depths.
func TestSearch_MaxDepth(t *testing.T) {
	bounds := grid.C(10, 1)
	res, err := bfs.Search(nil, grid.C(1, 1), bounds, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []grid.Coordinate{grid.C(1, 1), grid.C(2, 1), grid.C(3, 1)}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("depth=2: got %v; want %v", res.Order, want)
	}
	res, err = bfs.Search(nil, grid.C(1, 1), bounds, bfs.WithMaxDepth(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 10 {
		t.Errorf("depth=0: visited %d; want 10", len(res.Order))
	}
}

// TestSearch_HooksAndAbort checks hook ordering and that an OnVisit error stops the walk.
func TestSearch_HooksAndAbort(t *testing.T) {
	var enq, vis []grid.Coordinate
	stop := errors.New("stop")
	_, err := bfs.Search(nil, grid.C(1, 1), grid.C(5, 1),
		bfs.WithOnEnqueue(func(c grid.Coordinate, _ int) { enq = append(enq, c) }),
		bfs.WithOnVisit(func(c grid.Coordinate, d int) error {
			vis = append(vis, c)
			if d == 2 {
				return stop
			}
			return nil
		}),
	)
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
	if want := []grid.Coordinate{grid.C(1, 1), grid.C(2, 1), grid.C(3, 1)}; !reflect.DeepEqual(vis, want) {
		t.Errorf("visited %v; want %v", vis, want)
	}
	if len(enq) != 3 {
		t.Errorf("enqueued %v; want 3 cells", enq)
	}
}

// TestSearch_ContextCanceled ensures a canceled context aborts before any visit.
func TestSearch_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := bfs.Search(nil, grid.C(1, 1), grid.C(3, 3), bfs.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if len(res.Order) != 0 {
		t.Errorf("visited %v after cancel", res.Order)
	}
}

// TestPathTo checks reconstruction endpoints and step adjacency.
func TestPathTo(t *testing.T) {
	res, err := bfs.Search(nil, grid.C(1, 1), grid.C(4, 4))
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo(grid.C(4, 3))
	if err != nil {
		t.Fatal(err)
	}
	if path[0] != grid.C(1, 1) || path[len(path)-1] != grid.C(4, 3) {
		t.Errorf("endpoints = %v..%v", path[0], path[len(path)-1])
	}
	if len(path) != 6 {
		t.Errorf("len(path) = %d; want 6 (5 steps, start inclusive)", len(path))
	}
	for i := 1; i < len(path); i++ {
		if !grid.Adjacent(path[i-1], path[i]) {
			t.Errorf("step %d: %v → %v not adjacent", i, path[i-1], path[i])
		}
	}
	self, err := res.PathTo(grid.C(1, 1))
	if err != nil || !reflect.DeepEqual(self, []grid.Coordinate{grid.C(1, 1)}) {
		t.Errorf("PathTo(start) = %v, %v", self, err)
	}
}
