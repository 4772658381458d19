package bfs_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// TestRegions_Split checks labeling on a grid cut in two by a full wall.
func TestRegions_Split(t *testing.T) {
	walls := []grid.Coordinate{grid.C(2, 1), grid.C(2, 2), grid.C(2, 3)}
	rm, err := bfs.Regions(walls, grid.C(4, 3))
	if err != nil {
		t.Fatal(err)
	}
	if rm.Count() != 2 {
		t.Fatalf("Count = %d; want 2", rm.Count())
	}
	if id, ok := rm.Region(grid.C(1, 3)); !ok || id != 0 {
		t.Errorf("Region((1,3)) = %d,%v; want 0,true", id, ok)
	}
	if id, ok := rm.Region(grid.C(4, 1)); !ok || id != 1 {
		t.Errorf("Region((4,1)) = %d,%v; want 1,true", id, ok)
	}
	if rm.Size(0) != 3 || rm.Size(1) != 6 || rm.Size(2) != 0 {
		t.Errorf("sizes = %d,%d,%d; want 3,6,0", rm.Size(0), rm.Size(1), rm.Size(2))
	}
	if _, ok := rm.Region(grid.C(2, 2)); ok {
		t.Error("wall must have no region")
	}
	if _, ok := rm.Region(grid.C(0, 1)); ok {
		t.Error("column 0 must have no region")
	}
	if rm.Connected(grid.C(1, 1), grid.C(3, 1)) {
		t.Error("cells across the wall reported connected")
	}
	if !rm.Connected(grid.C(3, 1), grid.C(4, 3)) {
		t.Error("cells on the same side reported disconnected")
	}
}

// TestRegions_InvalidBounds rejects grids without cells.
func TestRegions_InvalidBounds(t *testing.T) {
	if _, err := bfs.Regions(nil, grid.C(3, 0)); !errors.Is(err, bfs.ErrInvalidBounds) {
		t.Errorf("want ErrInvalidBounds, got %v", err)
	}
}

// TestRegions_AgreeWithSearch compares region membership with BFS reachability.
func TestRegions_AgreeWithSearch(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for trial := 0; trial < 100; trial++ {
		bounds := grid.C(1+rnd.Intn(10), 1+rnd.Intn(10))
		start := grid.C(1+rnd.Intn(bounds.X), 1+rnd.Intn(bounds.Y))
		var walls []grid.Coordinate
		for x := 1; x <= bounds.X; x++ {
			for y := 1; y <= bounds.Y; y++ {
				if c := grid.C(x, y); c != start && rnd.Intn(3) == 0 {
					walls = append(walls, c)
				}
			}
		}
		rm, err := bfs.Regions(walls, bounds)
		if err != nil {
			t.Fatal(err)
		}
		res, err := bfs.Search(walls, start, bounds)
		if err != nil {
			t.Fatal(err)
		}
		id, _ := rm.Region(start)
		if rm.Size(id) != len(res.Order) {
			t.Fatalf("trial %d: region size %d, BFS reached %d", trial, rm.Size(id), len(res.Order))
		}
		for _, c := range res.Order {
			if !rm.Connected(start, c) {
				t.Fatalf("trial %d: %v reached but not in start's region", trial, c)
			}
		}
	}
}
