package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Labels that are not region ids.
const (
	noRegion = -1 // blocked
	unseen   = -2 // free, not yet flooded
)

// RegionMap labels every free cell of a grid with the id of its 4-connected region.
// Two cells are mutually reachable exactly when they share a region id.
type RegionMap struct {
	bounds grid.Coordinate
	labels []int // row-major, index (y-1)*bounds.X + (x-1)
	sizes  []int // cells per region id
}

// Regions floods every free cell of the grid bounded by bounds.
// Region ids are assigned in row-major scan order (y=1 first, then x), starting at 0.
//
// Time:   O(W·H).
// Memory: O(W·H) for labels and the flood queue.
func Regions(blocked []grid.Coordinate, bounds grid.Coordinate) (*RegionMap, error) {
	if !grid.ValidBounds(bounds) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidBounds, bounds)
	}
	total := bounds.X * bounds.Y
	rm := &RegionMap{bounds: bounds, labels: make([]int, total)}

	for i := range rm.labels {
		rm.labels[i] = unseen
	}
	for _, b := range blocked {
		if grid.Within(b, bounds) {
			rm.labels[rm.index(b)] = noRegion
		}
	}

	var queue []grid.Coordinate
	for y := 1; y <= bounds.Y; y++ {
		for x := 1; x <= bounds.X; x++ {
			start := grid.C(x, y)
			if rm.labels[rm.index(start)] != unseen {
				continue
			}
			id := len(rm.sizes)
			rm.labels[rm.index(start)] = id
			queue = append(queue[:0], start)
			size := 0
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				size++
				for _, v := range grid.Neighbors4(u) {
					if !grid.Within(v, bounds) || rm.labels[rm.index(v)] != unseen {
						continue
					}
					rm.labels[rm.index(v)] = id
					queue = append(queue, v)
				}
			}
			rm.sizes = append(rm.sizes, size)
		}
	}

	return rm, nil
}

func (rm *RegionMap) index(c grid.Coordinate) int {
	return (c.Y-1)*rm.bounds.X + (c.X - 1)
}

// Count returns the number of regions.
func (rm *RegionMap) Count() int { return len(rm.sizes) }

// Region returns the region id of c, or ok == false if c is blocked or off-grid.
func (rm *RegionMap) Region(c grid.Coordinate) (id int, ok bool) {
	if !grid.Within(c, rm.bounds) {
		return noRegion, false
	}
	id = rm.labels[rm.index(c)]

	return id, id != noRegion
}

// Size returns the number of cells in region id, or 0 for an unknown id.
func (rm *RegionMap) Size(id int) int {
	if id < 0 || id >= len(rm.sizes) {
		return 0
	}

	return rm.sizes[id]
}

// Connected reports whether a and b are both free and in the same region.
func (rm *RegionMap) Connected(a, b grid.Coordinate) bool {
	ra, okA := rm.Region(a)
	rb, okB := rm.Region(b)

	return okA && okB && ra == rb
}
