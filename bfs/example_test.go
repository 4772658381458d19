package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleSearch_layers demonstrates BFS layering on a 3×3 grid.
// Neighbors are tried as x-1, x+1, y+1, y-1, so each layer follows that order.
func ExampleSearch_layers() {
	res, err := bfs.Search(nil, grid.C(1, 1), grid.C(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [(1,1) (2,1) (1,2) (3,1) (2,2) (1,3) (3,2) (2,3) (3,3)]
}

// ExampleBFSResult_PathTo finds the fewest-step route around a wall.
func ExampleBFSResult_PathTo() {
	walls := []grid.Coordinate{grid.C(2, 1), grid.C(2, 2)}
	res, err := bfs.Search(walls, grid.C(1, 1), grid.C(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo(grid.C(3, 1))
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [(1,1) (1,2) (1,3) (2,3) (3,3) (3,2) (3,1)]
}
