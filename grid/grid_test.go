package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// Key and ParseKey
//----------------------------------------------------------------------------//

func TestKey_RoundTrip(t *testing.T) {
	for _, c := range []grid.Coordinate{{1, 1}, {12, 3}, {0, 0}, {-4, 7}, {1000, 99999}} {
		got, err := grid.ParseKey(c.Key())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	assert.Equal(t, "3,14", grid.C(3, 14).Key())
	// 1,12 and 11,2 must not collide.
	assert.NotEqual(t, grid.C(1, 12).Key(), grid.C(11, 2).Key())
}

func TestParseKey_Errors(t *testing.T) {
	cases := []string{"", "3", "a,1", "1,b", "1;2"}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			_, err := grid.ParseKey(in)
			if !errors.Is(err, grid.ErrMalformedKey) {
				t.Errorf("ParseKey(%q) error = %v; want ErrMalformedKey", in, err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Within, Neighbors4, Manhattan
//----------------------------------------------------------------------------//

// TestWithin checks the (0, bounds] rule on both axes.
func TestWithin(t *testing.T) {
	bounds := grid.C(5, 4)
	valid := []grid.Coordinate{{1, 1}, {5, 4}, {3, 2}, {1, 4}, {5, 1}}
	for _, c := range valid {
		assert.True(t, grid.Within(c, bounds), "Within(%v)", c)
	}
	invalid := []grid.Coordinate{{0, 1}, {1, 0}, {0, 0}, {6, 1}, {1, 5}, {-1, 2}}
	for _, c := range invalid {
		assert.False(t, grid.Within(c, bounds), "Within(%v)", c)
	}
}

func TestValidBounds(t *testing.T) {
	assert.True(t, grid.ValidBounds(grid.C(1, 1)))
	assert.False(t, grid.ValidBounds(grid.C(0, 3)))
	assert.False(t, grid.ValidBounds(grid.C(3, -1)))
}

// TestNeighbors4_Order pins the successor order: west, east, +y, -y.
func TestNeighbors4_Order(t *testing.T) {
	got := grid.Neighbors4(grid.C(3, 3))
	want := [4]grid.Coordinate{{2, 3}, {4, 3}, {3, 4}, {3, 2}}
	assert.Equal(t, want, got)
	for _, n := range got {
		assert.True(t, grid.Adjacent(grid.C(3, 3), n))
	}
	assert.Equal(t, want, func() [4]grid.Coordinate {
		var out [4]grid.Coordinate
		for i, d := range grid.Offsets4() {
			out[i] = grid.C(3, 3).Add(d)
		}
		return out
	}())
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, grid.Manhattan(grid.C(2, 2), grid.C(2, 2)))
	assert.Equal(t, 7, grid.Manhattan(grid.C(1, 1), grid.C(4, 5)))
	assert.Equal(t, 7, grid.Manhattan(grid.C(4, 5), grid.C(1, 1)))
	assert.False(t, grid.Adjacent(grid.C(1, 1), grid.C(2, 2)), "diagonal is not adjacent")
}

//----------------------------------------------------------------------------//
// BlockedFromLayer
//----------------------------------------------------------------------------//

func TestBlockedFromLayer_Errors(t *testing.T) {
	cases := []struct {
		name  string
		layer [][]int
		err   error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := grid.BlockedFromLayer(tc.layer, 1)
			if !errors.Is(err, tc.err) {
				t.Errorf("BlockedFromLayer(%v) error = %v; want %v", tc.layer, err, tc.err)
			}
		})
	}
}

// TestBlockedFromLayer_Mapping verifies the one-based shift and threshold rule.
func TestBlockedFromLayer_Mapping(t *testing.T) {
	layer := [][]int{
		{0, 2, 0},
		{1, 0, 0},
	}
	blocked, bounds, err := grid.BlockedFromLayer(layer, 1)
	require.NoError(t, err)
	assert.Equal(t, grid.C(3, 2), bounds)
	assert.Equal(t, []grid.Coordinate{{2, 1}, {1, 2}}, blocked)
	for _, b := range blocked {
		assert.True(t, grid.Within(b, bounds))
	}

	blocked, _, err = grid.BlockedFromLayer(layer, 2)
	require.NoError(t, err)
	assert.Equal(t, []grid.Coordinate{{2, 1}}, blocked)
}
