package weights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatticeDegrees(t *testing.T) {
	w, err := Lattice(3, 3)
	require.NoError(t, err)
	require.Equal(t, 9, w.N())

	// Rook contiguity on a 3x3 grid: corners touch 2 cells, edges 3,
	// the center 4.
	wantDegrees := []int{2, 3, 2, 3, 4, 3, 2, 3, 2}
	for i, want := range wantDegrees {
		assert.Equal(t, want, w.Degree(i), "cell %d", i)
	}
}

func TestLatticeNeighbors(t *testing.T) {
	w, err := Lattice(3, 3)
	require.NoError(t, err)

	// Center cell 4 touches the cells above, left, right, and below.
	assert.Equal(t, []int{1, 3, 5, 7}, w.Neighbors(4))
	// Corner cell 0 touches only its right and lower neighbors; no diagonals.
	assert.Equal(t, []int{1, 3}, w.Neighbors(0))
	assert.NotContains(t, w.Neighbors(0), 4)
}

func TestLatticeRectangular(t *testing.T) {
	w, err := Lattice(2, 5)
	require.NoError(t, err)
	require.Equal(t, 10, w.N())

	// Cell 7 = (row 1, col 2): up 2, left 6, right 8.
	assert.Equal(t, []int{2, 6, 8}, w.Neighbors(7))
}

func TestLatticeInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 4}, {0, 0}} {
		_, err := Lattice(dims[0], dims[1])
		assert.Error(t, err, "dims %v", dims)
	}
}

func TestLatticeSingleCell(t *testing.T) {
	w, err := Lattice(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, w.N())
	assert.Equal(t, 0, w.Degree(0))
	assert.Zero(t, w.S0())
}

func TestRowStandardize(t *testing.T) {
	w, err := Lattice(4, 4)
	require.NoError(t, err)

	// Before standardization every link weighs 1, so S0 counts links.
	assert.InDelta(t, 48, w.S0(), 1e-12)

	w.RowStandardize()

	for i := 0; i < w.N(); i++ {
		var sum float64
		for _, v := range w.Weights(i) {
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "row %d", i)

		// Each neighbor carries 1/degree.
		for _, v := range w.Weights(i) {
			assert.InDelta(t, 1.0/float64(w.Degree(i)), v, 1e-12)
		}
	}

	// After row-standardization S0 equals the cell count.
	assert.InDelta(t, float64(w.N()), w.S0(), 1e-9)
}
