// Package weights builds spatial weights structures over regular lattices.
package weights

import (
	"github.com/rotisserie/eris"
)

// rookOffsets are the four edge-sharing neighbor directions (up, left,
// right, down in row-major order, so neighbor ids come out sorted).
var rookOffsets = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// W is a sparse spatial weights matrix: per-cell neighbor ids with a
// parallel weight per neighbor. Cell ids are row-major over the lattice.
type W struct {
	n         int
	neighbors [][]int
	weights   [][]float64
}

// Lattice builds a rook-contiguity weights structure over a rows×cols grid:
// two cells are neighbors only if they share an edge. All weights start at
// 1; call RowStandardize for row-normalized weights.
func Lattice(rows, cols int) (*W, error) {
	if rows < 1 || cols < 1 {
		return nil, eris.Errorf("weights: lattice dimensions must be positive (got %dx%d)", rows, cols)
	}

	n := rows * cols
	w := &W{
		n:         n,
		neighbors: make([][]int, n),
		weights:   make([][]float64, n),
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			id := y*cols + x
			for _, d := range rookOffsets {
				ny, nx := y+d[0], x+d[1]
				if ny < 0 || ny >= rows || nx < 0 || nx >= cols {
					continue
				}
				w.neighbors[id] = append(w.neighbors[id], ny*cols+nx)
				w.weights[id] = append(w.weights[id], 1)
			}
		}
	}
	return w, nil
}

// RowStandardize rescales each row's weights to sum to 1, giving every
// cell's neighborhood equal total influence. Rows with no neighbors are
// left untouched (a full lattice has none).
func (w *W) RowStandardize() {
	for i, row := range w.weights {
		var sum float64
		for _, v := range row {
			sum += v
		}
		if sum == 0 {
			continue
		}
		for j := range row {
			w.weights[i][j] = row[j] / sum
		}
	}
}

// N returns the number of cells the matrix covers.
func (w *W) N() int { return w.n }

// S0 returns the sum of all weights. After row-standardization of a full
// lattice this equals N.
func (w *W) S0() float64 {
	var sum float64
	for _, row := range w.weights {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

// Degree returns the neighbor count of cell i.
func (w *W) Degree(i int) int { return len(w.neighbors[i]) }

// Neighbors returns the neighbor ids of cell i. The slice is shared; do
// not modify.
func (w *W) Neighbors(i int) []int { return w.neighbors[i] }

// Weights returns the weights of cell i's neighbors, parallel to
// Neighbors(i). The slice is shared; do not modify.
func (w *W) Weights(i int) []float64 { return w.weights[i] }
