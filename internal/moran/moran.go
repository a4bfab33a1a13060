// Package moran computes the global Moran's I spatial autocorrelation
// statistic from a value vector and a spatial weights matrix.
package moran

import (
	"github.com/rotisserie/eris"
	"gonum.org/v1/gonum/stat"

	"github.com/sells-group/gridstat/internal/weights"
)

// ErrZeroVariance reports a degenerate input: Moran's I is undefined when
// every value is equal, since the statistic divides by the sum of squared
// deviations from the mean.
var ErrZeroVariance = eris.New("moran: values have zero variance, Moran's I is undefined")

// I computes global Moran's I:
//
//	I = (n / S0) * Σᵢⱼ wᵢⱼ zᵢ zⱼ / Σᵢ zᵢ²
//
// where z is the mean-centered value vector, wᵢⱼ the spatial weights, and
// S0 the sum of all weights. Values must be ordered the same way the
// weights matrix orders its cells (row-major for a lattice). The vector
// length must match the matrix size; uniform inputs return ErrZeroVariance.
func I(values []float64, w *weights.W) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, eris.New("moran: values are empty")
	}
	if n != w.N() {
		return 0, eris.Errorf("moran: %d values do not match %d weight matrix cells", n, w.N())
	}

	mean := stat.Mean(values, nil)
	z := make([]float64, n)
	var ssq float64
	for i, v := range values {
		z[i] = v - mean
		ssq += z[i] * z[i]
	}
	if ssq == 0 {
		return 0, ErrZeroVariance
	}

	var cross float64
	for i := 0; i < n; i++ {
		nbrs := w.Neighbors(i)
		wts := w.Weights(i)
		for k, j := range nbrs {
			cross += wts[k] * z[i] * z[j]
		}
	}

	return float64(n) / w.S0() * cross / ssq, nil
}
