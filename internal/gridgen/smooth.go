package gridgen

import "math"

// smoothTruncate bounds the Gaussian kernel at 4 standard deviations,
// matching the common convention for discrete Gaussian filters.
const smoothTruncate = 4.0

// GaussianSmooth convolves a rectangular field with a normalized Gaussian
// kernel of the given sigma, applied separably along rows then columns.
// Boundaries use reflection (d c b a | a b c d), so the filter preserves
// the field mean. The input is not modified. Non-positive sigma returns a
// copy of the input.
func GaussianSmooth(field [][]float64, sigma float64) [][]float64 {
	rows := len(field)
	if rows == 0 {
		return nil
	}
	cols := len(field[0])

	out := make([][]float64, rows)
	for y := range out {
		out[y] = make([]float64, cols)
		copy(out[y], field[y])
	}
	if sigma <= 0 {
		return out
	}

	kernel := gaussianKernel(sigma)

	// Horizontal pass.
	tmp := make([][]float64, rows)
	for y := 0; y < rows; y++ {
		tmp[y] = make([]float64, cols)
		for x := 0; x < cols; x++ {
			tmp[y][x] = convolveAt(out[y], x, kernel)
		}
	}

	// Vertical pass over a column buffer.
	col := make([]float64, rows)
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			col[y] = tmp[y][x]
		}
		for y := 0; y < rows; y++ {
			out[y][x] = convolveAt(col, y, kernel)
		}
	}
	return out
}

// gaussianKernel returns a normalized 1D Gaussian kernel with radius
// int(truncate*sigma + 0.5), center at index radius.
func gaussianKernel(sigma float64) []float64 {
	radius := int(smoothTruncate*sigma + 0.5)
	kernel := make([]float64, 2*radius+1)
	var sum float64
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// convolveAt applies the kernel centered at position i of line, reflecting
// indices that fall outside the line.
func convolveAt(line []float64, i int, kernel []float64) float64 {
	radius := len(kernel) / 2
	var acc float64
	for k, w := range kernel {
		acc += w * line[reflectIndex(i+k-radius, len(line))]
	}
	return acc
}

// reflectIndex maps an out-of-range index into [0, n) by reflecting about
// the array edges without repeating the edge samples' neighbors twice in a
// row (scipy's "reflect" mode: d c b a | a b c d | d c b a).
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}
	return i
}
