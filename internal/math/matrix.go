package math

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Reshape arranges the values into a matrix of the given dimensions in row-major order.
func Reshape(v []float64, rows, cols int) (*mat.Dense, error) {
	if rows <= 0 || cols <= 0 || len(v) != rows*cols {
		return nil, fmt.Errorf("cannot reshape %d values into %dx%d", len(v), rows, cols)
	}
	data := make([]float64, len(v))
	copy(data, v)
	return mat.NewDense(rows, cols, data), nil
}

// Magnitude returns a matrix with the element-wise absolute values of the given one.
func Magnitude(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	abs := mat.NewDense(r, c, nil)
	abs.Apply(func(i, j int, v float64) float64 {
		return math.Abs(v)
	}, m)
	return abs
}

// Bounds returns the minimum and maximum element of the matrix.
func Bounds(m mat.Matrix) (min, max float64) {
	return mat.Min(m), mat.Max(m)
}

// Normalise scales the value into [0,1] given the bounds.
// A degenerate range maps everything to 0.
func Normalise(v, min, max float64) float64 {
	if max <= min {
		return 0
	}
	n := (v - min) / (max - min)
	return math.Max(0, math.Min(1, n))
}
