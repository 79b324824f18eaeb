package math

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Epsilon guards the NMSE denominator against an all-zero reference.
const Epsilon = 1e-10

// NMSE returns the normalised mean squared error of the predicted values against the actual ones.
// mean((actual - predicted)^2) / (mean(actual^2) + Epsilon)
// NOTE : both slices must have the same non-zero size, it panics otherwise.
func NMSE(actual, predicted []float64) float64 {
	diff := make([]float64, len(actual))
	floats.SubTo(diff, actual, predicted)
	floats.Mul(diff, diff)

	power := make([]float64, len(actual))
	floats.MulTo(power, actual, actual)

	return stat.Mean(diff, nil) / (stat.Mean(power, nil) + Epsilon)
}
