package math

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/mat"
)

// Spectrum2D returns the magnitude of the 2-dimensional fft of the given matrix.
// The zero frequency component is shifted to the centre,
// so that the result reads as an angular-domain view of the channel.
func Spectrum2D(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	xx := make([][]float64, r)
	for i := 0; i < r; i++ {
		xx[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			xx[i][j] = m.At(i, j)
		}
	}

	cc := fft.FFT2Real(xx)

	s := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			s.Set((i+r/2)%r, (j+c/2)%c, cmplx.Abs(cc[i][j]))
		}
	}
	return s
}
