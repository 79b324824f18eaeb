package visual

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// viridis holds evenly spaced stops of the viridis colormap.
var viridis = []drawing.Color{
	{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
	{R: 0x48, G: 0x28, B: 0x78, A: 0xff},
	{R: 0x3e, G: 0x4a, B: 0x89, A: 0xff},
	{R: 0x31, G: 0x68, B: 0x8e, A: 0xff},
	{R: 0x26, G: 0x82, B: 0x8e, A: 0xff},
	{R: 0x1f, G: 0x9e, B: 0x89, A: 0xff},
	{R: 0x35, G: 0xb7, B: 0x79, A: 0xff},
	{R: 0x6d, G: 0xcd, B: 0x59, A: 0xff},
	{R: 0xb4, G: 0xde, B: 0x2c, A: 0xff},
	{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff},
}

// Viridis maps a value in [0,1] to the viridis colormap.
func Viridis(v float64) drawing.Color {
	if math.IsNaN(v) || v <= 0 {
		return viridis[0]
	}
	if v >= 1 {
		return viridis[len(viridis)-1]
	}
	x := v * float64(len(viridis)-1)
	i := int(x)
	f := x - float64(i)
	a, b := viridis[i], viridis[i+1]
	return drawing.Color{
		R: lerp(a.R, b.R, f),
		G: lerp(a.G, b.G, f),
		B: lerp(a.B, b.B, f),
		A: 0xff,
	}
}

func lerp(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}
