package visual

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/drakos74/ris-channel/internal/model"
)

func channel(f func(i int) float64) model.Channel {
	c := make(model.Channel, model.ChannelSize)
	for i := range c {
		c[i] = f(i)
	}
	return c
}

func TestViridis(t *testing.T) {
	assert.Equal(t, viridis[0], Viridis(0))
	assert.Equal(t, viridis[0], Viridis(-1))
	assert.Equal(t, viridis[len(viridis)-1], Viridis(1))
	assert.Equal(t, viridis[len(viridis)-1], Viridis(2))

	mid := Viridis(0.5)
	assert.Equal(t, uint8(0xff), mid.A)
	// green dominates the middle of the map
	assert.Greater(t, mid.G, mid.R)
	assert.Equal(t, drawing.Color{R: 0x44, G: 0x01, B: 0x54, A: 0xff}, Viridis(0))
}

func TestPanels(t *testing.T) {
	truth := channel(func(i int) float64 { return -float64(i) })
	predicted := channel(func(i int) float64 { return float64(i) / 10 })

	panels, err := Panels(truth, predicted, Spatial)
	require.NoError(t, err)
	require.Len(t, panels, 2)

	assert.Equal(t, "True |H|", panels[0].Title)
	assert.Equal(t, "Predicted |H|", panels[1].Title)

	// row-major magnitudes
	assert.Equal(t, 9.0, panels[0].Matrix.At(1, 1))
	assert.Equal(t, 0.9, panels[1].Matrix.At(1, 1))

	// independent scales
	assert.Equal(t, 0.0, panels[0].Min)
	assert.Equal(t, 63.0, panels[0].Max)
	assert.Equal(t, 0.0, panels[1].Min)
	assert.InDelta(t, 6.3, panels[1].Max, 1e-12)
}

func TestPanels_Angular(t *testing.T) {
	ones := channel(func(i int) float64 { return 1 })

	panels, err := Panels(ones, ones, Angular)
	require.NoError(t, err)
	assert.Equal(t, "True |F(H)|", panels[0].Title)
	assert.InDelta(t, 64.0, panels[0].Max, 1e-9)
}

func TestPanels_InvalidLength(t *testing.T) {
	_, err := Panels(make(model.Channel, 64), make(model.Channel, 32), Spatial)
	assert.Error(t, err)
}

func TestParseView(t *testing.T) {
	assert.Equal(t, Angular, ParseView("angular"))
	assert.Equal(t, Spatial, ParseView("spatial"))
	assert.Equal(t, Spatial, ParseView(""))
	assert.Equal(t, Spatial, ParseView("polar"))
}

func TestRender(t *testing.T) {

	truth := channel(func(i int) float64 { return float64(i%7) - 3 })
	predicted := channel(func(i int) float64 { return float64(i%5) / 2 })

	type test struct {
		opts []Option
	}

	tests := map[string]test{
		"default": {},
		"small-cells": {
			opts: []Option{WithCellSize(12)},
		},
		"angular": {
			opts: []Option{WithView(Angular)},
		},
		"invalid-cell-size": {
			opts: []Option{WithCellSize(-1)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Render(&buf, truth, predicted, tt.opts...)
			require.NoError(t, err)

			img, err := png.Decode(&buf)
			require.NoError(t, err)

			width, height := Size(tt.opts...)
			assert.Equal(t, width, img.Bounds().Dx())
			assert.Equal(t, height, img.Bounds().Dy())
		})
	}
}

func TestRender_ShapeMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, make(model.Channel, 64), make(model.Channel, 32))
	assert.Error(t, err)
	assert.Equal(t, 0, buf.Len())
}
