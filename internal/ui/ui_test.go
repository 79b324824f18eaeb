package ui

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drakos74/ris-channel/internal/estimate"
	"github.com/drakos74/ris-channel/internal/model"
	"github.com/drakos74/ris-channel/internal/registry"
	"github.com/drakos74/ris-channel/internal/sample"
	"github.com/drakos74/ris-channel/internal/server"
	"github.com/drakos74/ris-channel/internal/visual"
)

type constant struct {
	out []float64
}

func (c constant) Predict(in []float64) ([]float64, error) {
	return c.out, nil
}

func (c constant) Size() (int, int) {
	return model.ObservationSize, len(c.out)
}

func ones(n int) []float64 {
	ff := make([]float64, n)
	for i := range ff {
		ff[i] = 1
	}
	return ff
}

func testHandler(t *testing.T) http.Handler {
	r := registry.New(
		registry.Entry{Name: registry.DNN, Transform: registry.NewDNN()},
		registry.Entry{Name: "exact", Transform: constant{out: ones(model.ChannelSize)}},
		registry.Entry{Name: "short", Transform: constant{out: ones(32)}},
	)
	source := sample.NewRandom().WithSeed(1)
	s, err := source.Load()
	require.NoError(t, err)
	for i := range s.True {
		s.True[i] = 1
	}
	ctx := estimate.NewContext(r, sample.NewStore(fixed{sample: s}))

	page := New(ctx, visual.WithCellSize(8))
	srv := server.NewServer("test", 0).Add(page.Routes()...)
	t.Cleanup(srv.Close)
	return srv.Handler()
}

type fixed struct {
	sample model.Sample
}

func (f fixed) Load() (model.Sample, error) {
	return f.sample, nil
}

func request(t *testing.T, h http.Handler, url string) (*httptest.ResponseRecorder, []byte) {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", url, nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return rec, body
}

func TestPage_Render(t *testing.T) {
	h := testHandler(t)

	rec, body := request(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	page := string(body)

	assert.Contains(t, page, "RIS-Assisted Channel Estimation Demo")
	assert.Contains(t, page, "Select Model")
	assert.Contains(t, page, "Run Estimation")
	assert.Contains(t, page, `<option value="DNN" selected>DNN</option>`)
	assert.Contains(t, page, `<option value="exact">exact</option>`)
	assert.NotContains(t, page, "NMSE")
	assert.NotContains(t, page, "data:image/png")
}

func TestPage_Run(t *testing.T) {
	h := testHandler(t)

	type test struct {
		url      string
		contains []string
		excludes []string
	}

	tests := map[string]test{
		"exact": {
			url:      "/?model=exact&run=1",
			contains: []string{"NMSE", "0.0000", "data:image/png;base64,", "Channel Matrix Heatmaps", `<option value="exact" selected>`},
		},
		"dnn-angular": {
			url:      "/?model=DNN&run=1&view=angular",
			contains: []string{"NMSE", "data:image/png;base64,", `<option value="angular" selected>`},
		},
		"shape-mismatch": {
			url:      "/?model=short&run=1",
			contains: []string{"shape mismatch: true=64, predicted=32"},
			excludes: []string{"data:image/png", "Channel Matrix Heatmaps"},
		},
		"unknown-model": {
			url:      "/?model=unknown&run=1",
			contains: []string{"key not found"},
			excludes: []string{"data:image/png"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec, body := request(t, h, tt.url)
			require.Equal(t, http.StatusOK, rec.Code)
			page := string(body)
			for _, s := range tt.contains {
				assert.Contains(t, page, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, page, s)
			}
		})
	}
}

func TestApi_Models(t *testing.T) {
	h := testHandler(t)

	rec, body := request(t, h, "/api/models")
	require.Equal(t, http.StatusOK, rec.Code)

	var names []string
	require.NoError(t, json.Unmarshal(body, &names))
	assert.Equal(t, []string{registry.DNN, "exact", "short"}, names)
}

func TestApi_Estimate(t *testing.T) {
	h := testHandler(t)

	type test struct {
		url  string
		code int
		body string
	}

	tests := map[string]test{
		"exact": {
			url:  "/api/estimate?model=exact",
			code: http.StatusOK,
		},
		"missing": {
			url:  "/api/estimate",
			code: http.StatusBadRequest,
			body: "missing 'model' parameter",
		},
		"unknown": {
			url:  "/api/estimate?model=unknown",
			code: http.StatusBadRequest,
			body: "key not found",
		},
		"shape-mismatch": {
			url:  "/api/estimate?model=short",
			code: http.StatusUnprocessableEntity,
			body: "true=64, predicted=32",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec, body := request(t, h, tt.url)
			require.Equal(t, tt.code, rec.Code)
			if tt.code != http.StatusOK {
				assert.Contains(t, string(body), tt.body)
				assert.NotContains(t, string(body), "nmse")
				return
			}
			var estimation model.Estimation
			require.NoError(t, json.Unmarshal(body, &estimation))
			assert.Equal(t, "exact", estimation.Model)
			assert.Equal(t, 0.0, estimation.NMSE)
			assert.Len(t, estimation.True, model.ChannelSize)
			assert.Len(t, estimation.Predicted, model.ChannelSize)
		})
	}
}

func TestApi_Heatmap(t *testing.T) {
	h := testHandler(t)

	rec, body := request(t, h, "/api/heatmap?model=DNN")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, server.ContentPng, rec.Header().Get("Content-Type"))

	img, err := png.Decode(bytes.NewReader(body))
	require.NoError(t, err)
	width, height := visual.Size(visual.WithCellSize(8))
	assert.Equal(t, width, img.Bounds().Dx())
	assert.Equal(t, height, img.Bounds().Dy())

	rec, body = request(t, h, "/api/heatmap?model=short")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.True(t, strings.HasPrefix(string(body), "shape mismatch"))
}
