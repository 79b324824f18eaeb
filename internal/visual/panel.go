package visual

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/drakos74/ris-channel/internal/math"
	"github.com/drakos74/ris-channel/internal/model"
)

// View defines the domain the channel is displayed in.
type View string

const (
	// Spatial shows the channel magnitudes as they are.
	Spatial View = "spatial"
	// Angular shows the magnitude of the 2-d fft of the channel.
	Angular View = "angular"
)

// ParseView returns the view for the given name, defaulting to Spatial.
func ParseView(s string) View {
	if View(s) == Angular {
		return Angular
	}
	return Spatial
}

// Panel is a single heatmap with its own color scale.
type Panel struct {
	Title    string
	Matrix   *mat.Dense
	Min, Max float64
}

// Panels builds the true and predicted heatmaps.
// Each panel is normalised independently.
func Panels(truth, predicted model.Channel, view View) ([]Panel, error) {
	t, err := newPanel(truth, view, "True")
	if err != nil {
		return nil, fmt.Errorf("invalid true channel: %w", err)
	}
	p, err := newPanel(predicted, view, "Predicted")
	if err != nil {
		return nil, fmt.Errorf("invalid predicted channel: %w", err)
	}
	return []Panel{t, p}, nil
}

func newPanel(c model.Channel, view View, label string) (Panel, error) {
	m, err := math.Reshape(c, model.Rows, model.Cols)
	if err != nil {
		return Panel{}, err
	}

	var h *mat.Dense
	var title string
	switch view {
	case Angular:
		h = math.Spectrum2D(m)
		title = fmt.Sprintf("%s |F(H)|", label)
	default:
		h = math.Magnitude(m)
		title = fmt.Sprintf("%s |H|", label)
	}

	min, max := math.Bounds(h)
	return Panel{
		Title:  title,
		Matrix: h,
		Min:    min,
		Max:    max,
	}, nil
}
