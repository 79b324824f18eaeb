package visual

import (
	"fmt"
	"io"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/drakos74/ris-channel/internal/math"
	"github.com/drakos74/ris-channel/internal/model"
)

const (
	defaultCellSize = 36

	padding     = 24
	titleHeight = 32
	tickHeight  = 18
	barGap      = 12
	barWidth    = 16
	labelWidth  = 52

	titleFontSize = 13
	labelFontSize = 9
)

// Option adjusts the rendering of the heatmaps.
type Option func(o *options)

type options struct {
	cellSize int
	view     View
}

// WithCellSize sets the size in pixels of a matrix cell.
func WithCellSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.cellSize = size
		}
	}
}

// WithView sets the domain of the heatmaps.
func WithView(view View) Option {
	return func(o *options) {
		o.view = view
	}
}

func newOptions(opts ...Option) options {
	o := options{
		cellSize: defaultCellSize,
		view:     Spatial,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Size returns the image dimensions for the given options.
func Size(opts ...Option) (width, height int) {
	o := newOptions(opts...)
	return o.size()
}

func (o options) grid() int {
	return o.cellSize * model.Cols
}

func (o options) panelWidth() int {
	return o.grid() + barGap + barWidth + labelWidth
}

func (o options) size() (int, int) {
	width := padding + 2*(o.panelWidth()+padding)
	height := padding + titleHeight + o.cellSize*model.Rows + tickHeight + padding
	return width, height
}

// Render draws the true and predicted channel heatmaps side by side as a png.
func Render(w io.Writer, truth, predicted model.Channel, opts ...Option) error {
	o := newOptions(opts...)

	panels, err := Panels(truth, predicted, o.view)
	if err != nil {
		return err
	}

	width, height := o.size()
	r, err := chart.PNG(width, height)
	if err != nil {
		return fmt.Errorf("could not create renderer: %w", err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("could not load font: %w", err)
	}
	r.SetFont(font)

	fill(r, chart.Box{Top: 0, Left: 0, Right: width, Bottom: height}, drawing.ColorWhite)

	for i, p := range panels {
		left := padding + i*(o.panelWidth()+padding)
		drawPanel(r, p, left, padding, o)
	}

	if err := r.Save(w); err != nil {
		return fmt.Errorf("could not encode heatmap: %w", err)
	}
	return nil
}

func drawPanel(r chart.Renderer, p Panel, left, top int, o options) {
	grid := o.grid()
	rows, cols := p.Matrix.Dims()

	// title
	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(titleFontSize)
	tb := r.MeasureText(p.Title)
	r.Text(p.Title, left+(grid-tb.Width())/2, top+titleHeight/2+tb.Height()/2)

	top += titleHeight

	// cells
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := math.Normalise(p.Matrix.At(i, j), p.Min, p.Max)
			fill(r, chart.Box{
				Top:    top + i*o.cellSize,
				Left:   left + j*o.cellSize,
				Right:  left + (j+1)*o.cellSize,
				Bottom: top + (i+1)*o.cellSize,
			}, Viridis(v))
		}
	}

	// indices
	r.SetFontSize(labelFontSize)
	r.SetFontColor(drawing.ColorBlack)
	for j := 0; j < cols; j++ {
		label := strconv.Itoa(j)
		lb := r.MeasureText(label)
		r.Text(label, left+j*o.cellSize+(o.cellSize-lb.Width())/2, top+grid+tickHeight-4)
	}
	for i := 0; i < rows; i++ {
		label := strconv.Itoa(i)
		lb := r.MeasureText(label)
		r.Text(label, left-lb.Width()-4, top+i*o.cellSize+(o.cellSize+lb.Height())/2)
	}

	// color bar, from max on top to min at the bottom
	bar := left + grid + barGap
	for y := 0; y < grid; y++ {
		v := 1 - float64(y)/float64(grid-1)
		fill(r, chart.Box{
			Top:    top + y,
			Left:   bar,
			Right:  bar + barWidth,
			Bottom: top + y + 1,
		}, Viridis(v))
	}
	maxLabel := math.Format(p.Max, 2)
	mb := r.MeasureText(maxLabel)
	r.Text(maxLabel, bar+barWidth+4, top+mb.Height())
	r.Text(math.Format(p.Min, 2), bar+barWidth+4, top+grid)
}

func fill(r chart.Renderer, box chart.Box, c drawing.Color) {
	r.SetFillColor(c)
	r.MoveTo(box.Left, box.Top)
	r.LineTo(box.Right, box.Top)
	r.LineTo(box.Right, box.Bottom)
	r.LineTo(box.Left, box.Bottom)
	r.Close()
	r.Fill()
}
