package ui

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/drakos74/ris-channel/internal/emoji"
	"github.com/drakos74/ris-channel/internal/estimate"
	"github.com/drakos74/ris-channel/internal/math"
	"github.com/drakos74/ris-channel/internal/server"
	"github.com/drakos74/ris-channel/internal/visual"
)

const title = "RIS-Assisted Channel Estimation Demo"

//go:embed index.html
var index string

type option struct {
	Name     string
	Selected bool
}

type view struct {
	Title   string
	Antenna string
	Chart   string
	Search  string
	Models  []option
	Angular bool

	Ran        bool
	Error      string
	ErrorEmoji string
	NMSE       string
	Quality    string
	Image      template.URL
}

// Page renders the demo page and runs the estimation on request.
type Page struct {
	estimator *estimate.Context
	tmpl      *template.Template
	opts      []visual.Option
}

// New creates a new page for the given estimation context.
func New(estimator *estimate.Context, opts ...visual.Option) *Page {
	return &Page{
		estimator: estimator,
		tmpl:      template.Must(template.New("index").Parse(index)),
		opts:      opts,
	}
}

// Routes returns the routes served by the page.
func (p *Page) Routes() []server.Route {
	return []server.Route{
		server.NewRoute(server.GET, server.Root).
			WithContentType(server.ContentHtml).
			Handler(p.render).
			Create(),
		server.NewRoute(server.GET, server.Api).
			WithPath("models").
			Handler(p.models).
			Create(),
		server.NewRoute(server.GET, server.Api).
			WithPath("estimate").
			Handler(p.estimate).
			Create(),
		server.NewRoute(server.GET, server.Api).
			WithPath("heatmap").
			WithContentType(server.ContentPng).
			Handler(p.heatmap).
			Create(),
	}
}

func (p *Page) render(ctx context.Context, r *http.Request) ([]byte, int, error) {
	q := r.URL.Query()
	names := p.estimator.Models()

	selected := q.Get("model")
	if selected == "" && len(names) > 0 {
		selected = names[0]
	}
	v := visual.ParseView(q.Get("view"))

	models := make([]option, len(names))
	for i, name := range names {
		models[i] = option{
			Name:     name,
			Selected: name == selected,
		}
	}

	data := view{
		Title:      title,
		Antenna:    emoji.Antenna,
		Chart:      emoji.Chart,
		Search:     emoji.Search,
		ErrorEmoji: emoji.Error,
		Models:     models,
		Angular:    v == visual.Angular,
	}

	// the sample is loaded on every render, it is memoized after the first one
	if _, err := p.estimator.Sample(); err != nil {
		data.Error = err.Error()
	} else if q.Get("run") != "" {
		data.Ran = true
		if err := p.run(ctx, selected, v, &data); err != nil {
			data.Error = err.Error()
		}
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("could not render page: %w", err)
	}
	return buf.Bytes(), http.StatusOK, nil
}

func (p *Page) run(ctx context.Context, name string, v visual.View, data *view) error {
	estimation, err := p.estimator.Run(ctx, name)
	if err != nil {
		return err
	}

	var img bytes.Buffer
	if err := visual.Render(&img, estimation.True, estimation.Predicted, p.options(v)...); err != nil {
		return fmt.Errorf("could not render heatmaps: %w", err)
	}

	data.NMSE = math.Format(estimation.NMSE, 4)
	data.Quality = emoji.MapNMSE(estimation.NMSE)
	data.Image = template.URL(fmt.Sprintf("data:%s;base64,%s", server.ContentPng, base64.StdEncoding.EncodeToString(img.Bytes())))

	log.Debug().
		Str("id", estimation.ID).
		Str("model", name).
		Str("view", string(v)).
		Int("image", img.Len()).
		Msg("rendered estimation")
	return nil
}

func (p *Page) options(v visual.View) []visual.Option {
	opts := make([]visual.Option, 0, len(p.opts)+1)
	opts = append(opts, p.opts...)
	return append(opts, visual.WithView(v))
}
