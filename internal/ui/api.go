package ui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/drakos74/ris-channel/internal/estimate"
	"github.com/drakos74/ris-channel/internal/model"
	"github.com/drakos74/ris-channel/internal/registry"
	"github.com/drakos74/ris-channel/internal/server"
	"github.com/drakos74/ris-channel/internal/visual"
)

func (p *Page) models(_ context.Context, _ *http.Request) ([]byte, int, error) {
	return server.Json(p.estimator.Models())
}

func (p *Page) estimate(ctx context.Context, r *http.Request) ([]byte, int, error) {
	estimation, code, err := p.runFor(ctx, r)
	if err != nil {
		return nil, code, err
	}
	return server.Json(estimation)
}

func (p *Page) heatmap(ctx context.Context, r *http.Request) ([]byte, int, error) {
	estimation, code, err := p.runFor(ctx, r)
	if err != nil {
		return nil, code, err
	}
	var buf bytes.Buffer
	v := visual.ParseView(r.URL.Query().Get("view"))
	if err := visual.Render(&buf, estimation.True, estimation.Predicted, p.options(v)...); err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("could not render heatmaps: %w", err)
	}
	return buf.Bytes(), http.StatusOK, nil
}

func (p *Page) runFor(ctx context.Context, r *http.Request) (*model.Estimation, int, error) {
	name := r.URL.Query().Get("model")
	if name == "" {
		return nil, http.StatusBadRequest, fmt.Errorf("missing 'model' parameter")
	}
	estimation, err := p.estimator.Run(ctx, name)
	if err != nil {
		return nil, status(err), err
	}
	return estimation, http.StatusOK, nil
}

func status(err error) int {
	switch {
	case errors.Is(err, registry.ErrKeyNotFound):
		return http.StatusBadRequest
	case errors.Is(err, estimate.ErrShapeMismatch):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
