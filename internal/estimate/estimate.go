package estimate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/drakos74/ris-channel/internal/math"
	"github.com/drakos74/ris-channel/internal/math/ml"
	"github.com/drakos74/ris-channel/internal/metrics"
	"github.com/drakos74/ris-channel/internal/model"
	"github.com/drakos74/ris-channel/internal/registry"
	"github.com/drakos74/ris-channel/internal/sample"
)

// Context holds the state shared by estimation runs.
type Context struct {
	registry *registry.Registry
	samples  *sample.Store
	key      string
}

// NewContext creates a new estimation context.
func NewContext(reg *registry.Registry, samples *sample.Store) *Context {
	return &Context{
		registry: reg,
		samples:  samples,
		key:      sample.DefaultKey,
	}
}

// Models returns the names of the available models.
func (c *Context) Models() []string {
	return c.registry.Names()
}

// Sample returns the memoized sample.
func (c *Context) Sample() (model.Sample, error) {
	return c.samples.Get(c.key)
}

// Estimate applies the transform to the observation.
func Estimate(t ml.Transform, obs model.Observation) (model.Channel, error) {
	out, err := t.Predict(obs)
	if err != nil {
		return nil, fmt.Errorf("could not estimate channel: %w", err)
	}
	return out, nil
}

// Score returns the nmse of the predicted channel against the true one.
func Score(truth, predicted model.Channel) (float64, error) {
	if len(truth) != len(predicted) {
		return 0, &ShapeMismatchError{
			True:      len(truth),
			Predicted: len(predicted),
		}
	}
	if len(truth) == 0 {
		return 0, fmt.Errorf("cannot score empty channel")
	}
	return math.NMSE(truth, predicted), nil
}

// Run executes the estimation pipeline for the given model.
// Any failure halts the pipeline, no score is produced.
func (c *Context) Run(ctx context.Context, name string) (*model.Estimation, error) {
	metrics.Observer.Run(name)

	if err := ctx.Err(); err != nil {
		return nil, c.fail(name, metrics.ReasonCancellation, err)
	}

	transform, err := c.registry.Get(name)
	if err != nil {
		return nil, c.fail(name, metrics.ReasonKeyNotFound, err)
	}

	s, err := c.Sample()
	if err != nil {
		return nil, c.fail(name, metrics.ReasonSample, err)
	}

	predicted, err := Estimate(transform, s.Observation)
	if err != nil {
		return nil, c.fail(name, metrics.ReasonTransform, err)
	}

	nmse, err := Score(s.True, predicted)
	if err != nil {
		reason := metrics.ReasonTransform
		if errors.Is(err, ErrShapeMismatch) {
			reason = metrics.ReasonShape
		}
		return nil, c.fail(name, reason, err)
	}

	estimation := &model.Estimation{
		ID:        uuid.New().String(),
		Model:     name,
		True:      s.True,
		Predicted: predicted,
		NMSE:      nmse,
		Time:      time.Now(),
	}

	metrics.Observer.Score(name, nmse)
	log.Info().
		Str("id", estimation.ID).
		Str("model", name).
		Float64("nmse", nmse).
		Msg("estimation")

	return estimation, nil
}

func (c *Context) fail(name, reason string, err error) error {
	metrics.Observer.Failure(name, reason)
	log.Error().
		Err(err).
		Str("model", name).
		Str("reason", reason).
		Msg("estimation failed")
	return err
}
