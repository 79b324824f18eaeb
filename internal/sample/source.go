package sample

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/drakos74/ris-channel/internal/model"
	"github.com/drakos74/ris-channel/internal/storage"
)

// Source produces a ground truth channel together with its observation.
type Source interface {
	Load() (model.Sample, error)
}

// Random generates samples from the standard normal distribution.
type Random struct {
	seed  uint64
	fixed bool
}

// NewRandom creates a random source seeded on every call.
func NewRandom() *Random {
	return &Random{}
}

// WithSeed fixes the seed of the source.
func (r *Random) WithSeed(seed uint64) *Random {
	r.seed = seed
	r.fixed = true
	return r
}

// Load generates a new sample.
func (r *Random) Load() (model.Sample, error) {
	seed := r.seed
	if !r.fixed {
		seed = uint64(time.Now().UnixNano())
	}
	normal := distuv.Normal{
		Mu:    0,
		Sigma: 1,
		Src:   rand.NewSource(seed),
	}

	h := make(model.Channel, model.ChannelSize)
	for i := range h {
		h[i] = normal.Rand()
	}

	return model.Sample{
		True:        h,
		Observation: model.NewObservation(normal.Rand(), normal.Rand()),
	}, nil
}

// File loads the sample from a json file storage.
type File struct {
	store storage.Persistence
	key   storage.Key
}

// NewFile creates a source reading the sample stored under the given label.
func NewFile(store storage.Persistence, label string) *File {
	return &File{
		store: store,
		key:   storage.Key{Label: label},
	}
}

// Load reads and validates the stored sample.
func (f *File) Load() (model.Sample, error) {
	var s model.Sample
	if err := f.store.Load(f.key, &s); err != nil {
		return model.Sample{}, fmt.Errorf("could not load sample '%s': %w", f.key.Label, err)
	}
	if err := s.Validate(); err != nil {
		return model.Sample{}, fmt.Errorf("invalid sample '%s': %w", f.key.Label, err)
	}
	return s, nil
}
