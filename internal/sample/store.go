package sample

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/drakos74/ris-channel/internal/model"
)

// DefaultKey is the cache key for the demo sample.
// The generator has no parameters, so a constant key is enough.
const DefaultKey = "sample"

// Store memoizes the samples of a source by key.
// Samples live until they are invalidated or the process restarts.
type Store struct {
	mutex  *sync.RWMutex
	source Source
	cache  map[string]model.Sample
}

// NewStore creates a new memoizing store for the given source.
func NewStore(source Source) *Store {
	return &Store{
		mutex:  new(sync.RWMutex),
		source: source,
		cache:  make(map[string]model.Sample),
	}
}

// Get returns the sample for the given key,
// loading it from the source only on a cache miss.
func (s *Store) Get(key string) (model.Sample, error) {
	s.mutex.RLock()
	sample, ok := s.cache[key]
	s.mutex.RUnlock()
	if ok {
		return sample.Copy(), nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	// another caller might have loaded it in the meantime
	if sample, ok := s.cache[key]; ok {
		return sample.Copy(), nil
	}

	sample, err := s.source.Load()
	if err != nil {
		return model.Sample{}, fmt.Errorf("could not load sample for '%s': %w", key, err)
	}
	if err := sample.Validate(); err != nil {
		return model.Sample{}, fmt.Errorf("invalid sample for '%s': %w", key, err)
	}
	s.cache[key] = sample.Copy()
	log.Info().
		Str("key", key).
		Int("channel", len(sample.True)).
		Float64("real", sample.Observation.Real()).
		Float64("imag", sample.Observation.Imag()).
		Msg("loaded sample")
	return sample, nil
}

// Invalidate drops the sample for the given key.
func (s *Store) Invalidate(key string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.cache, key)
}

// Clear drops all cached samples.
func (s *Store) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.cache = make(map[string]model.Sample)
}
