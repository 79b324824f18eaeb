package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drakos74/ris-channel/internal/math/ml"
	"github.com/drakos74/ris-channel/internal/model"
)

func TestDefault(t *testing.T) {
	r := Default()
	assert.Equal(t, []string{DNN, CNN, Autoencoder}, r.Names())

	for _, name := range r.Names() {
		t.Run(name, func(t *testing.T) {
			transform, err := r.Get(name)
			require.NoError(t, err)

			in, out := transform.Size()
			assert.Equal(t, model.ObservationSize, in)
			assert.Equal(t, model.ChannelSize, out)

			prediction, err := transform.Predict([]float64{0.1, -0.2})
			require.NoError(t, err)
			assert.Len(t, prediction, model.ChannelSize)
		})
	}
}

func TestRegistry_Get(t *testing.T) {
	r := Default()

	_, err := r.Get("Transformer")
	assert.True(t, errors.Is(err, ErrKeyNotFound))
	assert.Contains(t, err.Error(), "Transformer")
}

func TestRegistry_DistinctInstances(t *testing.T) {
	r := Default()
	dnn, err := r.Get(DNN)
	require.NoError(t, err)
	cnn, err := r.Get(CNN)
	require.NoError(t, err)

	assert.NotSame(t, dnn, cnn)
}

func TestNew_Order(t *testing.T) {
	a := ml.NewNetwork(2, ml.Linear(1))
	b := ml.NewNetwork(2, ml.Linear(2))
	r := New(
		Entry{Name: "b", Transform: b},
		Entry{Name: "a", Transform: a},
		Entry{Name: "b", Transform: a},
	)

	assert.Equal(t, []string{"b", "a"}, r.Names())

	transform, err := r.Get("b")
	require.NoError(t, err)
	assert.Same(t, a, transform)

	// names are copied
	names := r.Names()
	names[0] = "c"
	assert.Equal(t, []string{"b", "a"}, r.Names())
}
