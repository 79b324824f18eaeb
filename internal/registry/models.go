package registry

import (
	xml "github.com/drakos74/go-ex-machina/xmachina/ml"

	"github.com/drakos74/ris-channel/internal/math/ml"
	"github.com/drakos74/ris-channel/internal/model"
)

const (
	DNN         = "DNN"
	CNN         = "CNN"
	Autoencoder = "Autoencoder"

	hidden = 32
)

// Default creates the registry with the demo models.
func Default() *Registry {
	return New(
		Entry{Name: DNN, Transform: NewDNN()},
		Entry{Name: CNN, Transform: NewCNN()},
		Entry{Name: Autoencoder, Transform: NewAutoencoder()},
	)
}

// NewDNN creates the placeholder dense model.
func NewDNN() ml.Transform {
	return placeholder()
}

// NewCNN creates the placeholder for the convolutional model.
// TODO : replace with a convolutional architecture once trained weights are available.
func NewCNN() ml.Transform {
	return placeholder()
}

// NewAutoencoder creates the placeholder for the autoencoder model.
func NewAutoencoder() ml.Transform {
	return placeholder()
}

// placeholder is an untrained 2 -> 32 -> 64 network with a relu hidden layer.
func placeholder() *ml.Network {
	return ml.NewNetwork(model.ObservationSize,
		ml.Dense(hidden, xml.ReLU),
		ml.Linear(model.ChannelSize),
	)
}
