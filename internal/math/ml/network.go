package ml

import (
	"errors"
	"fmt"
	"math"
	"sync"

	xml "github.com/drakos74/go-ex-machina/xmachina/ml"
	"github.com/drakos74/go-ex-machina/xmachina/net"
	"github.com/drakos74/go-ex-machina/xmachina/net/ff"
	"github.com/drakos74/go-ex-machina/xmath"
)

// ErrInvalidInput is returned when the input does not fit the transform.
var ErrInvalidInput = errors.New("invalid input")

// Transform maps an observation vector to a channel estimate.
type Transform interface {
	// Predict runs the transform in inference mode.
	Predict(in []float64) ([]float64, error)
	// Size returns the input and output size of the transform.
	Size() (in, out int)
}

// Layer defines a fully connected layer of the network.
type Layer struct {
	Size       int
	Activation xml.Activation
}

// Dense creates a fully connected layer with the given activation.
func Dense(size int, activation xml.Activation) Layer {
	return Layer{
		Size:       size,
		Activation: activation,
	}
}

// Linear creates a fully connected layer without activation.
func Linear(size int) Layer {
	return Dense(size, xml.Void{})
}

// Network is a feed forward network used for inference only.
type Network struct {
	mutex   *sync.Mutex
	in, out int
	net     *ff.Network
}

// uniform generates values within +-1/sqrt(fanIn), whatever the size of the generated vector.
func uniform(fanIn int) xmath.VectorGenerator {
	scale := math.Sqrt(float64(fanIn))
	return xmath.Rand(-1, 1, func(float64) float64 {
		return scale
	})
}

// NewNetwork creates a new network for the given input size.
// Weights and biases are initialised uniformly within +-1/sqrt(n) of the layer input size.
func NewNetwork(in int, layers ...Layer) *Network {
	out := in
	if len(layers) > 0 {
		out = layers[len(layers)-1].Size
	}

	// learning rates are zeroed, the network is never trained
	rate := xml.Learn(0, 0)

	network := ff.New(in, out)
	fanIn := in
	for _, layer := range layers {
		// the library generates biases with the layer size, so both use an explicit fan in
		initW := uniform(fanIn)
		initB := uniform(fanIn)
		fanIn = layer.Size
		network.Add(layer.Size, net.NewBuilder().
			WithModule(xml.Base().
				WithRate(rate).
				WithActivation(layer.Activation)).
			WithWeights(initW, initB).
			Factory(net.NewActivationCell))
	}

	return &Network{
		mutex: new(sync.Mutex),
		in:    in,
		out:   out,
		net:   network,
	}
}

// Size returns the input and output size of the network.
func (n *Network) Size() (int, int) {
	return n.in, n.out
}

// Predict returns the output of a forward pass for the given input.
func (n *Network) Predict(in []float64) (out []float64, err error) {
	if len(in) != n.in {
		return nil, fmt.Errorf("input of size %d for network of size %d: %w", len(in), n.in, ErrInvalidInput)
	}

	// cells keep the last input in memory
	n.mutex.Lock()
	defer n.mutex.Unlock()

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("could not run forward pass: %v", r)
		}
	}()

	inp := xmath.Vec(len(in)).With(in...)
	outp := n.net.Predict(inp)

	out = make([]float64, len(outp))
	copy(out, outp)
	return out, nil
}
