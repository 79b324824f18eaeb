package model

import (
	"fmt"
	"time"
)

const (
	// Rows of the channel matrix.
	Rows = 8
	// Cols of the channel matrix.
	Cols = 8
	// ChannelSize is the length of a flattened channel matrix.
	ChannelSize = Rows * Cols
	// ObservationSize is the length of the observation e.g. real and imaginary part.
	ObservationSize = 2
)

// Channel is a flattened channel matrix in row-major order.
type Channel []float64

// Copy creates a copy of the channel values.
func (c Channel) Copy() Channel {
	if c == nil {
		return nil
	}
	cc := make(Channel, len(c))
	copy(cc, c)
	return cc
}

// Observation holds the real and imaginary part of the received signal.
type Observation []float64

// NewObservation creates a new observation from the given components.
func NewObservation(re, im float64) Observation {
	return Observation{re, im}
}

// Real returns the real part of the observation.
func (o Observation) Real() float64 {
	return o[0]
}

// Imag returns the imaginary part of the observation.
func (o Observation) Imag() float64 {
	return o[1]
}

// Copy creates a copy of the observation.
func (o Observation) Copy() Observation {
	if o == nil {
		return nil
	}
	oo := make(Observation, len(o))
	copy(oo, o)
	return oo
}

// Sample is a ground truth channel together with the observation it produced.
type Sample struct {
	True        Channel     `json:"true"`
	Observation Observation `json:"observation"`
}

// Copy creates a deep copy of the sample.
func (s Sample) Copy() Sample {
	return Sample{
		True:        s.True.Copy(),
		Observation: s.Observation.Copy(),
	}
}

// Validate checks that the sample can be fed to an estimator.
// The channel length is not enforced here, comparison is responsible for it.
func (s Sample) Validate() error {
	if len(s.True) == 0 {
		return fmt.Errorf("empty channel")
	}
	if len(s.Observation) != ObservationSize {
		return fmt.Errorf("invalid observation size %d, expected %d", len(s.Observation), ObservationSize)
	}
	return nil
}

// Estimation is the outcome of a single estimation run.
type Estimation struct {
	ID        string    `json:"id"`
	Model     string    `json:"model"`
	True      Channel   `json:"true"`
	Predicted Channel   `json:"predicted"`
	NMSE      float64   `json:"nmse"`
	Time      time.Time `json:"time"`
}
