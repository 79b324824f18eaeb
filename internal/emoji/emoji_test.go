package emoji

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapNMSE(t *testing.T) {

	type test struct {
		nmse  float64
		emoji string
	}

	tests := map[string]test{
		"exact":    {nmse: 0, emoji: Star},
		"-30db":    {nmse: 0.001, emoji: Star},
		"-15db":    {nmse: 0.0316, emoji: SunFace},
		"-7db":     {nmse: 0.2, emoji: FullMoon},
		"-4db":     {nmse: 0.4, emoji: FirstEclipse},
		"0db":      {nmse: 1, emoji: HalfEclipse},
		"+2db":     {nmse: 1.5, emoji: ThirdEclipse},
		"+10db":    {nmse: 10, emoji: FullEclipse},
		"negative": {nmse: -1, emoji: Error},
		"nan":      {nmse: math.NaN(), emoji: Error},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.emoji, MapNMSE(tt.nmse))
		})
	}
}
