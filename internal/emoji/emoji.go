package emoji

import (
	"math"
)

// https://unicode.org/emoji/charts/full-emoji-list.html
const (
	Antenna = "📡"
	Chart   = "📈"
	Search  = "🔍"
	Error   = "🚫"

	Star         = "🌟"
	SunFace      = "🌞"
	FullMoon     = "🌕"
	FirstEclipse = "🌔"
	HalfEclipse  = "🌓"
	ThirdEclipse = "🌒"
	FullEclipse  = "🌑"
)

// MapNMSE maps the nmse to an emoji based on its value in decibel.
// Lower errors map to brighter symbols.
func MapNMSE(nmse float64) string {
	if math.IsNaN(nmse) || nmse < 0 {
		return Error
	}
	if nmse == 0 {
		return Star
	}
	db := 10 * math.Log10(nmse)
	if db <= -20 {
		return Star
	} else if db <= -10 {
		return SunFace
	} else if db <= -5 {
		return FullMoon
	} else if db <= -3 {
		return FirstEclipse
	} else if db <= 0 {
		return HalfEclipse
	} else if db <= 3 {
		return ThirdEclipse
	}
	return FullEclipse
}
