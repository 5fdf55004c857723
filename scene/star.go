package scene

import (
	"math"

	"github.com/lixenwraith/solar-sim/constants"
	"github.com/lixenwraith/solar-sim/vmath"
)

// Star is a fixed background point with its own twinkle phase
type Star struct {
	X, Y           float64
	BaseBrightness float64 // [0.5, 1.0)
	TwinklePhase   float64 // [0, 2π)
}

// InitStars scatters count stars uniformly over the viewport centered on the origin
// Four draws per star: x, y, base brightness, phase
func InitStars(count int, width, height float64, rng Source) []Star {
	stars := make([]Star, 0, count)
	for i := 0; i < count; i++ {
		var s Star
		s.X = -width/2 + rng.Float64()*width
		s.Y = -height/2 + rng.Float64()*height
		s.BaseBrightness = constants.StarBaseMin + rng.Float64()*constants.StarBaseRange
		s.TwinklePhase = rng.Float64() * vmath.TwoPi
		stars = append(stars, s)
	}
	return stars
}

// Brightness returns the twinkled brightness at elapsed seconds t, within [0.3, 1.0]
func (s Star) Brightness(t float64) float64 {
	b := s.BaseBrightness + constants.TwinkleAmplitude*math.Sin(constants.TwinkleRate*t+s.TwinklePhase)
	return vmath.Clamp(b, constants.StarBrightnessMin, constants.StarBrightnessMax)
}
