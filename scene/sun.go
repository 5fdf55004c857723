package scene

import (
	"math"

	"github.com/lixenwraith/solar-sim/constants"
)

// Sun is the pulsing disc at the origin
type Sun struct {
	Radius float64
}

// SunBrightness returns the pulse level at elapsed seconds t, within [0.6, 1.0]
func SunBrightness(t float64) float64 {
	return constants.SunBrightnessBase + constants.SunBrightnessAmplitude*math.Sin(constants.PulseRate*t)
}

// Color returns the sun color at t: yellow scaled by the pulse
func (Sun) Color(t float64) Color {
	b := SunBrightness(t)
	return Color{R: b, G: b, B: 0}
}
