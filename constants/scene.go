package constants

// Scene Population
const (
	// NumStars is the starfield size
	NumStars = 200

	// AsteroidsPerOrbit is the asteroid count on each planet's orbit ring
	AsteroidsPerOrbit = 10
)

// Asteroid speed is parent speed * (AsteroidSpeedMin + rand[0,1))
const AsteroidSpeedMin = 1.5

// Twinkle and Pulse
const (
	// TwinkleRate is the angular rate of star brightness oscillation (rad/s)
	TwinkleRate = 5.0

	// TwinkleAmplitude is the sine amplitude added to a star's base brightness
	TwinkleAmplitude = 0.5

	// StarBrightnessMin and StarBrightnessMax bound the displayed star brightness
	StarBrightnessMin = 0.3
	StarBrightnessMax = 1.0

	// StarBaseMin and StarBaseRange define base brightness in [0.5, 1.0)
	StarBaseMin   = 0.5
	StarBaseRange = 0.5

	// PulseRate is the angular rate of the sun pulse (rad/s)
	PulseRate = 5.0

	// SunBrightnessBase and SunBrightnessAmplitude give the sun range [0.6, 1.0]
	SunBrightnessBase      = 0.8
	SunBrightnessAmplitude = 0.2

	// SunRadius is the sun disc radius in world units
	SunRadius = 35.0
)
