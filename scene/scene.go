// Package scene holds the solar system entity state and its per-frame update.
//
// A Scene is created once from a seeded random Source and then advanced one frame
// at a time with Step. Time-dependent colors (star twinkle, sun pulse) are not
// stored; they are derived from elapsed seconds when drawing.
package scene

import "github.com/lixenwraith/solar-sim/constants"

// Source yields uniform values in [0, 1)
type Source interface {
	Float64() float64
}

// Config sizes a scene
type Config struct {
	NumStars          int
	AsteroidsPerOrbit int
	Width, Height     float64
}

// DefaultConfig returns the compiled-in scene size
func DefaultConfig() Config {
	return Config{
		NumStars:          constants.NumStars,
		AsteroidsPerOrbit: constants.AsteroidsPerOrbit,
		Width:             constants.ViewWidth,
		Height:            constants.ViewHeight,
	}
}

// Scene owns every entity; single owner, no concurrent access
type Scene struct {
	Width, Height float64

	Sun       Sun
	Planets   []Planet
	Stars     []Star
	Asteroids [][]Asteroid // indexed like Planets

	frame uint64
}

// New builds a scene; stars consume rng draws before asteroids
func New(cfg Config, rng Source) *Scene {
	planets := DefaultPlanets()
	return &Scene{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Sun:       Sun{Radius: constants.SunRadius},
		Planets:   planets,
		Stars:     InitStars(cfg.NumStars, cfg.Width, cfg.Height, rng),
		Asteroids: InitAsteroids(planets, cfg.AsteroidsPerOrbit, rng),
	}
}

// Frame returns the number of Step calls so far
func (s *Scene) Frame() uint64 {
	return s.frame
}
