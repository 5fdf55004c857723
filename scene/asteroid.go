package scene

import (
	"github.com/lixenwraith/solar-sim/constants"
	"github.com/lixenwraith/solar-sim/vmath"
)

// Asteroid is a dot sharing its parent planet's orbit ring
type Asteroid struct {
	OrbitRadius float64 // copied from parent, never changes
	OrbitSpeed  float64 // radians per frame
	Angle       float64 // radians, [0, 2π)
	X, Y        float64 // derived from Angle on every advance
}

// InitAsteroids builds one group of perOrbit asteroids per planet, in planet order
// Two draws per asteroid: angle, then speed factor
func InitAsteroids(planets []Planet, perOrbit int, rng Source) [][]Asteroid {
	groups := make([][]Asteroid, len(planets))
	for i, p := range planets {
		group := make([]Asteroid, 0, perOrbit)
		for a := 0; a < perOrbit; a++ {
			angle := rng.Float64() * vmath.TwoPi
			speed := p.OrbitSpeed * (constants.AsteroidSpeedMin + rng.Float64())
			ast := Asteroid{
				OrbitRadius: p.OrbitRadius,
				OrbitSpeed:  speed,
				Angle:       angle,
			}
			ast.X, ast.Y = vmath.Polar(ast.OrbitRadius, ast.Angle)
			group = append(group, ast)
		}
		groups[i] = group
	}
	return groups
}

func (a *Asteroid) advance() {
	a.Angle = vmath.WrapAngle(a.Angle + a.OrbitSpeed)
	a.X, a.Y = vmath.Polar(a.OrbitRadius, a.Angle)
}
