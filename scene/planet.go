package scene

import "github.com/lixenwraith/solar-sim/vmath"

// Color is a linear RGB triple with channels in [0, 1]
type Color struct {
	R, G, B float64
}

// Planet is a body on a circular orbit around the sun
type Planet struct {
	Name        string
	Radius      float64
	OrbitRadius float64
	OrbitSpeed  float64 // radians per frame
	Angle       float64 // radians, [0, 2π)
	Color       Color
}

// Position returns the planet center in world coordinates
func (p Planet) Position() (x, y float64) {
	return vmath.Polar(p.OrbitRadius, p.Angle)
}

// DefaultPlanets returns the fixed Mercury..Neptune table
// Order is rendering and labelling order, orbit radius increases along it
func DefaultPlanets() []Planet {
	return []Planet{
		{Name: "Mercury", Radius: 12, OrbitRadius: 48, OrbitSpeed: 0.02, Color: Color{0.6, 0.6, 0.6}},
		{Name: "Venus", Radius: 15, OrbitRadius: 72, OrbitSpeed: 0.015, Color: Color{1.0, 0.5, 0.3}},
		{Name: "Earth", Radius: 15, OrbitRadius: 96, OrbitSpeed: 0.012, Color: Color{0.0, 0.5, 1.0}},
		{Name: "Mars", Radius: 13.5, OrbitRadius: 120, OrbitSpeed: 0.009, Color: Color{1.0, 0.2, 0.2}},
		{Name: "Jupiter", Radius: 27, OrbitRadius: 168, OrbitSpeed: 0.006, Color: Color{1.0, 0.8, 0.2}},
		{Name: "Saturn", Radius: 22.5, OrbitRadius: 216, OrbitSpeed: 0.005, Color: Color{0.9, 0.9, 0.6}},
		{Name: "Uranus", Radius: 18, OrbitRadius: 264, OrbitSpeed: 0.004, Color: Color{0.6, 0.8, 1.0}},
		{Name: "Neptune", Radius: 18, OrbitRadius: 312, OrbitSpeed: 0.003, Color: Color{0.2, 0.5, 1.0}},
	}
}

func (p *Planet) advance() {
	p.Angle = vmath.WrapAngle(p.Angle + p.OrbitSpeed)
}
