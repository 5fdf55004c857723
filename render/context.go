package render

import "github.com/lixenwraith/solar-sim/scene"

// RenderContext provides frame state for layers, passed by value
type RenderContext struct {
	Scene *scene.Scene

	// Elapsed seconds since start, frozen while paused
	Elapsed float64
	Frame   uint64
	Paused  bool
}
