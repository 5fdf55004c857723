package engine

import (
	"github.com/lixenwraith/solar-sim/render"
	"github.com/lixenwraith/solar-sim/scene"
)

// Simulation runs one update-then-draw cycle per Frame call
// Single owner: the frame loop goroutine
type Simulation struct {
	Scene        *scene.Scene
	Clock        *PausableClock
	Orchestrator *render.RenderOrchestrator
}

// NewSimulation wires a scene, clock and the standard pipeline over r
func NewSimulation(s *scene.Scene, clock *PausableClock, r render.Renderer) *Simulation {
	return &Simulation{
		Scene:        s,
		Clock:        clock,
		Orchestrator: render.NewSceneOrchestrator(r),
	}
}

// Frame steps the scene unless paused, then renders it
func (sim *Simulation) Frame() {
	paused := sim.Clock.IsPaused()
	if !paused {
		sim.Scene.Step()
	}

	sim.Orchestrator.RenderFrame(render.RenderContext{
		Scene:   sim.Scene,
		Elapsed: sim.Clock.Elapsed(),
		Frame:   sim.Scene.Frame(),
		Paused:  paused,
	})
}

// TogglePause flips the clock and returns true when now paused
func (sim *Simulation) TogglePause() bool {
	return sim.Clock.Toggle()
}

// ToggleLabels flips planet name visibility, returns the new state
func (sim *Simulation) ToggleLabels() bool {
	if l, ok := sim.Orchestrator.Layer(render.PriorityLabels).(*render.LabelLayer); ok {
		return l.Toggle()
	}
	return false
}

// ToggleOrbits flips orbit ring visibility, returns the new state
func (sim *Simulation) ToggleOrbits() bool {
	if l, ok := sim.Orchestrator.Layer(render.PriorityOrbits).(*render.OrbitLayer); ok {
		return l.Toggle()
	}
	return false
}
