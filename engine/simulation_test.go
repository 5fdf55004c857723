package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/solar-sim/render"
	"github.com/lixenwraith/solar-sim/scene"
	"github.com/lixenwraith/solar-sim/vmath"
)

func newTestSimulation() (*Simulation, *MockTimeProvider, *render.Recorder) {
	clock, mock := newTestClock()
	rec := &render.Recorder{}
	s := scene.New(scene.DefaultConfig(), vmath.NewSeededRand(42))
	return NewSimulation(s, clock, rec), mock, rec
}

func TestSimulationFrameStepsThenDraws(t *testing.T) {
	sim, _, rec := newTestSimulation()

	sim.Frame()

	if sim.Scene.Frame() != 1 {
		t.Errorf("Expected 1 step, got %d", sim.Scene.Frame())
	}
	if rec.Frames != 1 {
		t.Errorf("Expected 1 presented frame, got %d", rec.Frames)
	}

	// Mercury disc must reflect the post-step angle
	mercury := sim.Scene.Planets[0]
	x, y := mercury.Position()
	found := false
	for _, op := range rec.Ops {
		if op.Kind == render.OpDisc && op.X == x && op.Y == y {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected Mercury drawn at stepped position (%v, %v)", x, y)
	}
	if math.Abs(mercury.Angle-0.02) > 1e-12 {
		t.Errorf("Expected Mercury angle 0.02, got %v", mercury.Angle)
	}
}

func TestSimulationPauseFreezesScene(t *testing.T) {
	sim, mock, rec := newTestSimulation()

	sim.Frame()
	mock.Advance(time.Second)
	if !sim.TogglePause() {
		t.Fatal("Expected paused after toggle")
	}

	angle := sim.Scene.Planets[0].Angle
	for i := 0; i < 10; i++ {
		mock.Advance(100 * time.Millisecond)
		sim.Frame()
	}

	if sim.Scene.Planets[0].Angle != angle {
		t.Errorf("Expected angle frozen at %v, got %v", angle, sim.Scene.Planets[0].Angle)
	}
	if sim.Scene.Frame() != 1 {
		t.Errorf("Expected no steps while paused, got %d", sim.Scene.Frame())
	}
	if rec.Frames != 11 {
		t.Errorf("Expected rendering to continue while paused, got %d frames", rec.Frames)
	}
	if got := sim.Clock.Elapsed(); got != 1 {
		t.Errorf("Expected elapsed frozen at 1s, got %v", got)
	}

	sim.TogglePause()
	sim.Frame()
	if sim.Scene.Frame() != 2 {
		t.Errorf("Expected stepping to resume, got %d", sim.Scene.Frame())
	}
}

func TestSimulationToggles(t *testing.T) {
	sim, _, rec := newTestSimulation()

	if sim.ToggleLabels() {
		t.Error("Expected labels hidden")
	}
	if sim.ToggleOrbits() {
		t.Error("Expected orbits hidden")
	}
	sim.Frame()

	if got := rec.Count(render.OpOrbitRing); got != 0 {
		t.Errorf("Expected no rings, got %d", got)
	}
	if got := rec.Count(render.OpLabel); got != 1 {
		t.Errorf("Expected title only, got %d labels", got)
	}
}
