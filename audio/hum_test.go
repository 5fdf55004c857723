package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/solar-sim/scene"
)

// ones is a constant full-scale stream
func ones() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i][0] = 1
			samples[i][1] = 1
		}
		return len(samples), true
	})
}

func TestPulseModulatorFollowsSun(t *testing.T) {
	rate := beep.SampleRate(1000)
	m := &PulseModulator{Streamer: ones(), Rate: rate}

	samples := make([][2]float64, 2000)
	n, ok := m.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Expected %d samples ok, got %d %v", len(samples), n, ok)
	}

	for i := 0; i < n; i += 97 {
		want := scene.SunBrightness(float64(i) / float64(rate))
		if math.Abs(samples[i][0]-want) > 1e-12 || math.Abs(samples[i][1]-want) > 1e-12 {
			t.Errorf("Sample %d: expected gain %v, got %v", i, want, samples[i])
		}
	}
}

func TestPulseModulatorContinuesAcrossCalls(t *testing.T) {
	rate := beep.SampleRate(1000)
	m := &PulseModulator{Streamer: ones(), Rate: rate}

	first := make([][2]float64, 100)
	m.Stream(first)
	second := make([][2]float64, 1)
	m.Stream(second)

	want := scene.SunBrightness(0.1)
	if math.Abs(second[0][0]-want) > 1e-12 {
		t.Errorf("Expected gain at t=0.1 (%v), got %v", want, second[0][0])
	}
}

func TestHumStreamerRange(t *testing.T) {
	s, err := NewHumStreamer(beep.SampleRate(44100), HumFrequency, HumVolume)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	samples := make([][2]float64, 4410)
	n, ok := s.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Expected %d samples ok, got %d %v", len(samples), n, ok)
	}

	peak := 0.0
	for i := 0; i < n; i++ {
		v := math.Abs(samples[i][0])
		if v > 1.0 {
			t.Fatalf("Sample %d out of range: %v", i, samples[i][0])
		}
		peak = math.Max(peak, v)
	}
	if peak == 0 {
		t.Error("Expected audible output")
	}
	if s.Err() != nil {
		t.Errorf("Expected no error, got %v", s.Err())
	}
}

func TestHumStreamerInvalidFrequency(t *testing.T) {
	if _, err := NewHumStreamer(beep.SampleRate(100), 80, HumVolume); err == nil {
		t.Error("Expected error for frequency above Nyquist")
	}
}

func TestHumNotStartedIsInert(t *testing.T) {
	h, err := NewHum()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	// Must not touch the speaker before Start
	h.SetPaused(true)
	h.Stop()
	if h.ctrl.Paused {
		t.Error("Expected pause ignored before Start")
	}
}
