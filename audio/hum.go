// Package audio plays an optional low hum that swells and fades with the sun pulse.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/solar-sim/scene"
)

const (
	sampleRate = beep.SampleRate(44100)

	// HumFrequency is the base tone of the sun hum (Hz)
	HumFrequency = 55.0

	// HumVolume is the exponential gain applied on top of the pulse, base 2
	HumVolume = -3.0
)

// PulseModulator scales a stream by the sun brightness at the stream's own time
// Time is derived from the sample counter, so it never touches frame loop state
type PulseModulator struct {
	Streamer beep.Streamer
	Rate     beep.SampleRate
	pos      int
}

func (m *PulseModulator) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = m.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := scene.SunBrightness(float64(m.pos) / float64(m.Rate))
		samples[i][0] *= gain
		samples[i][1] *= gain
		m.pos++
	}
	return n, ok
}

func (m *PulseModulator) Err() error {
	return m.Streamer.Err()
}

// NewHumStreamer builds the endless pulse-modulated sine tone
func NewHumStreamer(sr beep.SampleRate, freq, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: &PulseModulator{Streamer: sine, Rate: sr},
		Base:     2,
		Volume:   volume,
	}, nil
}

// Hum owns the speaker while enabled
type Hum struct {
	ctrl        *beep.Ctrl
	initialized bool
}

// NewHum prepares the hum stream without touching the audio device
func NewHum() (*Hum, error) {
	streamer, err := NewHumStreamer(sampleRate, HumFrequency, HumVolume)
	if err != nil {
		return nil, err
	}
	return &Hum{ctrl: &beep.Ctrl{Streamer: streamer}}, nil
}

// Start opens the speaker and begins playback
func (h *Hum) Start() error {
	if h.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(h.ctrl)
	h.initialized = true
	return nil
}

// SetPaused mutes or resumes the hum in step with the frame clock
func (h *Hum) SetPaused(paused bool) {
	if !h.initialized {
		return
	}
	speaker.Lock()
	h.ctrl.Paused = paused
	speaker.Unlock()
}

// Stop clears playback and releases the device
func (h *Hum) Stop() {
	if !h.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	h.initialized = false
}
