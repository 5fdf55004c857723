package engine

import (
	"testing"
	"time"
)

func newTestClock() (*PausableClock, *MockTimeProvider) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewPausableClock(mock), mock
}

func TestPausableClockElapsed(t *testing.T) {
	clock, mock := newTestClock()

	if got := clock.Elapsed(); got != 0 {
		t.Errorf("Expected 0 at start, got %v", got)
	}

	mock.Advance(1500 * time.Millisecond)
	if got := clock.Elapsed(); got != 1.5 {
		t.Errorf("Expected 1.5s, got %v", got)
	}
}

func TestPausableClockPauseResume(t *testing.T) {
	clock, mock := newTestClock()

	mock.Advance(2 * time.Second)
	clock.Pause()
	if !clock.IsPaused() {
		t.Fatal("Expected clock to be paused")
	}

	mock.Advance(5 * time.Second)
	if got := clock.Elapsed(); got != 2 {
		t.Errorf("Expected frozen 2s while paused, got %v", got)
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected open pause of 5s, got %v", got)
	}

	clock.Resume()
	mock.Advance(1 * time.Second)
	if got := clock.Elapsed(); got != 3 {
		t.Errorf("Expected 3s after resume, got %v", got)
	}
	if got := clock.TotalPauseDuration(); got != 5*time.Second {
		t.Errorf("Expected 5s total pause, got %v", got)
	}
}

func TestPausableClockIdempotent(t *testing.T) {
	clock, mock := newTestClock()

	clock.Resume()
	mock.Advance(time.Second)
	clock.Pause()
	mock.Advance(time.Second)
	clock.Pause()
	mock.Advance(time.Second)

	if got := clock.Elapsed(); got != 1 {
		t.Errorf("Expected second Pause to keep original pause start, got %v", got)
	}
}

func TestPausableClockToggle(t *testing.T) {
	clock, _ := newTestClock()

	if !clock.Toggle() {
		t.Error("Expected first toggle to pause")
	}
	if clock.Toggle() {
		t.Error("Expected second toggle to resume")
	}
}
