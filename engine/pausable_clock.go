package engine

import "time"

// Clock reports monotonic seconds since program start
type Clock interface {
	Elapsed() float64
}

var _ Clock = (*PausableClock)(nil)

// PausableClock is a Clock whose elapsed time freezes while paused
// Owned by the frame loop, not safe for concurrent use
type PausableClock struct {
	provider TimeProvider

	startTime       time.Time
	isPaused        bool
	pauseStartTime  time.Time     // when current pause started
	totalPausedTime time.Duration // cumulative closed pauses
}

// NewPausableClock starts a running clock at provider's current time
func NewPausableClock(provider TimeProvider) *PausableClock {
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Elapsed returns running seconds since start, excluding paused spans
func (pc *PausableClock) Elapsed() float64 {
	now := pc.provider.Now()
	if pc.isPaused {
		now = pc.pauseStartTime
	}
	return (now.Sub(pc.startTime) - pc.totalPausedTime).Seconds()
}

// Pause stops time advancement, no-op when already paused
func (pc *PausableClock) Pause() {
	if pc.isPaused {
		return
	}
	pc.isPaused = true
	pc.pauseStartTime = pc.provider.Now()
}

// Resume continues time advancement, no-op when running
func (pc *PausableClock) Resume() {
	if !pc.isPaused {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.isPaused = false
}

// Toggle flips pause state and returns true when now paused
func (pc *PausableClock) Toggle() bool {
	if pc.isPaused {
		pc.Resume()
	} else {
		pc.Pause()
	}
	return pc.isPaused
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused
}

// TotalPauseDuration returns cumulative pause time including an open pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	total := pc.totalPausedTime
	if pc.isPaused {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
