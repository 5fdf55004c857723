package constants

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the frame loop interval (~60 FPS)
	// Orbit speeds are radians per frame, so this also sets the orbital pace
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the buffered capacity of the input event channel
	EventQueueSize = 256
)

// Viewport in world units, origin at the sun, y up
const (
	ViewWidth  = 800
	ViewHeight = 800
)
