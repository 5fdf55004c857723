package engine

import "time"

// TimeProvider supplies wall time with a monotonic reading
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
