package engine

import "time"

// TimeProvider abstracts the wall clock so the frame clock can be
// driven deterministically in tests.
type TimeProvider interface {
	// Now returns the current time with monotonic clock reading
	Now() time.Time
	// Sleep blocks the calling goroutine for at least d
	Sleep(d time.Duration)
}

// MonotonicTimeProvider provides the real system time with monotonic
// clock readings.
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() MonotonicTimeProvider {
	return MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// Sleep blocks for at least d
func (MonotonicTimeProvider) Sleep(d time.Duration) {
	time.Sleep(d)
}
