package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
	// Sleep blocks the caller for d. The terminal is single-threaded so
	// every display delay and poll interval goes through here.
	Sleep(d time.Duration)
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Sleep pauses the current goroutine for d
func (c *RealClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}

// InstantClock reports real time but never sleeps. Scripted runs use it to
// skip display delays.
type InstantClock struct {
	RealClock
}

// NewInstant creates a new InstantClock
func NewInstant() *InstantClock {
	return &InstantClock{}
}

// Sleep returns immediately
func (c *InstantClock) Sleep(time.Duration) {}
