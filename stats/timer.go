package stats

import "time"

// Timer measures elapsed wall time using Go's monotonic clock reading.
//
// A Timer is a small value type; copy it freely. The zero value is a stopped
// timer that reports zero elapsed time.
type Timer struct {
	start   time.Time
	running bool
}

// StartTimer creates a new Timer and starts it immediately.
//
// Returns:
//   - Timer: A running timer anchored at the current time
func StartTimer() Timer {
	t := Timer{}
	t.Start()

	return t
}

// Start begins (or restarts) the measurement from the current time.
func (t *Timer) Start() {
	t.start = time.Now()
	t.running = true
}

// Stop ends the measurement and returns the elapsed duration.
//
// Stopping a timer that is not running returns zero.
func (t *Timer) Stop() time.Duration {
	if !t.running {
		return 0
	}
	t.running = false

	return time.Since(t.start)
}

// Elapsed returns the duration since Start without stopping the timer.
//
// A timer that is not running reports zero.
func (t *Timer) Elapsed() time.Duration {
	if !t.running {
		return 0
	}

	return time.Since(t.start)
}

// Running reports whether the timer is currently measuring.
func (t *Timer) Running() bool {
	return t.running
}
