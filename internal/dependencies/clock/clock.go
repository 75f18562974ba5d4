package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
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

// Stopwatch measures one interval against a Clock. The zero value is not
// started; Elapsed reports 0 until Start is called and stops growing after Stop.
type Stopwatch struct {
	clock     Clock
	startedAt time.Time
	stoppedAt time.Time
	running   bool
	stopped   bool
}

// NewStopwatch creates a stopped Stopwatch reading from clk
func NewStopwatch(clk Clock) *Stopwatch {
	return &Stopwatch{clock: clk}
}

// Start begins timing. Subsequent calls are ignored.
func (s *Stopwatch) Start() {
	if s.running || s.stopped {
		return
	}
	s.startedAt = s.clock.Now()
	s.running = true
}

// Stop freezes the elapsed time. Ignored if not running.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.stoppedAt = s.clock.Now()
	s.running = false
	s.stopped = true
}

// Started reports whether Start has been called
func (s *Stopwatch) Started() bool {
	return s.running || s.stopped
}

// Elapsed returns the measured duration so far
func (s *Stopwatch) Elapsed() time.Duration {
	switch {
	case s.stopped:
		return s.stoppedAt.Sub(s.startedAt)
	case s.running:
		return s.clock.Now().Sub(s.startedAt)
	default:
		return 0
	}
}
