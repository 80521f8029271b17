package component

import "time"

// Clock supplies the instants cooldowns are measured against.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading, so
// intervals are immune to clock adjustments.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to. Used to drive cooldowns deterministically.
type ManualClock struct {
	now time.Time
}

func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Unix(1_700_000_000, 0)}
}

func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// Seconds converts a float second count from the specs into a Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Cooldown gates a repeatable action: once started it stays pending until the
// duration has passed. The zero value is elapsed.
type Cooldown struct {
	start    time.Time
	duration time.Duration
}

// Start records the current instant and the gate duration.
func (c *Cooldown) Start(clock Clock, seconds float64) {
	if c == nil || clock == nil {
		return
	}
	c.start = clock.Now()
	c.duration = Seconds(seconds)
}

// Elapsed reports whether the gate is open again.
func (c *Cooldown) Elapsed(clock Clock) bool {
	if c == nil || clock == nil || c.start.IsZero() {
		return true
	}
	return clock.Now().Sub(c.start) >= c.duration
}

// Remaining is the time left before the gate opens, never negative.
func (c *Cooldown) Remaining(clock Clock) time.Duration {
	if c.Elapsed(clock) {
		return 0
	}
	return c.duration - clock.Now().Sub(c.start)
}

// Reset opens the gate immediately.
func (c *Cooldown) Reset() {
	if c == nil {
		return
	}
	*c = Cooldown{}
}
