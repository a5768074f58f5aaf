// internal/component/timer.go
package component

// Timer accumulates elapsed time toward a duration. One-shot timers latch in
// the finished state; repeating timers fire and carry the remainder into the
// next cycle so drift never builds up across frames.
type Timer struct {
	duration     float64
	elapsed      float64
	repeating    bool
	justFinished bool
	finished     bool
}

// NewTimer creates a one-shot timer running for the given seconds.
func NewTimer(seconds float64) Timer {
	return Timer{duration: clampDuration(seconds)}
}

// NewRepeatingTimer creates a timer that fires every interval seconds.
func NewRepeatingTimer(interval float64) Timer {
	return Timer{duration: clampDuration(interval), repeating: true}
}

// Zero and negative durations would fire every frame forever or divide by
// zero in Remaining; clamp to a tiny positive interval instead.
func clampDuration(seconds float64) float64 {
	const min = 1e-6
	if seconds < min {
		return min
	}
	return seconds
}

// Tick advances the timer. JustFinished reports true only for the tick on
// which the duration elapsed.
func (t *Timer) Tick(deltaTime float64) {
	t.justFinished = false
	if t.finished {
		return
	}
	t.elapsed += deltaTime
	if t.elapsed < t.duration {
		return
	}
	t.justFinished = true
	if t.repeating {
		t.elapsed -= t.duration
	} else {
		t.elapsed = t.duration
		t.finished = true
	}
}

// JustFinished reports whether the duration elapsed during the last Tick.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Finished reports whether a one-shot timer has completed. Repeating timers
// never finish.
func (t *Timer) Finished() bool {
	return t.finished
}

// Reset rewinds the timer to the start of its duration.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.justFinished = false
	t.finished = false
}

// Remaining returns the seconds left in the current cycle.
func (t *Timer) Remaining() float64 {
	if t.finished {
		return 0
	}
	return t.duration - t.elapsed
}
