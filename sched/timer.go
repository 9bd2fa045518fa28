package sched

import "time"

// A Timer is a [Signal] that notifies once, when the virtual clock of
// its [Loop] reaches the due time. Timers are created with [Loop.After].
//
// Two Timers due at the same instant fire in the order they were armed.
type Timer struct {
	Signal
	loop    *Loop
	due     time.Duration
	fired   bool
	stopped bool
}

func (tm *Timer) less(other *Timer) bool {
	return tm.due < other.due
}

// When returns the instant on the virtual clock at which tm fires.
func (tm *Timer) When() time.Duration {
	return tm.due
}

// Stop prevents tm from firing. It reports whether it stopped the
// timer; it returns false if the timer has already fired or been
// stopped. A stopped Timer never notifies its watchers.
func (tm *Timer) Stop() bool {
	if tm.fired || tm.stopped {
		return false
	}
	tm.stopped = true
	tm.loop.ntimers--
	return true
}

// After arms a [Timer] that fires once the virtual clock reaches
// Now()+d. A non-positive d arms the Timer for the current instant;
// it still takes a trip through the loop to fire.
func (lp *Loop) After(d time.Duration) *Timer {
	if d < 0 {
		d = 0
	}
	tm := &Timer{loop: lp, due: lp.now + d}
	lp.timers.Push(tm)
	lp.ntimers++
	return tm
}
