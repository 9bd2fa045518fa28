package sched

import "time"

// A Loop is a [Proc] spawner, and a Proc runner.
//
// When a Proc is spawned or resumed, it is added into an internal run
// queue. The Run method then pops and runs each of them from the queue
// until the queue is emptied, in a single-threaded manner. Procs run in
// the order they were spawned or resumed (FIFO).
//
// When the run queue is emptied and there are pending Timers, Run
// advances the virtual clock to the due time of the earliest one, fires
// it, and keeps going. Run returns when there is nothing left to run
// and no Timer is pending. Procs that are watching other Events stay
// parked; spawning more work and calling Run again picks them back up.
//
// The zero Loop is ready to use. A Loop must not be shared by multiple
// goroutines.
type Loop struct {
	now     time.Duration
	ready   []*Proc
	timers  queue[*Timer]
	ntimers int
}

// Now returns the current reading of the virtual clock.
// It starts at zero and never moves backwards.
func (lp *Loop) Now() time.Duration {
	return lp.now
}

// Idle reports whether lp has nothing to run and no pending [Timer].
// Procs parked on other Events do not count.
func (lp *Loop) Idle() bool {
	return len(lp.ready) == 0 && lp.ntimers == 0
}

// Go spawns a [Proc] with the given name to work on t.
//
// The Proc is added into the run queue. To run it, call the Run method.
// Spawning from within a [Task] function is fine; the running Run call
// picks the new Proc up.
func (lp *Loop) Go(name string, t Task) {
	if t == nil {
		panic("Go(nil): undefined behavior")
	}
	p := &Proc{loop: lp, name: name, task: t, flag: flagStale | flagWoken}
	lp.schedule(p)
}

func (lp *Loop) schedule(p *Proc) {
	lp.ready = append(lp.ready, p)
}

// Run pops and runs every [Proc] in the run queue, advancing the
// virtual clock over pending Timers, until both are drained.
//
// Run must not be called twice at the same time.
func (lp *Loop) Run() {
	for {
		for len(lp.ready) != 0 {
			p := lp.ready[0]
			lp.ready[0] = nil
			lp.ready = lp.ready[1:]
			lp.runProc(p)
		}

		tm, ok := lp.nextTimer()
		if !ok {
			return
		}

		if tm.due > lp.now {
			lp.now = tm.due
		}

		tm.fired = true
		tm.Notify()
	}
}

func (lp *Loop) nextTimer() (*Timer, bool) {
	for !lp.timers.Empty() {
		tm := lp.timers.Pop()
		if tm.stopped {
			continue
		}
		lp.ntimers--
		return tm, true
	}
	return nil, false
}

func (lp *Loop) runProc(p *Proc) {
	flag := p.flag
	flag &^= flagWoken
	p.flag = flag

	if flag&flagEnded != 0 {
		return
	}

	if flag&flagStale == 0 {
		return
	}

	p.run()
}
