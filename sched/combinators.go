package sched

import (
	"strconv"
	"time"
)

// Do returns a [Task] that calls f, and then completes.
func Do(f func()) Task {
	return func(p *Proc) Result {
		f()
		return p.End()
	}
}

// End returns a [Task] that completes without doing anything.
func End() Task {
	return (*Proc).End
}

// Never returns a [Task] that never completes.
// Tasks in a [Block] after Never are never getting worked on.
func Never() Task {
	return func(p *Proc) Result {
		return p.Await(new(Signal))
	}
}

// Then returns a [Task] that first works on t, then switches to work on
// next after t completes.
//
// To chain multiple Tasks, use [Block] instead.
//
// Task values built from combinators carry iteration state. Spawn each
// value once; to run the same steps again, build the value again.
func (t Task) Then(next Task) Task {
	if next == nil {
		panic("Then(nil): undefined behavior")
	}
	return func(p *Proc) Result {
		switch res := t(p); res.action {
		case doEnd:
			return Result{action: doSwitch, task: next}
		case doYield, doSwitch:
			if res.task != nil {
				t = res.task
			}
			return Result{action: res.action}
		default:
			panic("internal error: unknown action")
		}
	}
}

// Block returns a [Task] that works on each of the provided Tasks in
// sequence. When one Task completes, Block works on another.
func Block(s ...Task) Task {
	var cur Task
	return func(p *Proc) Result {
		if cur == nil {
			if len(s) == 0 {
				return p.End()
			}
			cur, s = s[0], s[1:]
		}
		switch res := cur(p); res.action {
		case doEnd:
			cur = nil
			return Result{action: doSwitch}
		case doYield, doSwitch:
			if res.task != nil {
				cur = res.task
			}
			return Result{action: res.action}
		default:
			panic("internal error: unknown action")
		}
	}
}

// Sleep returns a [Task] that completes once the virtual clock of the
// [Loop] advances by d. It arms a [Timer] and yields; no wall time
// passes. A non-positive d still yields once, like a bare handover to
// the Loop.
func Sleep(d time.Duration) Task {
	return func(p *Proc) Result {
		p.Watch(p.Loop().After(d))
		return p.Yield(End())
	}
}

// Gather returns a [Task] that spawns each of the provided Tasks as
// its own [Proc] and completes after every one of them has completed.
// The spawned Procs get derived names: a Proc named "demo" running
// Gather spawns "demo.1", "demo.2", and so on, in argument order.
//
// Gather with no arguments completes immediately.
func Gather(s ...Task) Task {
	return func(p *Proc) Result {
		lp := p.Loop()
		name := p.Name()

		wg := new(WaitGroup)
		wg.Add(len(s))

		for i, t := range s {
			lp.Go(name+"."+strconv.Itoa(i+1), t.Then(Do(wg.Done)))
		}

		return p.Switch(wg.Await())
	}
}

// Repeat returns a [Task] that works on body(0), body(1), ...,
// body(n-1) in sequence. The body function is called anew for each
// round, which makes Repeat safe for bodies built from combinators.
func Repeat(n int, body func(i int) Task) Task {
	if body == nil {
		panic("Repeat(nil): undefined behavior")
	}
	i := 0
	var rep Task
	rep = func(p *Proc) Result {
		if i >= n {
			return p.End()
		}
		i++
		return p.Switch(body(i - 1).Then(rep))
	}
	return rep
}
