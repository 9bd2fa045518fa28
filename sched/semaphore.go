package sched

import "slices"

// Semaphore provides a way to bound cooperative access to a resource.
// The callers can request access with a given weight.
//
// Waiters are served strictly in arrival order. A request that fits
// does not jump the queue while an earlier, heavier request is still
// waiting.
//
// A Semaphore must not be shared by more than one [Loop].
type Semaphore struct {
	size    int64
	cur     int64
	waiters []*semWaiter
}

type semWaiter struct {
	Signal
	n int64
}

// NewSemaphore creates a new weighted semaphore with the given maximum
// combined weight.
func NewSemaphore(n int64) *Semaphore {
	return &Semaphore{size: n}
}

// Acquire returns a [Task] that awaits until a weight of n is acquired
// from the semaphore, and then ends.
//
// Acquire panics if n alone exceeds the semaphore size; such a request
// could never be served.
func (s *Semaphore) Acquire(n int64) Task {
	if n < 0 {
		panic("sched(Semaphore): negative weight")
	}
	return func(p *Proc) Result {
		if len(s.waiters) == 0 && s.size-s.cur >= n {
			s.cur += n
			return p.End()
		}
		if n > s.size {
			panic("sched(Semaphore): weight exceeds semaphore size")
		}
		w := &semWaiter{n: n}
		s.waiters = append(s.waiters, w)
		p.Watch(w)
		return p.Yield(End())
	}
}

// TryAcquire acquires the semaphore with a weight of n without waiting.
// It reports whether the acquisition succeeded.
// TryAcquire does not jump the queue: it fails whenever there are
// waiters, even if the weight would fit.
func (s *Semaphore) TryAcquire(n int64) bool {
	if n < 0 {
		panic("sched(Semaphore): negative weight")
	}
	if len(s.waiters) != 0 || s.size-s.cur < n {
		return false
	}
	s.cur += n
	return true
}

// Release releases the semaphore with a weight of n.
//
// One should only call this method in a [Task] function.
func (s *Semaphore) Release(n int64) {
	if n < 0 {
		panic("sched(Semaphore): negative weight")
	}
	s.cur -= n
	if s.cur < 0 {
		panic("sched(Semaphore): released more than held")
	}
	s.notifyWaiters()
}

func (s *Semaphore) notifyWaiters() {
	i := 0
	for ; i < len(s.waiters); i++ {
		w := s.waiters[i]
		if s.size-s.cur < w.n {
			break
		}
		s.cur += w.n
		w.n = 0
		w.Notify()
	}
	s.waiters = slices.Delete(s.waiters, 0, i)
}
