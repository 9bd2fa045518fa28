package sched

import "slices"

// Event is the interface of any type that can be watched by a [Proc].
//
// The following types implement Event: [Signal], [State], [Timer] and
// [WaitGroup].
// Any type that embeds [Signal] also implements Event.
type Event interface {
	addListener(p *Proc)
	removeListener(p *Proc)
}

// Signal is a type that implements [Event].
//
// Calling the Notify method of a Signal, in a [Task] function, resumes
// any [Proc] that is watching the Signal.
// Watchers resume in the order they started watching, so playback stays
// deterministic.
//
// A Signal must not be shared by more than one [Loop].
type Signal struct {
	listeners []*Proc
}

func (s *Signal) addListener(p *Proc) {
	if !slices.Contains(s.listeners, p) {
		s.listeners = append(s.listeners, p)
	}
}

func (s *Signal) removeListener(p *Proc) {
	if i := slices.Index(s.listeners, p); i != -1 {
		s.listeners = slices.Delete(s.listeners, i, i+1)
	}
}

// Notify resumes any [Proc] that is watching s.
//
// One should only call this method in a [Task] function.
func (s *Signal) Notify() {
	for _, p := range s.listeners {
		p.wake()
	}
}
