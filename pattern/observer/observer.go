// Package observer implements the observer pattern twice: a
// synchronous Subject that calls its observers in attach order, and a
// channel-backed Feed for crossing goroutine boundaries.
package observer

import "slices"

// An Observer receives events published by a [Subject].
type Observer[T any] interface {
	OnEvent(v T)
}

// Func adapts a plain function to the [Observer] interface.
type Func[T any] func(v T)

func (f Func[T]) OnEvent(v T) { f(v) }

// A Subject notifies named observers synchronously, in attach order.
// The zero Subject is ready to use. It is not safe for concurrent
// use; see [Feed] for the concurrent flavor.
type Subject[T any] struct {
	subs []namedObserver[T]
}

type namedObserver[T any] struct {
	name string
	obs  Observer[T]
}

// Attach registers o under the given name. Attaching a name twice
// replaces the earlier observer in place, keeping its position.
func (s *Subject[T]) Attach(name string, o Observer[T]) {
	for i, sub := range s.subs {
		if sub.name == name {
			s.subs[i].obs = o
			return
		}
	}
	s.subs = append(s.subs, namedObserver[T]{name, o})
}

// Detach removes the named observer. It reports whether one was
// attached.
func (s *Subject[T]) Detach(name string) bool {
	for i, sub := range s.subs {
		if sub.name == name {
			s.subs = slices.Delete(s.subs, i, i+1)
			return true
		}
	}
	return false
}

// Len returns the number of attached observers.
func (s *Subject[T]) Len() int { return len(s.subs) }

// Notify delivers v to every observer, in attach order. Observers may
// attach or detach during delivery; such changes take effect on the
// next Notify.
func (s *Subject[T]) Notify(v T) {
	for _, sub := range slices.Clone(s.subs) {
		sub.obs.OnEvent(v)
	}
}
