package observer

import "sync"

// A Feed fans events out to subscriber channels. Unlike [Subject] it
// is safe for concurrent use, and delivery is decoupled: each
// subscriber gets a buffered channel, and slow ones drop events
// rather than block the publisher.
type Feed[T any] struct {
	mu     sync.RWMutex
	subs   map[chan T]struct{}
	closed bool
}

// NewFeed creates an empty Feed.
func NewFeed[T any]() *Feed[T] {
	return &Feed[T]{subs: make(map[chan T]struct{})}
}

// Subscribe registers a new subscriber and returns its channel. The
// channel doubles as the handle to pass to Unsubscribe. Subscribing
// to a closed Feed returns a closed channel.
func (f *Feed[T]) Subscribe() chan T {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		ch := make(chan T)
		close(ch)
		return ch
	}

	ch := make(chan T, 1)
	f.subs[ch] = struct{}{}
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (f *Feed[T]) Unsubscribe(ch chan T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.subs[ch]; ok {
		delete(f.subs, ch)
		close(ch)
	}
}

// Publish delivers v to every subscriber with room in its buffer and
// returns the number of deliveries. It never blocks.
func (f *Feed[T]) Publish(v T) int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	delivered := 0
	for ch := range f.subs {
		select {
		case ch <- v:
			delivered++
		default:
		}
	}
	return delivered
}

// Close drops all subscribers and closes their channels. Publishing
// to a closed Feed delivers nothing. Close is idempotent.
func (f *Feed[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true

	for ch := range f.subs {
		delete(f.subs, ch)
		close(ch)
	}
}
