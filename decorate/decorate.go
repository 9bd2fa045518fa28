// Package decorate wraps functions in functions. A decorator takes a
// function and returns one with the same shape and a little more
// behavior: logging, timing, counting, caching.
package decorate

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// A Unary is any one-argument function. The decorators below all take
// a Unary and return another, so they stack.
type Unary[A, R any] func(A) R

// Logged logs every call and return through the given logger.
func Logged[A, R any](log *zap.Logger, name string, fn Unary[A, R]) Unary[A, R] {
	return func(a A) R {
		log.Info("call", zap.String("fn", name), zap.Any("arg", a))
		r := fn(a)
		log.Info("return", zap.String("fn", name), zap.Any("result", r))
		return r
	}
}

// Timed logs the wall-clock duration of every call.
func Timed[A, R any](log *zap.Logger, name string, fn Unary[A, R]) Unary[A, R] {
	return func(a A) R {
		start := time.Now()
		r := fn(a)
		log.Info("timed", zap.String("fn", name), zap.Duration("took", time.Since(start)))
		return r
	}
}

// A Count tallies calls. It is safe for concurrent use.
type Count struct {
	n atomic.Int64
}

// Load returns the tally.
func (c *Count) Load() int64 { return c.n.Load() }

// Counted returns fn wrapped to tally calls, along with the tally.
func Counted[A, R any](fn Unary[A, R]) (Unary[A, R], *Count) {
	c := new(Count)
	return func(a A) R {
		c.n.Add(1)
		return fn(a)
	}, c
}

// Once caches the first result of fn; later calls return it without
// running fn again. Handy for expensive parameterless setup.
func Once[R any](fn func() R) func() R {
	var (
		once sync.Once
		r    R
	)
	return func() R {
		once.Do(func() { r = fn() })
		return r
	}
}

// Chain applies decorators to fn with the first listed outermost:
// Chain(f, a, b) returns a(b(f)).
func Chain[A, R any](fn Unary[A, R], ds ...func(Unary[A, R]) Unary[A, R]) Unary[A, R] {
	for i := len(ds) - 1; i >= 0; i-- {
		fn = ds[i](fn)
	}
	return fn
}
