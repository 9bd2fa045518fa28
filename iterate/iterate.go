// Package iterate shows how iteration works in Go, from a hand-rolled
// next-style iterator up to the iter.Seq functions that range accepts.
package iterate

import (
	"errors"
	"iter"
)

// ErrBadStart rejects countdown starts below one.
var ErrBadStart = errors.New("iterate: countdown start must be at least 1")

// A Counter counts down by hand. Each Next call returns the next value
// and reports whether one was produced, the same shape bufio.Scanner
// and database rows follow.
type Counter struct {
	next int
}

// NewCounter returns a Counter that counts down from start to 1.
// It fails with [ErrBadStart] if start is less than 1.
func NewCounter(start int) (*Counter, error) {
	if start < 1 {
		return nil, ErrBadStart
	}
	return &Counter{next: start}, nil
}

// Next returns the next value of the countdown.
// Once the countdown is exhausted, Next keeps returning 0 and false.
func (c *Counter) Next() (int, bool) {
	if c.next < 1 {
		return 0, false
	}
	v := c.next
	c.next--
	return v, true
}

// Countdown returns an iterator over start, start-1, ..., 1.
// A start below 1 yields nothing.
func Countdown(start int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := start; v >= 1; v-- {
			if !yield(v) {
				return
			}
		}
	}
}

// Fib returns an iterator over the first n Fibonacci numbers,
// starting 0, 1, 1, 2, ...
func Fib(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		a, b := 0, 1
		for range n {
			if !yield(a) {
				return
			}
			a, b = b, a+b
		}
	}
}

// Naturals returns an endless iterator over 0, 1, 2, ...
// Pair it with [Take], or break out of the loop; the sequence itself
// never stops.
func Naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Take returns an iterator over the first n values of seq.
func Take[V any](seq iter.Seq[V], n int) iter.Seq[V] {
	return func(yield func(V) bool) {
		if n < 1 {
			return
		}
		taken := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			if taken++; taken == n {
				return
			}
		}
	}
}
