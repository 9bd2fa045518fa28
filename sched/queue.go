package sched

import (
	"slices"
	"sort"
)

type lesser[E any] interface {
	less(v E) bool
}

// A queue is a priority queue.
// Elements that compare equal pop in push order (FIFO).
type queue[E lesser[E]] struct {
	s []E
}

func (q *queue[E]) Empty() bool {
	return len(q.s) == 0
}

func (q *queue[E]) Push(v E) {
	// sort.Search finds the first element that v is strictly less than,
	// so v lands after any equal elements already in the queue.
	i := sort.Search(len(q.s), func(i int) bool { return v.less(q.s[i]) })
	q.s = slices.Insert(q.s, i, v)
}

func (q *queue[E]) Pop() E {
	v := q.s[0]

	var zero E
	q.s[0] = zero

	if q.s = q.s[1:]; len(q.s) == 0 {
		q.s = nil
	}

	return v
}
