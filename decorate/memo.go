package decorate

// Memoize caches results by argument. The wrapped function runs once
// per distinct argument; repeats are answered from the cache.
//
// The cache is unbounded and not safe for concurrent use.
func Memoize[A comparable, R any](fn Unary[A, R]) Unary[A, R] {
	cache := make(map[A]R)
	return func(a A) R {
		if r, ok := cache[a]; ok {
			return r
		}
		r := fn(a)
		cache[a] = r
		return r
	}
}

// A Memo is a memoized function that also keeps score. Use it over
// [Memoize] when hit rates matter.
type Memo[A comparable, R any] struct {
	fn     Unary[A, R]
	cache  map[A]R
	hits   int
	misses int
}

// NewMemo wraps fn in a scoring cache.
func NewMemo[A comparable, R any](fn Unary[A, R]) *Memo[A, R] {
	return &Memo[A, R]{fn: fn, cache: make(map[A]R)}
}

// Call looks up or computes the result for a.
func (m *Memo[A, R]) Call(a A) R {
	if r, ok := m.cache[a]; ok {
		m.hits++
		return r
	}
	m.misses++
	r := m.fn(a)
	m.cache[a] = r
	return r
}

// Hits returns the number of calls answered from the cache.
func (m *Memo[A, R]) Hits() int { return m.hits }

// Misses returns the number of calls that ran the function.
func (m *Memo[A, R]) Misses() int { return m.misses }

// Len returns the number of cached results.
func (m *Memo[A, R]) Len() int { return len(m.cache) }
