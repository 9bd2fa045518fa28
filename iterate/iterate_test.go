package iterate_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b97tsk/primer/iterate"
)

func TestCounter(t *testing.T) {
	t.Parallel()

	c, err := iterate.NewCounter(2)
	require.NoError(t, err)

	v, ok := c.Next()
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = c.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	for range 3 {
		v, ok = c.Next()
		assert.False(t, ok, "Next on a drained counter")
		assert.Zero(t, v)
	}
}

func TestNewCounterBadStart(t *testing.T) {
	t.Parallel()

	for _, start := range []int{0, -1, -100} {
		_, err := iterate.NewCounter(start)
		assert.ErrorIs(t, err, iterate.ErrBadStart, "start %d", start)
	}
}

func TestCountdown(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{3, 2, 1}, slices.Collect(iterate.Countdown(3)))
	assert.Empty(t, slices.Collect(iterate.Countdown(0)))

	// An early break must stop the sequence cleanly.
	for range iterate.Countdown(1000) {
		break
	}
}

func TestFib(t *testing.T) {
	t.Parallel()

	assert.Empty(t, slices.Collect(iterate.Fib(0)))
	assert.Equal(t, []int{0}, slices.Collect(iterate.Fib(1)))
	assert.Equal(t, []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}, slices.Collect(iterate.Fib(10)))
}

func TestTake(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{0, 1, 2}, slices.Collect(iterate.Take(iterate.Naturals(), 3)))
	assert.Empty(t, slices.Collect(iterate.Take(iterate.Naturals(), 0)))
	assert.Empty(t, slices.Collect(iterate.Take(iterate.Naturals(), -1)))

	// Taking more than the source has just drains it.
	assert.Equal(t, []int{2, 1}, slices.Collect(iterate.Take(iterate.Countdown(2), 5)))
}

func TestLines(t *testing.T) {
	t.Parallel()

	got := slices.Collect(iterate.Lines(strings.NewReader("a\nb\nc")))
	assert.Equal(t, []string{"a", "b", "c"}, got)

	assert.Empty(t, slices.Collect(iterate.Lines(strings.NewReader(""))))
}

func TestReadLines(t *testing.T) {
	t.Parallel()

	name := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(name, []byte("one\ntwo\nthree\n"), 0o644))

	lines, err := iterate.ReadLines(name)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, lines)
}

func TestReadLinesMissing(t *testing.T) {
	t.Parallel()

	_, err := iterate.ReadLines(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
