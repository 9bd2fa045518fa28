package solid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b97tsk/primer/solid"
)

var (
	_ solid.Shape     = (*solid.Rect)(nil)
	_ solid.Resizable = (*solid.Rect)(nil)
	_ solid.Shape     = solid.Circle{}
	_ solid.Shape     = solid.Square{}
	_ solid.Printer   = solid.Photocopier{}
	_ solid.Scanner   = solid.Photocopier{}
	_ solid.Sender    = solid.ConsoleSender{}
	_ solid.Sender    = (*solid.MemorySender)(nil)
)

func TestFormatter(t *testing.T) {
	t.Parallel()

	var f solid.TextFormatter
	got := f.Format(solid.Report{Title: "T", Lines: []string{"a"}})
	assert.Equal(t, "T\n=\n- a\n", got)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	var store solid.MemoryStore
	assert.Zero(t, store.Count())

	store.Save("one")
	store.Save("two")
	assert.Equal(t, 2, store.Count())
}

func TestTotalArea(t *testing.T) {
	t.Parallel()

	assert.Zero(t, solid.TotalArea())
	assert.InDelta(t, 12.0, solid.TotalArea(&solid.Rect{W: 3, H: 4}), 1e-9)
	assert.InDelta(t, math.Pi, solid.TotalArea(solid.Circle{R: 1}), 1e-9)
	assert.InDelta(t, 16.0+math.Pi,
		solid.TotalArea(&solid.Rect{W: 3, H: 4}, solid.Square{Side: 2}, solid.Circle{R: 1}), 1e-9)
}

func TestWiden(t *testing.T) {
	t.Parallel()

	r := &solid.Rect{W: 2, H: 5}
	solid.Widen(r, 3)
	assert.Equal(t, 5.0, r.W)
	assert.Equal(t, 5.0, r.H, "height must not move")
}

func TestSquareScale(t *testing.T) {
	t.Parallel()

	sq := solid.Square{Side: 2}
	scaled := sq.Scale(2)
	assert.Equal(t, 4.0, scaled.Side)
	assert.Equal(t, 2.0, sq.Side, "Scale returns a new square")
}

func TestNotifier(t *testing.T) {
	t.Parallel()

	_, err := solid.NewNotifier(nil)
	assert.ErrorIs(t, err, solid.ErrNilSender)

	mem := new(solid.MemorySender)
	n, err := solid.NewNotifier(mem)
	require.NoError(t, err)

	require.NoError(t, n.Alert("ada", "cpu on fire"))
	require.NoError(t, n.Alert("bob", "all clear"))

	assert.Equal(t, []string{
		"ada: alert: cpu on fire",
		"bob: alert: all clear",
	}, mem.Sent)
}
