package primer_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/b97tsk/primer"
)

func TestConsole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := primer.NewConsole(&buf)

	c.Head("Demo")
	c.Say("hello %s", "there")
	c.Printf("%d-%d", 1, 2)
	c.Println()

	assert.Equal(t, "== Demo ==\nhello there\n1-2\n", buf.String())
	assert.Same(t, &buf, c.Writer())
}

func TestConsoleColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := primer.NewConsole(&buf, primer.WithColor(true))

	c.Head("Demo")

	out := buf.String()
	assert.Contains(t, out, "Demo")
	assert.Contains(t, out, "\x1b[", "expected ANSI escapes when color is on")
}
