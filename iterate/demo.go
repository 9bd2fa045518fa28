package iterate

import (
	"slices"
	"strings"

	"github.com/b97tsk/primer"
)

// Demo narrates the iteration lesson.
func Demo(c *primer.Console) error {
	c.Say("A countdown iterator, driven by hand:")

	counter, err := NewCounter(3)
	if err != nil {
		return err
	}
	for {
		v, ok := counter.Next()
		if !ok {
			break
		}
		c.Say("  %d", v)
	}
	v, ok := counter.Next()
	c.Say("  drained: %d %v", v, ok)

	c.Say("")
	c.Say("The same countdown as a range-able sequence:")
	for v := range Countdown(3) {
		c.Say("  %d", v)
	}

	c.Say("")
	if _, err := NewCounter(0); err != nil {
		c.Say("Starting below one is refused: %v", err)
	}

	c.Say("")
	c.Say("First 8 Fibonacci numbers: %v", slices.Collect(Fib(8)))
	c.Say("Naturals, capped by Take:  %v", slices.Collect(Take(Naturals(), 5)))

	c.Say("")
	c.Say("Lines from a reader:")
	for line := range Lines(strings.NewReader("eggs\nflour\nbutter")) {
		c.Say("  %s", line)
	}

	return nil
}
