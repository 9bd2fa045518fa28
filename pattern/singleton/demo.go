package singleton

import "github.com/b97tsk/primer"

// Demo narrates the singleton lesson.
func Demo(c *primer.Console) error {
	first := Default()
	second := Default()
	c.Say("Default() twice hands back one logger: %v", first == second)
	c.Say("However many packages call it, there is only one.")

	c.Say("")

	calls := 0
	cell := NewLazy(func() string {
		calls++
		return "expensive thing"
	})
	c.Say("A Lazy cell builds nothing until asked: builds=%d", calls)
	c.Say("Get() returns %q", cell.Get())
	c.Say("Get() again returns %q, builds=%d", cell.Get(), calls)

	return nil
}
