package sched

import (
	"time"

	"github.com/b97tsk/primer"
)

// Demo narrates the event loop lesson.
func Demo(c *primer.Console) error {
	var lp Loop

	say := func(d time.Duration, msg string) Task {
		return Block(
			Sleep(d),
			Do(func() { c.Say("  %v  %s", lp.Now(), msg) }),
		)
	}

	c.Say("Three sleepers on one thread, finishing in delay order:")
	lp.Go("demo", Block(
		Gather(
			say(3*time.Second, "third"),
			say(1*time.Second, "first"),
			say(2*time.Second, "second"),
		),
		Do(func() { c.Say("  %v  all done", lp.Now()) }),
	))
	lp.Run()

	c.Say("")
	c.Say("A reactive proc, re-run whenever a state it watches changes:")

	temp := NewState(20)
	lp.Go("thermometer", func(p *Proc) Result {
		p.Watch(temp)
		c.Say("  temperature is %d", temp.Get())
		return p.Await()
	})
	lp.Run()

	lp.Go("weather", Do(func() { temp.Set(27) }))
	lp.Run()

	return nil
}
