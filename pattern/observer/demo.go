package observer

import "github.com/b97tsk/primer"

// Demo narrates the observer lesson.
func Demo(c *primer.Console) error {
	c.Say("A Subject notifies observers in attach order:")

	var releases Subject[string]
	releases.Attach("mail", Func[string](func(v string) { c.Say("  mail gets %q", v) }))
	releases.Attach("chat", Func[string](func(v string) { c.Say("  chat gets %q", v) }))

	releases.Notify("v1.0")

	releases.Detach("mail")
	c.Say("After detaching mail:")
	releases.Notify("v1.1")

	c.Say("")
	c.Say("A Feed does the same across goroutines, with channels:")

	feed := NewFeed[string]()
	a := feed.Subscribe()
	b := feed.Subscribe()

	n := feed.Publish("deploy started")
	c.Say("  delivered to %d subscribers", n)
	c.Say("  a got %q", <-a)
	c.Say("  b got %q", <-b)

	feed.Close()

	return nil
}
