package solid

import "github.com/b97tsk/primer"

// Demo narrates the SOLID lesson.
func Demo(c *primer.Console) error {
	c.Say("S: content, formatting and storage are three small types.")
	var f TextFormatter
	doc := f.Format(Report{Title: "Outages", Lines: []string{"api down 2m"}})
	var store MemoryStore
	store.Save(doc)
	c.Say("  stored %d formatted report(s)", store.Count())

	c.Say("O: TotalArea takes any Shape, present or future.")
	c.Say("  total = %.2f", TotalArea(&Rect{W: 3, H: 4}, Circle{R: 1}, Square{Side: 2}))

	c.Say("L: only honest resizables enter Widen; squares stay out.")
	r := &Rect{W: 2, H: 5}
	Widen(r, 3)
	c.Say("  widened rect: %vx%v", r.W, r.H)

	c.Say("I: a photocopier is a printer plus a scanner, not one fat interface.")
	var pc Photocopier
	c.Say("  %s", pc.Copy())

	c.Say("D: Notifier only knows the Sender interface.")
	mem := new(MemorySender)
	n, err := NewNotifier(mem)
	if err != nil {
		return err
	}
	if err := n.Alert("ada", "disk almost full"); err != nil {
		return err
	}
	c.Say("  recorded: %s", mem.Sent[0])

	return nil
}
