package strategy

import "github.com/b97tsk/primer"

// Demo narrates the strategy lesson.
func Demo(c *primer.Console) error {
	processors := []Processor{
		Card{Last4: "4242"},
		PayPal{Email: "ada@example.com"},
		Wire{MinCents: 25_00},
	}

	c.Say("One checkout, three interchangeable processors:")
	for _, p := range processors {
		r, err := Checkout(p, 19_99)
		if err != nil {
			c.Say("  %-7s %v", p.Name(), err)
			continue
		}
		c.Say("  %-7s paid %s via %s", p.Name(), Dollars(r.Cents), r.Method)
	}

	c.Say("")
	if _, err := Checkout(processors[0], 0); err != nil {
		c.Say("Zero amounts never reach a processor: %v", err)
	}

	return nil
}
