package strategy_test

import (
	"fmt"

	"github.com/b97tsk/primer/pattern/strategy"
)

func ExampleCheckout() {
	processors := []strategy.Processor{
		strategy.Card{Last4: "4242"},
		strategy.PayPal{Email: "ada@example.com"},
		strategy.Wire{MinCents: 25_00},
	}

	for _, p := range processors {
		r, err := strategy.Checkout(p, 19_99)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("paid %s via %s\n", strategy.Dollars(r.Cents), r.Method)
	}

	// Output:
	// paid $19.99 via card ****4242
	// paid $19.99 via paypal ada@example.com
	// strategy: wire: amount 1999 below minimum 2500
}

func ExampleCheckout_validation() {
	_, err := strategy.Checkout(strategy.Card{Last4: "4242"}, 0)
	fmt.Println(err)

	// Output:
	// strategy: amount must be positive
}
