package iterate_test

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/b97tsk/primer/iterate"
)

func ExampleCounter() {
	c, err := iterate.NewCounter(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for {
		v, ok := c.Next()
		if !ok {
			break
		}
		fmt.Println(v)
	}

	// A drained counter stays drained.
	v, ok := c.Next()
	fmt.Println(v, ok)

	// Output:
	// 3
	// 2
	// 1
	// 0 false
}

func ExampleNewCounter_badStart() {
	_, err := iterate.NewCounter(0)
	fmt.Println(err)

	// Output:
	// iterate: countdown start must be at least 1
}

func ExampleCountdown() {
	for v := range iterate.Countdown(5) {
		fmt.Println(v)
	}

	// Output:
	// 5
	// 4
	// 3
	// 2
	// 1
}

func ExampleFib() {
	fmt.Println(slices.Collect(iterate.Fib(8)))

	// Output:
	// [0 1 1 2 3 5 8 13]
}

func ExampleTake() {
	fmt.Println(slices.Collect(iterate.Take(iterate.Naturals(), 5)))

	// Output:
	// [0 1 2 3 4]
}

func ExampleLines() {
	shopping := "eggs\nflour\nbutter\n"

	for line := range iterate.Lines(strings.NewReader(shopping)) {
		fmt.Println("buy", line)
	}

	// Output:
	// buy eggs
	// buy flour
	// buy butter
}

// Pull turns a push iterator into a next function, handy when a loop
// is the wrong shape for the consumer.
func Example_pull() {
	next, stop := iter.Pull(iterate.Countdown(3))
	defer stop()

	for {
		v, ok := next()
		if !ok {
			break
		}
		fmt.Println(v)
	}

	// Output:
	// 3
	// 2
	// 1
}
