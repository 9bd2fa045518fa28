// Package strategy picks a payment behavior at runtime. Checkout only
// knows the Processor interface; card, PayPal and wire implementations
// slot in without it changing.
package strategy

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNonPositiveAmount rejects checkouts of zero or negative amounts.
var ErrNonPositiveAmount = errors.New("strategy: amount must be positive")

// An AmountTooSmallError reports a payment below a processor's
// minimum.
type AmountTooSmallError struct {
	Min int64 // Minimum amount, in cents.
	Got int64 // Offered amount, in cents.
}

func (e *AmountTooSmallError) Error() string {
	return "amount " + strconv.FormatInt(e.Got, 10) +
		" below minimum " + strconv.FormatInt(e.Min, 10)
}

// A Receipt records a completed payment.
type Receipt struct {
	Method string // Human-readable method, e.g. "card ****4242".
	Cents  int64
}

// A Processor is one way to move money. Checkout accepts any of them.
type Processor interface {
	Name() string
	Pay(cents int64) (Receipt, error)
}

// Card pays by stored card.
type Card struct {
	Last4 string
}

func (c Card) Name() string { return "card" }

func (c Card) Pay(cents int64) (Receipt, error) {
	return Receipt{Method: "card ****" + c.Last4, Cents: cents}, nil
}

// PayPal pays from a PayPal account.
type PayPal struct {
	Email string
}

func (p PayPal) Name() string { return "paypal" }

func (p PayPal) Pay(cents int64) (Receipt, error) {
	return Receipt{Method: "paypal " + p.Email, Cents: cents}, nil
}

// Wire pays by bank transfer. Wires below the minimum are refused
// with an *AmountTooSmallError.
type Wire struct {
	MinCents int64
}

func (w Wire) Name() string { return "wire" }

func (w Wire) Pay(cents int64) (Receipt, error) {
	if cents < w.MinCents {
		return Receipt{}, &AmountTooSmallError{Min: w.MinCents, Got: cents}
	}
	return Receipt{Method: "wire transfer", Cents: cents}, nil
}

// Checkout validates the amount and hands it to the processor.
// Processor errors come back wrapped with the processor's name.
func Checkout(p Processor, cents int64) (Receipt, error) {
	if cents <= 0 {
		return Receipt{}, ErrNonPositiveAmount
	}
	r, err := p.Pay(cents)
	if err != nil {
		return Receipt{}, fmt.Errorf("strategy: %s: %w", p.Name(), err)
	}
	return r, nil
}

// Dollars renders cents as a dollar string, e.g. 1999 to "$19.99".
func Dollars(cents int64) string {
	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
