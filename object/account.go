// Package object tours Go's object model: constructor functions,
// unexported state behind methods, functional options, embedding for
// reuse, and interfaces for polymorphism.
package object

import (
	"errors"
	"strconv"
)

// ErrNonPositiveAmount rejects deposits and withdrawals of zero or
// negative amounts.
var ErrNonPositiveAmount = errors.New("object: amount must be positive")

// An InsufficientFundsError reports a withdrawal that the balance,
// including any overdraft allowance, cannot cover.
type InsufficientFundsError struct {
	Balance   int64 // Balance at the time of the withdrawal, in cents.
	Requested int64 // Requested amount, in cents.
}

func (e *InsufficientFundsError) Error() string {
	return "object: insufficient funds: have " + strconv.FormatInt(e.Balance, 10) +
		", want " + strconv.FormatInt(e.Requested, 10)
}

// An Account is a bank account holding cents. The balance is
// unexported; it only moves through Deposit and Withdraw.
type Account struct {
	holder    string
	balance   int64
	overdraft int64
}

// An AccountOption configures an Account at construction time.
type AccountOption func(*Account)

// WithBalance opens the account with an initial balance, in cents.
func WithBalance(cents int64) AccountOption {
	return func(a *Account) { a.balance = cents }
}

// WithOverdraft lets the balance go below zero by up to limit cents.
func WithOverdraft(limit int64) AccountOption {
	return func(a *Account) { a.overdraft = limit }
}

// NewAccount opens an account for the named holder.
func NewAccount(holder string, opts ...AccountOption) *Account {
	a := &Account{holder: holder}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Holder returns the name the account was opened for.
func (a *Account) Holder() string { return a.holder }

// Balance returns the current balance, in cents.
func (a *Account) Balance() int64 { return a.balance }

// Deposit adds cents to the balance.
func (a *Account) Deposit(cents int64) error {
	if cents <= 0 {
		return ErrNonPositiveAmount
	}
	a.balance += cents
	return nil
}

// Withdraw removes cents from the balance. It fails with an
// *InsufficientFundsError when the balance plus the overdraft
// allowance cannot cover the amount; the balance is left untouched.
func (a *Account) Withdraw(cents int64) error {
	if cents <= 0 {
		return ErrNonPositiveAmount
	}
	if a.balance-cents < -a.overdraft {
		return &InsufficientFundsError{Balance: a.balance, Requested: cents}
	}
	a.balance -= cents
	return nil
}
