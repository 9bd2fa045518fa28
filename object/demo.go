package object

import "github.com/b97tsk/primer"

// Demo narrates the object lesson.
func Demo(c *primer.Console) error {
	c.Say("An account with an unexported balance, opened with options:")

	acct := NewAccount("Ada", WithBalance(10_00), WithOverdraft(5_00))
	c.Say("  %s opens with %d cents", acct.Holder(), acct.Balance())

	if err := acct.Deposit(2_50); err != nil {
		return err
	}
	c.Say("  after deposit: %d", acct.Balance())

	if err := acct.Withdraw(20_00); err != nil {
		c.Say("  big withdrawal refused: %v", err)
	}
	if err := acct.Withdraw(15_00); err != nil {
		return err
	}
	c.Say("  overdraft in use: %d", acct.Balance())

	c.Say("")
	c.Say("Embedding and interfaces:")
	for _, line := range Chorus(NewDog("Rex"), NewCat("Cleo"), Robot{ID: "R2"}) {
		c.Say("  %s", line)
	}
	c.Say("  %s", NewDog("Rex").Fetch("stick"))

	return nil
}
