package object_test

import (
	"fmt"

	"github.com/b97tsk/primer/object"
)

func ExampleAccount() {
	acct := object.NewAccount("Ada",
		object.WithBalance(10_00),
		object.WithOverdraft(5_00),
	)

	fmt.Println(acct.Holder(), "opens with", acct.Balance())

	if err := acct.Deposit(2_50); err != nil {
		fmt.Println("deposit:", err)
	}
	fmt.Println("after deposit:", acct.Balance())

	if err := acct.Withdraw(20_00); err != nil {
		fmt.Println("withdraw:", err)
	}

	if err := acct.Withdraw(15_00); err != nil {
		fmt.Println("withdraw:", err)
	}
	fmt.Println("after withdraw:", acct.Balance())

	// Output:
	// Ada opens with 1000
	// after deposit: 1250
	// withdraw: object: insufficient funds: have 1250, want 2000
	// after withdraw: -250
}

func ExampleChorus() {
	rex := object.NewDog("Rex")
	cleo := object.NewCat("Cleo")
	r2 := object.Robot{ID: "R2"}

	for _, line := range object.Chorus(rex, cleo, r2) {
		fmt.Println(line)
	}

	fmt.Println(rex.Fetch("stick"))

	// Output:
	// Rex says woof!
	// Cleo says meow
	// R2 says beep
	// Rex fetches the stick
}
