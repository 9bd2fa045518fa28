package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b97tsk/primer/object"
)

func TestAccount(t *testing.T) {
	t.Parallel()

	t.Run("Deposit", func(t *testing.T) {
		acct := object.NewAccount("Ada")

		require.NoError(t, acct.Deposit(100))
		assert.Equal(t, int64(100), acct.Balance())

		assert.ErrorIs(t, acct.Deposit(0), object.ErrNonPositiveAmount)
		assert.ErrorIs(t, acct.Deposit(-5), object.ErrNonPositiveAmount)
		assert.Equal(t, int64(100), acct.Balance(), "failed deposits must not move the balance")
	})

	t.Run("Withdraw", func(t *testing.T) {
		acct := object.NewAccount("Ada", object.WithBalance(500))

		require.NoError(t, acct.Withdraw(200))
		assert.Equal(t, int64(300), acct.Balance())

		err := acct.Withdraw(400)
		var insufficient *object.InsufficientFundsError
		require.ErrorAs(t, err, &insufficient)
		assert.Equal(t, int64(300), insufficient.Balance)
		assert.Equal(t, int64(400), insufficient.Requested)
		assert.EqualError(t, err, "object: insufficient funds: have 300, want 400")
		assert.Equal(t, int64(300), acct.Balance(), "failed withdrawals must not move the balance")

		assert.ErrorIs(t, acct.Withdraw(0), object.ErrNonPositiveAmount)
	})

	t.Run("Overdraft", func(t *testing.T) {
		acct := object.NewAccount("Ada", object.WithBalance(100), object.WithOverdraft(50))

		require.NoError(t, acct.Withdraw(150))
		assert.Equal(t, int64(-50), acct.Balance())

		err := acct.Withdraw(1)
		var insufficient *object.InsufficientFundsError
		assert.ErrorAs(t, err, &insufficient)
	})
}

func TestSpeakers(t *testing.T) {
	t.Parallel()

	lines := object.Chorus(
		object.NewDog("Rex"),
		object.NewCat("Cleo"),
		object.Robot{ID: "R2"},
	)
	assert.Equal(t, []string{
		"Rex says woof!",
		"Cleo says meow",
		"R2 says beep",
	}, lines)

	assert.Empty(t, object.Chorus())

	assert.Equal(t, "Rex fetches the ball", object.NewDog("Rex").Fetch("ball"))
}
