package decorate

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/b97tsk/primer"
)

// Demo narrates the decorator lesson.
func Demo(c *primer.Console) error {
	cfg := zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "  ",
	}
	log := zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(c.Writer()), zap.InfoLevel))

	c.Say("Logged wraps a function without touching it:")
	square := Logged(log, "square", func(n int) int { return n * n })
	c.Say("  square(7) = %d", square(7))

	c.Say("")
	c.Say("Memoize turns exponential fib into linear:")

	calls := 0
	var fib func(int) int
	fib = func(n int) int {
		calls++
		if n < 2 {
			return n
		}
		return fib(n-1) + fib(n-2)
	}
	fib = Memoize(fib)

	c.Say("  fib(30) = %d after %d calls", fib(30), calls)

	c.Say("")
	counted, count := Counted(func(n int) int { return n + 1 })
	counted(1)
	counted(2)
	c.Say("Counted saw %d calls", count.Load())

	return nil
}
