package primer

import (
	"fmt"
	"io"
	"time"

	"github.com/mitchellh/colorstring"
)

// A Console is what demos print through. It pins down the output
// stream, optional color, and an optional pace delay that makes live
// playback feel narrated rather than dumped.
type Console struct {
	w     io.Writer
	color bool
	pace  time.Duration
}

// A ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithColor turns colored headings on or off.
func WithColor(on bool) ConsoleOption {
	return func(c *Console) { c.color = on }
}

// WithPace makes Say pause after each line. Zero, the default, plays
// back instantly; tests and Verify leave it at zero.
func WithPace(d time.Duration) ConsoleOption {
	return func(c *Console) { c.pace = d }
}

// NewConsole builds a Console writing to w.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{w: w}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Writer exposes the underlying writer for code that needs to plug
// other printers into the same stream.
func (c *Console) Writer() io.Writer { return c.w }

// Printf prints to the console.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.w, format, args...)
}

// Println prints a line to the console.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.w, args...)
}

// Say prints one narrated line, then pauses for the pace delay.
func (c *Console) Say(format string, args ...any) {
	fmt.Fprintf(c.w, format+"\n", args...)
	if c.pace > 0 {
		time.Sleep(c.pace)
	}
}

// Head prints a section heading.
func (c *Console) Head(title string) {
	if c.color {
		fmt.Fprintln(c.w, colorstring.Color("[bold][blue]== "+title+" =="))
		return
	}
	fmt.Fprintln(c.w, "== "+title+" ==")
}
