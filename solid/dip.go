package solid

import (
	"errors"
	"fmt"
	"io"
)

// ErrNilSender rejects building a Notifier without a Sender.
var ErrNilSender = errors.New("solid: nil Sender")

// A Sender delivers a message somewhere. Notifier depends on this
// interface; the concrete transport is injected.
type Sender interface {
	Send(to, msg string) error
}

// A ConsoleSender writes messages to a writer, one per line.
type ConsoleSender struct {
	W io.Writer
}

func (c ConsoleSender) Send(to, msg string) error {
	_, err := fmt.Fprintf(c.W, "to %s: %s\n", to, msg)
	return err
}

// A MemorySender records messages. Tests swap it in without touching
// Notifier.
type MemorySender struct {
	Sent []string
}

func (m *MemorySender) Send(to, msg string) error {
	m.Sent = append(m.Sent, to+": "+msg)
	return nil
}

// A Notifier formats alerts and hands them to whatever Sender it was
// built with.
type Notifier struct {
	sender Sender
}

// NewNotifier builds a Notifier around the given transport.
func NewNotifier(s Sender) (*Notifier, error) {
	if s == nil {
		return nil, ErrNilSender
	}
	return &Notifier{sender: s}, nil
}

// Alert notifies user about event.
func (n *Notifier) Alert(user, event string) error {
	return n.sender.Send(user, "alert: "+event)
}
