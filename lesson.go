package primer

import (
	"errors"
	"slices"
	"strconv"
)

// A Lesson is one runnable chapter of the course.
type Lesson struct {
	Code   string   // Short unique key, e.g. "iterate".
	Title  string   // One-line heading.
	Brief  string   // A sentence for the list view.
	Topics []string // Keywords for the list view.

	// Demo plays the chapter. It must write only through the given
	// Console so that Verify can compare transcripts.
	Demo func(*Console) error
}

// ErrNoCode rejects lessons without a code.
var ErrNoCode = errors.New("primer: lesson has no code")

// ErrNilDemo rejects lessons without a demo.
var ErrNilDemo = errors.New("primer: lesson has no demo")

// A DuplicateCodeError reports a second lesson claiming a code.
type DuplicateCodeError struct {
	Code string
}

func (e *DuplicateCodeError) Error() string {
	return "primer: duplicate lesson code " + strconv.Quote(e.Code)
}

// An UnknownCodeError reports a lookup for a code no lesson has.
type UnknownCodeError struct {
	Code string
}

func (e *UnknownCodeError) Error() string {
	return "primer: unknown lesson code " + strconv.Quote(e.Code)
}

// A Catalog is an ordered collection of lessons, looked up by code.
type Catalog struct {
	lessons []Lesson
	index   map[string]int
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Add appends a lesson. It fails with [ErrNoCode], [ErrNilDemo] or a
// *DuplicateCodeError when the lesson is not fit to register.
func (c *Catalog) Add(l Lesson) error {
	if l.Code == "" {
		return ErrNoCode
	}
	if l.Demo == nil {
		return ErrNilDemo
	}
	if _, ok := c.index[l.Code]; ok {
		return &DuplicateCodeError{Code: l.Code}
	}
	c.index[l.Code] = len(c.lessons)
	c.lessons = append(c.lessons, l)
	return nil
}

// MustAdd is Add for wiring code; it panics on error.
func (c *Catalog) MustAdd(l Lesson) {
	if err := c.Add(l); err != nil {
		panic(err)
	}
}

// Get returns the lesson registered under code.
func (c *Catalog) Get(code string) (Lesson, error) {
	i, ok := c.index[code]
	if !ok {
		return Lesson{}, &UnknownCodeError{Code: code}
	}
	return c.lessons[i], nil
}

// All returns the lessons in registration order.
func (c *Catalog) All() []Lesson {
	return slices.Clone(c.lessons)
}

// Len returns the number of registered lessons.
func (c *Catalog) Len() int {
	return len(c.lessons)
}
