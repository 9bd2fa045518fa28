package main

import (
	"github.com/b97tsk/primer"
	"github.com/b97tsk/primer/decorate"
	"github.com/b97tsk/primer/iterate"
	"github.com/b97tsk/primer/object"
	"github.com/b97tsk/primer/pattern/observer"
	"github.com/b97tsk/primer/pattern/singleton"
	"github.com/b97tsk/primer/pattern/strategy"
	"github.com/b97tsk/primer/sched"
	"github.com/b97tsk/primer/solid"
)

// buildCatalog registers every lesson, in course order. Wiring is
// explicit; adding a lesson means adding an entry here.
func buildCatalog() *primer.Catalog {
	cat := primer.NewCatalog()

	cat.MustAdd(primer.Lesson{
		Code:   "iterate",
		Title:  "Iterators and Generators",
		Brief:  "hand-rolled iterators, iter.Seq, and lazy sequences",
		Topics: []string{"iter.Seq", "iter.Pull", "bufio.Scanner"},
		Demo:   iterate.Demo,
	})
	cat.MustAdd(primer.Lesson{
		Code:   "object",
		Title:  "Objects Without Classes",
		Brief:  "constructors, methods, embedding, interfaces, options",
		Topics: []string{"embedding", "interfaces", "functional options"},
		Demo:   object.Demo,
	})
	cat.MustAdd(primer.Lesson{
		Code:   "observer",
		Title:  "The Observer Pattern",
		Brief:  "a synchronous subject and a channel-backed feed",
		Topics: []string{"observer", "channels", "generics"},
		Demo:   observer.Demo,
	})
	cat.MustAdd(primer.Lesson{
		Code:   "singleton",
		Title:  "The Singleton Pattern",
		Brief:  "sync.Once, a process-wide logger, and Lazy cells",
		Topics: []string{"sync.Once", "zap"},
		Demo:   singleton.Demo,
	})
	cat.MustAdd(primer.Lesson{
		Code:   "strategy",
		Title:  "The Strategy Pattern",
		Brief:  "swappable payment processors behind one interface",
		Topics: []string{"interfaces", "errors.As"},
		Demo:   strategy.Demo,
	})
	cat.MustAdd(primer.Lesson{
		Code:   "solid",
		Title:  "SOLID, One Letter at a Time",
		Brief:  "five principles, five small casts of types",
		Topics: []string{"SRP", "OCP", "LSP", "ISP", "DIP"},
		Demo:   solid.Demo,
	})
	cat.MustAdd(primer.Lesson{
		Code:   "decorate",
		Title:  "Decorators",
		Brief:  "wrapping functions in logging, counting and caches",
		Topics: []string{"closures", "generics", "memoization"},
		Demo:   decorate.Demo,
	})
	cat.MustAdd(primer.Lesson{
		Code:   "sched",
		Title:  "A Cooperative Event Loop",
		Brief:  "procs, virtual time, gather, and a weighted semaphore",
		Topics: []string{"event loop", "virtual clock", "semaphore"},
		Demo:   sched.Demo,
	})

	return cat
}
