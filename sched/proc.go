package sched

const (
	doEnd = iota
	doYield
	doSwitch
)

const (
	flagStale = 1 << iota
	flagWoken
	flagEnded
)

// A Proc is an execution of code, similar to a goroutine but cooperative
// and stackless.
//
// A Proc is created with a function called [Task].
// A Proc's job is to complete it.
// When a [Loop] spawns a Proc, it runs the Proc by calling the Task
// function with the Proc as the argument.
// The return value determines whether to end the Proc or to yield it so
// that it could resume later.
//
// In order for a Proc to resume, the Proc must watch at least one
// [Event] when calling the Task function.
// A notification of such an Event resumes the Proc.
// When a Proc is resumed, the Loop runs the Proc again.
//
// A Proc can also switch to work on another Task function according to
// the return value of the Task function.
// A Proc can switch from one Task to another until a Task ends it.
type Proc struct {
	loop *Loop
	name string
	task Task
	flag uint8
	deps map[Event]bool
}

// Loop returns the [Loop] that spawned p.
func (p *Proc) Loop() *Loop {
	return p.loop
}

// Name returns the name that p was spawned with.
// Procs spawned by [Gather] get derived names, e.g. "demo.1".
func (p *Proc) Name() string {
	return p.name
}

func (p *Proc) wake() {
	flag := p.flag
	if flag&flagEnded != 0 {
		return
	}

	if flag&flagWoken != 0 {
		p.flag = flag | flagStale
		return
	}

	p.flag = flag | flagStale | flagWoken
	p.loop.schedule(p)
}

func (p *Proc) run() {
	{
		deps := p.deps
		for d := range deps {
			deps[d] = false
		}
	}

	var res Result

	for {
		p.flag &^= flagStale | flagEnded

		res = p.task(p)

		if res.task != nil {
			p.task = res.task
		}

		if res.action != doSwitch {
			break
		}

		p.clearDeps()
	}

	if res.action != doEnd {
		deps := p.deps
		for d, inUse := range deps {
			if !inUse {
				delete(deps, d)
				d.removeListener(p)
			}
		}
	}

	if res.action == doEnd || len(p.deps) == 0 {
		p.end()
	}
}

func (p *Proc) end() {
	if p.flag&flagEnded != 0 {
		return
	}

	p.flag |= flagEnded

	p.clearDeps()
}

func (p *Proc) clearDeps() {
	deps := p.deps
	for d := range deps {
		delete(deps, d)
		d.removeListener(p)
	}
}

// Watch watches some Events so that, when any of them notifies, p
// resumes.
//
// Watches only last until the current [Task] yields or ends. A Task
// that keeps watching an Event across runs must call Watch on every
// run.
func (p *Proc) Watch(s ...Event) {
	deps := p.deps
	if deps == nil {
		deps = make(map[Event]bool)
		p.deps = deps
	}

	for _, d := range s {
		if _, ok := deps[d]; ok {
			deps[d] = true
			continue
		}

		deps[d] = true
		d.addListener(p)
	}
}

// Result is the type of the return value of a [Task] function.
// A Result determines what next for a [Proc] to do after calling a Task
// function.
//
// A Result can be created by calling one of the following methods of
// Proc:
//   - [Proc.End]: for ending a Proc;
//   - [Proc.Await]: for yielding a Proc with additional Events to watch;
//   - [Proc.Yield]: for yielding a Proc with another Task to which will
//     be switched later when resuming;
//   - [Proc.Switch]: for switching to another Task.
type Result struct {
	action int
	task   Task
}

// End returns a [Result] that will cause p to end or switch to work on
// another [Task] in a [Block].
func (p *Proc) End() Result {
	return Result{action: doEnd}
}

// Await returns a [Result] that will cause p to yield.
// Await also accepts additional Events to be awaited for.
//
// A yield with nothing watched cannot be woken; the [Loop] retires such
// a Proc as if it had ended.
func (p *Proc) Await(s ...Event) Result {
	if len(s) != 0 {
		p.Watch(s...)
	}
	return Result{action: doYield}
}

// Yield returns a [Result] that will cause p to yield.
// t becomes the current Task of p so that, when p is resumed, t is
// called instead.
func (p *Proc) Yield(t Task) Result {
	if t == nil {
		panic("Yield(nil): undefined behavior")
	}
	return Result{action: doYield, task: t}
}

// Switch returns a [Result] that will cause p to switch to work on t.
// p will be reset and t will be called immediately as the current Task
// of p.
func (p *Proc) Switch(t Task) Result {
	if t == nil {
		panic("Switch(nil): undefined behavior")
	}
	return Result{action: doSwitch, task: t}
}

// A Task is a piece of work that a [Proc] is given to do when it is
// spawned.
// The return value of a Task, a [Result], determines what next for
// a Proc to do.
type Task func(p *Proc) Result
