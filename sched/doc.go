// Package sched implements a single-threaded event loop for cooperative
// multitasking on a virtual clock.
//
// A [Loop] runs procs. A proc is an execution of code, similar to a
// goroutine but cooperative and stackless. Procs never run in parallel.
// If one proc blocks, no other procs can run. The best practice is not
// to block.
//
// # Procs Run To Completion, Then Yield
//
// A proc is spawned with a [Task] function. The loop runs the proc by
// calling the Task function with a [Proc] as the argument. The return
// value, a [Result], determines whether the proc ends, yields, or
// switches to another Task.
//
// In order for a proc to resume after a yield, it must watch at least
// one [Event], which can be a [Signal], a [State], a [Timer], or
// a [WaitGroup]. A notification of such an Event resumes the proc.
// A yield with nothing watched cannot be woken; the loop retires such
// a proc as if it had ended.
//
// # Virtual Time
//
// The loop keeps its own clock. It starts at zero and only moves when
// there is nothing left to run, jumping straight to the due time of the
// earliest pending [Timer]. Sleeping costs no wall time; a minute-long
// schedule plays back in microseconds, and every run of the same program
// produces the same interleaving.
//
// # No Cancellation
//
// Procs cannot be canceled from outside. A proc runs until a Task ends
// it, or forever if it keeps yielding. It is fine to let a proc rot in
// the background watching an Event that never notifies; when nothing
// references the Event anymore, the Go runtime garbage collects both.
package sched
