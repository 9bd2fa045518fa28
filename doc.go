// Package primer is a course of runnable Go lessons.
//
// Each lesson is a tiny library plus a narrated demo: iterators and
// the iter package, methods and embedding, classic design patterns,
// the SOLID principles, function decorators, and a cooperative event
// loop on a virtual clock.
//
// The lessons live in their own packages and stand on their own; this
// package is the frame around them. A [Catalog] holds [Lesson]
// entries, a [Runner] plays them through a [Console], and Verify
// replays every demo twice to prove the transcripts identical.
//
// The primer command in cmd/primer wires the catalog and drives it
// from the command line:
//
//	primer list
//	primer run iterate sched
//	primer run --all
//	primer verify
package primer
