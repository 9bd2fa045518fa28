// Package solid walks the five SOLID principles with one small,
// runnable cast of types per letter.
//
//   - S: Report content, formatting and storage are three types, not one.
//   - O: TotalArea sums any Shape; new shapes extend it without edits.
//   - L: Square refuses the Resizable contract instead of breaking it.
//   - I: Printer and Scanner stay separate; devices pick what they do.
//   - D: Notifier depends on a Sender interface, not on a transport.
package solid
