// Package pool builds the fixed set of server slots for a batch run.
//
// Two scaling modes are supported, both with a total capacity of 12:
//
//   - horizontal: 6 servers with capacity 2 each (enlarged pool)
//   - vertical:   4 servers with capacity 3 each (baseline)
//
// Any selector other than "horizontal" resolves to the baseline shape. Every
// call returns a freshly allocated pool, so concurrent runs never share slot
// state.
package pool
