// Package testutil provides shared assertions for placer tests.
//
// The helpers check the safety and accounting invariants every batch result
// must satisfy, independent of which hasher or pool shape produced it.
package testutil
