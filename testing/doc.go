// Package testing provides test utilities for the placer library.
//
// It follows Go's convention of shipping testing helpers in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: Logger that writes through testing.TB
//   - FNVHasher: Stable FNV-1a KeyHasher for exact-outcome assertions
//   - NewEngine: Engine wired with the test configuration
//
// Example usage:
//
//	import (
//	    "testing"
//	    placertest "github.com/arloliu/placer/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    eng := placertest.NewEngine(t)
//	    result, err := eng.Run(context.Background(), "vertical")
//	    // ...
//	}
package testing
