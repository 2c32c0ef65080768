package stress_test

import (
	"fmt"
	"os"
	"testing"
)

// requireStressEnabled skips the test unless long stress tests are explicitly enabled.
//
// Enable by setting environment variable PLACER_STRESS=1 when invoking `go test`.
// Example:
//
//	PLACER_STRESS=1 go test -v -timeout 20m ./test/stress
func requireStressEnabled(t *testing.T) {
	t.Helper()
	if os.Getenv("PLACER_STRESS") != "1" {
		t.Skip("Skipping long stress/perf test (set PLACER_STRESS=1 to run)")
	}
}

// requestIDs returns n distinct request identities.
func requestIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("req-%06d", i)
	}

	return ids
}
