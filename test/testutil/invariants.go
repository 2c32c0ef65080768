package testutil

import (
	"testing"

	"github.com/arloliu/placer/types"
)

// AssertBatchInvariants verifies the accounting and safety invariants of a batch result.
//
// Checked invariants:
//   - No slot holds more requests than its capacity
//   - Sum of slot loads == Accepted == number of ACCEPTED outcomes
//   - TotalRequests == len(Results)
//   - Retries == sum of (attempts - 1)
//   - 1 <= attempts <= maxAttempts; FAILED outcomes use exactly maxAttempts and server "none"
//   - Every accepted request appears exactly once, on the slot its outcome names
//
// Parameters:
//   - t: testing handle
//   - result: batch result to check
//   - maxAttempts: retry ceiling the batch ran with
func AssertBatchInvariants(t *testing.T, result *types.BatchResult, maxAttempts int) {
	t.Helper()

	if result == nil {
		t.Fatalf("batch result is nil")
	}

	placedOn := make(map[string]string)
	load := 0
	for _, slot := range result.Servers {
		if len(slot.Requests) > slot.MaxCapacity {
			t.Fatalf("server %s holds %d requests, capacity %d", slot.Name, len(slot.Requests), slot.MaxCapacity)
		}
		load += len(slot.Requests)
		for _, id := range slot.Requests {
			if prev, ok := placedOn[id]; ok {
				t.Fatalf("request %s placed on both %s and %s", id, prev, slot.Name)
			}
			placedOn[id] = slot.Name
		}
	}

	accepted := 0
	retries := 0
	for _, r := range result.Results {
		if r.Attempts < 1 || r.Attempts > maxAttempts {
			t.Fatalf("request %s used %d attempts, want 1..%d", r.Request, r.Attempts, maxAttempts)
		}
		retries += r.Attempts - 1

		switch r.Status {
		case types.StatusAccepted:
			accepted++
			if placedOn[r.Request] != r.Server {
				t.Fatalf("request %s reported on %s but found on %q", r.Request, r.Server, placedOn[r.Request])
			}
		case types.StatusFailed:
			if r.Attempts != maxAttempts {
				t.Fatalf("failed request %s used %d attempts, want exactly %d", r.Request, r.Attempts, maxAttempts)
			}
			if r.Server != types.NoServer {
				t.Fatalf("failed request %s reports server %q, want %q", r.Request, r.Server, types.NoServer)
			}
		default:
			t.Fatalf("request %s has unknown status %q", r.Request, r.Status)
		}
	}

	if result.TotalRequests != len(result.Results) {
		t.Fatalf("total_requests (%d) does not equal number of results (%d)", result.TotalRequests, len(result.Results))
	}
	if result.Accepted != accepted {
		t.Fatalf("accepted (%d) does not equal ACCEPTED outcomes (%d)", result.Accepted, accepted)
	}
	if load != accepted {
		t.Fatalf("sum of server loads (%d) does not equal ACCEPTED outcomes (%d)", load, accepted)
	}
	if result.Retries != retries {
		t.Fatalf("retries (%d) does not equal sum of attempts-1 (%d)", result.Retries, retries)
	}
}
