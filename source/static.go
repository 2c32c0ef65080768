package source

import (
	"context"
	"sync"

	"github.com/arloliu/placer/types"
)

// DefaultRequestCount is the size of the reference batch.
const DefaultRequestCount = 10

// DefaultRequests returns the reference batch "Request_A" .. "Request_J".
//
// Each call returns a new slice; positions run from 0 to 9.
func DefaultRequests() []types.RequestRecord {
	ids := make([]string, DefaultRequestCount)
	for i := range ids {
		ids[i] = "Request_" + string(rune('A'+i))
	}

	return Records(ids...)
}

// Records turns identities into RequestRecords, numbering them in order.
func Records(ids ...string) []types.RequestRecord {
	records := make([]types.RequestRecord, len(ids))
	for i, id := range ids {
		records[i] = types.RequestRecord{ID: id, Position: i}
	}

	return records
}

// Static implements a request source with a fixed, ordered batch.
type Static struct {
	mu       sync.RWMutex
	requests []types.RequestRecord
}

var _ types.RequestSource = (*Static)(nil)

// NewStatic creates a new static request source.
//
// With no identities the source serves DefaultRequests.
//
// Parameters:
//   - ids: Request identities in processing order
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic("checkout", "search", "login")
//	engine, err := placer.NewEngine(&cfg, placer.WithRequestSource(src))
func NewStatic(ids ...string) *Static {
	if len(ids) == 0 {
		return &Static{requests: DefaultRequests()}
	}

	return &Static{requests: Records(ids...)}
}

// ListRequests returns a copy of the batch in processing order.
//
// Returns:
//   - []types.RequestRecord: The fixed batch
//   - error: Always nil (never fails)
func (s *Static) ListRequests(_ context.Context) ([]types.RequestRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]types.RequestRecord, len(s.requests))
	copy(result, s.requests)

	return result, nil
}

// Update replaces the batch.
//
// Runs that already listed the previous batch are unaffected.
//
// Parameters:
//   - ids: New request identities in processing order
func (s *Static) Update(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = Records(ids...)
}
