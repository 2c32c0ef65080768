package types

// PlacementResolver places a single request onto a server pool.
//
// The batch orchestrator calls Resolve once per request in batch order.
// Implementations mutate the pool on success and must never push a slot
// past its capacity.
//
// Implementations should:
//   - Be deterministic for a given hasher and pool state
//   - Report exhaustion in-band as a FAILED outcome, not as an error
//   - Return an error only for unusable input (e.g., an empty pool)
type PlacementResolver interface {
	// Resolve places requestID onto pool.
	//
	// Parameters:
	//   - requestID: Request identity
	//   - pool: Live pool for the current run (mutated on success)
	//
	// Returns:
	//   - AssignmentOutcome: Placement result
	//   - error: Precondition violation (e.g., empty pool)
	Resolve(requestID string, pool *ServerPool) (AssignmentOutcome, error)
}

// KeyHasher computes a hash for a placement key.
//
// Any stable, deterministic string hash is acceptable. The result may be
// negative; callers normalize it into a slot index.
type KeyHasher interface {
	Hash(key string) int64
}

// KeyHasherFunc adapts a plain function to KeyHasher.
type KeyHasherFunc func(key string) int64

// Hash calls f(key).
func (f KeyHasherFunc) Hash(key string) int64 {
	return f(key)
}
