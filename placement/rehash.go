package placement

import (
	"strconv"

	"github.com/arloliu/placer/internal/hash"
	"github.com/arloliu/placer/internal/logger"
	"github.com/arloliu/placer/types"
)

// DefaultMaxAttempts is the retry ceiling: the number of hash probes a request
// may consume before it is reported as FAILED.
const DefaultMaxAttempts = 10

// Rehash implements open-addressing placement with rehash-on-collision.
type Rehash struct {
	maxAttempts int
	hasher      types.KeyHasher
	logger      types.Logger
}

var _ types.PlacementResolver = (*Rehash)(nil)

// RehashOption configures a Rehash resolver.
type RehashOption func(*Rehash)

// NewRehash creates a new rehash placement resolver.
//
// Parameters:
//   - opts: Optional configuration (WithMaxAttempts, WithHasher, WithHashSeed, WithLogger)
//
// Returns:
//   - *Rehash: Initialized resolver (XXH3, unseeded, 10 attempts by default)
//
// Example:
//
//	resolver := placement.NewRehash(
//	    placement.WithHashSeed(42),
//	)
//	outcome, err := resolver.Resolve("Request_A", p)
func NewRehash(opts ...RehashOption) *Rehash {
	r := &Rehash{
		maxAttempts: DefaultMaxAttempts,
		hasher:      hash.New(0),
		logger:      logger.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// WithMaxAttempts sets the retry ceiling.
//
// Values below 1 are ignored and the default of 10 is kept.
//
// Parameters:
//   - attempts: Maximum number of hash probes per request
//
// Returns:
//   - RehashOption: Configuration option
func WithMaxAttempts(attempts int) RehashOption {
	return func(r *Rehash) {
		if attempts >= 1 {
			r.maxAttempts = attempts
		}
	}
}

// WithHasher replaces the key hasher. A nil hasher is ignored.
func WithHasher(h types.KeyHasher) RehashOption {
	return func(r *Rehash) {
		if h != nil {
			r.hasher = h
		}
	}
}

// WithHashSeed uses the XXH3 hasher with the given seed.
func WithHashSeed(seed uint64) RehashOption {
	return func(r *Rehash) {
		r.hasher = hash.New(seed)
	}
}

// WithLogger sets the logger used for probe-level debug output. A nil logger is ignored.
func WithLogger(l types.Logger) RehashOption {
	return func(r *Rehash) {
		if l != nil {
			r.logger = l
		}
	}
}

// MaxAttempts returns the configured retry ceiling.
func (r *Rehash) MaxAttempts() int {
	return r.maxAttempts
}

// Resolve places a request onto the pool.
//
// The algorithm:
//  1. Build the lookup key: the identity on the first attempt, RetryKey(id, k) afterwards
//  2. Hash the key and reduce it into [0, N)
//  3. If the candidate slot has room, append the request and return ACCEPTED
//  4. Otherwise count the attempt; at the ceiling return FAILED with server "none"
//
// Parameters:
//   - requestID: Request identity
//   - pool: Live pool for the current run (the chosen slot is mutated on success)
//
// Returns:
//   - types.AssignmentOutcome: ACCEPTED with 1..max attempts, or FAILED with exactly max attempts
//   - error: ErrEmptyPool if the pool is nil or has no slots
func (r *Rehash) Resolve(requestID string, pool *types.ServerPool) (types.AssignmentOutcome, error) {
	n := pool.Size()
	if n == 0 {
		return types.AssignmentOutcome{}, ErrEmptyPool
	}

	attempt := 0
	for {
		idx := hash.Index(r.hasher.Hash(RetryKey(requestID, attempt)), n)
		slot := pool.Slot(idx)

		if slot.Accept(requestID) {
			return types.AssignmentOutcome{
				Request:  requestID,
				Server:   slot.Name,
				Attempts: attempt + 1,
				Status:   types.StatusAccepted,
			}, nil
		}

		r.logger.Debug("server full, rehashing",
			"request", requestID,
			"attempt", attempt+1,
			"server", slot.Name,
			"capacity", slot.MaxCapacity,
		)

		attempt++
		if attempt >= r.maxAttempts {
			return types.AssignmentOutcome{
				Request:  requestID,
				Server:   types.NoServer,
				Attempts: attempt,
				Status:   types.StatusFailed,
			}, nil
		}
	}
}

// RetryKey returns the hash key for the given attempt.
//
// Attempt 0 uses the identity verbatim; attempt k > 0 appends "_retry<k>".
//
// Example:
//
//	RetryKey("Request_A", 0) // "Request_A"
//	RetryKey("Request_A", 3) // "Request_A_retry3"
func RetryKey(requestID string, attempt int) string {
	if attempt == 0 {
		return requestID
	}

	return requestID + "_retry" + strconv.Itoa(attempt)
}
