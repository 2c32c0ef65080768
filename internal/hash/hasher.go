// Package hash provides the placement key hasher and slot index reduction.
package hash

import (
	"github.com/zeebo/xxh3"

	"github.com/arloliu/placer/types"
)

// Hasher hashes placement keys with XXH3.
//
// The 64-bit digest is reinterpreted as a signed integer, so roughly half of
// all keys hash to a negative value. Index normalizes those into range.
type Hasher struct {
	// seed for hash function (0 means no seed)
	seed uint64
}

// Compile-time assertion that Hasher implements KeyHasher.
var _ types.KeyHasher = (*Hasher)(nil)

// New creates a new XXH3 key hasher.
//
// Unlike a process-randomized string hash, the result depends only on the key
// and the seed, so placements are reproducible across processes.
//
// Parameters:
//   - seed: Seed for hash function (0 for the unseeded XXH3 variant)
//
// Returns:
//   - *Hasher: Initialized hasher
//
// Example:
//
//	h := hash.New(0)
//	idx := hash.Index(h.Hash("Request_A"), 4)
func New(seed uint64) *Hasher {
	return &Hasher{seed: seed}
}

// Hash computes a signed 64-bit hash of the key.
func (h *Hasher) Hash(key string) int64 {
	if h.seed != 0 {
		return int64(xxh3.HashStringSeed(key, h.seed)) //nolint:gosec
	}

	return int64(xxh3.HashString(key)) //nolint:gosec
}

// Seed returns the configured seed.
func (h *Hasher) Seed() uint64 {
	return h.seed
}

// Index reduces a hash value to a slot index in [0, n).
//
// Go's remainder keeps the sign of the dividend, so negative hashes are
// shifted back into range. n must be positive; Index returns -1 otherwise.
//
// Parameters:
//   - h: Hash value (may be negative)
//   - n: Number of slots
//
// Returns:
//   - int: Slot index in [0, n), or -1 if n < 1
func Index(h int64, n int) int {
	if n < 1 {
		return -1
	}

	idx := h % int64(n)
	if idx < 0 {
		idx += int64(n)
	}

	return int(idx)
}
