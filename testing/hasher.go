package testing

import (
	"hash/fnv"

	"github.com/arloliu/placer/types"
)

// FNVHasher returns a KeyHasher backed by 64-bit FNV-1a.
//
// FNV-1a is trivial to reproduce in any language, which makes it convenient
// for tests that assert the exact server and attempt count of each request.
// Production code uses the XXH3 hasher from placement.NewRehash.
func FNVHasher() types.KeyHasher {
	return types.KeyHasherFunc(func(key string) int64 {
		h := fnv.New64a()
		_, _ = h.Write([]byte(key))

		return int64(h.Sum64()) //nolint:gosec // reinterpretation is intended
	})
}
