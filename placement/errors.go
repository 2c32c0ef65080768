package placement

import "github.com/arloliu/placer/types"

// ErrEmptyPool indicates that no slots were provided for placement.
var ErrEmptyPool = types.ErrEmptyPool
