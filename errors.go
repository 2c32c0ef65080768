package placer

import "github.com/arloliu/placer/types"

// Sentinel errors returned by the Engine.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrEmptyPool is returned when a pool shape has no slots.
	ErrEmptyPool = types.ErrEmptyPool

	// ErrInvalidCapacity is returned when a pool shape has non-positive capacity.
	ErrInvalidCapacity = types.ErrInvalidCapacity

	// ErrRequestSourceRequired is returned when a nil request source is injected.
	ErrRequestSourceRequired = types.ErrRequestSourceRequired
)
