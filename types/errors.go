package types

import "errors"

// Sentinel errors for the placer library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// Components wrap them with context using fmt.Errorf("%s: %w", msg, err).
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyPool is returned when a pool has no slots to place requests on.
	ErrEmptyPool = errors.New("server pool has no slots")

	// ErrInvalidCapacity is returned when a slot capacity is not positive.
	ErrInvalidCapacity = errors.New("server capacity must be positive")

	// ErrRequestSourceRequired is returned when the request source is nil.
	ErrRequestSourceRequired = errors.New("request source is required")

	// ErrResolverRequired is returned when the placement resolver is nil.
	ErrResolverRequired = errors.New("placement resolver is required")
)
