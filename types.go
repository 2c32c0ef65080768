package placer

import "github.com/arloliu/placer/types"

// Re-export types from the types package.
//
// The subpackages depend on `types` rather than on the root package, which
// keeps the import graph acyclic while still offering `placer.BatchResult`,
// `placer.Logger`, etc. to users.
type (
	ScalingMode       = types.ScalingMode
	ServerSlot        = types.ServerSlot
	ServerPool        = types.ServerPool
	RequestRecord     = types.RequestRecord
	Status            = types.Status
	AssignmentOutcome = types.AssignmentOutcome
	BatchResult       = types.BatchResult
)

// Re-export interfaces from the types package for convenience.
type (
	PlacementResolver = types.PlacementResolver
	RequestSource     = types.RequestSource
	KeyHasher         = types.KeyHasher
	MetricsCollector  = types.MetricsCollector
	Logger            = types.Logger
)

// Re-export constants from the types package.
const (
	ScalingHorizontal = types.ScalingHorizontal
	ScalingVertical   = types.ScalingVertical
	StatusAccepted    = types.StatusAccepted
	StatusFailed      = types.StatusFailed
	NoServer          = types.NoServer
)
