// Package types provides core type definitions and interfaces for the placer library.
//
// This package contains shared types that are used across multiple packages in the
// placer library. By keeping these types in a separate package, the pool builder,
// placement resolver and batch orchestrator can depend on them without depending
// on the root placer package.
//
// Key types:
//   - ScalingMode: Selector choosing between the enlarged and baseline pool shapes
//   - ServerSlot / ServerPool: Capacity-bounded server slots for a single run
//   - RequestRecord: Immutable request identity and batch position
//   - AssignmentOutcome / BatchResult: Per-request and per-batch results
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
