package types

// MetricsCollector defines methods for recording placement metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods may be called from concurrent batch runs and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	PlacementMetrics
	BatchMetrics
}

// PlacementMetrics defines metrics for single-request placement.
type PlacementMetrics interface {
	// RecordOutcome records the result of one placement.
	//
	// Parameters:
	//   - status: ACCEPTED or FAILED
	//   - attempts: Number of hash probes consumed
	RecordOutcome(status Status, attempts int)
}

// BatchMetrics defines metrics for whole batch runs.
type BatchMetrics interface {
	// RecordBatch records a completed batch run.
	//
	// Parameters:
	//   - mode: Resolved scaling mode
	//   - accepted: Number of accepted requests
	//   - failed: Number of failed requests
	//   - retries: Total retries across the batch
	//   - duration: Time taken in seconds
	RecordBatch(mode ScalingMode, accepted, failed, retries int, duration float64)

	// RecordServerLoad sets the final load of a server slot (gauge metric).
	//
	// Parameters:
	//   - mode: Resolved scaling mode
	//   - server: Slot name
	//   - load: Accepted requests on the slot
	//   - capacity: Slot capacity
	RecordServerLoad(mode ScalingMode, server string, load, capacity int)
}
