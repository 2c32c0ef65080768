// Package metrics provides MetricsCollector implementations for the placer library.
package metrics

import "github.com/arloliu/placer/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the default collector when none is injected.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	engine, err := placer.NewEngine(&cfg, placer.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// PlacementMetrics implementation

// RecordOutcome discards the placement outcome metric.
func (n *NopMetrics) RecordOutcome(_ /* status */ types.Status, _ /* attempts */ int) {
	// No-op
}

// BatchMetrics implementation

// RecordBatch discards the batch metric.
func (n *NopMetrics) RecordBatch(_ /* mode */ types.ScalingMode, _ /* accepted */, _ /* failed */, _ /* retries */ int, _ /* duration */ float64) {
	// No-op
}

// RecordServerLoad discards the server load metric.
func (n *NopMetrics) RecordServerLoad(_ /* mode */ types.ScalingMode, _ /* server */ string, _ /* load */, _ /* capacity */ int) {
	// No-op
}
