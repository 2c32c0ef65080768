// Package batch runs a placement resolver over an ordered request batch and
// aggregates the per-request outcomes into a BatchResult.
//
// Requests are processed strictly in input order: earlier requests claim
// scarce capacity first, so reordering a batch can change its outcome.
package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/arloliu/placer/internal/logger"
	"github.com/arloliu/placer/internal/metrics"
	"github.com/arloliu/placer/types"
)

// Orchestrator drives a PlacementResolver over a request batch.
//
// An Orchestrator holds no per-run state and may be shared by concurrent
// runs, provided each run passes its own pool.
type Orchestrator struct {
	resolver types.PlacementResolver
	logger   types.Logger
	metrics  types.MetricsCollector
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l types.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets the metrics collector. A nil collector is ignored.
func WithMetrics(m types.MetricsCollector) Option {
	return func(o *Orchestrator) {
		if m != nil {
			o.metrics = m
		}
	}
}

// New creates a new batch orchestrator.
//
// Parameters:
//   - resolver: Placement resolver invoked once per request
//   - opts: Optional configuration (WithLogger, WithMetrics)
//
// Returns:
//   - *Orchestrator: Initialized orchestrator
//   - error: ErrResolverRequired if resolver is nil
//
// Example:
//
//	orch, err := batch.New(placement.NewRehash())
//	result, err := orch.Run(ctx, "vertical", p, source.DefaultRequests())
func New(resolver types.PlacementResolver, opts ...Option) (*Orchestrator, error) {
	if resolver == nil {
		return nil, types.ErrResolverRequired
	}

	o := &Orchestrator{
		resolver: resolver,
		logger:   logger.NewNop(),
		metrics:  metrics.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o, nil
}

// Run places every request of the batch onto the pool, in order.
//
// A FAILED outcome never stops the batch. The context is checked before each
// request; on cancellation Run returns the context error and no result.
//
// Parameters:
//   - ctx: Context for cancellation
//   - choice: Raw scaling-mode selector, echoed in the result
//   - pool: Pool owned by this run (mutated)
//   - requests: Ordered request batch
//
// Returns:
//   - *types.BatchResult: Final pool state, ordered outcomes and summary counters
//   - error: ErrEmptyPool, resolver failure or context cancellation
func (o *Orchestrator) Run(ctx context.Context, choice string, pool *types.ServerPool, requests []types.RequestRecord) (*types.BatchResult, error) {
	if pool.Size() == 0 {
		return nil, fmt.Errorf("run batch: %w", types.ErrEmptyPool)
	}

	start := time.Now()
	mode := types.ParseScalingMode(choice)

	results := make([]types.AssignmentOutcome, 0, len(requests))
	for _, req := range requests {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch interrupted at request %d: %w", req.Position, err)
		}

		outcome, err := o.resolver.Resolve(req.ID, pool)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", req.ID, err)
		}

		if !outcome.Accepted() {
			o.logger.Warn("request saturated",
				"request", outcome.Request,
				"position", req.Position,
				"attempts", outcome.Attempts,
			)
		}
		o.metrics.RecordOutcome(outcome.Status, outcome.Attempts)
		results = append(results, outcome)
	}

	result := Summarize(choice, pool, results)

	for _, slot := range pool.Slots {
		o.metrics.RecordServerLoad(mode, slot.Name, slot.Load(), slot.MaxCapacity)
	}
	o.metrics.RecordBatch(mode, result.Accepted, result.Failed(), result.Retries, time.Since(start).Seconds())

	o.logger.Info("batch completed",
		"choice", choice,
		"mode", mode,
		"servers", pool.Size(),
		"requests", result.TotalRequests,
		"accepted", result.Accepted,
		"retries", result.Retries,
	)

	return result, nil
}

// Summarize assembles a BatchResult from a finished pool and its outcomes.
//
// accepted counts ACCEPTED outcomes; retries sums (attempts - 1) over all
// outcomes, failed ones included.
func Summarize(choice string, pool *types.ServerPool, results []types.AssignmentOutcome) *types.BatchResult {
	accepted := 0
	retries := 0
	for _, r := range results {
		if r.Accepted() {
			accepted++
		}
		retries += r.Retries()
	}

	servers := []*types.ServerSlot{}
	if pool != nil {
		servers = pool.Slots
	}

	return &types.BatchResult{
		Choice:        choice,
		Servers:       servers,
		Results:       results,
		TotalRequests: len(results),
		Accepted:      accepted,
		Retries:       retries,
	}
}
