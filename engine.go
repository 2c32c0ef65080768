package placer

import (
	"context"
	"fmt"

	"github.com/arloliu/placer/batch"
	"github.com/arloliu/placer/internal/logger"
	"github.com/arloliu/placer/internal/metrics"
	"github.com/arloliu/placer/placement"
	"github.com/arloliu/placer/pool"
	"github.com/arloliu/placer/source"
)

// Engine assigns a batch of requests to a freshly built server pool.
//
// Engine is safe for concurrent use: every Run builds its own pool, and the
// resolver and orchestrator hold no per-run state.
type Engine struct {
	cfg          Config
	source       RequestSource
	resolver     *placement.Rehash
	orchestrator *batch.Orchestrator
	metrics      MetricsCollector
	logger       Logger
}

// NewEngine creates a new assignment engine.
//
// Parameters:
//   - cfg: Configuration (defaults are applied in place, then validated)
//   - opts: Optional configuration (WithRequestSource, WithHasher, WithMetrics, WithLogger)
//
// Returns:
//   - *Engine: Initialized engine
//   - error: ErrInvalidConfig or ErrRequestSourceRequired on failure
//
// Example:
//
//	cfg := placer.DefaultConfig()
//	eng, err := placer.NewEngine(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := eng.Run(ctx, "horizontal")
func NewEngine(cfg *Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	options := &engineOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	src := options.source
	if options.sourceSet && src == nil {
		return nil, ErrRequestSourceRequired
	}
	if src == nil {
		src = source.NewStatic()
	}

	cfg.ValidateWithWarnings(loggerInstance)

	resolverOpts := []placement.RehashOption{
		placement.WithMaxAttempts(cfg.MaxAttempts),
		placement.WithHashSeed(cfg.HashSeed),
		placement.WithLogger(loggerInstance),
	}
	if options.hasher != nil {
		resolverOpts = append(resolverOpts, placement.WithHasher(options.hasher))
	}
	resolver := placement.NewRehash(resolverOpts...)

	orchestrator, err := batch.New(resolver,
		batch.WithLogger(loggerInstance),
		batch.WithMetrics(metricsCollector),
	)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg:          *cfg,
		source:       src,
		resolver:     resolver,
		orchestrator: orchestrator,
		metrics:      metricsCollector,
		logger:       loggerInstance,
	}, nil
}

// Run assigns the request batch to a new pool built for the given choice.
//
// "horizontal" selects the enlarged pool; any other value, including the
// empty string, selects the vertical baseline. Placement exhaustion is
// reported in-band as FAILED outcomes, never as an error.
//
// Parameters:
//   - ctx: Context for cancellation
//   - choice: Scaling-mode selector, echoed verbatim in the result
//
// Returns:
//   - *BatchResult: Final pool state and per-request outcomes
//   - error: Request source, pool construction or cancellation error
func (e *Engine) Run(ctx context.Context, choice string) (*BatchResult, error) {
	requests, err := e.source.ListRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	p, mode, err := pool.Build(choice, e.cfg.Pools, pool.WithNamePrefix(e.cfg.ServerNamePrefix))
	if err != nil {
		return nil, err
	}

	e.logger.Debug("pool built",
		"choice", choice,
		"mode", mode.String(),
		"servers", p.Size(),
		"capacity", p.TotalCapacity(),
	)

	return e.orchestrator.Run(ctx, choice, p, requests)
}

// Config returns a copy of the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// MaxAttempts returns the retry ceiling in effect.
func (e *Engine) MaxAttempts() int {
	return e.resolver.MaxAttempts()
}
