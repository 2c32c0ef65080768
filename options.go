package placer

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	source    RequestSource
	sourceSet bool
	hasher    KeyHasher
	metrics   MetricsCollector
	logger    Logger
}

// WithRequestSource replaces the built-in request batch.
//
// The reference batch (Request_A .. Request_J) is used when this option is
// not supplied.
//
// Parameters:
//   - src: RequestSource implementation
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	src := source.NewStatic("order-1", "order-2", "order-3")
//	eng, err := placer.NewEngine(&cfg, placer.WithRequestSource(src))
func WithRequestSource(src RequestSource) Option {
	return func(o *engineOptions) {
		o.source = src
		o.sourceSet = true
	}
}

// WithHasher sets the key hasher used by the placement resolver.
//
// Overrides Config.HashSeed.
//
// Parameters:
//   - h: KeyHasher implementation
//
// Returns:
//   - Option: Functional option for NewEngine
func WithHasher(h KeyHasher) Option {
	return func(o *engineOptions) {
		o.hasher = h
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer, "placer")
//	eng, err := placer.NewEngine(&cfg, placer.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	eng, err := placer.NewEngine(&cfg, placer.WithLogger(logging.NewSlogDefault()))
func WithLogger(logger Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}
