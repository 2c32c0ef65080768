package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/placer/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing
// a PrometheusCollector that is never used leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	// Placement metrics
	outcomes *prometheus.CounterVec
	attempts prometheus.Histogram

	// Batch metrics
	batches       *prometheus.CounterVec
	batchRetries  *prometheus.CounterVec
	batchDuration *prometheus.HistogramVec
	serverLoad    *prometheus.GaugeVec
	serverFill    *prometheus.GaugeVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "placer" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "placer"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.outcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "placement",
			Name:      "outcomes_total",
			Help:      "Total placement outcomes by status (ACCEPTED, FAILED).",
		}, []string{"status"})

		p.attempts = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "placement",
			Name:      "attempts",
			Help:      "Hash probes consumed per placement.",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		})

		p.batches = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "batch",
			Name:      "runs_total",
			Help:      "Total batch runs by scaling mode.",
		}, []string{"mode"})

		p.batchRetries = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "batch",
			Name:      "retries_total",
			Help:      "Total rehash retries by scaling mode.",
		}, []string{"mode"})

		p.batchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "batch",
			Name:      "duration_seconds",
			Help:      "Batch run duration in seconds by scaling mode.",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}, []string{"mode"})

		p.serverLoad = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "server",
			Name:      "load",
			Help:      "Accepted requests per server slot at the end of the last batch.",
		}, []string{"mode", "server"})

		p.serverFill = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "server",
			Name:      "fill_ratio",
			Help:      "Load divided by capacity per server slot at the end of the last batch.",
		}, []string{"mode", "server"})

		p.reg.MustRegister(p.outcomes)
		p.reg.MustRegister(p.attempts)
		p.reg.MustRegister(p.batches)
		p.reg.MustRegister(p.batchRetries)
		p.reg.MustRegister(p.batchDuration)
		p.reg.MustRegister(p.serverLoad)
		p.reg.MustRegister(p.serverFill)
	})
}

// PlacementMetrics implementation

// RecordOutcome counts the outcome and observes its attempt count.
func (p *PrometheusCollector) RecordOutcome(status types.Status, attempts int) {
	p.ensureRegistered()
	p.outcomes.WithLabelValues(string(status)).Inc()
	p.attempts.Observe(float64(attempts))
}

// BatchMetrics implementation

// RecordBatch counts the run, its retries and observes its duration.
func (p *PrometheusCollector) RecordBatch(mode types.ScalingMode, _ /* accepted */, _ /* failed */, retries int, duration float64) {
	p.ensureRegistered()
	p.batches.WithLabelValues(string(mode)).Inc()
	p.batchRetries.WithLabelValues(string(mode)).Add(float64(retries))
	p.batchDuration.WithLabelValues(string(mode)).Observe(duration)
}

// RecordServerLoad sets the load and fill ratio gauges for one slot.
func (p *PrometheusCollector) RecordServerLoad(mode types.ScalingMode, server string, load, capacity int) {
	p.ensureRegistered()
	p.serverLoad.WithLabelValues(string(mode), server).Set(float64(load))
	if capacity > 0 {
		p.serverFill.WithLabelValues(string(mode), server).Set(float64(load) / float64(capacity))
	}
}
