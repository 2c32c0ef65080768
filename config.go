package placer

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/placer/pool"
)

// ServerConfig controls the HTTP front end.
type ServerConfig struct {
	// Addr is the listen address (e.g., "0.0.0.0:5000").
	// The PORT environment variable overrides the port at startup.
	Addr string `yaml:"addr"`

	// AllowedOrigins lists CORS origins. Default: ["*"].
	AllowedOrigins []string `yaml:"allowedOrigins"`

	// ReadHeaderTimeout bounds how long the server waits for request headers.
	ReadHeaderTimeout time.Duration `yaml:"readHeaderTimeout"`

	// ShutdownTimeout is the maximum time to wait for in-flight requests on shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// MetricsConfig controls Prometheus instrumentation.
type MetricsConfig struct {
	// Enabled turns on the Prometheus collector and the /metrics route.
	Enabled bool `yaml:"enabled"`

	// Namespace is the Prometheus metrics namespace. Default: "placer".
	Namespace string `yaml:"namespace"`
}

// Config is the configuration for the Engine and the placer binary.
//
// All duration fields accept standard Go duration strings like "5s", "1m".
type Config struct {
	// MaxAttempts is the number of hash probes a request may consume before
	// it is reported as FAILED. Default: 10.
	MaxAttempts int `yaml:"maxAttempts"`

	// HashSeed seeds the XXH3 key hasher. 0 selects the unseeded variant.
	// Any fixed seed gives placements that are reproducible across processes.
	HashSeed uint64 `yaml:"hashSeed"`

	// ServerNamePrefix is the slot name prefix. Default: "Server".
	ServerNamePrefix string `yaml:"serverNamePrefix"`

	// Pools holds the pool shape for each scaling mode.
	// Default: horizontal 6 x 2, vertical 4 x 3.
	Pools pool.Shapes `yaml:"pools"`

	// LogLevel is the slog level used by the binary ("debug", "info", "warn", "error").
	LogLevel string `yaml:"logLevel"`

	// Server controls the HTTP front end.
	Server ServerConfig `yaml:"server"`

	// Metrics controls Prometheus instrumentation.
	Metrics MetricsConfig `yaml:"metrics"`
}

// DefaultConfig returns a Config with the reference defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		MaxAttempts:      10,
		HashSeed:         0,
		ServerNamePrefix: pool.DefaultNamePrefix,
		Pools:            pool.DefaultShapes(),
		LogLevel:         "info",
		Server: ServerConfig{
			Addr:              "0.0.0.0:5000",
			AllowedOrigins:    []string{"*"},
			ReadHeaderTimeout: 10 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "placer",
		},
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// A whole pool shape is defaulted only when both of its fields are zero, so a
// partially specified shape is left for Validate to reject.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = defaults.MaxAttempts
	}
	if cfg.ServerNamePrefix == "" {
		cfg.ServerNamePrefix = defaults.ServerNamePrefix
	}
	if cfg.Pools.Horizontal == (pool.Shape{}) {
		cfg.Pools.Horizontal = defaults.Pools.Horizontal
	}
	if cfg.Pools.Vertical == (pool.Shape{}) {
		cfg.Pools.Vertical = defaults.Pools.Vertical
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaults.Server.Addr
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = defaults.Server.AllowedOrigins
	}
	if cfg.Server.ReadHeaderTimeout == 0 {
		cfg.Server.ReadHeaderTimeout = defaults.Server.ReadHeaderTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaults.Server.ShutdownTimeout
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = defaults.Metrics.Namespace
	}
	// Note: Metrics.Enabled=false and HashSeed=0 are valid choices, so we don't apply defaults
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Validation Rules:
//   - MaxAttempts >= 1
//   - Every pool shape has >= 1 server and capacity >= 1 (modulo by zero is undefined)
//   - Server timeouts are non-negative
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.MaxAttempts < 1 {
		return fmt.Errorf("MaxAttempts must be >= 1, got %d", cfg.MaxAttempts)
	}

	if err := cfg.Pools.Horizontal.Validate(); err != nil {
		return fmt.Errorf("horizontal pool: %w", err)
	}
	if err := cfg.Pools.Vertical.Validate(); err != nil {
		return fmt.Errorf("vertical pool: %w", err)
	}

	if cfg.Server.ReadHeaderTimeout < 0 {
		return fmt.Errorf("ReadHeaderTimeout must be >= 0, got %v", cfg.Server.ReadHeaderTimeout)
	}
	if cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("ShutdownTimeout must be >= 0, got %v", cfg.Server.ShutdownTimeout)
	}

	return nil
}

// ValidateWithWarnings logs warnings for valid but unusual values.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	h, v := cfg.Pools.Horizontal, cfg.Pools.Vertical
	if h.TotalCapacity() != v.TotalCapacity() {
		logger.Warn(
			"scaling modes have different total capacity",
			"horizontal", h.TotalCapacity(),
			"vertical", v.TotalCapacity(),
		)
	}

	if cfg.MaxAttempts < max(h.Servers, v.Servers) {
		logger.Warn(
			"MaxAttempts is below the pool size, some slots may never be probed",
			"maxAttempts", cfg.MaxAttempts,
			"servers", max(h.Servers, v.Servers),
		)
	}
}

// LoadConfig loads configuration from a YAML file.
//
// Defaults are applied to missing fields and the result is validated.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded configuration with defaults applied
//   - error: Error if file cannot be read, parsed or validated
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML configuration bytes, applies defaults and validates.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	SetDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &cfg, nil
}

// TestConfig returns a configuration for tests: a fixed hash seed and
// metrics disabled so tests never touch the default Prometheus registry.
//
// Returns:
//   - Config: Configuration suited for tests
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.HashSeed = 42
	cfg.Metrics.Enabled = false
	cfg.Server.Addr = "127.0.0.1:0"

	return cfg
}
