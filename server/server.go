package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arloliu/placer/internal/logger"
	"github.com/arloliu/placer/types"
)

// RunIDHeader carries the unique ID assigned to each /run call.
const RunIDHeader = "X-Run-ID"

const (
	defaultAddr              = "0.0.0.0:5000"
	defaultReadHeaderTimeout = 10 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	maxRequestBodyBytes      = 1 << 20
)

// ErrRunnerRequired is returned when New is called with a nil runner.
var ErrRunnerRequired = errors.New("batch runner is required")

// Runner runs one placement batch for a scaling-mode choice.
//
// *placer.Engine satisfies this interface.
type Runner interface {
	Run(ctx context.Context, choice string) (*types.BatchResult, error)
}

// Server is the HTTP front end of the assignment engine.
type Server struct {
	runner            Runner
	logger            types.Logger
	gatherer          prometheus.Gatherer
	addr              string
	allowedOrigins    []string
	readHeaderTimeout time.Duration
	shutdownTimeout   time.Duration

	stats   *runStats
	handler http.Handler

	mu         sync.Mutex
	httpServer *http.Server
	listener   net.Listener
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l types.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAddr sets the listen address (default "0.0.0.0:5000").
func WithAddr(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.addr = addr
		}
	}
}

// WithAllowedOrigins sets the CORS origins (default "*").
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.allowedOrigins = origins
		}
	}
}

// WithGatherer enables GET /metrics, serving the given gatherer.
//
// Example:
//
//	srv, err := server.New(eng, server.WithGatherer(prometheus.DefaultGatherer))
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithReadHeaderTimeout sets http.Server.ReadHeaderTimeout.
func WithReadHeaderTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.readHeaderTimeout = d
		}
	}
}

// WithShutdownTimeout bounds how long Shutdown waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// New creates a new HTTP server around a batch runner.
//
// Parameters:
//   - runner: Batch runner, typically *placer.Engine
//   - opts: Optional configuration
//
// Returns:
//   - *Server: Initialized server (not yet listening)
//   - error: ErrRunnerRequired if runner is nil
func New(runner Runner, opts ...Option) (*Server, error) {
	if runner == nil {
		return nil, ErrRunnerRequired
	}

	s := &Server{
		runner:            runner,
		logger:            logger.NewNop(),
		addr:              defaultAddr,
		allowedOrigins:    []string{"*"},
		readHeaderTimeout: defaultReadHeaderTimeout,
		shutdownTimeout:   defaultShutdownTimeout,
		stats:             newRunStats(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	s.handler = s.buildHandler()

	return s, nil
}

func (s *Server) buildHandler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/run", s.handleRun).Methods(http.MethodPost)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	if s.gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	cors := handlers.CORS(
		handlers.AllowedOrigins(s.allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.ExposedHeaders([]string{RunIDHeader}),
	)
	recovery := handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{s.logger}))

	return recovery(cors(router))
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the bound listen address, or "" before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return ""
	}

	return s.listener.Addr().String()
}

// Start listens and serves until ctx is canceled, then shuts down gracefully.
//
// Parameters:
//   - ctx: Context whose cancellation triggers shutdown
//
// Returns:
//   - error: Listen or serve error; nil after a clean shutdown
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.readHeaderTimeout,
	}

	s.mu.Lock()
	s.listener = ln
	s.httpServer = srv
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info("HTTP server listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	case <-ctx.Done():
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server.
//
// Returns:
//   - error: Error if shutdown fails
func (s *Server) Shutdown() error {
	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	s.logger.Info("shutting down HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

type recoveryLogger struct {
	logger types.Logger
}

func (r recoveryLogger) Println(v ...any) {
	r.logger.Error("recovered from handler panic", "panic", fmt.Sprint(v...))
}
