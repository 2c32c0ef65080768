package testing

import (
	"testing"

	"github.com/arloliu/placer"
)

// NewEngine creates an Engine from placer.TestConfig with the given options.
//
// The test logger is installed first so callers can override it. The test
// fails immediately if the engine cannot be built.
func NewEngine(t testing.TB, opts ...placer.Option) *placer.Engine {
	t.Helper()

	cfg := placer.TestConfig()
	all := append([]placer.Option{placer.WithLogger(NewTestLogger(t))}, opts...)

	eng, err := placer.NewEngine(&cfg, all...)
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	return eng
}
