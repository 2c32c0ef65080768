package testing

import (
	"testing"

	"github.com/arloliu/placer/internal/logger"
	"github.com/arloliu/placer/types"
)

// NewTestLogger creates a new logger instance that writes to the testing.T logger.
// This is useful for seeing probe-level debug output during test runs.
func NewTestLogger(t testing.TB) types.Logger {
	return logger.NewTest(t)
}
