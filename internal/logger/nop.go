// Package logger provides no-op and test loggers for the placer library.
package logger

import "github.com/arloliu/placer/types"

// NopLogger is a no-op logger that discards all log messages.
//
// It is the default logger for the engine, resolver and orchestrator, so
// library users see no output unless they inject a logger.
//
// Example:
//
//	engine, err := placer.NewEngine(&cfg, placer.WithLogger(logger.NewNop()))
type NopLogger struct{}

// Compile-time assertion that NopLogger implements Logger.
var _ types.Logger = (*NopLogger)(nil)

// NewNop creates a new no-op logger that discards all messages.
func NewNop() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (n *NopLogger) Debug(_ string, _ ...any) {}

// Info discards the message.
func (n *NopLogger) Info(_ string, _ ...any) {}

// Warn discards the message.
func (n *NopLogger) Warn(_ string, _ ...any) {}

// Error discards the message.
func (n *NopLogger) Error(_ string, _ ...any) {}

// Fatal discards the message. It does NOT call os.Exit.
func (n *NopLogger) Fatal(_ string, _ ...any) {}
