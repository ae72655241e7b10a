// Package loggertest builds Loggers for use in tests. It lives outside the
// logger package so the binaries never link the testing framework.
package loggertest

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"hr-voice-tools/internal/common/logger"
)

// New creates a Logger that outputs through testing.TB.
func New(t testing.TB) logger.Logger {
	return logger.NewZapAdapter(zaptest.NewLogger(t))
}
