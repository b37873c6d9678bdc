// Package logging adapts pkg/logger to the application's port.Logger interface.
package logging

import (
	"context"

	"github.com/hapkiduki/resin-calc/internal/application/port"
	"github.com/hapkiduki/resin-calc/pkg/logger"
)

// Adapter adapts the logger.Logger to the port.Logger interface.
type Adapter struct {
	*logger.Logger
}

// NewAdapter wraps a logger.Logger.
//
// Parameters:
//   - l: the zap-backed logger
//
// Returns:
//   - port.Logger: the adapted logger
func NewAdapter(l *logger.Logger) port.Logger {
	return &Adapter{l}
}

// Debug implements port.Logger.
func (l *Adapter) Debug(msg string, keysAndValues ...any) {
	l.Logger.Debug(msg, keysAndValues...)
}

// Info implements port.Logger.
func (l *Adapter) Info(msg string, keysAndValues ...any) {
	l.Logger.Info(msg, keysAndValues...)
}

// Warn implements port.Logger.
func (l *Adapter) Warn(msg string, keysAndValues ...any) {
	l.Logger.Warn(msg, keysAndValues...)
}

// Error implements port.Logger.
func (l *Adapter) Error(msg string, keysAndValues ...any) {
	l.Logger.Error(msg, keysAndValues...)
}

// With implements port.Logger.
func (l *Adapter) With(keysAndValues ...any) port.Logger {
	return &Adapter{l.Logger.With(keysAndValues...)}
}

// WithContext implements port.Logger.
func (l *Adapter) WithContext(ctx context.Context) port.Logger {
	return &Adapter{l.Logger.WithContext(ctx)}
}
