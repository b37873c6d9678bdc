// Package port contains the port interfaces (driven ports) for the application layer.
// Ports define the interfaces that the application layer requires from external
// services like logging and metrics.
//
// In Hexagonal Architecture (ports & adapters):
//   - Ports are interfaces that define what the application needs.
//   - Adapters are implementations of these interfaces
//   - this enables loose coupling and easy testing/swapping of implementations.
package port

import (
	"context"
	"time"
)

// Logger defines the interface for structured logging.
// The production implementation is pkg/logger (zap).
//
// Example usage:
//
//	log.Info("Calculation completed", "calculation_id", id, "shape", "rectangle")
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keysAndValues ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keysAndValues ...interface{})

	// With return a logger with additional context fields.
	With(keysAndValues ...interface{}) Logger

	// WithContext return a logger with context information (e.g., request ID).
	WithContext(ctx context.Context) Logger
}

// Metrics defines the interface for recording application metrics.
// The production implementation is backed by Prometheus.
//
// Tag keys for a given metric name must be the same on every call.
type Metrics interface {
	// Counter increments a counter metric.
	Counter(name string, value float64, tags map[string]string)

	// Gauge sets a gauge metric value.
	Gauge(name string, value float64, tags map[string]string)

	// Histogram records a value in a histogram.
	Histogram(name string, value float64, tags map[string]string)

	// Timing records a timing/duration metric.
	Timing(name string, duration time.Duration, tags map[string]string)
}

// NopMetrics discards every measurement.
type NopMetrics struct{}

// Counter implements Metrics.
func (NopMetrics) Counter(string, float64, map[string]string) {}

// Gauge implements Metrics.
func (NopMetrics) Gauge(string, float64, map[string]string) {}

// Histogram implements Metrics.
func (NopMetrics) Histogram(string, float64, map[string]string) {}

// Timing implements Metrics.
func (NopMetrics) Timing(string, time.Duration, map[string]string) {}
