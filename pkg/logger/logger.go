// Package logger wraps zap's sugared logger for the resin calculator binaries.
//
// The API server logs JSON event streams to stdout. The CLI logs console
// lines to stderr so stdout stays reserved for results.
package logger

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// contextKey is a custom type for context keys.
type contextKey string

const (
	// RequestIDKey is the context key for the request ID.
	RequestIDKey contextKey = "request_id"
)

// Logger is the application logger interface implementation.
type Logger struct {
	zap    *zap.Logger
	sugar  *zap.SugaredLogger
	fields []interface{}
}

// Config contains logger configuration.
type Config struct {
	// Level is the minimun log level (debug, info, warn, error).
	Level string

	// Format is the output format (json, console).
	Format string

	// Development enables development mode (more verbose)
	Development bool

	// Output is where entries are written; nil means stdout.
	Output io.Writer
}

// DefaultConfig returns the default logger configuration.
//
// Returns:
//   - Config: default logger configuration
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "json",
		Development: false,
	}
}

// New creates a new Logger with the given configuration.
//
// Parameters:
//   - cfg: Logger configuration
//
// Returns:
//   - *Logger: configured logger instance
//   - error: Any error during initialization
func New(cfg Config) (*Logger, error) {
	// Parse log level
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, err
		}
	}

	// configure encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	var out io.Writer = os.Stdout
	if cfg.Output != nil {
		out = cfg.Output
	}

	// Create core
	core := zapcore.NewCore(
		encoder,
		zapcore.AddSync(out),
		level,
	)

	// Build logger
	opts := []zap.Option{
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	}

	if cfg.Development {
		opts = append(opts, zap.Development())
	}

	return fromZap(zap.New(core, opts...)), nil
}

// MustNew creates a new Logger and panics on error.
//
// Parameters:
//   - cfg: Logger configuration
//
// Returns:
//   - *Logger: configured logger instance
func MustNew(cfg Config) *Logger {
	logger, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return logger
}

// NewNop returns a logger that discards everything. Useful in tests.
func NewNop() *Logger {
	return fromZap(zap.NewNop())
}

func fromZap(z *zap.Logger) *Logger {
	return &Logger{
		zap:   z,
		sugar: z.Sugar(),
	}
}

// Debug logs a debug message with optional key-value pairs.
//
// Parameters:
//   - msg: the log message
//   - keysAndValues: optional key-value pairs for structured logging
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, l.merge(keysAndValues)...)
}

// Info logs an info message with optional key-value pairs.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, l.merge(keysAndValues)...)
}

// Warn logs a warning message with optional key-value pairs.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, l.merge(keysAndValues)...)
}

// Error logs an error message with optional key-value pairs.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, l.merge(keysAndValues)...)
}

// Fatal logs a fatal message and exits the program.
func (l *Logger) Fatal(msg string, keysAndValues ...interface{}) {
	l.sugar.Fatalw(msg, l.merge(keysAndValues)...)
}

// merge copies the bound fields so sibling loggers never share a backing array.
func (l *Logger) merge(keysAndValues []interface{}) []interface{} {
	if len(l.fields) == 0 {
		return keysAndValues
	}
	out := make([]interface{}, 0, len(l.fields)+len(keysAndValues))
	out = append(out, l.fields...)
	return append(out, keysAndValues...)
}

// With return a logger with additional context fields.
// These fields will be included in all subsequent log entries.
//
// Parameters:
//   - keysAndValues: key-value pairs to add
//
// Returns:
//   - Logger: new logger with additional fields
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{
		zap:    l.zap,
		sugar:  l.sugar,
		fields: l.merge(keysAndValues),
	}
}

// WithContext return a logger with context information (the request ID).
//
// Parameters:
//   - ctx: the context to extract values from
//
// Returns:
//   - Logger: new logger with context fields
func (l *Logger) WithContext(ctx context.Context) *Logger {
	fields := make([]any, 0, len(l.fields)+2)
	fields = append(fields, l.fields...)

	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		fields = append(fields, "request_id", requestID)
	}

	return &Logger{
		zap:    l.zap,
		sugar:  l.sugar,
		fields: fields,
	}
}

// ContextWithRequestID stores a request ID where WithContext can find it.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// Sync flushes any buffered log entries.
// Should be called before application exit.
//
// Returns:
//   - error: Any error during sync
func (l *Logger) Sync() error {
	return l.zap.Sync()
}

// Named returns a named logger
//
// Parameters:
//   - name: The logger name (will be added to log output)
//
// Returns:
//   - *Logger: A named logger
func (l *Logger) Named(name string) *Logger {
	named := l.zap.Named(name)
	return &Logger{
		zap:    named,
		sugar:  named.Sugar(),
		fields: l.fields,
	}
}

// ZapLogger returns the underlying zap.Logger instance.
// Use this when you need direct access to zap features.
func (l *Logger) ZapLogger() *zap.Logger {
	return l.zap
}
