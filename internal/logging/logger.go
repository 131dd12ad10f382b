package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "SERVDASH_LOG_LEVEL"

// LogFileEnvVar overrides where log output is written.
const LogFileEnvVar = "SERVDASH_LOG_FILE"

// Initialize creates a new logger with the specified level writing to file.
// If level is empty, it checks SERVDASH_LOG_LEVEL. If neither is set,
// logging is disabled (silent mode). An empty file means stderr; the TUI
// always passes a file because it owns the terminal.
func Initialize(level, file string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if file == "" {
		file = os.Getenv(LogFileEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := "stderr"
	encodeLevel := zapcore.CapitalColorLevelEncoder
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		output = file
		// Color codes are noise in a file.
		encodeLevel = zapcore.CapitalLevelEncoder
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{output},
	}

	config.EncoderConfig.EncodeLevel = encodeLevel
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use it to capture output.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...zap.Field) {
	GetLogger().Fatal(msg, fields...)
}

// LogDispatch logs a request being queued for the network worker.
func LogDispatch(backend, event string, queued int) {
	Debug("Dispatching network event",
		zap.String("backend", backend),
		zap.String("event", event),
		zap.Int("queued", queued),
	)
}

// LogHTTPRequest logs an outgoing API call.
func LogHTTPRequest(requestID, server, method, url string) {
	Debug("HTTP request sent",
		zap.String("request_id", requestID),
		zap.String("server", server),
		zap.String("method", method),
		zap.String("url", url),
	)
}

// LogHTTPResponse logs the status and latency of an API call.
func LogHTTPResponse(requestID string, statusCode int, elapsed time.Duration) {
	Debug("HTTP response received",
		zap.String("request_id", requestID),
		zap.Int("status_code", statusCode),
		zap.Duration("elapsed", elapsed),
	)
}

// LogCancellation logs stale requests dropped after a navigation change.
func LogCancellation(dropped, kept int) {
	Warn("Received cancel request, dropping stale requests",
		zap.Int("dropped", dropped),
		zap.Int("kept", kept),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
