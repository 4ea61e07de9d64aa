package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SafeLogger wraps a zap logger and tolerates nil receivers so components can
// log before InitLogger has run.
type SafeLogger struct {
	logger *zap.Logger
}

var (
	// Logger is the global logger instance
	Logger = &SafeLogger{logger: zap.NewNop()}
)

// InitLogger initializes the global logger
func InitLogger() error {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Set log level from environment
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(logLevel)); err == nil {
			config.Level = zap.NewAtomicLevelAt(level)
		}
	}

	zapLogger, err := config.Build(
		zap.AddCallerSkip(1),
		zap.Fields(
			zap.String("service", "app-adulto-mayor"),
			zap.String("version", "v1"),
		),
	)
	if err != nil {
		return err
	}

	Logger = &SafeLogger{logger: zapLogger}
	zap.ReplaceGlobals(zapLogger)

	return nil
}

// New wraps an existing zap logger.
func New(logger *zap.Logger) *SafeLogger {
	return &SafeLogger{logger: logger}
}

// Named returns a child logger for a component.
func Named(name string) *SafeLogger {
	return Logger.Named(name)
}

func (l *SafeLogger) Debug(msg string, fields ...zap.Field) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Debug(msg, fields...)
}

func (l *SafeLogger) Info(msg string, fields ...zap.Field) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Info(msg, fields...)
}

func (l *SafeLogger) Warn(msg string, fields ...zap.Field) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Warn(msg, fields...)
}

func (l *SafeLogger) Error(msg string, fields ...zap.Field) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Error(msg, fields...)
}

// Fatal logs and exits. Only cmd/ binaries should call it.
func (l *SafeLogger) Fatal(msg string, fields ...zap.Field) {
	if l == nil || l.logger == nil {
		os.Exit(1)
	}
	l.logger.Fatal(msg, fields...)
}

// With returns a logger carrying the given fields.
func (l *SafeLogger) With(fields ...zap.Field) *SafeLogger {
	if l == nil {
		return nil
	}
	if l.logger == nil {
		return l
	}
	return &SafeLogger{logger: l.logger.With(fields...)}
}

// Named returns a logger with the given name segment appended.
func (l *SafeLogger) Named(name string) *SafeLogger {
	if l == nil || l.logger == nil {
		return &SafeLogger{logger: zap.NewNop()}
	}
	return &SafeLogger{logger: l.logger.Named(name)}
}

// Unwrap returns the underlying zap logger, never nil.
func (l *SafeLogger) Unwrap() *zap.Logger {
	if l == nil || l.logger == nil {
		return zap.NewNop()
	}
	return l.logger
}

// Sync flushes buffered entries.
func (l *SafeLogger) Sync() error {
	if l == nil || l.logger == nil {
		return nil
	}
	return l.logger.Sync()
}
