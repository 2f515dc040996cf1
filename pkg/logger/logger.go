// Package logger provides the process-wide logger. The rest of the code
// depends on small printf-style Logger interfaces declared next to each
// consumer; this package is the single concrete implementation, built on
// zap so level filtering and file output come from configuration.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a leveled printf-style logger backed by zap.
type Logger struct {
	z *zap.SugaredLogger
}

// New creates a logger writing to the given file (stdout when empty)
// at the given level.
func New(file, level string) (*Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if file != "" {
		cfg.OutputPaths = []string{file}
		cfg.ErrorOutputPaths = []string{file}
	}

	z, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("logger: build zap: %w", err)
	}

	return &Logger{z: z.Sugar()}, nil
}

func (l *Logger) Info(format string, v ...interface{})  { l.z.Infof(format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.z.Warnf(format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.z.Errorf(format, v...) }

// Fatal logs at fatal level and exits the process.
func (l *Logger) Fatal(format string, v ...interface{}) { l.z.Fatalf(format, v...) }

// Close flushes buffered log entries.
func (l *Logger) Close() {
	_ = l.z.Sync()
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
