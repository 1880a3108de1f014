// Package logger provides the diagnostics logger for samesize using zap.
//
// Diagnostics are user-facing: they share stdout with the report, so the
// encoder drops timestamps and callers and keeps only the level, message
// and structured fields.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures a Logger.
type Options struct {
	// Level is one of debug, info, warn or error. Empty means info.
	Level string
	// Color enables colored level names.
	Color bool
	// Writer receives the encoded entries. Nil means stdout.
	Writer io.Writer
}

// Logger wraps zap.SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
	base *zap.Logger
}

// New creates a Logger from options.
func New(opts Options) *Logger {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	core := zapcore.NewCore(buildEncoder(opts.Color), zapcore.AddSync(writer), parseLevel(opts.Level))
	base := zap.New(core)

	return &Logger{
		SugaredLogger: base.Sugar(),
		base:          base,
	}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	base := zap.NewNop()

	return &Logger{
		SugaredLogger: base.Sugar(),
		base:          base,
	}
}

// parseLevel converts string level to zapcore.Level.
func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info", "":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// buildEncoder creates a console encoder without time or caller keys.
func buildEncoder(color bool) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        zapcore.OmitKey,
		LevelKey:       "level",
		NameKey:        zapcore.OmitKey,
		CallerKey:      zapcore.OmitKey,
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  zapcore.OmitKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	if color {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return zapcore.NewConsoleEncoder(encoderConfig)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}
