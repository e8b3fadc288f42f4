// Package logging wraps a zap.SugaredLogger so call sites read like the
// teacher's log.Printf one-liners while still emitting structured output.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var base = mustBuild()

func mustBuild() *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if lvl, err := zapcore.ParseLevel(os.Getenv("LAZYGATE_LOG")); err == nil {
		level = lvl
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	logger, err := cfg.Build()
	if err != nil {
		// zap failed to build its own logger; fall back to a no-op rather
		// than panic during package init.
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

// Printf logs a formatted message at info level, matching the shape of
// the teacher's log.Printf call sites.
func Printf(format string, args ...interface{}) {
	base.Infof(format, args...)
}

// With returns a child logger carrying the given structured fields,
// for call sites that want zap.String/zap.Stringer context rather than
// an interpolated string.
func With(fields ...zap.Field) *zap.SugaredLogger {
	return base.Desugar().With(fields...).Sugar()
}

// Sync flushes buffered log entries; call before process exit.
func Sync() error {
	return base.Sync()
}
