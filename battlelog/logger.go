// Package battlelog supplements the core with two additive, non-core
// boundaries explicitly named by spec.md as out of scope for the
// engine itself but real for any caller embedding it: structured
// diagnostics via zap, and the JSON transcript export format. Grounded
// on l1jgo's newLogger zap wiring (the teacher itself uses no zap) and
// tactical/combat/battlelog/battle_recorder.go's BattleRecord/
// EngagementRecord shape.
package battlelog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a *zap.Logger scoped to engine diagnostics: IllegalState
// and DataMissing battleerr.Error values, and optional turn-pipeline
// trace logging. The core packages (battle/damage/effects/pipeline)
// never import this package -- callers pass log calls in from the
// outside, keeping the engine itself dependency-free of any particular
// logging backend, same split the teacher keeps between its library
// code and l1jgo's server wiring.
type Logger struct {
	z *zap.Logger
}

// NewLogger builds a Logger at the given level ("debug", "info",
// "warn", "error"); an unrecognized level falls back to info, matching
// the teacher's newLogger fallback-on-parse-failure behavior.
func NewLogger(level string, development bool) (*Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.DisableStacktrace = true
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{z: z}, nil
}

// NewNop returns a Logger that discards everything, for tests and
// callers that don't want diagnostics.
func NewNop() *Logger {
	return &Logger{z: zap.NewNop()}
}

func (l *Logger) EngineError(kind, reason string, err error) {
	l.z.Error("engine error", zap.String("kind", kind), zap.String("reason", reason), zap.Error(err))
}

func (l *Logger) Trace(msg string, fields ...zap.Field) {
	l.z.Debug(msg, fields...)
}

func (l *Logger) Sync() error {
	return l.z.Sync()
}
