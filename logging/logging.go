// Package logging hands out the zap loggers used by the command line tool and the packages that report on
// what they did (config loading, exporting, and presenting frames).
package logging

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerKeyType string

const loggerKey = loggerKeyType("logger")

var rootLogger = zap.NewNop()

// New builds a console logger writing to stderr. verbose lowers the level from info to debug.
func New(verbose bool) *zap.Logger {

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	filter := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= level
	})

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.00")

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), filter)

	return zap.New(core)

}

// SetRoot replaces the logger returned by From when a context carries none.
func SetRoot(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	rootLogger = logger
}

// From returns the logger of the current context, if no logger is available, returns the root logger
func From(ctx context.Context) *zap.Logger {
	l := ctx.Value(loggerKey)
	if l == nil {
		return rootLogger
	}
	return l.(*zap.Logger)
}

// SubFrom returns a named child of the context's logger, along with a context carrying it.
func SubFrom(ctx context.Context, name string) (*zap.Logger, context.Context) {
	logger := From(ctx).Named(name)
	return logger, Context(ctx, logger)
}

func Context(ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		logger = rootLogger
	}
	return context.WithValue(ctx, loggerKey, logger)
}

func FromWithFields(ctx context.Context, fields ...zapcore.Field) (*zap.Logger, context.Context) {
	logger := From(ctx).With(fields...)
	ctx = Context(ctx, logger)
	return logger, ctx
}
