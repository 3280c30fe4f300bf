package log

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var (
	l     *zap.SugaredLogger
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

func init() {
	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return level.Enabled(lvl) && lvl >= zapcore.ErrorLevel
	})
	lowPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return level.Enabled(lvl) && lvl < zapcore.ErrorLevel
	})
	consoleInfos := zapcore.Lock(os.Stdout)
	consoleErrors := zapcore.Lock(os.Stderr)
	ecfg := zap.NewProductionEncoderConfig()
	ecfg.EncodeTime = func(time time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(time.Format("2006-01-02T15:04:05.000"))
	}
	consoleEncoder := zapcore.NewConsoleEncoder(ecfg)

	core := zapcore.NewTee(
		zapcore.NewCore(consoleEncoder, consoleErrors, highPriority),
		zapcore.NewCore(consoleEncoder, consoleInfos, lowPriority),
	)
	logger := zap.New(core)
	zap.RedirectStdLog(logger)
	l = logger.Sugar()
}

// SetLevel changes the minimum enabled level of the process logger.
// Accepted values are the zap level names: debug, info, warn, error.
func SetLevel(lvl string) error {
	return level.UnmarshalText([]byte(lvl))
}

// Logger exposes the underlying structured logger for libraries that want a *zap.Logger.
func Logger() *zap.Logger {
	return l.Desugar()
}

// Capture routes the process logger into memory until restore is called.
// Tests use it to assert on what was logged.
func Capture(lvl zapcore.Level) (logs *observer.ObservedLogs, restore func()) {
	core, logs := observer.New(lvl)
	prev := l
	l = zap.New(core).Sugar()
	return logs, func() { l = prev }
}

func Sync() {
	_ = l.Sync()
}

func Debug(args ...interface{}) {
	l.Debug(args...)
}

func Debugf(format string, args ...interface{}) {
	l.Debugf(format, args...)
}

func Debugw(msg string, keysAndValues ...interface{}) {
	l.Debugw(msg, keysAndValues...)
}

func Info(args ...interface{}) {
	l.Info(args...)
}

func Infof(format string, args ...interface{}) {
	l.Infof(format, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	l.Infow(msg, keysAndValues...)
}

func Warn(args ...interface{}) {
	l.Warn(args...)
}

func Warnf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	l.Warnw(msg, keysAndValues...)
}

func Error(args ...interface{}) {
	l.Error(args...)
}

func Errorf(format string, args ...interface{}) {
	l.Errorf(format, args...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	l.Errorw(msg, keysAndValues...)
}

func Fatal(args ...interface{}) {
	l.Fatal(args...)
}

func Fatalf(format string, args ...interface{}) {
	l.Fatalf(format, args...)
}
