package math

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var diag atomic.Pointer[zap.Logger]

func init() {
	diag.Store(defaultLogger())
}

// defaultLogger writes error-level console lines to stderr.
func defaultLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: " ",
	})
	return zap.New(zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zapcore.ErrorLevel))
}

// SetLogger replaces the logger that receives argument diagnostics.
// Passing nil restores the stderr default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = defaultLogger()
	}
	diag.Store(l.Named("math"))
}

// Logger returns the current diagnostics logger.
func Logger() *zap.Logger {
	return diag.Load()
}
