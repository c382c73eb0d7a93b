package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop().Sugar()

// Init builds the process logger: warnings and above go to the console,
// everything from debug up goes to logFile. Safe to call more than once;
// the last call wins. An empty logFile keeps logging console-only.
func Init(logFile string) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			zapcore.WarnLevel,
		),
	}

	if logFile != "" {
		if f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			cores = append(cores, zapcore.NewCore(
				zapcore.NewConsoleEncoder(encCfg),
				zapcore.AddSync(f),
				zapcore.DebugLevel,
			))
		}
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zapcore.ErrorLevel))
	logger = l.Sugar()
}

// L returns the process logger.
func L() *zap.SugaredLogger {
	return logger
}

// Sync flushes buffered log entries. Best effort, called on exit.
func Sync() {
	_ = logger.Sync()
}
