package logger

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "checkout-proxy"

// Only accessed atomically; L may initialise it from several goroutines.
var log atomic.Pointer[zap.Logger]

// Init builds the global logger. "production" gets JSON on stdout,
// anything else the colored console encoder.
func Init(env string) {
	log.Store(build(env))
}

func build(env string) *zap.Logger {
	var cfg zap.Config

	if env == "production" {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.MessageKey = "message"
		cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := cfg.Build(zap.AddCaller())
	if err != nil {
		panic(err)
	}
	return l.With(zap.String("service", serviceName))
}

// L returns the global logger, initialising it from APP_ENV on first use.
// Concurrent first callers all get the same logger.
func L() *zap.Logger {
	if l := log.Load(); l != nil {
		return l
	}
	log.CompareAndSwap(nil, build(os.Getenv("APP_ENV")))
	return log.Load()
}

func Sync() {
	if l := log.Load(); l != nil {
		_ = l.Sync()
	}
}

// Replace swaps the global logger and returns a func restoring the previous one.
func Replace(l *zap.Logger) func() {
	prev := log.Swap(l)
	return func() { log.Store(prev) }
}
