// Package singleton builds the singleton pattern out of sync.Once: a
// process-wide logger created on first use, and a generic Lazy cell
// for everything else that should exist exactly once.
package singleton

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once sync.Once
	std  *zap.Logger
)

// Default returns the process-wide logger, building it on first call.
// Every call returns the same instance.
func Default() *zap.Logger {
	once.Do(func() {
		std = newLogger()
	})
	return std
}

// newLogger builds a console logger with no timestamps, so two runs
// of the same program produce identical output.
func newLogger() *zap.Logger {
	cfg := zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: "  ",
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), stdoutSyncer{}, zap.InfoLevel)
	return zap.New(core)
}

// stdoutSyncer resolves os.Stdout on every write rather than at build
// time, so the logger follows stdout redirection.
type stdoutSyncer struct{}

func (stdoutSyncer) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

func (stdoutSyncer) Sync() error { return nil }

// Lazy is a typed once-cell: the build function runs on the first Get,
// and every Get returns that single value.
type Lazy[T any] struct {
	once  sync.Once
	build func() T
	v     T
}

// NewLazy wraps a build function. The function does not run until the
// first Get.
func NewLazy[T any](build func() T) *Lazy[T] {
	return &Lazy[T]{build: build}
}

// Get returns the value, building it on first call. Get is safe for
// concurrent use; the build function runs at most once.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.v = l.build()
		l.build = nil
	})
	return l.v
}
