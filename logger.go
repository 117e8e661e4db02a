package pltrs

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so slog skips
// building attributes for disabled calls.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(nopHandler{}))
}

// SetLogger installs l as the logger shared by pltrs and its backend
// packages. A nil l restores the silent default. It may be called while
// other goroutines are batching or drawing.
//
// Records emitted:
//   - Debug: batch statistics per BuildBatches call, skipped nodes, backend
//     resizes and GPU setup
//   - Info: a backend was initialized through the registry
//   - Warn: an unknown backend name was requested
//
// pltdemo and pltrender turn it on with -v:
//
//	pltrs.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}
