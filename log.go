package qoig

import (
	"go.uber.org/zap"
)

// Logger is the structured-logging surface the tuning driver and CLI
// report progress through. A nil *Logger is valid and discards
// everything, so callers that don't care about progress can pass one
// without checking.
type Logger struct {
	z *zap.Logger
}

// NewLogger wraps a *zap.Logger. Passing nil is equivalent to NewNopLogger.
func NewLogger(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{z: z}
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{z: zap.NewNop()}
}

func (l *Logger) probe(clenIndex, count, best int) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Debug("tune probe",
		zap.Int("clen_index", clenIndex),
		zap.Int("bytes", count),
		zap.Int("best_so_far", best),
	)
}

func (l *Logger) tuned(clenIndex, count int) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Info("tune selected clen_index",
		zap.Int("clen_index", clenIndex),
		zap.Int("probe_bytes", count),
	)
}

func (l *Logger) encoded(path string, in, out int) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Info("encoded image",
		zap.String("path", path),
		zap.Int("raw_bytes", in),
		zap.Int("encoded_bytes", out),
	)
}

func (l *Logger) decoded(path string, width, height uint32) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Info("decoded image",
		zap.String("path", path),
		zap.Uint32("width", width),
		zap.Uint32("height", height),
	)
}
