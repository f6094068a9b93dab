// Package logger provides structured logging for seacanal using zap.
//
// Logs never share a stream with results: the default sink is stderr.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/seacanal/internal/config"
)

// Logger wraps zap.SugaredLogger with search-context helpers.
type Logger struct {
	*zap.SugaredLogger
	base *zap.Logger
}

// New creates a Logger from configuration. It fails only when the output
// file cannot be opened.
func New(cfg *config.LoggingConfig) (*Logger, error) {
	sink, err := openSink(cfg.Output)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(newEncoder(cfg.Format), sink, parseLevel(cfg.Level))
	base := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).Named("seacanal")
	return wrap(base), nil
}

func wrap(base *zap.Logger) *Logger {
	return &Logger{SugaredLogger: base.Sugar(), base: base}
}

// parseLevel maps a configured level onto zap's, falling back to warn.
func parseLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(level)
	if err != nil || level == "" {
		return zapcore.WarnLevel
	}
	return l
}

// newEncoder returns a JSON encoder for "json" and a colored console
// encoder otherwise.
func newEncoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "time"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeDuration = zapcore.StringDurationEncoder

	if format == "json" {
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}

// openSink resolves "stderr", "stdout" or a file path (opened for append).
func openSink(output string) (zapcore.WriteSyncer, error) {
	switch output {
	case "", "stderr":
		return zapcore.Lock(os.Stderr), nil
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	}
	f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return zapcore.AddSync(f), nil
}

// WithSequence tags entries with the input length.
func (l *Logger) WithSequence(length int) *Logger {
	return wrap(l.base.With(zap.Int("sequence_length", length)))
}

// WithSearch tags entries with the effective search settings.
func (l *Logger) WithSearch(sc *config.SearchConfig, bound int) *Logger {
	return wrap(l.base.With(
		zap.Int("max_length", bound),
		zap.Bool("meta", sc.Meta),
		zap.Strings("relations", sc.Relations),
		zap.Int("parallelism", sc.Parallelism),
	))
}

// WithCycleLength tags entries with the length of the cycle found.
func (l *Logger) WithCycleLength(n int) *Logger {
	return wrap(l.base.With(zap.Int("cycle_length", n)))
}

// Sync flushes buffered entries. Syncing a terminal fails on some
// platforms, so callers on stderr may ignore the error.
func (l *Logger) Sync() error {
	return l.base.Sync()
}
