// Package log configures slog-based logging for the vecpath command.
//
// Options can be given directly or through the environment:
//   - VECPATH_LOG_LEVEL=debug|info|warn|error
//   - VECPATH_LOG_FORMAT=text|json
//   - VECPATH_LOG_SOURCE=true|false
//   - VECPATH_LOG_FILE=<path> (adds a rotated JSON log file)
package log

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Environment variables read by [FromEnv].
const (
	EnvLevel  = "VECPATH_LOG_LEVEL"
	EnvFormat = "VECPATH_LOG_FORMAT"
	EnvSource = "VECPATH_LOG_SOURCE"
	EnvFile   = "VECPATH_LOG_FILE"
)

// Options controls logger initialization. The zero value logs text at info
// level to standard error.
type Options struct {
	Level     string
	Format    string // "text" or "json"
	AddSource bool
	// File, if set, receives a JSON copy of every record and is rotated by
	// size.
	File string
	// Output is the console writer. It defaults to os.Stderr.
	Output io.Writer
}

var (
	mu      sync.RWMutex
	current *slog.Logger
	closers []io.Closer
)

// L returns the application logger, initializing it from the environment on
// first use.
func L() *slog.Logger {
	mu.RLock()
	l := current
	mu.RUnlock()
	if l != nil {
		return l
	}
	return Init(FromEnv())
}

// Init builds a logger from opts, installs it as the application logger and
// as slog's default, and returns it. Files opened by a previous Init are
// closed.
func Init(opts Options) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: ParseLevel(opts.Level), AddSource: opts.AddSource}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var console slog.Handler
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "json":
		console = slog.NewJSONHandler(out, hopts)
	default:
		console = slog.NewTextHandler(out, hopts)
	}
	handlers := []slog.Handler{console}

	var opened []io.Closer
	if file := strings.TrimSpace(opts.File); file != "" {
		w := &lumberjack.Logger{Filename: file, MaxSize: 10, MaxBackups: 3, MaxAge: 28}
		handlers = append(handlers, slog.NewJSONHandler(w, hopts))
		opened = append(opened, w)
	}

	var h slog.Handler = console
	if len(handlers) > 1 {
		h = &multi{hs: handlers}
	}
	l := slog.New(h).With(slog.String("app", "vecpath"))

	mu.Lock()
	old := closers
	current, closers = l, opened
	mu.Unlock()
	for _, c := range old {
		c.Close()
	}
	slog.SetDefault(l)
	return l
}

// Close releases log files opened by [Init].
func Close() error {
	mu.Lock()
	cs := closers
	closers = nil
	mu.Unlock()
	var errs []error
	for _, c := range cs {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// FromEnv builds Options from the environment.
func FromEnv() Options {
	return Options{
		Level:     getenv(EnvLevel, "info"),
		Format:    getenv(EnvFormat, "text"),
		AddSource: strings.EqualFold(getenv(EnvSource, "false"), "true"),
		File:      os.Getenv(EnvFile),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// WithComponent returns the application logger with a component attribute.
func WithComponent(name string) *slog.Logger { return L().With(slog.String("component", name)) }

// WithOperation annotates l with an operation name.
func WithOperation(l *slog.Logger, op string) *slog.Logger { return l.With(slog.String("op", op)) }

// ParseLevel converts a level name to a slog.Level. Unknown names map to
// info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// multi fans records out to several handlers.
type multi struct{ hs []slog.Handler }

func (m *multi) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multi) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m.hs {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (m *multi) WithAttrs(attrs []slog.Attr) slog.Handler {
	hs := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		hs[i] = h.WithAttrs(attrs)
	}
	return &multi{hs: hs}
}

func (m *multi) WithGroup(name string) slog.Handler {
	hs := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		hs[i] = h.WithGroup(name)
	}
	return &multi{hs: hs}
}
