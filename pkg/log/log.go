// Package log is the process-wide slog setup for tiger. It narrates the run
// (what was loaded, how long validation took); findings about a mod are
// diagnostics and never go through here.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

const envPrefix = "TIGER_LOG_"

// Options selects the log level, format and destinations. The zero value
// logs INFO and above to stderr in console format.
type Options struct {
	Level     string // debug, info, warn, error
	Format    string // console or json
	AddSource bool
	// File, if set, gets a JSON copy of every record, rotated by size.
	File string
	// Writer replaces stderr for the console handler.
	Writer io.Writer
}

var (
	mu      sync.RWMutex
	current *slog.Logger
)

// L returns the process logger, set up from the environment on first use.
func L() *slog.Logger {
	mu.RLock()
	l := current
	mu.RUnlock()
	if l != nil {
		return l
	}
	Init(FromEnv())
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Init replaces the process logger and slog's default.
func Init(opts Options) *slog.Logger {
	logger := slog.New(NewHandler(opts)).With(slog.String("app", "tiger"))
	mu.Lock()
	current = logger
	mu.Unlock()
	slog.SetDefault(logger)
	return logger
}

// NewHandler builds the handler Init would install, without installing it.
func NewHandler(opts Options) slog.Handler {
	lvl := ParseLevel(opts.Level)
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	var console slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		console = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl, AddSource: opts.AddSource})
	} else {
		console = newConsoleHandler(w, lvl, opts.AddSource)
	}
	if strings.TrimSpace(opts.File) == "" {
		return console
	}
	rot := &lumberjack.Logger{Filename: opts.File, MaxSize: 10, MaxBackups: 3, MaxAge: 14, Compress: true}
	file := slog.NewJSONHandler(rot, &slog.HandlerOptions{Level: lvl, AddSource: opts.AddSource})
	return fanout{console, file}
}

// FromEnv reads TIGER_LOG_LEVEL, TIGER_LOG_FORMAT, TIGER_LOG_FILE and
// TIGER_LOG_SOURCE.
func FromEnv() Options {
	return Options{
		Level:     getenv("LEVEL", "info"),
		Format:    getenv("FORMAT", "console"),
		AddSource: strings.EqualFold(getenv("SOURCE", "false"), "true"),
		File:      os.Getenv(envPrefix + "FILE"),
	}
}

// Merge fills the empty fields of o from base.
func (o Options) Merge(base Options) Options {
	if o.Level == "" {
		o.Level = base.Level
	}
	if o.Format == "" {
		o.Format = base.Format
	}
	if o.File == "" {
		o.File = base.File
	}
	if o.Writer == nil {
		o.Writer = base.Writer
	}
	o.AddSource = o.AddSource || base.AddSource
	return o
}

func getenv(key, def string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return def
}

// WithComponent tags records with the package or subsystem they come from.
func WithComponent(name string) *slog.Logger { return L().With(slog.String("component", name)) }

// WithOperation tags records with the command or phase being run.
func WithOperation(l *slog.Logger, op string) *slog.Logger { return l.With(slog.String("op", op)) }

// ParseLevel maps a level name to a slog level. Unknown names mean INFO.
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
