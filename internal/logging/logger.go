// Package logging wraps log/slog for the nines command.
//
// Logs always go to stderr (or Config.Output) so that stdout carries only
// the computed result:
//
//	logger := logging.New(logging.Config{Level: logging.LevelDebug, Service: "nines"})
//	logger.Debug("build complete", "duration", elapsed)
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Level represents log severity. Debug < Info < Warn < Error.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR" or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config configures a Logger. Level's zero value is LevelDebug, so set it
// explicitly or use Default for an Info-level logger.
type Config struct {
	// Level is the minimum level written.
	Level Level

	// Service, when set, is attached to every record as "service".
	Service string

	// JSON switches the handler to JSON output.
	JSON bool

	// Quiet discards everything.
	Quiet bool

	// Output overrides stderr. Used by tests.
	Output io.Writer
}

// Logger is a thin wrapper around *slog.Logger.
type Logger struct {
	slog  *slog.Logger
	level Level
}

// New builds a Logger from cfg.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stderr
	if cfg.Output != nil {
		w = cfg.Output
	}
	if cfg.Quiet {
		w = io.Discard
	}

	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}
	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	l := slog.New(h)
	if cfg.Service != "" {
		l = l.With("service", cfg.Service)
	}
	return &Logger{slog: l, level: cfg.Level}
}

// Default returns an Info-level stderr logger.
func Default() *Logger {
	return New(Config{Level: LevelInfo})
}

func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

// With returns a child logger carrying args on every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...), level: l.level}
}

// Level returns the configured minimum level.
func (l *Logger) Level() Level { return l.level }
