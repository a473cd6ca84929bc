// Copyright 2023 The Authors (see AUTHORS file)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging sets up structured loggers for command line tools built on
// cmdtree. Loggers write to stderr by default so they never interleave with
// help or command output on stdout.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
)

// contextKey is a private string type to prevent collisions in the context map.
type contextKey string

// loggerKey points to the value in the context where the logger is stored.
const loggerKey = contextKey("logger")

// New creates a new logger in the specified format and writes to the provided
// writer at the provided level. Use [SetLevel] to change the level after
// creation.
//
// If debug is true, the logging level is set to [LevelDebug] regardless of
// the given level, and the output includes source locations.
func New(w io.Writer, level slog.Level, format Format, debug bool) *slog.Logger {
	if debug {
		level = LevelDebug
	}

	// The inner handler accepts everything, the level handler does the
	// filtering.
	opts := &slog.HandlerOptions{
		AddSource:   debug,
		Level:       LevelDebug,
		ReplaceAttr: replaceAttr,
	}

	var h slog.Handler
	switch format {
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(NewLevelHandler(level, h))
}

// Option is an option to [NewFromEnv].
type Option func(o *options) *options

type options struct {
	defaultLevel  slog.Level
	defaultFormat Format
	defaultDebug  bool
	defaultTarget io.Writer
	getenv        func(string) string
}

// WithDefaultLevel sets the default level when the level is not set in the
// environment.
func WithDefaultLevel(l slog.Level) Option {
	return func(o *options) *options {
		o.defaultLevel = l
		return o
	}
}

// WithDefaultFormat sets the default format when the format is not set in the
// environment.
func WithDefaultFormat(f Format) Option {
	return func(o *options) *options {
		o.defaultFormat = f
		return o
	}
}

// WithDefaultDebug sets debug mode when it is not set in the environment.
func WithDefaultDebug(v bool) Option {
	return func(o *options) *options {
		o.defaultDebug = v
		return o
	}
}

// WithDefaultTarget sets the writer used when the target is not set in the
// environment.
func WithDefaultTarget(w io.Writer) Option {
	return func(o *options) *options {
		o.defaultTarget = w
		return o
	}
}

// WithGetenv overrides the lookup function for environment variables. It is
// mostly useful in tests.
func WithGetenv(fn func(string) string) Option {
	return func(o *options) *options {
		o.getenv = fn
		return o
	}
}

// NewFromEnv is a convenience function for creating a logger that is
// configured from the environment. It sources the following variables, each
// of which may be prefixed:
//
//   - LOG_LEVEL: string representation of the log level. It panics if no such
//     level exists.
//   - LOG_FORMAT: format in which to output logs ("json" or "text"). It panics
//     if no such format exists.
//   - LOG_DEBUG: if true, enables debug logging and source locations.
//   - LOG_TARGET: "stdout" or "stderr". It panics for any other value.
//
// The prefixed variable takes precedence over the unprefixed one.
func NewFromEnv(prefix string, opts ...Option) *slog.Logger {
	o := &options{
		defaultLevel:  LevelWarning,
		defaultFormat: FormatText,
		defaultTarget: os.Stderr,
		getenv:        os.Getenv,
	}
	for _, opt := range opts {
		if opt != nil {
			o = opt(o)
		}
	}

	getenv := multiGetenv(o.getenv, prefix)

	level := o.defaultLevel
	if v := getenv("LOG_LEVEL"); v != "" {
		l, err := LookupLevel(v)
		if err != nil {
			panic(err)
		}
		level = l
	}

	format := o.defaultFormat
	if v := getenv("LOG_FORMAT"); v != "" {
		f, err := LookupFormat(v)
		if err != nil {
			panic(err)
		}
		format = f
	}

	debug := o.defaultDebug
	if v := getenv("LOG_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(fmt.Errorf("invalid value for LOG_DEBUG %q: %w", v, err))
		}
		debug = b
	}

	target := o.defaultTarget
	if v := getenv("LOG_TARGET"); v != "" {
		t, err := LookupTarget(v)
		if err != nil {
			panic(err)
		}
		target = t
	}

	return New(target, level, format, debug)
}

// LookupTarget resolves a target name to a writer. Only "stdout" and "stderr"
// are supported.
func LookupTarget(name string) (io.Writer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return nil, fmt.Errorf("no such target %q, valid targets are %q",
			name, []string{"stdout", "stderr"})
	}
}

// multiGetenv returns a lookup function that tries the prefixed key first and
// falls back to the bare key.
func multiGetenv(fn func(string) string, prefix string) func(string) string {
	return func(k string) string {
		if prefix != "" {
			if v := fn(prefix + k); v != "" {
				return v
			}
		}
		return fn(k)
	}
}

// SetLevel adjusts the level on the provided logger. The handler on the given
// logger must be a [LevelableHandler] or else this function panics. If you
// created a logger through this package, it will automatically satisfy that
// interface.
//
// This function is safe for concurrent use.
//
// It returns the passed in logger for chaining.
func SetLevel(logger *slog.Logger, level slog.Level) *slog.Logger {
	typ, ok := logger.Handler().(LevelableHandler)
	if !ok {
		panic(fmt.Sprintf("handler is not capable of setting levels (got %T)", logger.Handler()))
	}
	typ.SetLevel(level)
	return logger
}

// defaultLogger is the default logger. It is initialized once when
// [DefaultLogger] is first called.
var defaultLogger = sync.OnceValue(func() *slog.Logger {
	return NewFromEnv("")
})

// DefaultLogger creates a default logger. It is configured from the
// environment with no prefix.
func DefaultLogger() *slog.Logger {
	return defaultLogger()
}

// WithLogger creates a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in the context. If no such logger
// exists, a default logger is returned.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return DefaultLogger()
}

// replaceAttr renders levels by their lowercase name.
func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		if l, ok := a.Value.Any().(slog.Level); ok {
			a.Value = LevelSlogValue(l)
		}
	}
	return a
}
