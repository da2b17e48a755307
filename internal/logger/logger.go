// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-post-board application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

type options struct {
	level  zerolog.Level
	output io.Writer
}

// Option customises a logger built by [NewLogger].
type Option func(*options)

// WithLevel sets the minimal level by name ("debug", "info", "warn", ...).
// Unknown names leave the default (debug) in place.
func WithLevel(level string) Option {
	return func(o *options) {
		if level == "" {
			return
		}
		if lvl, err := zerolog.ParseLevel(level); err == nil {
			o.level = lvl
		}
	}
}

// WithOutput redirects log entries to w instead of os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// NewLogger constructs a *Logger for the given role label
// (e.g. "post-board-server", "post-board-client").
//
// The logger is configured with:
//   - global log level set to Debug unless overridden by [WithLevel];
//   - a "role" field set to role;
//   - a timestamp on every entry;
//   - a "func" caller field holding the fully-qualified function name.
//
// Output is JSON written to os.Stdout unless overridden by [WithOutput].
func NewLogger(role string, opts ...Option) *Logger {
	o := options{level: zerolog.DebugLevel, output: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	zerolog.SetGlobalLevel(o.level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(o.output).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger attached to r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx with zerolog's WithContext.
// If none is attached, zerolog's default context logger is used, so the
// result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
