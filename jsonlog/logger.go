// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package jsonlog

import (
	"context"
	"fmt"

	"github.com/stacklok/jsonlog-core/scope"
	"github.com/stacklok/jsonlog-core/sink"
)

// Formatter renders an event's message text from its state and error.
type Formatter func(state any, err error) string

// FormatMessage is the default [Formatter]: it renders the state with
// fmt.Sprint and ignores the error (the error surfaces in the record's
// exception field, not in the text).
func FormatMessage(state any, _ error) string {
	return fmt.Sprint(state)
}

// Logger emits records for one category. Loggers are created by a
// [LoggerProvider], live for the life of the process, and are safe for
// concurrent use.
type Logger struct {
	category string
	opts     *Options
	scopes   *scopeRef
	out      sink.Sink
}

// Category returns the category name the logger is bound to.
func (l *Logger) Category() string {
	return l.category
}

// Enabled reports whether events at level are recorded for this logger's
// category. With no filter configured every level is enabled.
func (l *Logger) Enabled(level Level) bool {
	if l.opts.Filter == nil {
		return true
	}
	return l.opts.Filter(l.category, level)
}

// BeginScope pushes value as the innermost ambient scope of ctx's execution
// path, delegating to the provider's current scope provider. With no scope
// provider bound it returns ctx unchanged and a no-op guard, so callers can
// use the same push/defer-release pattern unconditionally.
func (l *Logger) BeginScope(ctx context.Context, value any) (context.Context, scope.Guard) {
	p := l.scopes.load()
	if p == nil {
		return ctx, scope.Guard{}
	}
	return p.Push(ctx, value)
}

// Log records one event. Disabled events return immediately with no record
// built and no sink call. A nil formatter is a caller contract violation
// and fails with [ErrNilFormatter]; a nil err is not an error condition, it
// simply suppresses the exception field.
//
// The scope provider reference is read fresh on every call, so a provider
// swapped in by SetScopeProvider is observed by loggers created before the
// swap.
func (l *Logger) Log(ctx context.Context, level Level, eventID int, state any, err error, format Formatter) error {
	if !l.Enabled(level) {
		return nil
	}
	if format == nil {
		return fmt.Errorf("%w (category %q)", ErrNilFormatter, l.category)
	}

	var scopes []any
	if l.opts.IncludeScopes {
		if p := l.scopes.load(); p != nil {
			p.ForEach(ctx, func(v any) {
				scopes = append(scopes, v)
			})
		}
	}

	record := buildRecord(level, l.category, eventID, format(state, err), err, l.opts, scopes)
	text, serr := record.Serialize(l.opts.Pretty, l.opts.IncludeNewline)
	if serr != nil {
		return serr
	}
	l.out.Emit(text)
	return nil
}

// Logf records one event with a printf-style message.
func (l *Logger) Logf(ctx context.Context, level Level, eventID int, err error, format string, args ...any) error {
	if !l.Enabled(level) {
		return nil
	}
	return l.Log(ctx, level, eventID, fmt.Sprintf(format, args...), err, FormatMessage)
}
