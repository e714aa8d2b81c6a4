// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package jsonlog

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/stacklok/jsonlog-core/scope"
	"github.com/stacklok/jsonlog-core/sink"
)

// DefaultCategory is the category name used when a logger is requested with
// an empty name.
const DefaultCategory = "default"

// scopeRef is an atomically swappable scope provider reference shared by a
// provider and every logger it hands out. Loggers load it fresh on every
// log call. The box keeps atomic.Value's concrete type stable across
// distinct provider implementations.
type scopeRef struct {
	v atomic.Value
}

type providerBox struct {
	p scope.Provider
}

func (r *scopeRef) load() scope.Provider {
	box, _ := r.v.Load().(providerBox)
	return box.p
}

func (r *scopeRef) store(p scope.Provider) {
	r.v.Store(providerBox{p: p})
}

// LoggerProvider hands out exactly one [Logger] per category name and owns
// the process-wide active scope provider reference. It is safe for
// concurrent use.
type LoggerProvider struct {
	opts    *Options
	out     sink.Sink
	scopes  scopeRef
	loggers sync.Map // category name -> *Logger
}

// NewLoggerProvider creates a provider emitting through out with the given
// options. A nil opts fails with [ErrNilOptions]. A nil out defaults to a
// line writer on stderr. The initial scope provider tracks scopes only when
// opts.IncludeScopes is set; otherwise a no-op provider keeps scope pushes
// free.
func NewLoggerProvider(out sink.Sink, opts *Options) (*LoggerProvider, error) {
	if opts == nil {
		return nil, ErrNilOptions
	}
	if out == nil {
		out = sink.NewWriter(os.Stderr)
	}
	p := &LoggerProvider{opts: opts, out: out}
	if opts.IncludeScopes {
		p.scopes.store(scope.NewContextProvider())
	} else {
		p.scopes.store(scope.NopProvider{})
	}
	return p, nil
}

// Logger returns the logger for category, creating it on first request. An
// empty category maps to [DefaultCategory]. Concurrent calls with the same
// name always observe the same instance: the insert is an atomic
// get-or-insert, and a losing racer's instance is discarded before anyone
// can see it.
func (p *LoggerProvider) Logger(category string) *Logger {
	if category == "" {
		category = DefaultCategory
	}
	if l, ok := p.loggers.Load(category); ok {
		return l.(*Logger)
	}
	l := &Logger{
		category: category,
		opts:     p.opts,
		scopes:   &p.scopes,
		out:      p.out,
	}
	actual, _ := p.loggers.LoadOrStore(category, l)
	return actual.(*Logger)
}

// SetScopeProvider replaces the active scope provider for every logger this
// provider has handed out, including loggers obtained before the call. The
// swap is atomic; a log call already in flight may observe either provider.
// Scope state is provider-specific, so scopes pushed through the old
// provider are no longer visible after the swap.
func (p *LoggerProvider) SetScopeProvider(sp scope.Provider) {
	p.scopes.store(sp)
}
