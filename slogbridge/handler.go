// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package slogbridge

import (
	"context"
	"log/slog"

	"github.com/stacklok/jsonlog-core/jsonlog"
	"github.com/stacklok/jsonlog-core/scope"
)

// Handler is a [log/slog.Handler] emitting through a jsonlog logger.
type Handler struct {
	logger *jsonlog.Logger
	attrs  scope.Fields
	group  string
}

// New returns a handler bound to the provider's logger for category.
func New(provider *jsonlog.LoggerProvider, category string) *Handler {
	return &Handler{logger: provider.Logger(category)}
}

// Enabled reports whether the mapped level passes the configured filter.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(fromSlogLevel(level))
}

// Handle converts the slog record into a jsonlog record. Handler and
// record attributes attach as one named-pair scope around the log call,
// so they flatten into the record like any other scope.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	fields := make(scope.Fields, 0, len(h.attrs)+r.NumAttrs())
	fields = append(fields, h.attrs...)

	var logErr error
	r.Attrs(func(a slog.Attr) bool {
		if err, ok := a.Value.Any().(error); ok && (a.Key == "error" || a.Key == "err") {
			logErr = err
			return true
		}
		fields = append(fields, scope.Field{Key: h.group + a.Key, Value: a.Value.Any()})
		return true
	})

	if len(fields) > 0 {
		var release scope.Guard
		ctx, release = h.logger.BeginScope(ctx, fields)
		defer release.Release()
	}

	return h.logger.Log(ctx, fromSlogLevel(r.Level), 0, r.Message, logErr, jsonlog.FormatMessage)
}

// WithAttrs returns a handler whose records carry the given attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	nh := *h
	nh.attrs = make(scope.Fields, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	for _, a := range attrs {
		nh.attrs = append(nh.attrs, scope.Field{Key: h.group + a.Key, Value: a.Value.Any()})
	}
	return &nh
}

// WithGroup returns a handler qualifying subsequent attribute keys with
// the group name, dot-separated.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.group = h.group + name + "."
	return &nh
}

// fromSlogLevel maps slog levels onto jsonlog levels. Levels below debug
// map to trace; levels above error map to critical.
func fromSlogLevel(level slog.Level) jsonlog.Level {
	switch {
	case level < slog.LevelDebug:
		return jsonlog.LevelTrace
	case level < slog.LevelInfo:
		return jsonlog.LevelDebug
	case level < slog.LevelWarn:
		return jsonlog.LevelInformation
	case level < slog.LevelError:
		return jsonlog.LevelWarning
	case level == slog.LevelError:
		return jsonlog.LevelError
	default:
		return jsonlog.LevelCritical
	}
}
