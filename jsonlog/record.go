// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package jsonlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	pkgerrors "github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/stacklok/jsonlog-core/scope"
)

// Reserved record field names, in their fixed emission order.
const (
	fieldLogLevel  = "logLevel"
	fieldScope     = "Scope"
	fieldCategory  = "category"
	fieldEventID   = "eventId"
	fieldText      = "text"
	fieldException = "exception"
)

// LogRecord is the ordered set of fields produced for one log event. It has
// no identity beyond that event: it is built, serialized, and discarded.
type LogRecord struct {
	fields *orderedmap.OrderedMap[string, any]
}

// Get returns the value of a field by its external name.
func (r *LogRecord) Get(name string) (any, bool) {
	return r.fields.Get(name)
}

// Keys returns the field names in emission order.
func (r *LogRecord) Keys() []string {
	keys := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Serialize renders the record as JSON text with field order preserved,
// optionally indented and newline-terminated. It fails only when a field
// holds a value JSON cannot represent, which is a coding error in the
// caller that pushed the value.
func (r *LogRecord) Serialize(pretty, newline bool) (string, error) {
	data, err := json.Marshal(r.fields)
	if err != nil {
		return "", fmt.Errorf("serialize log record: %w", err)
	}
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return "", fmt.Errorf("serialize log record: %w", err)
		}
		data = buf.Bytes()
	}
	if newline {
		data = append(data, '\n')
	}
	return string(data), nil
}

// exceptionValue is the nested object emitted for an event's error. Both
// sub-fields are nullable strings.
type exceptionValue struct {
	Error      *string `json:"error"`
	StackTrace *string `json:"stackTrace"`
}

// stackTracer matches errors carrying a pkg/errors-style stack trace.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

func newExceptionValue(err error) exceptionValue {
	msg := err.Error()
	ex := exceptionValue{Error: &msg}
	var st stackTracer
	if errors.As(err, &st) {
		trace := fmt.Sprintf("%+v", st.StackTrace())
		ex.StackTrace = &trace
	}
	return ex
}

// camelCase lowercases the leading rune of a field name, preserving
// internal word boundaries: "LogLevel" becomes "logLevel".
func camelCase(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError && size <= 1 {
		return name
	}
	lower := unicode.ToLower(r)
	if lower == r {
		return name
	}
	return string(lower) + name[size:]
}

// buildRecord assembles the ordered record for one event. Callers must have
// already checked enablement; buildRecord itself never filters.
//
// Scopes are given innermost first. Named pairs flatten into top-level
// fields; the first writer of a name wins, which makes the innermost
// (last-pushed) scope take precedence. Unnamed values collect into a
// "Scope" array created at the position of the first unnamed scope.
func buildRecord(level Level, category string, eventID int, text string, err error, opts *Options, scopes []any) *LogRecord {
	fields := orderedmap.New[string, any]()

	if opts.IncludeLogLevel {
		fields.Set(fieldLogLevel, level.String())
	}

	if opts.IncludeScopes {
		var unnamed []any
		setScopeField := func(key string, value any) {
			key = camelCase(key)
			if _, exists := fields.Get(key); exists {
				return
			}
			fields.Set(key, value)
		}
		for _, s := range scopes {
			switch v := s.(type) {
			case scope.Fields:
				for _, f := range v {
					setScopeField(f.Key, f.Value)
				}
			case scope.Field:
				setScopeField(v.Key, v.Value)
			default:
				unnamed = append(unnamed, v)
				// Set keeps the position of the first insertion, so the
				// array stays where the first unnamed scope appeared.
				fields.Set(fieldScope, unnamed)
			}
		}
	}

	if opts.IncludeCategory && category != "" {
		fields.Set(fieldCategory, category)
	}
	if opts.IncludeEventID {
		fields.Set(fieldEventID, eventID)
	}
	fields.Set(fieldText, text)
	if opts.IncludeException && err != nil {
		fields.Set(fieldException, newExceptionValue(err))
	}

	return &LogRecord{fields: fields}
}
