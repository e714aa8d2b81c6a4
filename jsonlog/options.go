// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package jsonlog

// FilterFunc decides whether an event with the given category and level is
// recorded at all. It must be pure: the same inputs always produce the same
// verdict, with no side effects.
type FilterFunc func(category string, level Level) bool

// Options controls which fields appear in emitted records. An Options value
// is shared by every logger of one provider and must not be mutated after
// the provider is constructed.
type Options struct {
	// IncludeCategory adds the logger's category name to each record.
	IncludeCategory bool

	// IncludeLogLevel adds the event's severity to each record.
	IncludeLogLevel bool

	// IncludeEventID adds the numeric event id to each record.
	IncludeEventID bool

	// IncludeException adds an exception object when an error accompanies
	// the event.
	IncludeException bool

	// IncludeScopes merges the ambient scopes active on the calling
	// context into each record. When false the provider installs a no-op
	// scope provider, so scope pushes cost nothing.
	IncludeScopes bool

	// IncludeNewline terminates each serialized record with a newline.
	IncludeNewline bool

	// Pretty indents the serialized record. Compact and pretty output
	// parse back to the same structure; this is purely a sink-side
	// presentation choice.
	Pretty bool

	// Filter, when non-nil, gates every event. A nil Filter enables all
	// levels.
	Filter FilterFunc
}

// DefaultOptions returns options including every field, compact output,
// newline-terminated records, and no filter.
func DefaultOptions() *Options {
	return &Options{
		IncludeCategory:  true,
		IncludeLogLevel:  true,
		IncludeEventID:   true,
		IncludeException: true,
		IncludeScopes:    true,
		IncludeNewline:   true,
	}
}
