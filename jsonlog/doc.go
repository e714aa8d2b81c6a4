// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package jsonlog assembles runtime log events into ordered, machine-parsable
JSON records and forwards them to a sink.

A [LoggerProvider] hands out exactly one [Logger] per category name. Each
log call merges the event's own fields with the ambient scopes active on the
calling context, in a fixed field order:

	logLevel → scope contributions → category → eventId → text → exception

Named scope pairs flatten into top-level fields (the innermost scope wins a
name collision); unnamed scope values collect into a "Scope" array. Field
names render in external camelCase and absent fields are omitted rather than
rendered as null.

# Basic Usage

	provider, err := jsonlog.NewLoggerProvider(sink.NewWriter(os.Stdout), jsonlog.DefaultOptions())
	if err != nil {
		// only fails on nil options
	}
	logger := provider.Logger("Some.Category")

	ctx, release := logger.BeginScope(ctx, scope.Fields{{Key: "RequestId", Value: id}})
	defer release.Release()

	logger.Logf(ctx, jsonlog.LevelError, 0, err, "Test %s.", "Error")

# Filtering

[Options.Filter] decides per (category, level) whether an event is recorded
at all. Disabled events are silent no-ops: no record is built and the sink
is never called. See the filter package for CEL-based predicates and the
config package for declarative configuration.

# Scope Providers

[LoggerProvider.SetScopeProvider] swaps the active scope provider for every
logger the provider has handed out, including loggers obtained before the
call. Scope state is provider-specific: after a swap, scopes pushed through
the old provider are no longer visible.

# Reserved Names

A named scope pair whose key camelCases to one of the reserved field names
(logLevel, category, eventId, text, exception) collides with the record's
own fields; the outcome is undefined and callers should avoid such keys.
*/
package jsonlog
