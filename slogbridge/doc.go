// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package slogbridge registers the jsonlog core as a back end of Go's
standard structured logging pipeline.

[Handler] implements [log/slog.Handler] over one logger of a
[jsonlog.LoggerProvider]. Records flow through the usual pipeline:
handler attributes become a named-pair scope for the duration of Handle,
slog levels map onto jsonlog levels, and the configured filter drives
Enabled.

# Usage

	provider, _ := jsonlog.NewLoggerProvider(out, jsonlog.DefaultOptions())
	logger := slog.New(slogbridge.New(provider, "http"))

	logger.Info("request served", "RequestId", id)

An attribute named "error" or "err" holding an error populates the
record's exception field instead of flattening into a scope field.
*/
package slogbridge
