// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package jsonlog

import "errors"

// Sentinel errors for caller contract violations. Disabled levels,
// filter-rejected events, and nil error arguments are not error conditions;
// they are silent no-ops.
var (
	// ErrNilOptions is returned when a provider is constructed without an
	// options value.
	ErrNilOptions = errors.New("logger provider requires options")

	// ErrNilFormatter is returned when a log call supplies no formatter
	// for its message.
	ErrNilFormatter = errors.New("log call requires a formatter")
)
