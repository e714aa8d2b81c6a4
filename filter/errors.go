// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package filter

import "errors"

// Sentinel errors for filter expression handling.
var (
	// ErrCompile is returned when an expression fails parsing, type
	// checking, or program construction.
	ErrCompile = errors.New("filter expression compilation failed")

	// ErrEvaluation is returned when a compiled expression fails at
	// evaluation time.
	ErrEvaluation = errors.New("filter expression evaluation failed")

	// ErrInvalidResult is returned when an expression evaluates to a
	// non-boolean value.
	ErrInvalidResult = errors.New("filter expression returned invalid result type")
)
