// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package filter compiles CEL expressions into log filter predicates.

An expression is evaluated per log event against three variables:

  - category (string): the emitting logger's category name
  - level (string): the capitalized level name, e.g. "Error"
  - severity (int): the numeric level rank, Trace=0 through Critical=5

Example expressions:

	category.startsWith("Microsoft.") && severity >= 3
	level == "Error" || category == "audit"

# Usage

	engine := filter.NewEngine()
	pred, err := engine.Compile(`severity >= 3`)
	if err != nil {
		// syntax or type errors surface at compile time
	}
	opts.Filter = pred.FilterFunc()

Evaluation failures at log time fail open: the event stays enabled rather
than being dropped silently.
*/
package filter
