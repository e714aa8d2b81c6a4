// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package scope maintains ambient contextual data for log records.

A scope is a value that attaches automatically to every record emitted while
it is active. Scopes nest in a strict LIFO discipline per execution path:
pushing returns a derived [context.Context] carrying the new entry and a
[Guard] whose Release removes exactly that entry. Independent execution
paths (separate contexts, typically separate requests or goroutines) hold
disjoint stacks and never observe each other's entries.

# Shapes

Three value shapes are recognized by consumers of a scope stack:

  - [Fields]: an ordered sequence of named key-value pairs
  - [Field]: a single named key-value pair
  - anything else: an opaque value with no name

# Providers

[ContextProvider] tracks scopes for real. [NopProvider] does nothing and is
used when scope inclusion is disabled, keeping the hot path free of
bookkeeping. Stacks are keyed by the owning provider, so entries pushed
through one provider are invisible to another.

# Usage

	ctx, release := provider.Push(ctx, scope.Fields{{Key: "RequestId", Value: id}})
	defer release.Release()
*/
package scope
