// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package scope

import "context"

// Field is a single named key-value pair.
type Field struct {
	Key   string
	Value any
}

// Fields is an ordered sequence of named key-value pairs. Order is
// significant: consumers apply pairs in slice order.
type Fields []Field

// Guard removes a pushed scope entry when released. The zero value is a
// no-op guard that is safe to release any number of times.
type Guard struct {
	release func()
}

// Release removes the scope entry this guard was returned for. Releasing
// more than once has no further effect. Callers must release guards in
// reverse push order within an execution path; out-of-order release is
// undefined and is prevented structurally by pairing every push with a
// deferred Release.
func (g Guard) Release() {
	if g.release != nil {
		g.release()
	}
}

// Provider tracks active scopes per execution path.
//
// Push records value as the innermost active scope of the path identified
// by ctx and returns the derived context carrying it. ForEach visits every
// active scope of the path, innermost (most recently pushed, not yet
// released) to outermost. Both methods are safe for concurrent use from
// independent execution paths.
type Provider interface {
	Push(ctx context.Context, value any) (context.Context, Guard)
	ForEach(ctx context.Context, visit func(value any))
}
