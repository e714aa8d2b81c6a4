// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package scope

import (
	"context"
	"sync/atomic"
)

// stackKey identifies the scope stack of one provider within a context.
// Keying by the owning provider keeps stacks of distinct providers
// invisible to each other.
type stackKey struct {
	owner *ContextProvider
}

// node is one entry of a scope stack. Entries form a singly linked list
// from innermost to outermost; the list itself is immutable once built, so
// concurrent readers need no locking. Release only flips the released flag,
// it never unlinks.
type node struct {
	value    any
	parent   *node
	released atomic.Bool
}

// ContextProvider is a [Provider] that carries scope stacks in contexts.
// The zero value is not usable; create instances with [NewContextProvider].
type ContextProvider struct {
	// unexported field so distinct providers have distinct identities
	// even when the struct is otherwise empty.
	_ byte
}

// NewContextProvider returns a provider with an empty scope stack on every
// execution path.
func NewContextProvider() *ContextProvider {
	return &ContextProvider{}
}

// Push records value as the innermost active scope of ctx's path and
// returns the derived context together with the guard releasing the entry.
func (p *ContextProvider) Push(ctx context.Context, value any) (context.Context, Guard) {
	parent, _ := ctx.Value(stackKey{p}).(*node)
	n := &node{value: value, parent: parent}
	release := func() {
		n.released.CompareAndSwap(false, true)
	}
	return context.WithValue(ctx, stackKey{p}, n), Guard{release: release}
}

// ForEach visits the active scopes of ctx's path, innermost to outermost.
// Released entries are skipped.
func (p *ContextProvider) ForEach(ctx context.Context, visit func(value any)) {
	n, _ := ctx.Value(stackKey{p}).(*node)
	for ; n != nil; n = n.parent {
		if n.released.Load() {
			continue
		}
		visit(n.value)
	}
}
