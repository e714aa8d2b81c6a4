// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package scope

import "context"

// NopProvider is a [Provider] that tracks nothing. Push returns the context
// unchanged with a no-op guard and ForEach visits no scopes, so callers can
// keep the push/release pattern unconditionally while paying no bookkeeping
// cost when scopes are disabled.
type NopProvider struct{}

// Push returns ctx unchanged and a guard that does nothing.
func (NopProvider) Push(ctx context.Context, _ any) (context.Context, Guard) {
	return ctx, Guard{}
}

// ForEach visits nothing.
func (NopProvider) ForEach(context.Context, func(value any)) {}
