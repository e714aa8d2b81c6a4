// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sink

//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks Sink

// Sink receives one fully serialized log record per Emit call.
// Implementations must be safe for concurrent use.
type Sink interface {
	Emit(text string)
}

// Func adapts a plain function to the [Sink] interface.
type Func func(text string)

// Emit calls f.
func (f Func) Emit(text string) {
	f(text)
}
