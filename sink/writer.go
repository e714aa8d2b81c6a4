// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"io"
	"sync"
)

// Writer is a [Sink] that writes records to an io.Writer. A mutex keeps
// records from concurrent emitters from interleaving.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter returns a sink writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Emit writes text to the underlying writer. Write errors are dropped;
// delivery is fire-and-forget.
func (s *Writer) Emit(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.w, text)
}
