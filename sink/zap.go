// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sink

import "go.uber.org/zap"

// Zap is a [Sink] that forwards rendered records into an existing zap
// pipeline. The record text becomes the zap message; routing, buffering,
// and output selection stay with the zap configuration.
type Zap struct {
	l *zap.Logger
}

// NewZap returns a sink emitting through l.
func NewZap(l *zap.Logger) *Zap {
	return &Zap{l: l}
}

// Emit logs text at info level on the wrapped logger.
func (s *Zap) Emit(text string) {
	s.l.Info(text)
}
