// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sink

import "github.com/go-logr/logr"

// Logr is a [Sink] that forwards rendered records through a logr.Logger,
// for hosts whose logging pipeline speaks logr.
type Logr struct {
	l logr.Logger
}

// NewLogr returns a sink emitting through l.
func NewLogr(l logr.Logger) *Logr {
	return &Logr{l: l}
}

// Emit logs text at verbosity 0 on the wrapped logger.
func (s *Logr) Emit(text string) {
	s.l.Info(text)
}
