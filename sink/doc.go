// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package sink defines the destination that receives fully serialized log
records as text, together with adapters for common destinations.

The core treats the sink as a single fire-and-forget call: it never consumes
a return value and never retries. Transient delivery failures are the
sink's own concern.

# Adapters

  - [Writer]: writes each record to an io.Writer, serializing concurrent emits
  - [Zap]: forwards each record into an existing zap pipeline
  - [Logr]: forwards each record through a logr.Logger
  - [Func]: adapts a plain function, convenient in tests

# Testing

A generated gomock mock is available in the mocks sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockSink(ctrl)
	mock.EXPECT().Emit(gomock.Any())
*/
package sink
