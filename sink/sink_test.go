// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFunc(t *testing.T) {
	t.Parallel()

	var got string
	s := Func(func(text string) {
		got = text
	})
	s.Emit("hello")
	assert.Equal(t, "hello", got)
}

func TestWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes record text verbatim", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		s := NewWriter(&buf)
		s.Emit(`{"text":"hello"}` + "\n")
		assert.Equal(t, `{"text":"hello"}`+"\n", buf.String())
	})

	t.Run("concurrent emits do not interleave", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		s := NewWriter(&buf)

		var wg sync.WaitGroup
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.Emit("aaaa\n")
			}()
		}
		wg.Wait()

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 32)
		for _, l := range lines {
			assert.Equal(t, "aaaa", l)
		}
	})
}

func TestZap(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	s := NewZap(zap.New(core))

	s.Emit(`{"text":"hello"}`)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, `{"text":"hello"}`, entries[0].Message)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
}

func TestLogr(t *testing.T) {
	t.Parallel()

	var got string
	l := funcr.New(func(_, args string) {
		got = args
	}, funcr.Options{})

	NewLogr(l).Emit(`{"text":"hello"}`)
	assert.Contains(t, got, `{\"text\":\"hello\"}`)
}
