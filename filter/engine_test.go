// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/jsonlog-core/jsonlog"
)

func TestEngine_Compile(t *testing.T) {
	t.Parallel()

	engine := NewEngine()

	t.Run("valid expression compiles", func(t *testing.T) {
		t.Parallel()
		pred, err := engine.Compile(`severity >= 3`)
		require.NoError(t, err)
		assert.Equal(t, `severity >= 3`, pred.Source())
	})

	t.Run("syntax error fails", func(t *testing.T) {
		t.Parallel()
		_, err := engine.Compile(`severity >=`)
		require.ErrorIs(t, err, ErrCompile)
	})

	t.Run("unknown variable fails", func(t *testing.T) {
		t.Parallel()
		_, err := engine.Compile(`loggerName == "x"`)
		require.ErrorIs(t, err, ErrCompile)
	})

	t.Run("non-boolean expression fails", func(t *testing.T) {
		t.Parallel()
		_, err := engine.Compile(`category`)
		require.ErrorIs(t, err, ErrCompile)
		assert.Contains(t, err.Error(), "want bool")
	})

	t.Run("oversized expression fails", func(t *testing.T) {
		t.Parallel()
		small := NewEngine().WithMaxExpressionLength(10)
		_, err := small.Compile(strings.Repeat(" ", 11) + "true")
		require.ErrorIs(t, err, ErrCompile)
	})
}

func TestEngine_Check(t *testing.T) {
	t.Parallel()

	engine := NewEngine()
	assert.NoError(t, engine.Check(`level == "Error"`))
	assert.ErrorIs(t, engine.Check(`level ==`), ErrCompile)
}

func TestPredicate_Evaluate(t *testing.T) {
	t.Parallel()

	engine := NewEngine()

	tests := []struct {
		name     string
		expr     string
		category string
		level    jsonlog.Level
		want     bool
	}{
		{
			name:     "severity threshold passes",
			expr:     `severity >= 3`,
			category: "X",
			level:    jsonlog.LevelError,
			want:     true,
		},
		{
			name:     "severity threshold rejects",
			expr:     `severity >= 3`,
			category: "X",
			level:    jsonlog.LevelDebug,
			want:     false,
		},
		{
			name:     "level name match",
			expr:     `level == "Error"`,
			category: "X",
			level:    jsonlog.LevelError,
			want:     true,
		},
		{
			name:     "category prefix",
			expr:     `category.startsWith("Some.")`,
			category: "Some.Category",
			level:    jsonlog.LevelTrace,
			want:     true,
		},
		{
			name:     "combined clauses",
			expr:     `category == "audit" || severity >= 4`,
			category: "other",
			level:    jsonlog.LevelCritical,
			want:     true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			pred, err := engine.Compile(tc.expr)
			require.NoError(t, err)

			got, err := pred.Evaluate(tc.category, tc.level)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPredicate_FilterFunc(t *testing.T) {
	t.Parallel()

	pred, err := NewEngine().Compile(`category == "allowed" && severity >= 3`)
	require.NoError(t, err)

	filter := pred.FilterFunc()
	assert.True(t, filter("allowed", jsonlog.LevelError))
	assert.False(t, filter("allowed", jsonlog.LevelInformation))
	assert.False(t, filter("denied", jsonlog.LevelError))
}
