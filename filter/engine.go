// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/stacklok/jsonlog-core/jsonlog"
)

const (
	// DefaultMaxExpressionLength is the maximum allowed length for a
	// filter expression. The limit keeps pathological expressions out of
	// configuration files.
	DefaultMaxExpressionLength = 2048

	// DefaultCostLimit is the runtime cost limit for predicate
	// evaluation. Filters run on the logging hot path and must stay cheap.
	DefaultCostLimit = 100000
)

// Engine compiles filter expressions. It is safe for concurrent use; the
// underlying CEL environment is built lazily on first compile.
type Engine struct {
	once      sync.Once
	env       *cel.Env
	envErr    error
	maxLen    int
	costLimit uint64
}

// NewEngine returns an engine with the default limits.
func NewEngine() *Engine {
	return &Engine{
		maxLen:    DefaultMaxExpressionLength,
		costLimit: DefaultCostLimit,
	}
}

// WithMaxExpressionLength overrides the maximum expression length.
func (e *Engine) WithMaxExpressionLength(maxLen int) *Engine {
	e.maxLen = maxLen
	return e
}

// WithCostLimit overrides the runtime cost limit.
func (e *Engine) WithCostLimit(limit uint64) *Engine {
	e.costLimit = limit
	return e
}

func (e *Engine) getEnv() (*cel.Env, error) {
	e.once.Do(func() {
		e.env, e.envErr = cel.NewEnv(
			cel.Variable("category", cel.StringType),
			cel.Variable("level", cel.StringType),
			cel.Variable("severity", cel.IntType),
		)
	})
	return e.env, e.envErr
}

// Check verifies that an expression is syntactically and semantically valid
// and evaluates to a boolean, without building a program. Useful for
// configuration validation.
func (e *Engine) Check(expr string) error {
	_, err := e.compile(expr)
	return err
}

// Compile parses, type-checks, and compiles an expression into a
// [Predicate] that can be evaluated for every log event.
func (e *Engine) Compile(expr string) (*Predicate, error) {
	ast, err := e.compile(expr)
	if err != nil {
		return nil, err
	}

	env, err := e.getEnv()
	if err != nil {
		return nil, err
	}
	program, err := env.Program(ast, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrCompile, expr, err)
	}

	return &Predicate{source: expr, program: program}, nil
}

func (e *Engine) compile(expr string) (*cel.Ast, error) {
	if len(expr) > e.maxLen {
		return nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrCompile, len(expr), e.maxLen)
	}

	env, err := e.getEnv()
	if err != nil {
		return nil, fmt.Errorf("build CEL environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues.Err() != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrCompile, expr, issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("%w: %q evaluates to %s, want bool",
			ErrCompile, expr, ast.OutputType())
	}
	return ast, nil
}

// Predicate is a compiled filter expression.
type Predicate struct {
	source  string
	program cel.Program
}

// Source returns the original expression text.
func (p *Predicate) Source() string {
	return p.source
}

// Evaluate runs the predicate for one (category, level) pair.
func (p *Predicate) Evaluate(category string, level jsonlog.Level) (bool, error) {
	out, _, err := p.program.Eval(map[string]any{
		"category": category,
		"level":    level.String(),
		"severity": int64(level),
	})
	if err != nil {
		return false, fmt.Errorf("%w: %q: %w", ErrEvaluation, p.source, err)
	}
	verdict, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q returned %T, want bool", ErrInvalidResult, p.source, out.Value())
	}
	return verdict, nil
}

// FilterFunc adapts the predicate to [jsonlog.FilterFunc]. Evaluation
// failures fail open: the event stays enabled rather than being lost.
func (p *Predicate) FilterFunc() jsonlog.FilterFunc {
	return func(category string, level jsonlog.Level) bool {
		verdict, err := p.Evaluate(category, level)
		if err != nil {
			return true
		}
		return verdict
	}
}
