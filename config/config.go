// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/jsonlog-core/env"
	"github.com/stacklok/jsonlog-core/filter"
	"github.com/stacklok/jsonlog-core/jsonlog"
)

// Environment variable names recognized by ApplyEnv.
const (
	EnvPretty   = "JSONLOG_PRETTY"
	EnvMinLevel = "JSONLOG_MIN_LEVEL"
	EnvFilter   = "JSONLOG_FILTER"
)

// Config is the declarative form of [jsonlog.Options]. Pointer fields
// distinguish "unset" (keep the default) from an explicit false.
type Config struct {
	IncludeCategory  *bool  `yaml:"includeCategory"`
	IncludeLogLevel  *bool  `yaml:"includeLogLevel"`
	IncludeEventID   *bool  `yaml:"includeEventId"`
	IncludeException *bool  `yaml:"includeException"`
	IncludeScopes    *bool  `yaml:"includeScopes"`
	IncludeNewline   *bool  `yaml:"includeNewline"`
	Pretty           *bool  `yaml:"pretty"`
	MinLevel         string `yaml:"minLevel"`
	FilterExpression string `yaml:"filterExpression"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses and validates YAML config data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field for well-formedness, including a full
// compile check of the filter expression.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.MinLevel, validation.By(validLevelName)),
		validation.Field(&c.FilterExpression,
			validation.RuneLength(0, filter.DefaultMaxExpressionLength),
			validation.By(validExpression)),
	)
}

func validLevelName(value any) error {
	name, _ := value.(string)
	if name == "" {
		return nil
	}
	_, err := jsonlog.ParseLevel(name)
	return err
}

func validExpression(value any) error {
	expr, _ := value.(string)
	if expr == "" {
		return nil
	}
	return filter.NewEngine().Check(expr)
}

// ApplyEnv overlays environment overrides on the config. Unset or
// malformed variables leave the corresponding field untouched, matching
// how absent file fields behave.
func (c *Config) ApplyEnv(reader env.Reader) {
	if raw := reader.Getenv(EnvPretty); raw != "" {
		if pretty, err := strconv.ParseBool(raw); err == nil {
			c.Pretty = &pretty
		}
	}
	if raw := reader.Getenv(EnvMinLevel); raw != "" {
		if _, err := jsonlog.ParseLevel(raw); err == nil {
			c.MinLevel = raw
		}
	}
	if raw := reader.Getenv(EnvFilter); raw != "" {
		if filter.NewEngine().Check(raw) == nil {
			c.FilterExpression = raw
		}
	}
}

// Options materializes the config into [jsonlog.Options], compiling the
// filter expression and minimum level into a single filter function.
func (c *Config) Options() (*jsonlog.Options, error) {
	opts := jsonlog.DefaultOptions()
	applyBool := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	applyBool(&opts.IncludeCategory, c.IncludeCategory)
	applyBool(&opts.IncludeLogLevel, c.IncludeLogLevel)
	applyBool(&opts.IncludeEventID, c.IncludeEventID)
	applyBool(&opts.IncludeException, c.IncludeException)
	applyBool(&opts.IncludeScopes, c.IncludeScopes)
	applyBool(&opts.IncludeNewline, c.IncludeNewline)
	applyBool(&opts.Pretty, c.Pretty)

	min := jsonlog.LevelTrace
	if c.MinLevel != "" {
		parsed, err := jsonlog.ParseLevel(c.MinLevel)
		if err != nil {
			return nil, err
		}
		min = parsed
	}

	var pred *filter.Predicate
	if c.FilterExpression != "" {
		compiled, err := filter.NewEngine().Compile(c.FilterExpression)
		if err != nil {
			return nil, err
		}
		pred = compiled
	}

	if min > jsonlog.LevelTrace || pred != nil {
		predFilter := jsonlog.FilterFunc(nil)
		if pred != nil {
			predFilter = pred.FilterFunc()
		}
		opts.Filter = func(category string, level jsonlog.Level) bool {
			if level == jsonlog.LevelNone || level < min {
				return false
			}
			if predFilter != nil {
				return predFilter(category, level)
			}
			return true
		}
	}

	return opts, nil
}
