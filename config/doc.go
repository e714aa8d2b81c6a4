// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package config builds logging options from declarative configuration.

A YAML file selects the record fields to include, the output shape, a
minimum level, and an optional CEL filter expression:

	includeCategory: true
	includeLogLevel: true
	pretty: false
	minLevel: Information
	filterExpression: 'category.startsWith("Some.") || severity >= 4'

# Usage

	cfg, err := config.Load(path)
	if err != nil { ... }
	cfg.ApplyEnv(&env.OSReader{})
	opts, err := cfg.Options()

Unset fields keep the [jsonlog.DefaultOptions] values. The default file
location follows the XDG base directory spec, see [DefaultPath].

# Environment Overrides

ApplyEnv overlays a small set of variables on top of the file:

	JSONLOG_PRETTY     boolean, overrides pretty
	JSONLOG_MIN_LEVEL  level name, overrides minLevel
	JSONLOG_FILTER     CEL expression, overrides filterExpression
*/
package config
