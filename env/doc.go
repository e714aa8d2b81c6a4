// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, enabling dependency injection and testing isolation.

# Basic Usage

Use OSReader to read environment variables via the standard os package:

	reader := &env.OSReader{}
	value := reader.Getenv("JSONLOG_PRETTY")

# Testing

The Reader interface allows injecting a substitute in tests to avoid
touching the real process environment:

	reader := env.MapReader{"JSONLOG_PRETTY": "true"}
	cfg.ApplyEnv(reader)

# Design

Production code accepts an env.Reader; the config package uses it to apply
environment overrides without reading globals directly.
*/
package env
