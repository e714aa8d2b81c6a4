// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import "github.com/adrg/xdg"

// DefaultPath returns the conventional config file location following the
// XDG base directory spec, typically ~/.config/jsonlog/config.yaml. The
// parent directory is created if needed.
func DefaultPath() (string, error) {
	return xdg.ConfigFile("jsonlog/config.yaml")
}
