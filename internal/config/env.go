// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Load returns the package defaults overridden by any DBUSMENU_* environment
// variables that are set.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type); the defaults are still usable in that case
// via Default.
func Load() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Default(), fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = DefaultBatchLimit
	}
	if cfg.EventTimeout <= 0 {
		cfg.EventTimeout = DefaultEventTimeout
	}

	return cfg, nil
}
