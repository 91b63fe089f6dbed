// SPDX-License-Identifier: Apache-2.0

// Package config holds environment-driven tuning knobs for the menu
// synchronization engine and its D-Bus transport. All values have defaults
// matching the reference protocol behavior; configuration is optional.
package config

import (
	"time"
)

// Defaults applied by Load when the corresponding environment variable is
// unset.
const (
	// DefaultEventTimeout bounds an Event remote call. Event dispatch is
	// fire-and-forget from the user's point of view, so a short timeout
	// keeps a dead server from pinning completion callbacks.
	DefaultEventTimeout = 1 * time.Second

	// DefaultBatchLimit is the number of queued property requests that
	// forces an eager batch flush.
	DefaultBatchLimit = 100
)

// Config aggregates all tunables for one client instance.
//
// Struct tags:
//   - env — direct environment variable name (caarlos0/env).
type Config struct {
	// CallTimeout is the maximum duration of a layout or property fetch.
	// Zero means no timeout (the call is still cancellable).
	// Env: DBUSMENU_CALL_TIMEOUT
	CallTimeout time.Duration `env:"DBUSMENU_CALL_TIMEOUT"`

	// EventTimeout is the maximum duration of an Event remote call.
	// Env: DBUSMENU_EVENT_TIMEOUT
	EventTimeout time.Duration `env:"DBUSMENU_EVENT_TIMEOUT"`

	// BatchLimit is the property-request queue capacity that triggers an
	// eager flush before the scheduled one.
	// Env: DBUSMENU_BATCH_LIMIT
	BatchLimit int `env:"DBUSMENU_BATCH_LIMIT"`
}

// Default returns a Config populated with the package defaults, without
// consulting the environment.
func Default() Config {
	return Config{
		EventTimeout: DefaultEventTimeout,
		BatchLimit:   DefaultBatchLimit,
	}
}
