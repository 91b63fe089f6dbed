// SPDX-License-Identifier: Apache-2.0

package adapter

import "errors"

var (
	// ErrNoOwner is returned when a call is issued while the remote
	// endpoint has no owner on the connection.
	ErrNoOwner = errors.New("menu endpoint has no owner")

	// ErrClosed is returned for calls issued after Close.
	ErrClosed = errors.New("transport is closed")

	// ErrAlreadySubscribed is returned by Subscribe when a sink has
	// already been registered.
	ErrAlreadySubscribed = errors.New("transport already has a subscriber")
)
