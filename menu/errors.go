// SPDX-License-Identifier: Apache-2.0

package menu

import "errors"

var (
	// ErrDuplicateID is delivered to the second caller when properties for
	// an id are requested while the same id is already queued in the
	// current unflushed batch.
	ErrDuplicateID = errors.New("id already queued for properties")

	// ErrShutdown is delivered to every property request still pending
	// when the client shuts down.
	ErrShutdown = errors.New("client shutdown")

	// ErrNoProperties is delivered when a batched reply omits the id a
	// request was queued for.
	ErrNoProperties = errors.New("no properties returned for id")

	// ErrIDMismatch reports a layout descriptor whose id does not match
	// the live node it was matched against.
	ErrIDMismatch = errors.New("layout id does not match node id")

	// ErrDuplicateTypeHandler is returned when registering a handler for a
	// type that already has one.
	ErrDuplicateTypeHandler = errors.New("type already has a registered handler")

	// ErrClosed is returned by operations invoked after Close.
	ErrClosed = errors.New("client is closed")
)
