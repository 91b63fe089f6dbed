// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer between the menu
// synchronization engine and the process that owns the menu.
//
// The primary abstraction is [MenuTransport], which decouples the engine
// from the wire protocol. The package ships a D-Bus implementation
// ([NewDBusTransport]) speaking the com.canonical.dbusmenu interface over a
// godbus connection, including signal subscription and name-owner tracking.
//
// Error values defined in errors.go are returned by the D-Bus implementation
// so that callers can use [errors.Is] for transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/godbus/dbus/v5"

	"github.com/MKhiriev/go-dbusmenu/models"
)

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/menu_transport_mock.go -package=mock

// MenuTransport defines transport-agnostic communication with the remote
// menu owner. Implementations are responsible for serialisation and for
// mapping transport-level failures to error values; they must be safe for
// concurrent use, since the engine issues calls from short-lived goroutines.
type MenuTransport interface {
	// GetLayout fetches the layout document rooted at parentID together
	// with the revision number it represents. parentID 0 requests the
	// whole tree.
	GetLayout(ctx context.Context, parentID int32) (uint32, *models.LayoutNode, error)

	// GetGroupProperties fetches the properties of several nodes in one
	// round trip. An empty propertyNames slice requests all properties.
	// The reply may omit ids the server no longer knows about.
	GetGroupProperties(ctx context.Context, ids []int32, propertyNames []string) ([]models.ItemProperties, error)

	// GetProperties is the single-node variant of GetGroupProperties.
	GetProperties(ctx context.Context, id int32, propertyNames []string) (map[string]dbus.Variant, error)

	// Event delivers a user-initiated event (e.g. "clicked") for the node
	// identified by id. data carries event-specific payload and timestamp
	// is the originating input-event time.
	Event(ctx context.Context, id int32, eventID string, data dbus.Variant, timestamp uint32) error

	// AboutToShow tells the server the node's submenu is about to be
	// displayed. The reply reports whether the client should refresh its
	// layout first.
	AboutToShow(ctx context.Context, id int32) (bool, error)

	// Owner returns the unique name currently owning the remote endpoint
	// on the connection, or "" when the endpoint is absent. Calls issued
	// while no owner is present fail.
	Owner() string

	// Subscribe registers the sink that receives push notifications and
	// ownership changes. It may be called at most once, before any push
	// traffic is expected.
	Subscribe(sink EventSink) error

	// Close tears the subscription down. Outstanding calls fail with
	// ErrClosed. Close does not close the underlying shared connection.
	Close() error
}

// EventSink receives push notifications from the transport, in delivery
// order. The engine implements this interface; implementations of
// MenuTransport must not call it after Close returns.
type EventSink interface {
	// LayoutUpdated reports that the server-side layout reached the given
	// revision. parentID names the subtree that changed (0 for the whole
	// tree).
	LayoutUpdated(revision uint32, parentID int32)

	// ItemPropertyUpdated reports a single property change on one node.
	ItemPropertyUpdated(id int32, name string, value dbus.Variant)

	// ItemPropertiesUpdated reports a batched set of property changes and
	// removals across several nodes.
	ItemPropertiesUpdated(updated []models.ItemProperties, removed []models.ItemPropertyNames)

	// ItemUpdated reports that a node changed in an unspecified way and
	// its properties should be refetched.
	ItemUpdated(id int32)

	// ItemActivationRequested asks the client to activate (display) the
	// node identified by id.
	ItemActivationRequested(id int32, timestamp uint32)

	// OwnerChanged reports the remote endpoint's new unique owner name.
	// An empty owner means the endpoint disappeared from the connection.
	OwnerChanged(owner string)
}
