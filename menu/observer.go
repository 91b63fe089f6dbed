// SPDX-License-Identifier: Apache-2.0

package menu

import "github.com/godbus/dbus/v5"

// Observer receives engine notifications. All callbacks are delivered on
// the engine's run loop: they must not block, and node references are safe
// to traverse only from within a callback or after Close.
//
// Embed NopObserver to implement a subset of the callbacks.
type Observer interface {
	// OnLayoutUpdated fires after a fetched layout has been applied, and
	// when the tree is cleared because the remote endpoint disappeared.
	OnLayoutUpdated()

	// OnRootChanged fires when the identity of the root node changes.
	// root is nil when the tree has been cleared.
	OnRootChanged(root *MenuNode)

	// OnNewNode fires for every node created during reconciliation, after
	// its initial property fetch has completed and no type handler claimed
	// it.
	OnNewNode(node *MenuNode)

	// OnItemActivated fires when the server requests activation of a node.
	OnItemActivated(node *MenuNode, timestamp uint32)

	// OnEventResult fires after an Event remote call completes, carrying
	// the transport error if the call failed.
	OnEventResult(node *MenuNode, eventID string, data dbus.Variant, timestamp uint32, err error)
}

// NopObserver implements Observer with no-ops for embedding.
type NopObserver struct{}

func (NopObserver) OnLayoutUpdated()                                                    {}
func (NopObserver) OnRootChanged(*MenuNode)                                             {}
func (NopObserver) OnNewNode(*MenuNode)                                                 {}
func (NopObserver) OnItemActivated(*MenuNode, uint32)                                   {}
func (NopObserver) OnEventResult(*MenuNode, string, dbus.Variant, uint32, error)        {}

var _ Observer = NopObserver{}

func (c *Client) notifyLayoutUpdated() {
	for _, o := range c.observers {
		o.OnLayoutUpdated()
	}
}

func (c *Client) notifyRootChanged(root *MenuNode) {
	for _, o := range c.observers {
		o.OnRootChanged(root)
	}
}

func (c *Client) notifyNewNode(node *MenuNode) {
	for _, o := range c.observers {
		o.OnNewNode(node)
	}
}

func (c *Client) notifyItemActivated(node *MenuNode, timestamp uint32) {
	for _, o := range c.observers {
		o.OnItemActivated(node, timestamp)
	}
}

func (c *Client) notifyEventResult(node *MenuNode, eventID string, data dbus.Variant, timestamp uint32, err error) {
	for _, o := range c.observers {
		o.OnEventResult(node, eventID, data, timestamp, err)
	}
}
