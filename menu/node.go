// SPDX-License-Identifier: Apache-2.0

package menu

import (
	"github.com/godbus/dbus/v5"
)

// Well-known property names of the com.canonical.dbusmenu interface.
const (
	PropType            = "type"
	PropLabel           = "label"
	PropEnabled         = "enabled"
	PropVisible         = "visible"
	PropIconName        = "icon-name"
	PropIconData        = "icon-data"
	PropToggleType      = "toggle-type"
	PropToggleState     = "toggle-state"
	PropChildrenDisplay = "children-display"
)

// TypeDefault is the registry key consulted for nodes that carry no "type"
// property.
const TypeDefault = "standard"

// MenuNode is one node of the replicated menu tree. Identity is the
// remote-assigned id; 0 is reserved for the synthetic root. The engine owns
// every node exclusively: observers receive references for read and
// traversal only and must not mutate them.
type MenuNode struct {
	id       int32
	root     bool
	realized bool

	parent     *MenuNode
	children   []*MenuNode
	properties map[string]dbus.Variant
}

func newMenuNode(id int32) *MenuNode {
	return &MenuNode{
		id:         id,
		properties: make(map[string]dbus.Variant),
	}
}

// ID returns the remote-assigned identity of the node.
func (n *MenuNode) ID() int32 { return n.id }

// IsRoot reports whether the node is the synthetic root of the tree.
func (n *MenuNode) IsRoot() bool { return n.root }

// Realized reports whether the node's initial property fetch has completed
// and the node is safe to present.
func (n *MenuNode) Realized() bool { return n.realized }

// Parent returns the owning parent, or nil for the root and for detached
// nodes.
func (n *MenuNode) Parent() *MenuNode { return n.parent }

// Children returns the node's children in display order. The returned slice
// is a copy; the nodes it points to are still engine-owned.
func (n *MenuNode) Children() []*MenuNode {
	out := make([]*MenuNode, len(n.children))
	copy(out, n.children)
	return out
}

// Property returns the raw typed value of the named property.
func (n *MenuNode) Property(name string) (dbus.Variant, bool) {
	v, ok := n.properties[name]
	return v, ok
}

// PropertyString returns the named property as a string, or "" when absent
// or not a string.
func (n *MenuNode) PropertyString(name string) string {
	if v, ok := n.properties[name]; ok {
		if s, ok := v.Value().(string); ok {
			return s
		}
	}
	return ""
}

// PropertyInt returns the named property as an int, or 0 when absent or not
// an integer type.
func (n *MenuNode) PropertyInt(name string) int {
	v, ok := n.properties[name]
	if !ok {
		return 0
	}
	switch i := v.Value().(type) {
	case int32:
		return int(i)
	case uint32:
		return int(i)
	case int64:
		return int(i)
	case int16:
		return int(i)
	case byte:
		return int(i)
	}
	return 0
}

// PropertyBool returns the named property as a bool, or false when absent
// or not a bool.
func (n *MenuNode) PropertyBool(name string) bool {
	if v, ok := n.properties[name]; ok {
		if b, ok := v.Value().(bool); ok {
			return b
		}
	}
	return false
}

// propertyNames returns the names of all currently set properties.
func (n *MenuNode) propertyNames() []string {
	names := make([]string, 0, len(n.properties))
	for name := range n.properties {
		names = append(names, name)
	}
	return names
}

func (n *MenuNode) setProperty(name string, value dbus.Variant) {
	n.properties[name] = unboxVariant(value)
}

func (n *MenuNode) removeProperty(name string) {
	delete(n.properties, name)
}

// applyProperties merges props into the node's property map.
func (n *MenuNode) applyProperties(props map[string]dbus.Variant) {
	for name, value := range props {
		n.setProperty(name, value)
	}
}

// clearProperties drops every property. Used on recycled nodes so that a
// property removed server-side disappears locally.
func (n *MenuNode) clearProperties() {
	for name := range n.properties {
		delete(n.properties, name)
	}
}

// unboxVariant strips one level of variant-in-variant wrapping, which some
// servers produce on the property-update signals.
func unboxVariant(v dbus.Variant) dbus.Variant {
	if inner, ok := v.Value().(dbus.Variant); ok {
		return inner
	}
	return v
}
