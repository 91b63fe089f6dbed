// SPDX-License-Identifier: Apache-2.0

package menu

import (
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
)

func TestNodePropertyAccessors(t *testing.T) {
	n := newMenuNode(1)
	n.applyProperties(map[string]dbus.Variant{
		PropLabel:       dbus.MakeVariant("Open"),
		PropEnabled:     dbus.MakeVariant(true),
		PropToggleState: dbus.MakeVariant(int32(1)),
	})

	assert.Equal(t, "Open", n.PropertyString(PropLabel))
	assert.True(t, n.PropertyBool(PropEnabled))
	assert.Equal(t, 1, n.PropertyInt(PropToggleState))

	// Absent and mistyped lookups fall back to zero values.
	assert.Equal(t, "", n.PropertyString(PropIconName))
	assert.Equal(t, 0, n.PropertyInt(PropLabel))
	assert.False(t, n.PropertyBool(PropLabel))

	_, ok := n.Property(PropIconName)
	assert.False(t, ok)
}

func TestNodeSetPropertyUnboxesVariant(t *testing.T) {
	n := newMenuNode(1)
	n.setProperty(PropLabel, dbus.MakeVariant(dbus.MakeVariant("wrapped")))
	assert.Equal(t, "wrapped", n.PropertyString(PropLabel))
}

func TestNodeApplyPropertiesMerges(t *testing.T) {
	n := newMenuNode(1)
	n.setProperty(PropLabel, dbus.MakeVariant("keep"))
	n.applyProperties(map[string]dbus.Variant{
		PropEnabled: dbus.MakeVariant(false),
	})

	assert.Equal(t, "keep", n.PropertyString(PropLabel))
	_, ok := n.Property(PropEnabled)
	assert.True(t, ok)
}

func TestNodeClearProperties(t *testing.T) {
	n := newMenuNode(1)
	n.setProperty(PropLabel, dbus.MakeVariant("gone"))
	n.clearProperties()
	assert.Empty(t, n.propertyNames())
}

func TestNodeChildrenReturnsCopy(t *testing.T) {
	s := newNodeStore()
	parent := s.newNode(0)
	s.addChildAt(parent, s.newNode(1), 0)

	children := parent.Children()
	children[0] = nil
	assert.NotNil(t, parent.children[0])
}
