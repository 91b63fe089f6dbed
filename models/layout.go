// SPDX-License-Identifier: Apache-2.0

package models

import (
	"errors"

	"github.com/godbus/dbus/v5"
)

// ErrMalformedLayout is returned by ParseLayout when the top-level value of
// a GetLayout reply does not have the (ia{sv}av) shape.
var ErrMalformedLayout = errors.New("malformed layout node")

// LayoutNode is one node of a layout document returned by GetLayout: an
// integer id, the properties the server chose to inline, and an ordered list
// of child nodes of the same shape. Child order is display order.
type LayoutNode struct {
	ID         int32
	Properties map[string]dbus.Variant
	Children   []*LayoutNode
}

// ParseLayout converts the decoded body of a GetLayout reply into a
// LayoutNode tree. The wire shape is (ia{sv}av): godbus decodes it as
// []interface{}{int32, map[string]dbus.Variant, []dbus.Variant}.
//
// Child entries that do not conform to the node shape are skipped without
// consuming a position, so a well-formed sibling after a bad entry keeps its
// place in display order. Only a malformed top-level value is an error.
func ParseLayout(raw interface{}) (*LayoutNode, error) {
	node, ok := parseLayoutNode(raw)
	if !ok {
		return nil, ErrMalformedLayout
	}
	return node, nil
}

func parseLayoutNode(raw interface{}) (*LayoutNode, bool) {
	fields, ok := raw.([]interface{})
	if !ok || len(fields) != 3 {
		return nil, false
	}

	id, ok := fields[0].(int32)
	if !ok {
		return nil, false
	}
	props, ok := fields[1].(map[string]dbus.Variant)
	if !ok {
		return nil, false
	}
	rawChildren, ok := fields[2].([]dbus.Variant)
	if !ok {
		return nil, false
	}

	node := &LayoutNode{ID: id, Properties: props}
	for _, rc := range rawChildren {
		child, ok := parseLayoutNode(rc.Value())
		if !ok {
			// Not a node entry. Skip it without counting a position.
			continue
		}
		node.Children = append(node.Children, child)
	}

	return node, true
}
