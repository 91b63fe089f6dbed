// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dbusmenu/internal/logger"
	"github.com/MKhiriev/go-dbusmenu/models"
)

// recordingSink captures every push notification it receives.
type recordingSink struct {
	layouts     []uint32
	propUpdates []string
	batched     [][]models.ItemProperties
	removed     [][]models.ItemPropertyNames
	itemUpdates []int32
	activations []int32
	owners      []string
}

func (r *recordingSink) LayoutUpdated(revision uint32, parentID int32) {
	r.layouts = append(r.layouts, revision)
}

func (r *recordingSink) ItemPropertyUpdated(id int32, name string, value dbus.Variant) {
	r.propUpdates = append(r.propUpdates, name)
}

func (r *recordingSink) ItemPropertiesUpdated(updated []models.ItemProperties, removed []models.ItemPropertyNames) {
	r.batched = append(r.batched, updated)
	r.removed = append(r.removed, removed)
}

func (r *recordingSink) ItemUpdated(id int32) {
	r.itemUpdates = append(r.itemUpdates, id)
}

func (r *recordingSink) ItemActivationRequested(id int32, timestamp uint32) {
	r.activations = append(r.activations, id)
}

func (r *recordingSink) OwnerChanged(owner string) {
	r.owners = append(r.owners, owner)
}

func newTestTransport() *DBusTransport {
	return &DBusTransport{
		dest: "com.example.menus",
		path: dbus.ObjectPath("/com/example/menus/bar"),
		log:  logger.Nop(),
	}
}

func TestDescriptor_SharedAndComplete(t *testing.T) {
	d := Descriptor()
	require.NotNil(t, d)
	assert.Same(t, d, Descriptor(), "descriptor must be built once and shared")

	assert.Equal(t, Interface, d.Name)
	for _, s := range []string{"LayoutUpdated", "ItemPropertyUpdated", "ItemPropertiesUpdated", "ItemUpdated", "ItemActivationRequested"} {
		assert.True(t, d.HasSignal(s), s)
	}
	assert.False(t, d.HasSignal("NoSuchSignal"))
}

func TestDispatch_LayoutUpdated(t *testing.T) {
	tr := newTestTransport()
	sink := &recordingSink{}

	tr.dispatch("LayoutUpdated", []interface{}{uint32(7), int32(0)}, sink)

	require.Len(t, sink.layouts, 1)
	assert.Equal(t, uint32(7), sink.layouts[0])
}

func TestDispatch_ItemPropertyUpdated(t *testing.T) {
	tr := newTestTransport()
	sink := &recordingSink{}

	tr.dispatch("ItemPropertyUpdated", []interface{}{int32(4), "label", dbus.MakeVariant("Open")}, sink)

	assert.Equal(t, []string{"label"}, sink.propUpdates)
}

func TestDispatch_ItemPropertiesUpdated(t *testing.T) {
	tr := newTestTransport()
	sink := &recordingSink{}

	updated := [][]interface{}{
		{int32(2), map[string]dbus.Variant{"enabled": dbus.MakeVariant(false)}},
	}
	removed := [][]interface{}{
		{int32(3), []string{"icon-name"}},
	}
	tr.dispatch("ItemPropertiesUpdated", []interface{}{updated, removed}, sink)

	require.Len(t, sink.batched, 1)
	require.Len(t, sink.batched[0], 1)
	assert.Equal(t, int32(2), sink.batched[0][0].ID)
	require.Len(t, sink.removed[0], 1)
	assert.Equal(t, []string{"icon-name"}, sink.removed[0][0].Properties)
}

func TestDispatch_ItemUpdatedAndActivation(t *testing.T) {
	tr := newTestTransport()
	sink := &recordingSink{}

	tr.dispatch("ItemUpdated", []interface{}{int32(9)}, sink)
	tr.dispatch("ItemActivationRequested", []interface{}{int32(5), uint32(12345)}, sink)

	assert.Equal(t, []int32{9}, sink.itemUpdates)
	assert.Equal(t, []int32{5}, sink.activations)
}

func TestDispatch_MalformedBodyDropped(t *testing.T) {
	tr := newTestTransport()
	sink := &recordingSink{}

	tr.dispatch("LayoutUpdated", []interface{}{"bogus"}, sink)
	tr.dispatch("UnknownSignal", []interface{}{}, sink)

	assert.Empty(t, sink.layouts)
}

func TestHandleOwnerChanged(t *testing.T) {
	tr := newTestTransport()
	sink := &recordingSink{}

	sig := &dbus.Signal{
		Name: nameOwnerChanged,
		Body: []interface{}{"com.example.menus", ":1.5", ":1.9"},
	}
	tr.handleOwnerChanged(sig, sink)

	assert.Equal(t, ":1.9", tr.Owner())
	assert.Equal(t, []string{":1.9"}, sink.owners)

	// A different bus name must be ignored.
	sig.Body = []interface{}{"com.example.other", ":1.9", ""}
	tr.handleOwnerChanged(sig, sink)
	assert.Len(t, sink.owners, 1)

	// Losing the owner empties Owner and reports an empty owner.
	sig.Body = []interface{}{"com.example.menus", ":1.9", ""}
	tr.handleOwnerChanged(sig, sink)
	assert.Equal(t, "", tr.Owner())
	assert.Equal(t, "", sink.owners[1])
}

func TestCallable_ErrorStates(t *testing.T) {
	tr := newTestTransport()
	assert.ErrorIs(t, tr.callable(), ErrNoOwner)

	tr.owner = ":1.2"
	assert.NoError(t, tr.callable())

	tr.closed = true
	assert.ErrorIs(t, tr.callable(), ErrClosed)
}
