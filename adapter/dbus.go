// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/MKhiriev/go-dbusmenu/internal/logger"
	"github.com/MKhiriev/go-dbusmenu/models"
)

const (
	busInterface       = "org.freedesktop.DBus"
	nameOwnerChanged   = busInterface + ".NameOwnerChanged"
	signalChannelDepth = 32
)

// DBusTransport implements MenuTransport over a godbus connection. One
// transport tracks one (destination name, object path) pair; the connection
// itself is shared and is not owned by the transport.
type DBusTransport struct {
	conn *dbus.Conn
	obj  dbus.BusObject
	dest string
	path dbus.ObjectPath
	log  *logger.Logger

	mu     sync.Mutex
	owner  string
	sink   EventSink
	sigCh  chan *dbus.Signal
	closed bool
}

var _ MenuTransport = (*DBusTransport)(nil)

// NewDBusTransport builds a transport for the menu object at path exported
// by the bus name dest on conn. The initial owner of dest is resolved
// immediately; an absent owner is not an error (the engine waits for the
// endpoint to appear via OwnerChanged).
func NewDBusTransport(conn *dbus.Conn, dest string, path dbus.ObjectPath, log *logger.Logger) *DBusTransport {
	if log == nil {
		log = logger.Nop()
	}

	t := &DBusTransport{
		conn: conn,
		obj:  conn.Object(dest, path),
		dest: dest,
		path: path,
		log:  log,
	}

	var owner string
	err := conn.BusObject().Call(busInterface+".GetNameOwner", 0, dest).Store(&owner)
	if err == nil {
		t.owner = owner
	}

	return t
}

// Owner returns the unique name currently owning dest on the bus, or ""
// when dest is unowned.
func (t *DBusTransport) Owner() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.owner
}

// Subscribe registers sink and starts the signal pump. Match rules cover the
// menu interface's own signals from dest plus NameOwnerChanged for dest.
func (t *DBusTransport) Subscribe(sink EventSink) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	if t.sink != nil {
		return ErrAlreadySubscribed
	}

	err := t.conn.AddMatchSignal(
		dbus.WithMatchInterface(Interface),
		dbus.WithMatchObjectPath(t.path),
	)
	if err != nil {
		return fmt.Errorf("add menu match rule: %w", err)
	}

	err = t.conn.AddMatchSignal(
		dbus.WithMatchInterface(busInterface),
		dbus.WithMatchMember("NameOwnerChanged"),
		dbus.WithMatchArg(0, t.dest),
	)
	if err != nil {
		return fmt.Errorf("add owner match rule: %w", err)
	}

	t.sink = sink
	t.sigCh = make(chan *dbus.Signal, signalChannelDepth)
	t.conn.Signal(t.sigCh)

	go t.pump(t.sigCh, sink)

	return nil
}

// Close stops the signal pump. The shared connection stays open.
func (t *DBusTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	if t.sigCh != nil {
		t.conn.RemoveSignal(t.sigCh)
		close(t.sigCh)
		t.sigCh = nil
	}
	t.sink = nil

	return nil
}

// pump forwards bus signals to the sink in delivery order.
func (t *DBusTransport) pump(ch chan *dbus.Signal, sink EventSink) {
	for sig := range ch {
		if sig == nil {
			return
		}
		if sig.Name == nameOwnerChanged {
			t.handleOwnerChanged(sig, sink)
			continue
		}
		if sig.Path == t.path && strings.HasPrefix(sig.Name, Interface+".") {
			t.dispatch(strings.TrimPrefix(sig.Name, Interface+"."), sig.Body, sink)
		}
	}
}

func (t *DBusTransport) handleOwnerChanged(sig *dbus.Signal, sink EventSink) {
	var name, oldOwner, newOwner string
	if err := dbus.Store(sig.Body, &name, &oldOwner, &newOwner); err != nil {
		t.log.Warn().Err(err).Msg("malformed NameOwnerChanged signal")
		return
	}
	if name != t.dest {
		return
	}

	t.mu.Lock()
	t.owner = newOwner
	t.mu.Unlock()

	sink.OwnerChanged(newOwner)
}

// dispatch decodes one menu-interface signal and hands it to the sink.
// Malformed payloads are logged and dropped; they never abort the pump.
func (t *DBusTransport) dispatch(member string, body []interface{}, sink EventSink) {
	if !Descriptor().HasSignal(member) {
		t.log.Warn().Str("signal", member).Msg("received unknown signal from menu service")
		return
	}

	switch member {
	case "LayoutUpdated":
		var revision uint32
		var parentID int32
		if err := dbus.Store(body, &revision, &parentID); err != nil {
			t.log.Warn().Err(err).Msg("malformed LayoutUpdated signal")
			return
		}
		sink.LayoutUpdated(revision, parentID)

	case "ItemPropertyUpdated":
		var id int32
		var name string
		var value dbus.Variant
		if err := dbus.Store(body, &id, &name, &value); err != nil {
			t.log.Warn().Err(err).Msg("malformed ItemPropertyUpdated signal")
			return
		}
		sink.ItemPropertyUpdated(id, name, value)

	case "ItemPropertiesUpdated":
		var updated []models.ItemProperties
		var removed []models.ItemPropertyNames
		if err := dbus.Store(body, &updated, &removed); err != nil {
			t.log.Warn().Err(err).Msg("malformed ItemPropertiesUpdated signal")
			return
		}
		sink.ItemPropertiesUpdated(updated, removed)

	case "ItemUpdated":
		var id int32
		if err := dbus.Store(body, &id); err != nil {
			t.log.Warn().Err(err).Msg("malformed ItemUpdated signal")
			return
		}
		sink.ItemUpdated(id)

	case "ItemActivationRequested":
		var id int32
		var timestamp uint32
		if err := dbus.Store(body, &id, &timestamp); err != nil {
			t.log.Warn().Err(err).Msg("malformed ItemActivationRequested signal")
			return
		}
		sink.ItemActivationRequested(id, timestamp)
	}
}

func (t *DBusTransport) callable() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}
	if t.owner == "" {
		return ErrNoOwner
	}
	return nil
}

// GetLayout fetches the layout rooted at parentID. The deployed interface
// takes a recursion depth and a property filter; the transport requests the
// full depth and all properties.
func (t *DBusTransport) GetLayout(ctx context.Context, parentID int32) (uint32, *models.LayoutNode, error) {
	if err := t.callable(); err != nil {
		return 0, nil, err
	}

	call := t.obj.CallWithContext(ctx, Interface+".GetLayout", 0, parentID, int32(-1), []string{})
	if call.Err != nil {
		return 0, nil, fmt.Errorf("get layout: %w", call.Err)
	}
	if len(call.Body) != 2 {
		return 0, nil, fmt.Errorf("get layout: reply has %d values, want 2", len(call.Body))
	}

	revision, ok := call.Body[0].(uint32)
	if !ok {
		return 0, nil, fmt.Errorf("get layout: revision is %T, want uint32", call.Body[0])
	}

	root, err := models.ParseLayout(call.Body[1])
	if err != nil {
		return 0, nil, fmt.Errorf("get layout: %w", err)
	}

	return revision, root, nil
}

// GetGroupProperties fetches properties for several ids in one round trip.
func (t *DBusTransport) GetGroupProperties(ctx context.Context, ids []int32, propertyNames []string) ([]models.ItemProperties, error) {
	if err := t.callable(); err != nil {
		return nil, err
	}
	if propertyNames == nil {
		propertyNames = []string{}
	}

	var result []models.ItemProperties
	call := t.obj.CallWithContext(ctx, Interface+".GetGroupProperties", 0, ids, propertyNames)
	if err := call.Store(&result); err != nil {
		return nil, fmt.Errorf("get group properties: %w", err)
	}

	return result, nil
}

// GetProperties fetches the properties of a single node.
func (t *DBusTransport) GetProperties(ctx context.Context, id int32, propertyNames []string) (map[string]dbus.Variant, error) {
	if err := t.callable(); err != nil {
		return nil, err
	}
	if propertyNames == nil {
		propertyNames = []string{}
	}

	var result map[string]dbus.Variant
	call := t.obj.CallWithContext(ctx, Interface+".GetProperties", 0, id, propertyNames)
	if err := call.Store(&result); err != nil {
		return nil, fmt.Errorf("get properties: %w", err)
	}

	return result, nil
}

// Event delivers a user-initiated event to the server.
func (t *DBusTransport) Event(ctx context.Context, id int32, eventID string, data dbus.Variant, timestamp uint32) error {
	if err := t.callable(); err != nil {
		return err
	}

	call := t.obj.CallWithContext(ctx, Interface+".Event", 0, id, eventID, data, timestamp)
	if call.Err != nil {
		return fmt.Errorf("send event %q: %w", eventID, call.Err)
	}

	return nil
}

// AboutToShow notifies the server that id's submenu is about to be shown.
func (t *DBusTransport) AboutToShow(ctx context.Context, id int32) (bool, error) {
	if err := t.callable(); err != nil {
		return false, err
	}

	var needUpdate bool
	call := t.obj.CallWithContext(ctx, Interface+".AboutToShow", 0, id)
	if err := call.Store(&needUpdate); err != nil {
		return false, fmt.Errorf("about to show: %w", err)
	}

	return needUpdate, nil
}
