// SPDX-License-Identifier: Apache-2.0

package menu

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dbusmenu/adapter"
	"github.com/MKhiriev/go-dbusmenu/models"
)

// fakeTransport is a scriptable in-process MenuTransport. Calls complete
// synchronously unless a gate channel is installed, which lets tests hold a
// call open while they deliver push notifications.
type fakeTransport struct {
	mu     sync.Mutex
	sink   adapter.EventSink
	owner  string
	closed bool

	revision        uint32
	layoutRevisions []uint32
	layout          *models.LayoutNode
	layoutErr       error
	layoutCalls     int
	layoutGate      chan struct{}

	props      map[int32]map[string]dbus.Variant
	omit       map[int32]bool
	groupErr   error
	groupCalls [][]int32
	groupGate  chan struct{}

	events   []fakeEvent
	eventErr error

	needShow  bool
	showErr   error
	showCalls []int32
}

type fakeEvent struct {
	id        int32
	eventID   string
	data      dbus.Variant
	timestamp uint32
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		props: make(map[int32]map[string]dbus.Variant),
		omit:  make(map[int32]bool),
	}
}

func (f *fakeTransport) GetLayout(_ context.Context, _ int32) (uint32, *models.LayoutNode, error) {
	f.mu.Lock()
	gate := f.layoutGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.layoutCalls++
	if f.layoutErr != nil {
		return 0, nil, f.layoutErr
	}
	rev := f.revision
	if len(f.layoutRevisions) > 0 {
		rev = f.layoutRevisions[0]
		f.layoutRevisions = f.layoutRevisions[1:]
	}
	return rev, f.layout, nil
}

func (f *fakeTransport) GetGroupProperties(_ context.Context, ids []int32, _ []string) ([]models.ItemProperties, error) {
	f.mu.Lock()
	gate := f.groupGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.groupCalls = append(f.groupCalls, append([]int32(nil), ids...))
	if f.groupErr != nil {
		return nil, f.groupErr
	}

	var out []models.ItemProperties
	for _, id := range ids {
		if f.omit[id] {
			continue
		}
		src := f.props[id]
		props := map[string]dbus.Variant{
			PropLabel: dbus.MakeVariant(fmt.Sprintf("item-%d", id)),
		}
		for name, value := range src {
			props[name] = value
		}
		out = append(out, models.ItemProperties{ID: id, Properties: props})
	}
	return out, nil
}

func (f *fakeTransport) GetProperties(ctx context.Context, id int32, propertyNames []string) (map[string]dbus.Variant, error) {
	group, err := f.GetGroupProperties(ctx, []int32{id}, propertyNames)
	if err != nil {
		return nil, err
	}
	if len(group) == 0 {
		return nil, adapter.ErrNoOwner
	}
	return group[0].Properties, nil
}

func (f *fakeTransport) Event(_ context.Context, id int32, eventID string, data dbus.Variant, timestamp uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.eventErr != nil {
		return f.eventErr
	}
	f.events = append(f.events, fakeEvent{id: id, eventID: eventID, data: data, timestamp: timestamp})
	return nil
}

func (f *fakeTransport) AboutToShow(_ context.Context, id int32) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.showCalls = append(f.showCalls, id)
	return f.needShow, f.showErr
}

func (f *fakeTransport) Owner() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.owner
}

func (f *fakeTransport) Subscribe(sink adapter.EventSink) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sink != nil {
		return adapter.ErrAlreadySubscribed
	}
	f.sink = sink
	return nil
}

func (f *fakeTransport) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// pushOwner flips the fake's owner state and delivers the matching
// notification, the way the D-Bus transport does on NameOwnerChanged.
func (f *fakeTransport) pushOwner(owner string) {
	f.mu.Lock()
	f.owner = owner
	sink := f.sink
	f.mu.Unlock()
	sink.OwnerChanged(owner)
}

func (f *fakeTransport) setLayout(revision uint32, layout *models.LayoutNode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revision = revision
	f.layout = layout
}

func (f *fakeTransport) setProps(id int32, props map[string]dbus.Variant) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.props[id] = props
}

func (f *fakeTransport) countLayoutCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.layoutCalls
}

func (f *fakeTransport) countGroupCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.groupCalls)
}

func (f *fakeTransport) recordedEvents() []fakeEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]fakeEvent(nil), f.events...)
}

func layoutNode(id int32, children ...*models.LayoutNode) *models.LayoutNode {
	return &models.LayoutNode{
		ID:         id,
		Properties: map[string]dbus.Variant{},
		Children:   children,
	}
}

// recordingObserver captures every notification for later assertions.
type recordingObserver struct {
	mu            sync.Mutex
	layoutUpdates int
	rootChanges   []*MenuNode
	newNodes      []int32
	activations   []int32
	eventResults  []observedEvent
}

type observedEvent struct {
	id      int32
	eventID string
	err     error
}

func (r *recordingObserver) OnLayoutUpdated() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layoutUpdates++
}

func (r *recordingObserver) OnRootChanged(root *MenuNode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rootChanges = append(r.rootChanges, root)
}

func (r *recordingObserver) OnNewNode(node *MenuNode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.newNodes = append(r.newNodes, node.ID())
}

func (r *recordingObserver) OnItemActivated(node *MenuNode, _ uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activations = append(r.activations, node.ID())
}

func (r *recordingObserver) OnEventResult(node *MenuNode, eventID string, _ dbus.Variant, _ uint32, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.eventResults = append(r.eventResults, observedEvent{id: node.ID(), eventID: eventID, err: err})
}

type observerSnapshot struct {
	layoutUpdates int
	rootChanges   []*MenuNode
	newNodes      []int32
	activations   []int32
	eventResults  []observedEvent
}

func (r *recordingObserver) snapshot() observerSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return observerSnapshot{
		layoutUpdates: r.layoutUpdates,
		rootChanges:   append([]*MenuNode(nil), r.rootChanges...),
		newNodes:      append([]int32(nil), r.newNodes...),
		activations:   append([]int32(nil), r.activations...),
		eventResults:  append([]observedEvent(nil), r.eventResults...),
	}
}

// settle waits until the engine is quiescent: no calls in flight and no
// turns queued.
func settle(t *testing.T, c *Client) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for {
		c.calls.wait()
		c.loop.call(func() {})
		if c.calls.idle() && c.loop.empty() {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("engine did not settle")
		}
	}
}

// newTestClient builds a client over the fake with an observer already
// registered. The fake starts ownerless so tests control the first fetch
// with pushOwner.
func newTestClient(t *testing.T, f *fakeTransport, opts ...Option) (*Client, *recordingObserver) {
	t.Helper()
	c, err := New(f, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	rec := &recordingObserver{}
	c.AddObserver(rec)
	settle(t, c)
	return c, rec
}
