// SPDX-License-Identifier: Apache-2.0

package menu

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-dbusmenu/adapter"
	"github.com/MKhiriev/go-dbusmenu/internal/config"
	"github.com/MKhiriev/go-dbusmenu/internal/logger"
	"github.com/MKhiriev/go-dbusmenu/models"
)

// Client replicates a remote menu tree into local MenuNode objects and
// keeps the replica consistent with the last delivered revision. It is the
// only writer of the tree; consumers observe it through Observer callbacks
// and read-only node traversal.
type Client struct {
	log       *logger.Logger
	cfg       config.Config
	transport adapter.MenuTransport

	loop         *runLoop
	calls        *callLedger
	store        *nodeStore
	batcher      *propertyBatcher
	typeHandlers *typeHandlerRegistry
	observers    []Observer

	root            *MenuNode
	currentRevision uint32
	myRevision      uint32
	layoutCall      *callHandle
	lastOwner       string
	closed          bool

	closeOnce sync.Once
}

// Option configures a Client during New.
type Option func(*Client)

// WithLogger routes engine logging through l instead of discarding it.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = &logger.Logger{Logger: l} }
}

// WithCallTimeout bounds layout and property fetches. Zero disables the
// bound.
func WithCallTimeout(d time.Duration) Option {
	return func(c *Client) { c.cfg.CallTimeout = d }
}

// WithEventTimeout bounds Event remote calls.
func WithEventTimeout(d time.Duration) Option {
	return func(c *Client) { c.cfg.EventTimeout = d }
}

// WithBatchLimit overrides the queued-request count that forces an eager
// batch flush.
func WithBatchLimit(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.cfg.BatchLimit = n
		}
	}
}

// New builds a client on top of transport, subscribes to its push
// notifications and, if the remote endpoint is already present, issues the
// first layout fetch. Configuration defaults come from the environment
// (DBUSMENU_* variables); options take precedence.
func New(transport adapter.MenuTransport, opts ...Option) (*Client, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	c := &Client{
		log:          logger.Nop(),
		cfg:          cfg,
		transport:    transport,
		calls:        newCallLedger(),
		store:        newNodeStore(),
		typeHandlers: newTypeHandlerRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("falling back to default configuration")
	}

	c.batcher = newPropertyBatcher(c)
	c.loop = newRunLoop()

	// Seed the current owner before push traffic can start. A later direct
	// owner replacement (old unique name straight to new, no empty
	// transition) must compare against this name to reset the revision
	// counters.
	c.lastOwner = transport.Owner()

	if err := transport.Subscribe(&clientSink{c}); err != nil {
		c.loop.close(func() {})
		return nil, fmt.Errorf("subscribe to menu transport: %w", err)
	}

	if c.lastOwner != "" {
		c.loop.post(c.updateLayout)
	}

	return c, nil
}

// AddObserver registers o for engine notifications. Registration is
// asynchronous: notifications already in flight may be missed.
func (c *Client) AddObserver(o Observer) {
	c.loop.post(func() {
		c.observers = append(c.observers, o)
	})
}

// RemoveObserver unregisters o by identity.
func (c *Client) RemoveObserver(o Observer) {
	c.loop.post(func() {
		for i, cur := range c.observers {
			if cur == o {
				c.observers = append(c.observers[:i], c.observers[i+1:]...)
				return
			}
		}
	})
}

// AddTypeHandler registers h for nodes whose "type" property equals typ.
// Registering a second handler for the same type fails with
// ErrDuplicateTypeHandler.
func (c *Client) AddTypeHandler(typ string, h TypeHandler) error {
	var err error
	c.loop.call(func() {
		if c.closed {
			err = ErrClosed
			return
		}
		err = c.typeHandlers.add(typ, h)
	})
	return err
}

// Root returns the current root of the replica, or nil when no layout has
// been applied yet or the remote endpoint is gone.
func (c *Client) Root() *MenuNode {
	var root *MenuNode
	c.loop.call(func() { root = c.root })
	return root
}

// Revisions returns the last revision observed via push notifications and
// the revision of the layout last applied.
func (c *Client) Revisions() (current, applied uint32) {
	c.loop.call(func() {
		current = c.currentRevision
		applied = c.myRevision
	})
	return current, applied
}

// SendEvent delivers a user-initiated event for the node identified by id.
// data may be nil; the protocol's placeholder payload is substituted. The
// outcome is reported through OnEventResult.
func (c *Client) SendEvent(id int32, eventID string, data interface{}, timestamp uint32) {
	c.loop.post(func() {
		if c.closed {
			return
		}

		node := c.store.find(id)
		if node == nil {
			c.log.Warn().Int32("id", id).Str("event", eventID).Msg("asked to send event for unknown node")
			return
		}

		variant, ok := data.(dbus.Variant)
		if !ok {
			if data == nil {
				data = int32(0)
			}
			variant = dbus.MakeVariant(data)
		}

		c.calls.launch(c.cfg.EventTimeout, func(ctx context.Context) {
			err := c.transport.Event(ctx, id, eventID, variant, timestamp)
			c.loop.post(func() {
				if err != nil {
					c.log.Warn().Err(err).Int32("id", id).Str("event", eventID).Msg("unable to call event on node")
				}
				c.notifyEventResult(node, eventID, variant, timestamp, err)
			})
		})
	})
}

// SendAboutToShow tells the server the node's submenu is about to be
// displayed. If the server reports a pending update, a layout refresh is
// triggered before done (optional) is invoked.
func (c *Client) SendAboutToShow(id int32, done func()) {
	c.loop.post(func() {
		if c.closed {
			return
		}

		c.calls.launch(c.cfg.CallTimeout, func(ctx context.Context) {
			needUpdate, err := c.transport.AboutToShow(ctx, id)
			c.loop.post(func() {
				if err != nil {
					c.log.Warn().Err(err).Int32("id", id).Msg("unable to send about to show")
					needUpdate = false
				}
				if needUpdate {
					c.updateLayout()
				}
				if done != nil {
					done()
				}
			})
		})
	})
}

// Close tears the engine down: push intake stops, live call tokens are
// cancelled, every outstanding property request receives ErrShutdown
// exactly once, type handlers are destroyed in deterministic order and the
// whole tree is released. Close is idempotent and safe to call
// concurrently.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		if err := c.transport.Close(); err != nil {
			c.log.Warn().Err(err).Msg("closing transport")
		}

		c.loop.close(func() {
			c.closed = true

			if c.layoutCall != nil {
				c.layoutCall.cancelled = true
				c.layoutCall.cancel()
				c.layoutCall = nil
			}

			c.batcher.teardown()
			c.calls.cancelAll()
			c.typeHandlers.destroyAll()

			c.root = nil
			c.store.reset()
			c.observers = nil
		})

		c.calls.wait()
	})
	return nil
}

// updateLayout issues a layout fetch unless one is already in flight or the
// remote endpoint is absent. Completion re-enters the loop through
// layoutFetched.
func (c *Client) updateLayout() {
	if c.closed || c.transport.Owner() == "" {
		return
	}
	if c.layoutCall != nil {
		// The in-flight fetch re-triggers itself if still behind.
		return
	}

	h := &callHandle{}
	c.layoutCall = h
	h.cancel = c.calls.launch(c.cfg.CallTimeout, func(ctx context.Context) {
		revision, layout, err := c.transport.GetLayout(ctx, 0)
		c.loop.post(func() {
			c.layoutFetched(h, revision, layout, err)
		})
	})
}

// layoutFetched applies one completed layout fetch: reconcile, advance the
// applied revision, notify, and re-fetch when a newer push arrived while
// the call was outstanding.
func (c *Client) layoutFetched(h *callHandle, revision uint32, layout *models.LayoutNode, err error) {
	if h.cancelled {
		return
	}
	c.layoutCall = nil

	if err != nil {
		// my_revision stays put so a future push can trigger recovery.
		c.log.Warn().Err(err).Msg("getting layout failed")
		return
	}

	oldRoot := c.root
	newRoot, err := c.reconcileLayout(layout)
	if err != nil {
		c.log.Warn().Err(err).Msg("unable to apply layout")
		return
	}
	c.root = newRoot

	if newRoot != oldRoot {
		c.notifyRootChanged(newRoot)
	}

	c.myRevision = revision
	c.notifyLayoutUpdated()

	if c.myRevision < c.currentRevision {
		c.updateLayout()
	}
}

// ownerLost clears the replica after the remote endpoint disappeared:
// cancel the in-flight fetch, release the tree, reset both revision
// counters and tell observers to clear their view.
func (c *Client) ownerLost() {
	if c.layoutCall != nil {
		c.layoutCall.cancelled = true
		c.layoutCall.cancel()
		c.layoutCall = nil
	}

	if c.root != nil {
		c.root = nil
		c.store.reset()
		c.notifyRootChanged(nil)
		c.notifyLayoutUpdated()
	}

	c.currentRevision = 0
	c.myRevision = 0
}

// ownerChanged reacts to the endpoint's owner moving between unique names.
// A replacement owner invalidates the in-flight fetch and both revision
// counters before refetching, since the new owner's revision numbering is
// unrelated to the old one's.
func (c *Client) ownerChanged(owner string) {
	prev := c.lastOwner
	c.lastOwner = owner

	if owner == "" {
		c.ownerLost()
		return
	}

	if prev != "" && prev != owner {
		if c.layoutCall != nil {
			c.layoutCall.cancelled = true
			c.layoutCall.cancel()
			c.layoutCall = nil
		}
		c.currentRevision = 0
		c.myRevision = 0
	}

	c.updateLayout()
}

// refreshItem refetches one node's properties through the batch scheduler,
// merging the result into the existing map.
func (c *Client) refreshItem(node *MenuNode) {
	c.batcher.request(node.id, nil, func(props map[string]dbus.Variant, err error) {
		if err != nil {
			c.log.Warn().Err(err).Int32("id", node.id).Msg("error refreshing node properties")
			return
		}
		node.applyProperties(props)
	})
}

// clientSink adapts push notifications from the transport into engine
// turns. It keeps the EventSink surface off the Client's public API.
type clientSink struct {
	c *Client
}

var _ adapter.EventSink = (*clientSink)(nil)

func (s *clientSink) LayoutUpdated(revision uint32, parentID int32) {
	c := s.c
	c.loop.post(func() {
		c.currentRevision = revision
		if c.currentRevision > c.myRevision {
			c.updateLayout()
		}
	})
}

func (s *clientSink) ItemPropertyUpdated(id int32, name string, value dbus.Variant) {
	c := s.c
	c.loop.post(func() {
		node := c.store.find(id)
		if node == nil {
			c.log.Debug().Int32("id", id).Str("property", name).Msg("property update for unknown node")
			return
		}
		node.setProperty(name, value)
	})
}

func (s *clientSink) ItemPropertiesUpdated(updated []models.ItemProperties, removed []models.ItemPropertyNames) {
	c := s.c
	c.loop.post(func() {
		// Removals run first so a name present in both halves ends up
		// with its new value.
		for _, item := range removed {
			node := c.store.find(item.ID)
			if node == nil {
				continue
			}
			for _, name := range item.Properties {
				node.removeProperty(name)
			}
		}

		for _, item := range updated {
			node := c.store.find(item.ID)
			if node == nil {
				continue
			}
			node.applyProperties(item.Properties)
		}
	})
}

func (s *clientSink) ItemUpdated(id int32) {
	c := s.c
	c.loop.post(func() {
		node := c.store.find(id)
		if node == nil {
			c.log.Warn().Int32("id", id).Msg("item update for unknown node")
			return
		}
		c.refreshItem(node)
	})
}

func (s *clientSink) ItemActivationRequested(id int32, timestamp uint32) {
	c := s.c
	c.loop.post(func() {
		if c.root == nil {
			c.log.Warn().Int32("id", id).Msg("asked to activate node without a menu structure")
			return
		}
		node := c.store.find(id)
		if node == nil {
			c.log.Warn().Int32("id", id).Msg("unable to find node to activate")
			return
		}
		c.notifyItemActivated(node, timestamp)
	})
}

func (s *clientSink) OwnerChanged(owner string) {
	c := s.c
	c.loop.post(func() {
		c.ownerChanged(owner)
	})
}
