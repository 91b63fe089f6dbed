// SPDX-License-Identifier: Apache-2.0

package menu

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/MKhiriev/go-dbusmenu/models"
)

// propertiesFunc receives the outcome of a property fetch: the property map
// on success, or a non-nil error. Every queued request receives exactly one
// call, including on whole-batch failure and at engine teardown.
type propertiesFunc func(props map[string]dbus.Variant, err error)

// pendingPropertyRequest is one node waiting for properties in a batch.
// replied guards the single completion slot per id.
type pendingPropertyRequest struct {
	id      int32
	cb      propertiesFunc
	replied bool
}

// propertyBatch is the unit handed to one GetGroupProperties call. The
// builder batch is fully replaced on flush, so a request arriving during
// completion callbacks can never be mistaken for a member of the batch
// being finished.
type propertyBatch struct {
	requests []*pendingPropertyRequest
	byID     map[int32]*pendingPropertyRequest
}

func newPropertyBatch() *propertyBatch {
	return &propertyBatch{byID: make(map[int32]*pendingPropertyRequest)}
}

// propertyBatcher coalesces concurrent property-fetch requests into single
// round trips. All methods run on the client's loop.
type propertyBatcher struct {
	c *Client

	queue          *propertyBatch
	names          []string
	getAll         bool
	flushScheduled bool

	inflight map[*propertyBatch]struct{}
}

func newPropertyBatcher(c *Client) *propertyBatcher {
	return &propertyBatcher{
		c:        c,
		queue:    newPropertyBatch(),
		inflight: make(map[*propertyBatch]struct{}),
	}
}

// request queues a property fetch for id. An empty names slice requests all
// properties and collapses the whole batch to a get-all call. Requesting an
// id that is already queued fails the new caller immediately and leaves the
// first request untouched.
func (b *propertyBatcher) request(id int32, names []string, cb propertiesFunc) {
	if _, dup := b.queue.byID[id]; dup {
		b.c.log.Warn().Int32("id", id).Msg("asking for properties from same id twice")
		cb(nil, fmt.Errorf("id %d: %w", id, ErrDuplicateID))
		return
	}

	if len(names) == 0 {
		b.getAll = true
		b.names = nil
	} else if !b.getAll {
		b.names = append(b.names, names...)
	}

	req := &pendingPropertyRequest{id: id, cb: cb}
	b.queue.requests = append(b.queue.requests, req)
	b.queue.byID[id] = req

	if !b.flushScheduled {
		b.flushScheduled = true
		b.c.loop.post(b.scheduledFlush)
	}

	// Bound the request and result size of a single call.
	if len(b.queue.requests) >= b.c.cfg.BatchLimit {
		b.flushNow()
	}
}

// scheduledFlush is the normal flush cadence: one turn after the first
// request of a batch. A post left over from before a capacity-forced flush
// may instead land on the next batch and flush it a turn early; that is
// fine, a flush is always safe and the batch taken is always complete for
// its turn.
func (b *propertyBatcher) scheduledFlush() {
	if !b.flushScheduled {
		// An eager flush already took this queue.
		return
	}
	b.flushNow()
}

// flushNow sends one call covering every queued id and installs a fresh
// builder batch.
func (b *propertyBatcher) flushNow() {
	b.flushScheduled = false
	if len(b.queue.requests) == 0 {
		return
	}

	batch := b.queue
	names := b.names
	b.queue = newPropertyBatch()
	b.names = nil
	b.getAll = false
	b.inflight[batch] = struct{}{}

	ids := make([]int32, 0, len(batch.requests))
	for _, req := range batch.requests {
		ids = append(ids, req.id)
	}

	c := b.c
	c.calls.launch(c.cfg.CallTimeout, func(ctx context.Context) {
		result, err := c.transport.GetGroupProperties(ctx, ids, names)
		c.loop.post(func() {
			b.complete(batch, result, err)
		})
	})
}

// complete resolves one flushed batch against its reply. Per-id omissions
// resolve the affected request with an error; a whole-call failure resolves
// every request with the same error.
func (b *propertyBatcher) complete(batch *propertyBatch, result []models.ItemProperties, err error) {
	if _, ok := b.inflight[batch]; !ok {
		// Teardown already resolved this batch.
		return
	}
	delete(b.inflight, batch)

	if err != nil {
		b.c.log.Warn().Err(err).Msg("group properties call failed")
		for _, req := range batch.requests {
			if !req.replied {
				req.replied = true
				req.cb(nil, fmt.Errorf("group properties: %w", err))
			}
		}
		return
	}

	for _, item := range result {
		req, ok := batch.byID[item.ID]
		if !ok {
			b.c.log.Warn().Int32("id", item.ID).Msg("no pending request for returned id")
			continue
		}
		if req.replied {
			b.c.log.Warn().Int32("id", item.ID).Msg("already replied to request for id")
			continue
		}
		req.replied = true
		req.cb(item.Properties, nil)
	}

	for _, req := range batch.requests {
		if !req.replied {
			b.c.log.Warn().Int32("id", req.id).Msg("generating properties error for id")
			req.replied = true
			req.cb(nil, fmt.Errorf("id %d: %w", req.id, ErrNoProperties))
		}
	}
}

// teardown resolves every request still pending, queued or in flight, with
// ErrShutdown. In-flight batches are marked resolved so a straggling
// completion cannot fire their callbacks a second time.
func (b *propertyBatcher) teardown() {
	resolve := func(batch *propertyBatch) {
		for _, req := range batch.requests {
			if !req.replied {
				req.replied = true
				req.cb(nil, ErrShutdown)
			}
		}
	}

	resolve(b.queue)
	b.queue = newPropertyBatch()
	b.names = nil
	b.getAll = false
	b.flushScheduled = false

	for batch := range b.inflight {
		resolve(batch)
	}
	b.inflight = make(map[*propertyBatch]struct{})
}
