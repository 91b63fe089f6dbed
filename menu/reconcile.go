// SPDX-License-Identifier: Apache-2.0

package menu

import (
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/MKhiriev/go-dbusmenu/models"
)

// reconcileLayout merges a fetched layout document into the live tree and
// returns the resulting root. The existing root (possibly nil, meaning
// build from scratch) is recycled when the document still describes it;
// property fetches for new and recycled nodes are queued on the batch
// scheduler as a side effect.
//
// A mismatch at the top level aborts the whole reconciliation: a freshly
// built root is discarded and the previous tree is left untouched.
func (c *Client) reconcileLayout(layout *models.LayoutNode) (*MenuNode, error) {
	root := c.root
	built := false

	if root == nil {
		root = c.store.newNode(0)
		root.root = true
		built = true
		c.fetchNewNodeProperties(root, nil)
	} else {
		// A recycled root gets the same refresh contract as any other
		// recycled node.
		c.refreshNodeProperties(root)
	}

	if err := c.reconcileNode(layout, root); err != nil {
		if built {
			c.store.release(root)
		}
		return c.root, fmt.Errorf("reconcile layout: %w", err)
	}

	return root, nil
}

// reconcileNode applies one descriptor to the matching live node: children
// are recycled by id, reordered to the descriptor's order, created when
// missing and deleted when gone, then the walk recurses one level down.
func (c *Client) reconcileNode(desc *models.LayoutNode, node *MenuNode) error {
	if desc.ID != node.id {
		return fmt.Errorf("descriptor id %d against node %d: %w", desc.ID, node.id, ErrIDMismatch)
	}

	// Working pool of the children present before this pass.
	pool := make([]*MenuNode, len(node.children))
	copy(pool, node.children)

	for pos, childDesc := range desc.Children {
		if existing := takeFromPool(&pool, childDesc.ID); existing != nil {
			// Recycle: same identity, new position, replaced properties.
			c.store.reorderChild(node, existing, pos)
			c.refreshNodeProperties(existing)
			continue
		}

		child := c.store.newNode(childDesc.ID)
		c.store.addChildAt(node, child, pos)
		c.fetchNewNodeProperties(child, node)
	}

	// Whatever is left in the pool is gone from the new layout.
	for _, gone := range pool {
		c.store.deleteChild(node, gone)
	}

	// The root's direct children are the most latency-sensitive to
	// display, so their queued property requests go out immediately.
	if node.parent != nil && node.parent.id == 0 {
		c.batcher.flushNow()
	}

	// Recurse level by level. After the walk above the child lists match,
	// so a mismatch here is a protocol error; it is logged and the
	// remaining siblings still get their pass.
	n := len(desc.Children)
	if len(node.children) < n {
		n = len(node.children)
	}
	for i := 0; i < n; i++ {
		if err := c.reconcileNode(desc.Children[i], node.children[i]); err != nil {
			c.log.Warn().Err(err).Int32("parent", node.id).Msg("subtree reconciliation failed")
		}
	}
	if len(desc.Children) > n {
		c.log.Warn().Int32("parent", node.id).Msg("sync failed: extra layout descriptors")
	}
	if len(node.children) > n {
		c.log.Warn().Int32("parent", node.id).Msg("sync failed: extra menu nodes")
	}

	return nil
}

// takeFromPool removes and returns the pool entry with the given id, or nil.
func takeFromPool(pool *[]*MenuNode, id int32) *MenuNode {
	for i, n := range *pool {
		if n.id == id {
			*pool = append((*pool)[:i], (*pool)[i+1:]...)
			return n
		}
	}
	return nil
}

// fetchNewNodeProperties queues the initial property fetch for a freshly
// built node. Once the properties land the node is realized and announced,
// either through a matching type handler or the generic OnNewNode
// notification. On fetch failure the node stays unrealized and unannounced;
// it remains in the tree until a later layout drops it.
func (c *Client) fetchNewNodeProperties(node, parent *MenuNode) {
	c.batcher.request(node.id, nil, func(props map[string]dbus.Variant, err error) {
		if err != nil {
			c.log.Warn().Err(err).Int32("id", node.id).Msg("error getting properties on a new node")
			return
		}

		node.applyProperties(props)

		handled := c.typeHandlers.handle(node, parent)
		node.realized = true
		if !handled {
			c.notifyNewNode(node)
		}
	})
}

// refreshNodeProperties queues a replacing refresh for a recycled node: the
// old property map is cleared before the fresh set is applied, so a
// property removed server-side disappears locally. On failure the stale
// properties are kept.
func (c *Client) refreshNodeProperties(node *MenuNode) {
	c.batcher.request(node.id, nil, func(props map[string]dbus.Variant, err error) {
		if err != nil {
			c.log.Warn().Err(err).Int32("id", node.id).Msg("unable to replace properties")
			return
		}

		node.clearProperties()
		node.applyProperties(props)
	})
}
