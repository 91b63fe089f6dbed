// SPDX-License-Identifier: Apache-2.0

package menu

// nodeStore owns every node of the replicated tree and keeps an id index so
// push notifications can locate a node without walking the tree.
type nodeStore struct {
	index map[int32]*MenuNode
}

func newNodeStore() *nodeStore {
	return &nodeStore{index: make(map[int32]*MenuNode)}
}

// newNode constructs a node and registers it in the index.
func (s *nodeStore) newNode(id int32) *MenuNode {
	n := newMenuNode(id)
	s.index[id] = n
	return n
}

// find returns the node with the given id, or nil.
func (s *nodeStore) find(id int32) *MenuNode {
	return s.index[id]
}

// addChildAt inserts child under parent at the given position. Positions
// past the end append.
func (s *nodeStore) addChildAt(parent, child *MenuNode, pos int) {
	child.parent = parent
	if pos >= len(parent.children) {
		parent.children = append(parent.children, child)
		return
	}
	parent.children = append(parent.children, nil)
	copy(parent.children[pos+1:], parent.children[pos:])
	parent.children[pos] = child
}

// reorderChild moves child to the given position among parent's children.
func (s *nodeStore) reorderChild(parent, child *MenuNode, pos int) {
	cur := -1
	for i, c := range parent.children {
		if c == child {
			cur = i
			break
		}
	}
	if cur < 0 || cur == pos {
		return
	}

	parent.children = append(parent.children[:cur], parent.children[cur+1:]...)
	if pos > len(parent.children) {
		pos = len(parent.children)
	}
	parent.children = append(parent.children, nil)
	copy(parent.children[pos+1:], parent.children[pos:])
	parent.children[pos] = child
}

// deleteChild detaches child from parent and releases its whole subtree.
func (s *nodeStore) deleteChild(parent, child *MenuNode) {
	for i, c := range parent.children {
		if c == child {
			parent.children = append(parent.children[:i], parent.children[i+1:]...)
			break
		}
	}
	child.parent = nil
	s.release(child)
}

// release drops a subtree from the index.
func (s *nodeStore) release(n *MenuNode) {
	if s.index[n.id] == n {
		delete(s.index, n.id)
	}
	for _, c := range n.children {
		s.release(c)
	}
}

// reset drops every node. Used when the remote endpoint disappears and at
// teardown.
func (s *nodeStore) reset() {
	s.index = make(map[int32]*MenuNode)
}
