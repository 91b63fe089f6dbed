// SPDX-License-Identifier: Apache-2.0

package menu

import (
	"fmt"
	"sort"
)

// TypeHandler intercepts the realization of nodes whose "type" property
// matches the tag it was registered under. NewItem returning true claims
// the node and suppresses the generic OnNewNode notification. Destroy is
// invoked exactly once, before the handler's registry entry is dropped at
// engine teardown.
type TypeHandler interface {
	NewItem(item *MenuNode, parent *MenuNode) bool
	Destroy()
}

// typeHandlerRegistry maps type tags to their handlers. The engine owns the
// registered handlers; all methods run on the client's loop.
type typeHandlerRegistry struct {
	handlers map[string]TypeHandler
}

func newTypeHandlerRegistry() *typeHandlerRegistry {
	return &typeHandlerRegistry{handlers: make(map[string]TypeHandler)}
}

func (r *typeHandlerRegistry) add(typ string, h TypeHandler) error {
	if typ == "" {
		return fmt.Errorf("type handler: empty type tag")
	}
	if _, ok := r.handlers[typ]; ok {
		return fmt.Errorf("type %q: %w", typ, ErrDuplicateTypeHandler)
	}
	r.handlers[typ] = h
	return nil
}

// handle dispatches a freshly realized node to the handler registered for
// its type tag, falling back to the TypeDefault entry for untyped nodes.
// It reports whether a handler claimed the node.
func (r *typeHandlerRegistry) handle(item, parent *MenuNode) bool {
	typ := item.PropertyString(PropType)
	if typ == "" {
		typ = TypeDefault
	}

	h, ok := r.handlers[typ]
	if !ok {
		return false
	}
	return h.NewItem(item, parent)
}

// destroyAll tears the registry down in deterministic (sorted tag) order,
// invoking each handler's Destroy before dropping its entry.
func (r *typeHandlerRegistry) destroyAll() {
	tags := make([]string, 0, len(r.handlers))
	for tag := range r.handlers {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	for _, tag := range tags {
		r.handlers[tag].Destroy()
		delete(r.handlers, tag)
	}
}
