package widget

import "github.com/idilsaglam/tada/internal/model"

// node is one entry in a List.
type node struct {
	item model.Item
	prev *node
	next *node
}

// List is an ordered item container keyed by ItemID.
// Items stay in insertion order; removal unlinks exactly one node.
type List struct {
	head  *node
	tail  *node
	nodes map[model.ItemID]*node
}

// NewList returns an empty List.
func NewList() *List {
	return &List{nodes: make(map[model.ItemID]*node)}
}

// Append adds it at the end. An id already present is replaced in place.
func (l *List) Append(it model.Item) {
	if n, ok := l.nodes[it.ID]; ok {
		n.item = it
		return
	}
	n := &node{item: it, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.nodes[it.ID] = n
}

// Remove unlinks the item with the given id and reports whether it existed.
func (l *List) Remove(id model.ItemID) bool {
	n, ok := l.nodes[id]
	if !ok {
		return false
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	delete(l.nodes, id)
	return true
}

// Get returns the item with the given id.
func (l *List) Get(id model.ItemID) (model.Item, bool) {
	n, ok := l.nodes[id]
	if !ok {
		return model.Item{}, false
	}
	return n.item, true
}

func (l *List) Len() int { return len(l.nodes) }

// Items returns a snapshot in insertion order.
func (l *List) Items() []model.Item {
	out := make([]model.Item, 0, len(l.nodes))
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.item)
	}
	return out
}
