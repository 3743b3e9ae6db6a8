package pathtree

import (
	"braces.dev/errtrace"
)

func (n *node[K, V]) hasChildren() bool {
	return n.first != nil
}

func (n *node[K, V]) findChild(k K) *node[K, V] {
	// reading a nil map is fine
	return n.children[k]
}

// addChild appends a fresh child under k. k must not be present.
func (n *node[K, V]) addChild(k K) *node[K, V] {
	if n.children == nil {
		n.children = make(map[K]*node[K, V])
	}

	child := &node[K, V]{key: k, parent: n}
	n.children[k] = child

	if n.last == nil {
		n.first = child
	} else {
		n.last.next = child
		child.prev = n.last
	}
	n.last = child

	return child
}

// removeChild unlinks child and with it the whole subtree below it.
func (n *node[K, V]) removeChild(child *node[K, V]) {
	delete(n.children, child.key)

	if child.prev == nil {
		n.first = child.next
	} else {
		child.prev.next = child.next
	}
	if child.next == nil {
		n.last = child.prev
	} else {
		child.next.prev = child.prev
	}
	child.prev, child.next, child.parent = nil, nil, nil

	if n.first == nil {
		n.releaseChildren()
	}
}

func (n *node[K, V]) releaseChildren() {
	n.children = nil
	n.first, n.last = nil, nil
}

// propagate adds delta to the populated count of every ancestor of n.
func (n *node[K, V]) propagate(delta int) {
	if delta == 0 {
		return
	}
	for p := n.parent; p != nil; p = p.parent {
		p.populated += delta
		if p.populated < 0 {
			panic(errtrace.Errorf("%w: node %v at depth %d dropped to %d",
				ErrCountUnderflow, p.key, p.depth(), p.populated))
		}
	}
}

// assign replaces the value of n and keeps ancestor counts in step.
// It never prunes.
func (n *node[K, V]) assign(v Maybe[V]) {
	delta := v.presence() - n.value.presence()
	n.value = v
	n.propagate(delta)
}

// prune removes n and then its ancestors for as long as they hold no value
// and have no children. The root is never removed, only emptied.
func (t *PathTree[K, V]) prune(n *node[K, V]) {
	for n != nil && n.value.IsNone() && !n.hasChildren() {
		if n == &t.root {
			n.releaseChildren()
			return
		}

		parent := n.parent
		if parent == nil {
			panic(errtrace.Errorf("%w: key %v", ErrOrphanNode, n.key))
		}
		parent.removeChild(n)
		n = parent
	}
}

func (n *node[K, V]) depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// path rebuilds the keys from the root down to n.
func (n *node[K, V]) path() []K {
	keys := make([]K, n.depth())
	for p, i := n, len(keys)-1; i >= 0; p, i = p.parent, i-1 {
		keys[i] = p.key
	}
	return keys
}

func (n *node[K, V]) count(mode CountMode) int {
	if mode == CountChildrenOnly {
		return n.populated
	}
	return n.populated + n.value.presence()
}

// walk runs a depth-first traversal below n, appending each child key to
// path on the way down.
func (n *node[K, V]) walk(order TraversalOrder, path []K, visitor Visitor[K, V]) traverseAction {
	if order == PreOrder && !visitor(n.value, path) {
		return traverseStop
	}

	for c := n.first; c != nil; c = c.next {
		if c.walk(order, append(path, c.key), visitor) == traverseStop {
			return traverseStop
		}
	}

	if order == InOrder && !visitor(n.value, path) {
		return traverseStop
	}

	return traverseContinue
}

// Node interface

func (n *node[K, V]) Key() K { return n.key }

func (n *node[K, V]) Path() []K { return n.path() }

func (n *node[K, V]) Value() Maybe[V] { return n.value }

func (n *node[K, V]) Count(mode CountMode) int { return n.count(mode) }
