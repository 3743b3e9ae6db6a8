package pathtree

import (
	"fmt"
	"slices"

	"braces.dev/errtrace"
)

func (t *PathTree[K, V]) findNode(path []K) *node[K, V] {
	curr := &t.root
	for _, k := range path {
		if curr = curr.findChild(k); curr == nil {
			return nil
		}
	}
	return curr
}

func (t *PathTree[K, V]) buildPath(path []K) *node[K, V] {
	curr := &t.root
	for _, k := range path {
		next := curr.findChild(k)
		if next == nil {
			next = curr.addChild(k)
		}
		curr = next
	}
	return curr
}

// Get returns the value stored at path.
// It reports false if there is no node at path or the node holds no value.
func (t *PathTree[K, V]) Get(path []K) (V, bool) {
	return t.Lookup(path).Get()
}

func (t *PathTree[K, V]) Lookup(path []K) Maybe[V] {
	n := t.findNode(path)
	if n == nil {
		return None[V]()
	}
	return n.value
}

// Set stores value at path, creating the nodes leading to it.
func (t *PathTree[K, V]) Set(path []K, value V) {
	t.Store(path, Some(value))
}

// Store stores value at path. Storing None clears the value and prunes
// whatever becomes empty; it never creates nodes.
func (t *PathTree[K, V]) Store(path []K, value Maybe[V]) {
	if value.IsNone() {
		n := t.findNode(path)
		if n == nil {
			return
		}
		n.assign(value)
		t.prune(n)
		return
	}

	t.buildPath(path).assign(value)
}

// Unset clears the value at path. Children of the node stay reachable.
func (t *PathTree[K, V]) Unset(path []K) {
	t.Store(path, None[V]())
}

// GetOrSet returns the value at path if there is one. Otherwise it calls
// provider once, stores its result and returns it. A None result leaves
// no trace in the tree, and neither does a panicking provider.
func (t *PathTree[K, V]) GetOrSet(path []K, provider ValueProvider[K, V]) (V, bool) {
	n := t.buildPath(path)
	if v, ok := n.value.Get(); ok {
		return v, true
	}
	defer t.prune(n)

	value := provider(path)
	n.assign(value)

	return value.Get()
}

// Delete removes the node at path along with its whole subtree.
// Deleting the root empties the tree. Delete reports whether a node
// was found.
func (t *PathTree[K, V]) Delete(path []K) bool {
	n := t.findNode(path)
	if n == nil {
		return false
	}

	if n == &t.root {
		n.value = None[V]()
		n.releaseChildren()
		n.populated = 0
		return true
	}

	parent := n.parent
	if parent == nil {
		panic(errtrace.Errorf("%w: deleting %v", ErrOrphanNode, path))
	}

	if delta := n.value.presence() + n.populated; delta > 0 {
		n.propagate(-delta)
	}
	parent.removeChild(n)
	t.prune(parent)

	return true
}

// Count returns the number of populated nodes in the subtree at path,
// or 0 if there is no node at path.
func (t *PathTree[K, V]) Count(path []K, mode CountMode) int {
	n := t.findNode(path)
	if n == nil {
		return 0
	}
	return n.count(mode)
}

func (t *PathTree[K, V]) IsEmpty() bool {
	return t.Count(nil, CountNodeAndChildren) == 0
}

// Size returns the number of values in the tree.
func (t *PathTree[K, V]) Size() int {
	return t.root.count(CountNodeAndChildren)
}

// FillPath walks from the root down path and lets provider decide the
// value of every level on the way, root included. provider receives the
// current value of the level and the path prefix leading to it. The prefix
// is capped at its length, so appending to it never writes into path.
//
// A Stop result ends the walk and leaves that level untouched; values
// assigned at earlier levels are kept. Nodes are only created for levels
// that get assigned. Empty nodes are pruned even if provider panics.
func (t *PathTree[K, V]) FillPath(path []K, provider FillProvider[K, V]) {
	curr := &t.root
	defer func() { t.prune(curr) }()

	res := provider(curr.value, path[:0:0])
	if res.stop {
		return
	}
	curr.assign(res.value)

	for i, k := range path {
		child := curr.findChild(k)

		current := None[V]()
		if child != nil {
			current = child.value
		}

		res := provider(current, path[:i+1:i+1])
		if res.stop {
			break
		}

		if child == nil {
			child = curr.addChild(k)
		}
		child.assign(res.value)
		curr = child
	}
}

// VisitDfs walks the subtree at subtreeRoot depth first and calls visitor
// for every node, with or without value. A nil subtreeRoot walks the whole
// tree; a missing one walks nothing.
//
// The path passed to visitor is absolute and reused between calls; copy it
// to keep it. Returning false from visitor ends the walk at once.
func (t *PathTree[K, V]) VisitDfs(order TraversalOrder, subtreeRoot []K, visitor Visitor[K, V]) {
	switch order {
	case PreOrder, InOrder:
	default:
		panic(fmt.Sprintf("pathtree: unknown traversal order %d", order))
	}

	n := t.findNode(subtreeRoot)
	if n == nil {
		return
	}

	path := make([]K, len(subtreeRoot), len(subtreeRoot)+8)
	copy(path, subtreeRoot)

	n.walk(order, path, visitor)
}

// KeysWithPrefix returns the paths of all values stored at or below prefix,
// in pre-order.
func (t *PathTree[K, V]) KeysWithPrefix(prefix []K) [][]K {
	keys := make([][]K, 0)
	t.VisitDfs(PreOrder, prefix, func(value Maybe[V], path []K) bool {
		if value.IsSome() {
			keys = append(keys, slices.Clone(path))
		}
		return true
	})
	return keys
}

// All yields every stored value with its path, in pre-order.
// The path is reused between calls.
//
//	for path, v := range t.All {
//		...
//	}
func (t *PathTree[K, V]) All(yield func(path []K, value V) bool) {
	t.VisitDfs(PreOrder, nil, func(value Maybe[V], path []K) bool {
		if v, ok := value.Get(); ok {
			return yield(path, v)
		}
		return true
	})
}
