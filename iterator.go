package pathtree

// Iterator returns an iterator over every node of the tree in pre-order,
// starting with the root. The tree must not be modified while iterating.
func (t *PathTree[K, V]) Iterator() Iterator[K, V] {
	return &iterator[K, V]{
		nextNode: &t.root,
		depth:    []iteratorLevel[K, V]{{next: t.root.first}},
	}
}

func (it *iterator[K, V]) HasNext() bool {
	return it != nil && it.nextNode != nil
}

func (it *iterator[K, V]) Next() (Node[K, V], error) {
	if !it.HasNext() {
		return nil, ErrNoMoreNodes
	}
	cur := it.nextNode
	it.next()
	return cur, nil
}

func (it *iterator[K, V]) next() {
	for len(it.depth) > 0 {
		level := &it.depth[len(it.depth)-1]
		if child := level.next; child != nil {
			level.next = child.next
			it.nextNode = child
			it.depth = append(it.depth, iteratorLevel[K, V]{next: child.first})
			return
		}
		// subtree exhausted, climb back up
		it.depth = it.depth[:len(it.depth)-1]
	}
	it.nextNode = nil
}
