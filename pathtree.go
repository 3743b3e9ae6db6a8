package pathtree

import (
	"errors"
	"strconv"

	"golang.org/x/exp/constraints"
)

const (
	// CountNodeAndChildren counts the node itself and all populated
	// descendants. It is the zero value of CountMode.
	CountNodeAndChildren CountMode = iota
	// CountChildrenOnly counts populated descendants, excluding the node.
	CountChildrenOnly
)

const (
	// PreOrder visits a node before its children.
	PreOrder TraversalOrder = iota
	// InOrder visits all children of a node before the node itself.
	InOrder
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

var (
	ErrNoMoreNodes = errors.New("there are no more nodes in the tree")

	// ErrOrphanNode reports a non-root node that lost its parent link.
	ErrOrphanNode = errors.New("pathtree: non-root node without parent")
	// ErrCountUnderflow reports a populated-descendant count that went negative.
	ErrCountUnderflow = errors.New("pathtree: populated descendant count underflow")
)

type (
	// Key is the set of scalar types usable as path tokens. Every member
	// compares equal to itself, which rules out floats and their NaN.
	Key interface {
		constraints.Integer | ~string | ~bool
	}

	CountMode      int
	TraversalOrder int

	// ValueProvider produces the value for a path that has none yet.
	ValueProvider[K Key, V any] func(path []K) Maybe[V]

	// FillProvider decides the new value at every level of a FillPath walk.
	FillProvider[K Key, V any] func(current Maybe[V], prefix []K) FillResult[V]

	// Visitor is called for every node of a depth-first walk.
	// Returning false stops the walk.
	Visitor[K Key, V any] func(value Maybe[V], path []K) bool

	// PathTree indexes values by paths of key tokens.
	// The zero value is an empty tree ready to use.
	// A PathTree must not be copied after first use.
	PathTree[K Key, V any] struct {
		root node[K, V]
	}

	node[K Key, V any] struct {
		key    K
		value  Maybe[V]
		parent *node[K, V]

		// children indexes the sibling list below by key.
		children map[K]*node[K, V]
		// insertion ordered sibling list
		first, last *node[K, V]
		prev, next  *node[K, V]

		// number of descendants, excluding this node, with a present value
		populated int
	}

	traverseAction int

	// iteratorLevel holds the next child to visit below one node on the
	// current iteration path.
	iteratorLevel[K Key, V any] struct {
		next *node[K, V]
	}

	iterator[K Key, V any] struct {
		nextNode *node[K, V]
		depth    []iteratorLevel[K, V]
	}
)

func (m CountMode) String() string {
	switch m {
	case CountNodeAndChildren:
		return "node-and-children"
	case CountChildrenOnly:
		return "children-only"
	}
	return "CountMode(" + strconv.Itoa(int(m)) + ")"
}

func (o TraversalOrder) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	}
	return "TraversalOrder(" + strconv.Itoa(int(o)) + ")"
}
