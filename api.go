// Package pathtree provides an in-memory tree that indexes values by paths
// of discrete key tokens.
//
// Every node keeps a running count of the populated nodes below it, so
// counting and emptiness checks cost O(depth). Nodes that hold no value and
// have no children are pruned as soon as an operation leaves them behind;
// only the root survives empty.
//
//	var t pathtree.PathTree[string, int]
//	t.Set([]string{"a", "b"}, 1)
//	t.Set([]string{"a", "c"}, 2)
//	t.Count([]string{"a"}, pathtree.CountNodeAndChildren) // == 2
//	t.Delete([]string{"a"})
//	t.IsEmpty() // == true
//
// A PathTree is not safe for concurrent use.
package pathtree

type Tree[K Key, V any] interface {
	Get(path []K) (V, bool)
	Lookup(path []K) Maybe[V]
	Set(path []K, value V)
	Store(path []K, value Maybe[V])
	Unset(path []K)
	GetOrSet(path []K, provider ValueProvider[K, V]) (V, bool)
	Delete(path []K) bool
	Count(path []K, mode CountMode) int
	IsEmpty() bool
	Size() int
	FillPath(path []K, provider FillProvider[K, V])
	VisitDfs(order TraversalOrder, subtreeRoot []K, visitor Visitor[K, V])
	KeysWithPrefix(prefix []K) [][]K
	All(yield func(path []K, value V) bool)
	Iterator() Iterator[K, V]
	String() string
}

type Iterator[K Key, V any] interface {
	HasNext() bool
	Next() (Node[K, V], error)
}

// Node is a read-only view of a tree node.
type Node[K Key, V any] interface {
	Key() K
	Path() []K
	Value() Maybe[V]
	Count(mode CountMode) int
}

var _ Tree[string, int] = (*PathTree[string, int])(nil)

// New returns an empty tree.
func New[K Key, V any]() *PathTree[K, V] {
	return &PathTree[K, V]{}
}
