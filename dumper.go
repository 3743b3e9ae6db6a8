package pathtree

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
	"github.com/xlab/treeprint"
)

const rootLabel = "/"

// String renders the tree one node per line. Each line shows the key,
// the value or "-" when there is none, and in brackets the number of
// values stored below the node.
func (t *PathTree[K, V]) String() string {
	return t.printer().String()
}

// Fprint writes the rendering of String to w.
func (t *PathTree[K, V]) Fprint(w io.Writer) error {
	_, err := w.Write(t.printer().Bytes())
	return errtrace.Wrap(err)
}

func (t *PathTree[K, V]) printer() treeprint.Tree {
	tree := treeprint.NewWithRoot(nodeLabel(rootLabel, t.root.value))
	t.root.dumpRec(tree)
	return tree
}

func (n *node[K, V]) dumpRec(branch treeprint.Tree) {
	for c := n.first; c != nil; c = c.next {
		label := nodeLabel(c.key, c.value)
		if !c.hasChildren() {
			branch.AddMetaNode(c.populated, label)
			continue
		}
		c.dumpRec(branch.AddMetaBranch(c.populated, label))
	}
}

func nodeLabel[V any](key any, value Maybe[V]) string {
	if v, ok := value.Get(); ok {
		return fmt.Sprintf("%v: %v", key, v)
	}
	return fmt.Sprintf("%v: -", key)
}
