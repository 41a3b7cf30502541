package tree

import (
	"bytes"
	"fmt"
	"strings"
)

// A Node is a single vertex of a tree. It carries an open-ended attribute
// bag; the title, distance and support keys of the core schema have typed
// accessors below.
type Node struct {
	Attrs

	branches []*Branch
}

// Title returns the node's label, if it has one.
func (n *Node) Title() (string, bool) { return n.Text(KeyTitle) }

// SetTitle sets the node's label.
func (n *Node) SetTitle(title string) { n.SetString(KeyTitle, title) }

// Support returns the node's support value, if it has one.
func (n *Node) Support() (float64, bool) { return n.Number(KeySupport) }

// SetSupport sets the node's support value.
func (n *Node) SetSupport(v float64) { n.SetNumber(KeySupport, v) }

// Distance returns the node-level distance attribute. Only a parentless
// root carries one; everywhere else distances live on branches.
func (n *Node) Distance() (float64, bool) { return n.Number(KeyDistance) }

// SetDistance sets the node-level distance attribute.
func (n *Node) SetDistance(v float64) { n.SetNumber(KeyDistance, v) }

// A Branch joins two adjacent nodes. Like nodes, branches carry an
// attribute bag; the only core key on branches is "distance".
type Branch struct {
	Attrs

	a, b *Node
}

// Nodes returns the two endpoints of the branch, in the order they were
// joined: the parent end first for branches made by AddNode.
func (b *Branch) Nodes() (*Node, *Node) { return b.a, b.b }

// Distance returns the branch length, if one is set.
func (b *Branch) Distance() (float64, bool) { return b.Number(KeyDistance) }

// SetDistance sets the branch length.
func (b *Branch) SetDistance(v float64) { b.SetNumber(KeyDistance, v) }

// other returns the endpoint opposite n, or nil if n is not an endpoint.
func (b *Branch) other(n *Node) *Node {
	switch n {
	case b.a:
		return b.b
	case b.b:
		return b.a
	}
	return nil
}

// A Tree is an unordered, connected graph of nodes joined by branches,
// with at most one node designated as the root. Nodes and branches are
// kept in insertion order, so traversals are deterministic.
type Tree struct {
	root     *Node
	nodes    []*Node
	branches []*Branch
}

// New returns an empty tree.
func New() *Tree { return &Tree{} }

// AddRoot creates and returns the tree's root node. It panics if the tree
// already has one.
func (t *Tree) AddRoot() *Node {
	if t.root != nil {
		panic("tree: AddRoot on a tree that already has a root")
	}
	n := &Node{}
	t.root = n
	t.nodes = append(t.nodes, n)
	return n
}

// AddNode creates a new node joined to parent by a new branch and returns
// both. It panics if parent is nil; grow rootless trees from any existing
// node instead.
func (t *Tree) AddNode(parent *Node) (*Node, *Branch) {
	if parent == nil {
		panic("tree: AddNode with a nil parent")
	}
	n := &Node{}
	br := &Branch{a: parent, b: n}
	parent.branches = append(parent.branches, br)
	n.branches = append(n.branches, br)
	t.nodes = append(t.nodes, n)
	t.branches = append(t.branches, br)
	return n, br
}

// Root returns the designated root, or nil if the tree is rootless.
func (t *Tree) Root() *Node { return t.root }

// Unroot clears the root designation, leaving the graph itself
// untouched. Traversals of a rootless tree start from a centroid node.
func (t *Tree) Unroot() { t.root = nil }

// CountNodes returns the number of nodes in the tree.
func (t *Tree) CountNodes() int { return len(t.nodes) }

// CountBranches returns the number of branches in the tree. A properly
// rooted tree has exactly one fewer branch than it has nodes.
func (t *Tree) CountBranches() int { return len(t.branches) }

// Nodes returns all nodes in insertion order. The slice is shared with
// the tree and must not be modified.
func (t *Tree) Nodes() []*Node { return t.nodes }

// Branches returns all branches in insertion order. The slice is shared
// with the tree and must not be modified.
func (t *Tree) Branches() []*Branch { return t.branches }

// AdjacentNodes returns the neighbours of n in branch insertion order.
// For a node made by AddNode that is the parent first, then the node's
// own children in the order they were added.
func (t *Tree) AdjacentNodes(n *Node) []*Node {
	adj := make([]*Node, 0, len(n.branches))
	for _, br := range n.branches {
		if o := br.other(n); o != nil {
			adj = append(adj, o)
		}
	}
	return adj
}

// Branch returns the branch joining a and b, or nil if they are not
// adjacent.
func (t *Tree) Branch(a, b *Node) *Branch {
	for _, br := range a.branches {
		if br.other(a) == b {
			return br
		}
	}
	return nil
}

// Distance returns the distance attribute of the branch joining a and b.
// The second return value is false if the nodes are not adjacent or their
// branch has no distance.
func (t *Tree) Distance(a, b *Node) (float64, bool) {
	br := t.Branch(a, b)
	if br == nil {
		return 0, false
	}
	return br.Distance()
}

// IsTip reports whether n is a tip (leaf). A root with children is not a
// tip; the sole node of a single-node tree is.
func (t *Tree) IsTip(n *Node) bool {
	if n == t.root {
		return len(n.branches) == 0
	}
	return len(n.branches) <= 1
}

// Tips returns all tip nodes in insertion order.
func (t *Tree) Tips() []*Node {
	var tips []*Node
	for _, n := range t.nodes {
		if t.IsTip(n) {
			tips = append(tips, n)
		}
	}
	return tips
}

// String recursively converts a tree to a string, with whitespace
// indenting to indicate depth. Traversal starts from the root, or from
// the centroid for rootless trees.
func (t *Tree) String() string {
	start := t.root
	if start == nil {
		start = t.Centroid()
	}
	if start == nil {
		return ""
	}

	buf := new(bytes.Buffer)
	pf := func(format string, v ...any) {
		fmt.Fprintf(buf, format, v...)
	}

	var out func(n, from *Node, depth int)
	out = func(n, from *Node, depth int) {
		name, length := "N/A", ""
		if title, ok := n.Title(); ok {
			name = title
		}
		if d, ok := t.distanceFrom(n, from); ok {
			length = fmt.Sprintf(" (%f)", d)
		}
		pf("%s%s%s\n", strings.Repeat("  ", depth), name, length)
		for _, child := range t.AdjacentNodes(n) {
			if child != from {
				out(child, n, depth+1)
			}
		}
	}
	out(start, nil, 0)
	return buf.String()
}

// distanceFrom is the distance of n on its branch toward from, or the
// node's own distance attribute when it has no parent side.
func (t *Tree) distanceFrom(n, from *Node) (float64, bool) {
	if from == nil {
		return n.Distance()
	}
	return t.Distance(n, from)
}
