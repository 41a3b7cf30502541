package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// chain builds a path of n nodes rooted at one end and returns the nodes
// in order from the root.
func chain(t *Tree, n int) []*Node {
	nodes := []*Node{t.AddRoot()}
	for i := 1; i < n; i++ {
		next, _ := t.AddNode(nodes[i-1])
		nodes = append(nodes, next)
	}
	return nodes
}

func TestBuild(t *testing.T) {
	tr := New()
	root := tr.AddRoot()
	a, ab := tr.AddNode(root)
	b, _ := tr.AddNode(root)
	c, _ := tr.AddNode(b)

	assert.Equal(t, 4, tr.CountNodes())
	assert.Equal(t, 3, tr.CountBranches())
	assert.Equal(t, root, tr.Root())

	pa, pb := ab.Nodes()
	assert.Equal(t, root, pa)
	assert.Equal(t, a, pb)

	assert.Equal(t, []*Node{a, b}, tr.AdjacentNodes(root))
	assert.Equal(t, []*Node{root, c}, tr.AdjacentNodes(b))
}

func TestNodesAndBranches(t *testing.T) {
	tr := New()
	root := tr.AddRoot()
	a, ra := tr.AddNode(root)
	b, rb := tr.AddNode(root)
	c, bc := tr.AddNode(b)

	// Both listings follow insertion order, so traversals that use them
	// are deterministic.
	assert.Equal(t, []*Node{root, a, b, c}, tr.Nodes())
	assert.Equal(t, []*Branch{ra, rb, bc}, tr.Branches())
}

func TestTips(t *testing.T) {
	tr := New()
	root := tr.AddRoot()
	a, _ := tr.AddNode(root)
	b, _ := tr.AddNode(root)
	c, _ := tr.AddNode(b)

	assert.False(t, tr.IsTip(root))
	assert.True(t, tr.IsTip(a))
	assert.False(t, tr.IsTip(b))
	assert.True(t, tr.IsTip(c))
	assert.Equal(t, []*Node{a, c}, tr.Tips())

	// The sole node of a single-node tree is a tip.
	one := New()
	only := one.AddRoot()
	assert.True(t, one.IsTip(only))
}

func TestDistances(t *testing.T) {
	tr := New()
	root := tr.AddRoot()
	a, br := tr.AddNode(root)
	br.SetDistance(0.25)

	d, ok := tr.Distance(root, a)
	assert.True(t, ok)
	assert.Equal(t, 0.25, d)

	// Order of endpoints does not matter.
	d, ok = tr.Distance(a, root)
	assert.True(t, ok)
	assert.Equal(t, 0.25, d)

	b, _ := tr.AddNode(root)
	_, ok = tr.Distance(root, b)
	assert.False(t, ok)

	// Non-adjacent nodes have no branch and no distance.
	assert.Nil(t, tr.Branch(a, b))
	_, ok = tr.Distance(a, b)
	assert.False(t, ok)
}

func TestNodeAttrs(t *testing.T) {
	tr := New()
	n := tr.AddRoot()

	_, ok := n.Title()
	assert.False(t, ok)

	n.SetTitle("rhodopsin")
	name, ok := n.Title()
	assert.True(t, ok)
	assert.Equal(t, "rhodopsin", name)

	n.SetSupport(0.93)
	n.SetString("color", "red")

	// Typed accessors refuse values of the other kind.
	_, ok = n.Number("color")
	assert.False(t, ok)
	_, ok = n.Text(KeySupport)
	assert.False(t, ok)

	// Keys come back in insertion order; replacing keeps the slot.
	assert.Equal(t, []string{KeyTitle, KeySupport, "color"}, n.Keys())
	n.SetTitle("opsin")
	assert.Equal(t, []string{KeyTitle, KeySupport, "color"}, n.Keys())
	name, _ = n.Title()
	assert.Equal(t, "opsin", name)
}

func TestCentroidPath(t *testing.T) {
	tr := New()
	nodes := chain(tr, 4)

	// A four node path has two centroids, the middle pair.
	assert.Equal(t, []*Node{nodes[1], nodes[2]}, tr.CentroidNodes())
	assert.Equal(t, nodes[1], tr.Centroid())
}

func TestCentroidStar(t *testing.T) {
	tr := New()
	hub := tr.AddRoot()
	for i := 0; i < 3; i++ {
		tr.AddNode(hub)
	}
	tr.Unroot()

	assert.Nil(t, tr.Root())
	assert.Equal(t, []*Node{hub}, tr.CentroidNodes())
}

func TestCentroidEmpty(t *testing.T) {
	tr := New()
	assert.Nil(t, tr.Centroid())
	assert.Empty(t, tr.CentroidNodes())
}

func TestValidate(t *testing.T) {
	tr := New()
	assert.NoError(t, tr.Validate())

	chain(tr, 3)
	assert.NoError(t, tr.Validate())

	// A branch to a node the tree does not know about.
	stray := &Node{}
	tr.branches = append(tr.branches, &Branch{a: tr.nodes[0], b: stray})
	assert.Error(t, tr.Validate())
}
