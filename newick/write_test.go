package newick

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TuftsBCB/phylo/tree"
)

func writeTree(t *testing.T, tr *tree.Tree, mod func(*Writer)) string {
	t.Helper()
	buf := new(bytes.Buffer)
	w := NewWriter(buf)
	if mod != nil {
		mod(w)
	}
	if err := w.Write(tr); err != nil {
		t.Fatalf("%s", err)
	}
	return buf.String()
}

func TestWriteStructure(t *testing.T) {
	// Without distances or support in play, reading and writing is an
	// exact round trip.
	for _, s := range []string{"(A, (B, C))", "((a))", "(, (, ), )"} {
		assert.Equal(t, s, writeTree(t, mustParse(t, s), nil))
	}
}

func TestWriteDistances(t *testing.T) {
	tr := mustParse(t, "((ab, cd)ef:0.5)gh:0.4")
	assert.Equal(t, "((ab, cd)ef:0.500)gh:0.400", writeTree(t, tr, nil))

	tr = mustParse(t, "(a:0.5, b:0.25)")
	assert.Equal(t, "(a:0.500, b:0.250)", writeTree(t, tr, nil))
	assert.Equal(t, "(a, b)", writeTree(t, tr, func(w *Writer) {
		w.IncludeDistances = false
	}))
	assert.Equal(t, "(a:0.5000, b:0.2500)", writeTree(t, tr, func(w *Writer) {
		w.DistanceFormat = "%.4f"
	}))
}

func TestWriteSupport(t *testing.T) {
	tr := tree.New()
	root := tr.AddRoot()
	root.SetSupport(0.9534)
	a, _ := tr.AddNode(root)
	a.SetTitle("a")
	b, _ := tr.AddNode(root)
	b.SetTitle("b")

	assert.Equal(t, "(a, b)0.95", writeTree(t, tr, nil))
	assert.Equal(t, "(a, b)0.9534", writeTree(t, tr, func(w *Writer) {
		w.SupportFormat = "%.4f"
	}))
	assert.Equal(t, "(a, b)", writeTree(t, tr, func(w *Writer) {
		w.IncludeSupport = false
	}))
}

func TestWriteQuoting(t *testing.T) {
	tr := tree.New()
	root := tr.AddRoot()
	a, _ := tr.AddNode(root)
	a.SetTitle("Foo bar")
	b, _ := tr.AddNode(root)
	b.SetTitle("'abc'")
	c, _ := tr.AddNode(root)
	c.SetTitle("a,b")

	// Names with spaces or commas are quoted; an already quoted name is
	// not quoted again.
	assert.Equal(t, "('Foo bar', 'abc', 'a,b')", writeTree(t, tr, nil))

	plain := mustParse(t, "(A, B)")
	assert.Equal(t, "('A', 'B')", writeTree(t, plain, func(w *Writer) {
		w.QuoteAllNames = true
	}))
}

func TestWriteNameFallback(t *testing.T) {
	tr := tree.New()
	root := tr.AddRoot()
	a, _ := tr.AddNode(root)
	a.SetString(tree.KeyName, "left")
	b, _ := tr.AddNode(root)
	b.SetTitle("right")
	b.SetString(tree.KeyName, "ignored")

	assert.Equal(t, "(left, right)", writeTree(t, tr, nil))
}

func TestWriteRootless(t *testing.T) {
	tr := tree.New()
	hub := tr.AddRoot()
	for _, name := range []string{"a", "b", "c"} {
		n, _ := tr.AddNode(hub)
		n.SetTitle(name)
	}
	tr.Unroot()

	// The walk starts at the centroid, which is the hub.
	assert.Equal(t, "(a, b, c)", writeTree(t, tr, nil))
}

func TestWriteEmptyTree(t *testing.T) {
	err := NewWriter(new(bytes.Buffer)).Write(tree.New())
	assert.Error(t, err)
}

func TestWriteIdempotent(t *testing.T) {
	tr := mustParse(t, "('x y':2.0, (ab, cd)0.87ef:0.5):0.125")
	assert.Equal(t, writeTree(t, tr, nil), writeTree(t, tr, nil))
}

func TestWriteReadBack(t *testing.T) {
	tr := mustParse(t, "('x y':2.0, (ab, cd)0.87ef:0.5):0.125")
	out := writeTree(t, tr, nil)
	assert.Equal(t, "('x y':2.000, (ab, cd)0.87ef:0.500):0.125", out)

	back := mustParse(t, out)
	assert.Equal(t, tr.CountNodes(), back.CountNodes())
	assert.Equal(t, tr.CountBranches(), back.CountBranches())
	assert.Equal(t, titles(tr.Tips()), titles(back.Tips()))

	ef := back.AdjacentNodes(back.Root())[1]
	v, ok := ef.Support()
	assert.True(t, ok)
	assert.Equal(t, 0.87, v)
	name, _ := ef.Title()
	assert.Equal(t, "ef", name)
	d, _ := back.Distance(back.Root(), ef)
	assert.Equal(t, 0.5, d)
	d, _ = back.Root().Distance()
	assert.Equal(t, 0.125, d)
}
