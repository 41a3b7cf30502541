package newick

import (
	"bufio"
	"fmt"
	"io"
	"regexp"

	"github.com/TuftsBCB/phylo/tree"
)

// A Writer writes a phylogenetic tree in Newick format.
//
// The option fields may be set any time before Write is called; Write
// snapshots them, so one Writer may serve concurrent calls. Output never
// carries a trailing semicolon. That is left to the caller, since only
// the caller knows whether more text follows the tree.
type Writer struct {
	// SupportFormat is the printf format for support values.
	SupportFormat string

	// DistanceFormat is the printf format for branch lengths.
	DistanceFormat string

	// IncludeSupport controls whether internal node support values are
	// written. Enabled by default.
	IncludeSupport bool

	// IncludeDistances controls whether branch lengths are written.
	// Enabled by default.
	IncludeDistances bool

	// QuoteAllNames forces single quotes around every name, not just the
	// names that contain whitespace or a comma.
	QuoteAllNames bool

	w          io.Writer
	quoted     *regexp.Regexp
	needsQuote *regexp.Regexp
}

// NewWriter returns a writer ready for writing trees to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		SupportFormat:    "%.2f",
		DistanceFormat:   "%.3f",
		IncludeSupport:   true,
		IncludeDistances: true,
		w:                w,
		quoted:           regexp.MustCompile(`^'[^']*'$`),
		needsQuote:       regexp.MustCompile(`[\s,]`),
	}
}

// Write writes t as a single Newick tree. The walk starts at the tree's
// root or, for a rootless tree, at a centroid node.
//
// The tree is not validated: a tip with no usable name yields an empty
// label in the output, exactly as unnamed tips are read in.
func (w *Writer) Write(t *tree.Tree) error {
	root := t.Root()
	if root == nil {
		root = t.Centroid()
	}
	if root == nil {
		return fmt.Errorf("Cannot write a tree with no nodes.")
	}
	e := &emitter{o: *w, t: t, buf: bufio.NewWriter(w.w)}
	e.node(root, nil)
	// The buffer latches the first write error; Flush reports it.
	return e.buf.Flush()
}

// emitter is the state of one Write call: the source tree, the buffered
// sink, and a snapshot of the writer options.
type emitter struct {
	o   Writer
	t   *tree.Tree
	buf *bufio.Writer
}

// node writes the Newick text for n and, by recursion, everything below
// it. parent is the node the walk arrived from, nil at the root.
func (e *emitter) node(n, parent *tree.Node) {
	var children []*tree.Node
	for _, adj := range e.t.AdjacentNodes(n) {
		if adj != parent {
			children = append(children, adj)
		}
	}
	if len(children) == 0 {
		e.buf.WriteString(e.label(n))
	} else {
		e.buf.WriteByte('(')
		for i, child := range children {
			if i > 0 {
				e.buf.WriteString(", ")
			}
			e.node(child, n)
		}
		e.buf.WriteByte(')')
		if e.o.IncludeSupport {
			if v, ok := n.Support(); ok {
				fmt.Fprintf(e.buf, e.o.SupportFormat, v)
			}
		}
		e.buf.WriteString(e.label(n))
	}
	if !e.o.IncludeDistances {
		return
	}
	if parent != nil {
		if d, ok := e.t.Distance(n, parent); ok {
			e.buf.WriteByte(':')
			fmt.Fprintf(e.buf, e.o.DistanceFormat, d)
		}
	} else if d, ok := n.Distance(); ok {
		e.buf.WriteByte(':')
		fmt.Fprintf(e.buf, e.o.DistanceFormat, d)
	}
}

// label returns n's display name with the dialect's quoting applied. The
// title attribute wins over the generic name attribute; a node carrying
// neither gets an empty label.
func (e *emitter) label(n *tree.Node) string {
	name, ok := n.Title()
	if !ok {
		name, ok = n.Text(tree.KeyName)
	}
	if !ok || name == "" {
		return ""
	}
	if e.o.quoted.MatchString(name) {
		return name
	}
	if e.o.QuoteAllNames || e.o.needsQuote.MatchString(name) {
		return "'" + name + "'"
	}
	return name
}
