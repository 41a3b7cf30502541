package newick

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/TuftsBCB/phylo/tree"
)

// grammar is the compiled pattern set owned by a single Reader. Patterns
// are compiled at construction rather than kept in package globals, so
// readers never share mutable state.
type grammar struct {
	spaces     *regexp.Regexp
	quotedName *regexp.Regexp
	name       *regexp.Regexp
	distance   *regexp.Regexp
	support    *regexp.Regexp
	annotation *regexp.Regexp
}

func newGrammar() *grammar {
	return &grammar{
		spaces:     regexp.MustCompile(`\s+`),
		quotedName: regexp.MustCompile(`^\s*'([^']*)'\s*`),
		name:       regexp.MustCompile(`^\s*([a-zA-Z0-9\-_?*/\[\]]+)\s*`),
		distance:   regexp.MustCompile(`^\s*:\s*(-?(?:\d+\.\d+(?:[eE]-?\d+)?|0?\.\d+|\d+))\s*`),
		support:    regexp.MustCompile(`^\s*(-?(?:\d+\.\d+|0?\.\d+|\d+))\s*`),
		annotation: regexp.MustCompile(`^\s*\[&([^\]]*)\]\s*`),
	}
}

// A Reader reads a phylogenetic tree from Newick formatted input.
//
// The option fields may be set any time before Read is called. All parse
// state is scoped to a single Read call; the Reader itself holds only the
// source, the options and its compiled patterns.
type Reader struct {
	// NodeAnnotations enables parsing of [&key=value,...] annotation
	// blocks into node attributes. When disabled, bracketed metadata is
	// not recognized and usually fails the parse as stray text.
	// Enabled by default.
	NodeAnnotations bool

	// SupportValues enables parsing of numeric support values on
	// internal nodes. Disable it to read trees whose internal nodes
	// carry purely numeric names. Enabled by default.
	SupportValues bool

	r io.Reader
	g *grammar
}

// NewReader returns a reader ready for reading a tree from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		NodeAnnotations: true,
		SupportValues:   true,
		r:               r,
		g:               newGrammar(),
	}
}

// Read reads the remainder of the source as exactly one Newick tree,
// optionally semicolon-terminated, and returns the populated tree. No
// partial tree is ever returned: on any parse failure the error is a
// *ParseError and the tree is nil.
func (r *Reader) Read() (*tree.Tree, error) {
	raw, err := io.ReadAll(r.r)
	if err != nil {
		return nil, err
	}
	return r.parseTree(string(raw))
}

// Parse reads a single Newick tree from a string.
func Parse(s string) (*tree.Tree, error) {
	return NewReader(strings.NewReader(s)).Read()
}

func (r *Reader) parseTree(raw string) (*tree.Tree, error) {
	input, err := r.normalize(raw)
	if err != nil {
		return nil, err
	}
	p := &parser{
		g:           r.g,
		input:       input,
		tree:        tree.New(),
		annotations: r.NodeAnnotations,
		support:     r.SupportValues,
	}
	if err := p.parseNode(nil); err != nil {
		return nil, err
	}
	p.skipSpaces()
	if !p.eof() {
		return nil, parseErr(ErrMalformedStructure, p.input, p.pos,
			"Unexpected text after tree in [%s] at [%s] (offset %d).",
			p.input, p.rest(), p.pos)
	}
	return p.tree, nil
}

// normalize produces the canonical parse form of raw tree text: flanking
// whitespace trimmed, one trailing semicolon dropped, every internal
// whitespace run collapsed to a single space. The result must be
// non-empty with matching parenthesis counts.
func (r *Reader) normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if strings.HasSuffix(s, ";") {
		s = strings.TrimSpace(s[:len(s)-1])
	}
	s = r.g.spaces.ReplaceAllString(s, " ")
	if s == "" {
		return "", parseErr(ErrEmptyInput, s, 0,
			"Null string passed as tree data.")
	}
	left, right := strings.Count(s, "("), strings.Count(s, ")")
	if left != right {
		return "", parseErr(ErrUnbalancedGrouping, s, 0,
			"The number of left and right braces (%d, %d) don't match.",
			left, right)
	}
	return s, nil
}

// parser is the state of one Read call: an index cursor over the
// immutable normalized input, the tree under construction, and a
// snapshot of the reader options. It is created and dropped inside a
// single call, so one Reader may serve concurrent calls.
type parser struct {
	g           *grammar
	input       string
	pos         int
	tree        *tree.Tree
	annotations bool
	support     bool
}

func (p *parser) eof() bool { return p.pos >= len(p.input) }

// peek returns the byte under the cursor without consuming it, or 0 at
// end of input.
func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) rest() string { return p.input[p.pos:] }

func (p *parser) skipSpaces() {
	for !p.eof() && p.input[p.pos] == ' ' {
		p.pos++
	}
}

// parseNode consumes exactly the text describing one node and its whole
// subtree, adding the node (and, below the root, its incoming branch) to
// the growing tree. The cursor is left just after the consumed text.
//
// The node's trailing decorations come in a fixed order, each one
// optional: support value, then name, then annotation block, then
// branch length.
func (p *parser) parseNode(parent *tree.Node) error {
	var node *tree.Node
	var branch *tree.Branch
	if parent == nil {
		node = p.tree.AddRoot()
	} else {
		node, branch = p.tree.AddNode(parent)
	}

	p.skipSpaces()
	group := false
	if p.peek() == '(' {
		group = true
		p.pos++
		if err := p.parseNode(node); err != nil {
			return err
		}
		p.skipSpaces()
		for p.peek() == ',' {
			p.pos++
			if err := p.parseNode(node); err != nil {
				return err
			}
			p.skipSpaces()
		}
		if p.peek() != ')' {
			return parseErr(ErrMalformedStructure, p.input, p.pos,
				"Can't find end brace in [%s] at [%s] (offset %d).",
				p.input, p.rest(), p.pos)
		}
		p.pos++
	}

	// A support value can only follow a descendant group; a bare number
	// on a tip is always a name.
	if p.support && group {
		if v, ok := p.matchNumber(p.g.support); ok {
			node.SetSupport(v)
		}
	}
	if name, ok := p.matchName(); ok {
		node.SetTitle(name)
	}
	if p.annotations {
		if err := p.parseAnnotations(node); err != nil {
			return err
		}
	}
	if v, ok := p.matchNumber(p.g.distance); ok {
		if branch != nil {
			branch.SetDistance(v)
		} else {
			node.SetDistance(v)
		}
	}
	return nil
}

// matchNumber consumes a leading number matched by re and returns its
// value. Nothing is consumed on a non-match. A magnitude out of float64
// range keeps ParseFloat's clamped result, an infinity or zero.
func (p *parser) matchNumber(re *regexp.Regexp) (float64, bool) {
	m := re.FindStringSubmatch(p.rest())
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic(fmt.Sprintf("BUG: matched number %q does not parse: %s", m[1], err))
	}
	p.pos += len(m[0])
	return v, true
}

// matchName consumes a leading node name, either single-quoted (quotes
// stripped) or a run of name characters. Nothing is consumed on a
// non-match.
func (p *parser) matchName() (string, bool) {
	rest := p.rest()
	if m := p.g.quotedName.FindStringSubmatchIndex(rest); m != nil {
		name := rest[m[2]:m[3]]
		p.pos += m[1]
		return name, true
	}
	m := p.g.name.FindStringSubmatchIndex(rest)
	if m == nil {
		return "", false
	}
	name := rest[m[2]:m[3]]
	if p.annotations {
		// '[' and ']' are name characters, so an unquoted match can
		// swallow the opener of a following annotation block. Cut the
		// name where "[&" begins: "A[&x=1]" names the node A.
		window := rest[m[2]:min(m[3]+1, len(rest))]
		if k := strings.Index(window, "[&"); k >= 0 {
			if k == 0 {
				return "", false
			}
			p.pos += m[2] + k
			return name[:k], true
		}
	}
	p.pos += m[1]
	return name, true
}

// parseAnnotations consumes a leading [&key=value,...] block and merges
// its pairs into the node's attributes. A bracketed run that does not
// have the block shape is not an annotation and nothing is consumed; a
// block whose pairs cannot be split is an error.
func (p *parser) parseAnnotations(node *tree.Node) error {
	rest := p.rest()
	m := p.g.annotation.FindStringSubmatchIndex(rest)
	if m == nil {
		return nil
	}
	body := rest[m[2]:m[3]]
	for _, pair := range splitPairs(body) {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return parseErr(ErrInvalidAnnotation, p.input, p.pos,
				"Can't split annotation pair %q in [&%s] (offset %d).",
				pair, body, p.pos)
		}
		node.SetString(key, value)
	}
	p.pos += m[1]
	return nil
}

// splitPairs splits an annotation body on the commas that separate
// key=value pairs. Only a comma directly followed by an alphabetic key
// character splits, so commas embedded in values survive.
func splitPairs(body string) []string {
	var pairs []string
	start := 0
	for i := 0; i+1 < len(body); i++ {
		if body[i] == ',' && isAlpha(body[i+1]) {
			pairs = append(pairs, body[start:i])
			start = i + 1
		}
	}
	return append(pairs, body[start:])
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
