package newick

import (
	"errors"
	"fmt"
)

// The classes of parse failure. A *ParseError wraps exactly one of
// these, so callers can branch with errors.Is.
var (
	// ErrEmptyInput means the tree string was empty after
	// normalization.
	ErrEmptyInput = errors.New("empty tree string")

	// ErrUnbalancedGrouping means the counts of left and right
	// parentheses differ.
	ErrUnbalancedGrouping = errors.New("unbalanced parentheses")

	// ErrMalformedStructure means the parser expected structural text,
	// usually a closing parenthesis, and found something else.
	ErrMalformedStructure = errors.New("malformed tree structure")

	// ErrInvalidAnnotation means an annotation block was present but
	// its key=value pairs could not be split.
	ErrInvalidAnnotation = errors.New("invalid annotation block")
)

// A ParseError describes why a tree string could not be parsed. Offset is
// a byte position into Input, which is the whitespace-normalized form of
// the source text, not the raw stream contents.
type ParseError struct {
	Err    error  // the failure class, one of the Err variables above
	Input  string // normalized tree string
	Offset int    // byte offset at the point of failure

	detail string
}

func (e *ParseError) Error() string { return e.detail }

func (e *ParseError) Unwrap() error { return e.Err }

func parseErr(class error, input string, offset int, format string, v ...any) *ParseError {
	return &ParseError{
		Err:    class,
		Input:  input,
		Offset: offset,
		detail: fmt.Sprintf(format, v...),
	}
}
