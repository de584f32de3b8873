package floorplan

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Sentinel parse errors. Every error returned by the parsers is a
// *[ParseError] wrapping one of these.
var (
	// ErrFormat marks a line that is neither a cut marker nor label(width,height).
	ErrFormat = errors.New("malformed line")

	// ErrTruncated marks input that ended while a child was still expected.
	ErrTruncated = errors.New("unexpected end of input")

	// ErrTrailing marks content left over after the root subtree was complete.
	ErrTrailing = fmt.Errorf("%w: content after complete tree", ErrFormat)

	// ErrUnbalanced marks post-order input whose cuts do not pair up with
	// exactly two operands each.
	ErrUnbalanced = fmt.Errorf("%w: unbalanced post-order tree", ErrFormat)
)

// ParseError reports the line at which parsing failed.
type ParseError struct {
	Line    int    // 1-based line number; one past the last line for truncation
	Content string // offending line, empty at end of input
	Err     error  // one of the sentinel errors
}

func (e *ParseError) Error() string {
	if e.Content == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Content, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var leafPattern = regexp.MustCompile(`^(\d+)\((\d+),(\d+)\)$`)

// ParseLeaf parses a single label(width,height) line.
func ParseLeaf(line string) (*Leaf, error) {
	m := leafPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, ErrFormat
	}
	var nums [3]int
	for i, s := range m[1:] {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		nums[i] = v
	}
	return NewLeaf(nums[0], nums[1], nums[2]), nil
}

// lineReader is the shared cursor consumed by the recursive builder.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{sc: bufio.NewScanner(r)}
}

// next returns the next line. ok is false at end of input.
func (lr *lineReader) next() (text string, ok bool, err error) {
	if !lr.sc.Scan() {
		if err := lr.sc.Err(); err != nil {
			return "", false, fmt.Errorf("read line %d: %w", lr.line+1, err)
		}
		return "", false, nil
	}
	lr.line++
	return lr.sc.Text(), true, nil
}

// Parse builds a tree from pre-order text. Empty input returns (nil, nil).
// The first malformed or missing line fails the whole build. Blank lines
// after the root subtree are ignored.
func Parse(r io.Reader) (Node, error) {
	lr := newLineReader(r)
	text, ok, err := lr.next()
	if err != nil || !ok {
		return nil, err
	}
	root, err := lr.build(text)
	if err != nil {
		return nil, err
	}
	for {
		extra, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return root, nil
		}
		if strings.TrimSpace(extra) != "" {
			return nil, &ParseError{Line: lr.line, Content: extra, Err: ErrTrailing}
		}
	}
}

// ParseLines is Parse over an in-memory slice of lines.
func ParseLines(lines []string) (Node, error) {
	return Parse(strings.NewReader(joinLines(lines)))
}

// build turns the current line into a node, pulling children for cuts.
func (lr *lineReader) build(text string) (Node, error) {
	if kind, ok := ParseKind(text); ok {
		left, err := lr.child()
		if err != nil {
			return nil, err
		}
		right, err := lr.child()
		if err != nil {
			return nil, err
		}
		return NewCut(kind, left, right), nil
	}
	leaf, err := ParseLeaf(text)
	if err != nil {
		return nil, &ParseError{Line: lr.line, Content: text, Err: err}
	}
	return leaf, nil
}

func (lr *lineReader) child() (Node, error) {
	text, ok, err := lr.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ParseError{Line: lr.line + 1, Err: ErrTruncated}
	}
	return lr.build(text)
}

// ParsePostOrder builds a tree from the post-order text written by
// [WriteTree]. Empty input returns (nil, nil).
func ParsePostOrder(r io.Reader) (Node, error) {
	lr := newLineReader(r)
	var stack []Node
	for {
		text, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if kind, ok := ParseKind(text); ok {
			if len(stack) < 2 {
				return nil, &ParseError{Line: lr.line, Content: text, Err: ErrUnbalanced}
			}
			left, right := stack[len(stack)-2], stack[len(stack)-1]
			stack = append(stack[:len(stack)-2], NewCut(kind, left, right))
			continue
		}
		leaf, err := ParseLeaf(text)
		if err != nil {
			return nil, &ParseError{Line: lr.line, Content: text, Err: err}
		}
		stack = append(stack, leaf)
	}
	switch len(stack) {
	case 0:
		return nil, nil
	case 1:
		return stack[0], nil
	}
	return nil, &ParseError{Line: lr.line + 1, Err: ErrUnbalanced}
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
