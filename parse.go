package linecalc

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/apd/v3"
)

// Expr is a built expression that can be evaluated with a context. Evaluation
// reduces the expression in place, so an Expr is evaluated at most once;
// evaluating it again gives the same result.
type Expr struct {
	// g is the top-level group.
	g *groupNode
}

// Parse builds an expression tree from a single-line expression. All
// whitespace in src is ignored. If src is malformed, the error is an
// InputError describing the first problem found.
//
// A close bracket with no matching open bracket ends the expression early:
// "2+3)*4" is the same as "2+3".
func Parse(src string) (*Expr, error) {
	src = strip(src)
	g := &groupNode{pos: span{0, len(src)}}
	if _, err := build(src, g, 0); err != nil {
		return nil, err
	}
	if len(g.children) == 0 {
		return nil, &EmptyExpressionError{Col: len(src) + 1}
	}
	return &Expr{g: g}, nil
}

// strip removes all whitespace from src.
func strip(src string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, src)
}

// build scans the children of g starting at pos and returns the position
// following the group. A group ends at its close bracket or at the end of src.
// Nested groups are built recursively over the rest of src.
func build(src string, g *groupNode, pos int) (int, error) {
	for pos != len(src) {
		guard := pos
		// A minus sign after an operand is subtraction, not part of a number.
		if text, ok := scanNum(src, pos); ok && (text[0] != '-' || !g.operandLast()) {
			v, _, err := apd.NewFromString(text)
			if err != nil {
				panic("linecalc: scanned invalid number " + strconv.Quote(text) + ": " + err.Error())
			}
			g.add(&numNode{text: text, val: v, pos: span{pos, pos + len(text)}})
			pos += len(text)
			if pos == len(src) {
				break
			}
		}
		if op, ok := scanOp(src, pos); ok {
			w := len(op.Symbol())
			g.add(&opNode{op: op, pos: span{pos, pos + w}})
			pos += w
		}
		if scanOpen(src, pos) {
			sub := &groupNode{pos: span{start: pos}}
			end, err := build(src, sub, pos+len(OpenBracket))
			if err != nil {
				return end, err
			}
			if !sub.closed {
				return end, &BracketError{Col: sub.pos.start + 1}
			}
			g.add(sub)
			pos = end
		}
		if scanClose(src, pos) {
			if len(g.children) == 0 {
				return pos, &EmptyExpressionError{Col: pos + 1, End: CloseBracket}
			}
			pos += len(CloseBracket)
			g.closed = true
			g.pos.end = pos
			return pos, nil
		}
		if pos == guard {
			return pos, &StallError{Col: pos + 1, Text: src[pos:]}
		}
	}
	g.pos.end = pos
	return pos, nil
}

// String creates a string representation of the expression, with alternating
// round and square brackets around each group. Once the expression is
// evaluated, it shows the result.
func (e *Expr) String() string {
	return e.g.String()
}
