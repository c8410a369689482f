package linecalc

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// node is an element of a group: a number, an operator, a nested group, or a
// value produced by reducing an operator with its operands.
type node interface {
	// fmt writes the node. square selects the bracket style for groups.
	fmt(b *strings.Builder, square bool)
}

// numNode is a number literal.
type numNode struct {
	text string
	val  *apd.Decimal
	pos  span
}

// opNode is an operator token.
type opNode struct {
	op  Operator
	pos span
}

// groupNode is a parenthesized scope, or the whole expression. It exclusively
// owns its children. After reduction, either err is set or result is set and
// children holds exactly one valueNode.
type groupNode struct {
	children []node
	pos      span
	// closed is set when the builder found the group's close bracket.
	closed bool

	result *apd.Decimal
	err    error
}

// valueNode is a value computed during reduction. It has no source position.
type valueNode struct {
	val *apd.Decimal
}

func (n *numNode) fmt(b *strings.Builder, square bool) {
	b.WriteString(n.text)
}

func (n *opNode) fmt(b *strings.Builder, square bool) {
	b.WriteString(n.op.Symbol())
}

func (n *valueNode) fmt(b *strings.Builder, square bool) {
	b.WriteString(Format(n.val))
}

func (n *groupNode) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	if n.err != nil {
		// Failed groups use invalid characters.
		b.WriteString("$")
		return
	}
	for i, c := range n.children {
		if i > 0 {
			b.WriteByte(' ')
		}
		c.fmt(b, !square)
	}
}

// add appends a child to the group.
func (n *groupNode) add(c node) {
	n.children = append(n.children, c)
}

// operandLast reports whether the group's last child is something an operator
// can take as its left operand.
func (n *groupNode) operandLast() bool {
	if len(n.children) == 0 {
		return false
	}
	_, op := n.children[len(n.children)-1].(*opNode)
	return !op
}

// splice replaces the children in [i, j) with v.
func (n *groupNode) splice(i, j int, v node) {
	n.children[i] = v
	n.children = append(n.children[:i+1], n.children[j:]...)
}

func (n *groupNode) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}
