package linecalc

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "(1)"},
		{"dec", "2.80*1", "(2.80 * 1)"},
		{"flat", "2+2*5+5", "(2 + 2 * 5 + 5)"},
		{"group", "(2+5)*3", "([2 + 5] * 3)"},
		{"nested", "1+(2*(3-1))", "(1 + [2 * (3 - 1)])"},
		{"double", "((1+2))", "([(1 + 2)])"},
		{"sqrt", "sqrt(4)", "(sqrt [4])"},
		{"sqrt-mul", "3*sqrt(16)", "(3 * sqrt [16])"},
		{"signed", "-1--1", "(-1 - -1)"},
		{"signed-run", "-1 ---1", "(-1 - - -1)"},
		{"signed-after-op", "8+-3*2", "(8 + -3 * 2)"},
		{"minus-after-group", "(2)-1", "([2] - 1)"},
		{"minus-after-num", "5-1", "(5 - 1)"},
		{"spaces", " 2 *\t3 ", "(2 * 3)"},
		{"spaces-in-num", "1 2", "(12)"},
		{"stray-close", "2+3)", "(2 + 3)"},
		{"stray-close-rest", "2+3)*4", "(2 + 3)"},
		{"leading-op", "+3", "(+ 3)"},
		{"adjacent", "2(3)", "(2 [3])"},
		{"lone-op", "sqrt", "(sqrt)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			require.NoError(t, err)
			if got := e.String(); got != c.want {
				t.Errorf("%q gave the wrong tree:\n\twant %s\n\tgot  %s\n%# v", c.src, c.want, got, pretty.Formatter(e.g))
			}
		})
	}
}

// spans lists the positions of the children of g.
func spans(g *groupNode) []span {
	var r []span
	for _, c := range g.children {
		switch c := c.(type) {
		case *numNode:
			r = append(r, c.pos)
		case *opNode:
			r = append(r, c.pos)
		case *groupNode:
			r = append(r, c.pos)
		}
	}
	return r
}

func TestParseSpans(t *testing.T) {
	cases := []struct {
		name string
		src  string
		top  span
		want []span
		// sub is the spans of the first nested group, if any.
		sub []span
	}{
		{"flat", "1+2", span{0, 3}, []span{{0, 1}, {1, 2}, {2, 3}}, nil},
		{"spaces", "1 + 2", span{0, 3}, []span{{0, 1}, {1, 2}, {2, 3}}, nil},
		{"group", "3*(2+4)", span{0, 7}, []span{{0, 1}, {1, 2}, {2, 7}}, []span{{3, 4}, {4, 5}, {5, 6}}},
		{"sqrt", "sqrt(16)", span{0, 8}, []span{{0, 4}, {4, 8}}, []span{{5, 7}}},
		{"signed", "-1.5--2", span{0, 7}, []span{{0, 4}, {4, 5}, {5, 7}}, nil},
		{"stray-close", "2+3)*4", span{0, 4}, []span{{0, 1}, {1, 2}, {2, 3}}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.top, e.g.pos)
			if d := pretty.Diff(c.want, spans(e.g)); d != nil {
				t.Errorf("%q gave wrong spans: %v", c.src, d)
			}
			if c.sub == nil {
				return
			}
			for _, n := range e.g.children {
				if g, ok := n.(*groupNode); ok {
					assert.True(t, g.closed)
					if d := pretty.Diff(c.sub, spans(g)); d != nil {
						t.Errorf("%q gave wrong spans in group: %v", c.src, d)
					}
					return
				}
			}
			t.Errorf("%q has no group:\n%# v", c.src, pretty.Formatter(e.g))
		})
	}
}

func TestParseNumbers(t *testing.T) {
	e, err := Parse("-0.50*340.5")
	require.NoError(t, err)
	require.Len(t, e.g.children, 3)
	x := e.g.children[0].(*numNode)
	y := e.g.children[2].(*numNode)
	assert.Equal(t, "-0.50", x.text)
	assert.Equal(t, "-0.50", x.val.String())
	assert.Equal(t, "340.5", y.val.String())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  InputError
	}{
		{"empty", "", &EmptyExpressionError{Col: 1}},
		{"blank", " \t ", &EmptyExpressionError{Col: 1}},
		{"empty-group", "()", &EmptyExpressionError{Col: 2, End: CloseBracket}},
		{"empty-nested", "2*(())", &EmptyExpressionError{Col: 5, End: CloseBracket}},
		{"lone-close", ")", &EmptyExpressionError{Col: 1, End: CloseBracket}},
		{"unclosed", "(2+3", &BracketError{Col: 1}},
		{"lone-open", "(", &BracketError{Col: 1}},
		{"unclosed-outer", "1+(2*(3)", &BracketError{Col: 3}},
		{"unclosed-late", "sqrt(4)+(1", &BracketError{Col: 9}},
		{"word", "foo", &StallError{Col: 1, Text: "foo"}},
		{"symbol", "2+$", &StallError{Col: 3, Text: "$"}},
		{"two-points", "1.2.3", &StallError{Col: 4, Text: ".3"}},
		{"exponent", "1 e3", &StallError{Col: 2, Text: "e3"}},
		{"leading-point", ".5", &StallError{Col: 1, Text: ".5"}},
		{"square", "[1]", &StallError{Col: 1, Text: "[1]"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, err := Parse(c.src)
			assert.Nilf(t, e, "%q gave a tree", c.src)
			require.Error(t, err)
			assert.Equal(t, c.err, err)
			assert.Equal(t, c.err.Pos(), err.(InputError).Pos())
			assert.NotEmpty(t, err.Error())
		})
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&StallError{Col: 3, Text: "$"}, `3: invalid token: "$"`},
		{&BracketError{Col: 1}, "1: open bracket ( with no close bracket"},
		{&EmptyExpressionError{Col: 1}, "1: no expression"},
		{&EmptyExpressionError{Col: 2, End: ")"}, `2: no expression up to ")"`},
		{&OperandError{Col: 1, Operator: OpAdd, Left: true}, `1: no left operand for "+"`},
		{&OperandError{Col: 4, Operator: OpSqrt}, `4: no right operand for "sqrt"`},
		{&ResolveError{Col: 1, Len: 2}, "1: group reduced to 2 terms instead of one"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.err.Error())
	}
}

func BenchmarkParse(b *testing.B) {
	const src = "3+sqrt(4)*3-2/(3+4)*0+(1+(2*(3-(4/5))))^2"
	for i := 0; i < b.N; i++ {
		Parse(src)
	}
}
