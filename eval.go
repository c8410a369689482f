package linecalc

import (
	"log/slog"

	"github.com/cockroachdb/apd/v3"
)

// Sentinel is the result of Calculate for any expression that cannot be
// evaluated. It is never the text of a number.
const Sentinel = "Erreur*"

// Context is a context for evaluating expressions. It is not safe to use a
// Context concurrently.
type Context struct {
	log *slog.Logger
	res *apd.Decimal
	err error
	ok  bool
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type traceopt struct {
	log *slog.Logger
}

func (traceopt) ctxOption() {}

// Trace logs each reduction step at debug level to l. A nil l disables
// tracing.
func Trace(l *slog.Logger) ContextOption {
	return traceopt{l}
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	var ctx Context
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case traceopt:
			ctx.log = opt.log
		default:
			panic("linecalc: unknown option type")
		}
	}
	return &ctx
}

// passes are the operator sets reduced in each pass over a group, in order.
var passes = [...][]Operator{
	{OpSqrt},
	{OpPow},
	{OpMul, OpDiv},
	{OpAdd, OpSub},
}

// Eval evaluates an expression and returns the result. If an error occurs,
// then the result is nil and ctx.Err returns the error.
func (ctx *Context) Eval(e *Expr) *apd.Decimal {
	ctx.res, ctx.err = ctx.reduce(e.g)
	ctx.ok = true
	return ctx.res
}

// Result returns the result obtained after evaluating an expression. Panics if
// ctx has not been used to evaluate an expression. Returns nil if an error
// occurred during evaluation.
func (ctx *Context) Result() *apd.Decimal {
	if !ctx.ok {
		panic("linecalc: Context.Result called before evaluating any expression")
	}
	return ctx.res
}

// Err returns the error from the last evaluation, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// reduce evaluates a group. A group that is already evaluated returns its
// earlier result or error.
func (ctx *Context) reduce(g *groupNode) (*apd.Decimal, error) {
	if g.result != nil || g.err != nil {
		return g.result, g.err
	}
	if len(g.children) > 1 {
		for _, ops := range passes {
			if err := ctx.pass(g, ops); err != nil {
				return nil, ctx.fail(g, err)
			}
		}
	}
	if len(g.children) != 1 {
		return nil, ctx.fail(g, &ResolveError{Col: g.pos.start + 1, Len: len(g.children)})
	}
	// A lone group or number still needs its value. An operator here has
	// lost both of its operands.
	r, err := ctx.operand(g, 0, nil, false)
	if err != nil {
		return nil, ctx.fail(g, err)
	}
	g.result = r
	g.children[0] = &valueNode{val: r}
	return r, nil
}

// fail records err as the failure of g.
func (ctx *Context) fail(g *groupNode, err error) error {
	g.err = err
	if ctx.log != nil {
		ctx.log.Debug("group failed", slog.Int("col", g.pos.start+1), slog.Any("err", err))
	}
	return err
}

// pass reduces every operator in ops among the children of g, from left to
// right. Each operator is replaced together with its operands by their value.
func (ctx *Context) pass(g *groupNode, ops []Operator) error {
	for i := 0; i < len(g.children); i++ {
		o, ok := g.children[i].(*opNode)
		if !ok || !has(ops, o.op) {
			continue
		}
		var x, y *apd.Decimal
		var err error
		if !o.op.unary() {
			x, err = ctx.operand(g, i-1, o, true)
			if err != nil {
				return err
			}
		}
		y, err = ctx.operand(g, i+1, o, false)
		if err != nil {
			return err
		}
		r, err := apply(o.op, x, y)
		if err != nil {
			return err
		}
		if ctx.log != nil {
			ctx.trace(o.op, x, y, r)
		}
		if o.op.unary() {
			g.splice(i, i+2, &valueNode{val: r})
			continue
		}
		g.splice(i-1, i+2, &valueNode{val: r})
		// The value now sits at i-1; resume scanning with the node after it.
		i--
	}
	return nil
}

// operand gets the value of the child of g at index k, reducing it first if it
// is a group. o is the operator that takes the operand, or nil if the child is
// the only one left in g.
func (ctx *Context) operand(g *groupNode, k int, o *opNode, left bool) (*apd.Decimal, error) {
	if k < 0 || k >= len(g.children) {
		return nil, &OperandError{Col: o.pos.start + 1, Operator: o.op, Left: left}
	}
	switch n := g.children[k].(type) {
	case *numNode:
		return n.val, nil
	case *valueNode:
		return n.val, nil
	case *groupNode:
		return ctx.reduce(n)
	case *opNode:
		if o == nil {
			// A lone operator has lost its right operand.
			return nil, &OperandError{Col: n.pos.start + 1, Operator: n.op}
		}
		return nil, &OperandError{Col: o.pos.start + 1, Operator: o.op, Left: left}
	default:
		panic("linecalc: invalid node in group")
	}
}

// trace logs one reduction step.
func (ctx *Context) trace(op Operator, x, y, r *apd.Decimal) {
	attrs := make([]any, 0, 4)
	attrs = append(attrs, slog.String("op", op.Symbol()))
	if x != nil {
		attrs = append(attrs, slog.String("x", Format(x)))
	}
	attrs = append(attrs, slog.String("y", Format(y)), slog.String("r", Format(r)))
	ctx.log.Debug("reduce", attrs...)
}

func has(ops []Operator, op Operator) bool {
	for _, v := range ops {
		if v == op {
			return true
		}
	}
	return false
}

// Eval is a shortcut to parse and evaluate an expression.
func Eval(src string, opts ...ContextOption) (*apd.Decimal, error) {
	a, err := Parse(src)
	if err != nil {
		return nil, err
	}
	ctx := NewContext(opts...)
	ctx.Eval(a)
	return ctx.Result(), ctx.Err()
}

// Calculate evaluates an expression and formats the result with Format. If
// the expression cannot be evaluated for any reason, the result is Sentinel.
func Calculate(src string, opts ...ContextOption) string {
	r, err := Eval(src, opts...)
	if err != nil {
		return Sentinel
	}
	return Format(r)
}
