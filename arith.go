package linecalc

import (
	"errors"

	"github.com/cockroachdb/apd/v3"
)

const (
	// DivisionPrecision is the number of significant digits to which a
	// quotient is computed when checking whether it terminates.
	DivisionPrecision = 128
	// DivisionScale is the number of fractional digits kept by a quotient
	// that does not terminate. Rounding is half to even.
	DivisionScale = 32
	// SqrtPrecision is the number of significant digits in a square root.
	SqrtPrecision = 16
	// MaxPower is the largest magnitude of an exponent. A power within it can
	// still fail if the result's decimal exponent exceeds apd.MaxExponent.
	MaxPower = 99999
)

var (
	// ErrDivisionByZero is the cause of an ArithmeticError for a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNegativeRoot is the cause of an ArithmeticError for the square root of
	// a negative number.
	ErrNegativeRoot = errors.New("square root of negative number")
	// ErrExponentRange is the cause of an ArithmeticError for an exponent
	// whose magnitude exceeds MaxPower.
	ErrExponentRange = errors.New("exponent out of range")
)

var (
	// exact performs operations without rounding.
	exact = apd.BaseContext
	// quoctx computes quotients. Its precision is replaced when rounding to
	// DivisionScale.
	quoctx = apd.Context{
		Precision:   DivisionPrecision,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    apd.RoundHalfEven,
	}
	sqrtctx = apd.Context{
		Precision:   SqrtPrecision,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    apd.RoundHalfEven,
	}
)

// arithFunc computes an operator. Unary operators receive a nil x.
type arithFunc func(x, y *apd.Decimal) (*apd.Decimal, error)

var arith = [...]arithFunc{
	OpAdd:  add,
	OpSub:  sub,
	OpMul:  mul,
	OpDiv:  quo,
	OpPow:  pow,
	OpSqrt: sqrt,
}

// apply computes op on its operands, wrapping any failure in an
// ArithmeticError.
func apply(op Operator, x, y *apd.Decimal) (*apd.Decimal, error) {
	if op <= OpNone || int(op) >= len(arith) {
		panic("linecalc: no arithmetic for operator " + op.String())
	}
	r, err := arith[op](x, y)
	if err != nil {
		return nil, &ArithmeticError{Op: op, X: x, Y: y, Err: err}
	}
	return r, nil
}

func add(x, y *apd.Decimal) (*apd.Decimal, error) {
	d := new(apd.Decimal)
	_, err := exact.Add(d, x, y)
	return d, err
}

func sub(x, y *apd.Decimal) (*apd.Decimal, error) {
	d := new(apd.Decimal)
	_, err := exact.Sub(d, x, y)
	return d, err
}

func mul(x, y *apd.Decimal) (*apd.Decimal, error) {
	d := new(apd.Decimal)
	_, err := exact.Mul(d, x, y)
	return d, err
}

// quo divides x by y. A terminating quotient is exact; any other is rounded
// half to even to DivisionScale fractional digits.
func quo(x, y *apd.Decimal) (*apd.Decimal, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	d := new(apd.Decimal)
	res, err := quoctx.Quo(d, x, y)
	if err != nil {
		return nil, err
	}
	if res.Inexact() {
		// Recompute with exactly enough digits to land on DivisionScale so
		// that the quotient is rounded once.
		adj := int64(d.Exponent) + d.NumDigits() - 1
		if p := adj + DivisionScale + 1; p > 0 {
			if _, err := quoctx.WithPrecision(uint32(p)).Quo(d, x, y); err != nil {
				return nil, err
			}
		} else if _, err := quoctx.Quantize(d, d, -DivisionScale); err != nil {
			return nil, err
		}
	}
	d.Reduce(d)
	return d, nil
}

// pow raises x to the power of y truncated to an integer.
func pow(x, y *apd.Decimal) (*apd.Decimal, error) {
	var integ apd.Decimal
	y.Modf(&integ, nil)
	n, err := integ.Int64()
	if err != nil || n > MaxPower || n < -MaxPower {
		return nil, ErrExponentRange
	}
	k := n
	if k < 0 {
		k = -k
	}
	// Exponentiation by squaring.
	z := apd.New(1, 0)
	b := new(apd.Decimal).Set(x)
	for k > 0 {
		if k&1 == 1 {
			if _, err := exact.Mul(z, z, b); err != nil {
				return nil, err
			}
		}
		k >>= 1
		if k > 0 {
			if _, err := exact.Mul(b, b, b); err != nil {
				return nil, err
			}
		}
	}
	if n < 0 {
		return quo(apd.New(1, 0), z)
	}
	return z, nil
}

// sqrt computes the square root of y to SqrtPrecision digits.
func sqrt(_, y *apd.Decimal) (*apd.Decimal, error) {
	if y.Sign() < 0 {
		return nil, ErrNegativeRoot
	}
	d := new(apd.Decimal)
	if _, err := sqrtctx.Sqrt(d, y); err != nil {
		return nil, err
	}
	d.Reduce(d)
	return d, nil
}

// Format renders a value in plain notation with trailing zeros removed.
func Format(d *apd.Decimal) string {
	var r apd.Decimal
	r.Reduce(d)
	return r.Text('f')
}

// ArithmeticError is an error computing an operator on its operands. It
// unwraps to the cause, which is ErrDivisionByZero, ErrNegativeRoot,
// ErrExponentRange, or an error from the decimal arithmetic. The last happens
// when a result's magnitude is beyond the decimal exponent limits, as in
// "99999999999^99999".
type ArithmeticError struct {
	// Op is the operator that failed.
	Op Operator
	// X and Y are the left and right operands. X is nil for unary operators.
	X, Y *apd.Decimal
	// Err is the cause of the failure.
	Err error
}

func (err *ArithmeticError) Error() string {
	var r string
	if err.X != nil {
		r = Format(err.X) + " "
	}
	r += err.Op.Symbol() + " " + Format(err.Y) + ": " + err.Err.Error()
	return r
}

func (err *ArithmeticError) Unwrap() error {
	return err.Err
}
