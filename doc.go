// Package linecalc implements an exact decimal calculator for single-line
// expressions.
//
// Expressions contain decimal numbers, the operators + - * / ^ and sqrt, and
// parentheses. "sqrt" applies to the operand after it, usually a
// parenthesized group: "3*sqrt(1+3)" is 6. Operators are applied in passes:
// first every sqrt, then every ^, then * and / from left to right, then + and -
// from left to right. Power is no exception, so "2^3^2" is 64. A number may
// carry a minus sign where an operand is expected, as in "8+-3*2" or "-1--1";
// there is no other unary minus.
//
// Arithmetic is exact except for quotients that do not terminate, which keep
// DivisionScale fractional digits, and square roots, which keep SqrtPrecision
// significant digits. Exponents are truncated to integers and limited to
// MaxPower in magnitude. Any result whose decimal exponent is outside the
// limits of apd.Decimal is an error, even when every exponent is in range.
//
// Building and reducing the expression tree recurse once per level of
// parentheses, so the nesting depth of an expression is limited by the stack.
//
package linecalc
