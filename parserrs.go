package linecalc

import (
	"strconv"
)

// StallError indicates a position where no number, operator, or bracket could
// be scanned. It implements InputError.
type StallError struct {
	// Col is the position where scanning stalled.
	Col int
	// Text is the unscanned remainder of the expression.
	Text string
}

func (err *StallError) Error() string {
	return errpos(err.Col, "invalid token: "+strconv.Quote(err.Text))
}

func (err *StallError) Pos() int {
	return err.Col
}

// BracketError indicates an open bracket that is never closed. It implements
// InputError.
type BracketError struct {
	// Col is the position of the open bracket.
	Col int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, "open bracket "+OpenBracket+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty group or an empty
// input. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string if
	// the input ended.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// OperandError indicates an operator with a missing operand, or with another
// operator where its operand should be. It implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator missing an operand.
	Operator Operator
	// Left is whether the missing operand is the left one.
	Left bool
}

func (err *OperandError) Error() string {
	s := "right"
	if err.Left {
		s = "left"
	}
	return errpos(err.Col, "no "+s+" operand for "+strconv.Quote(err.Operator.Symbol()))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// ResolveError indicates a group that did not reduce to a single value. It
// implements InputError.
type ResolveError struct {
	// Col is the position of the group.
	Col int
	// Len is the number of children left in the group.
	Len int
}

func (err *ResolveError) Error() string {
	return errpos(err.Col, "group reduced to "+strconv.Itoa(err.Len)+" terms instead of one")
}

func (err *ResolveError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// the structure of the input implements InputError. Positions count bytes from
// 1 in the expression after whitespace is removed.
type InputError interface {
	error
	// Pos returns the position of the error.
	Pos() int
}

var (
	_ InputError = (*StallError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*ResolveError)(nil)
)
