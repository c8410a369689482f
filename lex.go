package linecalc

import (
	"regexp"
	"strconv"
	"strings"
)

// Operator is an operator recognized by the scanner.
type Operator int8

const (
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	// OpSqrt is the only unary operator. Its operand follows it.
	OpSqrt
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Operator -trimprefix=Op
//go:generate go mod tidy

// Symbol returns the source spelling of the operator.
func (op Operator) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	case OpSqrt:
		return "sqrt"
	default:
		return ""
	}
}

// unary reports whether the operator takes only the operand that follows it.
func (op Operator) unary() bool {
	return op == OpSqrt
}

// The scanner patterns are anchored so that a match always starts at the
// position being scanned.
var (
	numPattern = regexp.MustCompile(`^-?[0-9]+(?:\.[0-9]+)?`)
	opPattern  = regexp.MustCompile(`^(?:\+|-|\*|/|\^|sqrt)`)
)

// Group delimiters.
const (
	OpenBracket  = "("
	CloseBracket = ")"
)

// span is a half-open range of byte offsets into the scanned expression.
type span struct {
	start, end int
}

func (s span) String() string {
	return "[" + strconv.Itoa(s.start) + "," + strconv.Itoa(s.end) + ")"
}

// scanNum matches a number literal at pos. The literal is the longest match,
// including a leading minus sign. The second result is false if there is no
// number at pos.
func scanNum(src string, pos int) (string, bool) {
	m := numPattern.FindString(src[pos:])
	return m, m != ""
}

// scanOp matches an operator at pos.
func scanOp(src string, pos int) (Operator, bool) {
	switch m := opPattern.FindString(src[pos:]); m {
	case "+":
		return OpAdd, true
	case "-":
		return OpSub, true
	case "*":
		return OpMul, true
	case "/":
		return OpDiv, true
	case "^":
		return OpPow, true
	case "sqrt":
		return OpSqrt, true
	default:
		return OpNone, false
	}
}

// scanOpen reports whether a group starts at pos.
func scanOpen(src string, pos int) bool {
	return strings.HasPrefix(src[pos:], OpenBracket)
}

// scanClose reports whether a group ends at pos.
func scanClose(src string, pos int) bool {
	return strings.HasPrefix(src[pos:], CloseBracket)
}
