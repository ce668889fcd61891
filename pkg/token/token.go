// Package token turns an accumulator-language source string into a
// sequence of opcodes.
//
// The language has four single-character operations acting on one
// 64-bit signed accumulator:
//
//	"+"  increment
//	"-"  decrement
//	"*"  double
//	"/"  halve (signed, truncating toward zero)
//
// Spaces and newlines separate operations and carry no meaning.
package token

import (
	"errors"
	"fmt"
)

// Op is one operation of the accumulator language.
type Op byte

const (
	Increment Op = iota
	Decrement
	Double
	Halve
)

// String returns the source character for the opcode.
func (op Op) String() string {
	switch op {
	case Increment:
		return "+"
	case Decrement:
		return "-"
	case Double:
		return "*"
	case Halve:
		return "/"
	}
	return fmt.Sprintf("Op(%d)", byte(op))
}

// ErrEmptyProgram is returned when the source contains no opcodes
// after whitespace is skipped.
var ErrEmptyProgram = errors.New("token: program contains no operations")

// UnknownCharError reports a byte outside the language's alphabet.
type UnknownCharError struct {
	Char byte
	Pos  int // byte offset into the source
}

func (e *UnknownCharError) Error() string {
	return fmt.Sprintf("token: unknown character %q at offset %d", e.Char, e.Pos)
}

// Tokenize converts src into an ordered opcode sequence. Space and
// newline are skipped. Any other character outside the alphabet stops
// tokenization and is reported with its offset, and a program that
// yields no opcodes at all is an error, so callers never hand an empty
// sequence to the code generator.
func Tokenize(src string) ([]Op, error) {
	ops := make([]Op, 0, len(src))
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '+':
			ops = append(ops, Increment)
		case '-':
			ops = append(ops, Decrement)
		case '*':
			ops = append(ops, Double)
		case '/':
			ops = append(ops, Halve)
		case ' ', '\n':
			// separators
		default:
			return nil, &UnknownCharError{Char: src[i], Pos: i}
		}
	}
	if len(ops) == 0 {
		return nil, ErrEmptyProgram
	}
	return ops, nil
}
