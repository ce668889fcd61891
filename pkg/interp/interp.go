// Package interp evaluates an opcode sequence directly, without
// compiling it. It defines the reference semantics the generated
// machine code must match and serves as the oracle for differential
// tests against the JIT.
package interp

import "accjit/pkg/token"

// Eval applies each opcode to a zero-initialized 64-bit signed
// accumulator in sequence order and returns the final value. Halve
// uses Go's native signed division, which truncates toward zero, the
// same semantics as the idiv instruction the JIT emits.
func Eval(ops []token.Op) int64 {
	var acc int64
	for _, op := range ops {
		switch op {
		case token.Increment:
			acc++
		case token.Decrement:
			acc--
		case token.Double:
			acc *= 2
		case token.Halve:
			acc /= 2
		}
	}
	return acc
}

// Run tokenizes src and evaluates it.
func Run(src string) (int64, error) {
	ops, err := token.Tokenize(src)
	if err != nil {
		return 0, err
	}
	return Eval(ops), nil
}
