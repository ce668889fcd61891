package jit

import "accjit/pkg/token"

// Register allocation for the generated function:
//
//	RCX = accumulator, live for the whole function body
//	RAX = division dividend / return value
//	RDX = high half of the dividend for idiv (written by cqo)
//	R8  = division divisor
//
// The generated code takes no arguments and returns the accumulator
// in RAX per the System V AMD64 ABI. It touches caller-saved
// registers only, so there is no callee-saved spill in the prologue.
const (
	AccReg     = RCX
	ReturnReg  = RAX
	DivisorReg = R8
)

// Compiler generates x86-64 code from an opcode sequence.
type Compiler struct {
	asm *Assembler
}

// NewCompiler creates a new code generator.
func NewCompiler() *Compiler {
	return &Compiler{asm: NewAssembler()}
}

// Compile emits a complete function body for ops: prologue, one fixed
// instruction template per opcode in sequence order, epilogue. The
// emission is linear in the opcode count; the source language has no
// control flow, so the buffer contains no jumps or labels. The caller
// is expected to pass a non-empty sequence (the tokenizer guarantees
// this).
func (c *Compiler) Compile(ops []token.Op) []byte {
	c.emitPrologue()
	for _, op := range ops {
		c.compileOp(op)
	}
	c.emitEpilogue()
	return c.asm.Bytes()
}

// emitPrologue zero-initializes the accumulator.
func (c *Compiler) emitPrologue() {
	// xor rcx, rcx
	c.asm.XorRegReg(AccReg, AccReg)
}

// emitEpilogue moves the accumulator into the return register and
// returns to the caller.
func (c *Compiler) emitEpilogue() {
	// mov rax, rcx; ret
	c.asm.MovRegReg(ReturnReg, AccReg)
	c.asm.Ret()
}

// compileOp emits the fixed template for a single opcode.
func (c *Compiler) compileOp(op token.Op) {
	switch op {
	case token.Increment:
		// inc rcx
		c.asm.IncReg(AccReg)

	case token.Decrement:
		// dec rcx
		c.asm.DecReg(AccReg)

	case token.Double:
		// imul rcx, rcx, 2
		c.asm.IMulRegRegImm8(AccReg, AccReg, 2)

	case token.Halve:
		c.emitHalve()
	}
}

// emitHalve divides the accumulator by 2 with signed, truncating
// semantics. idiv divides RDX:RAX in place, so the accumulator is
// moved through RAX and restored afterward; RDX and R8 are scratch.
func (c *Compiler) emitHalve() {
	// mov rax, rcx
	c.asm.MovRegReg(RAX, AccReg)
	// mov r8, 2
	c.asm.MovRegImm32SignExt(DivisorReg, 2)
	// cqo
	c.asm.Cqo()
	// idiv r8
	c.asm.IDiv(DivisorReg)
	// mov rcx, rax
	c.asm.MovRegReg(AccReg, RAX)
}

// Compile is a convenience that compiles ops with a fresh Compiler.
func Compile(ops []token.Op) []byte {
	return NewCompiler().Compile(ops)
}
