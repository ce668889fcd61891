//go:build linux && amd64

// Package jit compiles the accumulator language to x86-64 machine
// code and runs it natively.
//
// The pipeline is tokenize -> compile -> load -> call: the tokenizer
// produces an opcode sequence, the Compiler emits an instruction
// buffer for a zero-argument function returning int64, Load copies
// the buffer into an executable mapping, and Run of the resulting
// CompiledProgram calls it through the asm trampoline.
//
// Input errors (unknown character, empty program) abort before any
// executable memory is mapped and are returned as the token package's
// error values. Mapping failures are environment errors, wrapped
// distinctly by NewExecutableMemory.
package jit

import "accjit/pkg/token"

// CompiledProgram is one loaded, callable compilation result. It
// exclusively owns its executable region; the region is not shared or
// reused across programs.
type CompiledProgram struct {
	entryPoint uintptr
	codeSize   int
	mem        *ExecutableMemory
}

// Load copies an instruction buffer into a fresh executable region
// and returns the callable program. The caller must Free the program
// when done with it.
func Load(code []byte) (*CompiledProgram, error) {
	mem, err := NewExecutableMemory(code)
	if err != nil {
		return nil, err
	}
	return &CompiledProgram{
		entryPoint: mem.EntryPoint(),
		codeSize:   len(code),
		mem:        mem,
	}, nil
}

// EntryPoint returns the address of the program's first instruction.
func (p *CompiledProgram) EntryPoint() uintptr {
	return p.entryPoint
}

// CodeSize returns the size of the loaded instruction buffer.
func (p *CompiledProgram) CodeSize() int {
	return p.codeSize
}

// Run calls the program once and returns the final accumulator value.
// The call blocks until the generated code returns; the code has no
// loops, so it terminates in a number of steps equal to the opcode
// count.
func (p *CompiledProgram) Run() int64 {
	return callCode(p.entryPoint)
}

// Free releases the program's executable region.
func (p *CompiledProgram) Free() error {
	return p.mem.Free()
}

// CompileAndLoad tokenizes src, compiles it, and loads the result
// into executable memory. Input errors are returned before any
// memory is mapped.
func CompileAndLoad(src string) (*CompiledProgram, error) {
	ops, err := token.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Load(Compile(ops))
}

// Run tokenizes, compiles, loads, and executes src, releasing the
// executable region before returning on every path.
func Run(src string) (int64, error) {
	prog, err := CompileAndLoad(src)
	if err != nil {
		return 0, err
	}
	defer prog.Free()
	return prog.Run(), nil
}
