//go:build !linux || !amd64

// Package jit provides stubs on platforms other than linux/amd64.
// The generated instructions and the executable-memory handling are
// specific to x86-64 Linux; everything that only builds machine-code
// bytes (the assembler and compiler) is available everywhere.
package jit

import (
	"errors"

	"accjit/pkg/token"
)

// ErrUnsupported is returned when native execution is requested on a
// platform the JIT does not target.
var ErrUnsupported = errors.New("jit: native execution requires linux/amd64")

// CompiledProgram is a stub on unsupported platforms.
type CompiledProgram struct{}

func Load(code []byte) (*CompiledProgram, error) {
	return nil, ErrUnsupported
}

func (p *CompiledProgram) EntryPoint() uintptr { return 0 }
func (p *CompiledProgram) CodeSize() int       { return 0 }
func (p *CompiledProgram) Run() int64          { return 0 }
func (p *CompiledProgram) Free() error         { return nil }

// CompileAndLoad still surfaces input errors so callers get the same
// error taxonomy everywhere, but never maps memory.
func CompileAndLoad(src string) (*CompiledProgram, error) {
	if _, err := token.Tokenize(src); err != nil {
		return nil, err
	}
	return nil, ErrUnsupported
}

func Run(src string) (int64, error) {
	_, err := CompileAndLoad(src)
	return 0, err
}

// Allocations is a stub; no executable memory exists on unsupported
// platforms.
func Allocations() uint64 { return 0 }
