//go:build linux && amd64

package jit

import "accjit/pkg/jit/asm"

// callCode calls generated code with the System V AMD64 ABI.
// entryPoint: address of the compiled function, type int64 f(void).
// Returns: the value the generated code left in RAX.
func callCode(entryPoint uintptr) int64 {
	// Pure Go assembly trampoline from the asm package; this is the
	// system's single trust boundary (see asm.Call).
	return asm.Call(entryPoint)
}
