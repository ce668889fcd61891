//go:build linux && amd64

package jit

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// allocations counts executable-memory mappings made by the package.
// Test hook: input-error paths must leave it untouched.
var allocations atomic.Uint64

// Allocations returns the number of executable regions mapped so far.
func Allocations() uint64 {
	return allocations.Load()
}

// ExecutableMemory is an anonymous private mapping with read, write
// and execute permission, sized to hold exactly one instruction
// buffer. Each compile-and-run cycle gets its own region; regions are
// never shared or reused across invocations.
//
// The mapping is RWX for its whole lifetime rather than toggling
// write permission off before execution. The region is private to a
// single invocation and unmapped as soon as the call returns, so the
// simpler single-mmap policy is used.
type ExecutableMemory struct {
	buffer []byte
}

// NewExecutableMemory maps an executable region holding a copy of
// code. The kernel rounds the mapping up to page granularity; the
// trailing bytes are left zero and are never reached, because code
// ends with a return.
func NewExecutableMemory(code []byte) (*ExecutableMemory, error) {
	if len(code) == 0 {
		return nil, fmt.Errorf("jit: empty instruction buffer")
	}

	buffer, err := unix.Mmap(
		-1, 0,
		len(code),
		unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS,
	)
	if err != nil {
		return nil, fmt.Errorf("jit: map executable memory: %w", err)
	}
	allocations.Add(1)

	copy(buffer, code)
	return &ExecutableMemory{buffer: buffer}, nil
}

// EntryPoint returns the address of the first instruction.
func (em *ExecutableMemory) EntryPoint() uintptr {
	if len(em.buffer) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&em.buffer[0]))
}

// Size returns the requested size of the region.
func (em *ExecutableMemory) Size() int {
	return len(em.buffer)
}

// Free unmaps the region. Calling Free twice is a no-op.
func (em *ExecutableMemory) Free() error {
	if em.buffer == nil {
		return nil
	}
	err := unix.Munmap(em.buffer)
	em.buffer = nil
	if err != nil {
		return fmt.Errorf("jit: unmap executable memory: %w", err)
	}
	return nil
}
