//go:build linux && amd64

// Package asm provides the pure Go assembly trampoline used to enter
// generated code. It is a separate package so the unsafe raw-address
// call lives behind exactly one audited entry point.
package asm

// Call invokes the code at entry as a zero-argument native function
// returning a 64-bit signed integer, per the System V AMD64 ABI.
//
// The caller asserts, and this function does not verify, that entry
// points at valid machine instructions honoring that convention.
// Violating the assertion is undefined behavior up to process
// termination.
func Call(entry uintptr) int64
