// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package mem unifies heap-backed and natively-addressed byte ranges behind a
// single operand type, and provides the positioned buffer views the public
// API accepts.
//
// An Operand is the per-call resolution of a buffer or slice: a tag plus
// either a Go slice or a raw base address with a length. Resolving costs one
// tag check; hot loops in the engines never branch on representation again.
//
// All unsafe pointer conversions for native memory are confined to this
// package. Callers of NativeOperand and NewNative vouch that the addressed
// region stays alive and valid for the duration of every call that uses it.
package mem

import "unsafe"

// Operand is a resolved byte range: either a heap-backed Go slice or a raw
// native address with a length.
type Operand struct {
	data   []byte
	addr   uintptr
	length int
	native bool
}

// HeapOperand wraps a Go slice as an operand. The slice is owned by the
// caller; the operand must not outlive the call it is passed to.
func HeapOperand(b []byte) Operand {
	return Operand{data: b, length: len(b)}
}

// NativeOperand wraps a raw address range as an operand. The range
// [addr, addr+length) must be mapped and readable (writable, for copy
// destinations) for the duration of the call.
func NativeOperand(addr uintptr, length int) Operand {
	return Operand{addr: addr, length: length, native: true}
}

// Len returns the number of bytes the operand covers.
func (o Operand) Len() int { return o.length }

// IsNative reports whether the operand addresses off-heap memory.
func (o Operand) IsNative() bool { return o.native }

// Pointer returns the address of the operand's first byte, or nil for an
// empty operand. The engines perform all word and byte loads relative to
// this pointer; bounds are the caller's responsibility.
func (o Operand) Pointer() unsafe.Pointer {
	if o.native {
		return unsafe.Pointer(o.addr)
	}
	if len(o.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&o.data[0])
}

// Bytes returns the operand as a bounds-checked slice. For heap operands
// this is the wrapped slice itself; for native operands the raw range is
// materialized once via unsafe.Slice, after which every access through the
// result is an ordinary checked slice access.
func (o Operand) Bytes() []byte {
	if !o.native {
		return o.data
	}
	if o.length == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(o.addr)), o.length)
}

// SameBacking reports whether two operands denote the exact same storage,
// offset and length. Operands of different representations never match.
func SameBacking(a, b Operand) bool {
	if a.native != b.native || a.length != b.length {
		return false
	}
	if a.native {
		return a.addr == b.addr
	}
	if a.length == 0 {
		return true
	}
	return &a.data[0] == &b.data[0]
}
