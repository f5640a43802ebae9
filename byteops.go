// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package byteops provides optimized lexicographic (unsigned byte-wise)
// comparison and raw copying of byte sequences for storage-engine hot paths.
//
// A sequence may be an ordinary Go slice or a Buffer, a positioned view that
// is either array-backed or addresses off-heap (native) memory. All
// operations delegate to one of two engines selected once per process: a
// word-granular engine that reads memory 8 bytes at a time through unchecked
// access, or a portable bounds-checked fallback. Both produce identical
// ordering results; if the fast engine cannot be constructed on the host,
// the fallback is used silently and the cause is recorded once.
//
// # Quick Start
//
//	import "github.com/kianostad/byteops"
//
//	// Compare two keys.
//	if byteops.CompareUnsigned(a, b) < 0 {
//	    // a sorts first
//	}
//
//	// Compare a native buffer against a heap key.
//	region, _ := byteops.AllocRegion(4096)
//	defer region.Free()
//	buf := region.Buffer()
//	sign := byteops.CompareBufferBytes(buf, key)
//
//	// Copy between representations.
//	byteops.CopyToBytes(buf, 0, dst, 0, len(dst))
//
// # Ordering Contract
//
// Bytes compare as unsigned 8-bit values; when one sequence is a proper
// prefix of the other, the shorter sorts first. Only the sign of a result is
// specified, and swapping operands negates it.
//
// # Preconditions
//
// Offsets and lengths passed to copy operations and buffer slicing must be
// in bounds. The fast engine performs no runtime bounds checks; violations
// are undefined behavior there and an index panic on the portable engine.
// Callers needing validation should bounds-check before calling in.
//
// # Concurrency
//
// Every operation is a pure synchronous computation over its inputs; the
// selected engine is immutable after first use and shared freely across
// goroutines. Copy destinations are the caller's to guard against concurrent
// writers.
package byteops

import (
	"github.com/kianostad/byteops/internal/engine"
	"github.com/kianostad/byteops/internal/mem"
)

type (
	// Buffer is a positioned view over heap-backed or native memory.
	Buffer = mem.Buffer

	// Region is an off-heap allocation backing native buffers.
	Region = mem.Region
)

// WrapBytes returns an array-backed buffer over b.
func WrapBytes(b []byte) *Buffer {
	return mem.WrapBytes(b)
}

// NewNativeBuffer returns a buffer over the caller-owned native range
// [addr, addr+size). The region must stay mapped while the buffer is in use.
func NewNativeBuffer(addr uintptr, size int) *Buffer {
	return mem.NewNative(addr, size)
}

// AllocRegion maps size bytes of off-heap memory. The caller owns the region
// and must Free it.
func AllocRegion(size int) (*Region, error) {
	return mem.AllocRegion(size)
}

// CompareUnsigned lexicographically compares two byte slices.
func CompareUnsigned(a, b []byte) int {
	return engine.Select().Compare(mem.HeapOperand(a), mem.HeapOperand(b))
}

// CompareBufferBytes compares the remaining bytes of a against b.
func CompareBufferBytes(a *Buffer, b []byte) int {
	return engine.Select().Compare(a.Operand(), mem.HeapOperand(b))
}

// CompareBytesBuffer compares a against the remaining bytes of b. It is the
// negation of CompareBufferBytes with the operands swapped.
func CompareBytesBuffer(a []byte, b *Buffer) int {
	return -CompareBufferBytes(b, a)
}

// CompareBuffers compares the remaining bytes of two buffers.
func CompareBuffers(a, b *Buffer) int {
	return engine.Select().Compare(a.Operand(), b.Operand())
}

// CopyToBytes copies n bytes from src at absolute position srcPos into dst
// starting at dstPos. Positions are independent of src's position and limit.
func CopyToBytes(src *Buffer, srcPos int, dst []byte, dstPos, n int) {
	engine.Select().Copy(src.Slice(srcPos, n), mem.HeapOperand(dst[dstPos:dstPos+n]), n)
}

// CopyToBuffer copies n bytes from src at absolute position srcPos into dst
// at absolute position dstPos. Every src/dst representation pairing is
// supported.
func CopyToBuffer(src *Buffer, srcPos int, dst *Buffer, dstPos, n int) {
	engine.Select().Copy(src.Slice(srcPos, n), dst.Slice(dstPos, n), n)
}
