// Licensed under the MIT License. See LICENSE file in the project root for details.

package engine

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/kianostad/byteops/internal/mem"
)

// memmove is the runtime's raw bulk copy. Source and destination may be heap
// or native addresses; the ranges must not require bounds checking because
// none is performed.
//
//go:linkname memmove runtime.memmove
//go:noescape
func memmove(dst, src unsafe.Pointer, n uintptr)

// bigEndian reports whether the host stores the most significant byte of a
// word first. Computed once at init from the in-memory layout of a constant.
var bigEndian = func() bool {
	var x uint16 = 0x0102
	return *(*byte)(unsafe.Pointer(&x)) == 0x01
}()

// unsafeOps is the fast engine. It reads memory in 8-byte words directly
// through operand base pointers and copies through the runtime's memmove, so
// every caller-supplied offset and length must already be in bounds:
// violations are undefined behavior here, not a checked failure. All raw
// access is confined to this file.
type unsafeOps struct{}

// NewFast constructs the fast engine, verifying that the host can support
// it. It returns an error, never panics, so the selector can fall back.
func NewFast() (ByteOps, error) {
	if !unalignedLoads {
		return nil, probeArch()
	}
	if err := probeArch(); err != nil {
		return nil, err
	}
	if ptrBits := unsafe.Sizeof(uintptr(0)) * 8; ptrBits != 64 {
		return nil, fmt.Errorf("engine: %d-bit platform, word-granular access needs 64-bit", ptrBits)
	}
	if err := verifyWordLoads(); err != nil {
		return nil, err
	}
	return unsafeOps{}, nil
}

// verifyWordLoads checks that a raw word load, normalized for host byte
// order, matches the big-endian interpretation of the same bytes. This
// should never fail on a qualifying architecture.
func verifyWordLoads() error {
	probe := [wordSize]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	w := *(*uint64)(unsafe.Pointer(&probe[0]))
	if !bigEndian {
		w = bits.ReverseBytes64(w)
	}
	if want := binary.BigEndian.Uint64(probe[:]); w != want {
		return fmt.Errorf("engine: word load self-check read %#x, want %#x", w, want)
	}
	return nil
}

func (unsafeOps) Compare(a, b mem.Operand) int {
	length1 := a.Len()
	length2 := b.Len()
	minLength := length1
	if length2 < minLength {
		minLength = length2
	}
	p1 := a.Pointer()
	p2 := b.Pointer()

	// Compare 8 bytes at a time. Lexicographic order equals unsigned
	// numeric order of big-endian words, so on little-endian hosts both
	// words are byte-reversed before the comparison.
	wordBytes := minLength &^ (wordSize - 1)
	for i := 0; i < wordBytes; i += wordSize {
		lw := *(*uint64)(unsafe.Add(p1, i))
		rw := *(*uint64)(unsafe.Add(p2, i))
		if lw != rw {
			if !bigEndian {
				lw = bits.ReverseBytes64(lw)
				rw = bits.ReverseBytes64(rw)
			}
			if lw < rw {
				return -1
			}
			return 1
		}
	}

	for i := wordBytes; i < minLength; i++ {
		b1 := *(*byte)(unsafe.Add(p1, i))
		b2 := *(*byte)(unsafe.Add(p2, i))
		if b1 != b2 {
			return int(b1) - int(b2)
		}
	}

	return length1 - length2
}

func (unsafeOps) Copy(src, dst mem.Operand, n int) {
	if n == 0 {
		return
	}
	sp := src.Pointer()
	dp := dst.Pointer()

	// Tiny copies skip the fixed overhead of the bulk path.
	if n <= minCopyThreshold {
		for i := 0; i < n; i++ {
			*(*byte)(unsafe.Add(dp, i)) = *(*byte)(unsafe.Add(sp, i))
		}
		return
	}

	for off := 0; off < n; {
		chunk := n - off
		if chunk > maxCopyChunk {
			chunk = maxCopyChunk
		}
		memmove(unsafe.Add(dp, off), unsafe.Add(sp, off), uintptr(chunk))
		off += chunk
	}
}
