// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package engine implements lexicographic byte comparison and raw copying in
// two interchangeable forms: a word-granular engine built on unchecked memory
// access, and a portable bounds-checked fallback. Both produce identical
// ordering results for every input; the selector commits to one of them on
// first use and keeps it for the life of the process.
package engine

import "github.com/kianostad/byteops/internal/mem"

const (
	// wordSize is the number of bytes loaded per comparison step in the
	// fast engine.
	wordSize = 8

	// minCopyThreshold is the copy length at or below which the fast
	// engine copies byte-by-byte instead of paying the fixed overhead of
	// the bulk path.
	minCopyThreshold = 6

	// maxCopyChunk bounds the span handed to a single bulk copy call.
	// Larger copies are issued in chunks of this size so that no single
	// non-preemptible copy pins the thread for too long.
	maxCopyChunk = 1 << 20
)

// ByteOps is the operation family both engines implement. Implementations
// are stateless and safe for unlimited concurrent use.
type ByteOps interface {
	// Compare orders two operands lexicographically by unsigned byte
	// value. It returns a negative value if a sorts first, zero if the
	// operands are equal, and a positive value if b sorts first. A proper
	// prefix sorts before its extension.
	Compare(a, b mem.Operand) int

	// Copy transfers n bytes from the start of src to the start of dst.
	// Copying zero bytes is a no-op.
	Copy(src, dst mem.Operand, n int)
}
