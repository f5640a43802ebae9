// Licensed under the MIT License. See LICENSE file in the project root for details.

package engine

import "github.com/kianostad/byteops/internal/mem"

// portableOps is the correctness-first engine: every access goes through a
// bounds-checked slice view, so a caller-supplied out-of-range offset fails
// with an index panic instead of reading foreign memory. It is the universal
// fallback and the reference the fast engine's results are tested against.
type portableOps struct{}

// NewPortable returns the portable engine.
func NewPortable() ByteOps { return portableOps{} }

func (portableOps) Compare(a, b mem.Operand) int {
	// Short circuit the equal case.
	if mem.SameBacking(a, b) {
		return 0
	}

	s1 := a.Bytes()
	s2 := b.Bytes()
	minLength := len(s1)
	if len(s2) < minLength {
		minLength = len(s2)
	}
	for i := 0; i < minLength; i++ {
		if s1[i] != s2[i] {
			return int(s1[i]) - int(s2[i])
		}
	}
	return len(s1) - len(s2)
}

func (portableOps) Copy(src, dst mem.Operand, n int) {
	if n == 0 {
		return
	}
	// The copy builtin has memmove semantics, so overlapping heap ranges
	// are handled correctly; native operands are accessed through their
	// length-bounded slice views.
	copy(dst.Bytes()[:n], src.Bytes()[:n])
}
