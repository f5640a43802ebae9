// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build amd64

package engine

import (
	"fmt"

	"golang.org/x/sys/cpu"

	"github.com/kianostad/byteops/internal/diag"
)

// unalignedLoads reports whether the target architecture guarantees
// byte-addressable unaligned multi-byte loads. amd64 does.
const unalignedLoads = true

// probeArch verifies the CPU features the word-granular paths assume.
func probeArch() error {
	if !cpu.X86.HasSSE2 {
		return fmt.Errorf("engine: amd64 without SSE2: %w", diag.ErrEnvironment)
	}
	return nil
}
