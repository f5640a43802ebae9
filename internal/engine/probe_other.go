// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build !amd64 && !arm64

package engine

import (
	"fmt"
	"runtime"

	"github.com/kianostad/byteops/internal/diag"
)

// unalignedLoads is false on architectures where unaligned multi-byte loads
// may fault or require fixups; the selector keeps the portable engine there.
const unalignedLoads = false

func probeArch() error {
	return fmt.Errorf("engine: %s does not guarantee unaligned word loads: %w",
		runtime.GOARCH, diag.ErrEnvironment)
}
