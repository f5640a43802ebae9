// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build arm64

package engine

// unalignedLoads reports whether the target architecture guarantees
// byte-addressable unaligned multi-byte loads. arm64 does for normal memory.
const unalignedLoads = true

func probeArch() error { return nil }
