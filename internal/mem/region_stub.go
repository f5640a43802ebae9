// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build !unix

package mem

import "errors"

// Region is a stub on platforms without mmap support. Native buffers can
// still be constructed with NewNative over caller-provided addresses.
type Region struct{}

// AllocRegion always fails on platforms without mmap support.
func AllocRegion(size int) (*Region, error) {
	return nil, errors.New("mem: off-heap regions require a unix mmap")
}

func (r *Region) Base() uintptr   { return 0 }
func (r *Region) Size() int       { return 0 }
func (r *Region) Buffer() *Buffer { return nil }
func (r *Region) Free() error     { return nil }
