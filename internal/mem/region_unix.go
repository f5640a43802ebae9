// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build unix

package mem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Region is an off-heap allocation obtained from the OS with mmap. It backs
// native buffers in tests, benchmarks, and any caller that needs memory the
// Go allocator does not manage. The region is invisible to the garbage
// collector; the owner must Free it.
type Region struct {
	mapping []byte
}

// AllocRegion maps size bytes of anonymous, private, read-write memory.
func AllocRegion(size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mem: invalid region size %d", size)
	}
	m, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mem: mmap %d bytes: %w", size, err)
	}
	return &Region{mapping: m}, nil
}

// Base returns the address of the first byte of the region.
func (r *Region) Base() uintptr {
	return uintptr(unsafe.Pointer(&r.mapping[0]))
}

// Size returns the mapped length in bytes.
func (r *Region) Size() int { return len(r.mapping) }

// Buffer returns a natively-addressed buffer over the whole region.
func (r *Region) Buffer() *Buffer {
	return NewNative(r.Base(), len(r.mapping))
}

// Free unmaps the region. Buffers over it must not be used afterwards.
func (r *Region) Free() error {
	if r.mapping == nil {
		return nil
	}
	err := unix.Munmap(r.mapping)
	r.mapping = nil
	return err
}
