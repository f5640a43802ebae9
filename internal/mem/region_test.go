// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build unix

package mem

import "testing"

func TestAllocRegion(t *testing.T) {
	t.Parallel()
	region, err := AllocRegion(4096)
	if err != nil {
		t.Fatalf("AllocRegion failed: %v", err)
	}

	if region.Size() != 4096 {
		t.Errorf("Expected size 4096, got %d", region.Size())
	}
	if region.Base() == 0 {
		t.Error("Expected non-zero base address")
	}

	// The mapping must be readable and writable across its full span.
	buf := region.Buffer()
	buf.Put(0, 0x01)
	buf.Put(4095, 0xFF)
	if buf.Get(0) != 0x01 || buf.Get(4095) != 0xFF {
		t.Error("Expected writes at both ends of the region to stick")
	}

	if err := region.Free(); err != nil {
		t.Errorf("Free failed: %v", err)
	}
	// Freeing twice is a no-op.
	if err := region.Free(); err != nil {
		t.Errorf("Second Free failed: %v", err)
	}
}

func TestAllocRegionRejectsInvalidSize(t *testing.T) {
	t.Parallel()
	if _, err := AllocRegion(0); err == nil {
		t.Error("Expected error for zero size")
	}
	if _, err := AllocRegion(-1); err == nil {
		t.Error("Expected error for negative size")
	}
}
