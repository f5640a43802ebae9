// Licensed under the MIT License. See LICENSE file in the project root for details.

package mem

// Buffer is a positioned view over a byte region, either array-backed (a Go
// slice) or natively addressed (a base address into off-heap memory). It
// carries a position and a limit; comparison operands resolve to the
// remaining range [position, limit), copy operands to explicit absolute
// ranges.
//
// A Buffer is a small value-like view; Duplicate shares the underlying
// storage. It is not safe for concurrent mutation of position or limit, which
// matches its role as a per-call cursor.
type Buffer struct {
	data   []byte
	addr   uintptr
	size   int
	pos    int
	limit  int
	native bool
}

// WrapBytes returns an array-backed buffer over b with position 0 and the
// limit at len(b).
func WrapBytes(b []byte) *Buffer {
	return &Buffer{data: b, size: len(b), limit: len(b)}
}

// NewNative returns a natively-addressed buffer over [addr, addr+size) with
// position 0 and the limit at size. The caller vouches the region stays
// mapped for the buffer's useful lifetime.
func NewNative(addr uintptr, size int) *Buffer {
	return &Buffer{addr: addr, size: size, limit: size, native: true}
}

// HasArray reports whether the buffer is array-backed.
func (b *Buffer) HasArray() bool { return !b.native }

// Cap returns the total size of the underlying region.
func (b *Buffer) Cap() int { return b.size }

// Position returns the current read/write position.
func (b *Buffer) Position() int { return b.pos }

// SetPosition moves the position. Panics if p is negative or past the limit.
func (b *Buffer) SetPosition(p int) {
	if p < 0 || p > b.limit {
		panic("mem: position out of range")
	}
	b.pos = p
}

// Limit returns the current limit.
func (b *Buffer) Limit() int { return b.limit }

// SetLimit moves the limit. Panics if l is negative or past the capacity;
// the position is clamped to the new limit.
func (b *Buffer) SetLimit(l int) {
	if l < 0 || l > b.size {
		panic("mem: limit out of range")
	}
	b.limit = l
	if b.pos > l {
		b.pos = l
	}
}

// Remaining returns the number of bytes between position and limit.
func (b *Buffer) Remaining() int { return b.limit - b.pos }

// Duplicate returns an independent view sharing the same storage, position
// and limit.
func (b *Buffer) Duplicate() *Buffer {
	dup := *b
	return &dup
}

// Operand resolves the remaining range [position, limit) to an operand.
// This is the single representation check per call; everything past it is
// representation-free.
func (b *Buffer) Operand() Operand {
	if b.native {
		return NativeOperand(b.addr+uintptr(b.pos), b.limit-b.pos)
	}
	return HeapOperand(b.data[b.pos:b.limit])
}

// Slice resolves the absolute range [pos, pos+length) to an operand,
// independent of the buffer's position and limit.
func (b *Buffer) Slice(pos, length int) Operand {
	if b.native {
		return NativeOperand(b.addr+uintptr(pos), length)
	}
	return HeapOperand(b.data[pos : pos+length])
}

// bytes returns the full capacity of the buffer as a bounds-checked slice.
func (b *Buffer) bytes() []byte {
	if b.native {
		return NativeOperand(b.addr, b.size).Bytes()
	}
	return b.data
}

// Get reads the byte at absolute index i through a checked slice access.
func (b *Buffer) Get(i int) byte { return b.bytes()[i] }

// Put writes the byte at absolute index i through a checked slice access.
func (b *Buffer) Put(i int, v byte) { b.bytes()[i] = v }

// ReadAt copies len(dst) bytes starting at absolute position pos into dst.
func (b *Buffer) ReadAt(pos int, dst []byte) {
	copy(dst, b.bytes()[pos:pos+len(dst)])
}

// WriteAt copies src into the buffer starting at absolute position pos.
func (b *Buffer) WriteAt(pos int, src []byte) {
	copy(b.bytes()[pos:pos+len(src)], src)
}
