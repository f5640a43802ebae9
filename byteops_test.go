// Licensed under the MIT License. See LICENSE file in the project root for details.

package byteops

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompareUnsigned(t *testing.T) {
	Convey("Given byte slices", t, func() {
		Convey("When comparing equal content", func() {
			So(CompareUnsigned([]byte("key"), []byte("key")), ShouldEqual, 0)
			So(CompareUnsigned(nil, nil), ShouldEqual, 0)
		})

		Convey("When comparing differing content", func() {
			So(CompareUnsigned([]byte("apple"), []byte("banana")), ShouldBeLessThan, 0)
			So(CompareUnsigned([]byte("banana"), []byte("apple")), ShouldBeGreaterThan, 0)
		})

		Convey("Then bytes compare as unsigned values", func() {
			So(CompareUnsigned([]byte{0x7F}, []byte{0x80}), ShouldBeLessThan, 0)
			So(CompareUnsigned([]byte{0xFF}, []byte{0x00}), ShouldBeGreaterThan, 0)
		})

		Convey("Then a proper prefix sorts first", func() {
			So(CompareUnsigned([]byte("key"), []byte("keys")), ShouldBeLessThan, 0)
			So(CompareUnsigned(nil, []byte("k")), ShouldBeLessThan, 0)
		})
	})
}

func TestBufferComparisons(t *testing.T) {
	Convey("Given an array-backed buffer over a key range", t, func() {
		backing := []byte("..middle..")
		buf := WrapBytes(backing)
		buf.SetPosition(2)
		buf.SetLimit(8)

		Convey("When comparing buffer against slice", func() {
			So(CompareBufferBytes(buf, []byte("middle")), ShouldEqual, 0)
			So(CompareBufferBytes(buf, []byte("middla")), ShouldBeGreaterThan, 0)
			So(CompareBufferBytes(buf, []byte("middlf")), ShouldBeLessThan, 0)
		})

		Convey("Then swapping operand order negates the sign", func() {
			for _, other := range [][]byte{[]byte("middla"), []byte("middle"), []byte("middlf"), []byte("mid"), nil} {
				So(CompareBytesBuffer(other, buf), ShouldEqual, -CompareBufferBytes(buf, other))
			}
		})

		Convey("When comparing two buffers", func() {
			other := WrapBytes([]byte("middle"))
			So(CompareBuffers(buf, other), ShouldEqual, 0)

			other.SetLimit(3)
			So(CompareBuffers(buf, other), ShouldBeGreaterThan, 0)
		})
	})
}

func TestNativeBufferComparisons(t *testing.T) {
	region, err := AllocRegion(1024)
	if err != nil {
		t.Skipf("off-heap regions unavailable: %v", err)
	}
	defer region.Free()

	Convey("Given a native buffer with known content", t, func() {
		content := []byte("native content for ordering")
		native := region.Buffer()
		native.WriteAt(0, content)
		native.SetLimit(len(content))

		Convey("Then it compares like a heap view of the same bytes", func() {
			heap := WrapBytes(content)
			So(CompareBuffers(native, heap), ShouldEqual, 0)
			So(CompareBufferBytes(native, content), ShouldEqual, 0)

			bigger := []byte("native content for orderinh")
			So(CompareBufferBytes(native, bigger), ShouldBeLessThan, 0)
			So(CompareBytesBuffer(bigger, native), ShouldBeGreaterThan, 0)
		})
	})
}

func TestCopyOperations(t *testing.T) {
	Convey("Given a populated source buffer", t, func() {
		src := WrapBytes([]byte("0123456789abcdef"))

		Convey("When copying buffer to slice", func() {
			dst := make([]byte, 8)
			CopyToBytes(src, 4, dst, 0, 8)
			So(string(dst), ShouldEqual, "456789ab")
		})

		Convey("When copying into the middle of a slice", func() {
			dst := []byte("________")
			CopyToBytes(src, 0, dst, 2, 4)
			So(string(dst), ShouldEqual, "__0123__")
		})

		Convey("When copying buffer to buffer", func() {
			dst := WrapBytes(make([]byte, 16))
			CopyToBuffer(src, 8, dst, 0, 8)
			So(string(dst.Operand().Bytes()[:8]), ShouldEqual, "89abcdef")
		})

		Convey("When copying zero bytes", func() {
			dst := []byte("keep")
			CopyToBytes(src, 0, dst, 0, 0)
			So(string(dst), ShouldEqual, "keep")
		})
	})
}

func TestCopyAcrossRepresentations(t *testing.T) {
	region, err := AllocRegion(4096)
	if err != nil {
		t.Skipf("off-heap regions unavailable: %v", err)
	}
	defer region.Free()

	Convey("Given heap and native buffers", t, func() {
		payload := []byte("round trip payload")
		heap := WrapBytes(payload)
		native := region.Buffer()

		Convey("Then heap->native->native->heap preserves content", func() {
			CopyToBuffer(heap, 0, native, 0, len(payload))
			CopyToBuffer(native, 0, native, 2048, len(payload))

			back := make([]byte, len(payload))
			CopyToBytes(native, 2048, back, 0, len(payload))
			So(string(back), ShouldEqual, string(payload))
		})
	})
}
