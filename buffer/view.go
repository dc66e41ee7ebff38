package buffer

import "fmt"

// ElementType tags the element interpretation of a view. The set is
// closed; a view's tag is assigned at construction and readable only
// through Elem, so shape tampering on the host object cannot spoof it.
type ElementType uint8

const (
	Int8 ElementType = iota
	Uint8
	Uint8Clamped
	Int16
	Uint16
	Int32
	Uint32
	BigInt64
	BigUint64
	Float32
	Float64
	DataView

	elementTypeCount
)

var elementNames = [...]string{
	Int8:         "Int8Array",
	Uint8:        "Uint8Array",
	Uint8Clamped: "Uint8ClampedArray",
	Int16:        "Int16Array",
	Uint16:       "Uint16Array",
	Int32:        "Int32Array",
	Uint32:       "Uint32Array",
	BigInt64:     "BigInt64Array",
	BigUint64:    "BigUint64Array",
	Float32:      "Float32Array",
	Float64:      "Float64Array",
	DataView:     "DataView",
}

var elementSizes = [...]int{
	Int8:         1,
	Uint8:        1,
	Uint8Clamped: 1,
	Int16:        2,
	Uint16:       2,
	Int32:        4,
	Uint32:       4,
	BigInt64:     8,
	BigUint64:    8,
	Float32:      4,
	Float64:      8,
	DataView:     1,
}

func (e ElementType) String() string {
	if int(e) < len(elementNames) {
		return elementNames[e]
	}
	return fmt.Sprintf("ElementType(%d)", uint8(e))
}

// Size returns the element width in bytes. DataView addresses single
// bytes.
func (e ElementType) Size() int {
	return elementSizes[e]
}

// ElementTypeByName resolves a host-side class name back to its tag.
func ElementTypeByName(name string) (ElementType, bool) {
	for e, n := range elementNames {
		if n == name {
			return ElementType(e), true
		}
	}
	return 0, false
}

// View is a typed window over a region of an ArrayBuffer. The element
// tag is unexported and immutable.
type View struct {
	buf    *ArrayBuffer
	elem   ElementType
	offset int
	length int // element count
}

// NewView creates a typed window over buf. offset is in bytes, length
// in elements. Bounds are checked against the buffer's current size.
func NewView(buf *ArrayBuffer, elem ElementType, offset, length int) (*View, error) {
	if elem >= elementTypeCount {
		return nil, fmt.Errorf("unknown element type %d", elem)
	}
	if offset < 0 || length < 0 {
		return nil, fmt.Errorf("negative view bounds [%d, %d]", offset, length)
	}
	end := offset + length*elem.Size()
	if end > buf.Len() && !buf.Detached() {
		return nil, fmt.Errorf("view [%d, %d) exceeds buffer of %d bytes", offset, end, buf.Len())
	}
	return &View{buf: buf, elem: elem, offset: offset, length: length}, nil
}

// Elem returns the unforgeable element-type tag.
func (v *View) Elem() ElementType {
	return v.elem
}

// Buffer returns the backing buffer.
func (v *View) Buffer() *ArrayBuffer {
	return v.buf
}

// ByteOffset returns the window's starting byte within the buffer.
func (v *View) ByteOffset() int {
	return v.offset
}

// Len returns the element count.
func (v *View) Len() int {
	return v.length
}

// ByteLen returns the window size in bytes.
func (v *View) ByteLen() int {
	return v.length * v.elem.Size()
}

// Bytes returns the live byte window into the backing store. nil once
// the buffer is detached.
func (v *View) Bytes() []byte {
	data := v.buf.Bytes()
	if data == nil {
		return nil
	}
	return data[v.offset : v.offset+v.ByteLen()]
}
