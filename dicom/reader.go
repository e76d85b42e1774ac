package dicom

import (
	"encoding/binary"
	"fmt"
)

// reader wraps an in-memory byte slice and provides DICOM-specific binary
// reading operations. It supports both Little Endian and Big Endian byte
// ordering, switched dynamically as parsing moves from the always-little-
// endian file meta information group into the main dataset.
//
// Unlike an io.Reader-backed implementation, take returns a sub-slice
// of the original buffer rather than a copy: per DESIGN NOTES "Borrowed vs
// owned element values", element payloads borrow into the caller's buffer
// for the lifetime of the parsed Object.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.3
type reader struct {
	buf       []byte
	pos       int
	byteOrder binary.ByteOrder
}

func newReader(buf []byte, byteOrder binary.ByteOrder) *reader {
	return &reader{buf: buf, byteOrder: byteOrder}
}

// setByteOrder changes the byte order for subsequent read operations. Used
// when switching from file meta information (always little-endian) to the
// main dataset, which may be big-endian depending on the transfer syntax.
func (r *reader) setByteOrder(order binary.ByteOrder) {
	r.byteOrder = order
}

// remaining returns the number of unread bytes left in the buffer.
func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}

// position returns the current byte offset into the original buffer.
func (r *reader) position() int {
	return r.pos
}

// take consumes exactly n bytes, returning a borrowed sub-slice of the
// backing buffer. Fails with ErrStructuralParse if fewer than n bytes
// remain.
func (r *reader) take(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, %d remain at offset %d", ErrStructuralParse, n, r.remaining(), r.pos)
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// peekTag reads the next two u16 values without advancing the cursor,
// using the reader's current byte order. Used by the group-2/content/images
// phases to decide whether the next tag belongs to the current section
// before consuming it.
func (r *reader) peekTag() (group, element uint16, err error) {
	return r.peekTagAs(r.byteOrder)
}

// peekTagLE reads the next two u16 values without advancing the cursor,
// always little-endian regardless of the reader's current byte order. Used
// by the sequence and item parsers to recognize the Item, Item Delimiter,
// and Sequence Delimiter sentinel tags (FFFE,*), which are always encoded
// little-endian even under ExplicitVRBigEndian (§4.1, §9).
func (r *reader) peekTagLE() (group, element uint16, err error) {
	return r.peekTagAs(littleEndian)
}

func (r *reader) peekTagAs(order binary.ByteOrder) (group, element uint16, err error) {
	if r.remaining() < 4 {
		return 0, 0, fmt.Errorf("%w: need 4 bytes to peek a tag, %d remain", ErrStructuralParse, r.remaining())
	}
	group = order.Uint16(r.buf[r.pos : r.pos+2])
	element = order.Uint16(r.buf[r.pos+2 : r.pos+4])
	return group, element, nil
}

// readUint16 reads a 16-bit unsigned integer using the reader's current byte order.
func (r *reader) readUint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return r.byteOrder.Uint16(b), nil
}

// readUint32 reads a 32-bit unsigned integer using the reader's current byte order.
func (r *reader) readUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return r.byteOrder.Uint32(b), nil
}

// readTag reads two u16 values (group then element) using a caller-supplied
// byte order, rather than the reader's own setting. Item and delimiter
// tags (FFFE,*) are always little-endian regardless of the active
// transfer syntax; every other tag uses the reader's current byte order
// by passing r.byteOrder explicitly at the call site.
func (r *reader) readTag(order binary.ByteOrder) (group, element uint16, err error) {
	b, err := r.take(4)
	if err != nil {
		return 0, 0, err
	}
	return order.Uint16(b[0:2]), order.Uint16(b[2:4]), nil
}

// readVRCode reads a two-letter VR code off the wire. Any two ASCII
// letters form a syntactically valid code; the caller resolves whether it
// is a recognized VR via the vr package.
func (r *reader) readVRCode() (string, error) {
	b, err := r.take(2)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
