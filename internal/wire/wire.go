// Package wire holds little-endian read/write helpers for fixed-width fields.
package wire

import (
	"encoding/binary"
	"errors"
)

// ErrShort is returned when a read runs past the end of the buffer.
var ErrShort = errors.New("unexpected end of data")

// Reader is a bounds-checked cursor over a byte slice.
type Reader struct {
	buf []byte
	pos int
}

// NewReader creates a cursor positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int { return r.pos }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// U16 reads a little-endian uint16.
func (r *Reader) U16() (uint16, error) {
	if r.Remaining() < 2 {
		return 0, ErrShort
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

// U32 reads a little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, ErrShort
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// Bytes returns the next n bytes without copying.
func (r *Reader) Bytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, ErrShort
	}
	b := r.buf[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return b, nil
}

// AppendU16 appends v in little-endian order.
func AppendU16(dst []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(dst, v)
}

// AppendU32 appends v in little-endian order.
func AppendU32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}
