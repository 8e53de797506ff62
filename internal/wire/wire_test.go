package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestReader(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x0C, 0x00, 0x00, 0x00, 0xAA, 0xBB})

	v16, err := r.U16()
	if err != nil {
		t.Fatalf("u16: %v", err)
	}
	if v16 != 0x0201 {
		t.Fatalf("u16 = %#x", v16)
	}

	v32, err := r.U32()
	if err != nil {
		t.Fatalf("u32: %v", err)
	}
	if v32 != 12 {
		t.Fatalf("u32 = %d", v32)
	}

	if r.Offset() != 6 || r.Remaining() != 2 {
		t.Fatalf("offset=%d remaining=%d", r.Offset(), r.Remaining())
	}

	if _, err := r.Bytes(3); !errors.Is(err, ErrShort) {
		t.Fatalf("expected ErrShort, got %v", err)
	}

	b, err := r.Bytes(2)
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	if !bytes.Equal(b, []byte{0xAA, 0xBB}) {
		t.Fatalf("bytes = %x", b)
	}

	if _, err := r.U16(); !errors.Is(err, ErrShort) {
		t.Fatalf("expected ErrShort at end, got %v", err)
	}
}

func TestAppend(t *testing.T) {
	out := AppendU16(nil, 0x0102)
	out = AppendU32(out, 0x03040506)
	want := []byte{0x02, 0x01, 0x06, 0x05, 0x04, 0x03}
	if !bytes.Equal(out, want) {
		t.Fatalf("got %x, want %x", out, want)
	}
}
